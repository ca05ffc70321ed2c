package unlock

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	pkgerrors "github.com/pkg/errors"
	"github.com/rs/zerolog"

	"seedring/internal/domain"
)

const (
	// MaxRetries bounds the number of interactive passphrase prompts per unlock.
	MaxRetries = 3

	// FailedAttemptDelay is the pause after each incorrect passphrase.
	FailedAttemptDelay = 500 * time.Millisecond
)

// ErrMaxAttempts is returned when every interactive attempt failed. The
// enclosing operation must not proceed; retrying is the caller's decision.
var ErrMaxAttempts = errors.New("maximum passphrase attempts reached")

// PromptFunc reads a passphrase from the user. label is the prompt text.
type PromptFunc func(label string) (string, error)

// Gate ensures a valid master passphrase is available before an operation
// touches the secret store.
//
// Delay and Out are tunables: the pause between failed attempts and the
// destination for the "Incorrect passphrase" notice.
type Gate struct {
	store  domain.SecretStore
	prompt PromptFunc
	log    zerolog.Logger

	Delay time.Duration
	Out   io.Writer
}

// New returns a Gate over store. A nil prompt falls back to the terminal
// prompt.
func New(store domain.SecretStore, prompt PromptFunc, log zerolog.Logger) *Gate {
	if prompt == nil {
		prompt = TerminalPrompt
	}
	return &Gate{
		store:  store,
		prompt: prompt,
		log:    log,
		Delay:  FailedAttemptDelay,
		Out:    os.Stderr,
	}
}

// Unlock makes sure the store's master passphrase is known, prompting the
// user if necessary. With useCache, a previously validated session passphrase
// is accepted without prompting, and a successful unlock is cached for the
// rest of the session.
//
// A store with no master passphrase configured is already unlocked.
func (g *Gate) Unlock(useCache bool) error {
	has, err := g.store.HasMasterPassphrase()
	if err != nil {
		return pkgerrors.Wrap(err, "query master passphrase state")
	}
	if !has {
		return nil
	}

	if useCache {
		if cached, validated := g.store.CachedPassphrase(); cached != "" {
			if validated {
				return nil
			}
			// Cached but never checked against the store.
			if g.store.CheckMasterPassphrase(cached) {
				g.store.SetCachedPassphrase(cached, true)
				return nil
			}
			g.log.Debug().Msg("cached passphrase is stale, clearing")
			g.store.ClearCachedPassphrase()
		}
	}

	for attempt := 1; attempt <= MaxRetries; attempt++ {
		passphrase, err := g.prompt(PromptLabel)
		if err != nil {
			return pkgerrors.Wrap(err, "read passphrase")
		}
		if g.store.CheckMasterPassphrase(passphrase) {
			if useCache {
				g.store.SetCachedPassphrase(passphrase, true)
			}
			return nil
		}
		g.log.Warn().Int("attempt", attempt).Msg("incorrect passphrase")
		time.Sleep(g.Delay)
		fmt.Fprintln(g.Out, "Incorrect passphrase")
	}
	return ErrMaxAttempts
}

// Locked reports whether the store currently requires an interactive unlock:
// a master passphrase is set and no valid session passphrase is cached.
func (g *Gate) Locked() bool {
	has, err := g.store.HasMasterPassphrase()
	if err != nil || !has {
		return err != nil
	}
	if cached, _ := g.store.CachedPassphrase(); cached != "" && g.store.CheckMasterPassphrase(cached) {
		return false
	}
	return true
}
