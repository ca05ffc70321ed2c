package unlock_test

import (
	"errors"
	"io"
	"testing"

	"github.com/rs/zerolog"

	"seedring/internal/store"
	"seedring/internal/unlock"
)

// scriptedPrompt returns the queued answers in order and counts calls.
type scriptedPrompt struct {
	answers []string
	calls   int
}

func (p *scriptedPrompt) read(string) (string, error) {
	if p.calls >= len(p.answers) {
		return "", errors.New("prompt called more times than scripted")
	}
	answer := p.answers[p.calls]
	p.calls++
	return answer, nil
}

func newGate(t *testing.T, k *store.FileKeyring, answers ...string) (*unlock.Gate, *scriptedPrompt) {
	t.Helper()
	prompt := &scriptedPrompt{answers: answers}
	g := unlock.New(k, prompt.read, zerolog.Nop())
	g.Delay = 0
	g.Out = io.Discard
	return g, prompt
}

func protectedKeyring(t *testing.T, passphrase string) *store.FileKeyring {
	t.Helper()
	dir := t.TempDir()
	k := store.NewFileKeyring(dir)
	if err := k.SetMasterPassphrase("", passphrase, false); err != nil {
		t.Fatalf("set master passphrase: %v", err)
	}
	// A fresh instance with an empty cache, as a new process would see it.
	return store.NewFileKeyring(dir)
}

func TestGate_NoMasterPassphrase_Unlocked(t *testing.T) {
	k := store.NewFileKeyring(t.TempDir())
	g, prompt := newGate(t, k)

	if err := g.Unlock(true); err != nil {
		t.Fatalf("unlock: %v", err)
	}
	if prompt.calls != 0 {
		t.Fatalf("prompt called %d times, want 0", prompt.calls)
	}
	if g.Locked() {
		t.Fatal("gate reports locked without a master passphrase")
	}
}

func TestGate_ValidatedCache_SkipsPrompt(t *testing.T) {
	k := protectedKeyring(t, "opensesame123")
	k.SetCachedPassphrase("opensesame123", true)
	g, prompt := newGate(t, k)

	if err := g.Unlock(true); err != nil {
		t.Fatalf("unlock: %v", err)
	}
	if prompt.calls != 0 {
		t.Fatalf("prompt called %d times, want 0", prompt.calls)
	}
}

func TestGate_UnvalidatedCache_IsChecked(t *testing.T) {
	k := protectedKeyring(t, "opensesame123")
	k.SetCachedPassphrase("opensesame123", false)
	g, prompt := newGate(t, k)

	if err := g.Unlock(true); err != nil {
		t.Fatalf("unlock: %v", err)
	}
	if prompt.calls != 0 {
		t.Fatalf("prompt called %d times, want 0", prompt.calls)
	}
	if _, validated := k.CachedPassphrase(); !validated {
		t.Fatal("cache not marked validated after successful check")
	}
}

func TestGate_StaleCache_ClearedThenPrompted(t *testing.T) {
	k := protectedKeyring(t, "opensesame123")
	k.SetCachedPassphrase("stale", false)
	g, prompt := newGate(t, k, "opensesame123")

	if err := g.Unlock(true); err != nil {
		t.Fatalf("unlock: %v", err)
	}
	if prompt.calls != 1 {
		t.Fatalf("prompt called %d times, want 1", prompt.calls)
	}
	if cached, validated := k.CachedPassphrase(); cached != "opensesame123" || !validated {
		t.Fatalf("cache after unlock: (%q, %v)", cached, validated)
	}
}

func TestGate_RetriesThenSucceeds(t *testing.T) {
	k := protectedKeyring(t, "opensesame123")
	g, prompt := newGate(t, k, "nope", "opensesame123")

	if err := g.Unlock(true); err != nil {
		t.Fatalf("unlock: %v", err)
	}
	if prompt.calls != 2 {
		t.Fatalf("prompt called %d times, want 2", prompt.calls)
	}
}

func TestGate_ExhaustsRetries(t *testing.T) {
	k := protectedKeyring(t, "opensesame123")
	g, prompt := newGate(t, k, "a", "b", "c")

	if err := g.Unlock(false); !errors.Is(err, unlock.ErrMaxAttempts) {
		t.Fatalf("got %v, want ErrMaxAttempts", err)
	}
	if prompt.calls != unlock.MaxRetries {
		t.Fatalf("prompt called %d times, want %d", prompt.calls, unlock.MaxRetries)
	}
}

func TestGate_PromptError_Surfaces(t *testing.T) {
	k := protectedKeyring(t, "opensesame123")
	failing := func(string) (string, error) { return "", errors.New("tty gone") }
	g := unlock.New(k, failing, zerolog.Nop())
	g.Delay = 0
	g.Out = io.Discard

	if err := g.Unlock(false); err == nil {
		t.Fatal("expected error from failing prompt")
	}
}

func TestGate_Locked(t *testing.T) {
	k := protectedKeyring(t, "opensesame123")
	g, _ := newGate(t, k)

	if !g.Locked() {
		t.Fatal("protected keyring with empty cache should be locked")
	}
	k.SetCachedPassphrase("opensesame123", true)
	if g.Locked() {
		t.Fatal("valid cached passphrase should unlock the gate")
	}
}
