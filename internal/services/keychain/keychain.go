package keychain

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"
	"github.com/rs/zerolog"
	e2types "github.com/wealdtech/go-eth2-types/v2"

	"seedring/internal/crypto"
	"seedring/internal/domain"
	"seedring/internal/unlock"
	"seedring/internal/util/memzero"
)

const (
	// MaxKeys is the fixed ceiling on keys per namespace. Enumeration scans
	// slot indices 0 through MaxKeys inclusive and never looks further.
	MaxKeys = 100

	appName = "seedring"

	// DefaultUser is the namespace used when no user is configured.
	DefaultUser = "user-seedring-1.0"
)

// ErrKeychainFull is returned by Add when every slot up to MaxKeys is taken.
var ErrKeychainFull = errors.New("keychain is full")

// Keychain indexes (public key, entropy) pairs in a secret store. All
// persistent state lives in the store; the keychain itself only carries its
// namespace identity.
type Keychain struct {
	store domain.SecretStore
	gate  *unlock.Gate
	user  string
	test  bool
	log   zerolog.Logger
}

// New returns a Keychain over store, unlocked through gate. An empty user
// selects DefaultUser; test switches to the isolated test namespace.
func New(store domain.SecretStore, gate *unlock.Gate, user string, test bool, log zerolog.Logger) *Keychain {
	if user == "" {
		user = DefaultUser
	}
	return &Keychain{store: store, gate: gate, user: user, test: test, log: log}
}

// Service returns the store service name for this namespace.
func (c *Keychain) Service() string {
	if c.test {
		return fmt.Sprintf("%s-%s-test", appName, c.user)
	}
	return fmt.Sprintf("%s-%s", appName, c.user)
}

// SlotName returns the store entry name for a slot index.
func (c *Keychain) SlotName(index int) string {
	if c.test {
		return fmt.Sprintf("wallet-%s-test-%d", c.user, index)
	}
	return fmt.Sprintf("wallet-%s-%d", c.user, index)
}

// readSlot fetches and splits one slot. ok is false for an empty slot.
func (c *Keychain) readSlot(index int) (e2types.PublicKey, domain.Entropy, bool, error) {
	value, ok, err := c.store.GetSecret(c.Service(), c.SlotName(index))
	if err != nil {
		return nil, nil, false, pkgerrors.Wrapf(err, "read slot %d", index)
	}
	if !ok || value == "" {
		return nil, nil, false, nil
	}
	raw, err := hex.DecodeString(value)
	if err != nil {
		return nil, nil, false, pkgerrors.Wrapf(err, "slot %d is not valid hex", index)
	}
	if len(raw) < crypto.PublicKeySize {
		return nil, nil, false, pkgerrors.Errorf("slot %d is truncated: %d bytes", index, len(raw))
	}
	pub, err := crypto.PublicKeyFromBytes(raw[:crypto.PublicKeySize])
	if err != nil {
		return nil, nil, false, pkgerrors.Wrapf(err, "slot %d public key", index)
	}
	return pub, domain.Entropy(raw[crypto.PublicKeySize:]), true, nil
}

// freeSlot returns the lowest empty slot index.
func (c *Keychain) freeSlot() (int, error) {
	for index := 0; index <= MaxKeys; index++ {
		_, _, ok, err := c.readSlot(index)
		if err != nil {
			return 0, err
		}
		if !ok {
			return index, nil
		}
	}
	return 0, ErrKeychainFull
}

// normalize applies the default candidate list: a single empty passphrase.
func normalize(passphrases []string) []string {
	if len(passphrases) == 0 {
		return []string{""}
	}
	return passphrases
}

// Add derives a key from mnemonic and passphrase and stores its public key
// and entropy in the lowest free slot. Adding a key whose fingerprint is
// already present is a no-op that returns the regenerated key.
//
// The scan for a free slot and the write are two separate store operations;
// two concurrent writers in the same namespace can race. This matches the
// store's own consistency and is not serialized here.
func (c *Keychain) Add(mnemonic, passphrase string) (*e2types.BLSPrivateKey, error) {
	if err := c.gate.Unlock(true); err != nil {
		return nil, err
	}

	entropy, err := crypto.EntropyFromMnemonic(mnemonic)
	if err != nil {
		return nil, err
	}
	seed := crypto.SeedFromMnemonic(mnemonic, passphrase)
	key, err := crypto.KeyGen(seed)
	memzero.Zero(seed)
	if err != nil {
		return nil, err
	}
	fingerprint := crypto.Fingerprint(key.PublicKey())

	existing, err := c.publicKeys()
	if err != nil {
		return nil, err
	}
	for _, pub := range existing {
		if crypto.Fingerprint(pub) == fingerprint {
			// Already stored; nothing to write.
			return key, nil
		}
	}

	index, err := c.freeSlot()
	if err != nil {
		return nil, err
	}
	blob := hex.EncodeToString(key.PublicKey().Marshal()) + hex.EncodeToString(entropy)
	if err := c.store.SetSecret(c.Service(), c.SlotName(index), blob); err != nil {
		return nil, pkgerrors.Wrapf(err, "write slot %d", index)
	}
	c.log.Debug().
		Uint32("fingerprint", fingerprint).
		Int("slot", index).
		Msg("stored key")
	return key, nil
}

// regenerate tries each candidate passphrase against one stored slot and
// returns the reconstructed key when a guess reproduces the stored public
// key. ok is false when no candidate matches; that slot is simply
// inaccessible with current knowledge.
func regenerate(pub e2types.PublicKey, entropy domain.Entropy, passphrases []string) (domain.KeyRecord, bool, error) {
	mnemonic, err := crypto.MnemonicFromEntropy(entropy)
	if err != nil {
		return domain.KeyRecord{}, false, pkgerrors.Wrap(err, "stored entropy")
	}
	stored := pub.Marshal()
	for _, passphrase := range passphrases {
		seed := crypto.SeedFromMnemonic(mnemonic, passphrase)
		key, err := crypto.KeyGen(seed)
		memzero.Zero(seed)
		if err != nil {
			return domain.KeyRecord{}, false, err
		}
		if bytes.Equal(key.PublicKey().Marshal(), stored) {
			return domain.KeyRecord{Key: key, Entropy: entropy.Clone()}, true, nil
		}
	}
	return domain.KeyRecord{}, false, nil
}

// FirstKey returns the first stored key reachable with one of the candidate
// passphrases, tried in order per slot. ok is false when no slot matches.
func (c *Keychain) FirstKey(passphrases []string) (domain.KeyRecord, bool, error) {
	if err := c.gate.Unlock(true); err != nil {
		return domain.KeyRecord{}, false, err
	}
	candidates := normalize(passphrases)

	for index := 0; index <= MaxKeys; index++ {
		pub, entropy, ok, err := c.readSlot(index)
		if err != nil {
			return domain.KeyRecord{}, false, err
		}
		if !ok {
			continue
		}
		record, ok, err := regenerate(pub, entropy, candidates)
		if err != nil {
			return domain.KeyRecord{}, false, err
		}
		if ok {
			return record, true, nil
		}
	}
	return domain.KeyRecord{}, false, nil
}

// KeyByFingerprint returns the first stored key whose public-key fingerprint
// equals fp. The key is reconstructed with the highest-priority candidate
// passphrase; the stored fingerprint alone decides the match.
func (c *Keychain) KeyByFingerprint(fp domain.Fingerprint, passphrases []string) (domain.KeyRecord, bool, error) {
	if err := c.gate.Unlock(true); err != nil {
		return domain.KeyRecord{}, false, err
	}
	candidates := normalize(passphrases)

	for index := 0; index <= MaxKeys; index++ {
		pub, entropy, ok, err := c.readSlot(index)
		if err != nil {
			return domain.KeyRecord{}, false, err
		}
		if !ok || crypto.Fingerprint(pub) != uint32(fp) {
			continue
		}
		mnemonic, err := crypto.MnemonicFromEntropy(entropy)
		if err != nil {
			return domain.KeyRecord{}, false, pkgerrors.Wrap(err, "stored entropy")
		}
		seed := crypto.SeedFromMnemonic(mnemonic, candidates[0])
		key, err := crypto.KeyGen(seed)
		memzero.Zero(seed)
		if err != nil {
			return domain.KeyRecord{}, false, err
		}
		return domain.KeyRecord{Key: key, Entropy: entropy.Clone()}, true, nil
	}
	return domain.KeyRecord{}, false, nil
}

// AllKeys returns every stored key reachable with the candidate passphrases.
// Slots that match no candidate are skipped.
func (c *Keychain) AllKeys(passphrases []string) ([]domain.KeyRecord, error) {
	if err := c.gate.Unlock(true); err != nil {
		return nil, err
	}
	candidates := normalize(passphrases)

	var records []domain.KeyRecord
	for index := 0; index <= MaxKeys; index++ {
		pub, entropy, ok, err := c.readSlot(index)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		record, ok, err := regenerate(pub, entropy, candidates)
		if err != nil {
			return nil, err
		}
		if ok {
			records = append(records, record)
		}
	}
	return records, nil
}

// publicKeys enumerates stored public keys without passphrase guessing.
// Callers hold the gate already.
func (c *Keychain) publicKeys() ([]e2types.PublicKey, error) {
	var keys []e2types.PublicKey
	for index := 0; index <= MaxKeys; index++ {
		pub, _, ok, err := c.readSlot(index)
		if err != nil {
			return nil, err
		}
		if ok {
			keys = append(keys, pub)
		}
	}
	return keys, nil
}

// PublicKeys returns every stored public key. No passphrase is needed beyond
// unlocking the store itself.
func (c *Keychain) PublicKeys() ([]e2types.PublicKey, error) {
	if err := c.gate.Unlock(true); err != nil {
		return nil, err
	}
	return c.publicKeys()
}

// FirstPublicKey returns the public key in the lowest occupied slot.
func (c *Keychain) FirstPublicKey() (e2types.PublicKey, bool, error) {
	if err := c.gate.Unlock(true); err != nil {
		return nil, false, err
	}
	for index := 0; index <= MaxKeys; index++ {
		pub, _, ok, err := c.readSlot(index)
		if err != nil {
			return nil, false, err
		}
		if ok {
			return pub, true, nil
		}
	}
	return nil, false, nil
}

// DeleteByFingerprint removes every slot whose stored public key has the
// given fingerprint and reports how many were removed. Duplicate slots only
// occur in pathological states, but all of them go.
func (c *Keychain) DeleteByFingerprint(fp domain.Fingerprint) (int, error) {
	if err := c.gate.Unlock(true); err != nil {
		return 0, err
	}

	removed := 0
	for index := 0; index <= MaxKeys; index++ {
		pub, _, ok, err := c.readSlot(index)
		if err != nil {
			return removed, err
		}
		if !ok || crypto.Fingerprint(pub) != uint32(fp) {
			continue
		}
		if err := c.store.DeleteSecret(c.Service(), c.SlotName(index)); err != nil {
			return removed, pkgerrors.Wrapf(err, "delete slot %d", index)
		}
		removed++
	}
	c.log.Debug().Uint32("fingerprint", uint32(fp)).Int("removed", removed).Msg("deleted keys")
	return removed, nil
}

// DeleteAll wipes the whole namespace: a delete is issued for every slot
// index up to MaxKeys regardless of occupancy, and per-slot failures
// (typically "already absent") are tolerated so the sweep always reaches the
// ceiling.
func (c *Keychain) DeleteAll() error {
	if err := c.gate.Unlock(true); err != nil {
		return err
	}
	for index := 0; index <= MaxKeys; index++ {
		if err := c.store.DeleteSecret(c.Service(), c.SlotName(index)); err != nil {
			// Some stores fail on deleting an absent entry; the sweep
			// continues either way.
			continue
		}
	}
	c.log.Debug().Str("service", c.Service()).Msg("wiped namespace")
	return nil
}
