package store

import (
	"encoding/json"
	"errors"
	"path/filepath"
	"sync"

	pkgerrors "github.com/pkg/errors"

	"seedring/internal/domain"
)

const keyringFilename = "keyring.json.enc"

// defaultPassphrase seals a keyring that has no user-set master passphrase.
// The contents stay encrypted on disk either way; only the Protected flag in
// the envelope distinguishes the two states.
const defaultPassphrase = "$ seedring keyring"

var (
	// ErrKeyringLocked is returned when a data operation needs the master
	// passphrase and none has been cached for this session.
	ErrKeyringLocked = errors.New("keyring is locked: master passphrase required")

	// ErrSecretNotFound is returned when deleting a (service, name) pair
	// that is not present.
	ErrSecretNotFound = errors.New("no secret stored under that name")

	// ErrPassphraseInvalid is returned when the supplied current master
	// passphrase cannot decrypt the keyring.
	ErrPassphraseInvalid = errors.New("current master passphrase is invalid")

	// ErrMigrationNeeded is returned when the on-disk file is a legacy
	// unencrypted document and the caller did not allow migration.
	ErrMigrationNeeded = errors.New("legacy keyring requires migration")
)

// FileKeyring is a passphrase-gated secret store persisted as one encrypted
// JSON document. It implements domain.SecretStore.
//
// The cached master passphrase is session state scoped to this value; it is
// populated by the unlock gate (or the lifecycle methods) and consulted by
// every data operation while the keyring is protected.
type FileKeyring struct {
	path string

	mu        sync.Mutex
	cached    string
	cachedSet bool
	validated bool
}

// NewFileKeyring returns a FileKeyring rooted at dir.
func NewFileKeyring(dir string) *FileKeyring {
	return &FileKeyring{path: filepath.Join(dir, keyringFilename)}
}

// secrets is the decrypted document: service -> name -> payload.
type secrets map[string]map[string]string

// effective maps the empty passphrase to the built-in default.
func effective(passphrase string) string {
	if passphrase == "" {
		return defaultPassphrase
	}
	return passphrase
}

// load reads and decrypts the document. It returns the passphrase that opened
// it so mutating operations can seal with the same one. Callers hold k.mu.
func (k *FileKeyring) load() (secrets, envelope, string, error) {
	blob, err := readFile(k.path)
	if err != nil {
		return nil, envelope{}, "", pkgerrors.Wrap(err, "read keyring")
	}
	if blob == nil {
		return secrets{}, envelope{}, defaultPassphrase, nil
	}
	env, err := readHeader(blob)
	if err != nil {
		return nil, envelope{}, "", err
	}
	if env.Cipher == nil {
		return nil, envelope{}, "", ErrMigrationNeeded
	}

	pass := defaultPassphrase
	if env.Protected {
		if !k.cachedSet {
			return nil, envelope{}, "", ErrKeyringLocked
		}
		pass = effective(k.cached)
	}
	raw, err := open(pass, blob)
	if err != nil {
		return nil, envelope{}, "", err
	}
	var m secrets
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, envelope{}, "", pkgerrors.Wrap(err, "parse keyring contents")
	}
	if m == nil {
		m = secrets{}
	}
	return m, env, pass, nil
}

// save seals and atomically rewrites the document. Callers hold k.mu.
func (k *FileKeyring) save(m secrets, passphrase string, protected bool) error {
	raw, err := json.Marshal(m)
	if err != nil {
		return err
	}
	blob, err := seal(passphrase, raw, protected)
	if err != nil {
		return err
	}
	return pkgerrors.Wrap(writeFile(k.path, blob, 0o600), "write keyring")
}

// GetSecret returns the payload stored under (service, name).
func (k *FileKeyring) GetSecret(service, name string) (string, bool, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	m, _, _, err := k.load()
	if err != nil {
		return "", false, err
	}
	v, ok := m[service][name]
	return v, ok, nil
}

// SetSecret writes the payload under (service, name).
func (k *FileKeyring) SetSecret(service, name, value string) error {
	k.mu.Lock()
	defer k.mu.Unlock()

	m, env, pass, err := k.load()
	if err != nil {
		return err
	}
	if m[service] == nil {
		m[service] = map[string]string{}
	}
	m[service][name] = value
	return k.save(m, pass, env.Protected)
}

// DeleteSecret removes the entry under (service, name). Deleting an absent
// entry fails with ErrSecretNotFound; callers that must keep going regardless
// are expected to tolerate it.
func (k *FileKeyring) DeleteSecret(service, name string) error {
	k.mu.Lock()
	defer k.mu.Unlock()

	m, env, pass, err := k.load()
	if err != nil {
		return err
	}
	if _, ok := m[service][name]; !ok {
		return pkgerrors.Wrapf(ErrSecretNotFound, "%s/%s", service, name)
	}
	delete(m[service], name)
	if len(m[service]) == 0 {
		delete(m, service)
	}
	return k.save(m, pass, env.Protected)
}

// HasMasterPassphrase reports whether a user-set master passphrase seals the
// keyring. A missing file means no.
func (k *FileKeyring) HasMasterPassphrase() (bool, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	blob, err := readFile(k.path)
	if err != nil {
		return false, pkgerrors.Wrap(err, "read keyring")
	}
	if blob == nil {
		return false, nil
	}
	env, err := readHeader(blob)
	if err != nil {
		return false, err
	}
	return env.Protected, nil
}

// CheckMasterPassphrase reports whether passphrase can unlock the keyring.
// The empty passphrase is valid exactly when no master passphrase is set.
func (k *FileKeyring) CheckMasterPassphrase(passphrase string) bool {
	k.mu.Lock()
	defer k.mu.Unlock()

	blob, err := readFile(k.path)
	if err != nil || blob == nil {
		return err == nil && passphrase == ""
	}
	env, err := readHeader(blob)
	if err != nil || env.Cipher == nil {
		return false
	}
	if !env.Protected {
		return passphrase == ""
	}
	_, err = open(effective(passphrase), blob)
	return err == nil
}

// CachedPassphrase returns the session-cached master passphrase. An empty
// string means nothing is cached.
func (k *FileKeyring) CachedPassphrase() (string, bool) {
	k.mu.Lock()
	defer k.mu.Unlock()

	if !k.cachedSet {
		return "", false
	}
	return k.cached, k.validated
}

// SetCachedPassphrase records the master passphrase for this session.
func (k *FileKeyring) SetCachedPassphrase(passphrase string, validated bool) {
	k.mu.Lock()
	defer k.mu.Unlock()

	k.cached = passphrase
	k.cachedSet = true
	k.validated = validated
}

// ClearCachedPassphrase forgets the cached master passphrase.
func (k *FileKeyring) ClearCachedPassphrase() {
	k.mu.Lock()
	defer k.mu.Unlock()

	k.cached = ""
	k.cachedSet = false
	k.validated = false
}

// SetMasterPassphrase re-encrypts the keyring under next, provided current
// can decrypt it. A legacy unencrypted document is migrated in place only
// when allowMigration is set. The new passphrase is cached as validated.
func (k *FileKeyring) SetMasterPassphrase(current, next string, allowMigration bool) error {
	if next == "" {
		return errors.New("new master passphrase must not be empty")
	}

	k.mu.Lock()
	defer k.mu.Unlock()

	blob, err := readFile(k.path)
	if err != nil {
		return pkgerrors.Wrap(err, "read keyring")
	}

	m := secrets{}
	if blob != nil {
		env, err := readHeader(blob)
		if err != nil {
			return err
		}
		if env.Cipher == nil {
			// Legacy unencrypted document.
			if !allowMigration {
				return ErrMigrationNeeded
			}
			if err := json.Unmarshal(blob, &m); err != nil {
				return pkgerrors.Wrap(err, "parse legacy keyring")
			}
		} else {
			raw, err := open(effective(current), blob)
			if err != nil {
				return ErrPassphraseInvalid
			}
			if err := json.Unmarshal(raw, &m); err != nil {
				return pkgerrors.Wrap(err, "parse keyring contents")
			}
		}
	}

	if err := k.save(m, next, true); err != nil {
		return err
	}
	k.cached = next
	k.cachedSet = true
	k.validated = true
	return nil
}

// RemoveMasterPassphrase re-encrypts the keyring under the built-in default,
// provided current can decrypt it. The passphrase cache is cleared.
func (k *FileKeyring) RemoveMasterPassphrase(current string) error {
	k.mu.Lock()
	defer k.mu.Unlock()

	blob, err := readFile(k.path)
	if err != nil {
		return pkgerrors.Wrap(err, "read keyring")
	}
	if blob == nil {
		return nil
	}
	env, err := readHeader(blob)
	if err != nil {
		return err
	}
	if !env.Protected {
		return nil
	}
	raw, err := open(effective(current), blob)
	if err != nil {
		return ErrPassphraseInvalid
	}
	var m secrets
	if err := json.Unmarshal(raw, &m); err != nil {
		return pkgerrors.Wrap(err, "parse keyring contents")
	}
	if err := k.save(m, defaultPassphrase, false); err != nil {
		return err
	}
	k.cached = ""
	k.cachedSet = false
	k.validated = false
	return nil
}

// Compile-time assertion that FileKeyring implements domain.SecretStore.
var _ domain.SecretStore = (*FileKeyring)(nil)
