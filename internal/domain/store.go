package domain

// SecretStore is the passphrase-gated key-value store backing the keychain.
// Values are opaque hex strings addressed by a (service, name) pair.
//
// Implementations perform the actual encryption at rest and master-passphrase
// validation; the keychain only drives this contract.
type SecretStore interface {
	// GetSecret returns the payload stored under (service, name).
	// ok is false when the entry is absent; err reports real store I/O failures.
	GetSecret(service, name string) (value string, ok bool, err error)

	// SetSecret writes the payload under (service, name), replacing any
	// previous value.
	SetSecret(service, name, value string) error

	// DeleteSecret removes the entry under (service, name). Deleting an
	// absent entry may fail; callers tolerate that where the operation
	// must continue regardless.
	DeleteSecret(service, name string) error

	// HasMasterPassphrase reports whether the store contents are protected
	// by a user-supplied master passphrase.
	HasMasterPassphrase() (bool, error)

	// CheckMasterPassphrase reports whether passphrase can unlock the store.
	CheckMasterPassphrase(passphrase string) bool

	// CachedPassphrase returns the process-scoped cached master passphrase
	// and whether it has been validated against the store.
	CachedPassphrase() (passphrase string, validated bool)

	// SetCachedPassphrase records the master passphrase for this process
	// session, optionally marking it validated.
	SetCachedPassphrase(passphrase string, validated bool)

	// ClearCachedPassphrase forgets the cached master passphrase.
	ClearCachedPassphrase()

	// SetMasterPassphrase re-encrypts the store contents under next,
	// provided current can decrypt them. With allowMigration a legacy
	// unprotected store is migrated in place.
	SetMasterPassphrase(current, next string, allowMigration bool) error

	// RemoveMasterPassphrase drops the user-supplied master passphrase,
	// leaving the store protected only by the built-in default.
	RemoveMasterPassphrase(current string) error
}
