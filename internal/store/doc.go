// Package store provides the encrypted file-backed keyring behind the keychain.
//
// FileKeyring persists an opaque (service, name) -> payload map as a single
// JSON document, sealed in a versioned envelope: a scrypt-derived key and
// ChaCha20-Poly1305. A store without a user-set master passphrase is still
// encrypted, under a fixed built-in passphrase, so setting a master passphrase
// later only re-encrypts the same document.
//
// The master passphrase cache is explicit per-store session state, never
// package-global, and is consulted by every data operation while the store
// is passphrase-protected.
package store
