// Package keychain stores private-key seeds in a passphrase-gated secret
// store, indexed by logical slot.
//
// Each occupied slot holds one hex blob: the 48-byte serialized public key
// followed by the entropy behind the key. The private key itself is never
// persisted; it is regenerated on demand from the entropy, a mnemonic
// encoding, and a caller-supplied passphrase guess, and the guess is
// confirmed by comparing the regenerated public key against the stored one.
//
// Slots are allocated lowest-free-index-first and enumerated by linear scan
// up to a fixed ceiling (MaxKeys). The scan-then-write sequence in Add is not
// atomic across concurrent writers; callers that share a namespace between
// processes need external locking.
package keychain
