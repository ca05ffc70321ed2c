package domain

import (
	"strconv"

	e2types "github.com/wealdtech/go-eth2-types/v2"
)

// Entropy is the raw random material behind one key. Valid lengths are
// 16, 20, 24, 28 or 32 bytes; it is immutable once generated.
type Entropy []byte

// Clone returns an independent copy of the entropy bytes.
func (e Entropy) Clone() Entropy {
	return append(Entropy(nil), e...)
}

// Fingerprint is the short user-facing handle of a public key. Raw key
// material is never shown to users; the fingerprint stands in for it.
type Fingerprint uint32

// String returns the decimal form of the fingerprint.
func (f Fingerprint) String() string { return strconv.FormatUint(uint64(f), 10) }

// KeyRecord pairs a reconstructed private key with the entropy it was
// stored under. The entropy, not the key, is what the keychain persists.
type KeyRecord struct {
	Key     *e2types.BLSPrivateKey
	Entropy Entropy
}
