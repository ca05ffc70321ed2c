package crypto

import (
	"crypto/sha256"
	"encoding/binary"
	"sync"

	pkgerrors "github.com/pkg/errors"
	e2types "github.com/wealdtech/go-eth2-types/v2"
	e2util "github.com/wealdtech/go-eth2-util"
)

// PublicKeySize is the fixed serialized size of a BLS public key in bytes.
const PublicKeySize = 48

var blsInit sync.Once

// ensureBLS initializes the underlying BLS library exactly once. The herumi
// backend requires explicit initialization before any key operation.
func ensureBLS() {
	blsInit.Do(func() {
		if err := e2types.InitBLS(); err != nil {
			panic(err)
		}
	})
}

// KeyGen derives the master private key from a 64-byte seed using EIP-2333.
func KeyGen(seed []byte) (*e2types.BLSPrivateKey, error) {
	ensureBLS()
	if len(seed) != SeedSize {
		return nil, pkgerrors.Errorf("seed must be %d bytes, got %d", SeedSize, len(seed))
	}
	key, err := e2util.PrivateKeyFromSeedAndPath(seed, "m")
	if err != nil {
		return nil, pkgerrors.Wrap(err, "derive master key")
	}
	return key, nil
}

// PublicKeyFromBytes deserializes a 48-byte compressed public key.
func PublicKeyFromBytes(b []byte) (e2types.PublicKey, error) {
	ensureBLS()
	pub, err := e2types.BLSPublicKeyFromBytes(b)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "parse public key")
	}
	return pub, nil
}

// Fingerprint returns the short identifier of a public key: the first four
// bytes of SHA-256 over its serialized form, read big-endian.
func Fingerprint(pub e2types.PublicKey) uint32 {
	sum := sha256.Sum256(pub.Marshal())
	return binary.BigEndian.Uint32(sum[:4])
}
