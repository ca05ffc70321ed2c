package crypto

import (
	"crypto/sha512"

	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/text/unicode/norm"
)

const (
	// SeedSize is the length of a derived seed in bytes.
	SeedSize = 64

	seedIterations = 2048
	seedSaltPrefix = "mnemonic"
)

// SeedFromMnemonic stretches a mnemonic phrase and an optional secondary
// passphrase into a 64-byte seed.
//
// Both inputs are NFKD-normalized before key stretching; the salt is the
// literal "mnemonic" followed by the passphrase, per the standard scheme.
// Identical inputs always produce identical output, which the keychain
// depends on to confirm passphrase guesses.
func SeedFromMnemonic(mnemonic, passphrase string) []byte {
	password := []byte(norm.NFKD.String(mnemonic))
	salt := []byte(norm.NFKD.String(seedSaltPrefix + passphrase))
	return pbkdf2.Key(password, salt, seedIterations, SeedSize, sha512.New)
}
