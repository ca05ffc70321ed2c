// Package crypto exposes the deterministic key pipeline used by seedring.
//
// Contents
//
//   - Checksummed mnemonic encoding of entropy and back (MnemonicFromEntropy,
//     EntropyFromMnemonic, GenerateMnemonic)
//   - Stretching a mnemonic plus passphrase into a 64-byte seed
//     (SeedFromMnemonic)
//   - BLS key generation from a seed, public-key serialization and short
//     fingerprints (KeyGen, PublicKeyFromBytes, Fingerprint)
//
// # Notes
//
// Every function here is a pure function of its inputs. The same entropy
// always yields the same mnemonic, the same mnemonic and passphrase always
// yield the same seed, and the same seed always yields the same key. The
// keychain relies on this to confirm passphrase guesses by regenerating a
// stored public key.
package crypto
