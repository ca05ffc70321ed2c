package store

import (
	"crypto/rand"
	"encoding/json"
	"errors"

	pkgerrors "github.com/pkg/errors"
	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/scrypt"

	"seedring/internal/util/memzero"
)

// The current supported version of the encrypted blob format stored on disk.
const keyringFormatVersion = 1

// ErrWrongPassphrase is returned when the passphrase cannot open the keyring,
// either because it is incorrect or because the file has been corrupted.
var ErrWrongPassphrase = errors.New("wrong passphrase or corrupted keyring")

// envelope is the on-disk JSON structure holding the ciphertext and KDF
// parameters. Protected records whether a user-set master passphrase, rather
// than the built-in default, seals the contents; it is deliberately readable
// without decrypting.
type envelope struct {
	V         int    `json:"v"`
	Protected bool   `json:"protected"`
	Salt      []byte `json:"salt"`
	N         int    `json:"scrypt_N"`
	R         int    `json:"scrypt_r"`
	P         int    `json:"scrypt_p"`
	Nonce     []byte `json:"nonce"`
	Cipher    []byte `json:"cipher"`
}

// Tunables for scrypt key derivation.
func scryptParamsDefault() (N, r, p int) { return 1 << 15, 8, 1 }

// seal derives a key from passphrase and seals raw into a JSON envelope.
func seal(passphrase string, raw []byte, protected bool) ([]byte, error) {
	salt := make([]byte, 16)
	if _, err := rand.Read(salt); err != nil {
		return nil, err
	}
	N, r, p := scryptParamsDefault()
	key, err := scrypt.Key([]byte(passphrase), salt, N, r, p, chacha20poly1305.KeySize)
	if err != nil {
		return nil, err
	}
	defer memzero.Zero(key)
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, err
	}
	ct := aead.Seal(nil, nonce, raw, salt)

	return json.Marshal(envelope{
		V:         keyringFormatVersion,
		Protected: protected,
		Salt:      salt,
		N:         N,
		R:         r,
		P:         p,
		Nonce:     nonce,
		Cipher:    ct,
	})
}

// open unseals a JSON envelope using a key derived from passphrase.
func open(passphrase string, blob []byte) ([]byte, error) {
	var env envelope
	if err := json.Unmarshal(blob, &env); err != nil {
		return nil, pkgerrors.Wrap(err, "parse keyring envelope")
	}
	if env.V > keyringFormatVersion {
		return nil, pkgerrors.Errorf("unsupported keyring version %d", env.V)
	}
	key, err := scrypt.Key([]byte(passphrase), env.Salt, env.N, env.R, env.P, chacha20poly1305.KeySize)
	if err != nil {
		return nil, err
	}
	defer memzero.Zero(key)
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	pt, err := aead.Open(nil, env.Nonce, env.Cipher, env.Salt)
	if err != nil {
		return nil, ErrWrongPassphrase
	}
	return pt, nil
}

// readHeader parses only the envelope metadata, without decrypting.
func readHeader(blob []byte) (envelope, error) {
	var env envelope
	if err := json.Unmarshal(blob, &env); err != nil {
		return envelope{}, pkgerrors.Wrap(err, "parse keyring envelope")
	}
	return env, nil
}
