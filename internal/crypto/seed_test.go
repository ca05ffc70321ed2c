package crypto_test

import (
	"bytes"
	"encoding/hex"
	"testing"

	"seedring/internal/crypto"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("bad hex literal: %v", err)
	}
	return b
}

func TestSeedFromMnemonic_GoldenVectors(t *testing.T) {
	cases := []struct {
		name       string
		mnemonic   string
		passphrase string
		want       string
	}{
		{
			name:       "zero entropy, TREZOR",
			mnemonic:   zeroMnemonic12,
			passphrase: "TREZOR",
			want: "c55257c360c07c72029aebc1b53c05ed0362ada38ead3e3e9efa3708e53495531f09a" +
				"6987599d18264c1e1c92f2cf141630c7a3c4ab7c81b2f001698e7463b04",
		},
		{
			name:       "zero entropy, empty passphrase",
			mnemonic:   zeroMnemonic12,
			passphrase: "",
			want: "5eb00bbddcf069084889a8ab9155568165f5c453ccb85e70811aaed6f6da5fc19a5ac" +
				"40b389cd370d086206dec8aa6c43daea6690f20ad3d8d48b2d2ce9e38e4",
		},
		{
			name:       "witch collapse, TREZOR",
			mnemonic:   "witch collapse practice feed shame open despair creek road again ice least",
			passphrase: "TREZOR",
			want: "e0a93e841843e0d0768c8d39ab5eb0fe8fd01d889e1c997fc09e4089a2f75bd49b363" +
				"8ce9337958f1dee0508f15342587bf10afb3e322649617bf7e434bc5278",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := crypto.SeedFromMnemonic(tc.mnemonic, tc.passphrase)
			if len(got) != crypto.SeedSize {
				t.Fatalf("got %d bytes, want %d", len(got), crypto.SeedSize)
			}
			if !bytes.Equal(got, mustHex(t, tc.want)) {
				t.Fatalf("seed mismatch\n got: %x\nwant: %s", got, tc.want)
			}
		})
	}
}

func TestSeedFromMnemonic_Deterministic(t *testing.T) {
	a := crypto.SeedFromMnemonic(zeroMnemonic12, "pass")
	b := crypto.SeedFromMnemonic(zeroMnemonic12, "pass")
	if !bytes.Equal(a, b) {
		t.Fatal("identical inputs produced different seeds")
	}
	c := crypto.SeedFromMnemonic(zeroMnemonic12, "other")
	if bytes.Equal(a, c) {
		t.Fatal("different passphrases produced the same seed")
	}
}
