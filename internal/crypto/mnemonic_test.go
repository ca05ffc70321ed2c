package crypto_test

import (
	"bytes"
	"crypto/rand"
	"errors"
	"strings"
	"testing"

	"seedring/internal/crypto"
)

const zeroMnemonic12 = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

func TestMnemonicFromEntropy_GoldenVectors(t *testing.T) {
	cases := []struct {
		name    string
		entropy []byte
		want    string
	}{
		{
			name:    "zero 16 bytes",
			entropy: make([]byte, 16),
			want:    zeroMnemonic12,
		},
		{
			name:    "0x7f 16 bytes",
			entropy: bytes.Repeat([]byte{0x7f}, 16),
			want:    "legal winner thank year wave sausage worth useful legal winner thank yellow",
		},
		{
			name:    "0x80 16 bytes",
			entropy: bytes.Repeat([]byte{0x80}, 16),
			want:    "letter advice cage absurd amount doctor acoustic avoid letter advice cage above",
		},
		{
			name:    "0xff 16 bytes",
			entropy: bytes.Repeat([]byte{0xff}, 16),
			want:    "zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo wrong",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := crypto.MnemonicFromEntropy(tc.entropy)
			if err != nil {
				t.Fatalf("MnemonicFromEntropy: %v", err)
			}
			if got != tc.want {
				t.Fatalf("mnemonic mismatch\n got: %s\nwant: %s", got, tc.want)
			}
		})
	}
}

func TestMnemonic_RoundTrip_AllLengths(t *testing.T) {
	for _, n := range []int{16, 20, 24, 28, 32} {
		entropy := make([]byte, n)
		if _, err := rand.Read(entropy); err != nil {
			t.Fatalf("rand: %v", err)
		}
		mnemonic, err := crypto.MnemonicFromEntropy(entropy)
		if err != nil {
			t.Fatalf("encode %d bytes: %v", n, err)
		}
		wantWords := (n*8 + n/4) / 11
		if got := len(strings.Fields(mnemonic)); got != wantWords {
			t.Fatalf("entropy %d bytes: got %d words, want %d", n, got, wantWords)
		}
		back, err := crypto.EntropyFromMnemonic(mnemonic)
		if err != nil {
			t.Fatalf("decode %d bytes: %v", n, err)
		}
		if !bytes.Equal(back, entropy) {
			t.Fatalf("entropy %d bytes did not round-trip", n)
		}

		// And the reverse direction on a checksum-valid phrase.
		again, err := crypto.MnemonicFromEntropy(back)
		if err != nil {
			t.Fatalf("re-encode: %v", err)
		}
		if again != mnemonic {
			t.Fatalf("mnemonic did not round-trip")
		}
	}
}

func TestMnemonicFromEntropy_RejectsBadLength(t *testing.T) {
	_, err := crypto.MnemonicFromEntropy(make([]byte, 17))
	if !errors.Is(err, crypto.ErrEntropyLength) {
		t.Fatalf("got %v, want ErrEntropyLength", err)
	}
}

func TestEntropyFromMnemonic_RejectsBadWordCount(t *testing.T) {
	_, err := crypto.EntropyFromMnemonic(zeroMnemonic12 + " abandon")
	if !errors.Is(err, crypto.ErrMnemonicLength) {
		t.Fatalf("got %v, want ErrMnemonicLength", err)
	}
}

func TestEntropyFromMnemonic_NamesUnknownWord(t *testing.T) {
	phrase := strings.Replace(zeroMnemonic12, "about", "abandonn", 1)
	_, err := crypto.EntropyFromMnemonic(phrase)
	if !errors.Is(err, crypto.ErrUnknownWord) {
		t.Fatalf("got %v, want ErrUnknownWord", err)
	}
	if !strings.Contains(err.Error(), "abandonn") {
		t.Fatalf("error should name the offending word: %v", err)
	}
}

func TestEntropyFromMnemonic_DetectsChecksumMismatch(t *testing.T) {
	// Altering a single word without fixing the checksum must be rejected.
	cases := []string{
		strings.Replace(zeroMnemonic12, "about", "abandon", 1),           // last word
		strings.Replace(zeroMnemonic12, "abandon", "ability", 1),         // first word
		"zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo zoo",                // wrong final word
	}
	for _, phrase := range cases {
		if _, err := crypto.EntropyFromMnemonic(phrase); !errors.Is(err, crypto.ErrChecksum) {
			t.Fatalf("phrase %q: got %v, want ErrChecksum", phrase, err)
		}
	}
}

func TestGenerateMnemonic_FreshAndValid(t *testing.T) {
	first, err := crypto.GenerateMnemonic()
	if err != nil {
		t.Fatalf("GenerateMnemonic: %v", err)
	}
	if got := len(strings.Fields(first)); got != 24 {
		t.Fatalf("got %d words, want 24", got)
	}
	entropy, err := crypto.EntropyFromMnemonic(first)
	if err != nil {
		t.Fatalf("generated mnemonic failed to decode: %v", err)
	}
	if len(entropy) != 32 {
		t.Fatalf("got %d bytes of entropy, want 32", len(entropy))
	}

	second, err := crypto.GenerateMnemonic()
	if err != nil {
		t.Fatalf("GenerateMnemonic: %v", err)
	}
	if first == second {
		t.Fatal("two generated mnemonics were identical")
	}
}
