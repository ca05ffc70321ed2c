package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"strings"

	pkgerrors "github.com/pkg/errors"
)

var (
	// ErrEntropyLength is returned when entropy is not 16, 20, 24, 28 or 32 bytes.
	ErrEntropyLength = errors.New("entropy length must be one of 16, 20, 24, 28 or 32 bytes")

	// ErrMnemonicLength is returned when a phrase is not 12, 15, 18, 21 or 24 words.
	ErrMnemonicLength = errors.New("mnemonic length must be one of 12, 15, 18, 21 or 24 words")

	// ErrUnknownWord is returned when a phrase contains a word outside the vocabulary.
	ErrUnknownWord = errors.New("word is not in the mnemonic dictionary; may be misspelled")

	// ErrChecksum is returned when the words are all valid but the trailing
	// checksum bits do not match the recovered entropy: the phrase is out of
	// order or has been altered.
	ErrChecksum = errors.New("mnemonic checksum mismatch")
)

// MnemonicFromEntropy encodes entropy as a checksummed word sequence.
//
// The checksum is the first len(entropy)/4 bits of SHA-256(entropy). Entropy
// bits followed by checksum bits are read off in 11-bit groups, each group
// indexing the vocabulary. The total bit count is always a multiple of 11 for
// the accepted entropy lengths.
func MnemonicFromEntropy(entropy []byte) (string, error) {
	switch len(entropy) {
	case 16, 20, 24, 28, 32:
	default:
		return "", pkgerrors.Wrapf(ErrEntropyLength, "got %d bytes", len(entropy))
	}

	checksumBits := len(entropy) / 4
	sum := sha256.Sum256(entropy)

	// The checksum is at most 8 bits, so one extra byte is enough.
	data := make([]byte, 0, len(entropy)+1)
	data = append(data, entropy...)
	data = append(data, sum[0])

	totalBits := len(entropy)*8 + checksumBits
	words := make([]string, 0, totalBits/11)
	for i := 0; i < totalBits/11; i++ {
		var index uint16
		for bit := i * 11; bit < (i+1)*11; bit++ {
			index <<= 1
			if data[bit/8]&(1<<(7-uint(bit%8))) != 0 {
				index |= 1
			}
		}
		words = append(words, wordList[index])
	}
	return strings.Join(words, " "), nil
}

// EntropyFromMnemonic decodes a checksummed word sequence back to the exact
// entropy it was produced from.
//
// Each word contributes its 11-bit vocabulary index; the bit sequence splits
// into words*11 - words/3 entropy bits and words/3 checksum bits. The checksum
// is recomputed over the recovered entropy and compared bit for bit.
func EntropyFromMnemonic(mnemonic string) ([]byte, error) {
	words := strings.Fields(mnemonic)
	switch len(words) {
	case 12, 15, 18, 21, 24:
	default:
		return nil, pkgerrors.Wrapf(ErrMnemonicLength, "got %d words", len(words))
	}

	buf := make([]byte, (len(words)*11+7)/8)
	bit := 0
	for _, w := range words {
		index, ok := wordIndex[w]
		if !ok {
			return nil, pkgerrors.Wrapf(ErrUnknownWord, "%q", w)
		}
		for shift := 10; shift >= 0; shift-- {
			if index&(1<<uint(shift)) != 0 {
				buf[bit/8] |= 1 << (7 - uint(bit%8))
			}
			bit++
		}
	}

	checksumBits := len(words) / 3
	entropyBits := len(words)*11 - checksumBits // always a multiple of 32
	entropy := buf[:entropyBits/8]

	sum := sha256.Sum256(entropy)
	for i := 0; i < checksumBits; i++ {
		stored := buf[(entropyBits+i)/8] & (1 << (7 - uint((entropyBits+i)%8)))
		computed := sum[i/8] & (1 << (7 - uint(i%8)))
		if (stored != 0) != (computed != 0) {
			return nil, ErrChecksum
		}
	}
	return entropy, nil
}

// GenerateMnemonic returns a fresh 24-word mnemonic from 32 bytes of
// cryptographically random entropy.
func GenerateMnemonic() (string, error) {
	entropy := make([]byte, 32)
	if _, err := rand.Read(entropy); err != nil {
		return "", err
	}
	return MnemonicFromEntropy(entropy)
}
