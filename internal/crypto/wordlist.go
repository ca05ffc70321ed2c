package crypto

import "github.com/tyler-smith/go-bip39/wordlists"

// WordCount is the size of the mnemonic vocabulary. Each word encodes an
// 11-bit index.
const WordCount = 2048

// wordList is the ordered English vocabulary, loaded once at init.
var wordList = wordlists.English

// wordIndex maps each vocabulary word to its 11-bit index.
var wordIndex = func() map[string]int {
	m := make(map[string]int, len(wordList))
	for i, w := range wordList {
		m[w] = i
	}
	return m
}()
