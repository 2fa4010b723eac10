package detect

import "github.com/seedsweep/seedsweep/internal/wordlist"

// Mnemonic phrase lengths recognized by BIP39 wallets.
const (
	ShortPhrase = 12
	LongPhrase  = 24
)

// IsMnemonicWindow reports whether words is a plausible mnemonic phrase:
// exactly 12 or 24 words, every one of them in the dictionary. Any other
// window length is rejected outright. A single unknown word invalidates
// the whole window.
func IsMnemonicWindow(words []string, dict *wordlist.Set) bool {
	if len(words) != ShortPhrase && len(words) != LongPhrase {
		return false
	}
	for _, w := range words {
		if !dict.Contains(w) {
			return false
		}
	}
	return true
}
