// Package wordlist provides the canonical BIP39 English wordlist as a
// lookup set for mnemonic detection.
package wordlist

import (
	"github.com/tyler-smith/go-bip39/wordlists"
)

// ExpectedWords is the cardinality of a complete BIP39 wordlist.
const ExpectedWords = 2048

// Set is a read-only membership set over the mnemonic dictionary.
// Words are stored lowercase; lookups expect lowercase input.
type Set struct {
	words map[string]struct{}
	order []string
}

// Load builds the set from the canonical English wordlist.
func Load() *Set {
	return FromWords(wordlists.English)
}

// FromWords builds a set from an explicit word list. Intended for tests
// and for callers supplying an alternate dictionary source.
func FromWords(words []string) *Set {
	s := &Set{words: make(map[string]struct{}, len(words))}
	for _, w := range words {
		if _, dup := s.words[w]; dup {
			continue
		}
		s.words[w] = struct{}{}
		s.order = append(s.order, w)
	}
	return s
}

// Contains reports whether w is a dictionary word. The tokenizer
// lowercases input before lookup, so comparison is effectively
// case-insensitive end to end.
func (s *Set) Contains(w string) bool {
	_, ok := s.words[w]
	return ok
}

// Len returns the number of distinct words loaded.
func (s *Set) Len() int { return len(s.order) }

// Complete reports whether the set has the full expected cardinality.
// A short list degrades detection accuracy but is not an error.
func (s *Set) Complete() bool { return len(s.order) == ExpectedWords }

// Words returns the words in insertion order.
func (s *Set) Words() []string { return s.order }
