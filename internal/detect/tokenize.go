package detect

import "strings"

// keySeparator reports whether r separates key-candidate tokens. Raw text
// is split on whitespace plus the common bracketing, quoting, and listing
// punctuation that surrounds pasted key material.
func keySeparator(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\v', '\f',
		',', ';', '(', ')', '{', '}', '[', ']', '"', '\'', '`':
		return true
	}
	return false
}

// KeyTokens splits raw text into candidate tokens for key classification.
// Every maximal run of non-separator characters is a token; empty tokens
// are dropped by FieldsFunc.
func KeyTokens(text string) []string {
	return strings.FieldsFunc(text, keySeparator)
}

// WordTokens normalizes text into the lowercase word stream used for
// mnemonic scanning: every character that is not an ASCII letter acts as
// a separator, so punctuation, digits, newlines and tabs all break words.
func WordTokens(text string) []string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
		default:
			b.WriteByte(' ')
		}
	}
	return strings.Fields(b.String())
}
