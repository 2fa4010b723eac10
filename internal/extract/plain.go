package extract

import (
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/h2non/filetype"
)

// ReadPlainText reads a file expected to contain UTF-8 text. Files whose
// leading bytes sniff as a known binary container (archives, media,
// executables) are rejected even when the extension claims text, as is
// anything with NUL bytes or invalid UTF-8.
func ReadPlainText(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	head := b
	if len(head) > 262 {
		head = head[:262]
	}
	if t, _ := filetype.Match(head); t != filetype.Unknown {
		return "", fmt.Errorf("binary content (%s) behind text extension", t.MIME.Value)
	}
	if looksBinary(b) {
		return "", fmt.Errorf("NUL bytes in supposed text file")
	}
	if !utf8.Valid(b) {
		return "", fmt.Errorf("invalid UTF-8")
	}
	return string(b), nil
}

func looksBinary(b []byte) bool {
	const sniff = 800
	n := len(b)
	if n > sniff {
		n = sniff
	}
	for i := 0; i < n; i++ {
		if b[i] == 0 {
			return true
		}
	}
	return false
}
