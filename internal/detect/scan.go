package detect

import (
	"fmt"
	"strings"
	"time"

	"github.com/seedsweep/seedsweep/internal/types"
	"github.com/seedsweep/seedsweep/internal/wordlist"
)

// Scanner runs both content passes (mnemonic windows, key tokens) over
// extracted text. It is stateless apart from the dictionary and safe to
// reuse across files.
type Scanner struct {
	Dict *wordlist.Set
}

func NewScanner(dict *wordlist.Set) *Scanner {
	return &Scanner{Dict: dict}
}

// Scan applies both detection passes to one document's text and returns
// every match. Both passes always run to completion; overlapping mnemonic
// windows are reported independently and never collapsed, so a true
// 24-word phrase also reports its all-dictionary 12-word sub-windows.
func (s *Scanner) Scan(path, text string) []types.Finding {
	out := s.scanMnemonics(path, text)
	out = append(out, s.scanKeys(path, text)...)
	return out
}

// Found reports whether the text contains any detectable credential.
func (s *Scanner) Found(path, text string) bool {
	return len(s.Scan(path, text)) > 0
}

// scanMnemonics slides 12- and 24-word windows over the normalized word
// stream. Both sizes are tested at every valid offset.
func (s *Scanner) scanMnemonics(path, text string) []types.Finding {
	words := WordTokens(text)
	var out []types.Finding
	for i := 0; i+ShortPhrase <= len(words); i++ {
		if IsMnemonicWindow(words[i:i+ShortPhrase], s.Dict) {
			out = append(out, mnemonicFinding(path, words[i:i+ShortPhrase]))
		}
		if i+LongPhrase <= len(words) && IsMnemonicWindow(words[i:i+LongPhrase], s.Dict) {
			out = append(out, mnemonicFinding(path, words[i:i+LongPhrase]))
		}
	}
	return out
}

func mnemonicFinding(path string, window []string) types.Finding {
	return types.Finding{
		Path:      path,
		Detector:  fmt.Sprintf("mnemonic_%d", len(window)),
		Kind:      fmt.Sprintf("%d-word mnemonic", len(window)),
		Match:     strings.Join(window, " "),
		Severity:  types.SevHigh,
		Timestamp: time.Now(),
	}
}

// scanKeys tokenizes the raw text line by line and classifies each token.
// Lines are tracked so key findings carry a usable location.
func (s *Scanner) scanKeys(path, text string) []types.Finding {
	var out []types.Finding
	for i, line := range strings.Split(text, "\n") {
		for _, tok := range KeyTokens(line) {
			kind, ok := ClassifyKey(tok)
			if !ok {
				continue
			}
			sev := types.SevHigh
			if kind == KindBase58 {
				// Generic Base58 runs are the noisiest rule.
				sev = types.SevMed
			}
			out = append(out, types.Finding{
				Path:      path,
				Line:      i + 1,
				Detector:  kind.ID,
				Kind:      kind.Label,
				Match:     tok,
				Severity:  sev,
				Timestamp: time.Now(),
			})
		}
	}
	return out
}
