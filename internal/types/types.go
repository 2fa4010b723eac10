package types

import "time"

// Severity is a coarse-grained risk level for a finding.
type Severity string

const (
	SevLow  Severity = "low"
	SevMed  Severity = "medium"
	SevHigh Severity = "high"
)

// Finding describes a wallet credential detected in a scanned file: a
// mnemonic phrase window or a private-key token. Match holds the exact
// matched text; renderers are expected to mask it before display.
type Finding struct {
	Path      string    `json:"path"`
	Line      int       `json:"line,omitempty"` // 1-based; 0 when the match spans lines
	Detector  string    `json:"detector"`
	Kind      string    `json:"kind"` // human-readable label, e.g. "12-word mnemonic"
	Match     string    `json:"match"`
	Severity  Severity  `json:"severity"`
	Timestamp time.Time `json:"timestamp"`
}
