package core

import (
	"encoding/json"
	"io"
)

// MarshalFindings writes findings to w as indented JSON, the same shape
// the CLI emits with --json. Match values are written verbatim; mask
// before calling if the output leaves the machine.
func MarshalFindings(w io.Writer, findings []Finding) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(findings)
}

// UnmarshalFindings is the inverse, for programs that ingest a previous
// run's JSON output.
func UnmarshalFindings(r io.Reader) ([]Finding, error) {
	var findings []Finding
	err := json.NewDecoder(r).Decode(&findings)
	return findings, err
}
