package core

import (
	"context"
	"io"

	"github.com/charmbracelet/log"

	"github.com/seedsweep/seedsweep/internal/detect"
	"github.com/seedsweep/seedsweep/internal/engine"
	"github.com/seedsweep/seedsweep/internal/report"
	"github.com/seedsweep/seedsweep/internal/types"
)

// Re-export selected internal types as a stable public API surface.
// These are type aliases so embedders can depend on a stable path; they
// can become decoupled structs later without breaking callers.
type (
	Config  = engine.Config
	Finding = types.Finding
	Result  = engine.Result
)

// Scan walks the configured roots and returns every finding. It is the
// stable entrypoint for other programs; the CLI wires the same engine
// with richer collaborators (sinks, exclusions, audit records).
func Scan(ctx context.Context, cfg Config) ([]Finding, error) {
	res, err := ScanWithStats(ctx, cfg)
	return res.Findings, err
}

// ScanWithStats is Scan plus file counts, timing, and OCR availability.
// The engine log is discarded; embedding programs get findings, not
// operator chatter.
func ScanWithStats(ctx context.Context, cfg Config) (Result, error) {
	var sink report.Collector
	e := engine.New(cfg, nil, nil, nil, &sink, log.New(io.Discard))
	return e.ScanWithStats(ctx)
}

// DetectorIDs returns every identifier a Finding may carry in its
// Detector field, exposed so callers can filter without importing
// internals.
func DetectorIDs() []string {
	ids := []string{"mnemonic_12", "mnemonic_24"}
	for _, k := range detect.Kinds() {
		ids = append(ids, k.ID)
	}
	return ids
}
