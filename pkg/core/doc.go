// Package core is a small, stable facade over seedsweep's internal
// engine for programs that want to embed a scan. It re-exports a narrow
// API surface so integrations can depend on a stable import path
// without reaching into internal packages.
//
// Example:
//
//	cfg := core.Config{Roots: []string{home}, NoCache: true}
//	findings, err := core.Scan(ctx, cfg)
//	if err != nil { /* handle */ }
//	_ = core.MarshalFindings(os.Stdout, findings)
package core
