package core_test

import (
	"context"
	"fmt"
	"os"

	"github.com/seedsweep/seedsweep/pkg/core"
)

// ExampleScan demonstrates a simple scan of a single directory.
func ExampleScan() {
	cfg := core.Config{
		Roots:        []string{"."},
		IncludeGlobs: "*.txt",
		NoCache:      true,
	}

	findings, err := core.Scan(context.Background(), cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "scan failed: %v\n", err)
		return
	}

	if len(findings) == 0 {
		fmt.Println("nothing exposed")
	} else {
		fmt.Printf("found %d exposed credentials\n", len(findings))
		_ = core.MarshalFindings(os.Stdout, findings)
	}
}

// ExampleScanWithStats shows how to retrieve execution statistics.
func ExampleScanWithStats() {
	cfg := core.Config{
		Roots:   []string{"testdata"},
		NoCache: true,
	}

	result, err := core.ScanWithStats(context.Background(), cfg)
	if err != nil {
		panic(err)
	}

	fmt.Printf("scanned %d files in %s\n", result.FilesScanned, result.Duration)
	fmt.Printf("found %d findings\n", len(result.Findings))
	if !result.OCRAvailable {
		fmt.Println("note: image files were skipped (no OCR engine)")
	}
}
