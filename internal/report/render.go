package report

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/seedsweep/seedsweep/internal/types"
)

type PrintOptions struct {
	NoColor      bool
	Duration     time.Duration
	FilesScanned int
	FilesSkipped int
}

// PrintTable renders findings sorted by path/line with masked match
// values, followed by a summary footer.
func PrintTable(w io.Writer, findings []types.Finding, opts PrintOptions) {
	sort.Slice(findings, func(i, j int) bool {
		if findings[i].Path == findings[j].Path {
			return findings[i].Line < findings[j].Line
		}
		return findings[i].Path < findings[j].Path
	})

	if len(findings) == 0 {
		fmt.Fprintln(w, "No exposed wallet credentials found ✅")
	} else {
		table := tablewriter.NewWriter(w)
		table.SetHeader([]string{"Severity", "Kind", "Location", "Match"})
		table.SetBorder(false)
		table.SetColumnAlignment([]int{
			tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT,
			tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT,
		})
		for _, f := range findings {
			loc := f.Path
			if f.Line > 0 {
				loc = fmt.Sprintf("%s:%d", f.Path, f.Line)
			}
			table.Append([]string{severityLabel(f.Severity, opts.NoColor), f.Kind, loc, MaskValue(f.Match)})
		}
		table.Render()
	}

	high, med, low := 0, 0, 0
	for _, f := range findings {
		switch f.Severity {
		case types.SevHigh:
			high++
		case types.SevMed:
			med++
		default:
			low++
		}
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Findings: %d (high: %d, medium: %d, low: %d)\n", len(findings), high, med, low)
	if opts.Duration > 0 {
		fmt.Fprintf(w, "Scan duration: %.2fs\n", opts.Duration.Seconds())
	}
	if opts.FilesScanned > 0 || opts.FilesSkipped > 0 {
		fmt.Fprintf(w, "Files scanned: %d (skipped: %d)\n", opts.FilesScanned, opts.FilesSkipped)
	}
}

// PrintJSON emits the findings as a JSON array with masked matches.
func PrintJSON(w io.Writer, findings []types.Finding) error {
	masked := make([]types.Finding, len(findings))
	for i, f := range findings {
		masked[i] = f
		masked[i].Match = MaskValue(f.Match)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(masked)
}

// MaskValue hides the middle of a matched credential so renderers never
// re-expose what the scanner found. The finding log keeps the exact text.
func MaskValue(s string) string {
	if len(s) <= 8 {
		return "********"
	}
	return s[:4] + "…" + s[len(s)-4:]
}

func severityLabel(s types.Severity, noColor bool) string {
	if noColor {
		return string(s)
	}
	switch s {
	case types.SevHigh:
		return color.RedString(string(s))
	case types.SevMed:
		return color.YellowString(string(s))
	default:
		return color.CyanString(string(s))
	}
}
