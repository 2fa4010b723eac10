// Package audit keeps a JSONL history of scans under the state
// directory. Matched credential text is masked before it is recorded;
// only the finding log holds exact matches.
package audit

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/seedsweep/seedsweep/internal/report"
	"github.com/seedsweep/seedsweep/internal/types"
)

type ScanRecord struct {
	Timestamp     time.Time        `json:"timestamp"`
	ScanID        string           `json:"scan_id"`
	Roots         []string         `json:"roots"`
	TotalFindings int              `json:"total_findings"`
	KindCounts    map[string]int   `json:"kind_counts"`
	FilesScanned  int              `json:"files_scanned"`
	FilesSkipped  int              `json:"files_skipped"`
	Duration      string           `json:"duration"`
	OCRAvailable  bool             `json:"ocr_available"`
	TopFindings   []FindingSummary `json:"top_findings,omitempty"`
}

type FindingSummary struct {
	Path   string `json:"path"`
	Kind   string `json:"kind"`
	Line   int    `json:"line,omitempty"`
	Masked string `json:"masked"`
}

type Log struct {
	logPath string
}

func New(stateDir string) *Log {
	return &Log{logPath: filepath.Join(stateDir, "audit.jsonl")}
}

func (a *Log) Path() string { return a.logPath }

// Append writes one record to the history. Best-effort: callers treat a
// failure as a warning, never a scan abort.
func (a *Log) Append(rec ScanRecord) error {
	if rec.ScanID == "" {
		rec.ScanID = fmt.Sprintf("scan_%d", time.Now().Unix())
	}
	if err := os.MkdirAll(filepath.Dir(a.logPath), 0o700); err != nil {
		return err
	}
	f, err := os.OpenFile(a.logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("open audit log: %w", err)
	}
	defer f.Close()
	if err := json.NewEncoder(f).Encode(rec); err != nil {
		return fmt.Errorf("write audit record: %w", err)
	}
	return nil
}

// History returns recorded scans, newest first. Malformed lines are
// skipped.
func (a *Log) History() ([]ScanRecord, error) {
	f, err := os.Open(a.logPath)
	if err != nil {
		return nil, fmt.Errorf("open audit log: %w", err)
	}
	defer f.Close()

	var records []ScanRecord
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}
		var rec ScanRecord
		if err := json.Unmarshal(line, &rec); err != nil {
			continue
		}
		records = append(records, rec)
	}
	if err := sc.Err(); err != nil {
		return records, fmt.Errorf("read audit log: %w", err)
	}
	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}
	return records, nil
}

// NewScanRecord summarizes one finished scan. At most ten findings are
// kept, with their match text masked.
func NewScanRecord(roots []string, findings []types.Finding, filesScanned, filesSkipped int, duration time.Duration, ocr bool) ScanRecord {
	kindCounts := make(map[string]int)
	for _, f := range findings {
		kindCounts[f.Kind]++
	}
	top := make([]FindingSummary, 0, 10)
	for i, f := range findings {
		if i >= 10 {
			break
		}
		top = append(top, FindingSummary{
			Path:   f.Path,
			Kind:   f.Kind,
			Line:   f.Line,
			Masked: report.MaskValue(f.Match),
		})
	}
	return ScanRecord{
		Timestamp:     time.Now(),
		Roots:         roots,
		TotalFindings: len(findings),
		KindCounts:    kindCounts,
		FilesScanned:  filesScanned,
		FilesSkipped:  filesSkipped,
		Duration:      duration.String(),
		OCRAvailable:  ocr,
		TopFindings:   top,
	}
}
