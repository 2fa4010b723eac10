// Package report carries findings out of the scan: an append-only
// finding log, an in-memory collector for tests, and CLI rendering.
package report

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"

	"github.com/seedsweep/seedsweep/internal/types"
)

// Sink receives findings as they are detected. Implementations must be
// append-only; a failed append must not abort the scan.
type Sink interface {
	Report(f types.Finding) error
}

// LogSink writes one timestamped line per finding to a size-capped,
// rotating log file. Append failures are reported once per run on the
// secondary log channel and otherwise swallowed so traversal continues.
type LogSink struct {
	path     string
	w        *lumberjack.Logger
	log      *log.Logger
	mu       sync.Mutex
	warnOnce sync.Once
}

// NewLogSink opens (or creates) the finding log at path. The caller is
// expected to register path with the exclusion engine so a run never
// scans its own output.
func NewLogSink(path string, logger *log.Logger) *LogSink {
	if logger == nil {
		logger = log.Default()
	}
	return &LogSink{
		path: path,
		w: &lumberjack.Logger{
			Filename:   path,
			MaxSize:    50, // MiB per log file
			MaxBackups: 3,
		},
		log: logger,
	}
}

// Path returns the location of the finding log.
func (s *LogSink) Path() string { return s.path }

// Report appends one finding line: timestamp, source path, kind label,
// exact matched text.
func (s *LogSink) Report(f types.Finding) error {
	ts := f.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	line := fmt.Sprintf("%s | %s | %s | %s\n",
		ts.Format("2006-01-02 15:04:05"), f.Path, f.Kind, f.Match)

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.w.Write([]byte(line)); err != nil {
		s.warnOnce.Do(func() {
			s.log.Error("cannot append to finding log", "path", s.path, "err", err)
		})
		return err
	}
	return nil
}

// Close flushes and closes the underlying log file.
func (s *LogSink) Close() error { return s.w.Close() }

// Collector is an in-memory Sink for tests and for building the CLI
// summary.
type Collector struct {
	mu       sync.Mutex
	findings []types.Finding
}

func (c *Collector) Report(f types.Finding) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.findings = append(c.findings, f)
	return nil
}

// Findings returns everything reported so far.
func (c *Collector) Findings() []types.Finding {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]types.Finding(nil), c.findings...)
}

// Tee fans one finding out to several sinks; the first error wins but
// every sink still sees the finding.
type Tee []Sink

func (t Tee) Report(f types.Finding) error {
	var first error
	for _, s := range t {
		if err := s.Report(f); err != nil && first == nil {
			first = err
		}
	}
	return first
}
