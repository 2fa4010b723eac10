// Package engine orchestrates a scan: it walks the configured roots,
// filters candidates through the exclusion engine and extension set,
// extracts text, runs both detectors, and reports findings to the sink.
package engine

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/seedsweep/seedsweep/internal/cache"
	"github.com/seedsweep/seedsweep/internal/detect"
	"github.com/seedsweep/seedsweep/internal/exclude"
	"github.com/seedsweep/seedsweep/internal/extract"
	"github.com/seedsweep/seedsweep/internal/ignore"
	"github.com/seedsweep/seedsweep/internal/report"
	"github.com/seedsweep/seedsweep/internal/types"
	"github.com/seedsweep/seedsweep/internal/wordlist"
)

// Config controls scanning behavior: scope, filters, and limits.
type Config struct {
	Roots         []string // ordered; processed independently
	PriorityDirs  []string // high-value subfolder names resolved under each root
	IncludeGlobs  string   // comma-separated doublestar globs, positive filter
	ExcludeGlobs  string   // comma-separated doublestar globs, subtracted last
	OCRLang       string
	MaxTextBytes  int64
	MaxImageBytes int64
	Timeout       time.Duration // per external-extractor invocation
	NoCache       bool
	StateDir      string // where the cache and audit records live
}

// DefaultPriorityDirs are the user folders scanned ahead of the full
// sweep of each root.
func DefaultPriorityDirs() []string {
	return []string{"Desktop", "Documents", "Downloads", "Pictures"}
}

// Result contains findings plus basic scan statistics.
type Result struct {
	Findings     []types.Finding
	FilesScanned int
	FilesSkipped int
	Duration     time.Duration
	OCRAvailable bool
}

// Engine holds the per-run state: exclusions, dispatcher, detector,
// processed-path set, and the sink. Single-threaded by design: one file
// is fully extracted and scanned before the next is considered.
type Engine struct {
	cfg       Config
	excl      *exclude.Engine
	disp      *extract.Dispatcher
	scanner   *detect.Scanner
	sink      report.Sink
	log       *log.Logger
	db        cache.DB
	dbUpdated map[string]string
	processed map[string]struct{}
	ignRoot   string
	ign       *ignore.Matcher
	result    Result
}

// New wires an engine from its collaborators. A nil dispatcher gets the
// built-in one (with an OCR availability probe); a nil sink discards
// findings into a collector.
func New(cfg Config, dict *wordlist.Set, excl *exclude.Engine, disp *extract.Dispatcher, sink report.Sink, logger *log.Logger) *Engine {
	if logger == nil {
		logger = log.Default()
	}
	if dict == nil {
		dict = wordlist.Load()
	}
	if !dict.Complete() {
		logger.Warn("mnemonic dictionary is incomplete, detection accuracy degraded",
			"words", dict.Len(), "expected", wordlist.ExpectedWords)
	}
	if excl == nil {
		excl = exclude.New()
	}
	if disp == nil {
		disp = extract.NewDispatcher(extract.NewTesseract(), logger)
	}
	if cfg.MaxTextBytes > 0 {
		disp.MaxTextBytes = cfg.MaxTextBytes
	}
	if cfg.MaxImageBytes > 0 {
		disp.MaxImageBytes = cfg.MaxImageBytes
	}
	if cfg.Timeout > 0 {
		disp.Timeout = cfg.Timeout
	}
	if cfg.OCRLang != "" {
		disp.OCRLang = cfg.OCRLang
	}
	if sink == nil {
		sink = &report.Collector{}
	}
	if len(cfg.PriorityDirs) == 0 {
		cfg.PriorityDirs = DefaultPriorityDirs()
	}
	if !disp.OCRReady {
		logger.Warn("OCR engine not found, image files will be skipped")
	}
	return &Engine{
		cfg:       cfg,
		excl:      excl,
		disp:      disp,
		scanner:   detect.NewScanner(dict),
		sink:      sink,
		log:       logger,
		dbUpdated: map[string]string{},
		processed: make(map[string]struct{}),
	}
}

// ScanWithStats runs the scan over every configured root and returns the
// findings with timing and counts. Errors below the root level never
// surface here; they are logged and the walk moves on.
func (e *Engine) ScanWithStats(ctx context.Context) (Result, error) {
	started := time.Now()
	e.result = Result{OCRAvailable: e.disp.OCRReady}

	if !e.cfg.NoCache {
		e.db, _ = cache.Load(e.cfg.StateDir)
	} else {
		e.db.Entries = map[string]string{}
	}

	for _, root := range e.cfg.Roots {
		if err := ctx.Err(); err != nil {
			break
		}
		e.walkRoot(ctx, root)
	}

	if !e.cfg.NoCache && len(e.dbUpdated) > 0 {
		for k, v := range e.dbUpdated {
			e.db.Entries[k] = v
		}
		if err := cache.Save(e.cfg.StateDir, e.db); err != nil {
			e.log.Warn("cannot save scan cache", "err", err)
		}
	}

	e.result.Duration = time.Since(started)
	return e.result, nil
}
