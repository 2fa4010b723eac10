package seedsweep

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/seedsweep/seedsweep/internal/audit"
	"github.com/seedsweep/seedsweep/internal/cache"
	"github.com/seedsweep/seedsweep/internal/config"
	"github.com/seedsweep/seedsweep/internal/engine"
	"github.com/seedsweep/seedsweep/internal/exclude"
	"github.com/seedsweep/seedsweep/internal/extract"
	"github.com/seedsweep/seedsweep/internal/report"
	"github.com/seedsweep/seedsweep/internal/wordlist"
)

var (
	flagRoots          []string
	flagInclude        string
	flagExclude        string
	flagExcludePattern []string
	flagMaxTextBytes   int64
	flagMaxImageBytes  int64
	flagOCRLang        string
	flagTimeout        time.Duration
	flagFindingsLog    string
	flagFailOnFindings bool
)

func init() {
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Scan roots for exposed seed phrases and private keys",
		RunE:  runScan,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().StringSliceVarP(&flagRoots, "root", "r", nil, "root path to scan (repeatable; default: home directory)")
	cmd.Flags().StringVar(&flagInclude, "include", "", "comma-separated include globs")
	cmd.Flags().StringVar(&flagExclude, "exclude", "", "comma-separated exclude globs")
	cmd.Flags().StringArrayVar(&flagExcludePattern, "exclude-pattern", nil, "extra whole-path exclusion pattern (repeatable)")
	cmd.Flags().Int64Var(&flagMaxTextBytes, "max-bytes", 0, "skip non-image files larger than this (default 1 MiB)")
	cmd.Flags().Int64Var(&flagMaxImageBytes, "max-image-bytes", 0, "skip image files larger than this (default 50 MiB)")
	cmd.Flags().StringVar(&flagOCRLang, "ocr-lang", "", "tesseract language for image OCR (default eng)")
	cmd.Flags().DurationVar(&flagTimeout, "extract-timeout", 0, "per-file timeout for document/OCR extraction (default 30s)")
	cmd.Flags().StringVar(&flagFindingsLog, "findings-log", "", "finding log path (default <state dir>/findings.log)")
	cmd.Flags().BoolVar(&flagFailOnFindings, "fail-on-findings", false, "exit 1 when anything is found")
}

func runScan(cmd *cobra.Command, _ []string) error {
	logger := newLogger()

	// Config precedence: CLI > local > global.
	var gcfg, lcfg config.FileConfig
	if c, err := config.LoadGlobal(); err == nil {
		gcfg = c
	}
	if wd, err := os.Getwd(); err == nil {
		if c, err := config.LoadLocal(wd); err == nil {
			lcfg = c
		}
	}

	roots := flagRoots
	if len(roots) == 0 {
		roots = pickStrings(lcfg.Roots, gcfg.Roots)
	}
	roots, err := engine.ResolveRoots(roots, engine.HomeRoot{})
	if err != nil {
		return err
	}

	stateDir := cache.DefaultStateDir()
	findingsLog := pickString(flagFindingsLog, lcfg.FindingsLog, gcfg.FindingsLog)
	if findingsLog == "" {
		findingsLog = filepath.Join(stateDir, "findings.log")
	}
	if err := os.MkdirAll(filepath.Dir(findingsLog), 0o700); err != nil {
		return err
	}

	excl := buildExclusions(logger, lcfg, gcfg, findingsLog, stateDir)

	timeout := flagTimeout
	if timeout == 0 {
		for _, c := range []config.FileConfig{lcfg, gcfg} {
			if c.Timeout != nil {
				if d, err := time.ParseDuration(*c.Timeout); err == nil {
					timeout = d
					break
				}
			}
		}
	}

	dict := wordlist.Load()
	ocr := extract.NewTesseract()
	if ocr.Available() {
		logger.Info("OCR engine ready", "version", ocr.Version())
	}
	disp := extract.NewDispatcher(ocr, logger)

	cfg := engine.Config{
		Roots:         roots,
		PriorityDirs:  pickStrings(lcfg.PriorityDirs, gcfg.PriorityDirs),
		IncludeGlobs:  pickString(flagInclude, lcfg.Include, gcfg.Include),
		ExcludeGlobs:  pickString(flagExclude, lcfg.Exclude, gcfg.Exclude),
		OCRLang:       pickString(flagOCRLang, lcfg.OCRLang, gcfg.OCRLang),
		MaxTextBytes:  pickInt64(flagMaxTextBytes, lcfg.MaxTextBytes, gcfg.MaxTextBytes),
		MaxImageBytes: pickInt64(flagMaxImageBytes, lcfg.MaxImageBytes, gcfg.MaxImageBytes),
		Timeout:       timeout,
		NoCache:       pickBool(flagNoCache, lcfg.NoCache, gcfg.NoCache),
		StateDir:      stateDir,
	}

	logSink := report.NewLogSink(findingsLog, logger)
	defer logSink.Close()
	var collector report.Collector
	sink := report.Tee{logSink, &collector}

	eng := engine.New(cfg, dict, excl, disp, sink, logger)
	res, err := eng.ScanWithStats(context.Background())
	if err != nil {
		return err
	}

	record := audit.NewScanRecord(roots, res.Findings, res.FilesScanned, res.FilesSkipped, res.Duration, res.OCRAvailable)
	if err := audit.New(stateDir).Append(record); err != nil {
		logger.Warn("cannot write audit record", "err", err)
	}

	noColor := pickBool(flagNoColor, lcfg.NoColor, gcfg.NoColor)
	if flagJSON {
		if err := report.PrintJSON(os.Stdout, res.Findings); err != nil {
			return err
		}
	} else {
		report.PrintTable(os.Stdout, res.Findings, report.PrintOptions{
			NoColor:      noColor,
			Duration:     res.Duration,
			FilesScanned: res.FilesScanned,
			FilesSkipped: res.FilesSkipped,
		})
		logger.Info("findings logged", "path", findingsLog)
	}

	if flagFailOnFindings && len(res.Findings) > 0 {
		os.Exit(1)
	}
	return nil
}

// buildExclusions folds together the fixed base list, config patterns,
// environment-derived patterns, CLI patterns, and the scanner's own
// output paths. Built once, before traversal starts.
func buildExclusions(logger *log.Logger, lcfg, gcfg config.FileConfig, findingsLog, stateDir string) *exclude.Engine {
	excl := exclude.New()
	for _, p := range config.DefaultExcludePatterns() {
		excl.Add(p)
	}
	for _, c := range []config.FileConfig{gcfg, lcfg} {
		for _, p := range c.Excludes {
			excl.Add(p)
		}
	}
	for _, p := range flagExcludePattern {
		excl.Add(p)
	}

	envExcludes := append(config.DefaultEnvExcludes(), gcfg.EnvExcludes...)
	envExcludes = append(envExcludes, lcfg.EnvExcludes...)
	for _, ee := range envExcludes {
		if !excl.AddFromEnv(ee.Var, ee.Pattern) {
			logger.Debug("env exclusion skipped, variable unset", "var", ee.Var)
		}
	}

	// Never scan our own output.
	excl.Protect(findingsLog)
	excl.Add(filepath.Join(stateDir, "*"))
	return excl
}
