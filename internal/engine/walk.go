package engine

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	xxhash "github.com/cespare/xxhash/v2"

	"github.com/seedsweep/seedsweep/internal/extract"
	"github.com/seedsweep/seedsweep/internal/ignore"
)

// scannableExts is the union of text, document, and image extensions.
var scannableExts = extract.ScannableExts()

// walkRoot processes one root: first the priority subfolders that exist
// under it, then the root in its entirety. The processed-path set makes
// the two passes never process a file twice.
func (e *Engine) walkRoot(ctx context.Context, root string) {
	if _, err := os.Stat(root); err != nil {
		e.log.Error("root unreachable, skipping", "root", root, "err", err)
		return
	}

	e.ignRoot = resolvePath(root)
	e.ign = ignore.LoadRoot(root)
	if e.ign != nil {
		e.log.Debug("loaded ignore file", "root", root)
	}

	for _, name := range e.cfg.PriorityDirs {
		dir := filepath.Join(root, name)
		if st, err := os.Stat(dir); err != nil || !st.IsDir() {
			continue
		}
		e.walkTree(ctx, dir)
	}
	e.walkTree(ctx, root)
}

// walkTree is a lazy depth-first walk with per-directory error isolation:
// a denied subdirectory is logged and skipped without aborting the rest
// of the tree.
func (e *Engine) walkTree(ctx context.Context, dir string) {
	err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if cerr := ctx.Err(); cerr != nil {
			return fs.SkipAll
		}
		if err != nil {
			e.log.Warn("walk error", "path", p, "err", err)
			return nil
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}
		e.handleFile(ctx, p, d)
		return nil
	})
	if err != nil {
		// WalkDir only fails outright when the tree root itself is bad.
		e.log.Error("abandoning tree", "dir", dir, "err", err)
	}
}

// handleFile runs the full per-file pipeline. Every error is contained
// here: the file is abandoned, never retried, and the walk continues.
func (e *Engine) handleFile(ctx context.Context, p string, d fs.DirEntry) {
	abs := resolvePath(p)

	// At-most-once per run, even when the priority pass and the sweep
	// both discover the file.
	if _, done := e.processed[abs]; done {
		return
	}
	e.processed[abs] = struct{}{}

	if e.excl.IsExcluded(abs) {
		e.result.FilesSkipped++
		return
	}
	if rel, err := filepath.Rel(e.ignRoot, abs); err == nil && e.ign.Match(rel) {
		e.result.FilesSkipped++
		return
	}
	ext := strings.ToLower(filepath.Ext(abs))
	if !scannableExts[ext] {
		e.result.FilesSkipped++
		return
	}
	if !allowedByGlobs(abs, e.cfg.IncludeGlobs, e.cfg.ExcludeGlobs) {
		e.result.FilesSkipped++
		return
	}

	info, err := d.Info()
	if err != nil {
		e.log.Warn("cannot stat file", "path", abs, "err", err)
		e.result.FilesSkipped++
		return
	}

	var sig string
	if !e.cfg.NoCache {
		sig = fileSignature(info.Size(), info.ModTime().UnixNano())
		if e.db.Entries[abs] == sig {
			e.result.FilesSkipped++
			return
		}
	}

	text, ok := e.disp.Extract(ctx, abs, ext, info.Size())
	e.result.FilesScanned++
	if !ok {
		// Not cached: a failed extraction (crashed converter, missing
		// OCR engine) gets another chance on the next run.
		return
	}
	if !e.cfg.NoCache {
		e.dbUpdated[abs] = sig
	}

	for _, f := range e.scanner.Scan(abs, text) {
		e.result.Findings = append(e.result.Findings, f)
		if err := e.sink.Report(f); err != nil {
			e.log.Warn("finding sink append failed", "path", abs, "err", err)
		}
	}
}

// resolvePath canonicalizes a path for the processed set: symlinks
// resolved when possible, absolute otherwise.
func resolvePath(p string) string {
	if r, err := filepath.EvalSymlinks(p); err == nil {
		p = r
	}
	if a, err := filepath.Abs(p); err == nil {
		return a
	}
	return p
}

// fileSignature is the cache value for unchanged-file skipping: a cheap
// size+mtime hash rather than content, so cached files are never read.
func fileSignature(size, mtime int64) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(fmt.Sprintf("%d:%d", size, mtime)))
}
