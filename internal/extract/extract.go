// Package extract turns files into scannable text. A dispatcher selects
// the extractor by extension category, enforces per-category size
// ceilings, and contains every extraction failure at the file boundary.
package extract

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// Category classifies an extension into an extraction strategy.
type Category int

const (
	CatUnsupported Category = iota
	CatPlainText
	CatDocument
	CatImage
)

func (c Category) String() string {
	switch c {
	case CatPlainText:
		return "text"
	case CatDocument:
		return "document"
	case CatImage:
		return "image"
	default:
		return "unsupported"
	}
}

var textExts = map[string]bool{
	".txt": true, ".log": true, ".md": true, ".csv": true,
	".json": true, ".xml": true, ".yml": true, ".yaml": true,
	".ini": true, ".cfg": true, ".conf": true, ".env": true,
	".toml": true, ".key": true, ".dat": true, ".bak": true,
}

var docExts = map[string]bool{
	".pdf": true, ".docx": true, ".xlsx": true, ".pptx": true,
	".odt": true, ".ods": true, ".odp": true,
}

var imageExts = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".bmp": true,
	".gif": true, ".tif": true, ".tiff": true, ".webp": true,
}

// Legacy/binary document formats with no extractor. Skipped explicitly so
// they never reach the plain-text decoder.
var unsupportedExts = map[string]bool{
	".doc": true, ".xls": true, ".ppt": true, ".rtf": true, ".one": true,
}

// CategoryFor maps a lowercased extension (leading dot) to its category.
// Extensions outside all sets report ok=false; traversal filters those
// out before dispatch.
func CategoryFor(ext string) (Category, bool) {
	switch {
	case unsupportedExts[ext]:
		return CatUnsupported, true
	case textExts[ext]:
		return CatPlainText, true
	case docExts[ext]:
		return CatDocument, true
	case imageExts[ext]:
		return CatImage, true
	}
	return CatUnsupported, false
}

// ScannableExts returns the union of text, document, and image extensions:
// the set of files traversal hands to the dispatcher.
func ScannableExts() map[string]bool {
	out := make(map[string]bool, len(textExts)+len(docExts)+len(imageExts))
	for _, m := range []map[string]bool{textExts, docExts, imageExts} {
		for k := range m {
			out[k] = true
		}
	}
	return out
}

// Size ceilings, checked before any extraction attempt. Files at exactly
// the ceiling are processed; one byte over is skipped.
const (
	DefaultMaxTextBytes  = 1 << 20  // non-image files
	DefaultMaxImageBytes = 50 << 20 // image files
)

// DefaultTimeout bounds each external extractor invocation. The document
// and OCR collaborators spawn processes that can hang; traversal must not
// hang with them.
const DefaultTimeout = 30 * time.Second

// DocumentFunc extracts text from a rich-document file.
type DocumentFunc func(ctx context.Context, path string) (string, error)

// ImageFunc extracts text from an image via OCR.
type ImageFunc func(ctx context.Context, path string, lang string) (string, error)

// Dispatcher routes a file to the extractor for its category. Document
// and OCR collaborators are injected; OCRReady gates image extraction on
// the one-time engine availability check.
type Dispatcher struct {
	Document      DocumentFunc
	Image         ImageFunc
	OCRReady      bool
	OCRLang       string
	MaxTextBytes  int64
	MaxImageBytes int64
	Timeout       time.Duration
	Log           *log.Logger
}

// NewDispatcher builds a dispatcher with the built-in document extractor
// and the given OCR engine (nil means no OCR; image files are skipped).
func NewDispatcher(ocr *Tesseract, logger *log.Logger) *Dispatcher {
	d := &Dispatcher{
		Document:      ExtractDocument,
		MaxTextBytes:  DefaultMaxTextBytes,
		MaxImageBytes: DefaultMaxImageBytes,
		Timeout:       DefaultTimeout,
		OCRLang:       "eng",
		Log:           logger,
	}
	if logger == nil {
		d.Log = log.Default()
	}
	if ocr != nil && ocr.Available() {
		d.Image = ocr.Recognize
		d.OCRReady = true
	}
	return d
}

// Extract returns the text of the file, or ok=false when the file is
// skipped or extraction fails. Failures are logged with the path and the
// underlying message; they never propagate.
func (d *Dispatcher) Extract(ctx context.Context, path, ext string, size int64) (string, bool) {
	cat, known := CategoryFor(ext)
	if !known || cat == CatUnsupported {
		d.Log.Debug("skipping unsupported format", "path", path, "ext", ext)
		return "", false
	}

	if cat == CatImage {
		if size > d.MaxImageBytes {
			d.Log.Debug("image over size ceiling", "path", path, "size", size)
			return "", false
		}
	} else if size > d.MaxTextBytes {
		d.Log.Debug("file over size ceiling", "path", path, "size", size)
		return "", false
	}

	switch cat {
	case CatPlainText:
		text, err := ReadPlainText(path)
		if err != nil {
			d.Log.Warn("text extraction failed", "path", path, "err", err)
			return "", false
		}
		return text, true

	case CatDocument:
		tctx, cancel := context.WithTimeout(ctx, d.timeout())
		defer cancel()
		text, err := d.Document(tctx, path)
		if err != nil {
			d.Log.Warn("document extraction failed", "path", path, "err", err)
			return "", false
		}
		return text, true

	case CatImage:
		if !d.OCRReady || d.Image == nil {
			d.Log.Warn("OCR unavailable, skipping image", "path", path)
			return "", false
		}
		tctx, cancel := context.WithTimeout(ctx, d.timeout())
		defer cancel()
		text, err := d.Image(tctx, path, d.OCRLang)
		if err != nil {
			d.Log.Warn("OCR failed", "path", path, "err", err)
			return "", false
		}
		return text, true
	}
	return "", false
}

func (d *Dispatcher) timeout() time.Duration {
	if d.Timeout > 0 {
		return d.Timeout
	}
	return DefaultTimeout
}
