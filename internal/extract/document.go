package extract

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Caps on document extraction work. A credential dump is overwhelmingly
// near the front of a document; bounding pages and text keeps a single
// pathological file from stalling the run.
const (
	maxPDFPages     = 50
	maxDocTextBytes = 1 << 20
)

// ExtractDocument is the built-in document-text collaborator. It handles
// PDF directly and treats every other supported document extension as a
// zip container with XML text parts (OOXML and ODF).
func ExtractDocument(ctx context.Context, path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".pdf" {
		return extractPDF(ctx, path)
	}
	return extractZipXML(ctx, path)
}

func extractPDF(ctx context.Context, path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	st, err := f.Stat()
	if err != nil {
		return "", err
	}
	r, err := pdf.NewReader(f, st.Size())
	if err != nil {
		return "", fmt.Errorf("pdf open: %w", err)
	}

	pages := r.NumPage()
	if pages > maxPDFPages {
		pages = maxPDFPages
	}
	var buf strings.Builder
	for i := 1; i <= pages; i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		buf.WriteString(content)
		buf.WriteByte('\n')
		if buf.Len() >= maxDocTextBytes {
			break
		}
	}
	return buf.String(), nil
}

// Text-bearing zip entries for OOXML and ODF containers.
func isTextPart(name string) bool {
	switch {
	case name == "word/document.xml",
		strings.HasPrefix(name, "word/header"),
		strings.HasPrefix(name, "word/footer"),
		name == "xl/sharedStrings.xml",
		strings.HasPrefix(name, "ppt/slides/slide"),
		name == "content.xml": // ODF
		return true
	}
	return false
}

func extractZipXML(ctx context.Context, path string) (string, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return "", fmt.Errorf("zip open: %w", err)
	}
	defer zr.Close()

	var buf strings.Builder
	for _, f := range zr.File {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		if !isTextPart(f.Name) {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			continue
		}
		buf.WriteString(xmlCharData(rc, maxDocTextBytes-buf.Len()))
		rc.Close()
		if buf.Len() >= maxDocTextBytes {
			break
		}
	}
	return buf.String(), nil
}

// xmlCharData pulls the character data out of an XML stream, separating
// runs with spaces, up to limit bytes.
func xmlCharData(r io.Reader, limit int) string {
	if limit <= 0 {
		return ""
	}
	dec := xml.NewDecoder(io.LimitReader(r, int64(limit)*4))
	var buf bytes.Buffer
	for buf.Len() < limit {
		tok, err := dec.Token()
		if err != nil {
			break
		}
		if cd, ok := tok.(xml.CharData); ok {
			buf.Write(cd)
			buf.WriteByte(' ')
		}
	}
	return buf.String()
}
