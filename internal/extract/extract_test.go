package extract

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"
)

func testDispatcher() *Dispatcher {
	return &Dispatcher{
		Document:      ExtractDocument,
		MaxTextBytes:  DefaultMaxTextBytes,
		MaxImageBytes: DefaultMaxImageBytes,
		OCRLang:       "eng",
		Log:           log.New(os.Stderr),
	}
}

func TestCategoryFor(t *testing.T) {
	cases := []struct {
		ext string
		cat Category
		ok  bool
	}{
		{".txt", CatPlainText, true},
		{".json", CatPlainText, true},
		{".pdf", CatDocument, true},
		{".docx", CatDocument, true},
		{".png", CatImage, true},
		{".doc", CatUnsupported, true},
		{".exe", CatUnsupported, false},
		{".go", CatUnsupported, false},
	}
	for _, c := range cases {
		cat, ok := CategoryFor(c.ext)
		if cat != c.cat || ok != c.ok {
			t.Fatalf("CategoryFor(%q) = %v, %v; want %v, %v", c.ext, cat, ok, c.cat, c.ok)
		}
	}
}

func TestSizeCeilingBoundary(t *testing.T) {
	d := testDispatcher()
	dir := t.TempDir()
	p := filepath.Join(dir, "big.txt")
	require.NoError(t, os.WriteFile(p, []byte("seed words here"), 0o600))

	// Exactly at the ceiling is processed; one byte over is skipped.
	if _, ok := d.Extract(context.Background(), p, ".txt", DefaultMaxTextBytes); !ok {
		t.Fatal("file of exactly 1 MiB must be processed")
	}
	if _, ok := d.Extract(context.Background(), p, ".txt", DefaultMaxTextBytes+1); ok {
		t.Fatal("file of 1 MiB + 1 byte must be skipped")
	}

	d.Image = func(context.Context, string, string) (string, error) { return "ocr text", nil }
	d.OCRReady = true
	if _, ok := d.Extract(context.Background(), p, ".png", DefaultMaxImageBytes); !ok {
		t.Fatal("image of exactly 50 MiB must be processed")
	}
	if _, ok := d.Extract(context.Background(), p, ".png", DefaultMaxImageBytes+1); ok {
		t.Fatal("image of 50 MiB + 1 byte must be skipped")
	}
}

func TestExtractPlainText(t *testing.T) {
	d := testDispatcher()
	dir := t.TempDir()
	p := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(p, []byte("abandon ability able\n"), 0o600))

	text, ok := d.Extract(context.Background(), p, ".txt", 21)
	require.True(t, ok)
	require.Equal(t, "abandon ability able\n", text)
}

func TestExtractRejectsBinaryBehindTextExt(t *testing.T) {
	d := testDispatcher()
	dir := t.TempDir()
	p := filepath.Join(dir, "fake.txt")
	require.NoError(t, os.WriteFile(p, []byte("PK\x03\x04junk\x00\x00"), 0o600))

	if _, ok := d.Extract(context.Background(), p, ".txt", 12); ok {
		t.Fatal("zip content behind .txt must be rejected")
	}
}

func TestExtractUnsupportedSkipped(t *testing.T) {
	d := testDispatcher()
	if _, ok := d.Extract(context.Background(), "/nonexistent/f.doc", ".doc", 10); ok {
		t.Fatal("unsupported format must be skipped without touching the file")
	}
}

func TestExtractImageWithoutOCR(t *testing.T) {
	d := testDispatcher()
	if _, ok := d.Extract(context.Background(), "/nonexistent/shot.png", ".png", 10); ok {
		t.Fatal("image must be skipped when OCR is unavailable")
	}
}

func TestExtractorFailureContained(t *testing.T) {
	d := testDispatcher()
	d.Document = func(context.Context, string) (string, error) {
		return "", errors.New("converter crashed")
	}
	if _, ok := d.Extract(context.Background(), "/nonexistent/r.pdf", ".pdf", 10); ok {
		t.Fatal("extractor failure must yield no text, not panic or propagate")
	}
}

func TestReadPlainTextInvalidUTF8(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "latin1.txt")
	require.NoError(t, os.WriteFile(p, []byte{0xff, 0xfe, 'h', 'i'}, 0o600))
	if _, err := ReadPlainText(p); err == nil {
		t.Fatal("invalid UTF-8 must be an extraction failure")
	}
}
