package extract

import (
	"archive/zip"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeDocx(t *testing.T, dir, body string) string {
	t.Helper()
	p := filepath.Join(dir, "wallet.docx")
	f, err := os.Create(p)
	require.NoError(t, err)
	zw := zip.NewWriter(f)

	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(`<?xml version="1.0"?><w:document><w:body><w:p><w:r><w:t>` +
		body + `</w:t></w:r></w:p></w:body></w:document>`))
	require.NoError(t, err)

	// A part that must not be extracted.
	w, err = zw.Create("word/media/image1.png")
	require.NoError(t, err)
	_, err = w.Write([]byte{0x89, 'P', 'N', 'G'})
	require.NoError(t, err)

	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())
	return p
}

func TestExtractDocumentDocx(t *testing.T) {
	p := writeDocx(t, t.TempDir(), "abandon ability able about")
	text, err := ExtractDocument(context.Background(), p)
	require.NoError(t, err)
	require.Contains(t, text, "abandon ability able about")
	require.NotContains(t, text, "PNG")
}

func TestExtractDocumentNotAZip(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "broken.docx")
	require.NoError(t, os.WriteFile(p, []byte("not a zip at all"), 0o600))
	if _, err := ExtractDocument(context.Background(), p); err == nil {
		t.Fatal("expected an error for a non-zip docx")
	}
}

func TestExtractDocumentCancelled(t *testing.T) {
	p := writeDocx(t, t.TempDir(), strings.Repeat("word ", 100))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := ExtractDocument(ctx, p); err == nil {
		t.Fatal("expected context error after cancellation")
	}
}
