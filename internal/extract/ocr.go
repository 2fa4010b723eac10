package extract

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// Tesseract drives an external tesseract binary for image OCR. The
// availability probe runs once at construction: binary located, version
// readable, language list readable. When any step fails the engine
// reports unavailable and traversal skips image files.
type Tesseract struct {
	execPath  string
	version   string
	languages []string
	available bool
}

// NewTesseract locates and probes the OCR engine. It never fails; check
// Available before use.
func NewTesseract() *Tesseract {
	t := &Tesseract{}
	t.execPath = findTesseract()
	if t.execPath == "" {
		return t
	}
	t.version = probeVersion(t.execPath)
	if t.version == "" {
		return t
	}
	t.languages = probeLanguages(t.execPath)
	t.available = true
	return t
}

func (t *Tesseract) Available() bool { return t.available }

func (t *Tesseract) Version() string { return t.version }

func (t *Tesseract) Languages() []string { return t.languages }

// HasLanguage checks installed language data, handling combined codes
// like "eng+deu".
func (t *Tesseract) HasLanguage(lang string) bool {
	for _, part := range strings.Split(lang, "+") {
		part = strings.TrimSpace(part)
		found := false
		for _, l := range t.languages {
			if l == part {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Recognize runs OCR on one image and returns the recognized text. The
// context bounds the external process; a hung engine is killed rather
// than blocking traversal.
func (t *Tesseract) Recognize(ctx context.Context, path, lang string) (string, error) {
	if !t.available {
		return "", fmt.Errorf("tesseract not available")
	}
	if _, err := os.Stat(path); err != nil {
		return "", err
	}
	if lang == "" || !t.HasLanguage(lang) {
		lang = t.fallbackLanguage(lang)
	}

	cmd := exec.CommandContext(ctx, t.execPath, path, "stdout", "-l", lang)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return "", fmt.Errorf("tesseract: %s", msg)
	}
	return strings.TrimSpace(stdout.String()), nil
}

func (t *Tesseract) fallbackLanguage(lang string) string {
	if t.HasLanguage("eng") {
		return "eng"
	}
	if len(t.languages) > 0 {
		return t.languages[0]
	}
	return lang
}

func findTesseract() string {
	if p, err := exec.LookPath("tesseract"); err == nil {
		return p
	}
	var candidates []string
	if runtime.GOOS == "windows" {
		candidates = []string{
			filepath.Join(os.Getenv("ProgramFiles"), "Tesseract-OCR", "tesseract.exe"),
			filepath.Join(os.Getenv("ProgramFiles(x86)"), "Tesseract-OCR", "tesseract.exe"),
			filepath.Join(os.Getenv("LOCALAPPDATA"), "Programs", "Tesseract-OCR", "tesseract.exe"),
		}
	} else {
		candidates = []string{
			"/usr/bin/tesseract",
			"/usr/local/bin/tesseract",
			"/opt/homebrew/bin/tesseract",
		}
	}
	for _, c := range candidates {
		if _, err := os.Stat(c); err == nil {
			return c
		}
	}
	return ""
}

func probeVersion(execPath string) string {
	out, err := exec.Command(execPath, "--version").CombinedOutput()
	if err != nil {
		return ""
	}
	// First line looks like "tesseract 5.3.0".
	lines := strings.SplitN(string(out), "\n", 2)
	fields := strings.Fields(lines[0])
	if len(fields) >= 2 {
		return fields[1]
	}
	return strings.TrimSpace(lines[0])
}

func probeLanguages(execPath string) []string {
	out, err := exec.Command(execPath, "--list-langs").CombinedOutput()
	if err != nil {
		return nil
	}
	var langs []string
	for i, line := range strings.Split(string(out), "\n") {
		if i == 0 { // header line with the tessdata path
			continue
		}
		lang := strings.TrimSpace(line)
		if lang != "" && !strings.HasPrefix(lang, "List of") {
			langs = append(langs, lang)
		}
	}
	return langs
}
