package ignore

import (
	"os"
	"path/filepath"
	"testing"
)

func TestIgnoreMatch(t *testing.T) {
	dir := t.TempDir()
	ig := filepath.Join(dir, FileName)
	content := "node_modules/\n*.pem\n# comment\n\nwallet-backup.txt\n"
	if err := os.WriteFile(ig, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	m, err := Load(ig)
	if err != nil {
		t.Fatal(err)
	}
	cases := map[string]bool{
		"node_modules/pkg/index.js": true,
		"certs/key.pem":             true,
		"wallet-backup.txt":         true,
		"sub/wallet-backup.txt":     true,
		"src/app.go":                false,
		"pemfile.txt":               false,
	}
	for p, want := range cases {
		if got := m.Match(p); got != want {
			t.Fatalf("Match(%q)=%v want %v", p, got, want)
		}
	}
}

func TestLoadRootMissingFile(t *testing.T) {
	m := LoadRoot(t.TempDir())
	if m != nil {
		t.Fatal("expected nil matcher for absent ignore file")
	}
	if m.Match("anything.txt") {
		t.Fatal("nil matcher must match nothing")
	}
}
