package exclude

import "testing"

func TestAddDedupAndBlank(t *testing.T) {
	e := New()
	e.Add("  C:\\Windows\\*  ")
	e.Add("C:\\Windows\\*")
	e.Add("")
	e.Add("   ")
	if got := len(e.Patterns()); got != 1 {
		t.Fatalf("expected 1 pattern, got %d: %v", got, e.Patterns())
	}
	// Dedup is case-sensitive at insertion.
	e.Add("c:\\windows\\*")
	if got := len(e.Patterns()); got != 2 {
		t.Fatalf("expected 2 patterns, got %d", got)
	}
}

func TestIsExcludedCaseInsensitive(t *testing.T) {
	e := New()
	e.Add("/home/*/node_modules/*")
	cases := map[string]bool{
		"/home/alice/node_modules/pkg/index.js": true,
		"/HOME/Alice/NODE_MODULES/x":            true,
		"/home/alice/src/app.go":                false,
	}
	for p, want := range cases {
		if got := e.IsExcluded(p); got != want {
			t.Fatalf("IsExcluded(%q)=%v want %v", p, got, want)
		}
	}
}

func TestStarCrossesSeparators(t *testing.T) {
	e := New()
	e.Add("/var/*cache*")
	// Whole-string semantics: * spans directory boundaries.
	if !e.IsExcluded("/var/lib/deep/cache/file.bin") {
		t.Fatal("expected * to match across path separators")
	}
	if e.IsExcluded("/var/lib/deep/stash/file.bin") {
		t.Fatal("unexpected match")
	}
}

func TestProtectedPath(t *testing.T) {
	e := New()
	e.Protect("/tmp/findings.log")
	if !e.IsExcluded("/tmp/findings.log") {
		t.Fatal("own log path must always be excluded")
	}
	if !e.IsExcluded("/TMP/Findings.LOG") {
		t.Fatal("protection must be case-insensitive")
	}
	if e.IsExcluded("/tmp/other.log") {
		t.Fatal("unrelated path must not be excluded")
	}
}

func TestAddFromEnv(t *testing.T) {
	t.Setenv("SEEDSWEEP_TEST_BASE", "/opt/app")
	e := New()
	if !e.AddFromEnv("SEEDSWEEP_TEST_BASE", "cache/*") {
		t.Fatal("expected pattern from set variable")
	}
	if !e.IsExcluded("/opt/app/cache/blob") {
		t.Fatal("env-derived pattern must match")
	}

	t.Setenv("SEEDSWEEP_TEST_EMPTY", "")
	if e.AddFromEnv("SEEDSWEEP_TEST_EMPTY", "cache/*") {
		t.Fatal("empty variable must be skipped silently")
	}
	if e.AddFromEnv("SEEDSWEEP_TEST_UNSET_VAR", "cache/*") {
		t.Fatal("unset variable must be skipped silently")
	}
}

func TestGlobMatchEdges(t *testing.T) {
	cases := []struct {
		pattern, s string
		want       bool
	}{
		{"*", "anything/at/all", true},
		{"", "", true},
		{"", "x", false},
		{"a*b*c", "a/x/b/y/c", true},
		{"a*b*c", "a/x/b/y/d", false},
		{"exact", "exact", true},
		{"**", "nested/still/fine", true},
	}
	for _, c := range cases {
		if got := globMatch(c.pattern, c.s); got != c.want {
			t.Fatalf("globMatch(%q, %q)=%v want %v", c.pattern, c.s, got, c.want)
		}
	}
}
