package detect

import (
	"reflect"
	"testing"
)

func TestWordTokens(t *testing.T) {
	got := WordTokens("Abandon, ability!\tzoo2zoo\nEnd")
	want := []string{"abandon", "ability", "zoo", "zoo", "end"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("WordTokens = %v, want %v", got, want)
	}
}

func TestKeyTokens(t *testing.T) {
	got := KeyTokens(`key=("abc", 'def'); [ghi] {jkl}` + " `mno` ")
	want := []string{"key=", "abc", "def", "ghi", "jkl", "mno"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("KeyTokens = %v, want %v", got, want)
	}
}

func TestKeyTokensEmpty(t *testing.T) {
	if got := KeyTokens("  ,, ;; "); len(got) != 0 {
		t.Fatalf("expected no tokens, got %v", got)
	}
}
