package detect

import (
	"strings"
	"testing"
)

func TestClassifyHex64(t *testing.T) {
	for _, tok := range []string{
		"0x" + strings.Repeat("a", 64),
		strings.Repeat("A", 64),
		strings.Repeat("0f", 32),
	} {
		kind, ok := ClassifyKey(tok)
		if !ok || kind != KindHex64 {
			t.Fatalf("ClassifyKey(%q) = %v, %v; want hex64", tok, kind, ok)
		}
	}
	if _, ok := ClassifyKey("0x" + strings.Repeat("a", 63)); ok {
		t.Fatal("63 hex chars must not classify")
	}
	if _, ok := ClassifyKey("0x" + strings.Repeat("a", 65)); ok {
		t.Fatal("65 hex chars must not classify")
	}
}

func TestClassifyWIF(t *testing.T) {
	for _, lead := range []string{"5", "K", "L"} {
		tok := lead + strings.Repeat("J", 50)
		kind, ok := ClassifyKey(tok)
		if !ok || kind != KindBitcoinWIF {
			t.Fatalf("ClassifyKey(%q) = %v, %v; want WIF", tok, kind, ok)
		}
	}
	// 0, O, I, l are outside the Base58 alphabet.
	if kind, _ := ClassifyKey("5" + strings.Repeat("J", 49) + "O"); kind == KindBitcoinWIF {
		t.Fatal("token with O must not classify as WIF")
	}
}

func TestClassifySolanaAndBase58(t *testing.T) {
	cases := []struct {
		n    int
		want KeyKind
	}{
		{44, KindSolanaKey},
		{86, KindSolanaSeed},
		{87, KindSolanaSeed},
		{88, KindSolanaSeed},
		{43, KindBase58},
		{60, KindBase58},
	}
	for _, c := range cases {
		tok := strings.Repeat("m", c.n)
		kind, ok := ClassifyKey(tok)
		if !ok || kind != c.want {
			t.Fatalf("ClassifyKey(len %d) = %v, %v; want %v", c.n, kind, ok, c.want)
		}
	}
	if _, ok := ClassifyKey(strings.Repeat("m", 42)); ok {
		t.Fatal("42 Base58 chars must not classify")
	}
	if _, ok := ClassifyKey(strings.Repeat("m", 89)); ok {
		t.Fatal("89 Base58 chars must not classify")
	}
}

func TestClassifyRipple(t *testing.T) {
	tok := "s" + strings.Repeat("h", 30)
	kind, ok := ClassifyKey(tok)
	if !ok || kind != KindRippleSeed {
		t.Fatalf("ClassifyKey(%q) = %v, %v; want ripple", tok, kind, ok)
	}
	if _, ok := ClassifyKey("s" + strings.Repeat("h", 27)); ok {
		t.Fatal("too-short ripple token must not classify")
	}
}

func TestClassifyNone(t *testing.T) {
	for _, tok := range []string{"hello", "", "password123", "0xdeadbeef"} {
		if kind, ok := ClassifyKey(tok); ok {
			t.Fatalf("ClassifyKey(%q) unexpectedly matched %v", tok, kind)
		}
	}
}

func TestClassifyPure(t *testing.T) {
	tok := "5" + strings.Repeat("J", 50)
	a, _ := ClassifyKey(tok)
	b, _ := ClassifyKey(tok)
	if a != b {
		t.Fatal("classifier must be deterministic")
	}
}
