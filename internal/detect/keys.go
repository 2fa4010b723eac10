package detect

import "regexp"

// KeyKind labels one private-key encoding the classifier recognizes.
type KeyKind struct {
	ID    string
	Label string
}

var (
	KindHex64       = KeyKind{"hex64_private_key", "64-character hex private key"}
	KindBitcoinWIF  = KeyKind{"bitcoin_wif", "Bitcoin WIF private key"}
	KindSolanaKey   = KeyKind{"solana_key_32", "Solana-like (32-byte)"}
	KindSolanaSeed  = KeyKind{"solana_seed_64", "Solana-like (64-byte seed)"}
	KindBase58      = KeyKind{"base58_private_key", "Base58-encoded private key"}
	KindRippleSeed  = KeyKind{"ripple_private_key", "Ripple private key"}
)

// Base58 alphabet: digits and letters excluding 0, O, I, l.
const base58 = `[1-9A-HJ-NP-Za-km-z]`

// Rules are evaluated in this order; first match wins. They are disjoint
// by construction (WIF and Ripple token lengths fall outside or ahead of
// the generic Base58 range), so the order only decides which label wins
// on ambiguous input.
var (
	reHex64  = regexp.MustCompile(`^(?:0x)?[0-9a-fA-F]{64}$`)
	reWIF    = regexp.MustCompile(`^[5KL]` + base58 + `{50,51}$`)
	reBase58 = regexp.MustCompile(`^` + base58 + `{43,88}$`)
	reRipple = regexp.MustCompile(`^s` + base58 + `{28,34}$`)
)

// ClassifyKey maps a token to the key encoding it resembles. It is a pure
// function: the same token always yields the same kind. Tokens matching
// none of the rules return ok=false.
func ClassifyKey(token string) (KeyKind, bool) {
	switch {
	case reHex64.MatchString(token):
		return KindHex64, true
	case reWIF.MatchString(token):
		return KindBitcoinWIF, true
	case reBase58.MatchString(token):
		switch n := len(token); {
		case n == 44:
			return KindSolanaKey, true
		case n >= 86 && n <= 88:
			return KindSolanaSeed, true
		default:
			return KindBase58, true
		}
	case reRipple.MatchString(token):
		return KindRippleSeed, true
	}
	return KeyKind{}, false
}

// Kinds returns every key kind the classifier can emit, in rule order.
func Kinds() []KeyKind {
	return []KeyKind{KindHex64, KindBitcoinWIF, KindSolanaKey, KindSolanaSeed, KindBase58, KindRippleSeed}
}
