package luna

// bodyTokens runs Tokenize and strips the STX/ETX sentinels, leaving just
// the tokens a test actually wants to assert on.
func bodyTokens(text string) []Token {
	toks := Tokenize(text)
	if len(toks) >= 2 && toks[0].Element.Kind == STX && toks[len(toks)-1].Element.Kind == ETX {
		return toks[1 : len(toks)-1]
	}
	return toks
}

func kinds(toks []Token) []SymbolKind {
	out := make([]SymbolKind, len(toks))
	for i, t := range toks {
		out[i] = t.Element.Kind
	}
	return out
}

func kindsEqual(a, b []SymbolKind) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
