package luna

import "testing"

func TestSymbolKindString(t *testing.T) {
	if got := Var.String(); got != "Var" {
		t.Errorf("Var.String() = %q, want %q", got, "Var")
	}
	if got := SymbolKind(9999).String(); got != "SymbolKind(9999)" {
		t.Errorf("unknown kind rendered as %q", got)
	}
}

func TestSymbolString(t *testing.T) {
	tests := []struct {
		sym  Symbol
		want string
	}{
		{Symbol{Kind: Var, Text: "foo"}, `Var("foo")`},
		{Symbol{Kind: MarkerTok, Num: 42}, "Marker(42)"},
		{Symbol{Kind: QuoteBegin, QuoteType: FmtStr}, "QuoteBegin(FmtStr)"},
		{Symbol{Kind: NumberTok, Number: Number{Base: Dec, IntPart: "123", FracPart: "45", ExpPart: "-7"}},
			`Number{Dec,"123","45","-7"}`},
		{Symbol{Kind: EOL}, "EOL"},
	}
	for _, tt := range tests {
		if got := tt.sym.String(); got != tt.want {
			t.Errorf("Symbol.String() = %q, want %q", got, tt.want)
		}
	}
}

func TestTokenString(t *testing.T) {
	tok := Token{Span: 3, Offset: 1, Element: Symbol{Kind: Var, Text: "foo"}}
	want := `Var("foo")[span=3,offset=1]`
	if got := tok.String(); got != want {
		t.Errorf("Token.String() = %q, want %q", got, want)
	}
}
