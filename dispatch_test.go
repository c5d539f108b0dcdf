package luna

import "testing"

func TestPunctuationDispatch(t *testing.T) {
	tests := []struct {
		in   string
		want []SymbolKind
	}{
		{";", []SymbolKind{Terminator}},
		{"{}", []SymbolKind{BlockBegin, BlockEnd}},
		{"()", []SymbolKind{GroupBegin, GroupEnd}},
		{"[]", []SymbolKind{ListBegin, ListEnd}},
		{",", []SymbolKind{OperatorTok}},
		{"\n", []SymbolKind{EOL}},
		{"\r\n", []SymbolKind{EOL}},
		{":", []SymbolKind{BlockStart}},
		{"::", []SymbolKind{Typed}},
		{":::", []SymbolKind{Unknown}},
		{".", []SymbolKind{Accessor}},
		{"..", []SymbolKind{Range}},
		{"...", []SymbolKind{Anything}},
		{"....", []SymbolKind{Unknown}},
		{"=", []SymbolKind{Assignment}},
		{"==", []SymbolKind{OperatorTok}},
		{"===", []SymbolKind{Unknown}},
		{"@", []SymbolKind{TypeApp}},
		{"|", []SymbolKind{Merge}},
		{"#", []SymbolKind{Disable}},
		{"## doc\n", []SymbolKind{Doc, EOL}},
	}
	for _, tt := range tests {
		got := kinds(bodyTokens(tt.in))
		if !kindsEqual(got, tt.want) {
			t.Errorf("Tokenize(%q) kinds = %v, want %v", tt.in, got, tt.want)
		}
	}
}

// spec scenario 6.
func TestUnknownEqualsRunScenario(t *testing.T) {
	toks := bodyTokens("=== END ===")
	want := []SymbolKind{Unknown, Cons, Unknown}
	if got := kinds(toks); !kindsEqual(got, want) {
		t.Fatalf("kinds = %v, want %v (tokens: %v)", got, want, toks)
	}
	if toks[0].Element.Text != "===" || toks[2].Element.Text != "===" {
		t.Errorf("unexpected Unknown payloads: %q %q", toks[0].Element.Text, toks[2].Element.Text)
	}
}

// spec scenario 7.
func TestTypeAppOffsetScenario(t *testing.T) {
	toks := bodyTokens("@foo =")
	want := []SymbolKind{TypeApp, Var, Assignment}
	if got := kinds(toks); !kindsEqual(got, want) {
		t.Fatalf("kinds = %v, want %v (tokens: %v)", got, want, toks)
	}
	if toks[1].Offset != 1 {
		t.Errorf("Var offset = %d, want 1", toks[1].Offset)
	}
}

func TestKeywordsClassifyAsReservedWords(t *testing.T) {
	toks := bodyTokens("def class of type")
	want := []SymbolKind{KwDef, KwClass, KwOf, KwType}
	if got := kinds(toks); !kindsEqual(got, want) {
		t.Fatalf("kinds = %v, want %v", got, want)
	}
}

func TestMetadataLine(t *testing.T) {
	toks := bodyTokens("### META key=value\n")
	if len(toks) < 1 || toks[0].Element.Kind != Metadata {
		t.Fatalf("Tokenize metadata line = %v, want leading Metadata", toks)
	}
	if toks[0].Element.Text != "key=value" {
		t.Errorf("Metadata text = %q, want %q", toks[0].Element.Text, "key=value")
	}
}

func TestMarkerWithIntegerValue(t *testing.T) {
	cfg := DefaultConfig()
	text := string(cfg.MarkerBegin) + "42" + string(cfg.MarkerEnd)
	toks := bodyTokens(text)
	if len(toks) != 1 || toks[0].Element.Kind != MarkerTok || toks[0].Element.Num != 42 {
		t.Fatalf("Tokenize(%q) = %v, want single Marker(42)", text, toks)
	}
}
