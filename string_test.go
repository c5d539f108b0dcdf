package luna

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A 3-quote run opens a raw string; a 2-quote run inside it is ordinary
// content, not a close.
func TestRawStringTripleQuote(t *testing.T) {
	toks := bodyTokens(`"""raw "" still"""`)
	want := []SymbolKind{QuoteBegin, Str, Str, Str, QuoteEnd}
	require.True(t, kindsEqual(kinds(toks), want), "kinds = %v, want %v (tokens: %v)", kinds(toks), want, toks)

	assert.Equal(t, "raw ", toks[1].Element.Text)
	assert.Equal(t, `""`, toks[2].Element.Text)
	assert.Equal(t, " still", toks[3].Element.Text)
}

// Nested interpolation inside a format string.
func TestFmtStringInterpolation(t *testing.T) {
	toks := bodyTokens("'ab`c+1`d'")
	want := []SymbolKind{QuoteBegin, Str, BlockBegin, Var, OperatorTok, NumberTok, BlockEnd, Str, QuoteEnd}
	if got := kinds(toks); !kindsEqual(got, want) {
		t.Fatalf("kinds = %v, want %v (tokens: %v)", got, want, toks)
	}
}

// Empty-string handling: beginStr rejects a bare 2-quote run outright. The
// dispatcher then re-enters one character later, where only a single quote
// character remains in the input — which is a valid 1-quote opening run,
// not another miss. So `""` resolves to a stray Unknown quote character
// followed by an (unterminated) string open, not to two Unknown tokens.
func TestEmptyStringFallsBackToUnknownThenOpen(t *testing.T) {
	toks := bodyTokens(`""`)
	want := []SymbolKind{Unknown, QuoteBegin}
	require.True(t, kindsEqual(kinds(toks), want), "kinds = %v, want %v (tokens: %v)", kinds(toks), want, toks)
	assert.Equal(t, `"`, toks[0].Element.Text)
}

func TestRawStringEscapes(t *testing.T) {
	toks := bodyTokens(`"a\\b\""`)
	require.True(t, len(toks) >= 2 && toks[0].Element.Kind == QuoteBegin, "unexpected tokens: %v", toks)

	var sawSlash, sawQuote bool
	for _, tok := range toks {
		if tok.Element.Kind != StrEsc {
			continue
		}
		switch tok.Element.Esc.Kind {
		case SlashEsc:
			sawSlash = true
		case QuoteEscape:
			sawQuote = true
		}
	}
	assert.True(t, sawSlash, "expected a SlashEsc, tokens: %v", toks)
	assert.True(t, sawQuote, "expected a QuoteEscape, tokens: %v", toks)
}

func TestFmtStringNamedEscape(t *testing.T) {
	toks := bodyTokens(`'\n'`)
	found := false
	for _, tok := range toks {
		if tok.Element.Kind == StrEsc && tok.Element.Esc.Kind == CharStrEsc && tok.Element.Esc.Code == '\n' {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a CharStrEsc('\\n'), tokens: %v", toks)
	}
}

func TestFmtStringNumericEscape(t *testing.T) {
	toks := bodyTokens(`'\65'`)
	found := false
	for _, tok := range toks {
		if tok.Element.Kind == StrEsc && tok.Element.Esc.Kind == NumStrEsc && tok.Element.Esc.Code == 65 {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a NumStrEsc(65), tokens: %v", toks)
	}
}

func TestRawStringUnknownEscapeIsWrongEsc(t *testing.T) {
	toks := bodyTokens(`"\q"`)
	found := false
	for _, tok := range toks {
		if tok.Element.Kind == StrWrongEsc && tok.Element.Code == 'q' {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a StrWrongEsc('q'), tokens: %v", toks)
	}
}

func TestNativeStringNoEscapes(t *testing.T) {
	toks := bodyTokens("`a\\b`")
	want := []SymbolKind{QuoteBegin, Str, QuoteEnd}
	require.True(t, kindsEqual(kinds(toks), want), "kinds = %v, want %v (tokens: %v)", kinds(toks), want, toks)
	assert.Equal(t, `a\b`, toks[1].Element.Text)
}
