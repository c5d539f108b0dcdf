// Package metadata parses the free-form text carried by a Metadata token
// (the `### META ...` line) into structured key/value pairs.
//
// This sits deliberately downstream of the core lexer, which sticks to
// hand-written table dispatch rather than a parser-combinator pipeline for
// its own symbol recognition. A Metadata line's payload is exactly the kind
// of small declarative grammar participle/v2 is good at (the same way
// lukeod-gosmi/parser uses it for MIB type and sequence grammars), so it
// gets a home here instead.
package metadata

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Entry is one `key=value` or bare `key` pair from a Metadata line.
type Entry struct {
	Pos lexer.Position

	Key   string  `parser:"@Ident"`
	Value *string `parser:"( \"=\" @(Ident|String) )?"`
}

// Annotation is the parsed form of a whole Metadata token's text.
type Annotation struct {
	Pos lexer.Position

	Entries []*Entry `parser:"(@@ (\",\"? @@)*)?"`
}

var metadataLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "String", Pattern: `"(\\.|[^"])*"`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_.-]*`},
	{Name: "Punct", Pattern: `[=,]`},
	{Name: "Whitespace", Pattern: `[ \t]+`},
})

var metadataParser = participle.MustBuild[Annotation](
	participle.Lexer(metadataLexer),
	participle.Unquote("String"),
	participle.Elide("Whitespace"),
)

// Parse parses the text payload of a single Metadata token (the portion
// after "META ", not including the header itself or the trailing newline).
func Parse(text string) (*Annotation, error) {
	return metadataParser.ParseString("", text)
}

// Lookup returns the value associated with key, and whether key was
// present at all (a bare key with no "=value" is present with value "").
func (a *Annotation) Lookup(key string) (value string, ok bool) {
	for _, e := range a.Entries {
		if e.Key == key {
			if e.Value != nil {
				return *e.Value, true
			}
			return "", true
		}
	}
	return "", false
}
