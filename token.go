// Package luna implements the lexical analyzer for the Luna source language:
// it converts a stream of UTF-8 source text into a stream of positioned
// lexical tokens. See SPEC_FULL.md for the full component breakdown.
package luna

import "fmt"

// SymbolKind tags the variant carried by a Symbol: the Go rendering of
// Luna's tagged-union symbol alphabet.
type SymbolKind int

const (
	STX SymbolKind = iota // stream-start sentinel
	ETX                   // stream-end sentinel

	EOL        // end of line
	Terminator // ';'

	BlockStart // single ':'
	BlockBegin // '{' or format-string interpolation boundary
	BlockEnd   // '}' or format-string interpolation boundary

	GroupBegin // '('
	GroupEnd   // ')'

	ListBegin // '['
	ListEnd   // ']'

	MarkerTok // parsed integer inside marker delimiters

	Var  // lowercase identifier
	Cons // uppercase identifier

	KwAll
	KwCase
	KwClass
	KwDef
	KwImport
	KwOf
	KwType
	KwForeign
	KwNative

	OperatorTok // regular operator text
	ModifierTok // operator immediately followed by '='

	Accessor   // '.'
	Assignment // '='
	TypeApp    // '@'
	Merge      // '|'
	Range      // '..'
	Anything   // '...'
	Typed      // '::'

	NumberTok // numeric literal

	QuoteBegin // opening string delimiter
	QuoteEnd   // closing string delimiter

	Str         // literal text segment inside a string
	StrEsc      // one parsed escape inside a string
	StrWrongEsc // malformed escape, carries the offending code point

	Disable  // single '#'
	Doc      // '##' rest-of-line comment
	Metadata // '### META ...' rest-of-line metadata

	Incorrect // recoverable lex error, carries offending source text
	Unknown   // no rule matched, carries offending source text
)

var symbolKindNames = map[SymbolKind]string{
	STX: "STX", ETX: "ETX",
	EOL: "EOL", Terminator: "Terminator",
	BlockStart: "BlockStart", BlockBegin: "BlockBegin", BlockEnd: "BlockEnd",
	GroupBegin: "GroupBegin", GroupEnd: "GroupEnd",
	ListBegin: "ListBegin", ListEnd: "ListEnd",
	MarkerTok: "Marker",
	Var:       "Var", Cons: "Cons",
	KwAll: "KwAll", KwCase: "KwCase", KwClass: "KwClass", KwDef: "KwDef",
	KwImport: "KwImport", KwOf: "KwOf", KwType: "KwType",
	KwForeign: "KwForeign", KwNative: "KwNative",
	OperatorTok: "Operator", ModifierTok: "Modifier",
	Accessor: "Accessor", Assignment: "Assignment", TypeApp: "TypeApp",
	Merge: "Merge", Range: "Range", Anything: "Anything", Typed: "Typed",
	NumberTok:   "Number",
	QuoteBegin:  "QuoteBegin", QuoteEnd: "QuoteEnd",
	Str:         "Str", StrEsc: "StrEsc", StrWrongEsc: "StrWrongEsc",
	Disable: "Disable", Doc: "Doc", Metadata: "Metadata",
	Incorrect: "Incorrect", Unknown: "Unknown",
}

// String renders a SymbolKind by name rather than its raw integer value,
// promoted to non-test code because cmd/lunalex needs it too.
func (k SymbolKind) String() string {
	if s, ok := symbolKindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("SymbolKind(%d)", int(k))
}

// StrType distinguishes the three string literal flavors.
type StrType int

const (
	RawStr StrType = iota // "..."   no interpolation, no escapes beyond \\ and \"/\'
	FmtStr                // '...'   interpolation + named/numeric escapes
	NatStr                // `...`   native code, two alternatives only
)

func (t StrType) String() string {
	switch t {
	case RawStr:
		return "RawStr"
	case FmtStr:
		return "FmtStr"
	case NatStr:
		return "NatStr"
	default:
		return "StrType(?)"
	}
}

// EscKind tags an escape-descriptor variant.
type EscKind int

const (
	SlashEsc EscKind = iota
	QuoteEscape
	NumStrEsc
	CharStrEsc
)

// Escape is the escape-descriptor payload of a StrEsc token.
type Escape struct {
	Kind    EscKind
	StrType StrType // only meaningful for QuoteEscape
	Len     int     // only meaningful for QuoteEscape (run length)
	Code    rune    // only meaningful for NumStrEsc / CharStrEsc
}

// Number is the payload of a NumberTok token.
type Number struct {
	Base     NumberBase
	IntPart  string
	FracPart string // empty unless Base == Dec
	ExpPart  string // empty unless Base == Dec and an exponent was present
}

// NumberBase enumerates the four numeric literal bases the number
// sub-lexer recognizes.
type NumberBase int

const (
	Dec NumberBase = iota
	Hex
	Oct
	Bin
)

func (b NumberBase) String() string {
	switch b {
	case Dec:
		return "Dec"
	case Hex:
		return "Hex"
	case Oct:
		return "Oct"
	case Bin:
		return "Bin"
	default:
		return "NumberBase(?)"
	}
}

// Symbol is the tagged union: a SymbolKind plus whichever payload field
// that kind carries. Only the field(s) relevant to Kind are populated; the
// rest are zero values.
type Symbol struct {
	Kind SymbolKind

	Text string  // Var, Cons, Operator, Modifier, Str, Incorrect, Unknown, Metadata, Doc
	Num  uint64  // MarkerTok
	Esc  Escape  // StrEsc
	Code rune    // StrWrongEsc
	Number Number // NumberTok

	QuoteType StrType // QuoteBegin / QuoteEnd
}

func (s Symbol) String() string {
	switch s.Kind {
	case Var, Cons, OperatorTok, ModifierTok, Str, Incorrect, Unknown, Doc, Metadata:
		return fmt.Sprintf("%s(%q)", s.Kind, s.Text)
	case MarkerTok:
		return fmt.Sprintf("Marker(%d)", s.Num)
	case StrWrongEsc:
		return fmt.Sprintf("StrWrongEsc(%U)", s.Code)
	case NumberTok:
		return fmt.Sprintf("Number{%s,%q,%q,%q}", s.Number.Base, s.Number.IntPart, s.Number.FracPart, s.Number.ExpPart)
	case QuoteBegin, QuoteEnd:
		return fmt.Sprintf("%s(%s)", s.Kind, s.QuoteType)
	default:
		return s.Kind.String()
	}
}

// delta is a non-negative character count, the unit spans and offsets are
// measured in.
type delta = int

// Token wraps a Symbol with its span and trailing-whitespace offset: a
// token{typ, line, col, text} style record generalized from a single text
// field to the full Symbol union.
type Token struct {
	Span    delta  // character width of the token's own source text
	Offset  delta  // weighted trailing horizontal whitespace (space=1, tab=4)
	Element Symbol // the token payload
}

func (t Token) String() string {
	return fmt.Sprintf("%s[span=%d,offset=%d]", t.Element, t.Span, t.Offset)
}
