package luna

import (
	"bufio"
	"io"
	"os"
	"unicode/utf8"

	"github.com/lunalang/luna/internal/log"
)

// driver wraps a scanner with the lexeme-driver logic: after each symbol,
// measure trailing horizontal whitespace (space=1, tab=4) to produce the
// token's offset, except right after QuoteBegin or BlockEnd, where the
// following whitespace is left for the next sub-lexer to see (string content
// after QuoteBegin or an interpolation close; after a plain '}' it is lexed
// as an Unknown token).
type driver struct {
	s          *scanner
	sentSTX    bool
	sentETX    bool
}

func newDriver(s *scanner) *driver { return &driver{s: s} }

// next returns the next Token, or ok=false once the ETX sentinel has been
// delivered and there is nothing left to emit.
func (d *driver) next() (Token, bool) {
	if !d.sentSTX {
		d.sentSTX = true
		offset := d.measureSpacing()
		tok := Token{Element: Symbol{Kind: STX}, Offset: offset}
		log.Tracef("emit STX offset=%d", offset)
		log.Debugf("token %v span=%d offset=%d", tok.Element.Kind, tok.Span, tok.Offset)
		return tok, true
	}
	if d.s.atEOF() {
		if d.sentETX {
			return Token{}, false
		}
		d.sentETX = true
		tok := Token{Element: Symbol{Kind: ETX}}
		log.Tracef("emit ETX")
		log.Debugf("token %v span=%d offset=%d", tok.Element.Kind, tok.Span, tok.Offset)
		return tok, true
	}

	before := d.s.stack.Top()
	sym, _ := d.s.lexEntryPoint()
	text := d.s.text()
	span := utf8.RuneCountInString(text)
	d.s.commit()
	log.Tracef("entry=%v -> %v span=%d", before, sym, span)

	offset := 0
	if sym.Kind != QuoteBegin && sym.Kind != BlockEnd {
		offset = d.measureSpacing()
	}
	tok := Token{Span: span, Offset: offset, Element: sym}
	log.Debugf("token %v span=%d offset=%d text=%q", sym.Kind, span, offset, sym.Text)
	return tok, true
}

// measureSpacing consumes trailing horizontal whitespace and returns its
// weighted width (space=1, tab=4). Newlines are not whitespace here — they
// are their own EOL token.
func (d *driver) measureSpacing() int {
	total := 0
	for {
		switch d.s.peek() {
		case ' ':
			d.s.next()
			total++
		case '\t':
			d.s.next()
			total += 4
		default:
			d.s.commit()
			return total
		}
	}
}

// TokenStream is the pull-driven handle returned by the streaming entry
// points. Callers repeatedly call Next until ok is false.
type TokenStream struct {
	d   *driver
	pos int
}

func newTokenStream(initial []byte, stack *Stack, cfg *Config, more func() ([]byte, bool)) *TokenStream {
	return &TokenStream{d: newDriver(newScanner(initial, stack, cfg, more))}
}

// Next returns the next positioned token. ok is false once the stream is
// exhausted (after the ETX sentinel has already been returned).
func (ts *TokenStream) Next() (Token, bool) {
	tok, ok := ts.d.next()
	if ok {
		ts.pos += tok.Span + tok.Offset
	}
	return tok, ok
}

// Pos reports the running sum of span+offset across every token delivered
// so far, the round-trip invariant made directly queryable without the
// caller re-summing the whole token slice. Offsets weigh a tab as 4, so Pos
// equals the character position of the next unconsumed input only when no
// tab has been absorbed into an offset.
func (ts *TokenStream) Pos() int { return ts.pos }

// Stack returns the entry-stack as currently observed (i.e. after the most
// recently delivered token). Used by TokenizeContinuation to snapshot state
// per token, and by an embedder resuming a TokenStream across chunks.
func (ts *TokenStream) Stack() *Stack { return ts.d.s.stack }

// collect drains a TokenStream into a slice.
func collect(ts *TokenStream) []Token {
	var out []Token
	for {
		t, ok := ts.Next()
		if !ok {
			return out
		}
		out = append(out, t)
	}
}

// Tokenize performs full tokenization with a default, empty entry-stack.
func Tokenize(text string) []Token {
	return collect(newTokenStream([]byte(text), NewStack(), nil, nil))
}

// TokenizeWith resumes tokenization from a given entry-stack.
func TokenizeWith(stack *Stack, text string) []Token {
	return collect(newTokenStream([]byte(text), stack, nil, nil))
}

// ContinuationToken pairs a Token with the entry-stack observed immediately
// after its emission, enabling incremental re-lexing of an edited region
// without re-scanning the whole file.
type ContinuationToken struct {
	Token Token
	Stack *Stack
}

// TokenizeContinuation is like TokenizeWith, but each token carries a
// snapshot of the entry-stack observed right after it.
func TokenizeContinuation(stack *Stack, text string) []ContinuationToken {
	return TokenizeContinuationWith(nil, stack, text)
}

// TokenizeContinuationWith is TokenizeContinuation with an explicit
// lexical-constant override (nil means DefaultConfig).
func TokenizeContinuationWith(cfg *Config, stack *Stack, text string) []ContinuationToken {
	ts := newTokenStream([]byte(text), stack, cfg, nil)
	var out []ContinuationToken
	for {
		t, ok := ts.Next()
		if !ok {
			return out
		}
		out = append(out, ContinuationToken{Token: t, Stack: ts.Stack().Clone()})
	}
}

// chunkReader turns an io.Reader into the scanner's on-demand "more" pull
// function, matching a cooperative streaming model: the scanner never asks
// for more than one chunk ahead.
func chunkReader(r io.Reader) func() ([]byte, bool) {
	br := bufio.NewReaderSize(r, 4096)
	return func() ([]byte, bool) {
		buf := make([]byte, 4096)
		n, err := br.Read(buf)
		if n == 0 && err != nil {
			return nil, false
		}
		return buf[:n], true
	}
}

// TokenizeFile streams tokens from a UTF-8 file. It panics if the file
// cannot be opened; TryTokenizeFile returns that failure as an error
// instead. Neither variant reports later failures: a read error after the
// file is open ends the token stream early, and invalid UTF-8 bytes are
// decoded to a sentinel rune and lexed like any other character.
func TokenizeFile(stack *Stack, path string) []Token {
	toks, err := TryTokenizeFile(stack, path)
	if err != nil {
		panic(err)
	}
	return toks
}

// TryTokenizeFile is TokenizeFile's error-returning counterpart.
func TryTokenizeFile(stack *Stack, path string) ([]Token, error) {
	return TryTokenizeFileWith(nil, stack, path)
}

// TryTokenizeFileWith is TryTokenizeFile with an explicit lexical-constant
// override (nil means DefaultConfig), for embedders that loaded a Config via
// LoadConfig.
func TryTokenizeFileWith(cfg *Config, stack *Stack, path string) ([]Token, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, newParseError(path, 0, "opening file", err)
	}
	defer f.Close()

	ts := newTokenStream(nil, stack, cfg, chunkReader(f))
	return collect(ts), nil
}
