package luna

import "strconv"

// beginStr opens a string literal: it reads a run of N >= 1 occurrences of
// quoteChar. If N == 2 the open fails outright (the empty-string rule), and
// the miss is reported so the caller can fall back (see
// dispatchQuoteHead).
func (s *scanner) beginStr(t StrType, quoteChar rune) (Symbol, bool) {
	n := s.acceptRunExact(quoteChar)
	if n == 2 {
		s.reset()
		return Symbol{}, false
	}
	s.stack.Push(Entry{Kind: StrEntryKind, StrType: t, HLen: n})
	return Symbol{Kind: QuoteBegin, QuoteType: t}, true
}

// lexEOLInBody consumes a line ending (\n, or \r with an optional following
// \n) and emits EOL — used by the raw and fmt string bodies, which (unlike
// native strings) emit an explicit EOL per line even while inside a string.
func (s *scanner) lexEOLInBody() Symbol {
	r := s.next()
	if r == '\r' && s.peek() == '\n' {
		s.next()
	}
	return Symbol{Kind: EOL}
}

// rawStrBody implements the raw string (`"..."`) body alternatives, tried
// in order.
func (s *scanner) rawStrBody(hlen int) (Symbol, bool) {
	r := s.peek()
	switch {
	case r != '"' && r != '\n' && r != '\r' && r != '\\' && r != eof:
		from := s.pos
		s.acceptRun(func(c rune) bool { return c != '"' && c != '\n' && c != '\r' && c != '\\' })
		return Symbol{Kind: Str, Text: string(s.input[from:s.pos])}, true
	case r == '\n' || r == '\r':
		return s.lexEOLInBody(), true
	case r == '\\':
		return s.lexStrEscape(false)
	default: // r == '"'
		from := s.pos
		n := s.acceptRunExact('"')
		if n == hlen {
			s.stack.Pop()
			return Symbol{Kind: QuoteEnd, QuoteType: RawStr}, true
		}
		return Symbol{Kind: Str, Text: string(s.input[from:s.pos])}, true
	}
}

// fmtStrBody implements the format string (`'...'`) body alternatives:
// identical to raw, except backtick also opens interpolation and the
// escape sub-lexer falls through to named/numeric escapes.
func (s *scanner) fmtStrBody(hlen int) (Symbol, bool) {
	r := s.peek()
	switch {
	case r != '\'' && r != '`' && r != '\n' && r != '\r' && r != '\\' && r != eof:
		from := s.pos
		s.acceptRun(func(c rune) bool {
			return c != '\'' && c != '`' && c != '\n' && c != '\r' && c != '\\'
		})
		return Symbol{Kind: Str, Text: string(s.input[from:s.pos])}, true
	case r == '\n' || r == '\r':
		return s.lexEOLInBody(), true
	case r == '\\':
		return s.lexStrEscape(true)
	case r == '`':
		m := s.acceptRunExact('`')
		s.stack.Push(Entry{Kind: StrCodeEntryKind, HLen: m})
		return Symbol{Kind: BlockBegin}, true
	default: // r == '\''
		from := s.pos
		n := s.acceptRunExact('\'')
		if n == hlen {
			s.stack.Pop()
			return Symbol{Kind: QuoteEnd, QuoteType: FmtStr}, true
		}
		return Symbol{Kind: Str, Text: string(s.input[from:s.pos])}, true
	}
}

// natStrBody implements the native-code string (`` `...` ``) body: only two
// alternatives, no escapes, no interpolation.
func (s *scanner) natStrBody(hlen int) (Symbol, bool) {
	r := s.peek()
	if r != '`' && r != eof {
		from := s.pos
		s.acceptRun(func(c rune) bool { return c != '`' })
		return Symbol{Kind: Str, Text: string(s.input[from:s.pos])}, true
	}
	from := s.pos
	n := s.acceptRunExact('`')
	if n == hlen {
		s.stack.Pop()
		return Symbol{Kind: QuoteEnd, QuoteType: NatStr}, true
	}
	return Symbol{Kind: Str, Text: string(s.input[from:s.pos])}, true
}

// fmtStrCode implements the interpolation code region: first try to close
// (a backtick run of length h pops StrCodeEntry and emits BlockEnd);
// otherwise fall through to ordinary top-level lexing.
func (s *scanner) fmtStrCode(h int) (Symbol, bool) {
	if s.peek() == '`' {
		mark := s.save()
		n := s.acceptRunExact('`')
		if n == h {
			s.stack.Pop()
			return Symbol{Kind: BlockEnd}, true
		}
		s.restore(mark)
	}
	return s.topEntryPoint()
}

// lexStrEscape implements lexEscSeq's shared prefix: a backslash has
// already been peeked (not yet consumed) when this is called.
// allowNamed selects whether named/numeric escapes (fmt strings) are tried
// after the three common escape shapes, or whether any remaining escape is
// simply malformed (raw strings never carry named escapes).
func (s *scanner) lexStrEscape(allowNamed bool) (Symbol, bool) {
	s.next() // consume '\\'
	switch r := s.peek(); r {
	case '\\':
		s.next()
		return Symbol{Kind: StrEsc, Esc: Escape{Kind: SlashEsc}}, true
	case '"':
		n := s.acceptRunExact('"')
		return Symbol{Kind: StrEsc, Esc: Escape{Kind: QuoteEscape, StrType: RawStr, Len: n}}, true
	case '\'':
		n := s.acceptRunExact('\'')
		return Symbol{Kind: StrEsc, Esc: Escape{Kind: QuoteEscape, StrType: FmtStr, Len: n}}, true
	default:
		if allowNamed {
			return s.lexEscSeq()
		}
		code := s.next()
		return Symbol{Kind: StrWrongEsc, Code: code}, true
	}
}

// lexEscSeq implements the named/numeric escape alternatives, tried in
// order: a decimal-digit run (NumStrEsc), then 1-, 2-, then 3-character
// lookups in the fixed escape maps (CharStrEsc), then a single malformed
// character (StrWrongEsc).
func (s *scanner) lexEscSeq() (Symbol, bool) {
	if isDecDigitChar(s.peek()) {
		from := s.pos
		s.acceptRun(isDecDigitChar)
		v, _ := strconv.ParseUint(string(s.input[from:s.pos]), 10, 32)
		return Symbol{Kind: StrEsc, Esc: Escape{Kind: NumStrEsc, Code: rune(v)}}, true
	}

	for _, lookup := range []struct {
		n   int
		tbl map[string]rune
	}{{1, escape1}, {2, escape2}, {3, escape3}} {
		if code, ok := s.tryEscLookup(lookup.n, lookup.tbl); ok {
			return Symbol{Kind: StrEsc, Esc: Escape{Kind: CharStrEsc, Code: code}}, true
		}
	}

	code := s.next()
	return Symbol{Kind: StrWrongEsc, Code: code}, true
}

// tryEscLookup consumes exactly n runes and checks them against tbl; on a
// miss the cursor is rewound so the next arity can be tried. Lookups are
// sequential and each must consume exactly n characters.
func (s *scanner) tryEscLookup(n int, tbl map[string]rune) (rune, bool) {
	mark := s.save()
	buf := make([]rune, 0, n)
	for i := 0; i < n; i++ {
		r := s.next()
		if r == eof {
			s.restore(mark)
			return 0, false
		}
		buf = append(buf, r)
	}
	if code, ok := tbl[string(buf)]; ok {
		return code, true
	}
	s.restore(mark)
	return 0, false
}
