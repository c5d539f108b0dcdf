package luna

// defaultKeywords is the built-in closed, finite set of reserved identifier
// texts: the reserved-word classifier maps this set to their keyword
// tokens, and everything else classifies as Var. A Config can override the
// effective set via Config.Keywords.
var defaultKeywords = map[string]SymbolKind{
	"all":     KwAll,
	"case":    KwCase,
	"class":   KwClass,
	"def":     KwDef,
	"import":  KwImport,
	"of":      KwOf,
	"type":    KwType,
	"foreign": KwForeign,
	"native":  KwNative,
}

// lexVarOrKeyword implements the varHead table rule: consume identifier
// body, then an optional trailing '?' or '!', then any run of '\'', then
// classify against the closed keyword set.
func (s *scanner) lexVarOrKeyword() (Symbol, bool) {
	from := s.pos
	s.next() // head rune, already confirmed varHead by the dispatcher
	s.acceptRun(isIndentBodyChar)
	if r := s.peek(); r == '?' || r == '!' {
		s.next()
	}
	s.acceptRun(func(r rune) bool { return r == '\'' })

	text := string(s.input[from:s.pos])
	if kind, ok := s.cfg.Keywords[text]; ok {
		return Symbol{Kind: kind}, true
	}
	return Symbol{Kind: Var, Text: text}, true
}

// lexCons implements the consHead table rule: consume identifier body, emit
// Cons. Unlike Var, there is no trailing '?'/'!'/"'" handling.
func (s *scanner) lexCons() (Symbol, bool) {
	from := s.pos
	s.next()
	s.acceptRun(isIndentBodyChar)
	return Symbol{Kind: Cons, Text: string(s.input[from:s.pos])}, true
}

// lexOperator implements the operator-char table rule: consume a maximal
// run of operator characters, then a maximal run of '=';
// an empty suffix is a plain Operator, a lone "=" suffix makes it a
// Modifier, anything else collapses the whole lexeme to Unknown.
func (s *scanner) lexOperator() (Symbol, bool) {
	from := s.pos
	s.acceptRun(s.isRegularOperatorChar)
	op := string(s.input[from:s.pos])

	sufFrom := s.pos
	s.acceptRun(func(r rune) bool { return r == '=' })
	suf := string(s.input[sufFrom:s.pos])

	switch suf {
	case "":
		return Symbol{Kind: OperatorTok, Text: op}, true
	case "=":
		return Symbol{Kind: ModifierTok, Text: op}, true
	default:
		return Symbol{Kind: Unknown, Text: op + suf}, true
	}
}
