package luna

import "strings"

// Character classification predicates, modeled on an isAlpha/isDigit/
// isPnChars family narrowed to the classes Luna's sub-lexers actually
// dispatch on.

func isDecHead(r rune) bool { return r >= '0' && r <= '9' }

func isVarHead(r rune) bool { return (r >= 'a' && r <= 'z') || r == '_' }

func isConsHead(r rune) bool { return r >= 'A' && r <= 'Z' }

func isIndentBodyChar(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_'
}

func isDecDigitChar(r rune) bool { return r >= '0' && r <= '9' }

func isHexDigitChar(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func isOctDigitChar(r rune) bool { return r >= '0' && r <= '7' }

func isBinDigitChar(r rune) bool { return r == '0' || r == '1' }

// RegularOperatorChars is the built-in closed set of ASCII operator
// punctuation fixed by the Symbol alphabet. Exposed as a named constant
// since it is part of the external contract; a Config can override the
// effective set via Config.RegularOperatorChars.
const RegularOperatorChars = "+-*/%^<>&$~?!"

func isRegularOperatorChar(r rune) bool {
	return strings.ContainsRune(RegularOperatorChars, r)
}

// isRegularOperatorChar is the dialect-aware variant lexOperator and
// topEntryPoint actually consult, reading the scanner's Config override
// instead of the built-in default.
func (s *scanner) isRegularOperatorChar(r rune) bool {
	return strings.ContainsRune(s.cfg.RegularOperatorChars, r)
}

func isAlpha(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isAlphaOrDigit(r rune) bool {
	return isAlpha(r) || isDecHead(r)
}
