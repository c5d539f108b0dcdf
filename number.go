package luna

import "fmt"

// lexNumber implements the numeric literal grammar:
//
//	number  := '0' ( ('x'|'X') hexDigits | ('o'|'O') octDigits | ('b'|'B') binDigits )
//	        |  decDigits [ '.' decDigits ] [ 'e' [+|-] decDigits ]
//
// Called only when the head character is a decimal digit, so it always
// consumes at least one rune.
func (s *scanner) lexNumber() (Symbol, bool) {
	digitsFrom := s.pos
	first := s.next() // guaranteed decHead by the dispatcher

	var n Number
	if first == '0' {
		switch s.peek() {
		case 'x', 'X':
			s.next()
			n = Number{Base: Hex, IntPart: s.consumeRun(isHexDigitChar)}
		case 'o', 'O':
			s.next()
			n = Number{Base: Oct, IntPart: s.consumeRun(isOctDigitChar)}
		case 'b', 'B':
			s.next()
			n = Number{Base: Bin, IntPart: s.consumeRun(isBinDigitChar)}
		default:
			n = s.lexDecimalNumber(digitsFrom)
		}
	} else {
		n = s.lexDecimalNumber(digitsFrom)
	}

	// Trailing garbage: an alphanumeric run immediately after an otherwise
	// complete number literal collapses the whole lexeme into one
	// Incorrect token.
	if r := s.peek(); isAlphaOrDigit(r) {
		garbageStart := s.pos
		s.acceptRun(isAlphaOrDigit)
		garbage := string(s.input[garbageStart:s.pos])
		return Symbol{Kind: Incorrect, Text: fmt.Sprintf(
			"Unexpected characters '%s' found on the end of number literal", garbage)}, true
	}

	return Symbol{Kind: NumberTok, Number: n}, true
}

// consumeRun consumes a run matching pred and returns the consumed text —
// used for the digit runs after a base prefix.
func (s *scanner) consumeRun(pred func(rune) bool) string {
	from := s.pos
	s.acceptRun(pred)
	return string(s.input[from:s.pos])
}

// lexDecimalNumber parses the decimal alternative. digitsFrom is the byte
// offset of the first digit, which the caller has already consumed.
func (s *scanner) lexDecimalNumber(digitsFrom int) Number {
	s.acceptRun(isDecDigitChar)
	intPart := string(s.input[digitsFrom:s.pos])

	var fracPart, expPart string

	if s.peek() == '.' {
		mark := s.save()
		s.next() // consume '.'
		fracFrom := s.pos
		if n := s.acceptRun(isDecDigitChar); n > 0 {
			fracPart = string(s.input[fracFrom:s.pos])
		} else {
			// '.' not followed by a digit: not part of the number (e.g. a
			// trailing Accessor '.'); rewind and leave it for the next token.
			s.restore(mark)
		}
	}

	if s.peek() == 'e' {
		mark := s.save()
		s.next()
		sign := ""
		if p := s.peek(); p == '+' || p == '-' {
			s.next()
			sign = string(p)
		}
		expFrom := s.pos
		if n := s.acceptRun(isDecDigitChar); n > 0 {
			expPart = sign + string(s.input[expFrom:s.pos])
		} else {
			// 'e' not followed by digits: not an exponent, rewind.
			s.restore(mark)
		}
	}

	return Number{Base: Dec, IntPart: intPart, FracPart: fracPart, ExpPart: expPart}
}
