package luna

import "testing"

func TestCharacterClassPredicates(t *testing.T) {
	tests := []struct {
		pred func(rune) bool
		yes  []rune
		no   []rune
	}{
		{isDecHead, []rune{'0', '5', '9'}, []rune{'a', '_', ' '}},
		{isVarHead, []rune{'a', 'z', '_'}, []rune{'A', '0', ' '}},
		{isConsHead, []rune{'A', 'Z'}, []rune{'a', '0', '_'}},
		{isIndentBodyChar, []rune{'a', 'Z', '0', '_'}, []rune{' ', '?', '\''}},
		{isHexDigitChar, []rune{'0', '9', 'a', 'f', 'A', 'F'}, []rune{'g', 'G', ' '}},
		{isOctDigitChar, []rune{'0', '7'}, []rune{'8', '9', 'a'}},
		{isBinDigitChar, []rune{'0', '1'}, []rune{'2', 'a'}},
		{isRegularOperatorChar, []rune{'+', '-', '*', '/', '%', '^', '<', '>', '&', '$', '~', '?', '!'}, []rune{'=', ',', ' '}},
		{isAlphaOrDigit, []rune{'a', 'Z', '0'}, []rune{'_', ' ', '!'}},
	}
	for _, tt := range tests {
		for _, r := range tt.yes {
			if !tt.pred(r) {
				t.Errorf("expected %q to satisfy predicate", r)
			}
		}
		for _, r := range tt.no {
			if tt.pred(r) {
				t.Errorf("expected %q not to satisfy predicate", r)
			}
		}
	}
}
