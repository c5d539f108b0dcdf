package luna

// scanner is a concrete, mutable core owning a cursor into the text and a
// mutable entry-stack. All sub-lexers are methods on scanner; there is no
// hidden state.
//
// input/pos/start/width play the same role as in a classic hand-rolled
// lexer struct, generalized from a per-line buffer to a lazily-refilled one
// (see more, below) so a ChunkSource never has to hand over the whole file
// up front.
type scanner struct {
	input []byte
	pos   int // byte position of the cursor
	start int // byte position marking the start of the token in progress
	width int // width in bytes of the last rune returned by next

	stack *Stack
	cfg   *Config

	// more is called exactly when next() needs a byte beyond the current
	// buffer. It returns the next chunk and true, or (nil, false) once the
	// underlying source is exhausted. A nil more means "no more input will
	// ever arrive" (used by the in-memory Tokenize entry points).
	more func() ([]byte, bool)

	exhausted bool
}

const eof rune = -1

func newScanner(initial []byte, stack *Stack, cfg *Config, more func() ([]byte, bool)) *scanner {
	if stack == nil {
		stack = NewStack()
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &scanner{input: initial, stack: stack, cfg: cfg, more: more}
}

// next decodes and consumes the next rune, pulling more input from the
// source on demand if the buffer runs dry and the source is not known to be
// exhausted. The scanner holds no resources beyond the in-flight chunk
// buffer.
func (s *scanner) next() rune {
	for s.pos >= len(s.input) {
		if s.exhausted || s.more == nil {
			s.width = 0
			return eof
		}
		chunk, ok := s.more()
		if !ok {
			s.exhausted = true
			s.width = 0
			return eof
		}
		s.input = append(s.input, chunk...)
	}
	r, w := decodeRune(s.input[s.pos:])
	s.width = w
	s.pos += w
	return r
}

// backup steps back one rune. Only valid immediately after a call to next.
func (s *scanner) backup() {
	s.pos -= s.width
}

func (s *scanner) peek() rune {
	r := s.next()
	s.backup()
	return r
}

// save/restore give sub-lexers a checkpoint/rewind primitive: a small
// checkpoint/restore abstraction over the byte cursor.
func (s *scanner) save() int        { return s.pos }
func (s *scanner) restore(mark int) { s.pos = mark }

// reset abandons whatever has been consumed since the token in progress
// began, restoring the cursor to s.start. Every sub-lexer that misses must
// call this before returning, so the dispatcher's caller can rely on a miss
// leaving the cursor untouched.
func (s *scanner) reset() { s.pos = s.start }

// text returns the bytes consumed so far for the token in progress.
func (s *scanner) text() string { return string(s.input[s.start:s.pos]) }

// commit moves the token boundary up to the cursor, i.e. accepts whatever
// has been consumed since start.
func (s *scanner) commit() { s.start = s.pos }

// acceptRun consumes a maximal run of runes satisfying pred, leaving the
// cursor just past the run. Returns the number of runes consumed.
func (s *scanner) acceptRun(pred func(rune) bool) int {
	n := 0
	for pred(s.next()) {
		n++
	}
	s.backup()
	return n
}

// acceptRunExact consumes a maximal run of the single rune c, mirroring a
// classic acceptRunMin helper but reporting the exact count: matching an
// opening quote run needs the precise count, not just a threshold.
func (s *scanner) acceptRunExact(c rune) int {
	n := 0
	for s.next() == c {
		n++
	}
	s.backup()
	return n
}

// lexEntryPoint is the top of the entry-stack state machine. It is a total
// function: it always consumes at least one rune (or signals true EOF) and
// returns exactly one Symbol.
func (s *scanner) lexEntryPoint() (Symbol, bool) {
	top := s.stack.Top()
	switch top.Kind {
	case StrCodeEntryKind:
		return s.fmtStrCode(top.HLen)
	case StrEntryKind:
		switch top.StrType {
		case RawStr:
			return s.rawStrBody(top.HLen)
		case FmtStr:
			return s.fmtStrBody(top.HLen)
		case NatStr:
			return s.natStrBody(top.HLen)
		}
	}
	return s.topEntryPoint()
}

// atEOF reports whether the scanner has observed and exhausted the final
// chunk of input (used by the streaming driver to know when to stop).
func (s *scanner) atEOF() bool {
	return s.pos >= len(s.input) && (s.exhausted || s.more == nil)
}
