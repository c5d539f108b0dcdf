package luna

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStackTopDefaultsToTopLevel(t *testing.T) {
	s := NewStack()
	assert.Equal(t, TopLevel, s.Top().Kind)
}

func TestStackPushPopDepth(t *testing.T) {
	s := NewStack()
	s.Push(Entry{Kind: StrEntryKind, StrType: FmtStr, HLen: 1})
	s.Push(Entry{Kind: StrCodeEntryKind, HLen: 2})
	require.Equal(t, 2, s.Depth())

	top := s.Top()
	assert.Equal(t, StrCodeEntryKind, top.Kind)
	assert.Equal(t, 2, top.HLen)

	popped := s.Pop()
	assert.Equal(t, StrCodeEntryKind, popped.Kind)

	afterPop := s.Top()
	assert.Equal(t, StrEntryKind, afterPop.Kind)
	assert.Equal(t, FmtStr, afterPop.StrType)

	s.Pop()
	assert.Equal(t, 0, s.Depth())
}

func TestStackPopEmptyPanics(t *testing.T) {
	defer func() {
		assert.NotNil(t, recover(), "Pop on empty stack did not panic")
	}()
	NewStack().Pop()
}

func TestStackClone(t *testing.T) {
	s := NewStack(Entry{Kind: StrEntryKind, StrType: RawStr, HLen: 3})
	clone := s.Clone()
	clone.Push(Entry{Kind: StrCodeEntryKind, HLen: 1})
	assert.Equal(t, 1, s.Depth(), "original stack mutated by clone")
	assert.Equal(t, 2, clone.Depth())
}

func TestEntryString(t *testing.T) {
	tests := []struct {
		e    Entry
		want string
	}{
		{Entry{Kind: TopLevel}, "TopLevel"},
		{Entry{Kind: StrEntryKind, StrType: RawStr, HLen: 3}, "StrEntry(RawStr,3)"},
		{Entry{Kind: StrCodeEntryKind, HLen: 2}, "StrCodeEntry(2)"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.e.String())
	}
}
