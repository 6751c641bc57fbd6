package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lgame/internal/match"
)

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore()
	_, ok := s.GetMatch("a")
	assert.False(t, ok)

	s.SaveMatch(&match.Match{ID: "a"})
	s.SaveMatch(&match.Match{ID: "a", Depth: 3})
	mt, ok := s.GetMatch("a")
	require.True(t, ok)
	assert.Equal(t, 3, mt.Depth)
	assert.Equal(t, 1, s.Len())
}
