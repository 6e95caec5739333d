package bbcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemo_Eviction(t *testing.T) {
	t.Parallel()

	m := newMemo(2)
	m.put("a", Report{Output: "A"})
	m.put("b", Report{Output: "B"})

	_, ok := m.get("a")
	require.True(t, ok)

	m.put("c", Report{Output: "C"})
	assert.Equal(t, 2, m.len())

	_, ok = m.get("b")
	assert.False(t, ok, "b was least recently used")

	r, ok := m.get("a")
	require.True(t, ok)
	assert.Equal(t, "A", r.Output)

	r, ok = m.get("c")
	require.True(t, ok)
	assert.Equal(t, "C", r.Output)
}

func TestMemo_Update(t *testing.T) {
	t.Parallel()

	m := newMemo(1)
	m.put("a", Report{Output: "old"})
	m.put("a", Report{Output: "new"})
	assert.Equal(t, 1, m.len())

	r, ok := m.get("a")
	require.True(t, ok)
	assert.Equal(t, "new", r.Output)
}

func TestMemo_ClonesUnclosed(t *testing.T) {
	t.Parallel()

	m := newMemo(1)
	unclosed := []TagRef{{Name: "b"}}
	m.put("x", Report{Unclosed: unclosed})
	unclosed[0].Name = "i"

	r, ok := m.get("x")
	require.True(t, ok)
	assert.Equal(t, "b", r.Unclosed[0].Name)
}
