package ordering

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDirection(t *testing.T) {
	d, ok := ParseDirection("up")
	require.True(t, ok)
	assert.Equal(t, Up, d)

	d, ok = ParseDirection("down")
	require.True(t, ok)
	assert.Equal(t, Down, d)

	_, ok = ParseDirection("sideways")
	assert.False(t, ok)
	_, ok = ParseDirection("")
	assert.False(t, ok)
}

func TestAppendPosition(t *testing.T) {
	assert.Equal(t, 0, AppendPosition(0))
	assert.Equal(t, 7, AppendPosition(7))
}

func TestNormalizeDense(t *testing.T) {
	ids := []uint64{42, 7, 99}
	pos := Normalize(ids)
	require.Len(t, pos, 3)
	assert.Equal(t, 0, pos[42])
	assert.Equal(t, 1, pos[7])
	assert.Equal(t, 2, pos[99])
}

func TestMoveSwapsNeighbors(t *testing.T) {
	ids := []uint64{1, 2, 3, 4}

	out, moved := Move(ids, 2, Up)
	require.True(t, moved)
	assert.Equal(t, []uint64{1, 3, 2, 4}, out)
	// input untouched
	assert.Equal(t, []uint64{1, 2, 3, 4}, ids)

	out, moved = Move(ids, 1, Down)
	require.True(t, moved)
	assert.Equal(t, []uint64{1, 3, 2, 4}, out)
}

func TestMoveBoundaryNoOp(t *testing.T) {
	ids := []uint64{1, 2, 3}

	out, moved := Move(ids, 0, Up)
	assert.False(t, moved)
	assert.Equal(t, ids, out)

	out, moved = Move(ids, 2, Down)
	assert.False(t, moved)
	assert.Equal(t, ids, out)

	_, moved = Move(ids, 5, Up)
	assert.False(t, moved)
}

func TestIndexOf(t *testing.T) {
	ids := []uint64{10, 20, 30}
	assert.Equal(t, 1, IndexOf(ids, 20))
	assert.Equal(t, -1, IndexOf(ids, 99))
}

func TestIsDense(t *testing.T) {
	assert.True(t, IsDense(nil))
	assert.True(t, IsDense([]int{0, 1, 2}))
	assert.False(t, IsDense([]int{0, 2, 3}))
	assert.False(t, IsDense([]int{1, 0}))
}
