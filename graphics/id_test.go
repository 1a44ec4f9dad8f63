package graphics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateID_UniqueAndIncreasing(t *testing.T) {
	seen := make(map[GraphicsID]struct{})
	prev := GenerateID()
	for i := 0; i < 1000; i++ {
		id := GenerateID()
		assert.Greater(t, id.seq, prev.seq)
		_, dup := seen[id]
		assert.False(t, dup)
		seen[id] = struct{}{}
		prev = id
	}
}

func TestGraphicsID_ZeroValueNeverIssued(t *testing.T) {
	var zero GraphicsID
	assert.True(t, zero.IsZero())
	assert.False(t, GenerateID().IsZero())
	assert.Equal(t, "gfx#0", zero.String())
}

func TestGenerateID_IndependentOfPools(t *testing.T) {
	a := NewRendererPool(NewRecordingRenderer(), NewStubTextureStorage(), NewStubFontStorage())
	b := NewRendererPool(NewRecordingRenderer(), NewStubTextureStorage(), NewStubFontStorage())

	idA := a.Acquire(size1, position, Red)
	idB := b.Acquire(size1, position, Red)

	assert.NotEqual(t, idA, idB)
	assert.False(t, a.Contains(idB))
	assert.False(t, b.Contains(idA))
}
