package city

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewEntropyFieldStartsAtDefault(t *testing.T) {
	f := NewEntropyField(3, 4)
	assert.Len(t, f.Values(), 12)
	assert.InDelta(t, DefaultEntropy, f.Mean(), 1e-12)
}

func TestAdjustEntropyTouchesOnlyInBoundsNeighbors(t *testing.T) {
	f := NewEntropyField(3, 3)
	f.Fill(0)

	AdjustEntropy(f, 0, 0, 0.25)

	assert.Equal(t, 0.0, f.At(0, 0), "the cell itself is not adjusted")
	assert.Equal(t, 0.25, f.At(0, 1))
	assert.Equal(t, 0.25, f.At(1, 0))
	assert.Equal(t, 0.25, f.At(1, 1))
	assert.Equal(t, 0.0, f.At(2, 2))
	assert.Equal(t, 0.0, f.At(0, 2))
}

func TestAdjustEntropyClamps(t *testing.T) {
	f := NewEntropyField(3, 3)
	for i := 0; i < 5; i++ {
		AdjustEntropy(f, 1, 1, 0.7)
	}
	assert.Equal(t, 1.0, f.At(0, 0))

	AdjustEntropy(f, 1, 1, -3)
	assert.Equal(t, 0.0, f.At(2, 2))
	assert.Equal(t, DefaultEntropy, f.At(1, 1))

	f.Set(1, 1, 4)
	assert.Equal(t, 1.0, f.At(1, 1))
	f.Set(9, 9, 0.5)
}

func TestBaselineEntropy(t *testing.T) {
	assert.Equal(t, 0.30, BaselineEntropy(Green))
	assert.Equal(t, 0.10, BaselineEntropy(Formal))
	assert.Equal(t, 0.70, BaselineEntropy(Informal))
	assert.Equal(t, 0.50, BaselineEntropy(Commerce))
	assert.Equal(t, 0.40, BaselineEntropy(Health))
	assert.Equal(t, DefaultEntropy, BaselineEntropy(Empty))
	assert.Equal(t, DefaultEntropy, BaselineEntropy(ModuleType(99)))
}
