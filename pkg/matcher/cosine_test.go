package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/getmingle/mingle/pkg/models"
)

func TestCosineSimilarity(t *testing.T) {
	t.Run("SelfSimilarityIsOne", func(t *testing.T) {
		a := models.Vector{0.3, -1.2, 4.5, 0.7}
		assert.InDelta(t, 1.0, CosineSimilarity(a, a), 1e-9)
	})

	t.Run("ZeroVectorScoresZero", func(t *testing.T) {
		a := models.Vector{1, 2, 3}
		zero := models.Vector{0, 0, 0}
		assert.Equal(t, 0.0, CosineSimilarity(a, zero))
		assert.Equal(t, 0.0, CosineSimilarity(zero, a))
	})

	t.Run("Symmetric", func(t *testing.T) {
		a := models.Vector{0.1, 0.2, 0.3}
		b := models.Vector{0.9, -0.5, 0.4}
		assert.Equal(t, CosineSimilarity(a, b), CosineSimilarity(b, a))
	})

	t.Run("OrthogonalScoresZero", func(t *testing.T) {
		a := models.Vector{1, 0}
		b := models.Vector{0, 1}
		assert.InDelta(t, 0.0, CosineSimilarity(a, b), 1e-9)
	})

	t.Run("MismatchedLengthsScoreZero", func(t *testing.T) {
		a := models.Vector{1, 2, 3}
		b := models.Vector{1, 2}
		assert.Equal(t, 0.0, CosineSimilarity(a, b))
	})

	t.Run("EmptyVectorScoresZero", func(t *testing.T) {
		assert.Equal(t, 0.0, CosineSimilarity(models.Vector{}, models.Vector{}))
	})
}
