package matcher

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/getmingle/mingle/pkg/models"
)

// CosineSimilarity calculates the cosine similarity between two vectors:
// dot(a,b) / (|a| * |b|). It is 0.0 when either vector has zero magnitude,
// which conflates "no similarity" with "undefined" but guards the division.
// Vectors of differing lengths also score 0.0; the service does not enforce
// the equal-length invariant.
func CosineSimilarity(a, b models.Vector) float64 {
	if len(a) == 0 || len(b) == 0 || len(a) != len(b) {
		return 0.0
	}

	normA := math.Sqrt(floats.Dot(a, a))
	normB := math.Sqrt(floats.Dot(b, b))
	if normA == 0 || normB == 0 {
		return 0.0
	}

	return floats.Dot(a, b) / (normA * normB)
}
