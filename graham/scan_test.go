package graham

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScan_EvictsInteriorPoints(t *testing.T) {
	// Anchor-first, angularly sorted square with a point on the diagonal.
	// The diagonal point is stacked and then evicted once (1, 1) arrives.
	sorted := []Point{{0, 0}, {1, 0}, {0.5, 0.5}, {1, 1}, {0, 1}}

	hull := Scan(sorted)

	assert.Equal(t, []Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}}, hull)
}

func TestScan_EvictsCollinearPoints(t *testing.T) {
	sorted := []Point{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {3, 3}, {0, 3}}

	hull := Scan(sorted)

	assert.Equal(t, []Point{{0, 0}, {3, 0}, {3, 3}, {0, 3}}, hull)
}

func TestScan_AllCollinearDegeneratesToTwoPoints(t *testing.T) {
	sorted := []Point{{0, 0}, {1, 0}, {2, 0}, {3, 0}}

	hull := Scan(sorted)

	assert.Equal(t, []Point{{0, 0}, {3, 0}}, hull)
}
