package graham

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignedArea(t *testing.T) {
	ccwSquare := []Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

	t.Run("counterclockwise winding is positive", func(t *testing.T) {
		// Twice the unit square's area.
		assert.Equal(t, 2.0, SignedArea(ccwSquare))
	})

	t.Run("clockwise winding is negative", func(t *testing.T) {
		cwSquare := []Point{{0, 0}, {0, 1}, {1, 1}, {1, 0}}
		assert.Equal(t, -2.0, SignedArea(cwSquare))
	})

	t.Run("degenerate polygons are zero", func(t *testing.T) {
		assert.Zero(t, SignedArea([]Point{{0, 0}, {2, 0}}))
		assert.Zero(t, SignedArea([]Point{{0, 0}, {1, 0}, {2, 0}}))
	})
}

func TestEnsureClockwise(t *testing.T) {
	t.Run("reverses a counterclockwise hull keeping the anchor first", func(t *testing.T) {
		hull := EnsureClockwise([]Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}})
		assert.Equal(t, []Point{{0, 0}, {0, 1}, {1, 1}, {1, 0}}, hull)
		assert.Negative(t, SignedArea(hull))
	})

	t.Run("leaves a clockwise hull untouched", func(t *testing.T) {
		cw := []Point{{0, 0}, {0, 1}, {1, 1}, {1, 0}}
		assert.Equal(t, cw, EnsureClockwise(append([]Point(nil), cw...)))
	})

	t.Run("passes degenerate hulls through", func(t *testing.T) {
		assert.Equal(t, []Point{{0, 0}, {3, 0}}, EnsureClockwise([]Point{{0, 0}, {3, 0}}))
		assert.Equal(t, []Point{{1, 1}}, EnsureClockwise([]Point{{1, 1}}))
	})
}
