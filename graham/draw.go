package graham

import (
	"math"
	"strconv"

	"github.com/fogleman/gg"
	"github.com/pkg/errors"
)

const drawPadding = 20

// Draw renders an input point cloud and its hull to a PNG, for demos and
// debugging. Input points are drawn as dots, the hull as a closed stroked
// path with vertices numbered in output order.
func Draw(points, hull []Point, scale float64, path string) error {
	if len(points) == 0 {
		return errors.Errorf("nothing to draw")
	}

	var minX, minY, maxX, maxY float64
	minX = math.Inf(1)
	minY = math.Inf(1)
	maxX = math.Inf(-1)
	maxY = math.Inf(-1)
	for _, p := range points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	// Set up the context
	width := int(scale*(maxX-minX)) + drawPadding*2
	height := int(scale*(maxY-minY)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	// Translate for padding
	c.Translate(drawPadding, drawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-minX, -minY)

	// Input points
	c.SetRGB(0.3, 0.6, 1)
	for _, p := range points {
		c.DrawCircle(p.X, p.Y, 3/scale)
		c.Fill()
	}

	// Hull boundary and vertices
	if len(hull) > 0 {
		c.MoveTo(hull[0].X, hull[0].Y)
		for _, p := range hull[1:] {
			c.LineTo(p.X, p.Y)
		}
		c.ClosePath()
		c.SetRGB(1, 0, 0)
		c.SetLineWidth(2)
		c.Stroke()

		for _, p := range hull {
			c.DrawCircle(p.X, p.Y, 5/scale)
			c.Fill()
		}
	}

	// Vertex labels are text, which would come out mirrored under the flipped
	// transform. Capture device coordinates first, then label unflipped.
	labelAt := make([][2]float64, len(hull))
	for i, p := range hull {
		tx, ty := c.TransformPoint(p.X, p.Y)
		labelAt[i] = [2]float64{tx, ty}
	}
	c.Identity()
	c.SetRGB(1, 1, 1)
	for i, at := range labelAt {
		c.DrawString(strconv.Itoa(i+1), at[0]+5, at[1]-5)
	}

	return c.SavePNG(path)
}
