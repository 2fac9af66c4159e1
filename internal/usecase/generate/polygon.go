package generate

import (
	"math"

	"github.com/Arkcutt12/Ark-ai-agent/internal/domain/geometry"
	"github.com/Arkcutt12/Ark-ai-agent/internal/domain/shape"
	"github.com/Arkcutt12/Ark-ai-agent/internal/draft"
)

const (
	defaultPolygonSides  = 6
	defaultPolygonRadius = 50.0
)

// drawPolygon draws a regular N-gon inscribed in the given radius on
// the CUT layer, starting at angle 0 and walking counterclockwise.
func drawPolygon(surface draft.Surface, shapeType string, dims shape.Dimensions) (Result, error) {
	sides := int(dims.Get(shape.DimSides, defaultPolygonSides))
	if sides < 3 {
		sides = defaultPolygonSides
	}
	radius := dims.Get(shape.DimRadius, defaultPolygonRadius)

	step := 2 * math.Pi / float64(sides)
	vertex := func(i int) geometry.Point {
		a := float64(i) * step
		return geometry.Point{X: radius * math.Cos(a), Y: radius * math.Sin(a)}
	}

	for i := 0; i < sides; i++ {
		if err := surface.AddLine(vertex(i), vertex(i+1), "CUT"); err != nil {
			return Result{}, err
		}
	}

	return Result{
		Status: StatusDrawn,
		Type:   shapeType,
		Method: "inscribed_polygon",
		Metadata: map[string]any{
			"sides":  sides,
			"radius": radius,
		},
	}, nil
}
