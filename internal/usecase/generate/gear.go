package generate

import (
	"math"

	"github.com/Arkcutt12/Ark-ai-agent/internal/domain/geometry"
	"github.com/Arkcutt12/Ark-ai-agent/internal/domain/shape"
	"github.com/Arkcutt12/Ark-ai-agent/internal/draft"
)

// Gear defaults, matching the reference 12-tooth 50mm gear.
const (
	defaultGearRadius = 50.0
	defaultGearTeeth  = 12
	innerRadiusRatio  = 0.3
	toothLengthRatio  = 0.1
)

// drawGear draws a circle-and-radial-line gear approximation on the
// CUT layer: outer circle, inner bore, and N evenly spaced tooth lines
// at 360/N degree increments.
func drawGear(surface draft.Surface, dims shape.Dimensions) (Result, error) {
	radius := dims.Get(shape.DimRadius, defaultGearRadius)
	teeth := int(dims.Get(shape.DimTeeth, defaultGearTeeth))
	if teeth < 1 {
		teeth = defaultGearTeeth
	}

	center := geometry.Point{}
	if err := surface.AddCircle(center, radius, "CUT"); err != nil {
		return Result{}, err
	}
	if err := surface.AddCircle(center, radius*innerRadiusRatio, "CUT"); err != nil {
		return Result{}, err
	}

	toothAngle := 360.0 / float64(teeth)
	toothLen := radius * toothLengthRatio
	for i := 0; i < teeth; i++ {
		rad := float64(i) * toothAngle * math.Pi / 180
		inner := geometry.Point{
			X: center.X + radius*math.Cos(rad),
			Y: center.Y + radius*math.Sin(rad),
		}
		outer := geometry.Point{
			X: center.X + (radius+toothLen)*math.Cos(rad),
			Y: center.Y + (radius+toothLen)*math.Sin(rad),
		}
		if err := surface.AddLine(inner, outer, "CUT"); err != nil {
			return Result{}, err
		}
	}

	return Result{
		Status: StatusDrawn,
		Type:   "gear",
		Method: "parametric_generation",
		Metadata: map[string]any{
			"teeth_count":    teeth,
			"pitch_diameter": radius * 2,
			"tooth_height":   radius * 0.2,
		},
	}, nil
}
