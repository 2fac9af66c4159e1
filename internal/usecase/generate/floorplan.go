package generate

import (
	"fmt"

	"github.com/Arkcutt12/Ark-ai-agent/internal/domain/geometry"
	"github.com/Arkcutt12/Ark-ai-agent/internal/domain/shape"
	"github.com/Arkcutt12/Ark-ai-agent/internal/draft"
)

// Floorplan defaults: a 4m x 3m bedroom in millimeters.
const (
	defaultRoomWidth  = 4000.0
	defaultRoomHeight = 3000.0
	// Dimensions below this are taken as meters ("4x3m") and scaled
	// to millimeters.
	meterThreshold = 100.0
)

// Reference bedroom furnishing, laid out for the default 4000x3000
// room and scaled proportionally for other sizes.
var (
	refWindow   = geometry.Segment{Start: geometry.Point{X: 500, Y: 3000}, End: geometry.Point{X: 1700, Y: 3000}}
	refBed      = [2]geometry.Point{{X: 500, Y: 500}, {X: 2500, Y: 2000}}
	refWardrobe = [2]geometry.Point{{X: 3200, Y: 500}, {X: 3800, Y: 1500}}
)

// drawFloorplan draws a four-wall bedroom with a window segment and
// two furniture outlines (bed, wardrobe). Walls and window go on the
// WALLS layer, furniture on FURNITURE.
func drawFloorplan(surface draft.Surface, dims shape.Dimensions) (Result, error) {
	width := normalizeMeters(dims.Get(shape.DimWidth, defaultRoomWidth))
	height := normalizeMeters(dims.Get(shape.DimHeight, defaultRoomHeight))

	if err := surface.AddLayer("WALLS", draft.ColorRed); err != nil {
		return Result{}, err
	}
	if err := surface.AddLayer("FURNITURE", draft.ColorGreen); err != nil {
		return Result{}, err
	}

	corners := []geometry.Point{
		{X: 0, Y: 0}, {X: width, Y: 0}, {X: width, Y: height}, {X: 0, Y: height}, {X: 0, Y: 0},
	}
	for i := 0; i < len(corners)-1; i++ {
		if err := surface.AddLine(corners[i], corners[i+1], "WALLS"); err != nil {
			return Result{}, err
		}
	}

	sx := width / defaultRoomWidth
	sy := height / defaultRoomHeight

	window := geometry.Segment{
		Start: geometry.Point{X: refWindow.Start.X * sx, Y: refWindow.Start.Y * sy},
		End:   geometry.Point{X: refWindow.End.X * sx, Y: refWindow.End.Y * sy},
	}
	if err := surface.AddLine(window.Start, window.End, "WALLS"); err != nil {
		return Result{}, err
	}

	for _, box := range [][2]geometry.Point{refBed, refWardrobe} {
		if err := drawRect(surface, scalePoint(box[0], sx, sy), scalePoint(box[1], sx, sy), "FURNITURE"); err != nil {
			return Result{}, err
		}
	}

	return Result{
		Status: StatusDrawn,
		Type:   "floorplan",
		Method: "architectural_standards",
		Metadata: map[string]any{
			"room_type":  "bedroom",
			"dimensions": fmt.Sprintf("%.0fx%.0fmm", width, height),
		},
	}, nil
}

// drawRect outlines the axis-aligned rectangle between min and max.
func drawRect(surface draft.Surface, min, max geometry.Point, layer string) error {
	corners := []geometry.Point{
		min, {X: max.X, Y: min.Y}, max, {X: min.X, Y: max.Y}, min,
	}
	for i := 0; i < len(corners)-1; i++ {
		if err := surface.AddLine(corners[i], corners[i+1], layer); err != nil {
			return err
		}
	}
	return nil
}

func scalePoint(p geometry.Point, sx, sy float64) geometry.Point {
	return geometry.Point{X: p.X * sx, Y: p.Y * sy}
}

// normalizeMeters converts small dimension values ("4x3m") to
// millimeters. Values at or above the threshold pass through.
func normalizeMeters(v float64) float64 {
	if v > 0 && v < meterThreshold {
		return v * 1000
	}
	return v
}
