// Package analyze inspects uploaded DXF files for laser cutting:
// it extracts entity geometry, filters phantom entities that would
// ruin a cut estimate, and reports bounding box and total cut length.
package analyze

import (
	"context"
	"io"
	"math"

	"github.com/Arkcutt12/Ark-ai-agent/internal/domain/geometry"
)

// Phantom detection thresholds.
const (
	// originEpsilon is how close to (0,0) a line endpoint must be to
	// count as touching the origin.
	originEpsilon = 0.001
	// maxLengthFactor rejects lines longer than this multiple of the
	// largest design dimension.
	maxLengthFactor = 10.0
	// maxDistanceFactor rejects lines centered farther than this
	// multiple of the largest dimension from the design centroid.
	maxDistanceFactor = 5.0
	// coordinateLimit rejects anything beyond +-coordinateLimit mm.
	coordinateLimit = 50000.0
	// circleSamples is how many perimeter points represent a circle.
	circleSamples = 16
	// fallbackDimension stands in for the max design dimension when a
	// file has no usable points.
	fallbackDimension = 1000.0
)

// phantomLayers are layer names that never contain cut geometry.
var phantomLayers = map[string]struct{}{
	"DEFPOINTS": {}, "PHANTOM": {}, "HIDDEN": {}, "CONSTRUCTION": {}, "TEMP": {},
}

// ProcessedEntity is one analyzed entity with its verdict.
type ProcessedEntity struct {
	EntityType      string           `json:"entity_type"`
	Points          []geometry.Point `json:"points"`
	Length          float64          `json:"length"`
	Layer           string           `json:"layer"`
	IsValid         bool             `json:"is_valid"`
	RejectionReason string           `json:"rejection_reason,omitempty"`
}

// Statistics summarizes an analysis run.
type Statistics struct {
	TotalEntities      int            `json:"total_entities"`
	ValidEntities      int            `json:"valid_entities"`
	PhantomEntities    int            `json:"phantom_entities"`
	DesignCenter       geometry.Point `json:"design_center"`
	MaxDesignDimension float64        `json:"max_design_dimension"`
}

// Bounds is the JSON form of a bounding box with derived extents.
type Bounds struct {
	MinX   float64 `json:"min_x"`
	MinY   float64 `json:"min_y"`
	MaxX   float64 `json:"max_x"`
	MaxY   float64 `json:"max_y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Area   float64 `json:"area"`
}

// CutLength is the total cut path length.
type CutLength struct {
	TotalMM float64 `json:"total_mm"`
	TotalM  float64 `json:"total_m"`
}

// EntityLists groups entities by verdict.
type EntityLists struct {
	Valid   []ProcessedEntity `json:"valid"`
	Phantom []ProcessedEntity `json:"phantom"`
}

// Report is the full analysis result.
type Report struct {
	Statistics  Statistics  `json:"statistics"`
	BoundingBox Bounds      `json:"bounding_box"`
	CutLength   CutLength   `json:"cut_length"`
	Entities    EntityLists `json:"entities"`
}

// Service analyzes DXF uploads.
type Service struct{}

// New creates an analyzer service.
func New() *Service { return &Service{} }

// Analyze parses a DXF stream and classifies every supported entity
// as valid cut geometry or phantom. Entities without extractable
// points are skipped entirely, not reported.
func (s *Service) Analyze(ctx context.Context, r io.Reader) (Report, error) {
	if err := ctx.Err(); err != nil {
		return Report{}, err
	}

	entities, total, err := parseEntities(r)
	if err != nil {
		return Report{}, err
	}

	center, maxDim := designStatistics(entities)

	var valid, phantom []ProcessedEntity
	for _, e := range entities {
		points := entityPoints(e)
		if len(points) == 0 {
			continue
		}

		reason := phantomReason(e, points, center, maxDim)
		pe := ProcessedEntity{
			EntityType:      e.Type,
			Points:          points,
			Length:          entityLength(e, points),
			Layer:           e.Layer,
			IsValid:         reason == "",
			RejectionReason: reason,
		}
		if pe.IsValid {
			valid = append(valid, pe)
		} else {
			phantom = append(phantom, pe)
		}
	}

	var cutTotal float64
	var validPoints []geometry.Point
	for _, pe := range valid {
		cutTotal += pe.Length
		validPoints = append(validPoints, pe.Points...)
	}
	box := geometry.BoundsOf(validPoints)

	return Report{
		Statistics: Statistics{
			TotalEntities:      total,
			ValidEntities:      len(valid),
			PhantomEntities:    len(phantom),
			DesignCenter:       center,
			MaxDesignDimension: maxDim,
		},
		BoundingBox: Bounds{
			MinX: box.MinX, MinY: box.MinY, MaxX: box.MaxX, MaxY: box.MaxY,
			Width: box.Width(), Height: box.Height(), Area: box.Area(),
		},
		CutLength: CutLength{
			TotalMM: round(cutTotal, 2),
			TotalM:  round(cutTotal/1000, 3),
		},
		Entities: EntityLists{Valid: valid, Phantom: phantom},
	}, nil
}

// entityPoints extracts representative 2D points per entity type:
// lines use both endpoints, polylines their vertices, circles 16
// perimeter samples, arcs 17 samples across the sweep.
func entityPoints(e Entity) []geometry.Point {
	switch e.Type {
	case "LINE":
		return []geometry.Point{e.Start, e.End}
	case "LWPOLYLINE", "POLYLINE":
		return e.Vertices
	case "CIRCLE":
		points := make([]geometry.Point, 0, circleSamples)
		for i := 0; i < circleSamples; i++ {
			a := 2 * math.Pi * float64(i) / circleSamples
			points = append(points, geometry.Point{
				X: e.Center.X + e.Radius*math.Cos(a),
				Y: e.Center.Y + e.Radius*math.Sin(a),
			})
		}
		return points
	case "ARC":
		start := e.StartAngle * math.Pi / 180
		end := e.EndAngle * math.Pi / 180
		points := make([]geometry.Point, 0, circleSamples+1)
		for i := 0; i <= circleSamples; i++ {
			a := start + (end-start)*float64(i)/circleSamples
			points = append(points, geometry.Point{
				X: e.Center.X + e.Radius*math.Cos(a),
				Y: e.Center.Y + e.Radius*math.Sin(a),
			})
		}
		return points
	}
	return nil
}

// entityLength computes the cut length contributed by the entity.
func entityLength(e Entity, points []geometry.Point) float64 {
	switch e.Type {
	case "LINE":
		if len(points) >= 2 {
			return points[0].DistanceTo(points[1])
		}
	case "LWPOLYLINE", "POLYLINE":
		var total float64
		for i := 0; i < len(points)-1; i++ {
			total += points[i].DistanceTo(points[i+1])
		}
		return total
	case "CIRCLE":
		return 2 * math.Pi * e.Radius
	case "ARC":
		start := e.StartAngle * math.Pi / 180
		end := e.EndAngle * math.Pi / 180
		return math.Abs(end-start) * e.Radius
	}
	return 0
}

// designStatistics computes the centroid and largest dimension over
// all supported entities, including phantoms; the phantom filters need
// a global reference frame before any filtering happens.
func designStatistics(entities []Entity) (geometry.Point, float64) {
	var all []geometry.Point
	for _, e := range entities {
		all = append(all, entityPoints(e)...)
	}
	if len(all) == 0 {
		return geometry.Point{}, fallbackDimension
	}
	box := geometry.BoundsOf(all)
	return geometry.Centroid(all), math.Max(box.Width(), box.Height())
}

func round(v float64, decimals int) float64 {
	factor := math.Pow(10, float64(decimals))
	return math.Round(v*factor) / factor
}
