// Package draft defines the narrow drafting-surface contract the
// vectorizer and shape generators draw into, plus an in-memory
// document for tests and dry runs. The real DXF writer lives in the
// dxf subpackage.
package draft

import "github.com/Arkcutt12/Ark-ai-agent/internal/domain/geometry"

// Unit is the drawing unit system.
type Unit string

// Supported unit systems.
const (
	Millimeters Unit = "mm"
	Centimeters Unit = "cm"
	Meters      Unit = "m"
)

// Layer is a named drawing layer with an ACI color index.
type Layer struct {
	Name  string `json:"name"`
	Color int    `json:"color"`
}

// ACI color indexes for the standard cutting layers.
const (
	ColorRed    = 1 // CUT
	ColorYellow = 2 // ENGRAVE
	ColorGreen  = 3 // MARK
)

// EntityKind discriminates drawn entities.
type EntityKind string

// Entity kinds.
const (
	KindLine   EntityKind = "LINE"
	KindCircle EntityKind = "CIRCLE"
)

// Entity is one drawn element. Line fields are set for KindLine,
// Center/Radius for KindCircle.
type Entity struct {
	Kind   EntityKind
	Line   geometry.Segment
	Center geometry.Point
	Radius float64
	Layer  string
}

// Surface is the drafting session abstraction. Exactly these
// operations are available to the core; the underlying file format
// belongs to the implementation.
type Surface interface {
	AddLayer(name string, color int) error
	AddLine(start, end geometry.Point, layer string) error
	AddCircle(center geometry.Point, radius float64, layer string) error
	Layers() []Layer
	Entities() []Entity
	Save(path string) error
}

// NewSurface creates a drafting surface with the given unit system.
type NewSurface func(units Unit) (Surface, error)
