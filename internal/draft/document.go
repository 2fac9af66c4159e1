package draft

import "github.com/Arkcutt12/Ark-ai-agent/internal/domain/geometry"

// Compile-time check: Document implements Surface.
var _ Surface = (*Document)(nil)

// Document is an in-memory drafting surface. It records every call so
// the placement math and generators can be exercised without a file
// format library; Save only remembers the target path.
type Document struct {
	units     Unit
	layers    []Layer
	entities  []Entity
	savedPath string
	saveErr   error
}

// NewDocument creates an empty in-memory document.
func NewDocument(units Unit) *Document {
	return &Document{units: units}
}

// FailSaveWith makes the next Save return err. Test hook.
func (d *Document) FailSaveWith(err error) { d.saveErr = err }

// Units returns the document unit system.
func (d *Document) Units() Unit { return d.units }

// AddLayer records a layer.
func (d *Document) AddLayer(name string, color int) error {
	d.layers = append(d.layers, Layer{Name: name, Color: color})
	return nil
}

// AddLine records a line entity.
func (d *Document) AddLine(start, end geometry.Point, layer string) error {
	d.entities = append(d.entities, Entity{
		Kind:  KindLine,
		Line:  geometry.Segment{Start: start, End: end},
		Layer: layer,
	})
	return nil
}

// AddCircle records a circle entity.
func (d *Document) AddCircle(center geometry.Point, radius float64, layer string) error {
	d.entities = append(d.entities, Entity{
		Kind:   KindCircle,
		Center: center,
		Radius: radius,
		Layer:  layer,
	})
	return nil
}

// Layers returns the recorded layers in creation order.
func (d *Document) Layers() []Layer { return d.layers }

// Entities returns the recorded entities in draw order.
func (d *Document) Entities() []Entity { return d.entities }

// Save records the target path without touching the filesystem.
func (d *Document) Save(path string) error {
	if d.saveErr != nil {
		return d.saveErr
	}
	d.savedPath = path
	return nil
}

// SavedPath returns the last path passed to Save, or "".
func (d *Document) SavedPath() string { return d.savedPath }

// LinesOn returns the line entities drawn on the given layer.
func (d *Document) LinesOn(layer string) []geometry.Segment {
	var out []geometry.Segment
	for _, e := range d.entities {
		if e.Kind == KindLine && e.Layer == layer {
			out = append(out, e.Line)
		}
	}
	return out
}
