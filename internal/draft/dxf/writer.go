// Package dxf implements the drafting surface on top of the yofu/dxf
// writer. Entities are mirrored in memory so the surface can report
// layers and entity counts without reaching into the writer's state.
package dxf

import (
	"fmt"

	godxf "github.com/yofu/dxf"
	dxfcolor "github.com/yofu/dxf/color"
	"github.com/yofu/dxf/drawing"

	"github.com/Arkcutt12/Ark-ai-agent/internal/domain"
	"github.com/Arkcutt12/Ark-ai-agent/internal/domain/geometry"
	"github.com/Arkcutt12/Ark-ai-agent/internal/draft"
)

// Compile-time check: Writer implements draft.Surface.
var _ draft.Surface = (*Writer)(nil)

// Writer is a DXF-backed drafting surface.
type Writer struct {
	drawing  *drawing.Drawing
	layers   []draft.Layer
	entities []draft.Entity
}

// New creates a DXF drafting surface. The unit system is recorded for
// callers; DXF coordinates are written as-is (millimeters throughout
// this codebase).
func New(units draft.Unit) (draft.Surface, error) {
	_ = units
	return &Writer{drawing: godxf.NewDrawing()}, nil
}

// AddLayer creates a DXF layer with the given ACI color index.
func (w *Writer) AddLayer(name string, color int) error {
	_, err := w.drawing.AddLayer(name, dxfcolor.ColorNumber(color), godxf.DefaultLineType, false)
	if err != nil {
		return fmt.Errorf("add layer %q: %w", name, err)
	}
	w.layers = append(w.layers, draft.Layer{Name: name, Color: color})
	return nil
}

// AddLine draws a line on the given layer.
func (w *Writer) AddLine(start, end geometry.Point, layer string) error {
	if err := w.changeLayer(layer); err != nil {
		return err
	}
	if _, err := w.drawing.Line(start.X, start.Y, 0, end.X, end.Y, 0); err != nil {
		return fmt.Errorf("add line: %w", err)
	}
	w.entities = append(w.entities, draft.Entity{
		Kind:  draft.KindLine,
		Line:  geometry.Segment{Start: start, End: end},
		Layer: layer,
	})
	return nil
}

// AddCircle draws a circle on the given layer.
func (w *Writer) AddCircle(center geometry.Point, radius float64, layer string) error {
	if err := w.changeLayer(layer); err != nil {
		return err
	}
	if _, err := w.drawing.Circle(center.X, center.Y, 0, radius); err != nil {
		return fmt.Errorf("add circle: %w", err)
	}
	w.entities = append(w.entities, draft.Entity{
		Kind:   draft.KindCircle,
		Center: center,
		Radius: radius,
		Layer:  layer,
	})
	return nil
}

// Layers returns the layers created so far.
func (w *Writer) Layers() []draft.Layer { return w.layers }

// Entities returns the entities drawn so far.
func (w *Writer) Entities() []draft.Entity { return w.entities }

// Save serializes the drawing to the given path.
func (w *Writer) Save(path string) error {
	if err := w.drawing.SaveAs(path); err != nil {
		return fmt.Errorf("%w: save %s: %w", domain.ErrDraftFailed, path, err)
	}
	return nil
}

// changeLayer switches the writer's current layer, creating an
// unlisted layer on demand so a misspelled layer name degrades to a
// drawable default-colored layer instead of a failure.
func (w *Writer) changeLayer(layer string) error {
	if err := w.drawing.ChangeLayer(layer); err == nil {
		return nil
	}
	if _, err := w.drawing.AddLayer(layer, godxf.DefaultColor, godxf.DefaultLineType, true); err != nil {
		return fmt.Errorf("create layer %q: %w", layer, err)
	}
	w.layers = append(w.layers, draft.Layer{Name: layer, Color: 0})
	return nil
}
