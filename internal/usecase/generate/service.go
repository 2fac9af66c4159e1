// Package generate routes shape interpretations to the specialized
// generators and persists the resulting drawing. Branches without real
// drafting logic report an explicit unimplemented status instead of
// failing; callers can tell "drew nothing by design" from an error.
package generate

import (
	"context"
	"fmt"

	"github.com/Arkcutt12/Ark-ai-agent/internal/domain"
	"github.com/Arkcutt12/Ark-ai-agent/internal/domain/shape"
	"github.com/Arkcutt12/Ark-ai-agent/internal/draft"
)

// Status tags a generation outcome.
type Status string

// Generation outcomes.
const (
	// StatusDrawn means real geometry was written to the surface.
	StatusDrawn Status = "drawn"
	// StatusUnimplemented means the branch is a known placeholder:
	// descriptive metadata only, nothing drawn.
	StatusUnimplemented Status = "unimplemented"
)

// Result describes what the dispatcher produced.
type Result struct {
	Status      Status         `json:"status"`
	Type        string         `json:"type"`
	Method      string         `json:"method,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty"`
	Layers      []string       `json:"layers"`
	EntityCount int            `json:"entities_count"`
	Path        string         `json:"path"`
}

// Standard layers added to every generated document.
var standardLayers = []draft.Layer{
	{Name: "CUT", Color: draft.ColorRed},
	{Name: "ENGRAVE", Color: draft.ColorYellow},
	{Name: "MARK", Color: draft.ColorGreen},
}

// Service generates shapes onto drafting surfaces.
type Service struct {
	newSurface draft.NewSurface
}

// New creates a generator service.
func New(newSurface draft.NewSurface) *Service {
	return &Service{newSurface: newSurface}
}

// Generate dispatches by category and shape type, draws onto a fresh
// document, and saves it to outputPath. The document is saved even for
// unimplemented branches so the output file always exists with its
// standard layers.
func (s *Service) Generate(
	ctx context.Context, interp shape.Interpretation, outputPath string,
) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, fmt.Errorf("generate canceled: %w", err)
	}

	surface, err := s.newSurface(draft.Millimeters)
	if err != nil {
		return Result{}, fmt.Errorf("%w: create document: %w", domain.ErrDraftFailed, err)
	}
	for _, l := range standardLayers {
		if err := surface.AddLayer(l.Name, l.Color); err != nil {
			return Result{}, fmt.Errorf("%w: %w", domain.ErrDraftFailed, err)
		}
	}

	res, err := s.dispatch(surface, interp)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", domain.ErrDraftFailed, err)
	}

	if err := surface.Save(outputPath); err != nil {
		return Result{}, fmt.Errorf("%w: %w", domain.ErrDraftFailed, err)
	}

	layers := surface.Layers()
	res.Layers = make([]string, len(layers))
	for i, l := range layers {
		res.Layers[i] = l.Name
	}
	res.EntityCount = len(surface.Entities())
	res.Path = outputPath
	return res, nil
}

func (s *Service) dispatch(surface draft.Surface, interp shape.Interpretation) (Result, error) {
	dims := interp.Dimensions()
	switch interp.Category() {
	case shape.Organic:
		return organicResult(interp.Type()), nil
	case shape.Mechanical:
		if interp.Type() == "gear" {
			return drawGear(surface, dims)
		}
		return unimplemented("mechanical_part", map[string]any{"requested": interp.Type()}), nil
	case shape.Architectural:
		if interp.Type() == "floorplan" {
			return drawFloorplan(surface, dims)
		}
		return unimplemented("architectural_element", map[string]any{"requested": interp.Type()}), nil
	case shape.Decorative:
		return decorativeResult(interp.Type()), nil
	default:
		return drawPolygon(surface, interp.Type(), dims)
	}
}

func organicResult(shapeType string) Result {
	switch shapeType {
	case "apple":
		return unimplemented("apple_logo", map[string]any{
			"method":     "bezier_curves",
			"complexity": "high",
		})
	case "leaf":
		return unimplemented("leaf", nil)
	default:
		return unimplemented("organic_blob", nil)
	}
}

func decorativeResult(shapeType string) Result {
	switch shapeType {
	case "mandala", "spiral":
		return unimplemented(shapeType, nil)
	default:
		return unimplemented("decorative_pattern", nil)
	}
}

func unimplemented(shapeType string, metadata map[string]any) Result {
	return Result{
		Status:   StatusUnimplemented,
		Type:     shapeType,
		Metadata: metadata,
	}
}
