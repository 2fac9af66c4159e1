// Package interpret parses free-text shape descriptions into a
// structured interpretation via ordered keyword and pattern matching.
// Everything here is pure and deterministic: evaluation order of every
// list is fixed and first match wins, with no scoring.
package interpret

import (
	"strconv"
	"strings"

	"github.com/Arkcutt12/Ark-ai-agent/internal/domain/shape"
)

// Service interprets shape descriptions. Stateless.
type Service struct{}

// New creates an interpreter service.
func New() *Service { return &Service{} }

// Interpret parses a description into category, type, dimensions, and
// style. Case-insensitive. Unknown keywords fall through to defaults;
// that leniency is deliberate, not a validation gap to close.
func (s *Service) Interpret(description string) shape.Interpretation {
	lower := strings.ToLower(description)

	dims := extractDimensions(lower)
	category := matchCategory(lower)

	var shapeType string
	if category == shape.Geometric {
		// The fallback category reads its type from the sides-count
		// heuristic instead of a keyword table.
		sides, explicit := sidesCount(lower)
		shapeType = polygonName(sides)
		if explicit {
			dims[shape.DimSides] = float64(sides)
		}
	} else {
		shapeType = matchType(lower, category)
	}

	return shape.New(category, shapeType, dims, extractStyle(lower), description)
}

// matchCategory returns the first category with a keyword substring
// hit, defaulting to geometric.
func matchCategory(text string) shape.Category {
	for _, c := range categoryKeywords {
		if containsAny(text, c.keywords) {
			return c.category
		}
	}
	return shape.Geometric
}

// matchType returns the first shape type with a keyword hit within the
// category, defaulting to "custom".
func matchType(text string, category shape.Category) string {
	for _, group := range typeKeywords {
		if group.category != category {
			continue
		}
		for _, st := range group.types {
			if containsAny(text, st.keywords) {
				return st.name
			}
		}
	}
	return shape.TypeCustom
}

// extractStyle runs the two independent three-way keyword checks.
func extractStyle(text string) shape.Style {
	style := shape.Style{Smoothness: shape.Medium, Complexity: shape.Medium}

	switch {
	case containsAny(text, smoothnessHigh):
		style.Smoothness = shape.High
	case containsAny(text, smoothnessLow):
		style.Smoothness = shape.Low
	}

	switch {
	case containsAny(text, complexityHigh):
		style.Complexity = shape.High
	case containsAny(text, complexityLow):
		style.Complexity = shape.Low
	}

	return style
}

// sidesCount reads a polygon side count from the text. explicit is
// false when no keyword matched and the default applies.
func sidesCount(text string) (sides int, explicit bool) {
	for _, p := range polygonKeywords {
		if strings.Contains(text, p.keyword) {
			return p.sides, true
		}
	}
	return defaultPolygonSides, false
}

func polygonName(sides int) string {
	for _, p := range polygonKeywords {
		if p.sides == sides {
			return p.keyword
		}
	}
	return "polygon-" + strconv.Itoa(sides)
}

func containsAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}
