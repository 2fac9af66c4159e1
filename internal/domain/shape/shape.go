// Package shape holds the structured result of interpreting a free-text
// shape description: category, type, dimensions, and style modifiers.
package shape

// Category is a shape family. Matching order across categories is
// fixed; see Categories.
type Category string

// Shape categories.
const (
	Organic       Category = "organic"
	Mechanical    Category = "mechanical"
	Architectural Category = "architectural"
	Decorative    Category = "decorative"
	// Geometric is the fallback category when no keyword matches.
	Geometric Category = "geometric"
)

// Categories lists all categories in matching order. The order is part
// of the contract: the first category with a keyword hit wins.
var Categories = []Category{Organic, Mechanical, Architectural, Decorative, Geometric}

// IsValid checks if the category is one of the supported values.
func (c Category) IsValid() bool {
	for _, v := range Categories {
		if c == v {
			return true
		}
	}
	return false
}

// TypeCustom is the shape type when no type keyword matches within the
// chosen category.
const TypeCustom = "custom"

// Level is a three-way style intensity.
type Level string

// Style levels.
const (
	Low    Level = "low"
	Medium Level = "medium"
	High   Level = "high"
)

// Style holds the extracted style modifiers. Both default to Medium.
type Style struct {
	Smoothness Level `json:"smoothness"`
	Complexity Level `json:"complexity"`
}

// Dimension names used in the Dimensions map.
const (
	DimWidth    = "width"
	DimHeight   = "height"
	DimRadius   = "radius"
	DimDiameter = "diameter"
	DimTeeth    = "teeth"
	DimSides    = "sides"
)

// Dimensions maps dimension names to extracted numeric values.
// Partial by design: absent keys mean "not mentioned".
type Dimensions map[string]float64

// Get returns the named dimension or the fallback when absent.
func (d Dimensions) Get(name string, fallback float64) float64 {
	if v, ok := d[name]; ok {
		return v
	}
	return fallback
}

// Interpretation is the structured reading of a shape description.
// Produced per request and never persisted.
type Interpretation struct {
	category    Category
	shapeType   string
	dimensions  Dimensions
	style       Style
	description string
}

// New builds an interpretation. A nil dimensions map is normalized to
// an empty one so callers can always index it.
func New(category Category, shapeType string, dims Dimensions, style Style, description string) Interpretation {
	if dims == nil {
		dims = Dimensions{}
	}
	return Interpretation{
		category:    category,
		shapeType:   shapeType,
		dimensions:  dims,
		style:       style,
		description: description,
	}
}

// Category returns the matched shape family.
func (i Interpretation) Category() Category { return i.category }

// Type returns the shape type tag within the category.
func (i Interpretation) Type() string { return i.shapeType }

// Dimensions returns the extracted dimension map.
func (i Interpretation) Dimensions() Dimensions { return i.dimensions }

// Style returns the extracted style modifiers.
func (i Interpretation) Style() Style { return i.style }

// Description returns the original request text.
func (i Interpretation) Description() string { return i.description }
