package interpret

import "github.com/Arkcutt12/Ark-ai-agent/internal/domain/shape"

// Keyword tables. These are ordered slices, not maps: tie-break is
// strictly list order and must stay reproducible across builds.

var categoryKeywords = []struct {
	category shape.Category
	keywords []string
}{
	{shape.Organic, []string{"apple", "leaf", "flower", "organic", "curved", "smooth"}},
	{shape.Mechanical, []string{"gear", "cog", "wheel", "mechanical", "technical", "precision"}},
	{shape.Architectural, []string{"house", "building", "room", "floor", "plan", "architectural"}},
	{shape.Decorative, []string{"mandala", "pattern", "ornament", "decorative", "artistic"}},
	{shape.Geometric, []string{"polygon", "triangle", "hexagon", "geometric", "regular"}},
}

type typeEntry struct {
	name     string
	keywords []string
}

var typeKeywords = []struct {
	category shape.Category
	types    []typeEntry
}{
	{shape.Organic, []typeEntry{
		{"apple", []string{"apple", "fruit"}},
		{"leaf", []string{"leaf", "foliage"}},
		{"flower", []string{"flower", "petal", "bloom"}},
	}},
	{shape.Mechanical, []typeEntry{
		{"gear", []string{"gear", "cog", "tooth", "wheel"}},
		{"bearing", []string{"bearing", "ring"}},
		{"bracket", []string{"bracket", "mount"}},
	}},
	{shape.Architectural, []typeEntry{
		{"floorplan", []string{"floor", "room", "plan", "house"}},
		{"facade", []string{"facade", "front", "elevation"}},
		{"section", []string{"section", "cross-section"}},
	}},
	{shape.Decorative, []typeEntry{
		{"mandala", []string{"mandala", "circular", "radial"}},
		{"spiral", []string{"spiral", "helix", "coil"}},
		{"pattern", []string{"pattern", "repeat", "motif"}},
	}},
}

// Style keyword sets, checked high before low; medium is the default.
var (
	smoothnessHigh = []string{"smooth", "curved", "organic"}
	smoothnessLow  = []string{"sharp", "angular", "precise"}
	complexityHigh = []string{"detailed", "complex", "intricate"}
	complexityLow  = []string{"simple", "basic", "minimal"}
)

// Polygon side counts for the geometric fallback, in matching order.
var polygonKeywords = []struct {
	keyword string
	sides   int
}{
	{"triangle", 3},
	{"square", 4},
	{"pentagon", 5},
	{"hexagon", 6},
	{"octagon", 8},
}

const defaultPolygonSides = 6
