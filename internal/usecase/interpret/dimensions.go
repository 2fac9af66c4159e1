package interpret

import (
	"regexp"
	"strconv"

	"github.com/Arkcutt12/Ark-ai-agent/internal/domain/shape"
)

// Dimension patterns, evaluated in this order. Patterns are
// independent; several can contribute to the same request. Overlaps
// (e.g. a pair plus a standalone radius) keep list-order precedence.
var (
	pairPattern     = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*x\s*(\d+(?:\.\d+)?)\s*(?:mm|cm|m)?`)
	widthPattern    = regexp.MustCompile(`width:?\s*(\d+(?:\.\d+)?)`)
	heightPattern   = regexp.MustCompile(`height:?\s*(\d+(?:\.\d+)?)`)
	radiusPattern   = regexp.MustCompile(`radius:?\s*(\d+(?:\.\d+)?)`)
	diameterPattern = regexp.MustCompile(`diameter:?\s*(\d+(?:\.\d+)?)`)
)

// Known gap: tooth counts are not covered by any pattern, so
// "12 tooth gear" does not record teeth=12 and the gear generator
// falls back to its default. Regression suites depend on this.

// extractDimensions records the first match of each pattern over the
// lowercased text.
func extractDimensions(text string) shape.Dimensions {
	dims := shape.Dimensions{}

	if m := pairPattern.FindStringSubmatch(text); m != nil {
		dims[shape.DimWidth] = parseFloat(m[1])
		dims[shape.DimHeight] = parseFloat(m[2])
	}
	if m := widthPattern.FindStringSubmatch(text); m != nil {
		dims[shape.DimWidth] = parseFloat(m[1])
	}
	if m := heightPattern.FindStringSubmatch(text); m != nil {
		dims[shape.DimHeight] = parseFloat(m[1])
	}
	if m := radiusPattern.FindStringSubmatch(text); m != nil {
		dims[shape.DimRadius] = parseFloat(m[1])
	}
	if m := diameterPattern.FindStringSubmatch(text); m != nil {
		dims[shape.DimDiameter] = parseFloat(m[1])
	}

	return dims
}

func parseFloat(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}
