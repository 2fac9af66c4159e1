package analyze

import (
	"fmt"
	"math"
	"strings"

	"github.com/Arkcutt12/Ark-ai-agent/internal/domain/geometry"
)

// phantomReason applies the phantom filters in order and returns the
// first matching rejection reason, or "" when the entity is valid cut
// geometry. Rule order matters: the cheapest and most specific checks
// run first so reasons stay stable across files.
func phantomReason(e Entity, points []geometry.Point, center geometry.Point, maxDim float64) string {
	layer := strings.ToUpper(e.Layer)
	if _, ok := phantomLayers[layer]; ok {
		return fmt.Sprintf("entity on phantom layer %s", layer)
	}
	if e.Invisible {
		return "entity marked invisible"
	}

	if e.Type == "LINE" && len(points) >= 2 {
		if touchesOrigin(points[0]) || touchesOrigin(points[1]) {
			return "line touches drawing origin"
		}
		length := points[0].DistanceTo(points[1])
		if length > maxLengthFactor*maxDim {
			return fmt.Sprintf("line length %.1f exceeds %gx the design size", length, maxLengthFactor)
		}
		mid := geometry.Point{
			X: (points[0].X + points[1].X) / 2,
			Y: (points[0].Y + points[1].Y) / 2,
		}
		if dist := mid.DistanceTo(center); dist > maxDistanceFactor*maxDim {
			return fmt.Sprintf("line center %.1f from design center exceeds %gx the design size", dist, maxDistanceFactor)
		}
	}

	for _, p := range points {
		if math.Abs(p.X) > coordinateLimit || math.Abs(p.Y) > coordinateLimit {
			return fmt.Sprintf("coordinates beyond +-%.0f mm", coordinateLimit)
		}
	}
	return ""
}

func touchesOrigin(p geometry.Point) bool {
	return math.Abs(p.X) < originEpsilon && math.Abs(p.Y) < originEpsilon
}
