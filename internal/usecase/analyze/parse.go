package analyze

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Arkcutt12/Ark-ai-agent/internal/domain"
	"github.com/Arkcutt12/Ark-ai-agent/internal/domain/geometry"
)

// Entity is one drawing entity read from the ENTITIES section.
type Entity struct {
	Type       string // LINE, LWPOLYLINE, POLYLINE, CIRCLE, ARC
	Layer      string
	Invisible  bool
	Start      geometry.Point // LINE
	End        geometry.Point // LINE
	Vertices   []geometry.Point
	Center     geometry.Point
	Radius     float64
	StartAngle float64 // degrees
	EndAngle   float64 // degrees
}

// Entity types the analyzer understands; everything else is skipped.
var supportedTypes = map[string]struct{}{
	"LINE": {}, "LWPOLYLINE": {}, "POLYLINE": {}, "CIRCLE": {}, "ARC": {},
}

// tag is one DXF group code / value pair.
type tag struct {
	code  int
	value string
}

// parseEntities reads the ENTITIES section of an ASCII DXF stream.
// DXF is a flat sequence of (group code, value) line pairs; an entity
// starts at code 0 and runs until the next code 0. POLYLINE vertices
// arrive as separate VERTEX entities terminated by SEQEND and are
// folded into their parent here. Unsupported entity types are dropped
// but still counted in total, so the report reflects the whole file.
func parseEntities(r io.Reader) (entities []Entity, total int, err error) {
	tags, err := readTags(r)
	if err != nil {
		return nil, 0, err
	}

	// Locate the ENTITIES section.
	start := -1
	for i := 0; i < len(tags)-1; i++ {
		if tags[i].code == 2 && tags[i].value == "ENTITIES" {
			start = i + 1
			break
		}
	}
	if start < 0 {
		return nil, 0, fmt.Errorf("%w: no ENTITIES section", domain.ErrInvalidFile)
	}

	var polyline *Entity

	i := start
	for i < len(tags) {
		t := tags[i]
		if t.code != 0 {
			i++
			continue
		}
		if t.value == "ENDSEC" {
			break
		}

		next := nextEntityStart(tags, i+1)
		body := tags[i+1 : next]

		if t.value != "VERTEX" && t.value != "SEQEND" {
			total++
		}

		switch t.value {
		case "VERTEX":
			if polyline != nil {
				x := tagFloat(body, 10)
				y := tagFloat(body, 20)
				polyline.Vertices = append(polyline.Vertices, geometry.Point{X: x, Y: y})
			}
		case "SEQEND":
			if polyline != nil {
				entities = append(entities, *polyline)
				polyline = nil
			}
		case "POLYLINE":
			e := decodeCommon("POLYLINE", body)
			polyline = &e
		default:
			if _, ok := supportedTypes[t.value]; ok {
				entities = append(entities, decodeEntity(t.value, body))
			}
		}
		i = next
	}

	return entities, total, nil
}

// nextEntityStart returns the index of the next code-0 tag at or after from.
func nextEntityStart(tags []tag, from int) int {
	for i := from; i < len(tags); i++ {
		if tags[i].code == 0 {
			return i
		}
	}
	return len(tags)
}

func decodeEntity(typ string, body []tag) Entity {
	e := decodeCommon(typ, body)

	switch typ {
	case "LINE":
		e.Start = geometry.Point{X: tagFloat(body, 10), Y: tagFloat(body, 20)}
		e.End = geometry.Point{X: tagFloat(body, 11), Y: tagFloat(body, 21)}
	case "LWPOLYLINE":
		e.Vertices = vertexPairs(body)
	case "CIRCLE":
		e.Center = geometry.Point{X: tagFloat(body, 10), Y: tagFloat(body, 20)}
		e.Radius = tagFloat(body, 40)
	case "ARC":
		e.Center = geometry.Point{X: tagFloat(body, 10), Y: tagFloat(body, 20)}
		e.Radius = tagFloat(body, 40)
		e.StartAngle = tagFloat(body, 50)
		e.EndAngle = tagFloat(body, 51)
	}
	return e
}

func decodeCommon(typ string, body []tag) Entity {
	e := Entity{Type: typ, Layer: "0"}
	for _, t := range body {
		switch t.code {
		case 8:
			e.Layer = t.value
		case 60:
			e.Invisible = t.value == "1"
		}
	}
	return e
}

// vertexPairs collects LWPOLYLINE vertices: each vertex is a 10/20
// pair in stream order.
func vertexPairs(body []tag) []geometry.Point {
	var points []geometry.Point
	var x float64
	var haveX bool
	for _, t := range body {
		switch t.code {
		case 10:
			x = parseFloat(t.value)
			haveX = true
		case 20:
			if haveX {
				points = append(points, geometry.Point{X: x, Y: parseFloat(t.value)})
				haveX = false
			}
		}
	}
	return points
}

// tagFloat returns the first value for the given group code, or 0.
func tagFloat(body []tag, code int) float64 {
	for _, t := range body {
		if t.code == code {
			return parseFloat(t.value)
		}
	}
	return 0
}

func parseFloat(s string) float64 {
	v, _ := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return v
}

// readTags reads the full stream as group code / value line pairs.
func readTags(r io.Reader) ([]tag, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var tags []tag
	for scanner.Scan() {
		codeLine := strings.TrimSpace(scanner.Text())
		if !scanner.Scan() {
			break
		}
		code, err := strconv.Atoi(codeLine)
		if err != nil {
			return nil, fmt.Errorf("%w: bad group code %q", domain.ErrInvalidFile, codeLine)
		}
		tags = append(tags, tag{code: code, value: strings.TrimSpace(scanner.Text())})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: read: %w", domain.ErrInvalidFile, err)
	}
	if len(tags) == 0 {
		return nil, fmt.Errorf("%w: empty file", domain.ErrInvalidFile)
	}
	return tags, nil
}
