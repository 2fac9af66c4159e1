package vectorize

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/Arkcutt12/Ark-ai-agent/internal/domain"
	"github.com/Arkcutt12/Ark-ai-agent/internal/domain/glyph"
	"github.com/Arkcutt12/Ark-ai-agent/internal/draft"
)

func newMemoryService() (*Service, *draft.Document) {
	doc := draft.NewDocument(draft.Millimeters)
	svc := New(func(draft.Unit) (draft.Surface, error) { return doc, nil })
	return svc, doc
}

func TestVectorize_SegmentCountPerGlyph(t *testing.T) {
	svc, doc := newMemoryService()

	if _, err := svc.Vectorize(context.Background(), "ARK", 100, "ENGRAVE", "out.dxf"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := 0
	for _, ch := range "ARK" {
		g, _ := glyph.Lookup(ch)
		want += len(g.Segments())
	}
	if got := len(doc.LinesOn("ENGRAVE")); got != want {
		t.Errorf("got %d lines, want %d", got, want)
	}
}

func TestVectorize_MonospacedAdvance(t *testing.T) {
	svc, doc := newMemoryService()

	// '?' is not in the glyph table: draws nothing, still advances.
	p, err := svc.Vectorize(context.Background(), "A?A", 50, "TEXT", "out.dxf")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if p.Advance != 50*0.8 {
		t.Errorf("advance: got %v, want %v", p.Advance, 50*0.8)
	}

	lines := doc.LinesOn("TEXT")
	gA, _ := glyph.Lookup('A')
	if len(lines) != 2*len(gA.Segments()) {
		t.Fatalf("got %d lines, want %d", len(lines), 2*len(gA.Segments()))
	}

	// The second 'A' starts exactly two advances after the first.
	firstX := lines[0].Start.X
	secondX := lines[len(gA.Segments())].Start.X
	if diff := secondX - firstX; math.Abs(diff-2*p.Advance) > 1e-9 {
		t.Errorf("second glyph offset: got %v, want %v", diff, 2*p.Advance)
	}
}

func TestVectorize_GlyphA_WithinBody(t *testing.T) {
	svc, doc := newMemoryService()

	p, err := svc.Vectorize(context.Background(), "A", 100, "ENGRAVE", "a.dxf")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := doc.LinesOn("ENGRAVE")
	if len(lines) != 3 {
		t.Fatalf("'A' must emit exactly 3 segments, got %d", len(lines))
	}
	for _, l := range lines {
		for _, pt := range []struct{ x, y float64 }{
			{l.Start.X, l.Start.Y}, {l.End.X, l.End.Y},
		} {
			if pt.x < p.Origin.X-1e-9 || pt.x > p.Origin.X+10+1e-9 {
				t.Errorf("x %v outside [cursor, cursor+10]", pt.x)
			}
			if pt.y < p.Origin.Y-1e-9 || pt.y > p.Origin.Y+100+1e-9 {
				t.Errorf("y %v outside scaled body", pt.y)
			}
		}
	}
}

func TestVectorize_GlyphI_KeepsDecorativeMark(t *testing.T) {
	svc, doc := newMemoryService()

	p, err := svc.Vectorize(context.Background(), "I", 100, "TEXT", "i.dxf")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	markY := p.Origin.Y + 110 // fontSize 100 -> scale 1
	found := false
	for _, l := range doc.LinesOn("TEXT") {
		if math.Abs(l.Start.Y-markY) < 1e-9 && math.Abs(l.End.Y-markY) < 1e-9 {
			found = true
		}
	}
	if !found {
		t.Error("decorative mark at scaled y=110 was clipped")
	}
}

func TestVectorize_CenteredOnAnchor(t *testing.T) {
	svc, _ := newMemoryService()

	p, err := svc.Vectorize(context.Background(), "ARKCUTT", 50, "ENGRAVE", "text.dxf")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	spacing := 50 * 0.8
	width := 7*spacing - (spacing - 50*0.6)
	if math.Abs(p.Width-width) > 1e-9 {
		t.Errorf("width: got %v, want %v", p.Width, width)
	}
	if math.Abs(p.Origin.X-(DefaultAnchorX-width/2)) > 1e-9 {
		t.Errorf("origin x: got %v", p.Origin.X)
	}
	if math.Abs(p.Origin.Y-(DefaultAnchorY-25)) > 1e-9 {
		t.Errorf("origin y: got %v", p.Origin.Y)
	}
}

func TestVectorize_CustomAnchor(t *testing.T) {
	doc := draft.NewDocument(draft.Millimeters)
	svc := New(func(draft.Unit) (draft.Surface, error) { return doc, nil }).WithAnchor(0, 0)

	p, err := svc.Vectorize(context.Background(), "T", 100, "TEXT", "t.dxf")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Origin.Y != -50 {
		t.Errorf("anchor override ignored: origin %+v", p.Origin)
	}
}

func TestVectorize_SaveFailure(t *testing.T) {
	doc := draft.NewDocument(draft.Millimeters)
	doc.FailSaveWith(errors.New("disk full"))
	svc := New(func(draft.Unit) (draft.Surface, error) { return doc, nil })

	_, err := svc.Vectorize(context.Background(), "A", 10, "TEXT", "a.dxf")
	if !errors.Is(err, domain.ErrDraftFailed) {
		t.Errorf("save failure must map to ErrDraftFailed, got %v", err)
	}
}

func TestVectorize_InvalidInput(t *testing.T) {
	svc, _ := newMemoryService()

	if _, err := svc.Vectorize(context.Background(), "", 10, "TEXT", "x.dxf"); !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("empty text: got %v", err)
	}
	if _, err := svc.Vectorize(context.Background(), "A", 0, "TEXT", "x.dxf"); !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("zero font size: got %v", err)
	}
}

func TestVectorize_DefaultLayer(t *testing.T) {
	svc, doc := newMemoryService()

	p, err := svc.Vectorize(context.Background(), "A", 20, "", "a.dxf")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Layer != DefaultLayer {
		t.Errorf("layer: got %q", p.Layer)
	}
	if len(doc.Layers()) != 1 || doc.Layers()[0].Name != DefaultLayer {
		t.Errorf("layers: %+v", doc.Layers())
	}
}
