package interpret

import (
	"reflect"
	"testing"

	"github.com/Arkcutt12/Ark-ai-agent/internal/domain/shape"
)

func TestInterpret_Gear(t *testing.T) {
	svc := New()
	i := svc.Interpret("12 tooth gear radius 50mm")

	if i.Category() != shape.Mechanical {
		t.Errorf("category: got %q", i.Category())
	}
	if i.Type() != "gear" {
		t.Errorf("type: got %q", i.Type())
	}
	want := shape.Dimensions{shape.DimRadius: 50}
	if !reflect.DeepEqual(i.Dimensions(), want) {
		// The teeth count is deliberately not extracted.
		t.Errorf("dimensions: got %v, want %v", i.Dimensions(), want)
	}
}

func TestInterpret_BedroomFloorplan(t *testing.T) {
	svc := New()
	i := svc.Interpret("bedroom floorplan 4x3m")

	if i.Category() != shape.Architectural {
		t.Errorf("category: got %q", i.Category())
	}
	if i.Type() != "floorplan" {
		t.Errorf("type: got %q", i.Type())
	}
	want := shape.Dimensions{shape.DimWidth: 4, shape.DimHeight: 3}
	if !reflect.DeepEqual(i.Dimensions(), want) {
		t.Errorf("dimensions: got %v, want %v", i.Dimensions(), want)
	}
}

func TestInterpret_EmptyDescription_Defaults(t *testing.T) {
	svc := New()
	i := svc.Interpret("")

	if i.Category() != shape.Geometric {
		t.Errorf("category: got %q", i.Category())
	}
	if i.Type() != "hexagon" {
		t.Errorf("type: got %q, want sides-count fallback", i.Type())
	}
	if len(i.Dimensions()) != 0 {
		t.Errorf("dimensions should be empty, got %v", i.Dimensions())
	}
	if i.Style().Smoothness != shape.Medium || i.Style().Complexity != shape.Medium {
		t.Errorf("style: got %+v", i.Style())
	}
}

func TestInterpret_Idempotent(t *testing.T) {
	svc := New()
	const desc = "smooth detailed apple logo 100mm width: 80"

	a := svc.Interpret(desc)
	b := svc.Interpret(desc)
	if !reflect.DeepEqual(a, b) {
		t.Error("interpret must be a pure function")
	}
}

func TestInterpret_CategoryOrderWins(t *testing.T) {
	svc := New()

	// "smooth" (organic) appears before "gear" (mechanical) in the
	// category list, so organic wins regardless of word order.
	i := svc.Interpret("smooth gear")
	if i.Category() != shape.Organic {
		t.Errorf("category: got %q, want organic (list order tie-break)", i.Category())
	}
}

func TestInterpret_CaseInsensitive(t *testing.T) {
	svc := New()
	i := svc.Interpret("APPLE Logo")
	if i.Category() != shape.Organic || i.Type() != "apple" {
		t.Errorf("got %q/%q", i.Category(), i.Type())
	}
}

func TestInterpret_TypeDefaultsToCustom(t *testing.T) {
	svc := New()
	i := svc.Interpret("mechanical part")
	if i.Category() != shape.Mechanical {
		t.Fatalf("category: got %q", i.Category())
	}
	if i.Type() != shape.TypeCustom {
		t.Errorf("type: got %q, want custom", i.Type())
	}
}

func TestInterpret_GeometricSides(t *testing.T) {
	svc := New()

	cases := []struct {
		desc      string
		wantType  string
		wantSides float64
	}{
		{"regular triangle", "triangle", 3},
		{"regular pentagon shape", "pentagon", 5},
		{"octagon coaster", "octagon", 8},
	}
	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			i := svc.Interpret(tc.desc)
			if i.Category() != shape.Geometric {
				t.Fatalf("category: got %q", i.Category())
			}
			if i.Type() != tc.wantType {
				t.Errorf("type: got %q, want %q", i.Type(), tc.wantType)
			}
			if got := i.Dimensions()[shape.DimSides]; got != tc.wantSides {
				t.Errorf("sides: got %v, want %v", got, tc.wantSides)
			}
		})
	}
}

func TestInterpret_Style(t *testing.T) {
	svc := New()

	cases := []struct {
		desc string
		want shape.Style
	}{
		{"sharp simple star", shape.Style{Smoothness: shape.Low, Complexity: shape.Low}},
		{"smooth intricate mandala", shape.Style{Smoothness: shape.High, Complexity: shape.High}},
		{"gear", shape.Style{Smoothness: shape.Medium, Complexity: shape.Medium}},
	}
	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			if got := svc.Interpret(tc.desc).Style(); got != tc.want {
				t.Errorf("style: got %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestExtractDimensions_Standalone(t *testing.T) {
	dims := extractDimensions("plate width: 120.5 height 40 radius 7 diameter: 14")

	want := shape.Dimensions{
		shape.DimWidth:    120.5,
		shape.DimHeight:   40,
		shape.DimRadius:   7,
		shape.DimDiameter: 14,
	}
	if !reflect.DeepEqual(dims, want) {
		t.Errorf("got %v, want %v", dims, want)
	}
}

func TestExtractDimensions_PairAndRadiusCoexist(t *testing.T) {
	dims := extractDimensions("panel 10x20mm radius 50mm")

	want := shape.Dimensions{
		shape.DimWidth:  10,
		shape.DimHeight: 20,
		shape.DimRadius: 50,
	}
	if !reflect.DeepEqual(dims, want) {
		t.Errorf("got %v, want %v", dims, want)
	}
}

func TestExtractDimensions_FirstMatchPerPattern(t *testing.T) {
	dims := extractDimensions("2x3 then 9x9")
	if dims[shape.DimWidth] != 2 || dims[shape.DimHeight] != 3 {
		t.Errorf("first pair must win: got %v", dims)
	}
}
