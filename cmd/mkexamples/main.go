// Command mkexamples writes a set of sample DXF files into examples/.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Arkcutt12/Ark-ai-agent/internal/domain/shape"
	"github.com/Arkcutt12/Ark-ai-agent/internal/draft/dxf"
	"github.com/Arkcutt12/Ark-ai-agent/internal/usecase/generate"
	"github.com/Arkcutt12/Ark-ai-agent/internal/usecase/vectorize"
)

func main() {
	fmt.Println("Creating example DXF files...")

	if err := os.MkdirAll("examples", 0o755); err != nil {
		fmt.Printf("failed to create examples dir: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	files := []struct {
		name string
		make func(ctx context.Context, path string) error
	}{
		{"arkcutt_text.dxf", makeText},
		{"gear_12_teeth.dxf", makeGear},
		{"bedroom_floorplan.dxf", makeFloorplan},
	}

	for _, f := range files {
		path := filepath.Join("examples", f.name)
		if err := f.make(ctx, path); err != nil {
			fmt.Printf("   failed: %s: %v\n", f.name, err)
			os.Exit(1)
		}
		fmt.Printf("   created: %s\n", path)
	}

	fmt.Println("\nExample DXF files created successfully!")
}

func makeText(ctx context.Context, path string) error {
	svc := vectorize.New(dxf.New)
	_, err := svc.Vectorize(ctx, "ARKCUTT", 50, "ENGRAVE", path)
	return err
}

func makeGear(ctx context.Context, path string) error {
	interp := shape.New(shape.Mechanical, "gear",
		shape.Dimensions{shape.DimRadius: 50, shape.DimTeeth: 12},
		shape.Style{Smoothness: shape.Medium, Complexity: shape.Medium},
		"12 tooth gear radius 50mm")
	_, err := generate.New(dxf.New).Generate(ctx, interp, path)
	return err
}

func makeFloorplan(ctx context.Context, path string) error {
	interp := shape.New(shape.Architectural, "floorplan",
		shape.Dimensions{shape.DimWidth: 4000, shape.DimHeight: 3000},
		shape.Style{Smoothness: shape.Medium, Complexity: shape.Medium},
		"bedroom floorplan 4x3m")
	_, err := generate.New(dxf.New).Generate(ctx, interp, path)
	return err
}
