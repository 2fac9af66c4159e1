// Command shapegen turns a free-text shape description into a DXF file
// from the command line.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/Arkcutt12/Ark-ai-agent/internal/draft/dxf"
	"github.com/Arkcutt12/Ark-ai-agent/internal/usecase/generate"
	"github.com/Arkcutt12/Ark-ai-agent/internal/usecase/interpret"
)

func main() {
	if len(os.Args) < 3 {
		fmt.Println("❌ Usage: shapegen <description> <output_file>")
		fmt.Println("Examples:")
		fmt.Println("  shapegen 'apple logo 100mm' apple.dxf")
		fmt.Println("  shapegen '12 tooth gear radius 50mm' gear.dxf")
		fmt.Println("  shapegen 'bedroom floorplan 4x3m' bedroom.dxf")
		os.Exit(1)
	}

	description := os.Args[1]
	outputPath := os.Args[2]

	interp := interpret.New().Interpret(description)

	svc := generate.New(dxf.New)
	result, err := svc.Generate(context.Background(), interp, outputPath)
	if err != nil {
		fmt.Printf("❌ Error generating shape: %v\n", err)
		os.Exit(1)
	}

	if result.Status == generate.StatusDrawn {
		fmt.Println("✅ Advanced shape generated successfully")
	} else {
		fmt.Printf("⚠️  Shape type %q is not implemented yet, empty template saved\n", result.Type)
	}
	fmt.Printf("🎯 Interpreted as: %s - %s\n", interp.Category(), interp.Type())
	if len(interp.Dimensions()) > 0 {
		fmt.Printf("📏 Dimensions: %v\n", interp.Dimensions())
	}
	fmt.Printf("🎨 Style: smoothness=%s complexity=%s\n",
		interp.Style().Smoothness, interp.Style().Complexity)
	fmt.Printf("📁 File saved: %s\n", outputPath)
}
