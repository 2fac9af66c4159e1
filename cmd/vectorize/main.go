// Command vectorize renders a text string into a DXF file from the
// command line.
package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/Arkcutt12/Ark-ai-agent/internal/draft/dxf"
	"github.com/Arkcutt12/Ark-ai-agent/internal/usecase/vectorize"
)

func main() {
	if len(os.Args) < 4 {
		fmt.Println("❌ Uso: vectorize <texto> <archivo_salida> <tamaño_fuente> [capa]")
		os.Exit(1)
	}

	text := os.Args[1]
	outputPath := os.Args[2]
	fontSize, err := strconv.ParseFloat(os.Args[3], 64)
	if err != nil {
		fmt.Printf("❌ Tamaño de fuente inválido: %s\n", os.Args[3])
		os.Exit(1)
	}
	layerName := ""
	if len(os.Args) > 4 {
		layerName = os.Args[4]
	}

	svc := vectorize.New(dxf.New)
	placement, err := svc.Vectorize(context.Background(), text, fontSize, layerName, outputPath)
	if err != nil {
		fmt.Printf("❌ Error vectorizando texto: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✅ Texto vectorizado exitosamente: %s\n", placement.Text)
	fmt.Printf("📍 Posición: (%.1f, %.1f)\n", placement.Origin.X, placement.Origin.Y)
	fmt.Printf("📏 Dimensiones: %.1f x %.1f mm\n", placement.Width, placement.Height)
	fmt.Printf("🎯 Capa: %s\n", placement.Layer)
}
