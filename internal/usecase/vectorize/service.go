// Package vectorize turns text into engraving line segments on a
// drafting surface using the fixed glyph table.
package vectorize

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/Arkcutt12/Ark-ai-agent/internal/domain"
	"github.com/Arkcutt12/Ark-ai-agent/internal/domain/geometry"
	"github.com/Arkcutt12/Ark-ai-agent/internal/domain/glyph"
	"github.com/Arkcutt12/Ark-ai-agent/internal/draft"
)

// Glyph metrics relative to the font size. The width/spacing ratios
// and the approximate total-width formula are part of the output
// contract; do not tighten them.
const (
	letterWidthRatio   = 0.6
	letterSpacingRatio = 0.8
	gridHeight         = 100.0
)

// Default anchor point. Kept away from (0,0) because several DXF
// viewers clip near the origin.
const (
	DefaultAnchorX = 1000.0
	DefaultAnchorY = 1000.0
)

// DefaultLayer is the engraving layer used when the caller names none.
const DefaultLayer = "TEXT"

// Placement reports where the text landed.
type Placement struct {
	Origin  geometry.Point `json:"origin"`
	Advance float64        `json:"advance"`
	Width   float64        `json:"width"`
	Height  float64        `json:"height"`
	Text    string         `json:"text"`
	Layer   string         `json:"layer"`
	Path    string         `json:"path"`
}

// Service vectorizes text onto a drafting surface.
type Service struct {
	newSurface draft.NewSurface
	anchorX    float64
	anchorY    float64
}

// New creates a vectorizer service drawing onto surfaces from newSurface.
func New(newSurface draft.NewSurface) *Service {
	return &Service{
		newSurface: newSurface,
		anchorX:    DefaultAnchorX,
		anchorY:    DefaultAnchorY,
	}
}

// WithAnchor overrides the drawing anchor point.
func (s *Service) WithAnchor(x, y float64) *Service {
	s.anchorX = x
	s.anchorY = y
	return s
}

// Vectorize draws text centered on the anchor and saves the surface to
// outputPath. Characters outside the glyph table draw nothing but
// still advance the cursor. Single pass, deterministic.
func (s *Service) Vectorize(
	ctx context.Context, text string, fontSize float64, layerName, outputPath string,
) (Placement, error) {
	if text == "" {
		return Placement{}, fmt.Errorf("%w: text is required", domain.ErrInvalidInput)
	}
	if fontSize <= 0 {
		return Placement{}, fmt.Errorf("%w: font size must be positive, got %v", domain.ErrInvalidInput, fontSize)
	}
	if layerName == "" {
		layerName = DefaultLayer
	}
	if err := ctx.Err(); err != nil {
		return Placement{}, fmt.Errorf("vectorize canceled: %w", err)
	}

	surface, err := s.newSurface(draft.Millimeters)
	if err != nil {
		return Placement{}, fmt.Errorf("%w: create document: %w", domain.ErrDraftFailed, err)
	}
	if err := surface.AddLayer(layerName, draft.ColorYellow); err != nil {
		return Placement{}, fmt.Errorf("%w: %w", domain.ErrDraftFailed, err)
	}

	text = strings.ToUpper(text)

	letterWidth := fontSize * letterWidthRatio
	letterSpacing := fontSize * letterSpacingRatio
	// Approximate width, not a tight bounding box. Kept as-is for
	// compatibility with previously generated files.
	runeCount := utf8.RuneCountInString(text)
	textWidth := float64(runeCount)*letterSpacing - (letterSpacing - letterWidth)

	origin := geometry.Point{
		X: s.anchorX - textWidth/2,
		Y: s.anchorY - fontSize/2,
	}

	scale := fontSize / gridHeight
	cursorX := origin.X

	for _, ch := range text {
		if g, ok := glyph.Lookup(ch); ok {
			for _, seg := range g.Segments() {
				placed := seg.Scale(scale).Translate(cursorX, origin.Y)
				if err := surface.AddLine(placed.Start, placed.End, layerName); err != nil {
					return Placement{}, fmt.Errorf("%w: %w", domain.ErrDraftFailed, err)
				}
			}
		}
		// Monospaced advance, including unknown characters.
		cursorX += letterSpacing
	}

	if err := surface.Save(outputPath); err != nil {
		return Placement{}, fmt.Errorf("%w: %w", domain.ErrDraftFailed, err)
	}

	return Placement{
		Origin:  origin,
		Advance: letterSpacing,
		Width:   textWidth,
		Height:  fontSize,
		Text:    text,
		Layer:   layerName,
		Path:    outputPath,
	}, nil
}
