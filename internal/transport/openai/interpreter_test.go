package openai

import (
	"errors"
	"testing"

	"github.com/Arkcutt12/Ark-ai-agent/internal/domain"
	"github.com/Arkcutt12/Ark-ai-agent/internal/domain/shape"
)

func TestDecodePayload(t *testing.T) {
	content := `{"category":"mechanical","type":"gear","dimensions":{"radius":40,"teeth":16},"smoothness":"low","complexity":"high"}`

	interp, err := decodePayload(content, "a 16 tooth gear")
	if err != nil {
		t.Fatalf("decodePayload: %v", err)
	}
	if interp.Category() != shape.Mechanical {
		t.Errorf("category = %q", interp.Category())
	}
	if interp.Type() != "gear" {
		t.Errorf("type = %q", interp.Type())
	}
	if got := interp.Dimensions().Get(shape.DimTeeth, 0); got != 16 {
		t.Errorf("teeth = %v", got)
	}
	if interp.Style().Smoothness != shape.Low || interp.Style().Complexity != shape.High {
		t.Errorf("style = %+v", interp.Style())
	}
	if interp.Description() != "a 16 tooth gear" {
		t.Errorf("description = %q", interp.Description())
	}
}

func TestDecodePayloadRejectsUnknownCategory(t *testing.T) {
	_, err := decodePayload(`{"category":"quantum","type":"gear"}`, "x")
	if !errors.Is(err, domain.ErrInterpreterUnavailable) {
		t.Errorf("err = %v, want ErrInterpreterUnavailable", err)
	}
}

func TestDecodePayloadRejectsMalformedJSON(t *testing.T) {
	_, err := decodePayload(`not json at all`, "x")
	if !errors.Is(err, domain.ErrInterpreterUnavailable) {
		t.Errorf("err = %v, want ErrInterpreterUnavailable", err)
	}
}

func TestDecodePayloadDefaults(t *testing.T) {
	interp, err := decodePayload(`{"category":"organic","smoothness":"extreme"}`, "x")
	if err != nil {
		t.Fatalf("decodePayload: %v", err)
	}
	if interp.Type() != shape.TypeCustom {
		t.Errorf("type = %q, want %q", interp.Type(), shape.TypeCustom)
	}
	if interp.Style().Smoothness != shape.Medium {
		t.Errorf("smoothness = %q, want medium fallback", interp.Style().Smoothness)
	}
	if interp.Dimensions() == nil {
		t.Error("dimensions should be normalized to an empty map")
	}
}
