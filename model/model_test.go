package model

import (
	"context"
	"encoding/base64"
	"errors"
	"reflect"
	"testing"

	"github.com/sokinpui/hackathon.go/internal/models"
)

func TestNew_RegistersMockGenerators(t *testing.T) {
	reg, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got, want := reg.ListTypes(), []string{"portrait", "story"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("ListTypes = %v, want %v", got, want)
	}

	tests := []struct {
		typ     models.GenerationType
		key     string
		payload string
	}{
		{models.TypeStory, "text", MockStory},
		{models.TypePortrait, "image_base64", MockPortrait},
	}
	for _, tt := range tests {
		g, err := reg.GetGenerator(tt.typ)
		if err != nil {
			t.Fatalf("GetGenerator(%s): %v", tt.typ, err)
		}
		if g.ResponseKey() != tt.key {
			t.Errorf("%s key = %q, want %q", tt.typ, g.ResponseKey(), tt.key)
		}
		got, err := g.Generate(context.Background(), &models.GenerationTask{Type: tt.typ})
		if err != nil {
			t.Fatalf("Generate(%s): %v", tt.typ, err)
		}
		if got != tt.payload {
			t.Errorf("%s payload = %q, want %q", tt.typ, got, tt.payload)
		}
	}
}

func TestGetGenerator_NotFound(t *testing.T) {
	reg := NewRegistry(nil)
	_, err := reg.GetGenerator(models.TypeStory)
	if !errors.Is(err, ErrGeneratorNotFound) {
		t.Fatalf("err = %v, want ErrGeneratorNotFound", err)
	}
}

func TestMockGenerator_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	g := &MockGenerator{Key: "text", Payload: MockStory}
	if _, err := g.Generate(ctx, &models.GenerationTask{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestMockPortrait_IsOnePixelPNG(t *testing.T) {
	raw, err := base64.StdEncoding.DecodeString(MockPortrait)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(raw) < 24 || string(raw[1:4]) != "PNG" {
		t.Fatalf("payload is not a PNG")
	}
	// IHDR width and height are big-endian uint32 at offsets 16 and 20.
	width := int(raw[16])<<24 | int(raw[17])<<16 | int(raw[18])<<8 | int(raw[19])
	height := int(raw[20])<<24 | int(raw[21])<<16 | int(raw[22])<<8 | int(raw[23])
	if width != 1 || height != 1 {
		t.Fatalf("size = %dx%d, want 1x1", width, height)
	}
}
