package model

import (
	"context"

	"github.com/sokinpui/hackathon.go/internal/models"
)

const (
	// MockStory is returned for every story request.
	MockStory = "The story of the character is a legendary one, though the specifics are too vast to be captured by a simple computer at this time. Their greatest adventures await! This is the mock story response."

	// MockPortrait is a 1x1 red PNG, Base64 encoded.
	MockPortrait = "iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mP8z8BQDwAEhQGAhKmMIQAAAABJRU5ErkJggg=="
)

func init() {
	RegisterProvider(newMockProvider)
}

func newMockProvider() (map[models.GenerationType]Generator, error) {
	return map[models.GenerationType]Generator{
		models.TypeStory:    &MockGenerator{Key: "text", Payload: MockStory},
		models.TypePortrait: &MockGenerator{Key: "image_base64", Payload: MockPortrait},
	}, nil
}

// MockGenerator returns a fixed payload regardless of the task.
type MockGenerator struct {
	Key     string
	Payload string
}

func (m *MockGenerator) Generate(ctx context.Context, task *models.GenerationTask) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return m.Payload, nil
}

func (m *MockGenerator) ResponseKey() string {
	return m.Key
}
