package models

import (
	"strings"

	"github.com/google/uuid"
)

// GenerationType selects which mock payload a request receives.
type GenerationType string

const (
	TypeStory    GenerationType = "story"
	TypePortrait GenerationType = "portrait"
)

// storyMarker is matched against the raw body; the body is never parsed.
const storyMarker = `"type":"story"`

var lineBreaks = strings.NewReplacer("\r", "", "\n", "")

// DetectType reports TypeStory when body contains the literal
// `"type":"story"` and TypePortrait otherwise.
func DetectType(body string) GenerationType {
	if strings.Contains(body, storyMarker) {
		return TypeStory
	}
	return TypePortrait
}

// JoinLines removes every CR and LF, the same result as reading the body
// line by line and concatenating the lines.
// FIXME: newlines inside string values are lost as well; type detection
// should look at the raw body instead.
func JoinLines(body string) string {
	return lineBreaks.Replace(body)
}

type GenerationTask struct {
	TaskID string
	Type   GenerationType
	Body   string
}

// NewGenerationTask assigns a task id and classifies the line-joined body.
func NewGenerationTask(rawBody string) *GenerationTask {
	body := JoinLines(rawBody)
	return &GenerationTask{
		TaskID: uuid.New().String(),
		Type:   DetectType(body),
		Body:   body,
	}
}
