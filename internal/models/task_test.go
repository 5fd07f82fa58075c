package models

import (
	"testing"

	"github.com/google/uuid"
)

func TestDetectType(t *testing.T) {
	tests := []struct {
		name string
		body string
		want GenerationType
	}{
		{"story", `{"type":"story"}`, TypeStory},
		{"story with other fields", `{"characterData":{"name":"Ayla"},"type":"story"}`, TypeStory},
		{"empty object", `{}`, TypePortrait},
		{"empty body", ``, TypePortrait},
		{"portrait", `{"type":"portrait"}`, TypePortrait},
		{"space after colon", `{"type": "story"}`, TypePortrait},
		{"case sensitive", `{"type":"Story"}`, TypePortrait},
		{"not json", `"type":"story" anywhere`, TypeStory},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectType(tt.body); got != tt.want {
				t.Fatalf("DetectType(%q) = %q, want %q", tt.body, got, tt.want)
			}
		})
	}
}

func TestJoinLines(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"abc", "abc"},
		{"a\nb", "ab"},
		{"a\r\nb\r\n", "ab"},
		{"a\rb", "ab"},
		{"\n\n", ""},
		{"tab\tstays", "tab\tstays"},
	}
	for _, tt := range tests {
		if got := JoinLines(tt.in); got != tt.want {
			t.Errorf("JoinLines(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNewGenerationTask(t *testing.T) {
	task := NewGenerationTask("{\"type\":\n\"story\"}")
	if task.Type != TypeStory {
		t.Fatalf("Type = %q, want %q (newlines are stripped before matching)", task.Type, TypeStory)
	}
	if task.Body != `{"type":"story"}` {
		t.Fatalf("Body = %q", task.Body)
	}
	if _, err := uuid.Parse(task.TaskID); err != nil {
		t.Fatalf("TaskID %q is not a uuid: %v", task.TaskID, err)
	}
	if other := NewGenerationTask("{}"); other.TaskID == task.TaskID {
		t.Fatal("task ids should be unique per request")
	}
}
