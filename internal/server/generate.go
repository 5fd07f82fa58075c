package server

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/sokinpui/hackathon.go/internal/models"
	"github.com/sokinpui/hackathon.go/model"
)

const mockFailureBody = `{"text": "Server failed to return a fixed mock response."}`

func (s *HTTPServer) handleGenerate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeText(w, http.StatusMethodNotAllowed, "Method Not Allowed")
		return
	}

	body, err := s.generate(w, r)
	if err != nil {
		s.log.Errorf("ERROR in /generate mock handler: %v", err)
		writeJSON(w, http.StatusInternalServerError, mockFailureBody)
		return
	}
	writeJSON(w, http.StatusOK, body)
}

// generate reads the request, picks the generator and renders the JSON
// response body.
func (s *HTTPServer) generate(w http.ResponseWriter, r *http.Request) (string, error) {
	raw, err := s.readBody(w, r)
	if err != nil {
		return "", fmt.Errorf("failed to read request body: %w", err)
	}

	task := models.NewGenerationTask(string(raw))
	w.Header().Set("X-Request-ID", task.TaskID)
	entry := s.log.WithField("task_id", task.TaskID)
	entry.WithField("body_bytes", len(task.Body)).Debug("Line-joined request body")
	entry.Infof("MOCK /generate called for type: %s", task.Type)

	gen, err := s.registry.GetGenerator(task.Type)
	if err != nil {
		return "", err
	}
	text, err := gen.Generate(r.Context(), task)
	if err != nil {
		return "", fmt.Errorf("%w: task %s: %w", model.ErrGeneration, task.TaskID, err)
	}
	return jsonObject(gen.ResponseKey(), text), nil
}

// readBody reads the whole body. A positive maxBodyBytes caps it; the
// connection is then closed after the reply since the rest of the body is
// left unread.
func (s *HTTPServer) readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	if s.maxBodyBytes <= 0 {
		return io.ReadAll(r.Body)
	}
	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.maxBodyBytes))
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		w.Header().Set("Connection", "close")
	}
	return raw, err
}
