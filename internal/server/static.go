package server

import (
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
)

// handleIndex serves the index file from disk on every request.
func (s *HTTPServer) handleIndex(w http.ResponseWriter, r *http.Request) {
	data, err := os.ReadFile(s.indexFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			writeText(w, http.StatusNotFound, fmt.Sprintf("Error: %s not found.", filepath.Base(s.indexFile)))
			return
		}
		s.log.Errorf("Failed to read %s: %v", s.indexFile, err)
		writeText(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}

	writeBody(w, http.StatusOK, "text/html; charset=UTF-8", data)
}
