package server

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/sokinpui/hackathon.go/internal/config"
	"github.com/sokinpui/hackathon.go/internal/logging"
	"github.com/sokinpui/hackathon.go/model"
)

type HTTPServer struct {
	registry     *model.Registry
	indexFile    string
	maxBodyBytes int64
	log          *logrus.Logger
}

func NewHTTPServer(registry *model.Registry, cfg *config.Settings) *HTTPServer {
	return &HTTPServer{
		registry:     registry,
		indexFile:    cfg.IndexFile,
		maxBodyBytes: cfg.MaxBodyBytes,
		log:          logging.GetLogger(),
	}
}

// RegisterRoutes installs the routing table. Paths outside it get the mux's
// default 404.
func (s *HTTPServer) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/{$}", s.handleIndex)
	mux.HandleFunc("/generate", s.handleGenerate)
	mux.HandleFunc("/generate/", s.handleGenerate)
}

// Handler returns the routing table wrapped in request logging.
func (s *HTTPServer) Handler() http.Handler {
	mux := http.NewServeMux()
	s.RegisterRoutes(mux)
	return s.logRequests(mux)
}
