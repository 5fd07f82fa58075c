package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/sokinpui/hackathon.go/internal/config"
	"github.com/sokinpui/hackathon.go/internal/logging"
	"github.com/sokinpui/hackathon.go/internal/server"
	"github.com/sokinpui/hackathon.go/model"
)

func main() {
	configFile := flag.String("config", "", "Path to an optional YAML config file")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	log := logging.GetLogger()

	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	level := logging.ParseLevel(cfg.LogLevel)
	if *debug {
		level = logrus.DebugLevel
	}
	log = logging.InitLogger(level)

	registry, err := model.New()
	if err != nil {
		log.Fatalf("Failed to initialize generator registry: %v", err)
	}
	log.Debugf("Registered generators: %v", registry.ListTypes())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.New(cfg, registry).Run(ctx); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
