// cmd/server/main.go
package main

import (
	"log"
	"os"

	"github.com/sozercan/textlens/internal/analyzer"
	"github.com/sozercan/textlens/internal/config"
	"github.com/sozercan/textlens/internal/logging"
	"github.com/sozercan/textlens/internal/providers"
	"github.com/sozercan/textlens/internal/server"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logging.Init(cfg.Logging, os.Stderr)

	provider, err := providers.New(cfg)
	if err != nil {
		log.Fatalf("failed to create analysis provider: %v", err)
	}

	analyzer := analyzer.New(provider, cfg.Analysis.MaxChars)

	srv := server.New(*cfg, analyzer)
	if err := srv.Run(); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
