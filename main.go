package main

import (
	"github.com/bookcase-app/bookcase/internal/config"
	"github.com/bookcase-app/bookcase/internal/entrypoint"
)

// Version information - set at build time via ldflags
var (
	Version = "dev"
	Commit  = "unknown"
)

func main() {
	cfg := config.NewConfig()
	entrypoint.Run(cfg, Version)
}
