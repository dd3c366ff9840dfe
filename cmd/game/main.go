package main

import (
	"fmt"
	"os"

	"github.com/tatianab/castle-adventure/internal/config"
	"github.com/tatianab/castle-adventure/internal/engine"
	"github.com/tatianab/castle-adventure/internal/logger"
	"github.com/tatianab/castle-adventure/internal/tui"
	"github.com/tatianab/castle-adventure/internal/world"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	log, closer, err := logger.Setup(cfg)
	if err != nil {
		fmt.Printf("Error opening log: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	w, err := world.Load(cfg.WorldFile)
	if err != nil {
		logger.WithError(log, err).Error("failed to load world", "file", cfg.WorldFile)
		fmt.Printf("Error loading world: %v\n", err)
		closer.Close()
		os.Exit(1)
	}
	log.Info("world loaded", "title", w.Title(), "rooms", len(w.RoomIDs()))

	if err := tui.Run(engine.NewEngine(w, log)); err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
		closer.Close()
		os.Exit(1)
	}
}
