package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/tatianab/castle-adventure/internal/config"
	"github.com/tatianab/castle-adventure/internal/engine"
	"github.com/tatianab/castle-adventure/internal/logger"
	"github.com/tatianab/castle-adventure/internal/narration"
	"github.com/tatianab/castle-adventure/internal/world"
)

const maxTurns = 50

// walkthrough wins the built-in castle.
var walkthrough = []string{
	"look",
	"go north",
	"go east",
	"take candlestick",
	"look",
	"go west",
	"go west",
	"use candlestick",
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	slogger, closer, err := logger.Setup(cfg)
	if err != nil {
		log.Fatalf("Failed to open log: %v", err)
	}
	defer closer.Close()

	w, err := world.Load(cfg.WorldFile)
	if err != nil {
		log.Fatalf("Failed to load world: %v", err)
	}

	script := walkthrough
	if len(os.Args) > 1 {
		script, err = readScript(os.Args[1])
		if err != nil {
			log.Fatalf("Failed to read script: %v", err)
		}
	}

	session := engine.NewEngine(w, slogger).NewSession()

	fmt.Printf("--- %s ---\n", w.Title())
	fmt.Println(narration.Strip(session.Start()))
	fmt.Println()

	for turn, action := range script {
		if turn >= maxTurns {
			fmt.Printf("Stopped after %d turns.\n", maxTurns)
			break
		}

		fmt.Printf("--- Turn %d ---\n", turn+1)
		fmt.Printf("Player Action: %s\n", action)
		fmt.Println(narration.Strip(session.Input(action)))
		fmt.Printf("Location=%s, Inventory=%v\n\n", session.Location(), session.Inventory())

		if session.Won() {
			fmt.Println("Game Ended: Player Won!")
			return
		}
	}

	fmt.Println("Game Ended: script finished without a win.")
	os.Exit(1)
}

// readScript reads one command per line. Blank lines and lines starting with
// '#' are skipped.
func readScript(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var script []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		script = append(script, line)
	}
	return script, scanner.Err()
}
