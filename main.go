// Command castle-adventure plays the built-in castle world. See cmd/game for
// the configurable build.
package main

import (
	"fmt"
	"os"

	"github.com/tatianab/castle-adventure/internal/tui"
)

func main() {
	if err := tui.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
