package main

import (
	"os"
	"path/filepath"
	"strings"

	"rigforge/internal/game"
)

func main() {
	// Change working directory to executable location for deployed builds.
	// Skip this for "go run" which puts the binary in a temp directory.
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		if !strings.Contains(execDir, "go-build") {
			os.Chdir(execDir)
		}
	}

	projectPath := ""
	if len(os.Args) > 1 {
		projectPath = os.Args[1]
	}

	g := game.New()
	g.Run(projectPath)
}
