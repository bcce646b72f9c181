// Command divetrace analyzes recorded dive logs with the Bühlmann
// ZH-L16B-GF decompression model.
package main

import (
	"log/slog"
	"os"

	"github.com/reefscope/divetrace/internal/cli"
)

func main() {
	level := slog.LevelInfo
	if os.Getenv("DIVETRACE_DEBUG") != "" {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	if err := cli.Execute(); err != nil {
		slog.Error("divetrace failed", "error", err)
		os.Exit(1)
	}
}
