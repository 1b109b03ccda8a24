package app

import (
	"fmt"
	"log/slog"
)

// Version, Commit and BuildTime are set via ldflags:
//
//	go build -ldflags "-X github.com/heartmarshall/plantcare-backend/internal/app.Version=1.0.0" ./cmd/server
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion is the version string reported by /health.
func BuildVersion() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildTime)
}

// buildAttrs groups the build metadata for the startup log line.
func buildAttrs() slog.Attr {
	return slog.Group("build",
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("time", BuildTime),
	)
}
