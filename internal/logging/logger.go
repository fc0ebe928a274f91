package logging

import (
	"log/slog"
	"os"
)

// Setup installs a JSON slog logger on stdout. It runs before the
// database is up; once it is, main swaps the default for a MultiHandler
// that also feeds the system_logs sink.
func Setup() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))
}
