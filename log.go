package gui

import (
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
)

// guiLogLevel controls the log level for GUI debug logging.
// Default is LevelInfo, which suppresses Debug messages.
// SetVerbose(true) sets it to LevelDebug.
var guiLogLevel = new(slog.LevelVar)

// guiLogger is shared by every part of the package.
var guiLogger = newLogger(os.Stderr)

// SetVerbose enables or disables verbose/debug logging for GUI components.
// Call this from main() after parsing flags.
func SetVerbose(v bool) {
	if v {
		guiLogLevel.Set(slog.LevelDebug)
	} else {
		guiLogLevel.Set(slog.LevelInfo)
	}
}

// SetLogOutput redirects GUI logging. Terminals get human-readable text,
// anything else gets JSON lines.
func SetLogOutput(w io.Writer) {
	guiLogger = newLogger(w)
}

// guiVerbose returns true if GUI debug logging is enabled.
func guiVerbose() bool {
	return guiLogLevel.Level() <= slog.LevelDebug
}

func newLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: guiLogLevel}
	if f, ok := w.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}
