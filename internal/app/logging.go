package app

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
)

// NewLogger builds a text logger at the named level and tags every record
// with a fresh run id.
func NewLogger(w io.Writer, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})
	return slog.New(handler).With("run", uuid.NewString()), nil
}
