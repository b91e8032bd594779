package shaper

import (
	"log/slog"

	"github.com/gogpu/textdraw"
)

// slogger returns the shared textdraw logger.
func slogger() *slog.Logger { return textdraw.Logger() }
