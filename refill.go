package refill

import (
	"strings"

	"github.com/punchcraft/refill/internal/logging"
)

// SetLogLevel sets the threshold for log messages from this library.
// Accepts one of "debug", "info", "warning" or "error";
// any other value disables logging.
func SetLogLevel(level string) {
	var lvl logging.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = logging.LevelDebug
	case "info":
		lvl = logging.LevelInfo
	case "warning":
		lvl = logging.LevelWarning
	case "error":
		lvl = logging.LevelError
	default:
		lvl = logging.LevelNone
	}
	logging.SetLevel(lvl)
}
