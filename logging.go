package gallery

import (
	"strings"

	"github.com/akeil/gallery/internal/logging"
)

// SetLogLevel sets the level for diagnostic messages by name
// ("debug", "info", "warning", "error").
// Any other name turns logging off.
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
