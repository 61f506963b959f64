package logging

import (
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarning
	LevelError
	LevelNone
)

var (
	mx     sync.RWMutex
	out    io.Writer = os.Stderr
	level            = LevelWarning
	logger zerolog.Logger
)

func init() {
	configure()
}

// SetLevel sets the minimum level for messages to be written.
func SetLevel(l Level) {
	mx.Lock()
	defer mx.Unlock()
	level = l
	configure()
}

// configure rebuilds the logger, mx must be held.
func configure() {
	w := zerolog.ConsoleWriter{
		Out:        out,
		NoColor:    true,
		TimeFormat: "2006/01/02 15:04:05",
	}
	logger = zerolog.New(w).Level(zerologLevel(level)).With().Timestamp().Logger()
}

func zerologLevel(l Level) zerolog.Level {
	switch l {
	case LevelDebug:
		return zerolog.DebugLevel
	case LevelInfo:
		return zerolog.InfoLevel
	case LevelWarning:
		return zerolog.WarnLevel
	case LevelError:
		return zerolog.ErrorLevel
	default:
		return zerolog.Disabled
	}
}

func current() *zerolog.Logger {
	mx.RLock()
	defer mx.RUnlock()
	l := logger
	return &l
}

func Debug(msg string, v ...interface{}) {
	current().Debug().Msgf(msg, v...)
}

func Info(msg string, v ...interface{}) {
	current().Info().Msgf(msg, v...)
}

func Warning(msg string, v ...interface{}) {
	current().Warn().Msgf(msg, v...)
}

func Error(msg string, v ...interface{}) {
	current().Error().Msgf(msg, v...)
}
