package logger

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/Rebecca-de-Winter/crowdfunding-back-end/config"
)

var log zerolog.Logger

// Init configures the process-wide logger. Development gets the human console
// writer; everything else logs JSON to stdout.
func Init(cfg *config.Config) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	level := zerolog.InfoLevel
	if strings.EqualFold(cfg.App.Environment, "development") {
		level = zerolog.DebugLevel
	}

	if strings.EqualFold(cfg.App.Environment, "development") {
		writer := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
		log = zerolog.New(writer).Level(level).With().Timestamp().Logger()
		return
	}

	log = zerolog.New(os.Stdout).Level(level).With().Timestamp().Str("app", cfg.App.Name).Logger()
}

func Debug() *zerolog.Event {
	return log.Debug()
}

func Info() *zerolog.Event {
	return log.Info()
}

func Warn() *zerolog.Event {
	return log.Warn()
}

func Error() *zerolog.Event {
	return log.Error()
}

func Fatal() *zerolog.Event {
	return log.Fatal()
}
