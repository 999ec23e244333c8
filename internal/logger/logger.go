package logger

import (
	"io"
	"os"
	"time"

	"FutureYako/config"

	"github.com/rs/zerolog"
)

var log = zerolog.New(os.Stderr).With().Timestamp().Logger()

// Init configures the package logger from cfg. Logs always go to stderr so
// command output on stdout stays machine readable.
func Init(cfg *config.Config) {
	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil || cfg.Log.Level == "" {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	var out io.Writer = os.Stderr
	if cfg.Log.Pretty {
		out = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	}

	log = zerolog.New(out).With().
		Timestamp().
		Str("app", cfg.App.Name).
		Str("env", cfg.App.Environment).
		Logger()
}

// SetOutput redirects the logger, mainly for tests.
func SetOutput(w io.Writer) {
	log = log.Output(w)
}

func Get() *zerolog.Logger {
	return &log
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
