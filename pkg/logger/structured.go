package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

var zlog zerolog.Logger

// InitStructured initializes the structured zerolog logger
func InitStructured(env string) {
	var w io.Writer

	if env == "development" || env == "dev" || env == "local" {
		// Pretty console output for development
		w = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	} else {
		// JSON output for production (machine-readable)
		w = os.Stdout
	}

	zlog = zerolog.New(w).With().
		Timestamp().
		Str("service", "dayletter-backend").
		Logger()

	zerolog.TimeFieldFormat = time.RFC3339
}

// GetLogger returns the global zerolog logger
func GetLogger() *zerolog.Logger {
	return &zlog
}

// WithRequestID returns a logger with request_id field
func WithRequestID(requestID string) zerolog.Logger {
	return zlog.With().Str("request_id", requestID).Logger()
}

// WithUserIdx returns a logger with user_idx field
func WithUserIdx(userIdx int) zerolog.Logger {
	return zlog.With().Int("user_idx", userIdx).Logger()
}

// Info logs a printf-style info message (bootstrap convenience)
func Info(format string, args ...interface{}) {
	zlog.Info().Msgf(format, args...)
}

// Error logs a printf-style error message
func Error(format string, args ...interface{}) {
	zlog.Error().Msgf(format, args...)
}
