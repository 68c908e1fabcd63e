package logx

import (
	"os"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// Level define los niveles de log soportados
type Level int8

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// Fields son campos estructurados adjuntos a una entrada de log
type Fields map[string]any

var logger atomic.Pointer[zerolog.Logger]

func init() {
	zerolog.TimeFieldFormat = time.RFC3339
	l := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "2006-01-02 15:04:05"}).
		Level(zerolog.InfoLevel).
		With().Timestamp().Logger()
	logger.Store(&l)
}

// SetLevel ajusta el nivel global de logging
func SetLevel(level Level) {
	var zl zerolog.Level
	switch level {
	case LevelDebug:
		zl = zerolog.DebugLevel
	case LevelWarn:
		zl = zerolog.WarnLevel
	case LevelError:
		zl = zerolog.ErrorLevel
	default:
		zl = zerolog.InfoLevel
	}
	l := logger.Load().Level(zl)
	logger.Store(&l)
}

// SetOutput reemplaza el logger subyacente (útil en tests)
func SetOutput(l zerolog.Logger) {
	logger.Store(&l)
}

func Debug(msg string)                  { logger.Load().Debug().Msg(msg) }
func Debugf(format string, args ...any) { logger.Load().Debug().Msgf(format, args...) }
func Info(msg string)                   { logger.Load().Info().Msg(msg) }
func Infof(format string, args ...any)  { logger.Load().Info().Msgf(format, args...) }
func Warn(msg string)                   { logger.Load().Warn().Msg(msg) }
func Warnf(format string, args ...any)  { logger.Load().Warn().Msgf(format, args...) }
func Error(msg string)                  { logger.Load().Error().Msg(msg) }
func Errorf(format string, args ...any) { logger.Load().Error().Msgf(format, args...) }
func Fatalf(format string, args ...any) { logger.Load().Fatal().Msgf(format, args...) }

// Entry permite encadenar campos estructurados antes de emitir
type Entry struct {
	fields Fields
}

// WithFields crea una entrada con campos estructurados
func WithFields(fields Fields) *Entry {
	return &Entry{fields: fields}
}

func (e *Entry) event(ev *zerolog.Event) *zerolog.Event {
	for k, v := range e.fields {
		ev = ev.Interface(k, v)
	}
	return ev
}

func (e *Entry) Debugf(format string, args ...any) {
	e.event(logger.Load().Debug()).Msgf(format, args...)
}

func (e *Entry) Infof(format string, args ...any) {
	e.event(logger.Load().Info()).Msgf(format, args...)
}

func (e *Entry) Warnf(format string, args ...any) {
	e.event(logger.Load().Warn()).Msgf(format, args...)
}

func (e *Entry) Errorf(format string, args ...any) {
	e.event(logger.Load().Error()).Msgf(format, args...)
}
