// Package logger builds zerolog loggers with the project defaults and
// carries request-scoped loggers through a context.
package logger

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Logger is the project-wide logging type.
type Logger = zerolog.Logger

// Options configures a logger.
type Options struct {
	Level     string // trace|debug|info|warn|error; unknown -> debug
	Format    string // console|json
	Service   string
	Component string
	Writer    io.Writer // default os.Stderr
	NoColor   bool
	Timestamp bool
}

// New builds a logger from opt.
func New(opt Options) Logger {
	var w io.Writer = os.Stderr
	if opt.Writer != nil {
		w = opt.Writer
	}
	if strings.ToLower(opt.Format) != "json" {
		cw := zerolog.ConsoleWriter{Out: w, NoColor: opt.NoColor, TimeFormat: time.RFC3339}
		if !opt.Timestamp {
			cw.PartsExclude = []string{zerolog.TimestampFieldName}
		}
		w = cw
	}

	ctx := zerolog.New(w).Level(ParseLevel(opt.Level)).With()
	if opt.Timestamp {
		ctx = ctx.Timestamp()
	}
	if opt.Service != "" {
		ctx = ctx.Str("service", opt.Service)
	}
	if opt.Component != "" {
		ctx = ctx.Str("component", opt.Component)
	}
	return ctx.Logger()
}

// Nop returns a disabled logger.
func Nop() Logger { return zerolog.Nop() }

// ParseLevel maps a level name onto zerolog; unknown names map to debug.
func ParseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "off", "disabled":
		return zerolog.Disabled
	default:
		return zerolog.DebugLevel
	}
}

// Into stores l in ctx.
func Into(ctx context.Context, l Logger) context.Context { return l.WithContext(ctx) }

// C returns the logger stored in ctx, or a disabled logger.
func C(ctx context.Context) *Logger { return zerolog.Ctx(ctx) }

// WithRequest returns ctx carrying a child logger tagged with request_id.
func WithRequest(ctx context.Context, reqID string) context.Context {
	if reqID == "" {
		return ctx
	}
	l := C(ctx).With().Str("request_id", reqID).Logger()
	return Into(ctx, l)
}
