// internal/pkg/logger/logger.go
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

// ContextKey represents keys for context values
type ContextKey string

const (
	ContextKeySessionID ContextKey = "session_id"
	ContextKeyOperation ContextKey = "operation"
	ContextKeyJobID     ContextKey = "job_id"
)

// LogConfig holds logger configuration
type LogConfig struct {
	Level          string `json:"level"`
	Format         string `json:"format"`
	AddSource      bool   `json:"add_source"`
	Environment    string `json:"environment"`
	ServiceName    string `json:"service_name"`
	ServiceVersion string `json:"service_version"`

	// Output defaults to stderr.
	Output io.Writer `json:"-"`
}

// Logger wraps slog.Logger
type Logger struct {
	*slog.Logger
	config *LogConfig
}

var defaultLogger *Logger

// SetupLogger builds a logger and installs it as the slog default.
func SetupLogger(level string, format string) *slog.Logger {
	logger := NewLogger(&LogConfig{
		Level:          level,
		Format:         format,
		AddSource:      level == "debug",
		ServiceName:    os.Getenv("SERVICE_NAME"),
		ServiceVersion: os.Getenv("SERVICE_VERSION"),
		Environment:    os.Getenv("APP_ENV"),
	})

	defaultLogger = logger
	slog.SetDefault(logger.Logger)

	return logger.Logger
}

// NewLogger creates a logger with context enrichment and redaction.
func NewLogger(config *LogConfig) *Logger {
	if config == nil {
		config = &LogConfig{Level: "info", Format: "text"}
	}

	w := config.Output
	if w == nil {
		w = os.Stderr
	}

	var handler slog.Handler
	switch strings.ToLower(config.Format) {
	case "json":
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level:       ParseLevel(config.Level),
			AddSource:   config.AddSource,
			ReplaceAttr: replaceAttr,
		})
	default:
		handler = tint.NewHandler(consoleWriter(w), &tint.Options{
			Level:      ParseLevel(config.Level),
			AddSource:  config.AddSource,
			TimeFormat: "15:04:05.000",
			NoColor:    !isTerminal(w),
		})
	}

	handler = NewContextHandler(handler)
	handler = NewSanitizationHandler(handler)

	var attrs []slog.Attr
	if config.ServiceName != "" {
		attrs = append(attrs, slog.String("service", config.ServiceName))
	}
	if config.ServiceVersion != "" {
		attrs = append(attrs, slog.String("version", config.ServiceVersion))
	}
	if config.Environment != "" {
		attrs = append(attrs, slog.String("env", config.Environment))
	}
	if len(attrs) > 0 {
		handler = handler.WithAttrs(attrs)
	}

	return &Logger{
		Logger: slog.New(handler),
		config: config,
	}
}

// GetDefault returns the default logger instance
func GetDefault() *Logger {
	if defaultLogger == nil {
		defaultLogger = NewLogger(nil)
	}
	return defaultLogger
}

// ParseLevel maps a level name to a slog level. Unknown names mean info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// WithSessionID tags ctx so log records carry the session id.
func WithSessionID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ContextKeySessionID, id)
}

// NewSession tags ctx with a fresh random session id.
func NewSession(ctx context.Context) (context.Context, string) {
	id := uuid.NewString()
	return WithSessionID(ctx, id), id
}

// WithOperation tags ctx with the name of the running operation.
func WithOperation(ctx context.Context, op string) context.Context {
	return context.WithValue(ctx, ContextKeyOperation, op)
}

// WithJobID tags ctx with a background job id.
func WithJobID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ContextKeyJobID, id)
}

func contextKeys() []ContextKey {
	return []ContextKey{
		ContextKeySessionID,
		ContextKeyOperation,
		ContextKeyJobID,
	}
}

func extractContextAttrs(ctx context.Context) []slog.Attr {
	if ctx == nil {
		return nil
	}

	var attrs []slog.Attr
	for _, key := range contextKeys() {
		switch v := ctx.Value(key).(type) {
		case nil:
		case string:
			if v != "" {
				attrs = append(attrs, slog.String(string(key), v))
			}
		case uuid.UUID:
			attrs = append(attrs, slog.String(string(key), v.String()))
		default:
			attrs = append(attrs, slog.Any(string(key), v))
		}
	}
	return attrs
}

func replaceAttr(_ []string, a slog.Attr) slog.Attr {
	if a.Key == slog.TimeKey {
		if t, ok := a.Value.Any().(time.Time); ok {
			a.Value = slog.StringValue(t.Format(time.RFC3339Nano))
		}
	}
	if a.Key == slog.LevelKey {
		a.Key = "severity"
	}
	return a
}

func consoleWriter(w io.Writer) io.Writer {
	if f, ok := w.(*os.File); ok {
		return colorable.NewColorable(f)
	}
	return w
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}
