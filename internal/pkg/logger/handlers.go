// internal/pkg/logger/handlers.go
package logger

import (
	"context"
	"log/slog"
	"regexp"
	"strings"
)

// ContextHandler adds session and operation values from the context to
// each record.
type ContextHandler struct {
	handler slog.Handler
}

// NewContextHandler creates a handler that enriches logs with context values
func NewContextHandler(handler slog.Handler) *ContextHandler {
	return &ContextHandler{handler: handler}
}

func (h *ContextHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

func (h *ContextHandler) Handle(ctx context.Context, record slog.Record) error {
	if attrs := extractContextAttrs(ctx); len(attrs) > 0 {
		record = record.Clone()
		record.AddAttrs(attrs...)
	}
	return h.handler.Handle(ctx, record)
}

func (h *ContextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ContextHandler{handler: h.handler.WithAttrs(attrs)}
}

func (h *ContextHandler) WithGroup(name string) slog.Handler {
	return &ContextHandler{handler: h.handler.WithGroup(name)}
}

const redacted = "***REDACTED***"

// SanitizationHandler masks secrets, email addresses and phone numbers.
// Supplier phones are personal data and never reach the log in clear.
type SanitizationHandler struct {
	handler   slog.Handler
	secrets   *regexp.Regexp
	patterns  []*regexp.Regexp
	blacklist []string
}

// NewSanitizationHandler creates a handler that sanitizes sensitive data
func NewSanitizationHandler(handler slog.Handler) *SanitizationHandler {
	return &SanitizationHandler{
		handler: handler,
		secrets: regexp.MustCompile(`(?i)(password|pwd|secret|token|api[-_]?key)\s*[:=]\s*["']?([^"'\s]+)`),
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`), // Email
			regexp.MustCompile(`\+?\d[\d\s().-]{6,}\d`),                              // Phone
		},
		blacklist: []string{
			"password", "secret", "token", "api_key", "phone",
		},
	}
}

func (h *SanitizationHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

func (h *SanitizationHandler) Handle(ctx context.Context, record slog.Record) error {
	newRecord := slog.NewRecord(record.Time, record.Level, h.sanitizeString(record.Message), record.PC)

	record.Attrs(func(a slog.Attr) bool {
		newRecord.AddAttrs(h.sanitizeAttr(a))
		return true
	})

	return h.handler.Handle(ctx, newRecord)
}

func (h *SanitizationHandler) sanitizeAttr(attr slog.Attr) slog.Attr {
	lowerKey := strings.ToLower(attr.Key)
	for _, blacklisted := range h.blacklist {
		if strings.Contains(lowerKey, blacklisted) {
			attr.Value = slog.StringValue(redacted)
			return attr
		}
	}

	switch attr.Value.Kind() {
	case slog.KindString:
		attr.Value = slog.StringValue(h.sanitizeString(attr.Value.String()))
	case slog.KindGroup:
		group := attr.Value.Group()
		clean := make([]slog.Attr, len(group))
		for i, a := range group {
			clean[i] = h.sanitizeAttr(a)
		}
		attr.Value = slog.GroupValue(clean...)
	}

	return attr
}

func (h *SanitizationHandler) sanitizeString(s string) string {
	s = h.secrets.ReplaceAllString(s, "$1="+redacted)
	for _, pattern := range h.patterns {
		s = pattern.ReplaceAllString(s, redacted)
	}
	return s
}

func (h *SanitizationHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clean := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		clean[i] = h.sanitizeAttr(a)
	}
	return &SanitizationHandler{
		handler:   h.handler.WithAttrs(clean),
		secrets:   h.secrets,
		patterns:  h.patterns,
		blacklist: h.blacklist,
	}
}

func (h *SanitizationHandler) WithGroup(name string) slog.Handler {
	return &SanitizationHandler{
		handler:   h.handler.WithGroup(name),
		secrets:   h.secrets,
		patterns:  h.patterns,
		blacklist: h.blacklist,
	}
}
