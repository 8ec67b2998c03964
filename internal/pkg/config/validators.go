// internal/pkg/config/validators.go
package config

import (
	"fmt"
	"reflect"
	"strings"
)

var (
	validLogLevels  = []string{"debug", "info", "warn", "warning", "error"}
	validLogFormats = []string{"json", "text"}
)

// RangeValidator checks enumerations and numeric ranges.
type RangeValidator struct{}

// Validate performs range validation
func (v *RangeValidator) Validate(cfg *Config) error {
	if !contains(validLogLevels, strings.ToLower(cfg.App.LogLevel)) {
		return fmt.Errorf("%w: log level %q", ErrInvalidConfig, cfg.App.LogLevel)
	}
	if !contains(validLogFormats, strings.ToLower(cfg.App.LogFormat)) {
		return fmt.Errorf("%w: log format %q", ErrInvalidConfig, cfg.App.LogFormat)
	}

	if cfg.Database.MaxOpenConns < 1 {
		return fmt.Errorf("%w: db max_open_conns must be positive", ErrInvalidConfig)
	}
	if cfg.Database.BusyTimeout < 0 {
		return fmt.Errorf("%w: db busy_timeout must not be negative", ErrInvalidConfig)
	}

	if strings.ContainsAny(cfg.Content.Authority, "/?#@") {
		return fmt.Errorf("%w: content authority %q", ErrInvalidConfig, cfg.Content.Authority)
	}

	if cfg.Redis.Enabled {
		if cfg.Redis.Addr == "" {
			return fmt.Errorf("%w: redis addr", ErrMissingRequiredConfig)
		}
		if cfg.Redis.TTL <= 0 {
			return fmt.Errorf("%w: redis ttl must be positive", ErrInvalidConfig)
		}
	}

	if cfg.Worker.Concurrency < 1 {
		return fmt.Errorf("%w: worker concurrency must be positive", ErrInvalidConfig)
	}

	return nil
}

func contains(values []string, s string) bool {
	for _, v := range values {
		if v == s {
			return true
		}
	}
	return false
}

// validateRequiredFields uses reflection to check required struct tags
func validateRequiredFields(cfg interface{}) error {
	v := reflect.ValueOf(cfg)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}

	return validateStruct(v, "")
}

func validateStruct(v reflect.Value, prefix string) error {
	t := v.Type()

	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		fieldType := t.Field(i)
		fieldName := fieldType.Name

		if prefix != "" {
			fieldName = prefix + "." + fieldName
		}

		if required := fieldType.Tag.Get("required"); required == "true" {
			if isZeroValue(field) {
				return fmt.Errorf("%w: %s", ErrMissingRequiredConfig, fieldName)
			}
		}

		if field.Kind() == reflect.Struct {
			if err := validateStruct(field, fieldName); err != nil {
				return err
			}
		}
	}

	return nil
}

func isZeroValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.String:
		return strings.TrimSpace(v.String()) == ""
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Bool:
		return !v.Bool()
	default:
		return v.IsZero()
	}
}
