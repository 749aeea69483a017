package config

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/cristianoliveira/alfred-hue/internal/colors"
)

// Validator validates and normalizes a configuration value.
// Returns the normalized value and an error if validation fails.
type Validator func(key, value, defaultValue string) (normalized string, err error)

var (
	validatorsMu sync.RWMutex
	validators   = make(map[string]Validator)
)

// RegisterValidator registers a validator for a configuration key.
// Panics if a validator is already registered for the key.
func RegisterValidator(key string, validator Validator) {
	validatorsMu.Lock()
	defer validatorsMu.Unlock()
	if _, exists := validators[key]; exists {
		panic(fmt.Sprintf("validator already registered for key: %s", key))
	}
	validators[key] = validator
}

func getValidator(key string) Validator {
	validatorsMu.RLock()
	defer validatorsMu.RUnlock()
	return validators[key]
}

// fallback warns about an invalid value and returns the default.
func fallback(key, value, expected, defaultValue string) (string, error) {
	colors.Warning(fmt.Sprintf("invalid %s value '%s': %s; using default: %s", key, value, expected, defaultValue))
	return defaultValue, nil
}

// PositiveIntValidator accepts integers greater than zero.
func PositiveIntValidator() Validator {
	return func(key, value, defaultValue string) (string, error) {
		if value == "" {
			return defaultValue, nil
		}
		if n, err := strconv.Atoi(value); err != nil || n <= 0 {
			return fallback(key, value, "must be a positive integer", defaultValue)
		}
		return value, nil
	}
}

// EnumValidator accepts one of the allowed values, case-insensitively.
func EnumValidator(allowed map[string]bool) Validator {
	return func(key, value, defaultValue string) (string, error) {
		if value == "" {
			return defaultValue, nil
		}
		lower := strings.ToLower(value)
		if !allowed[lower] {
			return fallback(key, value, "must be one of: "+allowedValues(allowed), defaultValue)
		}
		return lower, nil
	}
}

// BoolValidator normalizes 1/yes/on and 0/no/off to "true"/"false".
func BoolValidator() Validator {
	return func(key, value, defaultValue string) (string, error) {
		if value == "" {
			return defaultValue, nil
		}
		normalized := normalizeBool(value)
		if normalized != "true" && normalized != "false" {
			return fallback(key, value, "must be one of: 1, true, yes, on, 0, false, no, off", defaultValue)
		}
		return normalized, nil
	}
}

// DurationValidator accepts Go-style durations (e.g. 500ms, 3s).
// When allowEmpty is true, empty values are preserved.
func DurationValidator(allowEmpty bool) Validator {
	return func(key, value, defaultValue string) (string, error) {
		if value == "" {
			if allowEmpty {
				return value, nil
			}
			return defaultValue, nil
		}
		d, err := time.ParseDuration(value)
		if err != nil || d < 0 {
			return fallback(key, value, "must be a Go-style duration (e.g. 500ms, 3s)", defaultValue)
		}
		return d.String(), nil
	}
}

// initValidators registers all configuration validators.
func initValidators() {
	RegisterValidator("bridge_timeout", DurationValidator(false))
	RegisterValidator("output_format", EnumValidator(map[string]bool{"json": true, "xml": true, "text": true}))

	boolValidator := BoolValidator()
	RegisterValidator("debug", boolValidator)
	RegisterValidator("logging_enabled", boolValidator)

	RegisterValidator("logging_level", EnumValidator(map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}))
	RegisterValidator("logging_max_files", PositiveIntValidator())
}

// normalizeBool converts various boolean representations to "true"/"false".
// Unknown values are returned as-is.
func normalizeBool(val string) string {
	switch strings.ToLower(val) {
	case "1", "true", "yes", "on":
		return "true"
	case "0", "false", "no", "off":
		return "false"
	default:
		return val
	}
}

func allowedValues(allowed map[string]bool) string {
	values := make([]string, 0, len(allowed))
	for k := range allowed {
		values = append(values, k)
	}
	sort.Strings(values)
	return strings.Join(values, ", ")
}
