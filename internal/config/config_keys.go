// config_keys.go provides key-value access to configuration settings.
//
// Separated from config.go to isolate the key enumeration and string-based
// get/set logic. This separation allows config.go to focus on YAML structure
// and loading, while this file handles the CLI interface where config is
// accessed by string keys (e.g., "display.precision").
//
// Design: Pointers are used for optional fields so we can distinguish between
// "not set" (nil) and "explicitly set to zero/false". This enables proper
// defaulting - we only apply defaults when the user hasn't set a value.

package config

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/jpl-au/tempo/internal/durparse"
)

// ValidKeys returns all valid configuration keys.
func ValidKeys() []string {
	return []string{
		"display.precision", "display.color",
		"stopwatch.name",
		"log.enabled",
	}
}

// IsValidKey returns true if the key is a valid configuration key.
func IsValidKey(key string) bool {
	return slices.Contains(ValidKeys(), key)
}

// Get returns the value of a configuration key as a string.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "display.precision":
		return strconv.Itoa(c.Precision()), nil
	case "display.color":
		return c.Color(), nil
	case "stopwatch.name":
		return c.Name(), nil
	case "log.enabled":
		return strconv.FormatBool(c.LogEnabled()), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
}

// Set sets the value of a configuration key.
func (c *Config) Set(key, value string) error {
	switch key {
	case "display.precision":
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 || n > durparse.MaxPrecision {
			return fmt.Errorf("%w: display.precision must be an integer between 0 and %d", ErrInvalidValue, durparse.MaxPrecision)
		}
		c.Display.Precision = &n
	case "display.color":
		v := strings.ToLower(value)
		if v != ColorAuto && v != ColorAlways && v != ColorNever {
			return fmt.Errorf("%w: display.color must be auto, always, or never", ErrInvalidValue)
		}
		c.Display.Color = v
	case "stopwatch.name":
		c.Stopwatch.Name = value
	case "log.enabled":
		v := strings.ToLower(value)
		if v != "true" && v != "false" {
			return fmt.Errorf("%w: log.enabled must be true or false", ErrInvalidValue)
		}
		b := v == "true"
		c.Log.Enabled = &b
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return nil
}

// All returns all configuration values as a map.
func (c *Config) All() map[string]string {
	return map[string]string{
		"display.precision": strconv.Itoa(c.Precision()),
		"display.color":     c.Color(),
		"stopwatch.name":    c.Name(),
		"log.enabled":       strconv.FormatBool(c.LogEnabled()),
	}
}

// IsSet returns true if the key has an explicit value (not just defaults).
func (c *Config) IsSet(key string) bool {
	switch key {
	case "display.precision":
		return c.Display.Precision != nil
	case "display.color":
		return c.Display.Color != ""
	case "stopwatch.name":
		return c.Stopwatch.Name != ""
	case "log.enabled":
		return c.Log.Enabled != nil
	default:
		return false
	}
}
