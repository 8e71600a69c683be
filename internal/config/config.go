// Package config provides YAML-based configuration loading for the 2048
// client and server.
package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// ErrInvalid is wrapped by Validate for out-of-range values.
var ErrInvalid = errors.New("config: invalid value")

// Config contains all settings of the t2048 binary.
type Config struct {
	Storage StorageConfig `yaml:"storage"`
	Display DisplayConfig `yaml:"display"`
	Server  ServerConfig  `yaml:"server"`
	Log     LogConfig     `yaml:"log"`
}

// StorageConfig locates the score and save database.
type StorageConfig struct {
	Path string `yaml:"path" validate:"required"` // ~ is expanded to the home directory
}

// DisplayConfig controls the frame rate and tile animations.
type DisplayConfig struct {
	TickRate   int `yaml:"tick_rate" validate:"min=1,max=240"` // Simulation ticks per second
	SlideTicks int `yaml:"slide_ticks" validate:"min=0"`       // 0 disables the slide animation
	PopTicks   int `yaml:"pop_ticks" validate:"min=0"`         // 0 disables the pop animation
}

// ServerConfig contains the SSH server settings.
type ServerConfig struct {
	Address     string `yaml:"address"`
	HostKeyPath string `yaml:"host_key_path"`
	IdleMinutes int    `yaml:"idle_minutes" validate:"min=0"` // 0 disables the idle timeout
}

// IdleTimeout returns the idle timeout as a duration.
func (s ServerConfig) IdleTimeout() time.Duration {
	return time.Duration(s.IdleMinutes) * time.Minute
}

// LogConfig controls logging.
type LogConfig struct {
	Level string `yaml:"level" validate:"oneof=debug info warn error"`
	File  string `yaml:"file"` // Empty means stderr for serve, discard for play
}

var validate = newValidator()

// newValidator reports fields by their YAML names.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks that the configuration can be used.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	var details strings.Builder
	for _, fe := range errs {
		if details.Len() > 0 {
			details.WriteString("; ")
		}
		field := strings.TrimPrefix(fe.Namespace(), "Config.")
		switch fe.Tag() {
		case "required":
			fmt.Fprintf(&details, "%s is required", field)
		case "oneof":
			fmt.Fprintf(&details, "%s %q must be one of [%s]", field, fe.Value(), fe.Param())
		case "min":
			fmt.Fprintf(&details, "%s must be at least %s", field, fe.Param())
		case "max":
			fmt.Fprintf(&details, "%s must be at most %s", field, fe.Param())
		default:
			fmt.Fprintf(&details, "%s failed %s validation", field, fe.Tag())
		}
	}
	return fmt.Errorf("%w: %s", ErrInvalid, details.String())
}
