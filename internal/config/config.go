// Package config holds the user-facing options and their validation.
package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fchimpan/snowflake-bounce/internal/bounce"
)

const (
	MinFPS = 1
	MaxFPS = 120
)

// Environment variables consulted when the matching flag is not set.
const (
	EnvFPS     = "SNOWFLAKE_FPS"
	EnvColor   = "SNOWFLAKE_COLOR"
	EnvSize    = "SNOWFLAKE_SIZE"
	EnvRainbow = "SNOWFLAKE_RAINBOW"
	EnvLogFile = "SNOWFLAKE_LOG"
)

type Options struct {
	FPS     int
	Color   string
	Size    string
	Seed    uint64
	Rainbow bool
	HUD     bool
	LogFile string
}

func Default() Options {
	return Options{
		FPS:   20,
		Color: bounce.White.String(),
		Size:  bounce.Small.String(),
	}
}

// LookupFunc matches os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// ApplyEnv fills options from the environment. Flags named in explicit keep
// their value.
func (o *Options) ApplyEnv(lookup LookupFunc, explicit func(flag string) bool) error {
	if lookup == nil {
		return nil
	}
	if explicit == nil {
		explicit = func(string) bool { return false }
	}
	get := func(flag, key string) (string, bool) {
		if explicit(flag) {
			return "", false
		}
		v, ok := lookup(key)
		if !ok || strings.TrimSpace(v) == "" {
			return "", false
		}
		return strings.TrimSpace(v), true
	}

	if v, ok := get("fps", EnvFPS); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvFPS, v, err)
		}
		o.FPS = n
	}
	if v, ok := get("color", EnvColor); ok {
		o.Color = v
	}
	if v, ok := get("size", EnvSize); ok {
		o.Size = v
	}
	if v, ok := get("rainbow", EnvRainbow); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvRainbow, v, err)
		}
		o.Rainbow = b
	}
	if v, ok := get("log-file", EnvLogFile); ok {
		o.LogFile = v
	}
	return nil
}

func (o Options) Validate() error {
	if o.FPS < MinFPS || o.FPS > MaxFPS {
		return fmt.Errorf("--fps must be between %d and %d", MinFPS, MaxFPS)
	}
	if _, err := bounce.ParseColor(o.Color); err != nil {
		return fmt.Errorf("--color: %w", err)
	}
	if _, err := bounce.ParseSize(o.Size); err != nil {
		return fmt.Errorf("--size: %w", err)
	}
	return nil
}

// Engine converts validated options into engine options.
func (o Options) Engine() (bounce.Options, error) {
	if err := o.Validate(); err != nil {
		return bounce.Options{}, err
	}
	color, _ := bounce.ParseColor(o.Color)
	size, _ := bounce.ParseSize(o.Size)
	return bounce.Options{
		Color:         color,
		Size:          size,
		Seed:          o.Seed,
		ColorOnBounce: o.Rainbow,
	}, nil
}
