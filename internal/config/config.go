// Package config resolves the settings for a single invocation from the
// process environment and an optional dotenv file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

const (
	// EnvBearDances suppresses the bear warning when present in the
	// environment, whatever its value.
	EnvBearDances    = "A_WONDER_THE_BEAR_DANCES_AT_ALL"
	EnvFrames        = "DANCE_FRAMES"
	EnvFrameInterval = "DANCE_FRAME_INTERVAL"

	DefaultFrames        = 30
	DefaultFrameInterval = 200 * time.Millisecond
	DefaultEnvFile       = ".env"
)

// ErrInvalid is returned when a setting cannot be parsed or is out of range.
var ErrInvalid = errors.New("invalid config")

// Config holds the resolved settings.
type Config struct {
	// BearDances is true when the bear warning should be suppressed.
	BearDances bool
	// Frames is the number of frames in the dance animation.
	Frames int
	// FrameInterval is the pause after each frame.
	FrameInterval time.Duration
}

// Default returns the Config used when nothing is overridden.
func Default() *Config {
	return &Config{
		Frames:        DefaultFrames,
		FrameInterval: DefaultFrameInterval,
	}
}

// Load reads envFile into the process environment, without overriding
// variables that are already set, and resolves a Config from it. If required
// is false, an envFile that is missing, not a regular file or unreadable is
// skipped.
func Load(envFile string, required bool) (*Config, error) {
	if envFile != "" {
		if err := loadEnvFile(envFile, required); err != nil {
			return nil, err
		}
	}

	return FromEnv(), nil
}

func loadEnvFile(envFile string, required bool) error {
	if !required {
		info, err := os.Stat(envFile)
		if err != nil || !info.Mode().IsRegular() {
			zap.L().Debug(
				"skipping env file",
				zap.String("path", envFile),
				zap.Error(err),
			)
			return nil
		}
	}

	if err := godotenv.Load(envFile); err != nil {
		if !required {
			zap.L().Debug(
				"skipping env file",
				zap.String("path", envFile),
				zap.Error(err),
			)
			return nil
		}

		return fmt.Errorf("load env file %s: %w", envFile, err)
	}

	return nil
}

// FromEnv resolves a Config from the process environment. The frame settings
// keep their defaults until ResolveParty is called.
func FromEnv() *Config {
	cfg := Default()

	_, cfg.BearDances = os.LookupEnv(EnvBearDances)

	return cfg
}

// ResolveParty overrides the frame settings of c from the process
// environment. Only the dance party reads them, so they are validated
// separately from the rest of the Config.
func (c *Config) ResolveParty() error {
	if v := os.Getenv(EnvFrames); v != "" {
		frames, err := strconv.Atoi(v)
		if err != nil || frames <= 0 {
			return fmt.Errorf(
				"%w: %s must be a positive integer, got %q",
				ErrInvalid, EnvFrames, v,
			)
		}

		c.Frames = frames
	}

	if v := os.Getenv(EnvFrameInterval); v != "" {
		interval, err := time.ParseDuration(v)
		if err != nil || interval < 0 {
			return fmt.Errorf(
				"%w: %s must be a non-negative duration, got %q",
				ErrInvalid, EnvFrameInterval, v,
			)
		}

		c.FrameInterval = interval
	}

	return nil
}
