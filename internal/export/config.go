package export

import (
	"fmt"
	"os"
	"strconv"

	"github.com/dungoboogies/la-traffic-scheduler/internal/resample"
)

const (
	EnvPublicDir = "ICONGEN_PUBLIC_DIR"
	EnvAppDir    = "ICONGEN_APP_DIR"
	EnvFilter    = "ICONGEN_FILTER"
	EnvMkdir     = "ICONGEN_MKDIR"

	DefaultPublicDir = "public"
	DefaultAppDir    = "src/app"
)

// Config contains the output locations of the icon set.
//
// PublicDir is the web app's static root; AppDir is the app router
// directory that also serves favicon.ico.
type Config struct {
	PublicDir  string
	AppDir     string
	Filter     resample.Filter
	CreateDirs bool
}

// DefaultConfigFromEnv returns the default config with env overrides applied.
func DefaultConfigFromEnv() (Config, error) {
	cfg := Config{
		PublicDir: DefaultPublicDir,
		AppDir:    DefaultAppDir,
		Filter:    resample.Lanczos3,
	}
	if v := os.Getenv(EnvPublicDir); v != "" {
		cfg.PublicDir = v
	}
	if v := os.Getenv(EnvAppDir); v != "" {
		cfg.AppDir = v
	}
	if raw := os.Getenv(EnvFilter); raw != "" {
		f, err := resample.ParseFilter(raw)
		if err != nil {
			return Config{}, fmt.Errorf("%s must name a resample filter (got %q): %w", EnvFilter, raw, err)
		}
		cfg.Filter = f
	}
	if raw := os.Getenv(EnvMkdir); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return Config{}, fmt.Errorf("%s must be a boolean (got %q): %w", EnvMkdir, raw, err)
		}
		cfg.CreateDirs = parsed
	}
	return cfg, nil
}
