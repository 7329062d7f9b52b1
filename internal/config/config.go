package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/idilsaglam/packlist/internal/ui"
)

// ErrInvalid marks configuration mistakes (exit code 2).
var ErrInvalid = errors.New("invalid configuration")

// Config captures runtime configuration for the application.
type Config struct {
	Theme     string
	LogFile   string
	Trace     bool
	AltScreen bool
}

const (
	EnvTheme     = "PACKLIST_THEME"
	EnvLogFile   = "PACKLIST_LOG_FILE"
	EnvTrace     = "PACKLIST_TRACE"
	EnvAltScreen = "PACKLIST_ALT_SCREEN"
)

// Defaults reads the process environment.
func Defaults() Config {
	return FromEnv(os.Environ())
}

// FromEnv allows tests to supply a specific environment. Flags override
// these values.
func FromEnv(environ []string) Config {
	env := parseEnv(environ)
	return Config{
		Theme:     envOrDefault(env, EnvTheme, "classic"),
		LogFile:   envOrDefault(env, EnvLogFile, ""),
		Trace:     envOrBool(env, EnvTrace, false),
		AltScreen: envOrBool(env, EnvAltScreen, true),
	}
}

// Validate ensures the values can be used to start the UI.
func (c Config) Validate() error {
	if _, err := ui.ThemeByName(c.Theme); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		k, v, ok := strings.Cut(entry, "=")
		if !ok || k == "" {
			continue
		}
		values[k] = v
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok && strings.TrimSpace(v) != "" {
		return v
	}
	return fallback
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}
