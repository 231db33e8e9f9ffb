package config

import (
	"os"
	"path/filepath"
	"strconv"
)

// Config carries the runtime knobs for the app, all overridable through the
// environment.
type Config struct {
	APIBaseURL         string
	HTTPTimeoutSeconds int
	SettingsPath       string
	Debug              bool
}

// Load reads configuration from the environment, falling back to sensible
// defaults. Settings live under the user config dir unless overridden.
func Load() Config {
	return Config{
		APIBaseURL:         getenv("ZILGMOR_API_BASE", "https://www.sefaria.org"),
		HTTPTimeoutSeconds: getenvInt("ZILGMOR_HTTP_TIMEOUT_SECONDS", 30),
		SettingsPath:       getenv("ZILGMOR_SETTINGS_PATH", defaultSettingsPath()),
		Debug:              os.Getenv("ZILGMOR_DEBUG") != "",
	}
}

func defaultSettingsPath() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return ".zilgmor-settings.json"
	}
	return filepath.Join(base, "zilgmor", "settings.json")
}

func getenv(k, fallback string) string {
	v := os.Getenv(k)
	if v == "" {
		return fallback
	}
	return v
}

func getenvInt(k string, fallback int) int {
	v := os.Getenv(k)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
