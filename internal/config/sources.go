package config

import (
	"os"
	"path/filepath"
)

const (
	appName        = "tasklist"
	configFileName = appName + ".toml"
)

// projectConfigPaths lists the per-directory config files, highest
// priority first.
func projectConfigPaths() []string {
	return []string{configFileName, "." + configFileName}
}

// userConfigPaths lists the per-user config files, highest priority first:
// ~/.tasklist/tasklist.toml, then tasklist/tasklist.toml under
// os.UserConfigDir (XDG_CONFIG_HOME, ~/Library/Application Support or
// %AppData%).
func userConfigPaths() []string {
	var paths []string
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		paths = append(paths, filepath.Join(home, "."+appName, configFileName))
	}
	if dir, err := os.UserConfigDir(); err == nil && dir != "" {
		paths = append(paths, filepath.Join(dir, appName, configFileName))
	}
	return paths
}

// firstFile returns the first path that exists and is a regular file.
func firstFile(paths []string) string {
	for _, p := range paths {
		if info, err := os.Stat(p); err == nil && info.Mode().IsRegular() {
			return p
		}
	}
	return ""
}

// setDefaults applies default values to the config.
func setDefaults(cfg *Config) {
	cfg.LogDir = DefaultLogDir
	cfg.LogLevel = DefaultLogLevel
	cfg.LogFormat = DefaultLogFormat
	cfg.LogTimestamps = true
	cfg.LogCaller = false
	cfg.DarkMode = false
	cfg.Filter = DefaultFilter
	cfg.BlurPolicy = DefaultBlurPolicy
	cfg.Placeholder = DefaultPlaceholder
}
