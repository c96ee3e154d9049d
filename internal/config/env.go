package config

import (
	"os"

	"github.com/nibzard/tasklist/internal/utils"
)

// envBinding maps an environment variable onto a config field.
type envBinding struct {
	name  string
	field string
	apply func(cfg *Config, v string)
}

var envBindings = []envBinding{
	{"TASKLIST_LOG_DIR", "log_dir", func(cfg *Config, v string) { cfg.LogDir = v }},
	{"TASKLIST_LOG_LEVEL", "log_level", func(cfg *Config, v string) { cfg.LogLevel = v }},
	{"TASKLIST_LOG_FORMAT", "log_format", func(cfg *Config, v string) { cfg.LogFormat = v }},
	{"TASKLIST_LOG_TIMESTAMPS", "log_timestamps", func(cfg *Config, v string) { cfg.LogTimestamps = utils.ParseBool(v) }},
	{"TASKLIST_LOG_CALLER", "log_caller", func(cfg *Config, v string) { cfg.LogCaller = utils.ParseBool(v) }},
	{"TASKLIST_DARK_MODE", "dark_mode", func(cfg *Config, v string) { cfg.DarkMode = utils.ParseBool(v) }},
	{"TASKLIST_FILTER", "filter", func(cfg *Config, v string) { cfg.Filter = v }},
	{"TASKLIST_BLUR_POLICY", "blur_policy", func(cfg *Config, v string) { cfg.BlurPolicy = BlurPolicy(v) }},
	{"TASKLIST_PLACEHOLDER", "placeholder", func(cfg *Config, v string) { cfg.Placeholder = v }},
}

// loadFromEnv overrides config from TASKLIST_* environment variables.
// Unset and empty variables are ignored.
func loadFromEnv(cfg *Config, sources map[string]ConfigSource) {
	for _, b := range envBindings {
		v := os.Getenv(b.name)
		if v == "" {
			continue
		}
		b.apply(cfg, v)
		if sources != nil {
			sources[b.field] = SourceEnv
		}
	}
}
