package config

import "flag"

// flagFields maps flag names to config field names for source tracking.
var flagFields = map[string]string{
	"log-dir":        "log_dir",
	"log-level":      "log_level",
	"log-format":     "log_format",
	"log-timestamps": "log_timestamps",
	"log-caller":     "log_caller",
	"dark":           "dark_mode",
	"filter":         "filter",
	"blur":           "blur_policy",
	"placeholder":    "placeholder",
}

// parseFlags defines the global flags on fs, parses args and records which
// fields were set explicitly.
func parseFlags(cfg *Config, fs *flag.FlagSet, args []string, sources map[string]ConfigSource) error {
	if fs == nil {
		fs = flag.NewFlagSet("tasklist", flag.ContinueOnError)
	}

	blur := string(cfg.BlurPolicy)

	fs.StringVar(&cfg.LogDir, "log-dir", cfg.LogDir, "Log directory")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug|info|warn|error)")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format (text|json|logfmt)")
	fs.BoolVar(&cfg.LogTimestamps, "log-timestamps", cfg.LogTimestamps, "Include timestamps in log lines")
	fs.BoolVar(&cfg.LogCaller, "log-caller", cfg.LogCaller, "Include caller location in log lines")
	fs.BoolVar(&cfg.DarkMode, "dark", cfg.DarkMode, "Start in dark mode")
	fs.StringVar(&cfg.Filter, "filter", cfg.Filter, "Initial status filter (all|todo|done)")
	fs.StringVar(&blur, "blur", blur, "Pending edit on focus loss (save|cancel)")
	fs.StringVar(&cfg.Placeholder, "placeholder", cfg.Placeholder, "Input placeholder text")

	if err := fs.Parse(args); err != nil {
		return err
	}
	cfg.BlurPolicy = BlurPolicy(blur)

	if sources != nil {
		fs.Visit(func(f *flag.Flag) {
			if field, ok := flagFields[f.Name]; ok {
				sources[field] = SourceFlag
			}
		})
	}
	return nil
}
