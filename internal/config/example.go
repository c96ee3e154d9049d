package config

// ExampleConfig returns an example configuration showing all available options.
func ExampleConfig() string {
	return `# tasklist configuration file
# Values can be overridden by TASKLIST_* environment variables or CLI flags

# Log directory for interactive sessions (supports ~ expansion and %VAR% on Windows)
log_dir = "~/.tasklist"

# Log level: debug, info, warn, error
log_level = "info"

# Log format: text, json, logfmt
log_format = "text"

# Include timestamps and caller locations in log lines
log_timestamps = true
log_caller = false

# Start the widget in dark mode
dark_mode = false

# Initial status filter: all, todo, done
filter = "all"

# What happens to a pending edit when the cursor leaves the task
# without pressing enter: save or cancel
blur_policy = "save"

# Hint shown in the empty input box
placeholder = "What is your mind?"
`
}
