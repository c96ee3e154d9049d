package config

import (
	"fmt"
	"strconv"

	"github.com/nibzard/tasklist/internal/todo"
)

// ConfigSource represents where a configuration value came from.
type ConfigSource string

const (
	SourceDefault  ConfigSource = "default"
	SourceUserFile ConfigSource = "user file"
	SourceProjFile ConfigSource = "project file"
	SourceEnv      ConfigSource = "environment"
	SourceFlag     ConfigSource = "flag"
)

// ConfigWithSources holds configuration along with source information for each field.
type ConfigWithSources struct {
	Config  *Config
	Sources map[string]ConfigSource
	// Files lists the config files that were read, in load order.
	Files []string
}

// BlurPolicy decides what happens to a pending edit when focus leaves the
// edited task without an explicit save.
type BlurPolicy string

const (
	BlurSave   BlurPolicy = "save"
	BlurCancel BlurPolicy = "cancel"
)

// Default values.
const (
	DefaultLogDir      = "~/.tasklist"
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultFilter      = "all"
	DefaultBlurPolicy  = BlurSave
	DefaultPlaceholder = "What is your mind?"
)

// Config holds the full configuration for tasklist.
type Config struct {
	// Logging
	LogDir        string `toml:"log_dir"`
	LogLevel      string `toml:"log_level"`
	LogFormat     string `toml:"log_format"`
	LogTimestamps bool   `toml:"log_timestamps"`
	LogCaller     bool   `toml:"log_caller"`

	// Initial view state
	DarkMode bool   `toml:"dark_mode"`
	Filter   string `toml:"filter"`

	// Editing
	BlurPolicy BlurPolicy `toml:"blur_policy"`

	// Input box hint shown while it is empty
	Placeholder string `toml:"placeholder"`
}

// StatusFilter returns the parsed initial status filter.
// finalizeConfig has already rejected invalid names.
func (c *Config) StatusFilter() todo.StatusFilter {
	f, err := todo.ParseStatusFilter(c.Filter)
	if err != nil {
		return todo.FilterAll
	}
	return f
}

// InitialSession returns the session the interactive view starts with.
func (c *Config) InitialSession() todo.Session {
	s := todo.NewSession().SetFilter(c.StatusFilter())
	s.DarkMode = c.DarkMode
	return s
}

// Field is a single configuration value for display.
type Field struct {
	Key    string
	Value  string
	Source ConfigSource
}

// configFields returns the list of configurable field names for source tracking.
func configFields() []string {
	return []string{
		"log_dir",
		"log_level",
		"log_format",
		"log_timestamps",
		"log_caller",
		"dark_mode",
		"filter",
		"blur_policy",
		"placeholder",
	}
}

// Fields returns every configurable value with its source, in a stable order.
func (cws *ConfigWithSources) Fields() []Field {
	c := cws.Config
	values := map[string]string{
		"log_dir":        c.LogDir,
		"log_level":      c.LogLevel,
		"log_format":     c.LogFormat,
		"log_timestamps": strconv.FormatBool(c.LogTimestamps),
		"log_caller":     strconv.FormatBool(c.LogCaller),
		"dark_mode":      strconv.FormatBool(c.DarkMode),
		"filter":         c.Filter,
		"blur_policy":    string(c.BlurPolicy),
		"placeholder":    fmt.Sprintf("%q", c.Placeholder),
	}

	fields := make([]Field, 0, len(values))
	for _, key := range configFields() {
		src, ok := cws.Sources[key]
		if !ok {
			src = SourceDefault
		}
		fields = append(fields, Field{Key: key, Value: values[key], Source: src})
	}
	return fields
}
