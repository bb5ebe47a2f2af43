// Package config is for app wide settings that are unmarshalled
// from Viper (see: internal/cli)
package config

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/spf13/viper"
)

// Progress display styles.
const (
	StyleLine = "line"
	StyleBar  = "bar"
)

// Config is the root-level settings struct and is a mix of settings
// available in a config file, PRIMERSCAN_* env vars and the command line.
type Config struct {
	// primer collection files or globs; one result table each
	Primers []string `mapstructure:"primers"`

	// contig source ("-" for stdin)
	Contigs string `mapstructure:"contigs"`

	// column delimiter of primer sources and result tables
	Delimiter string `mapstructure:"delimiter"`

	// worker-pool cap (0 = all CPUs)
	Threads int `mapstructure:"threads"`

	Progress      bool   `mapstructure:"progress"`
	ProgressStyle string `mapstructure:"progress-style"`

	// result sink: directory, s3://bucket/prefix or sqlite://file.db
	Output string `mapstructure:"output"`
	Prefix string `mapstructure:"prefix"`
	Clean  bool   `mapstructure:"clean"`

	MetricsFile string `mapstructure:"metrics-file"`

	LogLevel        string `mapstructure:"log-level"`
	Quiet           bool   `mapstructure:"quiet"`
	NoMatchExitCode int    `mapstructure:"no-match-exit-code"`
}

// SetDefaults registers defaults on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("delimiter", ";")
	v.SetDefault("threads", 0)
	v.SetDefault("progress", true)
	v.SetDefault("progress-style", StyleLine)
	v.SetDefault("output", "final")
	v.SetDefault("prefix", "hits_")
	v.SetDefault("log-level", "info")
	v.SetDefault("no-match-exit-code", 0)
}

// Decode unmarshals v into a Config. Call Validate once every source
// (including positional arguments) has been merged in.
func Decode(v *viper.Viper) (Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("unable to decode config: %w", err)
	}
	return c, nil
}

// DelimiterRune returns the single delimiter rune.
func (c Config) DelimiterRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Delimiter)
	return r
}

// Validate applies CLI invariants shared by all inputs.
func (c Config) Validate() error {
	if len(c.Primers) == 0 {
		return errors.New("at least one --primers file is required")
	}
	if c.Contigs == "" {
		return errors.New("--contigs is required")
	}
	if utf8.RuneCountInString(c.Delimiter) != 1 {
		return fmt.Errorf("--delimiter must be a single character, got %q", c.Delimiter)
	}
	if d := c.DelimiterRune(); d == '"' || d == '\r' || d == '\n' || d == utf8.RuneError {
		return fmt.Errorf("invalid --delimiter %q", c.Delimiter)
	}
	if c.Threads < 0 {
		return errors.New("--threads must be ≥ 0")
	}
	switch c.ProgressStyle {
	case StyleLine, StyleBar:
	default:
		return fmt.Errorf("invalid --progress-style %q", c.ProgressStyle)
	}
	if strings.TrimSpace(c.Output) == "" {
		return errors.New("--output must not be empty")
	}
	if c.NoMatchExitCode < 0 || c.NoMatchExitCode > 255 {
		return errors.New("--no-match-exit-code must be between 0 and 255")
	}
	return nil
}
