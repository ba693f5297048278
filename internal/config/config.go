// Package config resolves the demo program's options from flags, NOLOG_*
// environment variables and an optional TOML file, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/pflag"

	"github.com/mordilloSan/go-nolog/logger"
)

// DefaultConfigPath is read when --config is not given; a missing file is ignored.
const DefaultConfigPath = "nolog.toml"

// envPrefix is prepended to the upper-cased flag name, with dashes as underscores.
const envPrefix = "NOLOG_"

// Options holds the demo program settings.
type Options struct {
	Config    string
	Target    string
	File      string
	Timestamp bool
	Truncate  bool
	Serialize bool
	Colorize  bool
	Journal   bool
	Level     string
	Metrics   bool
}

// fileConfig mirrors the TOML layout. Pointers tell unset keys from zero values.
type fileConfig struct {
	Log struct {
		Target    *string `toml:"target"`
		File      *string `toml:"file"`
		Timestamp *bool   `toml:"timestamp"`
		Truncate  *bool   `toml:"truncate"`
		Serialize *bool   `toml:"serialize"`
		Colorize  *bool   `toml:"colorize"`
		Journal   *bool   `toml:"journal"`
		Level     *string `toml:"level"`
	} `toml:"log"`
	Metrics struct {
		Print *bool `toml:"print"`
	} `toml:"metrics"`
}

// BindFlags registers the command line flags for opts with their defaults.
func BindFlags(flags *pflag.FlagSet, opts *Options) {
	flags.StringVarP(&opts.Config, "config", "c", DefaultConfigPath, "Path to TOML configuration file")
	flags.StringVarP(&opts.Target, "target", "t", "stderr", "Log target: stderr or file")
	flags.StringVarP(&opts.File, "file", "f", logger.DefaultFilePath, "Log file path for the file target")
	flags.BoolVar(&opts.Timestamp, "timestamp", false, "Prefix lines with the UTC capture time")
	flags.BoolVar(&opts.Truncate, "truncate", true, "Truncate the log file before logging")
	flags.BoolVar(&opts.Serialize, "serialize", false, "Serialize writes to the log file")
	flags.BoolVar(&opts.Colorize, "colorize", false, "Colorize stderr output")
	flags.BoolVar(&opts.Journal, "journal", false, "Add syslog priorities when stderr is the systemd journal")
	flags.StringVarP(&opts.Level, "level", "l", "", "Only emit this level (default: all six)")
	flags.BoolVar(&opts.Metrics, "metrics", false, "Print the log failure counters when done")
}

// Load fills opts from the TOML file and the environment. Flags set explicitly
// on flags are left alone.
func Load(opts *Options, flags *pflag.FlagSet) error {
	return load(opts, flags, os.LookupEnv)
}

func load(opts *Options, flags *pflag.FlagSet, lookupEnv func(string) (string, bool)) error {
	var file fileConfig
	if opts.Config != "" {
		data, err := os.ReadFile(opts.Config)
		switch {
		case err == nil:
			if err := toml.Unmarshal(data, &file); err != nil {
				return fmt.Errorf("failed to parse TOML config %s: %w", opts.Config, err)
			}
		case errors.Is(err, fs.ErrNotExist) && (flags == nil || !flags.Changed("config")):
			// The default file is optional.
		default:
			return fmt.Errorf("failed to read config %s: %w", opts.Config, err)
		}
	}

	l := loader{flags: flags, lookupEnv: lookupEnv}
	l.str(&opts.Target, "target", file.Log.Target)
	l.str(&opts.File, "file", file.Log.File)
	l.str(&opts.Level, "level", file.Log.Level)
	l.boolean(&opts.Timestamp, "timestamp", file.Log.Timestamp)
	l.boolean(&opts.Truncate, "truncate", file.Log.Truncate)
	l.boolean(&opts.Serialize, "serialize", file.Log.Serialize)
	l.boolean(&opts.Colorize, "colorize", file.Log.Colorize)
	l.boolean(&opts.Journal, "journal", file.Log.Journal)
	l.boolean(&opts.Metrics, "metrics", file.Metrics.Print)
	if l.err != nil {
		return l.err
	}
	return opts.Validate()
}

// Validate checks the values that have a fixed set of choices.
func (o *Options) Validate() error {
	if _, err := logger.ParseTarget(o.Target); err != nil {
		return err
	}
	if o.Level != "" {
		if _, err := logger.ParseLevel(o.Level); err != nil {
			return err
		}
	}
	return nil
}

// LoggerConfig converts the options into a logger configuration.
func (o *Options) LoggerConfig() (logger.Config, error) {
	target, err := logger.ParseTarget(o.Target)
	if err != nil {
		return logger.Config{}, err
	}
	return logger.Config{
		Target:          target,
		FilePath:        o.File,
		Timestamp:       o.Timestamp,
		Serialize:       o.Serialize,
		Colorize:        o.Colorize,
		JournalPriority: o.Journal,
	}, nil
}

// Levels returns the levels the demo emits.
func (o *Options) Levels() []logger.Level {
	if o.Level == "" {
		return logger.AllLevels()
	}
	level, err := logger.ParseLevel(o.Level)
	if err != nil {
		return nil
	}
	return []logger.Level{level}
}

type loader struct {
	flags     *pflag.FlagSet
	lookupEnv func(string) (string, bool)
	err       error
}

func envKey(flag string) string {
	return envPrefix + strings.ToUpper(strings.ReplaceAll(flag, "-", "_"))
}

func (l *loader) str(dst *string, flag string, fromFile *string) {
	if l.flags != nil && l.flags.Changed(flag) {
		return
	}
	if v, ok := l.lookupEnv(envKey(flag)); ok {
		*dst = v
		return
	}
	if fromFile != nil {
		*dst = *fromFile
	}
}

func (l *loader) boolean(dst *bool, flag string, fromFile *bool) {
	if l.flags != nil && l.flags.Changed(flag) {
		return
	}
	if v, ok := l.lookupEnv(envKey(flag)); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			l.err = errors.Join(l.err, fmt.Errorf("invalid %s=%q: %w", envKey(flag), v, err))
			return
		}
		*dst = b
		return
	}
	if fromFile != nil {
		*dst = *fromFile
	}
}
