package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/backmassage/codecflags/internal/codec"
)

// DefaultEnvFile is read by [LoadEnv] when present in the working directory.
const DefaultEnvFile = ".env"

// Environment variables recognized by [ApplyEnv].
const (
	EnvSource    = "CODECFLAGS_SOURCE"
	EnvTree      = "CODECFLAGS_TREE"
	EnvFFmpegDir = "CODECFLAGS_FFMPEG_DIR"
	EnvShell     = "CODECFLAGS_SHELL"
	EnvHeader    = "CODECFLAGS_HEADER"
	EnvAllowList = "CODECFLAGS_ALLOW_LIST"
	EnvUnknown   = "CODECFLAGS_UNKNOWN"
	EnvFormat    = "CODECFLAGS_FORMAT"
	EnvTimeout   = "CODECFLAGS_TIMEOUT"
	EnvLogLevel  = "CODECFLAGS_LOG_LEVEL"
	EnvLogFile   = "CODECFLAGS_LOG"
)

// LoadEnv applies settings from envFile (if it exists) and the process
// environment to cfg. The process environment wins over the file; the file
// is read without modifying the process environment. A missing file is not
// an error.
func LoadEnv(cfg *Config, envFile string) error {
	fileVars := map[string]string{}
	if envFile != "" {
		vars, err := godotenv.Read(envFile)
		switch {
		case err == nil:
			fileVars = vars
		case errors.Is(err, fs.ErrNotExist):
			// optional
		default:
			return fmt.Errorf("read %s: %w", envFile, err)
		}
	}
	return ApplyEnv(cfg, func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := fileVars[key]
		return v, ok
	})
}

// ApplyEnv overrides cfg fields from lookup. Empty values are ignored.
func ApplyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	get := func(key string) (string, bool) {
		v, ok := lookup(key)
		v = strings.TrimSpace(v)
		return v, ok && v != ""
	}

	if v, ok := get(EnvSource); ok {
		if err := (&sourceValue{&cfg.Source}).Set(v); err != nil {
			return fmt.Errorf("%s: %w", EnvSource, err)
		}
	}
	if v, ok := get(EnvTree); ok {
		cfg.TreeDir = v
	}
	if v, ok := get(EnvFFmpegDir); ok {
		cfg.FFmpegSubdir = v
	}
	if v, ok := get(EnvShell); ok {
		cfg.Shell = v
	}
	if v, ok := get(EnvHeader); ok {
		cfg.HeaderPath = v
	}
	if v, ok := get(EnvAllowList); ok {
		cfg.AllowListPath = v
	}
	if v, ok := get(EnvUnknown); ok {
		p, err := codec.ParseUnknownPolicy(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvUnknown, err)
		}
		cfg.Unknown = p
	}
	if v, ok := get(EnvFormat); ok {
		if err := (&formatValue{&cfg.Format}).Set(v); err != nil {
			return fmt.Errorf("%s: %w", EnvFormat, err)
		}
	}
	if v, ok := get(EnvTimeout); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvTimeout, err)
		}
		cfg.Timeout = d
	}
	if v, ok := get(EnvLogLevel); ok {
		if err := cfg.LogLevel.Set(v); err != nil {
			return fmt.Errorf("%s: %w", EnvLogLevel, err)
		}
	}
	if v, ok := get(EnvLogFile); ok {
		cfg.LogFile = v
	}
	if _, ok := get("NO_COLOR"); ok {
		cfg.ColorMode = ColorNever
	}
	return nil
}
