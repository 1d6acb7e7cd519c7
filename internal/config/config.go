// Package config holds runtime configuration: defaults, environment and
// .env overrides, CLI flag parsing, and validation. Defaults reproduce the
// layout the MPlayer build scripts expect: the tool runs next to
// mplayer-trunk/ and enabled-decoders.txt.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/facebookincubator/go-belt/tool/logger"

	"github.com/backmassage/codecflags/internal/codec"
)

// --- Enum types for validated string fields ---

// SourceMode selects where available codecs are discovered.
type SourceMode string

const (
	SourceConfigure SourceMode = "configure" // Run "configure --list-*" in the ffmpeg tree (default).
	SourceHeader    SourceMode = "header"    // Scan a generated config.h.
)

// OutputFormat selects how flags are written to stdout.
type OutputFormat string

const (
	FormatShell OutputFormat = "shell" // NAME="flags" lines for eval (default).
	FormatLines OutputFormat = "lines" // One "    --flag \" per line.
)

// ColorMode controls ANSI color output on stderr logs.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stderr is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all runtime settings. It is populated by [DefaultConfig],
// then [LoadEnv], then [ParseFlags], and passed by pointer to the
// packages that need it.
type Config struct {
	// Discovery.
	Source          SourceMode
	TreeDir         string        // Default: "mplayer-trunk".
	FFmpegSubdir    string        // Default: "ffmpeg", relative to TreeDir.
	Shell           string        // Default: "sh".
	ConfigureScript string        // Default: "configure".
	HeaderPath      string        // Default: "config.h". Used with SourceHeader.
	Timeout         time.Duration // Default: 0 (wait for configure indefinitely).

	// Reconciliation.
	AllowListPath string              // Default: "enabled-decoders.txt".
	Unknown       codec.UnknownPolicy // Default: "disable".

	// Output.
	Format OutputFormat

	// Display and logging.
	LogLevel  logger.Level // Default: warning.
	ColorMode ColorMode    // Default: "auto".
	LogFile   string       // Optional log file path.
	CheckOnly bool         // Run --check diagnostics and exit.
}

// DefaultConfig returns a Config matching the paths and policy of the
// original build scripts.
func DefaultConfig() Config {
	return Config{
		Source:          SourceConfigure,
		TreeDir:         "mplayer-trunk",
		FFmpegSubdir:    "ffmpeg",
		Shell:           "sh",
		ConfigureScript: "configure",
		HeaderPath:      "config.h",
		AllowListPath:   "enabled-decoders.txt",
		Unknown:         codec.PolicyDisable,
		Format:          FormatShell,
		LogLevel:        logger.LevelWarning,
		ColorMode:       ColorAuto,
	}
}

// FFmpegDir is the directory configure runs in.
func (c *Config) FFmpegDir() string {
	return filepath.Join(c.TreeDir, c.FFmpegSubdir)
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// Validate checks enum fields and that every path the selected source
// needs is configured. It does not touch the filesystem; missing files are
// reported by package discover.
func (c *Config) Validate() error {
	switch c.Source {
	case SourceConfigure, SourceHeader:
		// valid
	default:
		return errors.New("invalid source (use 'configure' or 'header')")
	}

	switch c.Format {
	case FormatShell, FormatLines:
		// valid
	default:
		return errors.New("invalid format (use 'shell' or 'lines')")
	}

	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}

	if _, err := codec.ParseUnknownPolicy(string(c.Unknown)); err != nil {
		return err
	}

	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative (got %s)", c.Timeout)
	}

	if strings.TrimSpace(c.AllowListPath) == "" {
		return errors.New("allow-list path must not be empty")
	}

	switch c.Source {
	case SourceConfigure:
		if c.TreeDir == "" || c.FFmpegSubdir == "" {
			return errors.New("configure source needs both --tree and --ffmpeg-dir")
		}
		if c.Shell == "" || c.ConfigureScript == "" {
			return errors.New("configure source needs --shell and --configure")
		}
	case SourceHeader:
		if c.HeaderPath == "" {
			return errors.New("header source needs --header")
		}
	}
	c.TreeDir = NormalizeDirArg(c.TreeDir)
	c.FFmpegSubdir = NormalizeDirArg(c.FFmpegSubdir)
	return nil
}
