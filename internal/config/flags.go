package config

// This file implements CLI flag parsing and help text.
// Flags are grouped into discovery, reconciliation, output, display, and utility.
// Negated flags (e.g. --no-color) are applied after Parse so Config defaults hold unless set.

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/backmassage/codecflags/internal/codec"
)

// ErrInfoShown is returned by [ParseFlags] after --help or --version was
// printed. Callers should exit with status 0 without doing anything else.
var ErrInfoShown = errors.New("info shown")

// infoOut receives --help and --version text. Stdout is reserved for
// the eval output, so this stays on stderr.
var infoOut io.Writer = os.Stderr

// ParseFlags parses args (without the program name) into cfg.
// On error it returns non-nil (e.g. unknown flag, unexpected positional args).
func ParseFlags(cfg *Config, args []string, version string) error {
	fs := pflag.NewFlagSet("codecflags", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() { printUsage(infoOut, version) }

	// Negated/override flags: we capture bools then apply to cfg after Parse,
	// so that defaults hold unless the user passes the flag.
	var negated negatedFlags

	defineDiscoveryFlags(fs, cfg)
	defineReconcileFlags(fs, cfg)
	defineDisplayFlags(fs, cfg, &negated)
	defineUtilityFlags(fs, &negated)

	if err := fs.Parse(args); err != nil {
		return err
	}

	applyNegatedFlags(cfg, &negated)

	if negated.showHelp {
		printUsage(infoOut, version)
		return ErrInfoShown
	}
	if negated.showVersion {
		fmt.Fprintln(infoOut, "codecflags v"+version)
		return ErrInfoShown
	}

	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected argument %q (codecflags takes no positional arguments)", fs.Arg(0))
	}
	return nil
}

// negatedFlags holds boolean flags that are applied after Parse.
type negatedFlags struct {
	forceColor  bool
	noColor     bool
	showVersion bool
	showHelp    bool
}

// defineDiscoveryFlags registers -s/--source, --tree, --ffmpeg-dir, --shell, --configure, --header, --timeout.
func defineDiscoveryFlags(fs *pflag.FlagSet, cfg *Config) {
	fs.VarP(&sourceValue{&cfg.Source}, "source", "s", "Codec discovery: configure | header")
	fs.StringVar(&cfg.TreeDir, "tree", cfg.TreeDir, "Build tree root")
	fs.StringVar(&cfg.FFmpegSubdir, "ffmpeg-dir", cfg.FFmpegSubdir, "ffmpeg directory inside the tree")
	fs.StringVar(&cfg.Shell, "shell", cfg.Shell, "Interpreter used to run configure")
	fs.StringVar(&cfg.ConfigureScript, "configure", cfg.ConfigureScript, "Configure script name")
	fs.StringVar(&cfg.HeaderPath, "header", cfg.HeaderPath, "Generated config header (--source=header)")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "Abort discovery after this long (0 = no limit)")
}

// defineReconcileFlags registers -a/--allow-list, --unknown, -f/--format.
func defineReconcileFlags(fs *pflag.FlagSet, cfg *Config) {
	fs.StringVarP(&cfg.AllowListPath, "allow-list", "a", cfg.AllowListPath, "File of decoders to enable")
	fs.Var(&policyValue{&cfg.Unknown}, "unknown", "Decoders not on the allow-list: disable | keep")
	fs.VarP(&formatValue{&cfg.Format}, "format", "f", "Output format: shell | lines")
}

// defineDisplayFlags registers --log-level, --color, --no-color, -l/--log, -c/--check.
func defineDisplayFlags(fs *pflag.FlagSet, cfg *Config, n *negatedFlags) {
	fs.Var(&cfg.LogLevel, "log-level", "Log level")
	fs.BoolVar(&n.forceColor, "color", false, "Force colored logs")
	fs.BoolVar(&n.noColor, "no-color", false, "Disable colored logs")
	fs.StringVarP(&cfg.LogFile, "log", "l", cfg.LogFile, "Append logs to file")
	fs.BoolVarP(&cfg.CheckOnly, "check", "c", false, "Run diagnostics and exit")
}

// defineUtilityFlags registers --version and --help.
func defineUtilityFlags(fs *pflag.FlagSet, n *negatedFlags) {
	fs.BoolVarP(&n.showVersion, "version", "V", false, "Print version and exit")
	fs.BoolVarP(&n.showHelp, "help", "h", false, "Show this help and exit")
}

// applyNegatedFlags copies negated and override flag values into cfg.
func applyNegatedFlags(cfg *Config, n *negatedFlags) {
	if n.noColor {
		cfg.ColorMode = ColorNever
	} else if n.forceColor {
		cfg.ColorMode = ColorAlways
	}
}

// printUsage writes the help text. Column-aligned for readability.
func printUsage(w io.Writer, version string) {
	const col1 = 30
	lines := []struct {
		flags string
		desc  string
	}{
		{"", "codecflags v" + version + " - ffmpeg decoder/encoder configure flags"},
		{"", ""},
		{"  eval \"$(codecflags [OPTIONS])\"", ""},
		{"", ""},
		{"Discovery", ""},
		{"  -s, --source <configure|header>", "Codec listing source (default: configure)"},
		{"  --tree <dir>", "Build tree root (default: mplayer-trunk)"},
		{"  --ffmpeg-dir <dir>", "ffmpeg directory in the tree (default: ffmpeg)"},
		{"  --shell <prog>", "Interpreter for configure (default: sh)"},
		{"  --configure <name>", "Configure script (default: configure)"},
		{"  --header <path>", "config.h for --source=header (default: config.h)"},
		{"  --timeout <duration>", "Discovery time limit (default: none)"},
		{"", ""},
		{"Decoders", ""},
		{"  -a, --allow-list <path>", "Decoders to enable (default: enabled-decoders.txt)"},
		{"  --unknown <disable|keep>", "Other decoders (default: disable)"},
		{"", ""},
		{"Output", ""},
		{"  -f, --format <shell|lines>", "Shell assignments or continuation lines (default: shell)"},
		{"", ""},
		{"Display", ""},
		{"  --log-level <level>", "trace, debug, info, warning, error (default: warning)"},
		{"  --color", "Force colored logs"},
		{"  --no-color", "Disable colored logs"},
		{"  -l, --log <path>", "Append logs to file"},
		{"", ""},
		{"Utility", ""},
		{"  -c, --check", "Diagnose build tree and inputs"},
		{"  -V, --version", "Print version to stderr and exit"},
		{"  -h, --help", "Show this help and exit"},
	}

	for _, l := range lines {
		if l.flags == "" && l.desc == "" {
			fmt.Fprintln(w)
			continue
		}
		if l.desc == "" {
			fmt.Fprintln(w, l.flags)
			continue
		}
		if l.flags == "" {
			fmt.Fprintln(w, l.desc)
			continue
		}
		padding := col1 - len(l.flags)
		if padding < 1 {
			padding = 1
		}
		fmt.Fprintf(w, "%s%*s%s\n", l.flags, padding, "", l.desc)
	}
}

// pflag.Value adapters so we can use enum types with fs.Var.

type sourceValue struct{ p *SourceMode }

func (s *sourceValue) String() string { return string(*s.p) }
func (s *sourceValue) Type() string   { return "source" }
func (s *sourceValue) Set(v string) error {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "configure":
		*s.p = SourceConfigure
	case "header":
		*s.p = SourceHeader
	default:
		return fmt.Errorf("invalid source %q (use 'configure' or 'header')", v)
	}
	return nil
}

type formatValue struct{ p *OutputFormat }

func (f *formatValue) String() string { return string(*f.p) }
func (f *formatValue) Type() string   { return "format" }
func (f *formatValue) Set(v string) error {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "shell":
		*f.p = FormatShell
	case "lines":
		*f.p = FormatLines
	default:
		return fmt.Errorf("invalid format %q (use 'shell' or 'lines')", v)
	}
	return nil
}

type policyValue struct{ p *codec.UnknownPolicy }

func (u *policyValue) String() string { return string(*u.p) }
func (u *policyValue) Type() string   { return "policy" }
func (u *policyValue) Set(v string) error {
	p, err := codec.ParseUnknownPolicy(v)
	if err != nil {
		return err
	}
	*u.p = p
	return nil
}
