// Command codecflags prints ffmpeg configure flags for the MPlayer build.
//
// It discovers the decoders and encoders the bundled ffmpeg knows about,
// enables the decoders named in the allow-list, disables every other
// decoder and every encoder, and prints three shell assignments:
//
//	eval "$(codecflags)"
//	./configure $DISABLED_DECODERS_FLAGS $ENABLED_DECODERS_FLAGS $DISABLED_ENCODERS_FLAGS
//
// Nothing is written to stdout unless every input was acquired.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/facebookincubator/go-belt"
	"github.com/facebookincubator/go-belt/tool/logger"

	"github.com/backmassage/codecflags/internal/check"
	"github.com/backmassage/codecflags/internal/codec"
	"github.com/backmassage/codecflags/internal/config"
	"github.com/backmassage/codecflags/internal/discover"
	"github.com/backmassage/codecflags/internal/display"
	"github.com/backmassage/codecflags/internal/logging"
)

// version and commit are injected at build time via -ldflags.
var (
	version = "1.0.0"
	commit  = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, stdout io.Writer) int {
	// Phase 1: Bootstrap. The logger doesn't exist yet, so errors go
	// directly to stderr via fmt.
	cfg := config.DefaultConfig()
	if err := config.LoadEnv(&cfg, config.DefaultEnvFile); err != nil {
		fmt.Fprintf(os.Stderr, "codecflags: %v\n", err)
		return 1
	}
	if err := config.ParseFlags(&cfg, args, version); err != nil {
		if errors.Is(err, config.ErrInfoShown) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "codecflags: %v\n", err)
		return 1
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "codecflags: %v\n", err)
		return 1
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "codecflags: %v\n", err)
		return 1
	}
	defer log.Close()

	// Phase 2: Logger available. Cancel discovery on SIGINT/SIGTERM.
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	ctx = log.WithContext(ctx)
	defer belt.Flush(ctx)

	logger.Debugf(ctx, "codecflags v%s (%s)", version, commit)

	if cfg.CheckOnly {
		if !check.RunCheck(ctx, &cfg) {
			return 1
		}
		return 0
	}

	if err := check.CheckDeps(&cfg); err != nil {
		logger.Errorf(ctx, "%v", err)
		return 1
	}

	// Phase 3: Acquire every input before producing any output.
	src, err := discover.NewSource(&cfg)
	if err != nil {
		logger.Errorf(ctx, "%v", err)
		return 1
	}
	in, err := discover.Acquire(ctx, &cfg, src)
	if err != nil {
		logger.Errorf(ctx, "%v", err)
		return 1
	}
	logger.Debugf(ctx, "codecs from %s", src)

	// Phase 4: Reconcile and print.
	res := codec.Plan(in.Decoders, in.Wanted, in.Encoders, cfg.Unknown)
	display.Summary(ctx, res)
	if err := display.Write(stdout, cfg.Format, res); err != nil {
		logger.Errorf(ctx, "write flags: %v", err)
		return 1
	}
	return 0
}
