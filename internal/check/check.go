// Package check provides --check diagnostics and the pre-run dependency
// validation (CheckDeps) for the build tree, configure interpreter, config
// header and decoder allow-list.
package check

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"

	"github.com/facebookincubator/go-belt/tool/logger"

	"github.com/backmassage/codecflags/internal/codec"
	"github.com/backmassage/codecflags/internal/config"
	"github.com/backmassage/codecflags/internal/discover"
)

// ErrShellNotFound is returned by CheckDeps when the configure interpreter
// is not on PATH.
var ErrShellNotFound = errors.New("configure interpreter not found on PATH")

// RunCheck logs the state of every input the selected source needs and
// tries one decoder listing. It keeps going after failures and reports
// whether everything required was present.
func RunCheck(ctx context.Context, cfg *config.Config) bool {
	logger.Infof(ctx, "=== System Check ===")
	ok := true

	if cfg.Source == config.SourceConfigure {
		ok = checkShell(ctx, cfg) && ok
		ok = checkTree(ctx, cfg) && ok
	} else {
		ok = checkPath(ctx, "config header", cfg.HeaderPath, discover.EnsureFile) && ok
	}
	ok = checkAllowList(ctx, cfg) && ok

	if ok {
		ok = checkListing(ctx, cfg)
	}
	if ok {
		logger.Infof(ctx, "all checks passed")
	}
	return ok
}

// CheckDeps is the pre-run validation: in configure mode the interpreter
// must be on PATH. A missing interpreter means configure cannot be started,
// so it is reported as a *discover.DiscoveryError that also matches
// ErrShellNotFound. Missing files are left to discovery, which reports
// them with their paths.
func CheckDeps(cfg *config.Config) error {
	if cfg.Source != config.SourceConfigure {
		return nil
	}
	if _, err := exec.LookPath(cfg.Shell); err != nil {
		return &discover.DiscoveryError{
			Command: []string{cfg.Shell, cfg.ConfigureScript},
			Dir:     cfg.FFmpegDir(),
			Err:     fmt.Errorf("%w: %w", ErrShellNotFound, err),
		}
	}
	return nil
}

// checkShell verifies the configure interpreter is on PATH.
func checkShell(ctx context.Context, cfg *config.Config) bool {
	path, err := exec.LookPath(cfg.Shell)
	if err != nil {
		logger.Errorf(ctx, "%s not found on PATH", cfg.Shell)
		return false
	}
	logger.Infof(ctx, "interpreter: %s", path)
	return true
}

// checkTree verifies the tree, its ffmpeg directory and the configure script.
func checkTree(ctx context.Context, cfg *config.Config) bool {
	ok := checkPath(ctx, "build tree", cfg.TreeDir, discover.EnsureDir)
	ok = checkPath(ctx, "ffmpeg directory", cfg.FFmpegDir(), discover.EnsureDir) && ok
	if ok {
		script := filepath.Join(cfg.FFmpegDir(), cfg.ConfigureScript)
		ok = checkPath(ctx, "configure script", script, discover.EnsureFile)
	}
	return ok
}

func checkPath(ctx context.Context, what, path string, ensure func(string) error) bool {
	if err := ensure(path); err != nil {
		logger.Errorf(ctx, "%s: %v", what, err)
		return false
	}
	logger.Infof(ctx, "%s: %s", what, path)
	return true
}

// checkAllowList loads the allow-list and reports its size.
func checkAllowList(ctx context.Context, cfg *config.Config) bool {
	set, err := discover.LoadAllowList(ctx, cfg.AllowListPath)
	if err != nil {
		logger.Errorf(ctx, "allow-list: %v", err)
		return false
	}
	if set.Len() == 0 {
		logger.Warnf(ctx, "allow-list %s is empty: every decoder will be disabled", cfg.AllowListPath)
		return true
	}
	logger.Infof(ctx, "allow-list: %s (%d entries)", cfg.AllowListPath, set.Len())
	return true
}

// checkListing runs one decoder discovery through the configured source.
func checkListing(ctx context.Context, cfg *config.Config) bool {
	src, err := discover.NewSource(cfg)
	if err != nil {
		logger.Errorf(ctx, "%v", err)
		return false
	}
	set, err := src.Codecs(ctx, codec.Decoder)
	if err != nil {
		logger.Errorf(ctx, "%s: %v", src, err)
		return false
	}
	logger.Infof(ctx, "%s: %d decoders", src, set.Len())
	return true
}
