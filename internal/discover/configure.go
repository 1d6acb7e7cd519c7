package discover

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/facebookincubator/go-belt/tool/logger"

	"github.com/backmassage/codecflags/internal/codec"
	"github.com/backmassage/codecflags/internal/config"
)

// waitDelay bounds how long a cancelled configure may keep its output
// pipes open through child processes.
const waitDelay = 2 * time.Second

// ErrEmptyListing is returned when a source names no codecs for a
// requested class. Both sources apply it per class.
var ErrEmptyListing = errors.New("listing contains no codecs")

// ConfigureArgs returns the command line used to list codecs of class.
func ConfigureArgs(cfg *config.Config, class codec.Class) []string {
	return []string{cfg.Shell, cfg.ConfigureScript, "--list-" + class.Plural()}
}

// EnsureTree checks that the build tree and its ffmpeg directory exist.
func EnsureTree(cfg *config.Config) error {
	if err := EnsureDir(cfg.TreeDir); err != nil {
		return err
	}
	return EnsureDir(cfg.FFmpegDir())
}

// ListCodecs runs the configure script inside the ffmpeg directory and
// returns the codecs of class it prints. Stdout is split on whitespace;
// stderr is kept for the error when configure fails. cfg.Timeout, when
// positive, bounds the run.
func ListCodecs(ctx context.Context, cfg *config.Config, class codec.Class) (*codec.Set, error) {
	if err := EnsureTree(cfg); err != nil {
		return nil, err
	}

	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	args := ConfigureArgs(cfg, class)
	dir := cfg.FFmpegDir()
	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Dir = dir
	cmd.WaitDelay = waitDelay

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	logger.Debugf(ctx, "running %v in %s", args, dir)
	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			err = errors.Join(err, ctxErr)
		}
		return nil, &DiscoveryError{Command: args, Dir: dir, Stderr: stderr.String(), Err: err}
	}

	origin := filepath.Join(dir, cfg.ConfigureScript)
	set, err := readTokens(ctx, &stdout, origin)
	if err != nil {
		return nil, &DiscoveryError{Command: args, Dir: dir, Stderr: stderr.String(), Err: err}
	}
	if set.Len() == 0 {
		return nil, &DiscoveryError{Command: args, Dir: dir, Stderr: stderr.String(), Err: ErrEmptyListing}
	}
	logger.Debugf(ctx, "%s: %d %s", origin, set.Len(), class.Plural())
	return set, nil
}
