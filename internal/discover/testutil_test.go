package discover

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/backmassage/codecflags/internal/config"
)

const fakeConfigure = `#!/bin/sh
case "$1" in
--list-decoders)
	echo "h264            aac             mp2"
	echo "vorbis          flv"
	;;
--list-encoders)
	echo "aac mpeg4"
	echo "flac"
	;;
*)
	echo "unknown option $1" >&2
	exit 1
	;;
esac
`

// writeTree creates <tmp>/mplayer-trunk/ffmpeg/configure with script and
// returns a config pointing at it.
func writeTree(t *testing.T, script string) *config.Config {
	t.Helper()
	root := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.TreeDir = filepath.Join(root, "mplayer-trunk")
	require.NoError(t, os.MkdirAll(cfg.FFmpegDir(), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(cfg.FFmpegDir(), cfg.ConfigureScript), []byte(script), 0o755))
	cfg.AllowListPath = filepath.Join(root, "enabled-decoders.txt")
	cfg.HeaderPath = filepath.Join(root, "config.h")
	return &cfg
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func testCtx() context.Context {
	return context.Background()
}
