package check

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/backmassage/codecflags/internal/config"
	"github.com/backmassage/codecflags/internal/discover"
)

func tree(t *testing.T, script string) *config.Config {
	t.Helper()
	root := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.TreeDir = filepath.Join(root, "mplayer-trunk")
	cfg.AllowListPath = filepath.Join(root, "enabled-decoders.txt")
	cfg.HeaderPath = filepath.Join(root, "config.h")
	require.NoError(t, os.MkdirAll(cfg.FFmpegDir(), 0o755))
	if script != "" {
		require.NoError(t, os.WriteFile(filepath.Join(cfg.FFmpegDir(), "configure"), []byte(script), 0o755))
	}
	return &cfg
}

func TestRunCheck_AllPresent(t *testing.T) {
	cfg := tree(t, "echo h264 aac\n")
	require.NoError(t, os.WriteFile(cfg.AllowListPath, []byte("h264"), 0o644))
	require.True(t, RunCheck(context.Background(), cfg))
}

func TestRunCheck_MissingConfigure(t *testing.T) {
	cfg := tree(t, "")
	require.NoError(t, os.WriteFile(cfg.AllowListPath, []byte("h264"), 0o644))
	require.False(t, RunCheck(context.Background(), cfg))
}

func TestRunCheck_MissingAllowList(t *testing.T) {
	cfg := tree(t, "echo h264\n")
	require.False(t, RunCheck(context.Background(), cfg))
}

func TestRunCheck_FailingConfigure(t *testing.T) {
	cfg := tree(t, "exit 1\n")
	require.NoError(t, os.WriteFile(cfg.AllowListPath, []byte("h264"), 0o644))
	require.False(t, RunCheck(context.Background(), cfg))
}

func TestRunCheck_Header(t *testing.T) {
	cfg := tree(t, "")
	cfg.Source = config.SourceHeader
	require.NoError(t, os.WriteFile(cfg.AllowListPath, []byte(""), 0o644))
	require.False(t, RunCheck(context.Background(), cfg), "header missing")

	require.NoError(t, os.WriteFile(cfg.HeaderPath, []byte("#define CONFIG_H264_DECODER 1\n"), 0o644))
	require.True(t, RunCheck(context.Background(), cfg))
}

func TestCheckDeps(t *testing.T) {
	tests := []struct {
		name        string
		source      config.SourceMode
		shell       string
		wantMissing bool
	}{
		{"configure with sh", config.SourceConfigure, "sh", false},
		{"configure without shell", config.SourceConfigure, "no-such-shell-for-codecflags", true},
		{"header ignores shell", config.SourceHeader, "no-such-shell-for-codecflags", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			cfg.Source = tt.source
			cfg.Shell = tt.shell

			err := CheckDeps(&cfg)
			if !tt.wantMissing {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrShellNotFound)
			require.ErrorIs(t, err, exec.ErrNotFound)
			var de *discover.DiscoveryError
			require.ErrorAs(t, err, &de)
			require.Equal(t, []string{tt.shell, cfg.ConfigureScript}, de.Command)
			require.Equal(t, cfg.FFmpegDir(), de.Dir)
			require.ErrorContains(t, err, tt.shell)
		})
	}
}
