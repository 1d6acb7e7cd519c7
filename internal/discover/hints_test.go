package discover

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHint(t *testing.T) {
	tests := []struct {
		name   string
		stderr string
		want   string
	}{
		{"old configure", `Unknown option "--list-decoders".`, "try --source=header"},
		{"missing script", "sh: 0: can't open configure", "--ffmpeg-dir"},
		{"permissions", "sh: configure: Permission denied", "not readable"},
		{"unrelated", "C compiler test failed.", ""},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Hint(tt.stderr)
			if tt.want == "" {
				require.Empty(t, got)
				return
			}
			require.Contains(t, got, tt.want)
		})
	}
}

func TestDiscoveryError_IncludesHint(t *testing.T) {
	err := &DiscoveryError{
		Command: []string{"sh", "configure", "--list-decoders"},
		Dir:     "mplayer-trunk/ffmpeg",
		Stderr:  "Unknown option \"--list-decoders\".\nSee ./configure --help\n",
		Err:     errors.New("exit status 1"),
	}
	require.Contains(t, err.Error(), "sh configure --list-decoders (in mplayer-trunk/ffmpeg): exit status 1")
	require.Contains(t, err.Error(), "hint:")
}
