package discover

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/backmassage/codecflags/internal/codec"
	"github.com/backmassage/codecflags/internal/config"
)

func TestNewSource(t *testing.T) {
	cfg := config.DefaultConfig()
	src, err := NewSource(&cfg)
	require.NoError(t, err)
	require.IsType(t, &ConfigureSource{}, src)

	cfg.Source = config.SourceHeader
	src, err = NewSource(&cfg)
	require.NoError(t, err)
	require.IsType(t, &HeaderSource{}, src)
	require.Contains(t, src.String(), "config.h")

	cfg.Source = "bogus"
	_, err = NewSource(&cfg)
	require.Error(t, err)
}

func TestAcquire_Configure(t *testing.T) {
	cfg := writeTree(t, fakeConfigure)
	writeFile(t, cfg.AllowListPath, "h264 aac vorbis theora")

	src, err := NewSource(cfg)
	require.NoError(t, err)
	in, err := Acquire(testCtx(), cfg, src)
	require.NoError(t, err)
	require.Equal(t, 5, in.Decoders.Len())
	require.Equal(t, 3, in.Encoders.Len())
	require.True(t, in.Wanted.Has(codec.Name("theora")))
}

func TestAcquire_Header(t *testing.T) {
	cfg := writeTree(t, fakeConfigure)
	cfg.Source = config.SourceHeader
	writeFile(t, cfg.AllowListPath, "h264")
	writeFile(t, cfg.HeaderPath, sampleHeader)

	src, err := NewSource(cfg)
	require.NoError(t, err)
	in, err := Acquire(testCtx(), cfg, src)
	require.NoError(t, err)
	require.Equal(t, []string{"aac", "mpeg4"}, in.Encoders.Strings())
}

func TestAcquire_MissingAllowListFailsFirst(t *testing.T) {
	cfg := writeTree(t, "echo called >&2\nexit 1\n")

	src, err := NewSource(cfg)
	require.NoError(t, err)
	_, err = Acquire(testCtx(), cfg, src)
	require.ErrorIs(t, err, ErrMissingArtifact)
}

func TestAcquire_DiscoveryFailureWrapped(t *testing.T) {
	cfg := writeTree(t, "echo 'no compiler' >&2\nexit 1\n")
	writeFile(t, cfg.AllowListPath, "h264")

	src, err := NewSource(cfg)
	require.NoError(t, err)
	_, err = Acquire(testCtx(), cfg, src)
	var de *DiscoveryError
	require.ErrorAs(t, err, &de)
	require.Contains(t, err.Error(), "list decoders")
}

func TestHeaderSource_EmptyClass(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		wantDec bool
		wantEnc bool
	}{
		{"both classes", "#define CONFIG_H264_DECODER 1\n#define CONFIG_MP2_ENCODER 1\n", true, true},
		{"decoders only", "#define CONFIG_H264_DECODER 1\n", true, false},
		{"encoders only", "#define CONFIG_MP2_ENCODER 1\n", false, true},
		{"no definitions", "/* nothing */\n", false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.h")
			writeFile(t, path, tt.header)
			src := &HeaderSource{Path: path}

			for class, want := range map[codec.Class]bool{codec.Decoder: tt.wantDec, codec.Encoder: tt.wantEnc} {
				set, err := src.Codecs(testCtx(), class)
				if want {
					require.NoError(t, err)
					require.Equal(t, 1, set.Len())
					continue
				}
				require.ErrorIs(t, err, ErrEmptyListing)
				require.ErrorContains(t, err, class.Plural())
			}
		})
	}
}

func TestAcquire_HeaderWithoutEncoders(t *testing.T) {
	cfg := writeTree(t, fakeConfigure)
	cfg.Source = config.SourceHeader
	writeFile(t, cfg.AllowListPath, "h264")
	writeFile(t, cfg.HeaderPath, "#define CONFIG_H264_DECODER 1\n")

	src, err := NewSource(cfg)
	require.NoError(t, err)
	_, err = Acquire(testCtx(), cfg, src)
	require.ErrorIs(t, err, ErrEmptyListing)
	require.ErrorContains(t, err, "list encoders")
}
