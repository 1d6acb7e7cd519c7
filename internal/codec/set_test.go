package codec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want Name
	}{
		{"h264", "h264"},
		{"  H264\n", "h264"},
		{"PCM_S16LE", "pcm_s16le"},
		{"\t", ""},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, Normalize(tt.in), "Normalize(%q)", tt.in)
	}
}

func TestName_ShellSafe(t *testing.T) {
	require.True(t, Name("pcm_s16le").ShellSafe())
	require.True(t, Name("h264").ShellSafe())
	require.False(t, Name("").ShellSafe())
	require.False(t, Name("a;rm").ShellSafe())
	require.False(t, Name("x-y").ShellSafe())
	require.False(t, Name("$(id)").ShellSafe())
}

func TestClass(t *testing.T) {
	require.Equal(t, "decoder", Decoder.String())
	require.Equal(t, "encoders", Encoder.Plural())
	require.Equal(t, "_DECODER", Decoder.HeaderSuffix())
	require.Equal(t, "_ENCODER", Encoder.HeaderSuffix())
}

func TestSet_AddKeepsFirstPosition(t *testing.T) {
	s := NewSet("b", "a", "B", "", "c", "a")
	require.Equal(t, []Name{"b", "a", "c"}, s.Names())
	require.Equal(t, 3, s.Len())
	require.False(t, s.Add(""))
	require.False(t, s.Add("c"))
	require.True(t, s.Add("d"))
	require.Equal(t, []string{"b", "a", "c", "d"}, s.Strings())
}

func TestSet_ZeroAndNil(t *testing.T) {
	var zero Set
	require.True(t, zero.Add("h264"))
	require.True(t, zero.Has("h264"))

	var nilSet *Set
	require.False(t, nilSet.Has("h264"))
	require.Zero(t, nilSet.Len())
	require.Nil(t, nilSet.Names())
	require.Zero(t, nilSet.Intersect(NewSet("a")).Len())
}

func TestSet_NamesIsACopy(t *testing.T) {
	s := NewSet("a", "b")
	got := s.Names()
	got[0] = "z"
	require.Equal(t, []Name{"a", "b"}, s.Names())
}

func TestSet_IntersectDifference(t *testing.T) {
	a := NewSet("h264", "aac", "mp2", "flac")
	b := NewSet("flac", "h264", "vorbis")
	require.Equal(t, []Name{"h264", "flac"}, a.Intersect(b).Names())
	require.Equal(t, []Name{"aac", "mp2"}, a.Difference(b).Names())
	require.Equal(t, []Name{"vorbis"}, b.Difference(a).Names())
}

func TestFlag(t *testing.T) {
	require.Equal(t, "--enable-decoder=h264", Flag(ActionEnable, Decoder, "h264"))
	require.Equal(t, "--disable-encoder=aac", Flag(ActionDisable, Encoder, "aac"))
}
