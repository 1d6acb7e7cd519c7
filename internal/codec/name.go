package codec

import (
	"fmt"
	"strings"
)

// Name is a normalized (lowercase, trimmed) codec identifier such as
// "h264" or "pcm_s16le".
type Name string

// Normalize trims surrounding whitespace and lowercases s.
func Normalize(s string) Name {
	return Name(strings.ToLower(strings.TrimSpace(s)))
}

// ShellSafe reports whether n is non-empty and made only of [a-z0-9_],
// which is what ffmpeg uses for component names. Anything else could not
// be interpolated into a shell command line unquoted.
func (n Name) ShellSafe() bool {
	if n == "" {
		return false
	}
	for _, r := range n {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= '0' && r <= '9':
		case r == '_':
		default:
			return false
		}
	}
	return true
}

// Class is the kind of codec component a flag refers to.
type Class int

const (
	Decoder Class = iota
	Encoder
)

// String returns the singular form used in flags: "decoder" or "encoder".
func (c Class) String() string {
	switch c {
	case Decoder:
		return "decoder"
	case Encoder:
		return "encoder"
	default:
		return fmt.Sprintf("Class(%d)", int(c))
	}
}

// Plural returns the form used by configure (--list-decoders) and the
// config header.
func (c Class) Plural() string {
	return c.String() + "s"
}

// HeaderSuffix is the macro name fragment marking a component of this
// class in a generated config.h, e.g. "_DECODER" in CONFIG_H264_DECODER.
func (c Class) HeaderSuffix() string {
	return "_" + strings.ToUpper(c.String())
}
