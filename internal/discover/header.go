package discover

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/facebookincubator/go-belt/tool/logger"

	"github.com/backmassage/codecflags/internal/codec"
)

const (
	defineDirective = "#define"
	configPrefix    = "CONFIG_"
)

// HeaderCodecs holds the codecs declared by a generated config.h.
type HeaderCodecs struct {
	Decoders *codec.Set
	Encoders *codec.Set
}

// Get returns the set for class.
func (h *HeaderCodecs) Get(class codec.Class) *codec.Set {
	if class == codec.Encoder {
		return h.Encoders
	}
	return h.Decoders
}

// ScanHeaderFile scans the config header at path. A header without codec
// definitions is not an error here; [HeaderSource] rejects empty classes.
func ScanHeaderFile(ctx context.Context, path string) (*HeaderCodecs, error) {
	f, err := openFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	h, err := ScanHeader(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", path, err)
	}
	logger.Debugf(ctx, "header %s: %d decoders, %d encoders", path, h.Decoders.Len(), h.Encoders.Len())
	return h, nil
}

// ScanHeader collects decoders and encoders from lines of the form
//
//	#define CONFIG_<NAME>_DECODER <value>
//
// in a single pass. The codec is the text between CONFIG_ and the first
// class suffix, lowercased; the value is not inspected, so components the
// build turned off still count as known. Definitions yielding an empty name
// are skipped.
func ScanHeader(ctx context.Context, r io.Reader) (*HeaderCodecs, error) {
	h := &HeaderCodecs{Decoders: codec.NewSet(), Encoders: codec.NewSet()}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		macro, ok := configMacro(scanner.Text())
		if !ok {
			continue
		}
		for _, class := range []codec.Class{codec.Decoder, codec.Encoder} {
			idx := strings.Index(macro, class.HeaderSuffix())
			if idx < 0 {
				continue
			}
			name := codec.Normalize(macro[:idx])
			if name == "" {
				logger.Debugf(ctx, "config header line %d: empty %s name, skipping", lineNo, class)
				continue
			}
			addName(ctx, h.Get(class), name, fmt.Sprintf("config header line %d", lineNo))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return h, nil
}

// configMacro returns the macro name after CONFIG_ when line is a
// "#define CONFIG_..." directive.
func configMacro(line string) (string, bool) {
	fields := strings.Fields(line)
	if len(fields) < 2 || fields[0] != defineDirective {
		return "", false
	}
	if !strings.HasPrefix(fields[1], configPrefix) {
		return "", false
	}
	return strings.TrimPrefix(fields[1], configPrefix), true
}
