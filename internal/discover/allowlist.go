package discover

import (
	"context"
	"fmt"
	"io"

	"github.com/facebookincubator/go-belt/tool/logger"

	"github.com/backmassage/codecflags/internal/codec"
)

// LoadAllowList reads the decoder allow-list at path. A missing file is an
// error matching ErrMissingArtifact, never an empty allow-list.
func LoadAllowList(ctx context.Context, path string) (*codec.Set, error) {
	f, err := openFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	set, err := ParseAllowList(ctx, f, path)
	if err != nil {
		return nil, fmt.Errorf("read allow-list %s: %w", path, err)
	}
	logger.Debugf(ctx, "allow-list %s: %d decoders", path, set.Len())
	return set, nil
}

// ParseAllowList parses whitespace-separated decoder names from r. origin
// names the source in log messages.
func ParseAllowList(ctx context.Context, r io.Reader, origin string) (*codec.Set, error) {
	return readTokens(ctx, r, origin)
}
