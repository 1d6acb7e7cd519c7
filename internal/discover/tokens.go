package discover

import (
	"bufio"
	"context"
	"io"
	"strings"

	"github.com/facebookincubator/go-belt/tool/logger"

	"github.com/backmassage/codecflags/internal/codec"
)

// maxLineSize bounds a single line of any scanned input. Generated headers
// carry the whole configure command line in one #define.
const maxLineSize = 16 << 20

// readTokens collects whitespace-separated codec names from r into a set.
// A '#' starts a comment running to the end of the line. Tokens that are
// not shell-safe are logged and skipped.
func readTokens(ctx context.Context, r io.Reader, origin string) (*codec.Set, error) {
	set := codec.NewSet()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		for _, field := range strings.Fields(line) {
			addName(ctx, set, codec.Normalize(field), origin)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return set, nil
}

func addName(ctx context.Context, set *codec.Set, n codec.Name, origin string) {
	if !n.ShellSafe() {
		logger.Warnf(ctx, "%s: skipping %q: not a valid codec name", origin, n)
		return
	}
	set.Add(n)
}
