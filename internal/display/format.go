package display

import (
	"fmt"
	"strings"

	"github.com/backmassage/codecflags/internal/codec"
)

// FormatCount returns "1 decoder" / "3 decoders".
func FormatCount(n int, class codec.Class) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, class)
	}
	return fmt.Sprintf("%d %s", n, class.Plural())
}

// FormatNames joins names with ", " and truncates after limit entries
// (limit <= 0 means no limit), e.g. "a, b, c (+4 more)".
func FormatNames(names []codec.Name, limit int) string {
	if len(names) == 0 {
		return "none"
	}
	shown := names
	if limit > 0 && len(names) > limit {
		shown = names[:limit]
	}
	parts := make([]string, len(shown))
	for i, n := range shown {
		parts[i] = string(n)
	}
	out := strings.Join(parts, ", ")
	if rest := len(names) - len(shown); rest > 0 {
		out += fmt.Sprintf(" (+%d more)", rest)
	}
	return out
}
