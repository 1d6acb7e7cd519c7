package discover

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissingArtifact is the sentinel matched (via errors.Is) by every
// missing-input error.
var ErrMissingArtifact = errors.New("missing artifact")

// ArtifactKind names what was expected at a path.
type ArtifactKind string

const (
	KindDirectory ArtifactKind = "directory"
	KindFile      ArtifactKind = "file"
)

// ArtifactError reports a required input that is absent or of the wrong kind.
type ArtifactError struct {
	Kind ArtifactKind
	Path string
	Err  error
}

func (e *ArtifactError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("required %s %q is not available: %v", e.Kind, e.Path, e.Err)
	}
	return fmt.Sprintf("required %s %q is not available", e.Kind, e.Path)
}

// Is makes errors.Is(err, ErrMissingArtifact) true for every ArtifactError.
func (e *ArtifactError) Is(target error) bool {
	return target == ErrMissingArtifact
}

func (e *ArtifactError) Unwrap() error {
	return e.Err
}

// DiscoveryError reports a configure invocation that could not start or
// exited with a non-zero status.
type DiscoveryError struct {
	Command []string
	Dir     string
	Stderr  string
	Err     error
}

func (e *DiscoveryError) Error() string {
	msg := fmt.Sprintf("%s (in %s): %v", strings.Join(e.Command, " "), e.Dir, e.Err)
	if s := strings.TrimSpace(e.Stderr); s != "" {
		msg += ": " + s
	}
	if h := Hint(e.Stderr); h != "" {
		msg += " (hint: " + h + ")"
	}
	return msg
}

func (e *DiscoveryError) Unwrap() error {
	return e.Err
}
