package discover

import (
	"fmt"
	"os"
)

// EnsureDir fails with an *ArtifactError unless path is an existing directory.
func EnsureDir(path string) error {
	fi, err := os.Stat(path)
	if err != nil {
		return &ArtifactError{Kind: KindDirectory, Path: path, Err: err}
	}
	if !fi.IsDir() {
		return &ArtifactError{Kind: KindDirectory, Path: path, Err: fmt.Errorf("not a directory")}
	}
	return nil
}

// EnsureFile fails with an *ArtifactError unless path is an existing
// non-directory.
func EnsureFile(path string) error {
	fi, err := os.Stat(path)
	if err != nil {
		return &ArtifactError{Kind: KindFile, Path: path, Err: err}
	}
	if fi.IsDir() {
		return &ArtifactError{Kind: KindFile, Path: path, Err: fmt.Errorf("is a directory")}
	}
	return nil
}

// openFile opens path for reading, mapping a missing file to an
// *ArtifactError.
func openFile(path string) (*os.File, error) {
	if err := EnsureFile(path); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, &ArtifactError{Kind: KindFile, Path: path, Err: err}
	}
	return f, nil
}
