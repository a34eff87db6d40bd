// Package resolver locates the log file to verify, falling back to rotated
// files that share the requested path as a prefix.
package resolver

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// ErrNotFound indicates neither the literal path nor any rotated candidate exists.
var ErrNotFound = errors.New("log file not found")

// Resolution describes the outcome of resolving a log file path.
type Resolution struct {
	// Path is the usable file path.
	Path string

	// Fallback is true when Path differs from the requested path, i.e. a
	// rotated file was selected by prefix match.
	Fallback bool
}

// Resolve returns a usable file path for the given one.
//
// If path exists as a regular file it is returned unchanged. Otherwise all
// files matching <path>.* are considered and the most recently modified one
// wins (rotation suffixes are opaque; a rotated file is never written again
// once its successor exists, so newest modification identifies the newest
// rotation). If nothing matches, ErrNotFound is returned.
func Resolve(path string) (*Resolution, error) {
	if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
		return &Resolution{Path: path}, nil
	}

	matches, err := filepath.Glob(path + ".*")
	if err != nil {
		return nil, fmt.Errorf("invalid path %q: %w", path, err)
	}

	var (
		newest     string
		newestTime time.Time
	)
	for _, candidate := range matches {
		info, err := os.Stat(candidate)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		if newest == "" || info.ModTime().After(newestTime) {
			newest = candidate
			newestTime = info.ModTime()
		}
	}

	if newest == "" {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}

	return &Resolution{Path: newest, Fallback: true}, nil
}
