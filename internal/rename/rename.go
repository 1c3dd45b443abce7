// Package rename computes collision-free destination names and performs
// the actual rename.
package rename

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// maxCandidates bounds the collision counter so a directory
// pre-populated with every counter value cannot spin the loop forever.
const maxCandidates = 10000

// ErrTooManyCollisions is returned when no free candidate name exists
// within maxCandidates attempts.
var ErrTooManyCollisions = errors.New("too many name collisions")

// Commit renames original to "{stamp}.{ext}" in its own directory,
// where ext is the original extension lower-cased (empty if none).
// When that name is taken by a different file, "-1", "-2", … suffixes
// are tried against the live filesystem until a free slot is found.
// Renaming a file to its current name is a valid no-op, so an already
// conforming file is left where it is instead of incrementing forever.
//
// With dryRun set, nothing is touched; the computed destination is
// returned so the caller can report it. Exactly one rename syscall
// happens otherwise. The returned path is the final destination.
func Commit(original, stamp string, dryRun bool) (string, error) {
	dir := filepath.Dir(original)
	if dir == original {
		// original is a filesystem root; nothing to rename it within.
		return original, nil
	}

	dest, err := destination(dir, original, stamp)
	if err != nil {
		return "", err
	}
	if dryRun {
		return dest, nil
	}
	if err := os.Rename(original, dest); err != nil {
		return "", err
	}
	return dest, nil
}

func destination(dir, original, stamp string) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(original), "."))

	dest := filepath.Join(dir, stamp+"."+ext)
	for counter := 1; ; counter++ {
		if dest == original {
			return dest, nil
		}
		if _, err := os.Lstat(dest); errors.Is(err, fs.ErrNotExist) {
			return dest, nil
		}
		if counter > maxCandidates {
			return "", fmt.Errorf("%w: no free name for %s after %d candidates",
				ErrTooManyCollisions, original, maxCandidates)
		}
		dest = filepath.Join(dir, fmt.Sprintf("%s-%d.%s", stamp, counter, ext))
	}
}
