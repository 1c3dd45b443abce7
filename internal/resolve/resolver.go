// Package resolve determines the timestamp a file should be renamed after.
//
// Resolvers are tried in a fixed order depending on the run mode: embedded
// capture metadata (EXIF, then ISO-BMFF movie headers) is treated as higher
// fidelity than the filesystem modification time, which reflects the last
// write and is routinely clobbered by copy and transfer operations.
package resolve

import (
	"fmt"
	"time"
)

// Resolver extracts a timestamp for path. The second return value is false
// when no timestamp could be determined; that is a normal outcome for files
// without usable metadata, never an error.
type Resolver interface {
	Resolve(path string) (time.Time, bool)
}

// Chain tries each resolver in order and returns the first present result.
type Chain []Resolver

func (c Chain) Resolve(path string) (time.Time, bool) {
	for _, r := range c {
		if t, ok := r.Resolve(path); ok {
			return t, true
		}
	}
	return time.Time{}, false
}

// Mode selects which resolvers participate in a run.
type Mode int

const (
	// ModeAuto prefers embedded metadata and falls back to the
	// modification time.
	ModeAuto Mode = iota
	// ModeMetadata uses embedded metadata only.
	ModeMetadata
	// ModeModified uses the filesystem modification time only.
	ModeModified
)

func (m Mode) String() string {
	switch m {
	case ModeMetadata:
		return "exif"
	case ModeModified:
		return "modified"
	default:
		return "auto"
	}
}

// ParseMode maps a config value to a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "auto":
		return ModeAuto, nil
	case "exif":
		return ModeMetadata, nil
	case "modified":
		return ModeModified, nil
	}
	return ModeAuto, fmt.Errorf("unknown resolution mode %q (want auto, exif, or modified)", s)
}

// ForMode builds the resolver chain for a mode.
func ForMode(m Mode) Resolver {
	switch m {
	case ModeMetadata:
		return Chain{ExifResolver{}, MvhdResolver{}}
	case ModeModified:
		return Chain{ModTimeResolver{}}
	default:
		return Chain{ExifResolver{}, MvhdResolver{}, ModTimeResolver{}}
	}
}
