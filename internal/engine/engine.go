// Package engine drives the resolve-then-rename pipeline over a root path.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/bianoble/restamp/internal/rename"
	"github.com/bianoble/restamp/internal/resolve"
	"github.com/bianoble/restamp/internal/scan"
)

// ErrInvalidRoot marks a root path that does not exist or is neither a
// regular file nor a directory. Only the top-level caller maps it to an
// exit status; the engine never terminates the process itself.
var ErrInvalidRoot = errors.New("invalid root path")

// Engine runs the pipeline: enumerate files, resolve a date for each,
// and rename (or plan the rename) one file at a time.
type Engine struct {
	Resolver  resolve.Resolver
	Formatter *resolve.Formatter
	Log       *slog.Logger
}

// Options configures a run.
type Options struct {
	// Write performs renames. When false the run is a dry run: nothing
	// is touched and computed destinations are reported instead.
	Write bool
}

// Run processes every file under root. Per-file failures are recorded
// in the result and never abort the remaining queue; files renamed
// before a failure stay renamed.
func (e *Engine) Run(ctx context.Context, root string, opts Options) (*Result, error) {
	root = filepath.Clean(root)

	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidRoot, root)
	}

	var files []string
	switch {
	case info.Mode().IsRegular():
		files = []string{root}
	case info.IsDir():
		files, err = scan.Discover(root)
		if err != nil {
			return nil, fmt.Errorf("walking %s: %w", root, err)
		}
	default:
		return nil, fmt.Errorf("%w: %s is neither a file nor a directory", ErrInvalidRoot, root)
	}

	result := &Result{}
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		if strings.HasPrefix(filepath.Base(path), ".") {
			result.Skipped = append(result.Skipped, FileOutcome{Path: path, Action: ActionHidden})
			continue
		}

		t, ok := e.Resolver.Resolve(path)
		if !ok {
			e.Log.Debug("no date resolvable", "path", path)
			result.Skipped = append(result.Skipped, FileOutcome{Path: path, Action: ActionNoDate})
			continue
		}
		stamp := e.Formatter.Format(t)

		dest, err := rename.Commit(path, stamp, !opts.Write)
		if err != nil {
			e.Log.Debug("rename failed", "path", path, "error", err)
			result.Errors = append(result.Errors, FileError{Path: path, Err: err})
			continue
		}

		out := FileOutcome{Path: path, Dest: dest, Stamp: stamp, Action: ActionPlanned}
		if opts.Write {
			out.Action = ActionRenamed
			e.Log.Debug("renamed", "from", path, "to", dest)
			result.Renamed = append(result.Renamed, out)
		} else {
			result.Planned = append(result.Planned, out)
		}
	}
	return result, nil
}
