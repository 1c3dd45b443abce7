package cmd

import (
	"fmt"
	"os"

	"github.com/bianoble/restamp/internal/config"
	"github.com/bianoble/restamp/internal/engine"
	"github.com/bianoble/restamp/internal/resolve"
)

// loadConfig reads the optional config file; a missing file yields the
// built-in defaults. When the path was set explicitly on the command
// line, a missing file is an error rather than silently ignored.
func loadConfig(explicit bool) (*config.Config, error) {
	if explicit {
		if _, err := os.Stat(configPath); err != nil {
			return nil, fmt.Errorf("config file %s: %w", configPath, err)
		}
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// pickMode collapses the mutually exclusive source flags and the config
// value into one mode. Flags win over config.
func pickMode(exifOnly, modifiedOnly bool, cfgMode string) (resolve.Mode, error) {
	switch {
	case exifOnly:
		return resolve.ModeMetadata, nil
	case modifiedOnly:
		return resolve.ModeModified, nil
	}
	return resolve.ParseMode(cfgMode)
}

// report prints the run outcome. Per-file lines appear in verbose mode;
// errors and the summary always print.
func report(result *engine.Result) {
	for _, f := range result.Renamed {
		detail("renamed  %s  ->  %s", f.Path, f.Dest)
	}
	for _, f := range result.Planned {
		detail("would rename  %s  ->  %s", f.Path, f.Dest)
	}
	for _, f := range result.Skipped {
		detail("skipped  %s  (%s)", f.Path, f.Action)
	}
	for _, e := range result.Errors {
		errorf("renaming %s: %s", e.Path, e.Err)
	}

	if len(result.Planned) > 0 {
		info("Dry run — no files renamed. Re-run with --write to apply.")
	}
	info("%d renamed, %d planned, %d skipped, %d errors.",
		len(result.Renamed), len(result.Planned), len(result.Skipped), len(result.Errors))
}

// info prints a line to stdout.
func info(format string, args ...any) {
	fmt.Printf(format+"\n", args...)
}

// detail prints a line only in verbose mode.
func detail(format string, args ...any) {
	if verbose {
		fmt.Printf("  "+format+"\n", args...)
	}
}

// errorf prints an error message to stderr.
func errorf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
}
