package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bianoble/restamp/internal/engine"
	"github.com/bianoble/restamp/internal/logging"
	"github.com/bianoble/restamp/internal/resolve"
)

// Build-time variables set via -ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Flags.
var (
	configPath   string
	exifOnly     bool
	modifiedOnly bool
	dateFormat   string
	verbose      bool
	write        bool
)

var rootCmd = &cobra.Command{
	Use:   "restamp <path>",
	Short: "Rename files using their capture date or modification time",
	Long: `restamp renames a file, or every file under a directory, to a
timestamp-based name. The timestamp comes from embedded capture
metadata (EXIF, or the movie header of mp4-family containers) when
available, falling back to the filesystem modification time.

Without --write nothing is touched; the computed destinations are
reported instead.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd.Flags().Changed("config"))
		if err != nil {
			return err
		}

		mode, err := pickMode(exifOnly, modifiedOnly, cfg.Mode)
		if err != nil {
			return err
		}

		format := cfg.Format
		if cmd.Flags().Changed("format") {
			format = dateFormat
		}
		formatter, err := resolve.NewFormatter(format)
		if err != nil {
			return err
		}

		if verbose {
			cfg.Logger.Level = "debug"
		}
		logger := logging.New(cfg.Logger)

		logger.Debug("run configured",
			"path", args[0], "mode", mode.String(), "format", format,
			"write", write, "verbose", verbose)

		eng := &engine.Engine{
			Resolver:  resolve.ForMode(mode),
			Formatter: formatter,
			Log:       logger,
		}

		result, err := eng.Run(cmd.Context(), args[0], engine.Options{Write: write})
		if err != nil {
			return err
		}

		report(result)
		if len(result.Errors) > 0 {
			return fmt.Errorf("%d file(s) failed", len(result.Errors))
		}
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("restamp %s\n", version)
		fmt.Printf("  commit:  %s\n", commit)
		fmt.Printf("  built:   %s\n", date)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "restamp.yaml", "path to config file")
	rootCmd.Flags().BoolVarP(&exifOnly, "exif", "e", false, "only use embedded metadata dates (cannot be used with --modified)")
	rootCmd.Flags().BoolVarP(&modifiedOnly, "modified", "m", false, "only use the modification date (cannot be used with --exif)")
	rootCmd.Flags().StringVarP(&dateFormat, "format", "f", resolve.DefaultFormat, "strftime date format for new names")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "report every processed file")
	rootCmd.Flags().BoolVarP(&write, "write", "w", false, "rename files (default is a dry run)")
	rootCmd.MarkFlagsMutuallyExclusive("exif", "modified")

	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return err
	}
	return nil
}
