package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/flowcal/wellobs/internal/codec"
	"github.com/flowcal/wellobs/internal/config"
	"github.com/flowcal/wellobs/internal/export"
	"github.com/flowcal/wellobs/internal/history"
	"github.com/flowcal/wellobs/internal/schedule"
	"github.com/flowcal/wellobs/internal/store"
)

// ExportOptions holds flags for the export command.
type ExportOptions struct {
	*RootOptions
	Config    string
	CSV       string
	Database  string
	StartDate string
	Out       string
	Formats   []string
}

// NewExportCommand creates the export command.
func NewExportCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ExportOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export observation files from well history",
		Long: `Export observation files from a well history schedule.

The schedule is read from a production data CSV (--csv) or a previously
saved schedule database (--db). Three observation subsets (complete,
training, test) are written per requested format, named
<out>_complete.<ext>, <out>_training.<ext> and <out>_test.<ext>.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(opts, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Config, "config", "c", "", "run configuration file (required)")
	cmd.Flags().StringVar(&opts.CSV, "csv", "", "production data CSV input")
	cmd.Flags().StringVar(&opts.Database, "db", "", "schedule database input")
	cmd.Flags().StringVar(&opts.StartDate, "start-date", "", "drop CSV rows before this date (YYYY-MM-DD)")
	cmd.Flags().StringVarP(&opts.Out, "out", "o", "observations", "output path stem")
	cmd.Flags().StringSliceVar(&opts.Formats, "obs-format", []string{"ert", "yaml"}, "observation formats to write (ert, yaml)")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}

func runExport(opts *ExportOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	cfg, err := config.Load(opts.Config)
	if err != nil {
		_ = formatter.Error("CONFIG", err.Error(), nil)
		return WrapExitError(ExitCommandError, "loading config", err)
	}

	sched, err := loadSchedule(opts)
	if err != nil {
		_ = formatter.Error("INPUT", err.Error(), nil)
		return WrapExitError(ExitCommandError, "loading schedule", err)
	}
	formatter.VerboseLog("Loaded %d event(s) for %d well(s)", sched.Len(), len(sched.Wells()))

	codecs, err := resolveCodecs(opts.Formats)
	if err != nil {
		_ = formatter.Error("FORMAT", err.Error(), nil)
		return WrapExitError(ExitCommandError, "resolving formats", err)
	}

	result, err := export.Run(sched, export.Options{
		Vectors:          cfg.Vectors,
		TrainingFraction: cfg.TrainingFraction,
		Policy:           cfg.Policy,
		Codecs:           codecs,
		BasePath:         opts.Out,
	})
	if err != nil {
		_ = formatter.Error("EXPORT", err.Error(), nil)
		return WrapExitError(ExitCommandError, "export failed", err)
	}

	return outputExportSuccess(formatter, result)
}

// loadSchedule reads the schedule from whichever input flag was given.
func loadSchedule(opts *ExportOptions) (*schedule.Schedule, error) {
	switch {
	case opts.CSV != "" && opts.Database != "":
		return nil, fmt.Errorf("--csv and --db are mutually exclusive")
	case opts.CSV != "":
		var start time.Time
		if opts.StartDate != "" {
			var err error
			start, err = time.ParseInLocation("2006-01-02", opts.StartDate, time.UTC)
			if err != nil {
				return nil, fmt.Errorf("invalid --start-date: %w", err)
			}
		}
		return history.LoadCSV(opts.CSV, start)
	case opts.Database != "":
		db, err := store.Open(opts.Database)
		if err != nil {
			return nil, err
		}
		defer db.Close()
		return db.LoadSchedule(context.Background())
	default:
		return nil, fmt.Errorf("one of --csv or --db is required")
	}
}

// resolveCodecs maps format names to codecs, rejecting unknown names and
// duplicates.
func resolveCodecs(names []string) ([]codec.Codec, error) {
	seen := make(map[string]bool, len(names))
	var codecs []codec.Codec
	for _, name := range names {
		if seen[name] {
			continue
		}
		seen[name] = true
		c, ok := codec.ByName(name)
		if !ok {
			return nil, fmt.Errorf("unknown observation format %q (want ert or yaml)", name)
		}
		codecs = append(codecs, c)
	}
	return codecs, nil
}

func outputExportSuccess(formatter *OutputFormatter, result *export.Result) error {
	if formatter.Format == "json" {
		return formatter.Success(result)
	}

	fmt.Fprintf(formatter.Writer, "✓ Exported %d observation(s) over %d anchor date(s)\n\n",
		result.Observations, len(result.Anchors))
	for _, f := range result.Files {
		fmt.Fprintf(formatter.Writer, "  %s (%s, %d entries)\n", f.Path, f.Format, f.Entries)
	}
	return nil
}
