package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/flowcal/wellobs/internal/history"
	"github.com/flowcal/wellobs/internal/resample"
)

// AnchorsOptions holds flags for the anchors command.
type AnchorsOptions struct {
	*RootOptions
	CSV        string
	StartDate  string
	Resampling string
}

// NewAnchorsCommand creates the anchors command, which prints the anchor
// date sequence a given schedule and policy would sample at. Useful for
// checking a resampling policy before running a full export.
func NewAnchorsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &AnchorsOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:           "anchors",
		Short:         "Print the resampled anchor dates for a schedule",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnchors(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.CSV, "csv", "", "production data CSV input (required)")
	cmd.Flags().StringVar(&opts.StartDate, "start-date", "", "drop CSV rows before this date (YYYY-MM-DD)")
	cmd.Flags().StringVarP(&opts.Resampling, "resampling", "r", "none", "resampling policy (none, monthly, quarterly, annual)")
	_ = cmd.MarkFlagRequired("csv")

	return cmd
}

func runAnchors(opts *AnchorsOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	policy, err := resample.ParsePolicy(opts.Resampling)
	if err != nil {
		_ = formatter.Error("POLICY", err.Error(), nil)
		return WrapExitError(ExitCommandError, "parsing policy", err)
	}

	var start time.Time
	if opts.StartDate != "" {
		start, err = time.ParseInLocation("2006-01-02", opts.StartDate, time.UTC)
		if err != nil {
			_ = formatter.Error("INPUT", err.Error(), nil)
			return WrapExitError(ExitCommandError, "invalid --start-date", err)
		}
	}

	sched, err := history.LoadCSV(opts.CSV, start)
	if err != nil {
		_ = formatter.Error("INPUT", err.Error(), nil)
		return WrapExitError(ExitCommandError, "loading schedule", err)
	}

	anchors, err := resample.Dates(sched, policy)
	if err != nil {
		_ = formatter.Error("RESAMPLE", err.Error(), nil)
		return WrapExitError(ExitCommandError, "resampling failed", err)
	}

	if formatter.Format == "json" {
		dates := make([]string, len(anchors))
		for i, d := range anchors {
			dates[i] = d.Format("2006-01-02")
		}
		return formatter.Success(map[string]interface{}{
			"policy":  string(policy),
			"anchors": dates,
		})
	}

	fmt.Fprintf(formatter.Writer, "%d anchor date(s) under policy %s:\n", len(anchors), policy)
	for _, d := range anchors {
		fmt.Fprintln(formatter.Writer, d.Format("2006-01-02"))
	}
	return nil
}
