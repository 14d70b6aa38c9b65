package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/flowcal/wellobs/internal/codec"
	"github.com/flowcal/wellobs/internal/obs"
)

// VerifyOptions holds flags for the verify command.
type VerifyOptions struct {
	*RootOptions
	Base string
}

// subsetReport is the verification result for one exported subset.
type subsetReport struct {
	Subset  string   `json:"subset"`
	ErtObs  string   `json:"ert_file"`
	YamlObs string   `json:"yaml_file"`
	Equal   bool     `json:"equal"`
	Diffs   []string `json:"diffs,omitempty"`
}

// NewVerifyCommand creates the verify command, which parses the ert and
// yaml renditions of each exported subset and checks they carry identical
// information.
func NewVerifyCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &VerifyOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify that exported ert and yaml observation files are equivalent",
		Long: `Verify cross-format equivalence of a completed export.

For each subset (complete, training, test) the command parses
<base><subset>.ertobs and <base><subset>.yamlobs and compares the
recovered observation sets key by key, date by date, value by value.
Exit code 1 means the formats disagree; 2 means a file could not be read.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(opts, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Base, "base", "b", "observations", "output path stem used by the export")

	return cmd
}

func runVerify(opts *VerifyOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	ert, _ := codec.ByName("ert")
	yml, _ := codec.ByName("yaml")

	var reports []subsetReport
	failed := false
	for _, subset := range obs.Subsets {
		ertPath := fmt.Sprintf("%s%s.%s", opts.Base, subset, ert.Extension())
		yamlPath := fmt.Sprintf("%s%s.%s", opts.Base, subset, yml.Extension())

		ertSet, err := decodeFile(ert, ertPath)
		if err != nil {
			_ = formatter.Error("READ", err.Error(), nil)
			return WrapExitError(ExitCommandError, "reading observation file", err)
		}
		yamlSet, err := decodeFile(yml, yamlPath)
		if err != nil {
			_ = formatter.Error("READ", err.Error(), nil)
			return WrapExitError(ExitCommandError, "reading observation file", err)
		}

		diffs := obs.Diff(ertSet, yamlSet)
		if len(diffs) > 0 {
			failed = true
		}
		reports = append(reports, subsetReport{
			Subset:  string(subset),
			ErtObs:  ertPath,
			YamlObs: yamlPath,
			Equal:   len(diffs) == 0,
			Diffs:   diffs,
		})
	}

	if err := outputVerify(formatter, reports); err != nil {
		return err
	}
	if failed {
		return NewExitError(ExitFailure, "observation formats disagree")
	}
	return nil
}

func decodeFile(c codec.Codec, path string) (*obs.Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	set, err := c.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return set, nil
}

func outputVerify(formatter *OutputFormatter, reports []subsetReport) error {
	if formatter.Format == "json" {
		return formatter.Success(reports)
	}

	for _, r := range reports {
		if r.Equal {
			fmt.Fprintf(formatter.Writer, "✓ %s: %s ≡ %s\n", r.Subset, r.ErtObs, r.YamlObs)
			continue
		}
		fmt.Fprintf(formatter.Writer, "✗ %s: %s and %s disagree\n", r.Subset, r.ErtObs, r.YamlObs)
		for _, d := range r.Diffs {
			fmt.Fprintf(formatter.Writer, "    %s\n", d)
		}
	}
	return nil
}
