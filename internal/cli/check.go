package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/cnfstat/internal/profile"
	"github.com/roach88/cnfstat/internal/report"
)

// CheckOptions holds flags for the check command.
type CheckOptions struct {
	*RootOptions
	Profile string
}

// CheckResult is the payload of a passing check.
type CheckResult struct {
	Profile string         `json:"profile" yaml:"profile"`
	Summary report.Summary `json:"summary" yaml:"summary"`
}

// String renders the summary line for text output.
func (r CheckResult) String() string {
	return r.Summary.String()
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CheckOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "check --profile <profile.cue> [file]",
		Short: "Validate a CNF file and check its summary against a CUE profile",
		Long: `Validate a CNF file, then unify its summary with a CUE profile.

The profile constrains the fields variables, clauses, min_width, max_width
and widths (a list of {width, count}). A 3-SAT profile without unit clauses:

  min_width: >=2
  max_width: <=3

Exit code 1 when the input is invalid or a constraint fails, 2 when the
profile itself cannot be loaded.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(opts, args, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Profile, "profile", "", "path to CUE profile (required)")
	_ = cmd.MarkFlagRequired("profile")

	return cmd
}

func runCheck(opts *CheckOptions, args []string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	// Load the profile first so a broken profile never reads the input.
	prof, err := profile.Load(opts.Profile)
	if err != nil {
		_ = formatter.Error(ErrCodeProfileInvalid, err.Error(), nil)
		return WrapExitError(ExitCommandError, ErrCodeProfileInvalid, err)
	}

	sum, source, err := analyzeInput(args, cmd)
	if err != nil {
		return outputAnalyzeError(formatter, err)
	}

	violations := prof.Check(sum)
	if len(violations) > 0 {
		return outputViolations(formatter, prof.Name, violations)
	}

	if err := recordRun(cmd.Context(), opts.RootOptions, formatter, source, sum); err != nil {
		return err
	}

	return formatter.Success(CheckResult{Profile: prof.Name, Summary: sum})
}

// outputViolations reports failed profile constraints on ErrWriter.
func outputViolations(formatter *OutputFormatter, name string, violations []profile.Violation) error {
	message := fmt.Sprintf("Summary violates profile '%s' (%d constraint(s) failed).", name, len(violations))
	w := formatter.GetErrWriter()

	switch formatter.Format {
	case "json":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(CLIResponse{
			Status: "error",
			Error:  &CLIError{Code: ErrCodeProfileViolation, Message: message, Details: violations},
		}); err != nil {
			return err
		}
	case "yaml":
		if err := encodeYAML(w, CLIResponse{
			Status: "error",
			Error:  &CLIError{Code: ErrCodeProfileViolation, Message: message, Details: violations},
		}); err != nil {
			return err
		}
	default:
		fmt.Fprintf(w, "Error: %s\n", message)
		for _, v := range violations {
			fmt.Fprintf(w, "  %s\n", v)
		}
	}

	return NewExitError(ExitFailure, message)
}
