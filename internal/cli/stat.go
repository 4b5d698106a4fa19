package cli

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/cnfstat/internal/dimacs"
	"github.com/roach88/cnfstat/internal/report"
	"github.com/roach88/cnfstat/internal/store"
)

func runStat(opts *RootOptions, args []string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	sum, source, err := analyzeInput(args, cmd)
	if err != nil {
		return outputAnalyzeError(formatter, err)
	}

	if err := recordRun(cmd.Context(), opts, formatter, source, sum); err != nil {
		return err
	}

	return formatter.Success(sum)
}

func newFormatter(opts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}
}

// analyzeInput runs the DIMACS pipeline over the file named in args, or
// over the command's standard input when args is empty. The input is closed
// on every return path.
func analyzeInput(args []string, cmd *cobra.Command) (report.Summary, string, error) {
	source := store.StdinSource
	var in io.ReadCloser = io.NopCloser(cmd.InOrStdin())
	if len(args) > 0 {
		source = args[0]
		f, err := dimacs.Open(source)
		if err != nil {
			return report.Summary{}, source, err
		}
		in = f
	}
	defer in.Close()

	slog.Debug("analyzing input", "source", source)
	res, err := dimacs.Analyze(in)
	if err != nil {
		return report.Summary{}, source, err
	}
	return report.FromResult(res), source, nil
}

// recordRun stores the run when --db is set. It runs before any result is
// printed so that a store failure leaves standard output empty.
func recordRun(ctx context.Context, opts *RootOptions, formatter *OutputFormatter, source string, sum report.Summary) error {
	if opts.Database == "" {
		return nil
	}
	if ctx == nil {
		ctx = context.Background()
	}

	st, err := store.Open(opts.Database)
	if err != nil {
		_ = formatter.Error(ErrCodeStore, err.Error(), nil)
		return WrapExitError(ExitFailure, "failed to open database", err)
	}
	defer func() {
		if closeErr := st.Close(); closeErr != nil {
			slog.Error("error closing database", "error", closeErr)
		}
	}()

	gen := opts.IDGenerator
	if gen == nil {
		gen = store.UUIDv7Generator{}
	}
	run := store.NewRun(source, sum, gen)
	if err := st.RecordRun(ctx, run); err != nil {
		_ = formatter.Error(ErrCodeStore, err.Error(), nil)
		return WrapExitError(ExitFailure, "failed to record run", err)
	}

	slog.Info("run recorded", "id", run.ID, "db", opts.Database)
	formatter.VerboseLog("Recorded run %s (digest %s)", run.ID, run.Digest)
	return nil
}

// outputAnalyzeError reports a pipeline failure and converts it to an
// ExitError with ExitFailure.
func outputAnalyzeError(formatter *OutputFormatter, err error) error {
	var de *dimacs.Error
	if !errors.As(err, &de) {
		_ = formatter.Error(ErrCodeGeneric, err.Error(), nil)
		return WrapExitError(ExitFailure, ErrCodeGeneric, err)
	}

	var details interface{}
	if len(de.Details) > 0 {
		details = de.Details
	}
	_ = formatter.ErrorAt(string(de.Code), de.Message, de.Line, details)
	return WrapExitError(ExitFailure, string(de.Code), err)
}
