package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/roach88/cnfstat/internal/store"
)

// HistoryOptions holds flags for the history command.
type HistoryOptions struct {
	*RootOptions
	Limit  int
	Digest string
}

// HistoryResult is the payload of the history command.
type HistoryResult struct {
	Runs []store.Run `json:"runs" yaml:"runs"`
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HistoryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "history --db <path>",
		Short: "List runs recorded with --db",
		Long: `List the runs recorded in a run history database, oldest first.

Example:
  cnfstat history --db runs.db
  cnfstat history --db runs.db --digest 3f2a... --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(opts, cmd)
		},
	}

	cmd.Flags().IntVar(&opts.Limit, "limit", 0, "maximum number of runs to list (0 = all)")
	cmd.Flags().StringVar(&opts.Digest, "digest", "", "only list runs with this summary digest")

	return cmd
}

func runHistory(opts *HistoryOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	if opts.Database == "" {
		_ = formatter.Error(ErrCodeNotFound, "history requires --db", nil)
		return NewExitError(ExitCommandError, "history requires --db")
	}
	if _, err := os.Stat(opts.Database); err != nil {
		msg := fmt.Sprintf("database not found: %s", opts.Database)
		_ = formatter.Error(ErrCodeNotFound, msg, nil)
		return WrapExitError(ExitCommandError, msg, err)
	}

	st, err := store.Open(opts.Database)
	if err != nil {
		_ = formatter.Error(ErrCodeStore, err.Error(), nil)
		return WrapExitError(ExitCommandError, "failed to open database", err)
	}
	defer func() {
		if closeErr := st.Close(); closeErr != nil {
			slog.Error("error closing database", "error", closeErr)
		}
	}()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	var runs []store.Run
	if opts.Digest != "" {
		runs, err = st.FindByDigest(ctx, opts.Digest)
		if err == nil && opts.Limit > 0 && len(runs) > opts.Limit {
			runs = runs[:opts.Limit]
		}
	} else {
		runs, err = st.ListRuns(ctx, opts.Limit)
	}
	if err != nil {
		_ = formatter.Error(ErrCodeStore, err.Error(), nil)
		return WrapExitError(ExitFailure, "failed to read history", err)
	}
	slog.Debug("history loaded", "runs", len(runs))

	if formatter.Format == "text" {
		return writeHistoryText(formatter.Writer, runs)
	}
	return formatter.Success(HistoryResult{Runs: runs})
}

// writeHistoryText prints one run per line with grouped numbers:
//
//	<id>  <source>  <digest prefix>  <V> vars  <C> clauses  <widths>
func writeHistoryText(w io.Writer, runs []store.Run) error {
	if len(runs) == 0 {
		_, err := fmt.Fprintln(w, "No runs recorded.")
		return err
	}

	p := message.NewPrinter(language.English)
	for _, r := range runs {
		widths := make([]string, 0, len(r.Widths))
		for _, e := range r.Widths {
			widths = append(widths, fmt.Sprintf("%d:%d", e.Width, e.Count))
		}
		line := p.Sprintf("%s  %s  %s  %d vars  %d clauses",
			r.ID, r.Source, shortDigest(r.Digest), r.Variables, r.Clauses)
		if len(widths) > 0 {
			line += "  " + strings.Join(widths, " ")
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func shortDigest(d string) string {
	if len(d) > 12 {
		return d[:12]
	}
	return d
}
