package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/deosjr/kanren"
	"github.com/deosjr/kanren/internal/catalog"
	"github.com/deosjr/kanren/internal/metrics"
)

// RunOptions holds flags for the run command.
type RunOptions struct {
	*RootOptions
	Count string
	Limit int

	// IDs allows overriding the run id generator (for testing).
	// If nil, defaults to UUIDv7Generator.
	IDs catalog.IDGenerator
}

// RunOutput is the JSON/YAML payload of the run command.
type RunOutput struct {
	RunID   string `json:"run_id" yaml:"run_id"`
	Query   string `json:"query" yaml:"query"`
	Mode    string `json:"mode" yaml:"mode"`
	Count   int    `json:"count,omitempty" yaml:"count,omitempty"`
	Answers []any  `json:"answers" yaml:"answers"`
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	return newRunCommand(&RunOptions{RootOptions: rootOpts})
}

func newRunCommand(opts *RunOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <query>",
		Short: "Run a catalog query",
		Long: `Run one of the catalog queries and print its answers.

--count selects the execution strategy: a number returns at most that
many answers, "*" returns all of them, and leaving it out pulls answers
lazily, printing each as soon as it is found (--limit caps how many).

Example:
  kanren run membero --count '*'
  kanren run naturals --limit 5
  kanren run pluso --count 3 --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Count, "count", "n", "", `number of answers, "*" for all, empty for lazy`)
	cmd.Flags().IntVar(&opts.Limit, "limit", 0, "maximum answers of a lazy run (0 = no limit)")

	return cmd
}

func runQuery(opts *RunOptions, name string, cmd *cobra.Command) error {
	out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}

	// Configure logging based on verbose flag
	logLevel := slog.LevelWarn
	if opts.Verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: logLevel,
	}))

	q, ok := catalog.Lookup(name)
	if !ok {
		_ = out.Error("E001", fmt.Sprintf("unknown query %q", name))
		return NewExitError(ExitCommandError, fmt.Sprintf("unknown query %q", name))
	}

	countArg, limit := opts.Count, opts.Limit
	if cfg := opts.Config; cfg != nil {
		if !cmd.Flags().Changed("count") && cfg.Count != "" {
			countArg = cfg.Count
		}
		if !cmd.Flags().Changed("limit") && cfg.Limit != 0 {
			limit = cfg.Limit
		}
	}
	if limit < 0 {
		return NewExitError(ExitCommandError, fmt.Sprintf("invalid limit %d: must not be negative", limit))
	}
	count, err := catalog.ParseCount(countArg)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid --count", err)
	}

	runner := catalog.NewRunner()
	runner.Logger = logger
	runner.Limit = limit
	if opts.IDs != nil {
		runner.IDs = opts.IDs
	}
	var m *metrics.Metrics
	if opts.Metrics {
		m = metrics.New()
		runner.Metrics = m
	}

	// the runner checks ctx between suspensions, so an interrupt stops
	// any run, not just a lazy one
	parentCtx := cmd.Context()
	if parentCtx == nil {
		parentCtx = context.Background()
	}
	ctx, stop := signal.NotifyContext(parentCtx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	// text output streams answers as they are found
	var emit func(kanren.Value) error
	if out.Format == "text" {
		emit = func(v kanren.Value) error {
			_, err := fmt.Fprintln(out.Writer, v.String())
			return err
		}
	}

	res, err := runner.Run(ctx, q, count, emit)
	if errors.Is(err, catalog.ErrInfinite) {
		return WrapExitError(ExitCommandError, "refusing unbounded run", err)
	}
	if errors.Is(err, context.Canceled) {
		return WrapExitError(ExitFailure, "query interrupted", err)
	}
	if err != nil {
		return WrapExitError(ExitFailure, "query failed", err)
	}

	if m != nil {
		if err := m.WriteText(cmd.ErrOrStderr()); err != nil {
			return WrapExitError(ExitFailure, "failed to write metrics", err)
		}
	}

	answers := make([]any, len(res.Answers))
	for i, v := range res.Answers {
		answers[i] = kanren.Native(v)
	}
	data := RunOutput{
		RunID:   res.RunID,
		Query:   res.Query,
		Mode:    res.Count.Mode.String(),
		Count:   res.Count.N,
		Answers: answers,
	}
	return out.Success(data, func(io.Writer) {})
}
