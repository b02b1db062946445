package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/cardledger/internal/adapters/driven/input"
	"github.com/custodia-labs/cardledger/internal/adapters/driven/sink"
	"github.com/custodia-labs/cardledger/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/cardledger/internal/adapters/driving/cli/render"
	"github.com/custodia-labs/cardledger/internal/core/domain"
	"github.com/custodia-labs/cardledger/internal/core/ports/driven"
	"github.com/custodia-labs/cardledger/internal/core/services"
	"github.com/custodia-labs/cardledger/internal/logger"
)

// demoEvents is the built-in sample run.
const demoEvents = `Add Tom 4111111111111111 $1000
Add Lisa 5454545454545454 $3000
Add Quincy 1234567890123456 $2000
Charge Tom $500
Charge Tom $800
Charge Lisa $7
Credit Lisa $100
Credit Quincy $200`

var (
	runFormat string
	runEvents string
	runDemo   bool
	runColor  bool
	runWatch  bool
	runOutput string
	runStats  bool
)

var runCmd = &cobra.Command{
	Use:   "run [FILE]",
	Short: "Process events and print account balances",
	Long: `Process events from FILE, from --events, from the built-in demo, or
from standard input when FILE is "-" or omitted.

Text input holds one event per line; blank lines and lines starting
with # are ignored. JSON input is an array of event strings.

Errors name the failing event by its position among events. For text
files and stdin they also give the input line.

--events splits its string before every Add, Charge or Credit word, so
accounts named Add, Charge or Credit cannot be used there; put such
events in a file instead.`,
	Example: `  cardledger run events.txt
  cardledger run --demo
  cardledger run --events "Add Tom 4111111111111111 \$1000 Charge Tom \$500"
  cat events.json | cardledger run --format json`,
	Args: usageArgs(cobra.MaximumNArgs(1)),
	RunE: runRun,
}

func init() {
	runCmd.Flags().StringVarP(&runFormat, "format", "f", "", "input format: text or json")
	runCmd.Flags().StringVarP(&runEvents, "events", "e", "", "process events from this string (account names must not be Add, Charge or Credit)")
	runCmd.Flags().BoolVar(&runDemo, "demo", false, "process the built-in demo events")
	runCmd.Flags().BoolVar(&runColor, "color", false, "colour the summary")
	runCmd.Flags().BoolVarP(&runWatch, "watch", "w", false, "re-run whenever FILE changes")
	runCmd.Flags().StringVarP(&runOutput, "output", "o", "", "write the summary to this file")
	runCmd.Flags().BoolVar(&runStats, "stats", false, "print event counts after the summary")
	rootCmd.AddCommand(runCmd)
}

// runOptions is the effective configuration of one run after flags
// override stored settings.
type runOptions struct {
	format    domain.InputFormat
	color     bool
	stats     bool
	logLevel  string
	logFormat string
	output    string
}

func runRun(cmd *cobra.Command, args []string) error {
	opts, err := resolveRunOptions(cmd, args)
	if err != nil {
		return err
	}

	if !runWatch {
		return runOnce(cmd.Context(), cmd, args, opts)
	}

	if len(args) == 0 || args[0] == "-" {
		return &ExitError{Code: ExitUsage, Message: "--watch needs a FILE argument"}
	}
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := runOnce(ctx, cmd, args, opts); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
	}
	logger.Info("Watching %s for changes", args[0])
	err = input.Watch(ctx, args[0], func() {
		if err := runOnce(ctx, cmd, args, opts); err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), err)
		}
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func resolveRunOptions(cmd *cobra.Command, args []string) (runOptions, error) {
	settings := domain.DefaultSettings()
	if settingsService != nil {
		stored, err := settingsService.Get()
		if err != nil {
			return runOptions{}, fmt.Errorf("failed to get settings: %w", err)
		}
		settings = *stored
	}

	if runDemo && runEvents != "" {
		return runOptions{}, &ExitError{Code: ExitUsage, Message: "--events and --demo cannot be used together"}
	}
	if (runDemo || runEvents != "") && len(args) > 0 {
		return runOptions{}, &ExitError{Code: ExitUsage, Message: "FILE cannot be combined with --events or --demo"}
	}

	opts := runOptions{
		format:    settings.Input.Format,
		color:     settings.Output.Color,
		stats:     runStats,
		logLevel:  settings.Log.Level.String(),
		logFormat: settings.Log.Format.String(),
		output:    runOutput,
	}
	if cmd.Flags().Changed("format") {
		opts.format = domain.InputFormat(runFormat)
		if !opts.format.IsValid() {
			return runOptions{}, &ExitError{Code: ExitUsage, Message: fmt.Sprintf("invalid --format %q: want text or json", runFormat)}
		}
	}
	if cmd.Flags().Changed("color") {
		opts.color = runColor
	}
	if cmd.Flags().Changed("log-level") {
		if !domain.LogLevel(logLevel).IsValid() {
			return runOptions{}, &ExitError{Code: ExitUsage, Message: fmt.Sprintf("invalid --log-level %q", logLevel)}
		}
		opts.logLevel = logLevel
	}
	if cmd.Flags().Changed("log-format") {
		if !domain.LogFormat(logFormat).IsValid() {
			return runOptions{}, &ExitError{Code: ExitUsage, Message: fmt.Sprintf("invalid --log-format %q", logFormat)}
		}
		opts.logFormat = logFormat
	}
	return opts, nil
}

// runOnce processes one batch of events against a fresh ledger.
func runOnce(ctx context.Context, cmd *cobra.Command, args []string, opts runOptions) error {
	src, closeSrc, err := openSource(cmd, args, opts.format)
	if err != nil {
		return err
	}
	defer closeSrc()

	runID := uuid.NewString()
	log := logger.New(cmd.ErrOrStderr(), logger.Options{Level: opts.logLevel, Format: opts.logFormat}).
		With("run_id", runID)
	events := sink.NewCounter(sink.NewSlogSink(log))

	ledger := services.NewLedgerService(memory.NewAccountStore(), events)
	processor := services.NewProcessor(services.NewParser(), ledger, events)

	logger.Section("Processing")
	logger.Info("Begin processing (run %s)", runID)
	report, err := processor.ProcessSource(ctx, src)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return err
		}
		return &ExitError{Code: ExitProcessing, Message: err.Error()}
	}
	report.RunID = runID
	if logger.IsVerbose() {
		logger.Info("Finished processing in %s (%d events, %d warnings)",
			report.Duration, report.Events, events.Warnings())
	}

	return writeReport(cmd, report, opts)
}

// createOutput opens the --output file.
var createOutput = func(path string) (io.WriteCloser, error) {
	return os.Create(path)
}

func writeReport(cmd *cobra.Command, report *domain.Report, opts runOptions) error {
	if opts.output == "" {
		return printReport(cmd.OutOrStdout(), report, opts)
	}

	f, err := createOutput(opts.output)
	if err != nil {
		return &ExitError{Code: ExitProcessing, Message: fmt.Sprintf("create output: %v", err)}
	}
	if err := printReport(f, report, opts); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return &ExitError{Code: ExitProcessing, Message: fmt.Sprintf("close output: %v", err)}
	}
	return nil
}

func printReport(w io.Writer, report *domain.Report, opts runOptions) error {
	printer := render.NewPrinter(w, opts.color)
	if err := printer.Summary(report); err != nil {
		return &ExitError{Code: ExitProcessing, Message: fmt.Sprintf("write summary: %v", err)}
	}
	if opts.stats {
		if err := printer.Stats(report); err != nil {
			return &ExitError{Code: ExitProcessing, Message: fmt.Sprintf("write stats: %v", err)}
		}
	}
	return nil
}

// openSource picks the event source for a run. The returned close
// function is always safe to call.
func openSource(cmd *cobra.Command, args []string, format domain.InputFormat) (driven.EventSource, func(), error) {
	noop := func() {}

	switch {
	case runDemo:
		return input.NewLiteralSource(demoEvents), noop, nil
	case runEvents != "":
		return input.NewLiteralSource(runEvents), noop, nil
	}

	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, noop, &ExitError{Code: ExitProcessing, Message: fmt.Sprintf("open input: %v", err)}
		}
		logger.Debug("reading %s as %s", args[0], format)
		return newSource(f, format), func() { f.Close() }, nil
	}

	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return nil, noop, &ExitError{
			Code:    ExitUsage,
			Message: "no input: pass a FILE, --events or --demo, or pipe events on stdin",
		}
	}
	logger.Debug("reading stdin as %s", format)
	return newSource(in, format), noop, nil
}

func newSource(r io.Reader, format domain.InputFormat) driven.EventSource {
	if format == domain.InputFormatJSON {
		return input.NewJSONSource(r)
	}
	return input.NewLineSource(r)
}
