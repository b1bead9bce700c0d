package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/boot-sandre/ouch"
	"github.com/boot-sandre/ouch/telemetry"
)

// CLI are the cli parameters for the ouch binary
type CLI struct {
	Archive           string           `arg:"" name:"archive" help:"Path to the archive to decompress." type:"existingfile"`
	Destination       string           `arg:"" name:"destination" optional:"" default:"." help:"Directory to decompress into."`
	Format            string           `short:"f" optional:"" help:"Override format resolution from the file name (e.g. tar.gz)."`
	MaxExtractionSize int64            `optional:"" default:"-1" help:"Maximum size of a single decompressed file in bytes. (disable check: -1)"`
	MaxInputSize      int64            `optional:"" default:"-1" help:"Maximum input size in bytes. (disable check: -1)"`
	No                bool             `short:"n" xor:"policy" help:"Assume no for all questions."`
	Quiet             bool             `short:"q" help:"Suppress informational messages."`
	Telemetry         bool             `short:"T" optional:"" default:"false" help:"Print telemetry data to log after decompression."`
	Verbose           bool             `short:"v" optional:"" help:"Verbose logging."`
	Version           kong.VersionFlag `short:"V" optional:"" help:"Print release version information."`
	Yes               bool             `short:"y" xor:"policy" help:"Assume yes for all questions."`
}

// Run is the entrypoint into ouch as a cli tool
func Run(version, commit, date string) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var cli CLI
	kong.Parse(&cli,
		kong.Description("A painless decompression utility"),
		kong.UsageOnError(),
		kong.Vars{
			"version": fmt.Sprintf("%s (%s), commit %s, built at %s", filepath.Base(os.Args[0]), version, commit, date),
		},
	)

	// check for verbose output
	logLevel := slog.LevelError
	if cli.Verbose {
		logLevel = slog.LevelDebug
	}

	// setup logger
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))

	// setup telemetry hook
	telemetryToLog := func(ctx context.Context, td *telemetry.Data) {
		if cli.Telemetry {
			logger.Info("decompression finished", "telemetry", td)
		}
	}

	// resolve the transform chain, either from the file name or from
	// an explicit --format override
	name := cli.Archive
	if cli.Format != "" {
		name = "archive." + strings.TrimPrefix(cli.Format, ".")
	}
	formats, err := ouch.ParseFormats(name)
	if err != nil {
		fatal(err)
	}

	policy := ouch.PolicyAsk
	switch {
	case cli.Yes:
		policy = ouch.PolicyAlwaysYes
	case cli.No:
		policy = ouch.PolicyAlwaysNo
	default:
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			// nobody can answer a prompt, stay on the safe side
			policy = ouch.PolicyAlwaysNo
		}
	}

	// the destination is caller-owned: make sure it exists before the
	// engine takes over
	if err := os.MkdirAll(cli.Destination, 0755); err != nil {
		fatal(err)
	}

	outputPath := filepath.Join(cli.Destination, ouch.StripFormats(filepath.Base(cli.Archive)))

	cfg := ouch.NewConfig(
		ouch.WithLogger(logger),
		ouch.WithMaxExtractionSize(cli.MaxExtractionSize),
		ouch.WithMaxInputSize(cli.MaxInputSize),
		ouch.WithPolicy(policy),
		ouch.WithQuiet(cli.Quiet),
		ouch.WithTelemetryHook(telemetryToLog),
	)

	if _, err := ouch.Decompress(ctx, cli.Archive, formats, cli.Destination, outputPath, cfg); err != nil {
		fatal(err)
	}
}

// fatal prints err and exits
func fatal(err error) {
	color.New(color.FgRed, color.Bold).Fprint(os.Stderr, "[ERROR] ")
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
