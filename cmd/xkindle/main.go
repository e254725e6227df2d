package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/ygolovnia/xkindle/epub"
	"github.com/ygolovnia/xkindle/goquery"
	"github.com/ygolovnia/xkindle/pipeline"
	"github.com/ygolovnia/xkindle/resend"
	"github.com/ygolovnia/xkindle/rod"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run wires the dependency graph and executes the CLI.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Local development keeps credentials in .env; absence is fine.
	_ = godotenv.Load()

	cfg, err := LoadConfig()
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(stderr, nil))

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Config: cfg,
		Logger: logger,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("xkindle"),
		kong.Description("Send X articles to a Kindle as EPUB email attachments."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'xkindle --help' to see available commands")
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	browser := rod.NewBrowser(
		rod.WithExecMode(rod.ExecMode(cfg.Browser.ExecMode)),
		rod.WithBin(cfg.Browser.Bin),
	)

	deps.Processor = &pipeline.Pipeline{
		Browser:         rod.NewLoggingBrowser(browser, logger),
		Extractor:       goquery.NewExtractor(),
		Compiler:        epub.NewCompiler(),
		Deliverer:       resend.NewDeliverer(cfg.Sender.APIKey, cfg.Sender.From, logger),
		AllowedHosts:    cfg.AllowedHosts,
		Publisher:       cfg.Sender.Publisher,
		NavigateTimeout: cfg.Timeouts.Navigate(),
		ContentTimeout:  cfg.Timeouts.Content(),
		Logger:          logger,
	}

	return kongCtx.Run(deps)
}
