package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/ygolovnia/xkindle"
	xkindlehttp "github.com/ygolovnia/xkindle/http"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Config    Config
	Processor xkindle.Processor
	Logger    *slog.Logger
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Serve ServeCmd `cmd:"" help:"Run the HTTP API server"`
	Send  SendCmd  `cmd:"" help:"Fetch one article and send it to a Kindle address"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr string `default:":8080" env:"XKINDLE_ADDR" help:"Listen address"`
}

// Run starts the API server and blocks until the context is cancelled.
func (c *ServeCmd) Run(deps *Dependencies) error {
	srv := xkindlehttp.NewServer(c.Addr, deps.Processor, deps.Logger)
	deps.Logger.Info("listening", "addr", c.Addr)
	return srv.ListenAndServe(deps.Ctx)
}

// SendCmd is the "send" subcommand.
type SendCmd struct {
	URL string `arg:"" help:"X article URL"`
	To  string `arg:"" help:"Destination Kindle email address"`
}

// Run processes one article and prints the receipt.
func (c *SendCmd) Run(deps *Dependencies) error {
	receipt, err := deps.Processor.Process(deps.Ctx, &xkindle.ExtractionRequest{
		SourceURL:   c.URL,
		Destination: c.To,
	})
	if err != nil {
		return fmt.Errorf("%s", xkindle.ErrorMessage(err))
	}

	if receipt.Status == xkindle.DeliverySkipped {
		fmt.Fprintln(deps.Stdout, "EPUB generated; delivery skipped (no RESEND_API_KEY configured)")
	} else {
		fmt.Fprintln(deps.Stdout, "Delivered to", c.To)
	}
	fmt.Fprintln(deps.Stdout, "Title:  ", receipt.Title)
	fmt.Fprintln(deps.Stdout, "Author: ", receipt.Author)
	fmt.Fprintln(deps.Stdout, "Preview:", receipt.TextPreview)
	return nil
}
