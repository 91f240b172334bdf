package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/enthus-golang/lpapi"
	"github.com/enthus-golang/lpapi/internal/config"
)

const usage = `usage: lpapi [-config path] <command>

commands:
  printers       list printers known to the print service
  lines          print a 45x20 mm label with one solid and two dashed lines
  text <string>  print a one line text label
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("lpapi", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() { fmt.Fprint(stderr, usage) }
	configPath := flags.String("config", "", "override config path (optional)")
	if err := flags.Parse(args); err != nil {
		return 2
	}
	if flags.NArg() == 0 {
		flags.Usage()
		return 2
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "lpapi: %v\n", err)
		return 1
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	client := lpapi.New(
		lpapi.WithHost(cfg.Host),
		lpapi.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}),
		lpapi.WithLogger(logger),
	)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	switch cmd := flags.Arg(0); cmd {
	case "printers":
		err = listPrinters(ctx, client, logger, stdout)
	case "lines":
		err = printLines(ctx, client)
	case "text":
		if flags.NArg() < 2 {
			flags.Usage()
			return 2
		}
		err = printText(ctx, client, flags.Arg(1))
	default:
		fmt.Fprintf(stderr, "lpapi: unknown command %q\n", cmd)
		flags.Usage()
		return 2
	}

	if err != nil {
		var remoteErr *lpapi.RemoteCommandError
		if errors.As(err, &remoteErr) {
			logger.Error("command failed", "action", remoteErr.Action, "statusCode", remoteErr.StatusCode, "data", remoteErr.Data)
		}
		fmt.Fprintf(stderr, "lpapi: %v\n", err)
		return 1
	}
	return 0
}

func listPrinters(ctx context.Context, client *lpapi.Client, logger *slog.Logger, out io.Writer) error {
	online, err := client.IsPrinterOnline(ctx)
	if err != nil {
		return err
	}
	logger.InfoContext(ctx, "printer state", "host", client.Host(), "online", online)

	printers, err := client.GetPrinters(ctx, nil)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(printers)
}

// openCurrentPrinter opens the printer the service currently points at.
func openCurrentPrinter(ctx context.Context, client *lpapi.Client) error {
	name, err := client.GetPrinterName(ctx)
	if err != nil {
		return err
	}
	return client.OpenPrinter(ctx, name)
}

func printLines(ctx context.Context, client *lpapi.Client) error {
	if err := openCurrentPrinter(ctx, client); err != nil {
		return err
	}

	const (
		width     = 45.0
		lineSpace = 5.0
	)

	if _, err := client.StartJob(ctx, lpapi.JobOptions{Width: width, Height: lineSpace * 4}); err != nil {
		return err
	}

	if err := client.DrawLine(ctx, lpapi.LineOptions{Y1: lineSpace, X2: width, Y2: lineSpace, LineWidth: 1}); err != nil {
		return err
	}

	if err := client.DrawDashLine(ctx, lpapi.DashLineOptions{
		LineOptions: lpapi.LineOptions{Y1: lineSpace * 2, X2: width, Y2: lineSpace * 2, LineWidth: 1},
		Dash:        lpapi.DashPattern{Len1: lpapi.Float(0.5), Len2: lpapi.Float(0.25)},
	}); err != nil {
		return err
	}

	if err := client.DrawDashLine(ctx, lpapi.DashLineOptions{
		LineOptions: lpapi.LineOptions{Y1: lineSpace * 3, X2: width, Y2: lineSpace * 3, LineWidth: 1},
		Dash:        lpapi.DashPattern{Len1: lpapi.Float(0.25), Len2: lpapi.Float(0.5), Len3: lpapi.Float(0.75), Len4: lpapi.Float(1)},
	}); err != nil {
		return err
	}

	return client.CommitJob(ctx)
}

func printText(ctx context.Context, client *lpapi.Client, text string) error {
	if err := openCurrentPrinter(ctx, client); err != nil {
		return err
	}

	if _, err := client.StartJob(ctx, lpapi.JobOptions{Width: 45, Height: 15}); err != nil {
		return err
	}

	if err := client.SetItemHorizontalAlignment(ctx, lpapi.AlignCenter); err != nil {
		return err
	}
	if err := client.SetItemVerticalAlignment(ctx, lpapi.AlignMiddle); err != nil {
		return err
	}

	if err := client.DrawText(ctx, lpapi.TextOptions{
		Box:        lpapi.Box{Width: 45, Height: 15},
		Text:       text,
		FontHeight: 4,
	}); err != nil {
		return err
	}

	return client.CommitJob(ctx)
}
