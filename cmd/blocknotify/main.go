package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"blocknotify/internal/adapters/tcp"
	"blocknotify/internal/config"
	"blocknotify/internal/core/application"
	"blocknotify/internal/logger"
)

// Exit codes reported to the invoking daemon.
const (
	exitOK      = 0
	exitFailure = 1
)

// main is entry point of application.
func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one notification and maps the outcome to an exit code.
// Separated from main so tests can drive the full argument-to-exit path.
func run(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("blocknotify", flag.ContinueOnError)
	flags.SetOutput(stderr)
	configFile := flags.String("config", "", "Path to YAML configuration file (default: config/config.yml)")

	if err := flags.Parse(args); err != nil {
		return exitFailure
	}

	if flags.NArg() < 3 {
		printUsage(stdout)
		return exitFailure
	}

	cfg, err := config.LoadConfig(*configFile)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to load configuration: %v\n", err)
		return exitFailure
	}

	appLogger, err := logger.NewAppLogger(cfg.Logger, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to set up logger: %v\n", err)
		return exitFailure
	}

	sender := tcp.NewNotificationSender(time.Duration(cfg.Notifier.DialTimeoutSeconds) * time.Second)

	notifierService, err := application.NewNotifierService(sender, appLogger, cfg.Notifier)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to create notifier service: %v\n", err)
		return exitFailure
	}

	endpoint, coin, blockHash := flags.Arg(0), flags.Arg(1), flags.Arg(2)
	if err := notifierService.Notify(context.Background(), endpoint, coin, blockHash); err != nil {
		fmt.Fprintf(stderr, "blocknotify: %v\n", err)
		return exitFailure
	}

	return exitOK
}

// printUsage writes the two-line usage message for the invoking daemon's operator.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Block notify")
	fmt.Fprintln(w, " usage: blocknotify <host:port> <coin> <block>")
}
