// cmd/inventory/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ammerola/inventory-catalog/internal/core/domain"
	"github.com/ammerola/inventory-catalog/internal/pkg/config"
	"github.com/ammerola/inventory-catalog/internal/pkg/logger"
)

// Build information injected at compile time
var (
	Version   = "dev"
	BuildTime = "unknown"
)

const (
	exitOK       = 0
	exitFailure  = 1
	exitInternal = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("inventory", flag.ContinueOnError)
	fs.SetOutput(stderr)
	logLevel := fs.String("log-level", "", "override the configured log level")
	fs.Usage = func() { usage(fs) }
	if err := fs.Parse(args); err != nil {
		return exitCode(ctx, slog.Default(), stderr, fs, err)
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return exitInternal
	}

	slogger := logger.SetupLogger("warn", "text")

	cfg, err := config.Load(slogger)
	if err != nil {
		slogger.Error("failed to load configuration", slog.Any("error", err))
		return exitFailure
	}
	if *logLevel != "" {
		cfg.App.LogLevel = *logLevel
	}

	slogger = logger.SetupLogger(cfg.App.LogLevel, cfg.App.LogFormat)
	ctx, sessionID := logger.NewSession(ctx)
	slogger.DebugContext(ctx, "starting inventory",
		slog.String("version", Version),
		slog.String("build_time", BuildTime),
		slog.String("session", sessionID))

	a, err := newApp(ctx, cfg, slogger)
	if err != nil {
		slogger.ErrorContext(ctx, "failed to initialize", slog.Any("error", err))
		return exitFailure
	}
	defer a.Close()

	return exitCode(ctx, slogger, stderr, fs, dispatch(ctx, a, stdout, fs.Args()))
}

func exitCode(ctx context.Context, slogger *slog.Logger, stderr io.Writer, fs *flag.FlagSet, err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, flag.ErrHelp):
		return exitOK
	case errors.Is(err, errUsage):
		fmt.Fprintln(stderr, err)
		fs.Usage()
		return exitInternal
	case errors.Is(err, domain.ErrInternal):
		slogger.ErrorContext(ctx, "internal error", slog.Any("error", err))
		fmt.Fprintln(stderr, "internal error:", err)
		return exitInternal
	default:
		fmt.Fprintln(stderr, "error:", err)
		return exitFailure
	}
}

func usage(fs *flag.FlagSet) {
	out := fs.Output()
	fmt.Fprintf(out, "usage: inventory [-log-level L] <command> [flags]\n\ncommands:\n")
	for _, c := range commands() {
		fmt.Fprintf(out, "  %-11s %s\n", c.name, c.usage)
	}
	fmt.Fprintln(out)
	fs.PrintDefaults()
}
