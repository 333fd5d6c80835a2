package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/7jrxt42BxFZo4iAnN4CX/ibkr-go/internal/config"
	"github.com/7jrxt42BxFZo4iAnN4CX/ibkr-go/internal/connection"
	"github.com/7jrxt42BxFZo4iAnN4CX/ibkr-go/internal/contract"
	"github.com/7jrxt42BxFZo4iAnN4CX/ibkr-go/internal/version"
)

func main() {
	configPath := flag.String("config", "configs/lookup.local.yaml", "path to config file")
	timeout := flag.Duration("timeout", 30*time.Second, "per-query resolution timeout")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: lookup [flags] <query>...")
		fmt.Fprintln(os.Stderr, "  query is a numeric contract ID or a FIGI, e.g. 265598 or BBG000B9XRY4")
		os.Exit(2)
	}

	// Load configuration
	cfg, err := config.LoadAndValidate(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Set up structured logging
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel(cfg.Logging.Level),
	}))
	slog.SetDefault(logger)

	logger.Info("starting lookup",
		"version", version.Version,
		"commit", version.Commit,
		"gateway", cfg.Gateway.URL,
	)

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	client := connection.New(connection.Config{
		URL:            cfg.Gateway.URL,
		ConnectTimeout: cfg.Gateway.ConnectTimeout,
		PingTimeout:    cfg.Gateway.PingTimeout,
		WriteTimeout:   cfg.Gateway.WriteTimeout,
		BufferSize:     cfg.Gateway.BufferSize,
	}, logger)

	if err := client.Connect(ctx); err != nil {
		logger.Error("failed to connect to gateway", "error", err)
		os.Exit(1)
	}
	defer client.Close()

	failed := 0
	for _, arg := range flag.Args() {
		if err := lookupOne(ctx, client, arg, *timeout); err != nil {
			logger.Error("lookup failed", "query", arg, "error", err)
			failed++
		}
	}

	if failed > 0 {
		os.Exit(1)
	}
}

// lookupOne resolves a single query argument and prints the contract as JSON.
func lookupOne(ctx context.Context, client *connection.Client, arg string, timeout time.Duration) error {
	query, err := contract.ParseQuery(arg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	c, err := contract.Resolve[contract.Contract](ctx, client, query)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("encode contract: %w", err)
	}

	fmt.Printf("%s (%s)\n%s\n", contract.NewContractProxy(c).Symbol(), contract.TypeOf(c), data)
	return nil
}

func logLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
