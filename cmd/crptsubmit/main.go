// Command crptsubmit submits one or more document JSON files through a
// rate-limited client, with the detached signature read from a file.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/ajiwo/crptgate"
	"github.com/ajiwo/crptgate/transport"
)

func main() {
	configPath := flag.String("config", "crptsubmit.yaml", "path to YAML configuration")
	signaturePath := flag.String("signature", "", "path to the detached signature file")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if err := run(logger, *configPath, *signaturePath, flag.Args()); err != nil {
		logger.Error("crptsubmit failed", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger, configPath, signaturePath string, docPaths []string) error {
	if len(docPaths) == 0 {
		return fmt.Errorf("no document files given")
	}
	if signaturePath == "" {
		return fmt.Errorf("-signature is required")
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		return err
	}

	window, err := parseDuration("window", cfg.Window)
	if err != nil {
		return err
	}
	tick, err := parseDuration("tick", cfg.Tick)
	if err != nil {
		return err
	}

	sigData, err := os.ReadFile(signaturePath)
	if err != nil {
		return fmt.Errorf("failed to read signature %q: %w", signaturePath, err)
	}
	signature := strings.TrimSpace(string(sigData))

	opts := []crptgate.Option{
		crptgate.WithLimit(cfg.Limit, window),
		crptgate.WithLogger(logger),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, crptgate.WithBaseURL(cfg.BaseURL))
	}
	if tick > 0 {
		opts = append(opts, crptgate.WithTick(tick))
	}
	if cfg.Breaker != nil {
		timeout, err := parseDuration("breaker.timeout", cfg.Breaker.Timeout)
		if err != nil {
			return err
		}
		interval, err := parseDuration("breaker.interval", cfg.Breaker.Interval)
		if err != nil {
			return err
		}
		opts = append(opts, crptgate.WithBreaker(transport.BreakerConfig{
			MaxFailures: cfg.Breaker.MaxFailures,
			Timeout:     timeout,
			Interval:    interval,
		}))
	}
	sink, err := cfg.journalBackend()
	if err != nil {
		return err
	}
	if sink != nil {
		opts = append(opts, crptgate.WithJournal(sink))
	}

	client, err := crptgate.New(opts...)
	if err != nil {
		return err
	}
	defer client.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var failed int
	for _, path := range docPaths {
		if err := submitFile(ctx, client, path, signature); err != nil {
			if ctx.Err() != nil {
				return fmt.Errorf("interrupted: %w", ctx.Err())
			}
			logger.Error("submission failed", "file", path, "error", err)
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d submissions failed", failed, len(docPaths))
	}
	return nil
}

func submitFile(ctx context.Context, client *crptgate.Client, path, signature string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read document %q: %w", path, err)
	}

	var doc crptgate.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to parse document %q: %w", path, err)
	}
	if doc.DocID == "" {
		doc.DocID = crptgate.NewDocumentID()
	}

	receipt, err := client.CreateDocument(ctx, doc, signature)
	if err != nil {
		return err
	}
	if !receipt.OK() {
		return fmt.Errorf("endpoint returned %d: %s", receipt.StatusCode, receipt.Body)
	}

	fmt.Printf("%s: submitted doc_id=%s status=%d\n", path, doc.DocID, receipt.StatusCode)
	return nil
}
