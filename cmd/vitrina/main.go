// Copyright 2026 Pasvio
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/pasvio/vitrina"
	"github.com/pasvio/vitrina/ai"
	"github.com/pasvio/vitrina/core"
	"github.com/pasvio/vitrina/storage/badger"
)

func main() {
	app := &cli.App{
		Name:  "vitrina",
		Usage: "Product Q&A assistant for an online footwear store",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Run the HTTP API server",
				Action: serveCommand,
				Flags: append([]cli.Flag{
					&cli.StringFlag{
						Name:  "addr",
						Usage: "Address for the HTTP server to listen on",
						Value: ":8080",
					},
					&cli.DurationFlag{
						Name:  "request-timeout",
						Usage: "Per-request timeout",
						Value: 30 * time.Second,
					},
				}, storeFlags()...),
			},
			{
				Name:      "ask",
				Usage:     "Ask a single question about a product and print the answer",
				ArgsUsage: "QUESTION",
				Action:    askCommand,
				Flags: append([]cli.Flag{
					&cli.Uint64Flag{
						Name:     "product",
						Aliases:  []string{"p"},
						Usage:    "Product ID the question is about",
						Required: true,
					},
				}, storeFlags()...),
			},
			{
				Name:   "reindex",
				Usage:  "Rebuild the category and FAQ indexes from primary records",
				Action: reindexCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// storeFlags are shared by every command that opens the catalog store.
func storeFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "db",
			Aliases:  []string{"d"},
			Usage:    "Path to BadgerDB database directory",
			Required: true,
		},
		&cli.StringFlag{
			Name:  "ai-host",
			Usage: "OpenAI-compatible chat completion host URL",
			Value: "http://localhost:11434/v1",
		},
		&cli.StringFlag{
			Name:  "ai-model",
			Usage: "Chat completion model name",
			Value: "qwen2.5:3b",
		},
		&cli.StringFlag{
			Name:  "ai-token",
			Usage: "API token for the chat completion host",
			Value: "none",
		},
		&cli.IntFlag{
			Name:  "max-tokens",
			Usage: "Maximum tokens in a generated answer",
			Value: 300,
		},
		&cli.Float64Flag{
			Name:  "temperature",
			Usage: "Sampling temperature for generated answers",
			Value: 0.7,
		},
	}
}

func openStore(c *cli.Context) (*vitrina.Store, error) {
	aiConfig := ai.NewConfig(
		ai.WithHost(c.String("ai-host")),
		ai.WithModel(c.String("ai-model")),
		ai.WithToken(c.String("ai-token")),
		ai.WithMaxTokens(c.Int("max-tokens")),
		ai.WithTemperature(c.Float64("temperature")),
	)
	if err := aiConfig.Validate(); err != nil {
		return nil, fmt.Errorf("invalid AI configuration: %w", err)
	}

	store, err := vitrina.NewStore(c.String("db"), vitrina.WithAIConfig(aiConfig))
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}
	return store, nil
}

func serveCommand(c *cli.Context) error {
	store, err := openStore(c)
	if err != nil {
		return err
	}
	defer store.Close()

	asst, err := store.NewAssistant()
	if err != nil {
		return fmt.Errorf("failed to create assistant: %w", err)
	}

	router := newRouter(asst, store.ProductRepository(), store.FAQRepository(), c.Duration("request-timeout"))

	server := &http.Server{
		Addr:    c.String("addr"),
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

func askCommand(c *cli.Context) error {
	question := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if question == "" {
		return fmt.Errorf("a question is required")
	}

	store, err := openStore(c)
	if err != nil {
		return err
	}
	defer store.Close()

	asst, err := store.NewAssistant()
	if err != nil {
		return fmt.Errorf("failed to create assistant: %w", err)
	}

	answer, err := asst.Ask(context.Background(), core.ID(c.Uint64("product")), question)
	if err != nil {
		return err
	}

	fmt.Println(answer)
	return nil
}

func reindexCommand(c *cli.Context) error {
	backend, err := badger.OpenBackend(c.String("db"), false)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer backend.Close()

	stats, err := badger.RebuildIndexes(backend)
	if err != nil {
		return fmt.Errorf("reindex failed: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Reindexed %d products and %d FAQ entries\n", stats.Products, stats.FAQEntries)
	return nil
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
