// Copyright 2025 Prospekt Labs
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
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/urfave/cli/v2"

	"github.com/prospekt/leadrank"
	"github.com/prospekt/leadrank/ai"
	"github.com/prospekt/leadrank/api"
	"github.com/prospekt/leadrank/core"
)

func main() {
	app := &cli.App{
		Name:   "leadrank",
		Usage:  "Lead discovery over schema-less records with vector search and weighted scoring",
		Before: setupLogger,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Run the HTTP API",
				Action: serveCommand,
				Flags: append(commonFlags(),
					&cli.StringFlag{
						Name:  "listen",
						Usage: "Address to listen on",
						Value: ":8080",
					},
				),
			},
			{
				Name:   "find",
				Usage:  "Find qualified leads for the given criteria",
				Action: findCommand,
				Flags: append(commonFlags(),
					&cli.StringFlag{
						Name:     "product",
						Aliases:  []string{"p"},
						Usage:    "Product to find buyers for",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "industry",
						Aliases:  []string{"i"},
						Usage:    "Target industry",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "region",
						Aliases: []string{"r"},
						Usage:   "Target region or city",
					},
					&cli.StringSliceFlag{
						Name:    "keyword",
						Aliases: []string{"k"},
						Usage:   "Additional search keywords (repeatable)",
					},
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Maximum number of leads to return",
						Value: 10,
					},
					&cli.Float64Flag{
						Name:  "min-score",
						Usage: "Minimum final score (0-100) for a qualified lead",
						Value: 50,
					},
				),
			},
			{
				Name:      "similar",
				Usage:     "Run a raw similarity search for a query",
				ArgsUsage: "<query>",
				Action:    similarCommand,
				Flags: append(commonFlags(),
					&cli.StringFlag{
						Name:  "source",
						Usage: "Restrict results to one source document",
					},
					&cli.IntFlag{
						Name:  "top-k",
						Usage: "Number of matches to return",
						Value: 10,
					},
				),
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func commonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "db",
			Aliases:  []string{"d"},
			Usage:    "Path to BadgerDB database directory",
			Required: true,
		},
		&cli.StringFlag{
			Name:  "embedding-host",
			Usage: "Embedding service host URL",
			Value: "http://localhost:11434/v1",
		},
		&cli.StringFlag{
			Name:  "embedding-model",
			Usage: "Embedding model name",
			Value: "embeddinggemma",
		},
	}
}

func openDatabase(c *cli.Context) (*leadrank.Database, error) {
	aiConfig := ai.NewConfig(
		ai.WithEmbeddingHost(c.String("embedding-host")),
		ai.WithEmbeddingModel(c.String("embedding-model")),
	)
	if err := aiConfig.Validate(); err != nil {
		return nil, fmt.Errorf("invalid AI configuration: %w", err)
	}

	db, err := leadrank.NewDatabase(c.String("db"),
		leadrank.WithAIConfig(aiConfig),
		leadrank.WithGuardedEmbedder(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return db, nil
}

func serveCommand(c *cli.Context) error {
	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	service, err := db.NewLeadService(nil)
	if err != nil {
		return fmt.Errorf("failed to create lead service: %w", err)
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	api.SetupRoutes(router, service, slog.Default())

	slog.Info("starting HTTP API", "listen", c.String("listen"))
	return router.Run(c.String("listen"))
}

func findCommand(c *cli.Context) error {
	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	service, err := db.NewLeadService(nil)
	if err != nil {
		return fmt.Errorf("failed to create lead service: %w", err)
	}

	criteria := &core.SearchCriteria{
		Product:  c.String("product"),
		Industry: c.String("industry"),
		Region:   c.String("region"),
		Keywords: c.StringSlice("keyword"),
		Limit:    c.Int("limit"),
		MinScore: c.Float64("min-score"),
	}

	result, err := service.FindLeads(context.Background(), criteria)
	if err != nil {
		return err
	}

	if result.Warning != "" {
		fmt.Fprintf(os.Stderr, "warning: %s\n", result.Warning)
	}
	fmt.Printf("Matches: %d, qualified: %d\n\n", result.TotalMatches, result.QualifiedCount)

	for i, lead := range result.Leads {
		fmt.Printf("%2d. [%3d %s] %s\n", i+1, lead.FinalScore, lead.Priority, lead.CompanyName)
		if lead.Region != "" || lead.Industry != "" {
			fmt.Printf("    %s\n", strings.TrimSpace(lead.Region+" "+lead.Industry))
		}
		for _, contact := range []string{lead.ContactPerson, lead.Email, lead.Phone, lead.Website} {
			if contact != "" {
				fmt.Printf("    %s\n", contact)
			}
		}
	}
	return nil
}

func similarCommand(c *cli.Context) error {
	query := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if query == "" {
		return fmt.Errorf("query argument is required")
	}

	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	service, err := db.NewLeadService(nil)
	if err != nil {
		return fmt.Errorf("failed to create lead service: %w", err)
	}

	matches, err := service.SearchSimilar(context.Background(), query, c.String("source"), c.Int("top-k"))
	if err != nil {
		return err
	}

	for i, match := range matches {
		fmt.Printf("%2d. [%.3f] %s\n", i+1, match.Score, match.Record.Content)
	}
	return nil
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

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

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
