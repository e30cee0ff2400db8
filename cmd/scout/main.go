// Copyright 2025 Hirebuddy
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
	"time"

	"github.com/hirebuddy/scout"
	"github.com/hirebuddy/scout/core"
	"github.com/hirebuddy/scout/ingestion"
	"github.com/hirebuddy/scout/outreach"
	"github.com/hirebuddy/scout/refresh"
	"github.com/hirebuddy/scout/search"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"
)

func main() {
	app := &cli.App{
		Name:  "scout",
		Usage: "Local job search assistant",
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
				Name:      "import",
				Usage:     "Import job postings from JSON feed files",
				ArgsUsage: "FEED_FILE [FEED_FILE...]",
				Action:    importCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "source",
						Usage: "Source label recorded on imported postings",
					},
					&cli.IntFlag{
						Name:  "pool-size",
						Usage: "Number of background enrichment workers",
					},
				},
			},
			{
				Name:      "search",
				Usage:     "Search stored job postings",
				ArgsUsage: "QUERY...",
				Action:    searchCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "location",
						Usage: "Filter by location (alias spellings accepted)",
					},
					&cli.StringFlag{
						Name:  "tier",
						Usage: "Minimum experience tier (intern, entry, mid, senior, lead)",
					},
					&cli.BoolFlag{
						Name:  "remote",
						Usage: "Only remote postings (use --remote=false for onsite only)",
					},
					&cli.StringFlag{
						Name:  "company",
						Usage: "Filter by company name",
					},
					&cli.StringFlag{
						Name:  "sort",
						Usage: "Tiebreak field for equal scores (posted_at, title, company)",
						Value: "posted_at",
					},
					&cli.StringFlag{
						Name:  "order",
						Usage: "Tiebreak direction (asc, desc)",
						Value: "desc",
					},
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Maximum number of results",
						Value: 10,
					},
					&cli.IntFlag{
						Name:  "offset",
						Usage: "Number of results to skip",
					},
					&cli.StringFlag{
						Name:  "weights",
						Usage: "Path to a YAML scoring weights file",
					},
				},
			},
			{
				Name:      "suggest",
				Usage:     "Suggest locations for a partial query",
				ArgsUsage: "PARTIAL",
				Action:    suggestCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Maximum number of suggestions",
						Value: 5,
					},
				},
			},
			{
				Name:   "trending",
				Usage:  "Show the most frequent terms across stored postings",
				Action: trendingCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Maximum number of terms",
						Value: 10,
					},
				},
			},
			{
				Name:   "history",
				Usage:  "Show or clear recent search history",
				Action: historyCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Number of entries to show",
						Value: 20,
					},
					&cli.BoolFlag{
						Name:  "clear",
						Usage: "Delete all history entries",
					},
				},
			},
			{
				Name:      "draft",
				Usage:     "Draft an outreach email for a stored posting",
				ArgsUsage: "JOB_ID",
				Action:    draftCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "name",
						Usage:    "Sender name",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "headline",
						Usage: "Sender headline, e.g. 'Backend engineer, 4 years'",
					},
					&cli.StringSliceFlag{
						Name:  "skill",
						Usage: "Sender skill (repeatable)",
					},
					&cli.StringSliceFlag{
						Name:  "highlight",
						Usage: "Sender career highlight (repeatable)",
					},
					&cli.StringFlag{
						Name:  "llm-host",
						Usage: "LLM service host URL",
						Value: "http://localhost:11434/v1",
					},
					&cli.StringFlag{
						Name:  "llm-model",
						Usage: "LLM model name",
						Value: "qwen2.5:3b",
					},
				},
			},
			{
				Name:   "renormalize",
				Usage:  "Re-run location normalization and tier inference over all postings",
				Action: renormalizeCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "batch-size",
						Usage: "Number of records to process in each batch",
						Value: 100,
					},
					&cli.IntFlag{
						Name:  "report-interval",
						Usage: "Report progress every N records",
						Value: 100,
					},
					&cli.IntFlag{
						Name:  "max-retries",
						Usage: "Maximum retry attempts for failed updates",
						Value: 3,
					},
					&cli.DurationFlag{
						Name:  "retry-delay",
						Usage: "Base delay for exponential backoff",
						Value: 1 * time.Second,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func importCommand(c *cli.Context) error {
	ctx := context.Background()

	if c.NArg() == 0 {
		return fmt.Errorf("at least one feed file is required")
	}

	db, err := scout.NewDatabase(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	var pipelineOpts []ingestion.Option
	if c.IsSet("pool-size") {
		pipelineOpts = append(pipelineOpts, ingestion.WithPoolSize(c.Int("pool-size")))
	}

	pipeline, err := db.NewIngestionPipeline(pipelineOpts...)
	if err != nil {
		return fmt.Errorf("failed to create ingestion pipeline: %w", err)
	}
	defer pipeline.Release()

	// Decode feeds concurrently, ingest serially. Ingestion shares one
	// write path so parallel decode is where the time goes.
	files := c.Args().Slice()
	decoded := make([][]*core.JobRecord, len(files))

	g, gctx := errgroup.WithContext(ctx)
	for i, file := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			f, err := os.Open(file)
			if err != nil {
				return fmt.Errorf("failed to open feed %s: %w", file, err)
			}
			defer f.Close()

			jobs, err := ingestion.DecodeJobs(f)
			if err != nil {
				return fmt.Errorf("failed to decode feed %s: %w", file, err)
			}
			decoded[i] = jobs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	totalImported := 0
	totalSkipped := 0
	for i, jobs := range decoded {
		source := c.String("source")
		if source == "" {
			source = files[i]
		}
		result, err := pipeline.Ingest(ctx, jobs, source)
		if err != nil {
			return fmt.Errorf("failed to ingest feed %s: %w", files[i], err)
		}
		totalImported += result.Imported
		totalSkipped += result.Skipped
	}

	fmt.Printf("Imported %d postings (%d skipped)\n", totalImported, totalSkipped)
	return nil
}

func searchCommand(c *cli.Context) error {
	ctx := context.Background()

	db, err := scout.NewDatabase(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	var rankerOpts []search.Option
	if path := c.String("weights"); path != "" {
		weights, err := search.LoadWeights(path)
		if err != nil {
			return fmt.Errorf("failed to load weights: %w", err)
		}
		rankerOpts = append(rankerOpts, search.WithWeights(weights))
	}

	ranker, err := db.NewRanker(rankerOpts...)
	if err != nil {
		return fmt.Errorf("failed to create ranker: %w", err)
	}

	query := core.SearchQuery{
		Text: strings.Join(c.Args().Slice(), " "),
		Filters: core.Filters{
			Location: c.String("location"),
			Tier:     c.String("tier"),
			Company:  c.String("company"),
		},
		Sort: core.Sort{
			Field: core.SortField(c.String("sort")),
			Order: core.SortOrder(c.String("order")),
		},
		Page: core.Page{
			Offset: c.Int("offset"),
			Limit:  c.Int("limit"),
		},
	}
	if c.IsSet("remote") {
		remote := c.Bool("remote")
		query.Filters.Remote = &remote
	}

	jobs, err := db.JobRepository().AllJobs(ctx)
	if err != nil {
		return fmt.Errorf("failed to load postings: %w", err)
	}

	resp := ranker.Search(jobs, query)

	fmt.Printf("Found %d matches\n", resp.Total)
	for i, hit := range resp.Results {
		fmt.Printf("%d: %s at %s (%s) [%d]\n",
			i+1, hit.Job.Title, hit.Job.Company, hit.Job.Location, hit.Score)
		if len(hit.MatchReasons) > 0 {
			fmt.Printf("   %s\n", strings.Join(hit.MatchReasons, ", "))
		}
	}

	// History failures don't fail the search itself
	if _, err := db.HistoryRepository().AddEntry(ctx, &core.SearchEntry{
		Query:   query.Text,
		Filters: query.Filters.Summary(),
		Hits:    resp.Total,
	}); err != nil {
		slog.Warn("failed to record search history", "err", err)
	}

	return nil
}

func suggestCommand(c *cli.Context) error {
	db, err := scout.NewDatabase(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	ranker, err := db.NewRanker()
	if err != nil {
		return fmt.Errorf("failed to create ranker: %w", err)
	}

	partial := strings.Join(c.Args().Slice(), " ")
	for _, s := range ranker.Suggestions(partial, c.Int("limit")) {
		fmt.Println(s)
	}
	return nil
}

func trendingCommand(c *cli.Context) error {
	ctx := context.Background()

	db, err := scout.NewDatabase(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	jobs, err := db.JobRepository().AllJobs(ctx)
	if err != nil {
		return fmt.Errorf("failed to load postings: %w", err)
	}

	for _, term := range search.TrendingTerms(jobs, c.Int("limit")) {
		fmt.Println(term)
	}
	return nil
}

func historyCommand(c *cli.Context) error {
	ctx := context.Background()

	db, err := scout.NewDatabase(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if c.Bool("clear") {
		if err := db.HistoryRepository().Clear(ctx); err != nil {
			return fmt.Errorf("failed to clear history: %w", err)
		}
		fmt.Println("History cleared")
		return nil
	}

	entries, err := db.HistoryRepository().RecentEntries(ctx, c.Int("limit"))
	if err != nil {
		return fmt.Errorf("failed to load history: %w", err)
	}

	for _, entry := range entries {
		line := entry.Query
		if line == "" {
			line = "(everything)"
		}
		if entry.Filters != "" {
			line += " [" + entry.Filters + "]"
		}
		fmt.Printf("%s  %s (%d hits)\n",
			entry.Timestamp.Local().Format("2006-01-02 15:04"), line, entry.Hits)
	}
	return nil
}

func draftCommand(c *cli.Context) error {
	ctx := context.Background()

	if c.NArg() != 1 {
		return fmt.Errorf("exactly one job ID is required")
	}

	var id core.ID
	if _, err := fmt.Sscanf(c.Args().First(), "%d", &id); err != nil {
		return fmt.Errorf("invalid job ID %q: %w", c.Args().First(), err)
	}

	config := outreach.NewConfig(
		outreach.WithHost(c.String("llm-host")),
		outreach.WithModel(c.String("llm-model")),
	)
	if err := config.Validate(); err != nil {
		return fmt.Errorf("invalid LLM configuration: %w", err)
	}

	db, err := scout.NewDatabase(c.String("db"), scout.WithOutreachConfig(config))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	job, err := db.JobRepository().GetJob(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to load posting %d: %w", id, err)
	}

	sender := outreach.SenderProfile{
		Name:       c.String("name"),
		Headline:   c.String("headline"),
		Skills:     c.StringSlice("skill"),
		Highlights: c.StringSlice("highlight"),
	}

	draft, err := db.EmailWriter().DraftEmail(ctx, sender, job)
	if err != nil {
		return fmt.Errorf("failed to draft email: %w", err)
	}

	fmt.Printf("Subject: %s\n\n%s\n", draft.Subject, draft.Body)
	return nil
}

func renormalizeCommand(c *cli.Context) error {
	ctx := context.Background()

	db, err := scout.NewDatabase(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	config := &refresh.Config{
		BatchSize:      c.Int("batch-size"),
		ReportInterval: c.Int("report-interval"),
		MaxRetries:     c.Int("max-retries"),
		RetryDelay:     c.Duration("retry-delay"),
	}

	if config.BatchSize <= 0 {
		return fmt.Errorf("batch-size must be greater than 0")
	}
	if config.ReportInterval <= 0 {
		return fmt.Errorf("report-interval must be greater than 0")
	}
	if config.MaxRetries <= 0 {
		return fmt.Errorf("max-retries must be greater than 0")
	}

	renormalizer := db.NewRenormalizer(config, os.Stderr)

	fmt.Fprintf(os.Stderr, "Database: %s\n", c.String("db"))
	fmt.Fprintln(os.Stderr)

	if err := renormalizer.Run(ctx); err != nil {
		return fmt.Errorf("renormalization failed: %w", err)
	}

	return nil
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
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
