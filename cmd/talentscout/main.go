// Copyright 2025 Poiesic Systems
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
	"io/fs"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/poiesic/talentscout"
	"github.com/poiesic/talentscout/ai"
	"github.com/poiesic/talentscout/ai/openai"
	"github.com/poiesic/talentscout/core"
	"github.com/poiesic/talentscout/extract"
	"github.com/poiesic/talentscout/reindex"
	"github.com/poiesic/talentscout/storage/badger"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "talentscout",
		Usage: "Hybrid resume-to-job-description matching engine",
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
				Name:      "index",
				Usage:     "Ingest resume files into the candidate index",
				ArgsUsage: "FILE_OR_DIR [FILE_OR_DIR...]",
				Action:    indexCommand,
				Flags: append(aiFlags(),
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
				),
			},
			{
				Name:      "match",
				Usage:     "Rank indexed candidates against a job description",
				ArgsUsage: "[JOB_DESCRIPTION_TEXT]",
				Action:    matchCommand,
				Flags: append(aiFlags(),
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "file",
						Aliases: []string{"f"},
						Usage:   "Read the job description from a file instead of arguments",
					},
					&cli.IntFlag{
						Name:    "top-k",
						Aliases: []string{"k"},
						Usage:   "Number of candidates to return",
						Value:   5,
					},
				),
			},
			{
				Name:   "reindex",
				Usage:  "Regenerate embeddings for all indexed candidates",
				Action: reindexCommand,
				Flags: []cli.Flag{
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
						Name:     "embedding-model",
						Usage:    "Embedding model name",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "batch-size",
						Usage: "Number of candidates to process in each batch",
						Value: 100,
					},
					&cli.IntFlag{
						Name:  "report-interval",
						Usage: "Report progress every N candidates",
						Value: 100,
					},
					&cli.IntFlag{
						Name:  "max-retries",
						Usage: "Maximum retry attempts for failed operations",
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

// aiFlags returns the flags shared by commands that talk to AI services.
func aiFlags() []cli.Flag {
	return []cli.Flag{
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
		&cli.StringFlag{
			Name:  "ner-host",
			Usage: "Entity extraction service host URL (defaults to embedding-host)",
		},
		&cli.StringFlag{
			Name:  "ner-model",
			Usage: "Entity extraction model name",
			Value: "qwen2.5:3b",
		},
	}
}

func aiConfigFromFlags(c *cli.Context) (*ai.Config, error) {
	nerHost := c.String("ner-host")
	if nerHost == "" {
		nerHost = c.String("embedding-host")
	}

	config := ai.NewConfig(
		ai.WithEmbeddingHost(c.String("embedding-host")),
		ai.WithEmbeddingModel(c.String("embedding-model")),
		ai.WithNERHost(nerHost),
		ai.WithNERModel(c.String("ner-model")),
	)

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid AI configuration: %w", err)
	}
	return config, nil
}

func indexCommand(c *cli.Context) error {
	ctx := context.Background()

	if c.NArg() == 0 {
		return fmt.Errorf("at least one file or directory is required")
	}

	config, err := aiConfigFromFlags(c)
	if err != nil {
		return err
	}

	index, err := talentscout.OpenIndex(c.String("db"), talentscout.WithAIConfig(config))
	if err != nil {
		return fmt.Errorf("failed to open index: %w", err)
	}
	defer index.Close()

	pipeline, err := index.NewPipeline()
	if err != nil {
		return fmt.Errorf("failed to create ingestion pipeline: %w", err)
	}
	defer pipeline.Release()

	paths, err := collectDocumentPaths(c.Args().Slice())
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no documents found")
	}

	extractor := extract.PlainText{}
	indexed := 0
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}

		text, lowConfidence, err := extractor.Extract(ctx, data)
		if err != nil {
			return fmt.Errorf("failed to extract %s: %w", path, err)
		}
		if lowConfidence {
			fmt.Fprintf(os.Stderr, "warning: %s yielded almost no text, indexing placeholder\n", path)
		}

		record, err := pipeline.IngestText(ctx, "", text, map[string]string{
			"filename": filepath.Base(path),
		})
		if err != nil {
			return fmt.Errorf("failed to index %s: %w", path, err)
		}

		fmt.Printf("indexed %s as %s (%d sections)\n",
			filepath.Base(path), record.ID, len(record.SectionExcerpts))
		indexed++
	}

	fmt.Printf("indexed %d documents\n", indexed)
	return nil
}

// collectDocumentPaths expands arguments into a flat list of document files.
// Directories are walked for .txt and .md files.
func collectDocumentPaths(args []string) ([]string, error) {
	var paths []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			paths = append(paths, arg)
			continue
		}

		err = filepath.WalkDir(arg, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			switch strings.ToLower(filepath.Ext(path)) {
			case ".txt", ".md":
				paths = append(paths, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return paths, nil
}

func matchCommand(c *cli.Context) error {
	ctx := context.Background()

	jobDescription, err := readJobDescription(c)
	if err != nil {
		return err
	}

	config, err := aiConfigFromFlags(c)
	if err != nil {
		return err
	}

	index, err := talentscout.OpenIndex(c.String("db"), talentscout.WithAIConfig(config))
	if err != nil {
		return fmt.Errorf("failed to open index: %w", err)
	}
	defer index.Close()

	results, err := index.Match(ctx, jobDescription, c.Int("top-k"))
	if err != nil {
		return fmt.Errorf("match failed: %w", err)
	}

	if len(results) == 0 {
		fmt.Println("no candidates indexed")
		return nil
	}

	printResults(results)
	return nil
}

func readJobDescription(c *cli.Context) (string, error) {
	if file := c.String("file"); file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("failed to read job description: %w", err)
		}
		return string(data), nil
	}

	text := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if text == "" {
		return "", fmt.Errorf("job description required: pass text as arguments or use --file")
	}
	return text, nil
}

func printResults(results []*core.MatchResult) {
	for i, result := range results {
		fmt.Printf("%d. %s  %.1f%%  (%s)\n",
			i+1, result.CandidateID, result.FinalScore*100, scoreBand(result.FinalScore))
		fmt.Printf("   keyword %.2f | semantic %.2f | entities %.2f\n",
			result.KeywordScore, result.SemanticScore, result.EntityOverlapScore)
		if len(result.MatchedKeywords) > 0 {
			fmt.Printf("   matched: %s\n", strings.Join(result.MatchedKeywords, ", "))
		}
		if len(result.MissingKeywords) > 0 {
			fmt.Printf("   missing: %s\n", strings.Join(result.MissingKeywords, ", "))
		}
		if result.Snippet != "" {
			fmt.Printf("   %s\n", firstLine(result.Snippet))
		}
	}
}

// scoreBand maps a final score to a human label.
func scoreBand(score float64) string {
	switch {
	case score > 0.8:
		return "strong match"
	case score > 0.6:
		return "potential match"
	default:
		return "weak match"
	}
}

func firstLine(text string) string {
	if idx := strings.IndexByte(text, '\n'); idx >= 0 {
		return text[:idx]
	}
	return text
}

func reindexCommand(c *cli.Context) error {
	ctx := context.Background()

	dbPath := c.String("db")

	backend, err := badger.OpenBackend(dbPath, false)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer backend.Close()

	repo, err := badger.NewCandidateRepository(backend)
	if err != nil {
		return fmt.Errorf("failed to create repository: %w", err)
	}
	defer repo.Close()

	aiConfig := ai.NewConfig(
		ai.WithEmbeddingHost(c.String("embedding-host")),
		ai.WithEmbeddingModel(c.String("embedding-model")),
		// NER is not needed for reindexing
		ai.WithNERHost(c.String("embedding-host")),
		ai.WithNERModel("dummy"),
	)

	if err := aiConfig.Validate(); err != nil {
		return fmt.Errorf("invalid AI configuration: %w", err)
	}

	embedder, err := openai.NewEmbedder(aiConfig)
	if err != nil {
		return fmt.Errorf("failed to create embedder: %w", err)
	}

	reindexConfig := &reindex.Config{
		BatchSize:      c.Int("batch-size"),
		ReportInterval: c.Int("report-interval"),
		MaxRetries:     c.Int("max-retries"),
		RetryDelay:     c.Duration("retry-delay"),
	}

	if reindexConfig.BatchSize <= 0 {
		return fmt.Errorf("batch-size must be greater than 0")
	}
	if reindexConfig.ReportInterval <= 0 {
		return fmt.Errorf("report-interval must be greater than 0")
	}
	if reindexConfig.MaxRetries <= 0 {
		return fmt.Errorf("max-retries must be greater than 0")
	}

	reindexer := reindex.NewReindexer(repo, embedder, reindexConfig, os.Stderr)

	fmt.Fprintf(os.Stderr, "Database: %s\n", dbPath)
	fmt.Fprintf(os.Stderr, "Embedding host: %s\n", c.String("embedding-host"))
	fmt.Fprintf(os.Stderr, "Embedding model: %s\n", c.String("embedding-model"))
	fmt.Fprintln(os.Stderr)

	if err := reindexer.Run(ctx); err != nil {
		return fmt.Errorf("reindex failed: %w", err)
	}

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
