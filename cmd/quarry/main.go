package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/loomworks/quarry/internal/api"
	"github.com/loomworks/quarry/internal/config"
	"github.com/loomworks/quarry/internal/corpus"
	"github.com/loomworks/quarry/internal/events"
	"github.com/loomworks/quarry/internal/extract"
	"github.com/loomworks/quarry/internal/fetch"
	"github.com/loomworks/quarry/internal/store"
)

func main() {
	cfg := config.Load()
	setupLogging(cfg.LogLevel)

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var err error
	switch os.Args[1] {
	case "build":
		err = runBuild(cfg, os.Args[2:])
	case "extract":
		err = runExtract(cfg, os.Args[2:])
	case "fetch":
		err = runFetch(ctx, os.Args[2:])
	case "ingest":
		err = runIngest(ctx, cfg, os.Args[2:])
	case "serve":
		err = runServe(cfg, os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		slog.Error("command failed", "command", os.Args[1], "error", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: quarry <command> [flags]

commands:
  build    assemble the corpus and dialogue-patterns files
  extract  extract snippets from one input file
  fetch    download a dataset file
  ingest   pull transcript texts from the database into a corpus file
  serve    serve built corpus files over HTTP`)
}

func runBuild(cfg config.Config, args []string) error {
	fs := flag.NewFlagSet("build", flag.ExitOnError)
	outDir := fs.String("out", cfg.OutDir, "output directory")
	base := fs.String("base", cfg.BaseCorpus, "pre-existing corpus to merge")
	includeDir := fs.String("include-dir", cfg.IncludeDir, "directory of .txt/.md documents to merge")
	maxDocs := fs.Int("max-docs", 0, "cap on include-dir documents (0 = default)")
	fs.Parse(args)

	b := corpus.NewBuilder(corpus.Options{
		OutDir:       *outDir,
		BaseCorpus:   *base,
		IncludeDir:   *includeDir,
		MaxDocuments: *maxDocs,
	}, slog.Default())

	m, err := b.Build()
	if err != nil {
		return err
	}

	if cfg.NatsURL != "" {
		pub, err := events.NewPublisher(cfg.NatsURL, cfg.NatsToken, slog.Default())
		if err != nil {
			slog.Warn("nats unavailable, skipping build event", "error", err)
		} else {
			defer pub.Close()
			if err := pub.PublishBuildCompleted(m); err != nil {
				slog.Warn("failed to publish build event", "error", err)
			}
		}
	}

	fmt.Printf("\n=== Build Summary ===\n")
	fmt.Printf("Run: %s\n", m.RunID)
	fmt.Printf("Base lines: %d\n", m.BaseLines)
	fmt.Printf("Included docs: %d\n", m.IncludedDocs)
	fmt.Printf("Seed lines: %d\n", m.SeedLines)
	for _, o := range m.Outputs {
		fmt.Printf("Wrote %s (%d lines)\n", o.Path, o.Lines)
	}
	if len(m.Warnings) > 0 {
		fmt.Printf("Warnings: %d\n", len(m.Warnings))
	}
	return nil
}

func runExtract(cfg config.Config, args []string) error {
	fs := flag.NewFlagSet("extract", flag.ExitOnError)
	in := fs.String("in", "", "input file (JSON array or plain text)")
	out := fs.String("out", filepath.Join(cfg.OutDir, "extracted_corpus.txt"), "output corpus file")
	max := fs.Int("max", cfg.MaxSamples, "cap on records or lines examined")
	fs.Parse(args)

	if *in == "" {
		return fmt.Errorf("-in is required")
	}

	res, err := extract.ExtractToFile(*in, *out, *max)
	if err != nil {
		return err
	}

	if res.UsedFallback {
		slog.Info("input was not JSON, scanned as plain text", "path", *in)
	}
	if res.ReadFailed != nil {
		// The run still succeeds with an empty corpus; this is the only
		// place the unreadable-fallback case becomes visible.
		slog.Warn("fallback read failed, corpus is empty", "path", *in, "error", res.ReadFailed)
	}

	fmt.Printf("Extracted %d conversations to %s\n", res.Count(), *out)
	return nil
}

func runFetch(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("fetch", flag.ExitOnError)
	url := fs.String("url", "", "dataset URL")
	out := fs.String("out", "", "destination file")
	fs.Parse(args)

	if *url == "" || *out == "" {
		return fmt.Errorf("-url and -out are required")
	}

	return fetch.New(slog.Default()).Download(ctx, *url, *out)
}

func runIngest(ctx context.Context, cfg config.Config, args []string) error {
	fs := flag.NewFlagSet("ingest", flag.ExitOnError)
	limit := fs.Int("limit", 1000, "max transcripts to pull")
	out := fs.String("out", filepath.Join(cfg.OutDir, "transcript_corpus.txt"), "output corpus file")
	fs.Parse(args)

	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required for ingest")
	}

	db, err := store.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer db.Close()

	texts, err := db.SampleTexts(ctx, *limit)
	if err != nil {
		return err
	}

	snippets := extract.Clean(texts)
	if err := extract.WriteCorpus(*out, snippets); err != nil {
		return err
	}

	slog.Info("transcripts ingested", "pulled", len(texts), "retained", len(snippets), "out", *out)
	fmt.Printf("Extracted %d conversations to %s\n", len(snippets), *out)
	return nil
}

func runServe(cfg config.Config, args []string) error {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	port := fs.Int("port", cfg.Port, "listen port")
	dir := fs.String("dir", cfg.OutDir, "corpus directory to serve")
	fs.Parse(args)

	return api.NewServer(*port, *dir).Start()
}

func setupLogging(level string) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(handler))
}
