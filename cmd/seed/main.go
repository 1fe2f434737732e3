package main

import (
	"context"
	"flag"
	"fmt"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"

	"book-library-api/internal/config"
	"book-library-api/internal/logging"
	ddbrepo "book-library-api/internal/repositories/dynamodb"
	"book-library-api/internal/seed"
	"book-library-api/pkg/server"
)

func main() {
	var (
		file    = flag.String("file", "./data/library.yaml", "Seed file (YAML or JSON list of records)")
		verbose = flag.Bool("verbose", false, "Enable verbose logging")
		dryRun  = flag.Bool("dry-run", false, "Validate the seed file without writing to the table")
		timeout = flag.Duration("timeout", 2*time.Minute, "Overall timeout")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}

	// Setup logger
	cfg.Log.Format = "text"
	logger := logging.New(cfg)
	if *verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	absPath, err := filepath.Abs(*file)
	if err != nil {
		logger.WithError(err).Fatal("Failed to get absolute seed file path")
	}

	logger.WithFields(logrus.Fields{
		"file":    absPath,
		"table":   cfg.DynamoDB.TableName,
		"dry_run": *dryRun,
	}).Info("Starting seed tool")

	records, err := seed.LoadFile(absPath)
	if err != nil {
		logger.WithError(err).Fatal("Failed to load seed file")
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	seeder := seed.NewSeeder(nil, logger, true)
	if !*dryRun {
		repos, err := ddbrepo.Open(ctx, server.RepositoryConfig(cfg), logger)
		if err != nil {
			logger.WithError(err).Fatal("Failed to open record store")
		}
		seeder = seed.NewSeeder(repos.RecordRepo, logger, false)
	}

	result, err := seeder.Seed(ctx, records)
	if err != nil {
		logger.WithError(err).Fatal("Seeding failed")
	}

	verb := "Wrote"
	if result.DryRun {
		verb = "Would write"
	}
	fmt.Printf("%s %d records (%d books, %d reviews, %d other)\n",
		verb, result.Total(), result.Books, result.Reviews, result.Other)
}
