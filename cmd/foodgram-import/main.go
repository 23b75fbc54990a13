// Command foodgram-import loads the tag and ingredient catalogs from CSV
// files.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/matt-dz/foodgram/internal/catalog"
	"github.com/matt-dz/foodgram/internal/config"
	"github.com/matt-dz/foodgram/internal/database"
	"github.com/matt-dz/foodgram/internal/log"
	"github.com/matt-dz/foodgram/internal/setup"
)

type importFunc func(ctx context.Context, q database.Querier, logger *slog.Logger, r io.Reader) (catalog.ImportResult, error)

func main() {
	tagsPath := flag.String("tags", "", "path to a CSV file with a name,slug header")
	ingredientsPath := flag.String("ingredients", "", "path to a CSV file with a name,measurement_unit header")
	flag.Parse()

	if *tagsPath == "" && *ingredientsPath == "" {
		fmt.Fprintln(os.Stderr, "at least one of --tags or --ingredients is required")
		flag.Usage()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := log.New(os.Stderr, slog.LevelInfo)

	conf, err := config.LoadConfig()
	if err != nil {
		logger.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	db, err := setup.Database(ctx, conf)
	if err != nil {
		logger.Error("failed to setup database", slog.Any("error", err))
		os.Exit(1)
	}

	for _, job := range []struct {
		name string
		path string
		run  importFunc
	}{
		{name: "tags", path: *tagsPath, run: catalog.ImportTags},
		{name: "ingredients", path: *ingredientsPath, run: catalog.ImportIngredients},
	} {
		if job.path == "" {
			continue
		}
		if err := importFile(ctx, db, logger, job.path, job.run); err != nil {
			logger.Error("import failed", slog.String("catalog", job.name), slog.Any("error", err))
			os.Exit(1)
		}
	}
}

func importFile(ctx context.Context, q database.Querier, logger *slog.Logger, path string, run importFunc) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %q: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	result, err := run(ctx, q, logger, f)
	if err != nil {
		return fmt.Errorf("importing %q: %w", path, err)
	}
	logger.InfoContext(ctx, "import finished",
		slog.String("file", path),
		slog.Int("created", result.Created),
		slog.Int("skipped", result.Skipped),
		slog.Int("invalid", result.Invalid))
	return nil
}
