package catalog

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/matt-dz/foodgram/internal/database"
)

// ImportResult counts the outcome of a CSV import.
type ImportResult struct {
	Created int
	Skipped int
	Invalid int
}

// ImportTags reads a CSV with a name,slug header and creates every tag.
// Existing tags are skipped; malformed rows are logged and skipped.
func ImportTags(ctx context.Context, q database.Querier, logger *slog.Logger, r io.Reader) (ImportResult, error) {
	return importCSV(ctx, logger, r, []string{"name", "slug"}, func(row map[string]string) error {
		_, err := CreateTag(ctx, q, Tag{Name: row["name"], Slug: row["slug"]})
		return err
	}, ErrTagExists)
}

// ImportIngredients reads a CSV with a name,measurement_unit header and
// creates every ingredient.
func ImportIngredients(ctx context.Context, q database.Querier, logger *slog.Logger, r io.Reader) (ImportResult, error) {
	return importCSV(ctx, logger, r, []string{"name", "measurement_unit"}, func(row map[string]string) error {
		_, err := CreateIngredient(ctx, q, Ingredient{Name: row["name"], MeasurementUnit: row["measurement_unit"]})
		return err
	}, ErrIngredientExists)
}

func importCSV(
	ctx context.Context,
	logger *slog.Logger,
	r io.Reader,
	fields []string,
	create func(row map[string]string) error,
	errExists error,
) (ImportResult, error) {
	var result ImportResult

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return result, nil
	} else if err != nil {
		return result, fmt.Errorf("reading csv header: %w", err)
	}
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))] = i
	}
	for _, f := range fields {
		if _, ok := columns[f]; !ok {
			return result, fmt.Errorf("csv header is missing column %q", f)
		}
	}

	for line := 2; ; line++ {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return result, nil
		}
		if err != nil {
			logger.WarnContext(ctx, "Skipping malformed row", slog.Int("line", line), slog.Any("error", err))
			result.Invalid++
			continue
		}

		row := make(map[string]string, len(fields))
		complete := true
		for _, f := range fields {
			i := columns[f]
			if i >= len(record) {
				complete = false
				break
			}
			row[f] = record[i]
		}
		if !complete {
			logger.WarnContext(ctx, "Skipping incomplete row", slog.Int("line", line))
			result.Invalid++
			continue
		}

		err = create(row)
		switch {
		case errors.Is(err, errExists):
			logger.WarnContext(ctx, "Skipping existing entry", slog.Int("line", line), slog.String("name", row["name"]))
			result.Skipped++
		case err != nil && isValidationError(err):
			logger.WarnContext(ctx, "Skipping invalid row", slog.Int("line", line), slog.Any("error", err))
			result.Invalid++
		case err != nil:
			return result, fmt.Errorf("line %d: %w", line, err)
		default:
			result.Created++
		}
	}
}
