// Package catalog manages the tag and ingredient reference data.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5"
	"github.com/matt-dz/foodgram/internal/database"
)

var (
	ErrTagNotFound        = errors.New("tag not found")
	ErrIngredientNotFound = errors.New("ingredient not found")
	ErrTagExists          = errors.New("tag already exists")
	ErrIngredientExists   = errors.New("ingredient already exists")
)

type Tag struct {
	ID   int64  `json:"id"`
	Name string `json:"name" validate:"required,max=32"`
	Slug string `json:"slug" validate:"required,max=32,slug"`
}

type Ingredient struct {
	ID              int64  `json:"id"`
	Name            string `json:"name" validate:"required,max=128"`
	MeasurementUnit string `json:"measurement_unit" validate:"required,max=64"`
}

func isSlug(fl validator.FieldLevel) bool {
	for _, r := range fl.Field().String() {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
		default:
			return false
		}
	}
	return true
}

func isValidationError(err error) bool {
	var validationErrs validator.ValidationErrors
	return errors.As(err, &validationErrs)
}

func newValidator() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		return name
	})
	_ = validate.RegisterValidation("slug", isSlug)
	return validate
}

func ListTags(ctx context.Context, q database.Querier) ([]Tag, error) {
	rows, err := q.ListTags(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing tags: %w", err)
	}
	tags := make([]Tag, 0, len(rows))
	for _, row := range rows {
		tags = append(tags, Tag(row))
	}
	return tags, nil
}

func GetTag(ctx context.Context, q database.Querier, id int64) (Tag, error) {
	row, err := q.GetTag(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return Tag{}, ErrTagNotFound
	} else if err != nil {
		return Tag{}, fmt.Errorf("getting tag: %w", err)
	}
	return Tag(row), nil
}

// ListIngredients returns ingredients whose name starts with prefix, ignoring
// case. An empty prefix lists every ingredient.
func ListIngredients(ctx context.Context, q database.Querier, prefix string) ([]Ingredient, error) {
	rows, err := q.ListIngredients(ctx, strings.TrimSpace(prefix))
	if err != nil {
		return nil, fmt.Errorf("listing ingredients: %w", err)
	}
	ingredients := make([]Ingredient, 0, len(rows))
	for _, row := range rows {
		ingredients = append(ingredients, Ingredient(row))
	}
	return ingredients, nil
}

func GetIngredient(ctx context.Context, q database.Querier, id int64) (Ingredient, error) {
	row, err := q.GetIngredient(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return Ingredient{}, ErrIngredientNotFound
	} else if err != nil {
		return Ingredient{}, fmt.Errorf("getting ingredient: %w", err)
	}
	return Ingredient(row), nil
}

// CreateTag validates and stores t. A clashing name or slug is ErrTagExists.
func CreateTag(ctx context.Context, q database.Querier, t Tag) (Tag, error) {
	t.Name = strings.TrimSpace(t.Name)
	t.Slug = strings.TrimSpace(t.Slug)
	if err := newValidator().Struct(t); err != nil {
		return Tag{}, err
	}

	row, err := q.CreateTag(ctx, database.CreateTagParams{Name: t.Name, Slug: t.Slug})
	if database.IsUniqueViolation(err) {
		return Tag{}, fmt.Errorf("%w: %q", ErrTagExists, t.Name)
	} else if err != nil {
		return Tag{}, fmt.Errorf("creating tag: %w", err)
	}
	return Tag(row), nil
}

// CreateIngredient validates and stores i. A clashing (name, unit) pair is
// ErrIngredientExists.
func CreateIngredient(ctx context.Context, q database.Querier, i Ingredient) (Ingredient, error) {
	i.Name = strings.TrimSpace(i.Name)
	i.MeasurementUnit = strings.TrimSpace(i.MeasurementUnit)
	if err := newValidator().Struct(i); err != nil {
		return Ingredient{}, err
	}

	row, err := q.CreateIngredient(ctx, database.CreateIngredientParams{
		Name:            i.Name,
		MeasurementUnit: i.MeasurementUnit,
	})
	if database.IsUniqueViolation(err) {
		return Ingredient{}, fmt.Errorf("%w: %q (%s)", ErrIngredientExists, i.Name, i.MeasurementUnit)
	} else if err != nil {
		return Ingredient{}, fmt.Errorf("creating ingredient: %w", err)
	}
	return Ingredient(row), nil
}
