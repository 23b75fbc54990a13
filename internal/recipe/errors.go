package recipe

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/matt-dz/foodgram/internal/database"
)

var (
	ErrRecipeNotFound = errors.New("recipe not found")
	ErrNotAuthor      = errors.New("recipe is not owned by user")
	ErrConflict       = errors.New("recipe conflicts with existing data")
)

// ValidationError maps request fields to the problems found with them.
type ValidationError struct {
	Fields map[string][]string
}

func newValidationError(field, format string, args ...any) *ValidationError {
	return &ValidationError{
		Fields: map[string][]string{field: {fmt.Sprintf(format, args...)}},
	}
}

func (e *ValidationError) add(field, msg string) {
	if e.Fields == nil {
		e.Fields = make(map[string][]string)
	}
	e.Fields[field] = append(e.Fields[field], msg)
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, strings.Join(e.Fields[k], ", ")))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// NotFoundError names referenced catalog entries that do not exist.
type NotFoundError struct {
	Resource string
	IDs      []int64
}

func (e *NotFoundError) Error() string {
	if len(e.IDs) == 0 {
		return e.Resource + " not found"
	}
	return fmt.Sprintf("%s not found: %s", e.Resource, joinIDs(e.IDs))
}

func joinIDs(ids []int64) string {
	s := make([]string, 0, len(ids))
	for _, id := range ids {
		s = append(s, fmt.Sprint(id))
	}
	return strings.Join(s, ", ")
}

// mapWriteError converts constraint violations raised inside a write
// transaction into domain errors.
func mapWriteError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case database.UniqueViolation:
		return fmt.Errorf("%w: %s", ErrConflict, pgErr.ConstraintName)
	case database.ForeignKeyViolation:
		switch {
		case strings.Contains(pgErr.ConstraintName, "recipe_id"):
			return ErrRecipeNotFound
		case strings.Contains(pgErr.ConstraintName, "tag_id"):
			return &NotFoundError{Resource: "tag"}
		case strings.Contains(pgErr.ConstraintName, "ingredient_id"):
			return &NotFoundError{Resource: "ingredient"}
		case strings.Contains(pgErr.ConstraintName, "author_id"):
			return &NotFoundError{Resource: "author"}
		}
	case database.CheckViolation:
		switch {
		case strings.Contains(pgErr.ConstraintName, "cooking_time"):
			return newValidationError("cooking_time", "cooking_time must be at least %d", MinCookingTime)
		case strings.Contains(pgErr.ConstraintName, "amount"):
			return newValidationError("ingredients", "amount must be at least %d", MinIngredientAmount)
		}
	}
	return err
}
