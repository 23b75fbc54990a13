package recipe

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	MinCookingTime      = 1
	MinIngredientAmount = 1
	MaxNameLength       = 256
)

type IngredientAmount struct {
	ID     int64 `json:"id"`
	Amount int32 `json:"amount"`
}

// Payload is the body accepted by recipe create and update.
type Payload struct {
	Name        string             `json:"name" validate:"required,max=256"`
	Text        string             `json:"text" validate:"required"`
	CookingTime int32              `json:"cooking_time"`
	Image       string             `json:"image"`
	Tags        []int64            `json:"tags"`
	Ingredients []IngredientAmount `json:"ingredients"`
}

// Validate trims the name and text, then checks the payload in a fixed
// order and reports the first failing rule. The image is only required when
// creating.
func (p *Payload) Validate(requireImage bool) error {
	p.Name = strings.TrimSpace(p.Name)
	p.Text = strings.TrimSpace(p.Text)

	if len(p.Tags) == 0 {
		return newValidationError("tags", "tags must be non-empty")
	}
	if len(p.Ingredients) == 0 {
		return newValidationError("ingredients", "ingredients must be non-empty")
	}

	ingredientIDs := make([]int64, 0, len(p.Ingredients))
	for _, ing := range p.Ingredients {
		ingredientIDs = append(ingredientIDs, ing.ID)
	}
	if dups := duplicates(ingredientIDs); len(dups) > 0 {
		return newValidationError("ingredients", "duplicate ingredients: %s", joinIDs(dups))
	}
	if dups := duplicates(p.Tags); len(dups) > 0 {
		return newValidationError("tags", "duplicate tags: %s", joinIDs(dups))
	}

	if p.CookingTime < MinCookingTime {
		return newValidationError("cooking_time", "cooking_time must be at least %d", MinCookingTime)
	}
	for _, ing := range p.Ingredients {
		if ing.Amount < MinIngredientAmount {
			return newValidationError("ingredients",
				"amount of ingredient %d must be at least %d", ing.ID, MinIngredientAmount)
		}
	}

	if requireImage && strings.TrimSpace(p.Image) == "" {
		return newValidationError("image", "image is required")
	}

	return validateStruct(p)
}

func validateStruct(p *Payload) error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		return name
	})

	err := validate.Struct(p)
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	verr := &ValidationError{}
	for _, fe := range validationErrs {
		switch fe.Tag() {
		case "required":
			verr.add(fe.Field(), fmt.Sprintf("%s is required", fe.Field()))
		case "max":
			verr.add(fe.Field(), fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param()))
		default:
			verr.add(fe.Field(), fmt.Sprintf("%s is invalid", fe.Field()))
		}
	}
	return verr
}

// duplicates returns the ids that occur more than once, in order of their
// second occurrence.
func duplicates(ids []int64) []int64 {
	seen := make(map[int64]int, len(ids))
	var dups []int64
	for _, id := range ids {
		seen[id]++
		if seen[id] == 2 {
			dups = append(dups, id)
		}
	}
	return dups
}

// missing returns the ids in want that are not in have.
func missing(want, have []int64) []int64 {
	var out []int64
	for _, id := range want {
		if !slices.Contains(have, id) {
			out = append(out, id)
		}
	}
	return out
}
