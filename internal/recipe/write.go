package recipe

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/matt-dz/foodgram/internal/database"
	"github.com/matt-dz/foodgram/internal/env"
	"github.com/matt-dz/foodgram/internal/image"
	"github.com/matt-dz/foodgram/internal/metrics"
	"github.com/matt-dz/foodgram/internal/user"
)

// Create validates the payload, stores the image and inserts the recipe with
// its tags and ingredients in one transaction.
func Create(ctx context.Context, env *env.Env, authorID int64, p Payload) (_ Recipe, err error) {
	defer func() { metrics.RecordRecipeWrite("create", err) }()

	if err := p.Validate(true); err != nil {
		return Recipe{}, err
	}

	key, err := storeImage(ctx, env, p.Image)
	if err != nil {
		return Recipe{}, err
	}

	var recipeID int64
	err = env.Database.InTx(ctx, func(q database.Querier) error {
		id, err := q.CreateRecipe(ctx, database.CreateRecipeParams{
			AuthorID:    authorID,
			Name:        p.Name,
			Image:       key,
			Text:        p.Text,
			CookingTime: p.CookingTime,
		})
		if err != nil {
			return fmt.Errorf("creating recipe: %w", err)
		}
		recipeID = id
		return replaceAssociations(ctx, q, id, p)
	})
	if err != nil {
		removeImage(ctx, env, key)
		return Recipe{}, mapWriteError(err)
	}

	return Get(ctx, env, recipeID, user.NewViewer(authorID))
}

// Update replaces the scalar fields and both association sets of a recipe
// owned by actorID. An empty image keeps the current one.
func Update(ctx context.Context, env *env.Env, actorID, recipeID int64, p Payload) (_ Recipe, err error) {
	defer func() { metrics.RecordRecipeWrite("update", err) }()

	owner, err := authorize(ctx, env.Database, actorID, recipeID)
	if err != nil {
		return Recipe{}, err
	}

	if err := p.Validate(false); err != nil {
		return Recipe{}, err
	}

	var newKey string
	switch {
	case p.Image == "", p.Image == owner.Image, p.Image == fileURL(env, owner.Image):
	case image.IsDataURI(p.Image):
		if newKey, err = storeImage(ctx, env, p.Image); err != nil {
			return Recipe{}, err
		}
	default:
		return Recipe{}, newValidationError("image", "image must be a base64 data URI or the current image")
	}

	err = env.Database.InTx(ctx, func(q database.Querier) error {
		err := q.UpdateRecipe(ctx, database.UpdateRecipeParams{
			ID:          recipeID,
			Name:        p.Name,
			Image:       pgtype.Text{String: newKey, Valid: newKey != ""},
			Text:        p.Text,
			CookingTime: p.CookingTime,
		})
		if err != nil {
			return fmt.Errorf("updating recipe: %w", err)
		}
		return replaceAssociations(ctx, q, recipeID, p)
	})
	if err != nil {
		removeImage(ctx, env, newKey)
		return Recipe{}, mapWriteError(err)
	}
	if newKey != "" {
		removeImage(ctx, env, owner.Image)
	}

	return Get(ctx, env, recipeID, user.NewViewer(actorID))
}

// Delete removes a recipe owned by actorID. Association and relation rows
// cascade.
func Delete(ctx context.Context, env *env.Env, actorID, recipeID int64) (err error) {
	defer func() { metrics.RecordRecipeWrite("delete", err) }()

	owner, err := authorize(ctx, env.Database, actorID, recipeID)
	if err != nil {
		return err
	}
	if err := env.Database.DeleteRecipe(ctx, recipeID); err != nil {
		return fmt.Errorf("deleting recipe: %w", err)
	}
	removeImage(ctx, env, owner.Image)
	return nil
}

func authorize(ctx context.Context, q database.Querier, actorID, recipeID int64) (database.GetRecipeOwnerRow, error) {
	owner, err := q.GetRecipeOwner(ctx, recipeID)
	if errors.Is(err, pgx.ErrNoRows) {
		return owner, ErrRecipeNotFound
	} else if err != nil {
		return owner, fmt.Errorf("getting recipe owner: %w", err)
	}
	if owner.AuthorID != actorID {
		return owner, ErrNotAuthor
	}
	return owner, nil
}

// replaceAssociations verifies the referenced catalog entries and swaps the
// recipe's tag and ingredient sets for the payload's.
func replaceAssociations(ctx context.Context, q database.Querier, recipeID int64, p Payload) error {
	existingTags, err := q.GetExistingTagIDs(ctx, p.Tags)
	if err != nil {
		return fmt.Errorf("checking tags: %w", err)
	}
	if ids := missing(p.Tags, existingTags); len(ids) > 0 {
		return &NotFoundError{Resource: "tag", IDs: ids}
	}

	ingredientIDs := make([]int64, 0, len(p.Ingredients))
	for _, ing := range p.Ingredients {
		ingredientIDs = append(ingredientIDs, ing.ID)
	}
	existingIngredients, err := q.GetExistingIngredientIDs(ctx, ingredientIDs)
	if err != nil {
		return fmt.Errorf("checking ingredients: %w", err)
	}
	if ids := missing(ingredientIDs, existingIngredients); len(ids) > 0 {
		return &NotFoundError{Resource: "ingredient", IDs: ids}
	}

	if err := q.DeleteRecipeTags(ctx, recipeID); err != nil {
		return fmt.Errorf("deleting recipe tags: %w", err)
	}
	if err := q.AddRecipeTags(ctx, database.AddRecipeTagsParams{
		RecipeID: recipeID,
		TagIds:   p.Tags,
	}); err != nil {
		return fmt.Errorf("adding recipe tags: %w", err)
	}

	if err := q.DeleteRecipeIngredients(ctx, recipeID); err != nil {
		return fmt.Errorf("deleting recipe ingredients: %w", err)
	}
	rows := make([]database.CreateRecipeIngredientsParams, 0, len(p.Ingredients))
	for _, ing := range p.Ingredients {
		rows = append(rows, database.CreateRecipeIngredientsParams{
			RecipeID:     recipeID,
			IngredientID: ing.ID,
			Amount:       ing.Amount,
		})
	}
	n, err := q.CreateRecipeIngredients(ctx, rows)
	if err != nil {
		return fmt.Errorf("copying recipe ingredients: %w", err)
	}
	if n != int64(len(rows)) {
		return fmt.Errorf("copied %d of %d recipe ingredients", n, len(rows))
	}
	return nil
}

// storeImage decodes a data URI and writes it to the file store, returning
// the new key.
func storeImage(ctx context.Context, env *env.Env, uri string) (string, error) {
	if !image.IsDataURI(uri) {
		return "", newValidationError("image", "image must be a base64 data URI")
	}
	file, err := image.DecodeDataURI(uri)
	if err != nil {
		return "", newValidationError("image", "%s", err.Error())
	}
	if env.FileStore == nil {
		return "", errors.New("file store not configured")
	}
	key, _, err := env.FileStore.WriteRecipeImage(ctx, file.Suffix, file.Data)
	if err != nil {
		return "", fmt.Errorf("storing recipe image: %w", err)
	}
	return key, nil
}

func removeImage(ctx context.Context, env *env.Env, key string) {
	if key == "" || env.FileStore == nil {
		return
	}
	if err := env.FileStore.DeleteKey(ctx, key); err != nil {
		env.Logger.WarnContext(ctx, "Failed to remove recipe image",
			slog.String("key", key), slog.Any("error", err))
	}
}
