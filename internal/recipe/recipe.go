// Package recipe contains the recipe write transaction and the recipe read
// projection.
package recipe

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/matt-dz/foodgram/internal/database"
	"github.com/matt-dz/foodgram/internal/env"
	"github.com/matt-dz/foodgram/internal/user"
)

type Tag struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type Ingredient struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
	Amount          int32  `json:"amount"`
}

// Recipe is the read projection returned by every recipe endpoint.
type Recipe struct {
	ID               int64        `json:"id"`
	Tags             []Tag        `json:"tags"`
	Author           user.Profile `json:"author"`
	Ingredients      []Ingredient `json:"ingredients"`
	IsFavorited      bool         `json:"is_favorited"`
	IsInShoppingCart bool         `json:"is_in_shopping_cart"`
	Name             string       `json:"name"`
	Image            string       `json:"image"`
	Text             string       `json:"text"`
	CookingTime      int32        `json:"cooking_time"`
}

// Short is the compact form used by relation toggles and subscriptions.
type Short struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	CookingTime int32  `json:"cooking_time"`
}

// Filter narrows a recipe listing. Nil fields are not applied.
type Filter struct {
	AuthorID         *int64
	TagSlugs         []string
	IsFavorited      *bool
	IsInShoppingCart *bool
}

func fileURL(env *env.Env, key string) string {
	if env.FileStore == nil || key == "" {
		return key
	}
	return env.FileStore.FileURL(key)
}

func urlResolver(env *env.Env) user.URLResolver {
	if env.FileStore == nil {
		return nil
	}
	return env.FileStore
}

func project(env *env.Env, row database.GetRecipeRow, viewer user.Viewer) Recipe {
	return Recipe{
		ID: row.ID,
		Author: user.FromRow(database.GetUserProfileRow{
			ID:           row.AuthorID,
			Email:        row.AuthorEmail,
			Username:     row.AuthorUsername,
			FirstName:    row.AuthorFirstName,
			LastName:     row.AuthorLastName,
			Avatar:       row.AuthorAvatar,
			IsSubscribed: row.AuthorIsSubscribed,
		}, viewer, urlResolver(env)),
		IsFavorited:      viewer.Flag(row.IsFavorited),
		IsInShoppingCart: viewer.Flag(row.IsInShoppingCart),
		Name:             row.Name,
		Image:            fileURL(env, row.Image),
		Text:             row.Text,
		CookingTime:      row.CookingTime,
		Tags:             []Tag{},
		Ingredients:      []Ingredient{},
	}
}

// attachAssociations loads tags and ingredients for the recipes in one
// query each.
func attachAssociations(ctx context.Context, q database.Querier, recipes []Recipe) error {
	if len(recipes) == 0 {
		return nil
	}
	ids := make([]int64, 0, len(recipes))
	index := make(map[int64]int, len(recipes))
	for i, r := range recipes {
		ids = append(ids, r.ID)
		index[r.ID] = i
	}

	tags, err := q.ListTagsForRecipes(ctx, ids)
	if err != nil {
		return fmt.Errorf("listing recipe tags: %w", err)
	}
	for _, t := range tags {
		i := index[t.RecipeID]
		recipes[i].Tags = append(recipes[i].Tags, Tag{ID: t.ID, Name: t.Name, Slug: t.Slug})
	}

	ingredients, err := q.ListIngredientsForRecipes(ctx, ids)
	if err != nil {
		return fmt.Errorf("listing recipe ingredients: %w", err)
	}
	for _, ing := range ingredients {
		i := index[ing.RecipeID]
		recipes[i].Ingredients = append(recipes[i].Ingredients, Ingredient{
			ID:              ing.ID,
			Name:            ing.Name,
			MeasurementUnit: ing.MeasurementUnit,
			Amount:          ing.Amount,
		})
	}
	return nil
}

// Get returns the read projection of one recipe for the viewer.
func Get(ctx context.Context, env *env.Env, id int64, viewer user.Viewer) (Recipe, error) {
	row, err := env.Database.GetRecipe(ctx, database.GetRecipeParams{
		ID:       id,
		ViewerID: viewer.QueryID(),
	})
	if errors.Is(err, pgx.ErrNoRows) {
		return Recipe{}, ErrRecipeNotFound
	} else if err != nil {
		return Recipe{}, fmt.Errorf("getting recipe: %w", err)
	}

	recipes := []Recipe{project(env, row, viewer)}
	if err := attachAssociations(ctx, env.Database, recipes); err != nil {
		return Recipe{}, err
	}
	return recipes[0], nil
}

// List returns one page of recipes, newest first, and the total number of
// recipes matching the filter. Relation filters are ignored for anonymous
// viewers.
func List(ctx context.Context, env *env.Env, viewer user.Viewer, filter Filter, limit, offset int32) ([]Recipe, int64, error) {
	params := database.CountRecipesParams{
		ViewerID: viewer.QueryID(),
		TagSlugs: filter.TagSlugs,
	}
	if filter.AuthorID != nil {
		params.AuthorID = pgtype.Int8{Int64: *filter.AuthorID, Valid: true}
	}
	if viewer.Authenticated && filter.IsFavorited != nil {
		params.IsFavorited = pgtype.Bool{Bool: *filter.IsFavorited, Valid: true}
	}
	if viewer.Authenticated && filter.IsInShoppingCart != nil {
		params.IsInShoppingCart = pgtype.Bool{Bool: *filter.IsInShoppingCart, Valid: true}
	}

	count, err := env.Database.CountRecipes(ctx, params)
	if err != nil {
		return nil, 0, fmt.Errorf("counting recipes: %w", err)
	}

	rows, err := env.Database.ListRecipes(ctx, database.ListRecipesParams{
		ViewerID:         params.ViewerID,
		AuthorID:         params.AuthorID,
		TagSlugs:         params.TagSlugs,
		IsFavorited:      params.IsFavorited,
		IsInShoppingCart: params.IsInShoppingCart,
		Limit:            limit,
		Offset:           offset,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("listing recipes: %w", err)
	}

	recipes := make([]Recipe, 0, len(rows))
	for _, row := range rows {
		recipes = append(recipes, project(env, database.GetRecipeRow(row), viewer))
	}
	if err := attachAssociations(ctx, env.Database, recipes); err != nil {
		return nil, 0, err
	}
	return recipes, count, nil
}

func GetShort(ctx context.Context, env *env.Env, id int64) (Short, error) {
	row, err := env.Database.GetRecipeShort(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return Short{}, ErrRecipeNotFound
	} else if err != nil {
		return Short{}, fmt.Errorf("getting recipe: %w", err)
	}
	return Short{
		ID:          row.ID,
		Name:        row.Name,
		Image:       fileURL(env, row.Image),
		CookingTime: row.CookingTime,
	}, nil
}

// ShortsByAuthor groups at most limit recipes per author, newest first. A
// negative limit means no limit.
func ShortsByAuthor(ctx context.Context, env *env.Env, authorIDs []int64, limit int32) (map[int64][]Short, error) {
	params := database.ListAuthorsRecipesParams{AuthorIds: authorIDs}
	if limit >= 0 {
		params.RecipesLimit = pgtype.Int4{Int32: limit, Valid: true}
	}
	rows, err := env.Database.ListAuthorsRecipes(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("listing authors recipes: %w", err)
	}

	out := make(map[int64][]Short, len(authorIDs))
	for _, row := range rows {
		out[row.AuthorID] = append(out[row.AuthorID], Short{
			ID:          row.ID,
			Name:        row.Name,
			Image:       fileURL(env, row.Image),
			CookingTime: row.CookingTime,
		})
	}
	return out, nil
}
