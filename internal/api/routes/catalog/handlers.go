// Package catalog contains handlers for the tag and ingredient endpoints.
package catalog

import (
	"log/slog"
	"net/http"

	apiError "github.com/matt-dz/foodgram/internal/api/error"
	"github.com/matt-dz/foodgram/internal/api/routes/respond"
	"github.com/matt-dz/foodgram/internal/catalog"
	"github.com/matt-dz/foodgram/internal/env"
)

// HandleListTags godoc
//
//	@Summary	List tags.
//	@Tags		Tags
//
//	@Produce	json
//	@Success	200	{array}	catalog.Tag
//	@Router		/api/tags [GET]
func HandleListTags(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)

	env.Logger.DebugContext(ctx, "Listing tags")
	tags, err := catalog.ListTags(ctx, env.Database)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, r, http.StatusOK, tags)
}

// HandleGetTag godoc
//
//	@Summary	Get a tag.
//	@Tags		Tags
//
//	@Produce	json
//	@Param		id	path		int	true	"Tag ID"
//	@Success	200	{object}	catalog.Tag
//	@Failure	404	{object}	apiError.Error	"Not Found"
//	@Router		/api/tags/{id} [GET]
func HandleGetTag(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)

	id, ok := respond.PathID(w, r, "id", apiError.TagNotFound)
	if !ok {
		return
	}

	env.Logger.DebugContext(ctx, "Getting tag", slog.Int64("id", id))
	tag, err := catalog.GetTag(ctx, env.Database, id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, r, http.StatusOK, tag)
}

// HandleListIngredients godoc
//
//	@Summary		List ingredients.
//	@Description	Filters by a case-insensitive name prefix when name is given.
//	@Tags			Ingredients
//
//	@Produce		json
//	@Param			name	query	string	false	"Name prefix"
//	@Success		200		{array}	catalog.Ingredient
//	@Router			/api/ingredients [GET]
func HandleListIngredients(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	prefix := r.URL.Query().Get("name")

	env.Logger.DebugContext(ctx, "Listing ingredients", slog.String("prefix", prefix))
	ingredients, err := catalog.ListIngredients(ctx, env.Database, prefix)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, r, http.StatusOK, ingredients)
}

// HandleGetIngredient godoc
//
//	@Summary	Get an ingredient.
//	@Tags		Ingredients
//
//	@Produce	json
//	@Param		id	path		int	true	"Ingredient ID"
//	@Success	200	{object}	catalog.Ingredient
//	@Failure	404	{object}	apiError.Error	"Not Found"
//	@Router		/api/ingredients/{id} [GET]
func HandleGetIngredient(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)

	id, ok := respond.PathID(w, r, "id", apiError.IngredientNotFound)
	if !ok {
		return
	}

	env.Logger.DebugContext(ctx, "Getting ingredient", slog.Int64("id", id))
	ingredient, err := catalog.GetIngredient(ctx, env.Database, id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, r, http.StatusOK, ingredient)
}
