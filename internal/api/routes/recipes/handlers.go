// Package recipes contains handlers for the recipe resource, its favorite and
// shopping cart toggles, the shopping list export and short links.
package recipes

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	apiError "github.com/matt-dz/foodgram/internal/api/error"
	"github.com/matt-dz/foodgram/internal/api/routes/respond"
	"github.com/matt-dz/foodgram/internal/api/token"
	"github.com/matt-dz/foodgram/internal/env"
	mJson "github.com/matt-dz/foodgram/internal/json"
	"github.com/matt-dz/foodgram/internal/metrics"
	"github.com/matt-dz/foodgram/internal/recipe"
	"github.com/matt-dz/foodgram/internal/relation"
	"github.com/matt-dz/foodgram/internal/shoppinglist"
)

var now = time.Now

// HandleListRecipes godoc
//
//	@Summary	List recipes.
//	@Tags		Recipes
//
//	@Produce	json
//	@Param		page				query		int		false	"Page number"
//	@Param		limit				query		int		false	"Page size"
//	@Param		author				query		int		false	"Author ID"
//	@Param		tags				query		[]string	false	"Tag slugs"	collectionFormat(multi)
//	@Param		is_favorited		query		int		false	"Only favorites (0 or 1)"
//	@Param		is_in_shopping_cart	query		int		false	"Only cart recipes (0 or 1)"
//
//	@Success	200					{object}	pagination.Page[recipe.Recipe]
//	@Failure	400					{object}	apiError.Error	"Invalid filter"
//	@Failure	404					{object}	apiError.Error	"Invalid page"
//	@Router		/api/recipes [GET]
func HandleListRecipes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)

	params, ok := respond.Pagination(w, r)
	if !ok {
		return
	}
	filter, fields := parseFilter(r.URL.Query())
	if fields != nil {
		_ = apiError.EncodeValidationError(w, "invalid query parameters", fields, respond.RequestID(r))
		return
	}

	env.Logger.DebugContext(ctx, "Listing recipes")
	recipes, count, err := recipe.List(ctx, env, token.ViewerFromCtx(ctx), filter, params.Limit32(), params.Offset())
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.Page(w, r, params, count, recipes)
}

// HandleGetRecipe godoc
//
//	@Summary	Get a recipe.
//	@Tags		Recipes
//
//	@Produce	json
//	@Param		id	path		int	true	"Recipe ID"
//
//	@Success	200	{object}	recipe.Recipe
//	@Failure	404	{object}	apiError.Error	"Not Found"
//	@Router		/api/recipes/{id} [GET]
func HandleGetRecipe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)

	id, ok := respond.PathID(w, r, "id", apiError.RecipeNotFound)
	if !ok {
		return
	}

	env.Logger.DebugContext(ctx, "Getting recipe", slog.Int64("id", id))
	rec, err := recipe.Get(ctx, env, id, token.ViewerFromCtx(ctx))
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, r, http.StatusOK, rec)
}

// HandleCreateRecipe godoc
//
//	@Summary	Create a recipe.
//	@Tags		Recipes
//	@Security	TokenAuth
//
//	@Accept		json
//	@Produce	json
//	@Param		request	body		recipe.Payload	true	"Recipe"
//
//	@Success	201		{object}	recipe.Recipe
//	@Failure	400		{object}	apiError.Error	"Bad Request"
//	@Failure	401		{object}	apiError.Error	"Unauthorized"
//	@Router		/api/recipes [POST]
func HandleCreateRecipe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	viewer := token.ViewerFromCtx(ctx)

	payload, ok := decodePayload(w, r)
	if !ok {
		return
	}

	env.Logger.DebugContext(ctx, "Creating recipe")
	rec, err := recipe.Create(ctx, env, viewer.ID, payload)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, r, http.StatusCreated, rec)
}

// HandleUpdateRecipe godoc
//
//	@Summary	Update a recipe.
//	@Description	Replaces the recipe fields, tags and ingredients. The image is
//	@Description	kept when omitted.
//	@Tags		Recipes
//	@Security	TokenAuth
//
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int				true	"Recipe ID"
//	@Param		request	body		recipe.Payload	true	"Recipe"
//
//	@Success	200		{object}	recipe.Recipe
//	@Failure	400		{object}	apiError.Error	"Bad Request"
//	@Failure	403		{object}	apiError.Error	"Not the author"
//	@Failure	404		{object}	apiError.Error	"Not Found"
//	@Router		/api/recipes/{id} [PATCH]
func HandleUpdateRecipe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	viewer := token.ViewerFromCtx(ctx)

	id, ok := respond.PathID(w, r, "id", apiError.RecipeNotFound)
	if !ok {
		return
	}
	payload, ok := decodePayload(w, r)
	if !ok {
		return
	}

	env.Logger.DebugContext(ctx, "Updating recipe", slog.Int64("id", id))
	rec, err := recipe.Update(ctx, env, viewer.ID, id, payload)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, r, http.StatusOK, rec)
}

// HandleDeleteRecipe godoc
//
//	@Summary	Delete a recipe.
//	@Tags		Recipes
//	@Security	TokenAuth
//
//	@Param		id	path	int	true	"Recipe ID"
//
//	@Success	204
//	@Failure	403	{object}	apiError.Error	"Not the author"
//	@Failure	404	{object}	apiError.Error	"Not Found"
//	@Router		/api/recipes/{id} [DELETE]
func HandleDeleteRecipe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	viewer := token.ViewerFromCtx(ctx)

	id, ok := respond.PathID(w, r, "id", apiError.RecipeNotFound)
	if !ok {
		return
	}

	env.Logger.DebugContext(ctx, "Deleting recipe", slog.Int64("id", id))
	if err := recipe.Delete(ctx, env, viewer.ID, id); err != nil {
		respond.Error(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleGetLink godoc
//
//	@Summary	Get the short link of a recipe.
//	@Tags		Recipes
//
//	@Produce	json
//	@Param		id	path		int	true	"Recipe ID"
//
//	@Success	200	{object}	ShortLinkResponse
//	@Failure	404	{object}	apiError.Error	"Not Found"
//	@Router		/api/recipes/{id}/get-link [GET]
func HandleGetLink(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)

	id, ok := respond.PathID(w, r, "id", apiError.RecipeNotFound)
	if !ok {
		return
	}

	env.Logger.DebugContext(ctx, "Checking recipe exists", slog.Int64("id", id))
	if _, err := recipe.GetShort(ctx, env, id); err != nil {
		respond.Error(w, r, err)
		return
	}

	link := fmt.Sprintf("%s/s/%d", strings.TrimRight(env.Config.HostOrigin, "/"), id)
	respond.JSON(w, r, http.StatusOK, ShortLinkResponse{ShortLink: link})
}

// HandleShortLink godoc
//
//	@Summary	Resolve a short link.
//	@Tags		Recipes
//
//	@Param		id	path	int	true	"Recipe ID"
//
//	@Success	302
//	@Failure	404	{object}	apiError.Error	"Not Found"
//	@Router		/s/{id} [GET]
func HandleShortLink(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)

	id, ok := respond.PathID(w, r, "id", apiError.RecipeNotFound)
	if !ok {
		return
	}

	env.Logger.DebugContext(ctx, "Resolving short link", slog.Int64("id", id))
	exists, err := env.Database.RecipeExists(ctx, id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	if !exists {
		respond.Error(w, r, recipe.ErrRecipeNotFound)
		return
	}
	http.Redirect(w, r, "/recipes/"+strconv.FormatInt(id, 10)+"/", http.StatusFound)
}

// HandleFavorite godoc
//
//	@Summary	Add a recipe to favorites.
//	@Tags		Recipes
//	@Security	TokenAuth
//
//	@Produce	json
//	@Param		id	path		int	true	"Recipe ID"
//
//	@Success	201	{object}	recipe.Short
//	@Failure	400	{object}	apiError.Error	"Already in favorites"
//	@Failure	404	{object}	apiError.Error	"Not Found"
//	@Router		/api/recipes/{id}/favorite [POST]
func HandleFavorite(w http.ResponseWriter, r *http.Request) {
	handleAdd(w, r, relation.Favorite)
}

// HandleUnfavorite godoc
//
//	@Summary	Remove a recipe from favorites.
//	@Tags		Recipes
//	@Security	TokenAuth
//
//	@Param		id	path	int	true	"Recipe ID"
//
//	@Success	204
//	@Failure	400	{object}	apiError.Error	"Not in favorites"
//	@Failure	404	{object}	apiError.Error	"Not Found"
//	@Router		/api/recipes/{id}/favorite [DELETE]
func HandleUnfavorite(w http.ResponseWriter, r *http.Request) {
	handleRemove(w, r, relation.Favorite)
}

// HandleAddToCart godoc
//
//	@Summary	Add a recipe to the shopping cart.
//	@Tags		Recipes
//	@Security	TokenAuth
//
//	@Produce	json
//	@Param		id	path		int	true	"Recipe ID"
//
//	@Success	201	{object}	recipe.Short
//	@Failure	400	{object}	apiError.Error	"Already in the cart"
//	@Failure	404	{object}	apiError.Error	"Not Found"
//	@Router		/api/recipes/{id}/shopping_cart [POST]
func HandleAddToCart(w http.ResponseWriter, r *http.Request) {
	handleAdd(w, r, relation.ShoppingCart)
}

// HandleRemoveFromCart godoc
//
//	@Summary	Remove a recipe from the shopping cart.
//	@Tags		Recipes
//	@Security	TokenAuth
//
//	@Param		id	path	int	true	"Recipe ID"
//
//	@Success	204
//	@Failure	400	{object}	apiError.Error	"Not in the cart"
//	@Failure	404	{object}	apiError.Error	"Not Found"
//	@Router		/api/recipes/{id}/shopping_cart [DELETE]
func HandleRemoveFromCart(w http.ResponseWriter, r *http.Request) {
	handleRemove(w, r, relation.ShoppingCart)
}

// HandleDownloadShoppingCart godoc
//
//	@Summary	Download the shopping list.
//	@Tags		Recipes
//	@Security	TokenAuth
//
//	@Produce	plain
//	@Success	200	{string}	string	"Shopping list"
//	@Failure	401	{object}	apiError.Error	"Unauthorized"
//	@Router		/api/recipes/download_shopping_cart [GET]
func HandleDownloadShoppingCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	viewer := token.ViewerFromCtx(ctx)

	env.Logger.DebugContext(ctx, "Building shopping list")
	list, err := shoppinglist.Build(ctx, env.Database, viewer.ID)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	date := now()
	var buf bytes.Buffer
	if err := shoppinglist.Render(&buf, date, list); err != nil {
		respond.Error(w, r, err)
		return
	}

	metrics.ShoppingListDownloads.Inc()
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", shoppinglist.Filename(date)))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		env.Logger.ErrorContext(ctx, "Failed to write shopping list", slog.Any("error", err))
	}
}

func handleAdd(w http.ResponseWriter, r *http.Request, kind relation.Kind) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	viewer := token.ViewerFromCtx(ctx)

	id, ok := respond.PathID(w, r, "id", apiError.RecipeNotFound)
	if !ok {
		return
	}

	env.Logger.DebugContext(ctx, "Adding recipe", slog.String("kind", string(kind)), slog.Int64("id", id))
	if err := relation.Add(ctx, env.Database, kind, viewer.ID, id); err != nil {
		respond.Error(w, r, targetError(err))
		return
	}

	short, err := recipe.GetShort(ctx, env, id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, r, http.StatusCreated, short)
}

func handleRemove(w http.ResponseWriter, r *http.Request, kind relation.Kind) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	viewer := token.ViewerFromCtx(ctx)

	id, ok := respond.PathID(w, r, "id", apiError.RecipeNotFound)
	if !ok {
		return
	}

	env.Logger.DebugContext(ctx, "Removing recipe", slog.String("kind", string(kind)), slog.Int64("id", id))
	if err := relation.Remove(ctx, env.Database, kind, viewer.ID, id); err != nil {
		respond.Error(w, r, targetError(err))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func decodePayload(w http.ResponseWriter, r *http.Request) (recipe.Payload, bool) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)

	var payload recipe.Payload
	env.Logger.DebugContext(ctx, "Reading request body")
	defer func() { _ = r.Body.Close() }()
	if err := mJson.DecodeJSON(&payload, mJson.NewDecoder(r.Body)); err != nil {
		env.Logger.ErrorContext(ctx, "Failed to decode request body", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "invalid request body", respond.RequestID(r))
		return recipe.Payload{}, false
	}
	return payload, true
}

func targetError(err error) error {
	if errors.Is(err, relation.ErrTargetNotFound) {
		return recipe.ErrRecipeNotFound
	}
	return err
}
