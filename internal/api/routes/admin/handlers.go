// Package admin contains handlers for the admin endpoints
package admin

import (
	"log/slog"
	"net/http"

	apiError "github.com/matt-dz/foodgram/internal/api/error"
	"github.com/matt-dz/foodgram/internal/api/routes/respond"
	"github.com/matt-dz/foodgram/internal/catalog"
	"github.com/matt-dz/foodgram/internal/env"
	mJson "github.com/matt-dz/foodgram/internal/json"
)

type CreateTagRequest struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type CreateIngredientRequest struct {
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
}

// HandleCreateTag godoc
//
//	@Summary	Create a tag.
//	@Tags		Admin
//	@Security	TokenAuth
//
//	@Accept		json
//	@Produce	json
//	@Param		request	body		CreateTagRequest	true	"Create Tag Request"
//
//	@Success	201		{object}	catalog.Tag
//	@Failure	400		{object}	apiError.Error	"Bad Request"
//	@Failure	403		{object}	apiError.Error	"Forbidden"
//	@Failure	409		{object}	apiError.Error	"Status Conflict"
//	@Router		/api/admin/tags [POST]
func HandleCreateTag(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := respond.RequestID(r)

	var request CreateTagRequest
	env.Logger.DebugContext(ctx, "Reading request body")
	defer func() { _ = r.Body.Close() }()
	if err := mJson.DecodeJSON(&request, mJson.NewDecoder(r.Body)); err != nil {
		env.Logger.ErrorContext(ctx, "Failed to decode request body", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "invalid request body", requestID)
		return
	}

	env.Logger.DebugContext(ctx, "Creating tag")
	tag, err := catalog.CreateTag(ctx, env.Database, catalog.Tag{Name: request.Name, Slug: request.Slug})
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, r, http.StatusCreated, tag)
}

// HandleCreateIngredient godoc
//
//	@Summary	Create an ingredient.
//	@Tags		Admin
//	@Security	TokenAuth
//
//	@Accept		json
//	@Produce	json
//	@Param		request	body		CreateIngredientRequest	true	"Create Ingredient Request"
//
//	@Success	201		{object}	catalog.Ingredient
//	@Failure	400		{object}	apiError.Error	"Bad Request"
//	@Failure	403		{object}	apiError.Error	"Forbidden"
//	@Failure	409		{object}	apiError.Error	"Status Conflict"
//	@Router		/api/admin/ingredients [POST]
func HandleCreateIngredient(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := respond.RequestID(r)

	var request CreateIngredientRequest
	env.Logger.DebugContext(ctx, "Reading request body")
	defer func() { _ = r.Body.Close() }()
	if err := mJson.DecodeJSON(&request, mJson.NewDecoder(r.Body)); err != nil {
		env.Logger.ErrorContext(ctx, "Failed to decode request body", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "invalid request body", requestID)
		return
	}

	env.Logger.DebugContext(ctx, "Creating ingredient")
	ingredient, err := catalog.CreateIngredient(ctx, env.Database, catalog.Ingredient{
		Name:            request.Name,
		MeasurementUnit: request.MeasurementUnit,
	})
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, r, http.StatusCreated, ingredient)
}
