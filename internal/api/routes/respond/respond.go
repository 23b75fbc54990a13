// Package respond writes JSON responses and translates domain errors into
// API errors.
package respond

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	apiError "github.com/matt-dz/foodgram/internal/api/error"
	"github.com/matt-dz/foodgram/internal/api/requestid"
	"github.com/matt-dz/foodgram/internal/api/routes/pagination"
	"github.com/matt-dz/foodgram/internal/catalog"
	"github.com/matt-dz/foodgram/internal/env"
	mJson "github.com/matt-dz/foodgram/internal/json"
	"github.com/matt-dz/foodgram/internal/recipe"
	"github.com/matt-dz/foodgram/internal/relation"
	"github.com/matt-dz/foodgram/internal/user"
)

func RequestID(r *http.Request) string {
	return requestid.String(r.Context())
}

// JSON writes v with the given status.
func JSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)

	env.Logger.DebugContext(ctx, "Writing response")
	if err := mJson.WriteJSON(w, status, v); err != nil {
		env.Logger.ErrorContext(ctx, "Failed to write response", slog.Any("error", err))
	}
}

// PathID parses the named URL parameter as a positive id. It writes a 404
// and reports false when the parameter is not an id.
func PathID(w http.ResponseWriter, r *http.Request, name string, notFound apiError.ErrorCode) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		env.EnvFromCtx(r.Context()).Logger.DebugContext(r.Context(), "Invalid path id",
			slog.String("param", name), slog.String("value", chi.URLParam(r, name)))
		_ = apiError.EncodeError(w, notFound, "not found", RequestID(r))
		return 0, false
	}
	return id, true
}

// Pagination parses page and limit. It writes a 404 and reports false for an
// invalid page.
func Pagination(w http.ResponseWriter, r *http.Request) (pagination.Params, bool) {
	params, err := pagination.Parse(r)
	if err != nil {
		_ = apiError.EncodeError(w, apiError.PageNotFound, "invalid page", RequestID(r))
		return pagination.Params{}, false
	}
	return params, true
}

// Page writes a paginated response.
func Page[T any](w http.ResponseWriter, r *http.Request, params pagination.Params, count int64, results []T) {
	page, err := pagination.New(r, params, count, results)
	if errors.Is(err, pagination.ErrInvalidPage) {
		_ = apiError.EncodeError(w, apiError.PageNotFound, "invalid page", RequestID(r))
		return
	}
	JSON(w, r, http.StatusOK, page)
}

// Error logs err and writes the matching API error. Errors without a domain
// meaning become a 500.
func Error(w http.ResponseWriter, r *http.Request, err error) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := RequestID(r)

	var (
		validationErr *recipe.ValidationError
		fieldErrs     validator.ValidationErrors
		notFoundErr   *recipe.NotFoundError
	)

	switch {
	case errors.As(err, &validationErr):
		env.Logger.DebugContext(ctx, "Request failed validation", slog.Any("error", err))
		_ = apiError.EncodeValidationError(w, "invalid request", validationErr.Fields, requestID)
	case errors.As(err, &fieldErrs):
		env.Logger.DebugContext(ctx, "Request failed validation", slog.Any("error", err))
		_ = apiError.EncodeValidationError(w, "invalid request", FieldErrors(err), requestID)
	case errors.As(err, &notFoundErr):
		code := apiError.NotFound
		switch notFoundErr.Resource {
		case "tag":
			code = apiError.TagNotFound
		case "ingredient":
			code = apiError.IngredientNotFound
		case "author":
			code = apiError.UserNotFound
		}
		encode(w, r, code, notFoundErr.Error(), err)
	case errors.Is(err, recipe.ErrRecipeNotFound):
		encode(w, r, apiError.RecipeNotFound, "recipe not found", err)
	case errors.Is(err, recipe.ErrNotAuthor):
		encode(w, r, apiError.RecipeNotOwned, "only the author may change this recipe", err)
	case errors.Is(err, recipe.ErrConflict):
		encode(w, r, apiError.Conflict, "recipe conflicts with existing data", err)
	case errors.Is(err, catalog.ErrTagNotFound):
		encode(w, r, apiError.TagNotFound, "tag not found", err)
	case errors.Is(err, catalog.ErrIngredientNotFound):
		encode(w, r, apiError.IngredientNotFound, "ingredient not found", err)
	case errors.Is(err, catalog.ErrTagExists), errors.Is(err, catalog.ErrIngredientExists):
		encode(w, r, apiError.Conflict, err.Error(), err)
	case errors.Is(err, user.ErrUserNotFound):
		encode(w, r, apiError.UserNotFound, "user not found", err)
	case errors.Is(err, user.ErrEmailConflict):
		encode(w, r, apiError.EmailConflict, "email already in use", err)
	case errors.Is(err, user.ErrUsernameConflict):
		encode(w, r, apiError.UsernameConflict, "username already in use", err)
	case errors.Is(err, user.ErrInvalidAvatar):
		encode(w, r, apiError.InvalidImage, err.Error(), err)
	case errors.Is(err, relation.ErrSelfSubscription):
		encode(w, r, apiError.SelfSubscription, "cannot subscribe to yourself", err)
	case errors.Is(err, relation.ErrAlreadyExists):
		encode(w, r, apiError.AlreadyExists, err.Error(), err)
	case errors.Is(err, relation.ErrNotFound):
		encode(w, r, apiError.RelationNotFound, err.Error(), err)
	default:
		env.Logger.ErrorContext(ctx, "Request failed", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
	}
}

func encode(w http.ResponseWriter, r *http.Request, code apiError.ErrorCode, message string, err error) {
	env.EnvFromCtx(r.Context()).Logger.ErrorContext(r.Context(), message, slog.Any("error", err))
	_ = apiError.EncodeError(w, code, message, RequestID(r))
}

// FieldErrors converts validator errors into per-field messages keyed by the
// field's name as reported by the validator.
func FieldErrors(err error) map[string][]string {
	fields := make(map[string][]string)
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		fields["non_field_errors"] = []string{err.Error()}
		return fields
	}
	for _, fe := range validationErrs {
		name := fe.Field()
		fields[name] = append(fields[name], fieldMessage(fe))
	}
	return fields
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "max":
		return "ensure this field has no more than " + fe.Param() + " characters"
	case "email":
		return "enter a valid email address"
	}
	return fe.Tag() + " check failed"
}
