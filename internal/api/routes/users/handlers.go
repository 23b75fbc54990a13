// Package users contains handlers for the user resource.
package users

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	apiError "github.com/matt-dz/foodgram/internal/api/error"
	"github.com/matt-dz/foodgram/internal/api/routes/respond"
	"github.com/matt-dz/foodgram/internal/api/token"
	"github.com/matt-dz/foodgram/internal/env"
	mJson "github.com/matt-dz/foodgram/internal/json"
	"github.com/matt-dz/foodgram/internal/password"
	"github.com/matt-dz/foodgram/internal/recipe"
	"github.com/matt-dz/foodgram/internal/relation"
	"github.com/matt-dz/foodgram/internal/user"
)

// HandleRegister godoc
//
//	@Summary	Register a user.
//	@Tags		Users
//
//	@Accept		json
//	@Produce	json
//	@Param		request	body		RegisterRequest	true	"Register Request"
//
//	@Success	201		{object}	RegisterResponse
//	@Failure	400		{object}	apiError.Error	"Bad Request"
//	@Failure	409		{object}	apiError.Error	"Status Conflict"
//	@Router		/api/users [POST]
func HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := respond.RequestID(r)

	// Decode JSON
	var request RegisterRequest
	env.Logger.DebugContext(ctx, "Reading request body")
	defer func() { _ = r.Body.Close() }()
	if err := mJson.DecodeJSON(&request, mJson.NewDecoder(r.Body)); err != nil {
		env.Logger.ErrorContext(ctx, "Failed to decode request body", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "invalid request body", requestID)
		return
	}
	if err := newValidator().Struct(request); err != nil {
		env.Logger.ErrorContext(ctx, "Failed to validate request body", slog.Any("error", err))
		_ = apiError.EncodeValidationError(w, "invalid request body", respond.FieldErrors(err), requestID)
		return
	}

	// Ensure password strength
	env.Logger.DebugContext(ctx, "Validating password")
	err := password.Validate(request.Password,
		request.Username, request.Email, request.FirstName, request.LastName)
	if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to validate password", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.WeakPassword, err.Error(), requestID)
		return
	}

	// Create user
	env.Logger.DebugContext(ctx, "Creating user")
	userID, err := user.Register(ctx, env.Database, user.RegisterParams{
		Email:     request.Email,
		Username:  request.Username,
		FirstName: request.FirstName,
		LastName:  request.LastName,
		Password:  request.Password,
	})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	profile, err := user.Get(ctx, env.Database, userID, user.Anonymous(), env.FileStore)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, r, http.StatusCreated, RegisterResponse{
		ID:        profile.ID,
		Email:     profile.Email,
		Username:  profile.Username,
		FirstName: profile.FirstName,
		LastName:  profile.LastName,
	})
}

// HandleListUsers godoc
//
//	@Summary	List users.
//	@Tags		Users
//
//	@Produce	json
//	@Param		page	query		int	false	"Page number"
//	@Param		limit	query		int	false	"Page size"
//
//	@Success	200		{object}	pagination.Page[user.Profile]
//	@Failure	404		{object}	apiError.Error	"Invalid page"
//	@Router		/api/users [GET]
func HandleListUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)

	params, ok := respond.Pagination(w, r)
	if !ok {
		return
	}

	env.Logger.DebugContext(ctx, "Listing users")
	profiles, count, err := user.List(ctx, env.Database, token.ViewerFromCtx(ctx), env.FileStore,
		params.Limit32(), params.Offset())
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.Page(w, r, params, count, profiles)
}

// HandleGetUser godoc
//
//	@Summary	Get a user.
//	@Tags		Users
//
//	@Produce	json
//	@Param		id	path		int	true	"User ID"
//
//	@Success	200	{object}	user.Profile
//	@Failure	404	{object}	apiError.Error	"Not Found"
//	@Router		/api/users/{id} [GET]
func HandleGetUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)

	id, ok := respond.PathID(w, r, "id", apiError.UserNotFound)
	if !ok {
		return
	}

	env.Logger.DebugContext(ctx, "Getting user", slog.Int64("id", id))
	profile, err := user.Get(ctx, env.Database, id, token.ViewerFromCtx(ctx), env.FileStore)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, r, http.StatusOK, profile)
}

// HandleMe godoc
//
//	@Summary	Get the current user.
//	@Tags		Users
//	@Security	TokenAuth
//
//	@Produce	json
//	@Success	200	{object}	user.Profile
//	@Failure	401	{object}	apiError.Error	"Unauthorized"
//	@Router		/api/users/me [GET]
func HandleMe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	viewer := token.ViewerFromCtx(ctx)

	env.Logger.DebugContext(ctx, "Getting current user")
	profile, err := user.Get(ctx, env.Database, viewer.ID, viewer, env.FileStore)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, r, http.StatusOK, profile)
}

// HandleSetAvatar godoc
//
//	@Summary	Set the avatar of the current user.
//	@Tags		Users
//	@Security	TokenAuth
//
//	@Accept		json
//	@Produce	json
//	@Param		request	body		AvatarRequest	true	"Base64 data URI"
//
//	@Success	200		{object}	AvatarResponse
//	@Failure	400		{object}	apiError.Error	"Invalid image"
//	@Router		/api/users/me/avatar [PUT]
func HandleSetAvatar(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := respond.RequestID(r)
	viewer := token.ViewerFromCtx(ctx)

	var request AvatarRequest
	env.Logger.DebugContext(ctx, "Reading request body")
	defer func() { _ = r.Body.Close() }()
	if err := mJson.DecodeJSON(&request, mJson.NewDecoder(r.Body)); err != nil {
		env.Logger.ErrorContext(ctx, "Failed to decode request body", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "invalid request body", requestID)
		return
	}
	if err := newValidator().Struct(request); err != nil {
		env.Logger.ErrorContext(ctx, "Failed to validate request body", slog.Any("error", err))
		_ = apiError.EncodeValidationError(w, "invalid request body", respond.FieldErrors(err), requestID)
		return
	}

	env.Logger.DebugContext(ctx, "Storing avatar")
	url, err := user.SetAvatar(ctx, env.Database, env.FileStore, viewer.ID, request.Avatar)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, r, http.StatusOK, AvatarResponse{Avatar: url})
}

// HandleDeleteAvatar godoc
//
//	@Summary	Remove the avatar of the current user.
//	@Tags		Users
//	@Security	TokenAuth
//
//	@Success	204
//	@Router		/api/users/me/avatar [DELETE]
func HandleDeleteAvatar(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	viewer := token.ViewerFromCtx(ctx)

	env.Logger.DebugContext(ctx, "Removing avatar")
	if err := user.RemoveAvatar(ctx, env.Database, env.FileStore, viewer.ID); err != nil {
		respond.Error(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleSubscriptions godoc
//
//	@Summary	List the authors the current user is subscribed to.
//	@Tags		Users
//	@Security	TokenAuth
//
//	@Produce	json
//	@Param		page			query		int	false	"Page number"
//	@Param		limit			query		int	false	"Page size"
//	@Param		recipes_limit	query		int	false	"Recipes shown per author"
//
//	@Success	200				{object}	pagination.Page[recipe.Author]
//	@Router		/api/users/subscriptions [GET]
func HandleSubscriptions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	viewer := token.ViewerFromCtx(ctx)

	params, ok := respond.Pagination(w, r)
	if !ok {
		return
	}
	recipesLimit, ok := parseRecipesLimit(w, r)
	if !ok {
		return
	}

	env.Logger.DebugContext(ctx, "Listing subscriptions")
	authors, count, err := recipe.Subscriptions(ctx, env, viewer.ID, recipesLimit, params.Limit32(), params.Offset())
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.Page(w, r, params, count, authors)
}

// HandleSubscribe godoc
//
//	@Summary	Subscribe to an author.
//	@Tags		Users
//	@Security	TokenAuth
//
//	@Produce	json
//	@Param		id				path		int	true	"User ID"
//	@Param		recipes_limit	query		int	false	"Recipes shown"
//
//	@Success	201				{object}	recipe.Author
//	@Failure	400				{object}	apiError.Error	"Already subscribed or self subscription"
//	@Failure	404				{object}	apiError.Error	"Not Found"
//	@Router		/api/users/{id}/subscribe [POST]
func HandleSubscribe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	viewer := token.ViewerFromCtx(ctx)

	authorID, ok := respond.PathID(w, r, "id", apiError.UserNotFound)
	if !ok {
		return
	}
	recipesLimit, ok := parseRecipesLimit(w, r)
	if !ok {
		return
	}

	env.Logger.DebugContext(ctx, "Subscribing", slog.Int64("author-id", authorID))
	if err := relation.Add(ctx, env.Database, relation.Subscription, viewer.ID, authorID); err != nil {
		respond.Error(w, r, targetError(err))
		return
	}

	author, err := recipe.GetAuthor(ctx, env, authorID, viewer, recipesLimit)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, r, http.StatusCreated, author)
}

// HandleUnsubscribe godoc
//
//	@Summary	Unsubscribe from an author.
//	@Tags		Users
//	@Security	TokenAuth
//
//	@Param		id	path	int	true	"User ID"
//
//	@Success	204
//	@Failure	400	{object}	apiError.Error	"Not subscribed"
//	@Failure	404	{object}	apiError.Error	"Not Found"
//	@Router		/api/users/{id}/subscribe [DELETE]
func HandleUnsubscribe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	viewer := token.ViewerFromCtx(ctx)

	authorID, ok := respond.PathID(w, r, "id", apiError.UserNotFound)
	if !ok {
		return
	}

	env.Logger.DebugContext(ctx, "Unsubscribing", slog.Int64("author-id", authorID))
	if err := relation.Remove(ctx, env.Database, relation.Subscription, viewer.ID, authorID); err != nil {
		respond.Error(w, r, targetError(err))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// parseRecipesLimit reads recipes_limit. Absent means unlimited, reported as
// -1.
func parseRecipesLimit(w http.ResponseWriter, r *http.Request) (int32, bool) {
	raw := r.URL.Query().Get("recipes_limit")
	if raw == "" {
		return -1, true
	}
	limit, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || limit < 0 {
		_ = apiError.EncodeValidationError(w, "invalid query parameters", map[string][]string{
			"recipes_limit": {"recipes_limit must be a non-negative integer"},
		}, respond.RequestID(r))
		return 0, false
	}
	return int32(limit), true
}

func targetError(err error) error {
	if errors.Is(err, relation.ErrTargetNotFound) {
		return user.ErrUserNotFound
	}
	return err
}
