// Package auth contains handlers for the auth endpoints
package auth

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	apiError "github.com/matt-dz/foodgram/internal/api/error"
	"github.com/matt-dz/foodgram/internal/api/routes/respond"
	"github.com/matt-dz/foodgram/internal/api/token"
	"github.com/matt-dz/foodgram/internal/env"
	mJson "github.com/matt-dz/foodgram/internal/json"
	"github.com/matt-dz/foodgram/internal/jwt"
	"github.com/matt-dz/foodgram/internal/role"
	"github.com/matt-dz/foodgram/internal/user"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	AuthToken string `json:"auth_token"`
}

// HandleLogin godoc
//
//	@Summary		Obtain an access token.
//	@Description	The token is returned in the body and set as an http-only cookie.
//	@Tags			Auth
//
//	@Accept			json
//	@Produce		json
//	@Param			request	body		LoginRequest	true	"Login Request"
//
//	@Success		200		{object}	LoginResponse
//	@Failure		400		{object}	apiError.Error	"Invalid credentials"
//	@Failure		429		{object}	apiError.Error	"Too many requests"
//	@Router			/api/auth/token/login [POST]
func HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	env := env.EnvFromCtx(ctx)
	requestID := respond.RequestID(r)

	// Decode JSON
	var request LoginRequest
	env.Logger.DebugContext(ctx, "Reading request body")
	defer func() { _ = r.Body.Close() }()
	if err := mJson.DecodeJSON(&request, mJson.NewDecoder(r.Body)); err != nil {
		env.Logger.ErrorContext(ctx, "Failed to decode request body", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.BadRequest, "invalid request body", requestID)
		return
	}
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(request); err != nil {
		env.Logger.ErrorContext(ctx, "Failed to validate request body", slog.Any("error", err))
		_ = apiError.EncodeError(w, apiError.InvalidCredentials, "email or password is incorrect", requestID)
		return
	}

	// Check credentials
	env.Logger.DebugContext(ctx, "Checking credentials")
	u, err := user.Login(ctx, env.Database, request.Email, request.Password)
	if errors.Is(err, user.ErrInvalidCredentials) {
		env.Logger.ErrorContext(ctx, "Invalid credentials", slog.String("email", request.Email))
		_ = apiError.EncodeError(w, apiError.InvalidCredentials, "email or password is incorrect", requestID)
		return
	} else if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to check credentials", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	// Create access token
	env.Logger.DebugContext(ctx, "Generating access token")
	accessToken, err := token.CreateAccessToken(jwt.JWTParams{
		Role:   role.FromDB(u.Role).String(),
		UserID: u.ID,
	}, env)
	if err != nil {
		env.Logger.ErrorContext(ctx, "Failed to create access token", slog.Any("error", err))
		_ = apiError.EncodeInternalError(w, requestID)
		return
	}

	http.SetCookie(w, token.NewAccessTokenCookie(accessToken, env))
	respond.JSON(w, r, http.StatusOK, LoginResponse{AuthToken: accessToken})
}

// HandleLogout godoc
//
//	@Summary	Drop the access token cookie.
//	@Tags		Auth
//	@Security	TokenAuth
//
//	@Success	204
//	@Failure	401	{object}	apiError.Error	"Unauthorized"
//	@Router		/api/auth/token/logout [POST]
func HandleLogout(w http.ResponseWriter, r *http.Request) {
	env := env.EnvFromCtx(r.Context())
	env.Logger.DebugContext(r.Context(), "Clearing access token cookie")
	http.SetCookie(w, token.ExpiredAccessTokenCookie(env))
	w.WriteHeader(http.StatusNoContent)
}
