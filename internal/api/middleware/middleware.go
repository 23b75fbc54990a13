// Package middleware contains middleware functions for the API
package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/httplog/v3"
	"github.com/golang-jwt/jwt/v5"
	apiError "github.com/matt-dz/foodgram/internal/api/error"
	"github.com/matt-dz/foodgram/internal/api/requestid"
	"github.com/matt-dz/foodgram/internal/api/token"
	"github.com/matt-dz/foodgram/internal/env"
	"github.com/matt-dz/foodgram/internal/log"
	"github.com/matt-dz/foodgram/internal/role"
)

// InjectEnv injects an environment struct into the request context.
func InjectEnv(environment *env.Env) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(env.WithCtx(r.Context(), environment)))
		})
	}
}

func LogRequest(logger *slog.Logger) func(http.Handler) http.Handler {
	return httplog.RequestLogger(logger, &httplog.Options{
		LogExtraAttrs: func(r *http.Request, reqBody string, respStatus int) []slog.Attr {
			return []slog.Attr{slog.String("log_id", requestid.String(r.Context()))}
		},
	})
}

// AddRequestID adds a request ID to the request context.
func AddRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := requestid.New()
		w.Header().Set(requestid.Header, requestID)
		ctx := log.AppendCtx(r.Context(), slog.String("log_id", requestID))
		next.ServeHTTP(w, r.WithContext(requestid.WithCtx(ctx, requestID)))
	})
}

// AddCors adds the necessary CORS headers to the response. Production only
// allows the configured host origin; development echoes the caller's origin.
func AddCors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		e := env.EnvFromCtx(r.Context())
		origin := r.Header.Get("Origin")
		hostOrigin := e.Config.HostOrigin

		var allowedOrigin string
		if !e.IsProd() && origin != "" {
			allowedOrigin = origin
		} else {
			allowedOrigin = hostOrigin
		}

		if allowedOrigin == "" {
			e.Logger.WarnContext(r.Context(),
				"host origin not set and no valid origin found; Access-Control-Allow-Origin will be empty")
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS, PATCH")
		w.Header().Set("Access-Control-Max-Age", "86400")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Add("Vary", "Origin")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// Authenticate resolves the requester from the access token when one is
// present. Requests without a token continue anonymously; requests with a
// bad token are rejected.
func Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		env := env.EnvFromCtx(r.Context())
		requestID := requestid.String(r.Context())

		raw, err := token.FromRequest(r, env)
		if errors.Is(err, token.ErrNoToken) && r.Header.Get("Authorization") == "" {
			next.ServeHTTP(w, r)
			return
		} else if err != nil {
			env.Logger.ErrorContext(r.Context(), "malformed authorization header", slog.Any("error", err))
			_ = apiError.EncodeError(w, apiError.InvalidAccessToken, "invalid access token", requestID)
			return
		}

		claims, err := token.ParseAccessToken(raw, env)
		if errors.Is(err, jwt.ErrTokenExpired) {
			env.Logger.ErrorContext(r.Context(), "access token expired", slog.Any("error", err))
			_ = apiError.EncodeError(w, apiError.ExpiredAccessToken, "access token expired", requestID)
			return
		} else if errors.Is(err, token.ErrMissingSecret) {
			env.Logger.ErrorContext(r.Context(), "app secret not configured")
			_ = apiError.EncodeInternalError(w, requestID)
			return
		} else if err != nil {
			env.Logger.ErrorContext(r.Context(), "invalid access token", slog.Any("error", err))
			_ = apiError.EncodeError(w, apiError.InvalidAccessToken, "invalid access token", requestID)
			return
		}

		userID, err := claims.UserID()
		if err != nil {
			env.Logger.ErrorContext(r.Context(), "failed to parse user id", slog.Any("error", err))
			_ = apiError.EncodeError(w, apiError.InvalidAccessToken, "invalid access token", requestID)
			return
		}

		ctx := log.AppendCtx(r.Context(), slog.Int64("user-id", userID))
		ctx = token.UserIDWithCtx(ctx, userID)
		ctx = token.AccessTokenWithCtx(ctx, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AuthorizeRequest creates a middleware that requires an authenticated
// requester holding at least requiredRole. It must run after Authenticate.
func AuthorizeRequest(requiredRole role.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			env := env.EnvFromCtx(r.Context())
			requestID := requestid.String(r.Context())

			claims, ok := token.AccessTokenFromCtx(r.Context())
			if !ok {
				env.Logger.DebugContext(r.Context(), "request is not authenticated")
				_ = apiError.EncodeError(w, apiError.InvalidAccessToken,
					"authentication credentials were not provided", requestID)
				return
			}

			env.Logger.DebugContext(r.Context(), "validating user role")
			userRole := role.Parse(claims.Role)
			if !userRole.Allows(requiredRole) {
				env.Logger.ErrorContext(r.Context(), "user does not have required role",
					slog.String("user-role", userRole.String()),
					slog.String("required-role", requiredRole.String()))
				_ = apiError.EncodeError(w, apiError.InsufficientPermissions, "insufficient permissions", requestID)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
