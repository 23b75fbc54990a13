// Package token contains utilities for http tokens.
package token

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/matt-dz/foodgram/internal/env"
	"github.com/matt-dz/foodgram/internal/jwt"
	"github.com/matt-dz/foodgram/internal/user"
)

const (
	accessTokenLifetime = int(jwt.JWTDuration / time.Second)
)

var (
	ErrMissingSecret = errors.New("app secret not configured")
	ErrNoToken       = errors.New("no access token")
)

type (
	userIDKeyType      struct{}
	accessTokenKeyType struct{}
)

var (
	userIDKey      userIDKeyType
	accessTokenKey accessTokenKeyType
)

func AccessTokenName(env *env.Env) string {
	if env.IsProd() {
		return "__Host-Http-access"
	}
	return "access"
}

func secret(env *env.Env) ([]byte, string, error) {
	s := env.Config.AppSecret
	if s.Value == nil || *s.Value == "" {
		return nil, "", ErrMissingSecret
	}
	return []byte(*s.Value), s.Version, nil
}

func CreateAccessToken(params jwt.JWTParams, env *env.Env) (string, error) {
	key, version, err := secret(env)
	if err != nil {
		return "", err
	}
	token, err := jwt.GenerateJWT(params, key, version)
	if err != nil {
		return "", fmt.Errorf("generating access token: %w", err)
	}
	return token, nil
}

// ParseAccessToken validates raw against the configured secret.
func ParseAccessToken(raw string, env *env.Env) (*jwt.Claims, error) {
	key, version, err := secret(env)
	if err != nil {
		return nil, err
	}
	return jwt.ValidateJWT(raw, version, key)
}

// FromRequest returns the raw access token of r. The Authorization header
// ("Token <jwt>" or "Bearer <jwt>") wins over the cookie.
func FromRequest(r *http.Request, env *env.Env) (string, error) {
	if header := r.Header.Get("Authorization"); header != "" {
		scheme, raw, ok := strings.Cut(header, " ")
		if !ok || (!strings.EqualFold(scheme, "Token") && !strings.EqualFold(scheme, "Bearer")) {
			return "", fmt.Errorf("%w: unsupported authorization scheme", ErrNoToken)
		}
		raw = strings.TrimSpace(raw)
		if raw == "" {
			return "", ErrNoToken
		}
		return raw, nil
	}

	cookie, err := r.Cookie(AccessTokenName(env))
	if err != nil {
		return "", ErrNoToken
	}
	return cookie.Value, nil
}

func NewAccessTokenCookie(token string, env *env.Env) *http.Cookie {
	return &http.Cookie{
		Name:     AccessTokenName(env),
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		MaxAge:   accessTokenLifetime,
		SameSite: http.SameSiteLaxMode,
		Secure:   env.IsProd(),
	}
}

// ExpiredAccessTokenCookie clears the access cookie.
func ExpiredAccessTokenCookie(env *env.Env) *http.Cookie {
	return &http.Cookie{
		Name:     AccessTokenName(env),
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
		SameSite: http.SameSiteLaxMode,
		Secure:   env.IsProd(),
	}
}

func UserIDWithCtx(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserIDFromCtx returns the authenticated user id, if any.
func UserIDFromCtx(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok && id > 0
}

func AccessTokenWithCtx(ctx context.Context, claims *jwt.Claims) context.Context {
	return context.WithValue(ctx, accessTokenKey, claims)
}

func AccessTokenFromCtx(ctx context.Context) (*jwt.Claims, bool) {
	claims, ok := ctx.Value(accessTokenKey).(*jwt.Claims)
	return claims, ok
}

// ViewerFromCtx returns the identity of the requester, anonymous when the
// request carried no valid token.
func ViewerFromCtx(ctx context.Context) user.Viewer {
	if id, ok := UserIDFromCtx(ctx); ok {
		return user.NewViewer(id)
	}
	return user.Anonymous()
}
