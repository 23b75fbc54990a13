package token

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/matt-dz/foodgram/internal/config"
	"github.com/matt-dz/foodgram/internal/env"
	"github.com/matt-dz/foodgram/internal/jwt"
)

func testEnv(t *testing.T, mode string) *env.Env {
	t.Helper()
	secret := config.AppSecretValue("0123456789abcdef0123456789abcdef")
	e := env.Null()
	e.Config.Env = mode
	e.Config.AppSecret = config.AppSecret{Value: &secret, Version: "1"}
	return e
}

func TestAccessTokenRoundTrip(t *testing.T) {
	e := testEnv(t, config.EnvDev)

	raw, err := CreateAccessToken(jwt.JWTParams{Role: "admin", UserID: 7}, e)
	if err != nil {
		t.Fatalf("CreateAccessToken() error = %v", err)
	}
	claims, err := ParseAccessToken(raw, e)
	if err != nil {
		t.Fatalf("ParseAccessToken() error = %v", err)
	}
	if id, _ := claims.UserID(); id != 7 || claims.Role != "admin" {
		t.Errorf("claims = %+v", claims)
	}
}

func TestCreateAccessToken_MissingSecret(t *testing.T) {
	if _, err := CreateAccessToken(jwt.JWTParams{UserID: 1}, env.Null()); !errors.Is(err, ErrMissingSecret) {
		t.Errorf("CreateAccessToken() error = %v, want ErrMissingSecret", err)
	}
}

func TestFromRequest(t *testing.T) {
	e := testEnv(t, config.EnvDev)

	tests := []struct {
		name    string
		setup   func(r *http.Request)
		want    string
		wantErr bool
	}{
		{
			name:  "token scheme",
			setup: func(r *http.Request) { r.Header.Set("Authorization", "Token abc") },
			want:  "abc",
		},
		{
			name:  "bearer scheme",
			setup: func(r *http.Request) { r.Header.Set("Authorization", "Bearer xyz") },
			want:  "xyz",
		},
		{
			name:  "cookie",
			setup: func(r *http.Request) { r.AddCookie(&http.Cookie{Name: "access", Value: "from-cookie"}) },
			want:  "from-cookie",
		},
		{
			name: "header wins over cookie",
			setup: func(r *http.Request) {
				r.Header.Set("Authorization", "Token header")
				r.AddCookie(&http.Cookie{Name: "access", Value: "cookie"})
			},
			want: "header",
		},
		{
			name:    "basic scheme",
			setup:   func(r *http.Request) { r.Header.Set("Authorization", "Basic Zm9vOmJhcg==") },
			wantErr: true,
		},
		{
			name:    "nothing",
			setup:   func(*http.Request) {},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			tt.setup(r)
			got, err := FromRequest(r, e)
			if tt.wantErr {
				if !errors.Is(err, ErrNoToken) {
					t.Errorf("FromRequest() error = %v, want ErrNoToken", err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("FromRequest() = %q, %v; want %q", got, err, tt.want)
			}
		})
	}
}

func TestCookies(t *testing.T) {
	prod := testEnv(t, config.EnvProd)
	c := NewAccessTokenCookie("tok", prod)
	if c.Name != "__Host-Http-access" || !c.Secure || !c.HttpOnly {
		t.Errorf("prod cookie = %+v", c)
	}

	dev := testEnv(t, config.EnvDev)
	c = ExpiredAccessTokenCookie(dev)
	if c.Name != "access" || c.MaxAge >= 0 || c.Secure {
		t.Errorf("expired dev cookie = %+v", c)
	}
}

func TestViewerFromCtx(t *testing.T) {
	ctx := t.Context()
	if v := ViewerFromCtx(ctx); v.Authenticated {
		t.Error("empty context should be anonymous")
	}
	v := ViewerFromCtx(UserIDWithCtx(ctx, 9))
	if !v.Authenticated || v.ID != 9 {
		t.Errorf("viewer = %+v", v)
	}
}
