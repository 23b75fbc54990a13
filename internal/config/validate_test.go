package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type group struct {
	A string
	B *int
	C int

	Validate struct{} `validate:"allOrNothing=A B C"`
}

type typo struct {
	A string

	Validate struct{} `validate:"allOrNothing=A Missing"`
}

func TestAllOrNothing(t *testing.T) {
	one := 1
	tests := []struct {
		name  string
		value any
		ok    bool
	}{
		{name: "all empty", value: group{}, ok: true},
		{name: "all set", value: group{A: "a", B: &one, C: 3}, ok: true},
		{name: "nil pointer counts as empty", value: group{A: "a", C: 3}, ok: false},
		{name: "only one set", value: group{C: 3}, ok: false},
		{name: "unknown field", value: typo{}, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := newValidator().Struct(tt.value)
			if (err == nil) != tt.ok {
				t.Errorf("Struct() error = %v, want ok = %v", err, tt.ok)
			}
		})
	}
}

func TestFormatValidationError(t *testing.T) {
	err := newValidator().Struct(Config{
		HostOrigin: "http://localhost:8080",
		S3:         S3{Endpoint: "minio:9000"},
	})
	got := formatValidationError(err)
	want := "S3 configuration is incomplete: either all fields must be set (Endpoint, AccessKey, SecretKey, Bucket) or all must be empty"
	if got == nil || got.Error() != want {
		t.Errorf("formatValidationError() = %v, want %q", got, want)
	}
}

func TestLoadConfigFromEnv_CollectsParseErrors(t *testing.T) {
	t.Setenv("APP_SECRET_PATH", filepath.Join(t.TempDir(), "secret"))
	t.Setenv("DATABASE_PORT", "port")
	t.Setenv("S3_USE_SSL", "maybe")
	t.Setenv("RATELIMIT_LOGIN_WINDOW", "soon")

	_, err := loadConfigFromEnv()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	for _, key := range []string{"DATABASE_PORT", "S3_USE_SSL", "RATELIMIT_LOGIN_WINDOW"} {
		if !strings.Contains(err.Error(), key) {
			t.Errorf("error %q does not mention %s", err, key)
		}
	}
}

func TestLoadConfigFromEnv_ZeroLoginRequests(t *testing.T) {
	setDatabaseEnv(t)
	t.Setenv("APP_SECRET_PATH", filepath.Join(t.TempDir(), "secret"))
	t.Setenv("RATELIMIT_LOGIN_REQUESTS", "0")

	conf, err := loadConfigFromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if conf.RateLimit.LoginRequests != 0 {
		t.Errorf("LoginRequests = %d, want 0", conf.RateLimit.LoginRequests)
	}
}

func TestApplyDefaults(t *testing.T) {
	c := Config{Env: EnvProd, Fileserver: Fileserver{Volume: "/srv/images"}}
	applyDefaults(&c)

	if c.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", c.LogLevel)
	}
	if c.Fileserver.Volume != "/srv/images" || c.Fileserver.URLPrefix != defaultURLPrefix {
		t.Errorf("Fileserver = %+v", c.Fileserver)
	}
	if c.Database.Port != defaultDatabasePort || c.RateLimit.LoginWindow != defaultLoginWindow {
		t.Errorf("Database.Port = %d, LoginWindow = %v", c.Database.Port, c.RateLimit.LoginWindow)
	}
}

func TestLoadAppSecret_TrimsNewline(t *testing.T) {
	path := filepath.Join(t.TempDir(), "secret")
	if err := os.WriteFile(path, []byte("a-secret-written-by-echo-with-newline\n"), 0o600); err != nil {
		t.Fatalf("writing secret: %v", err)
	}

	c := Config{AppSecret: AppSecret{Path: path}}
	if err := loadAppSecret(&c); err != nil {
		t.Fatalf("loadAppSecret() error = %v", err)
	}
	if string(*c.AppSecret.Value) != "a-secret-written-by-echo-with-newline" {
		t.Errorf("secret = %q", *c.AppSecret.Value)
	}
}
