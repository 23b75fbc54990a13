// Package config loads the service configuration from /data/foodgram.yaml,
// or from the environment when that file is absent.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/matt-dz/foodgram/internal/password"
)

const configFilePath = "/data/foodgram.yaml"

const (
	EnvProd = "PROD"
	EnvDev  = "DEV"
)

const (
	defaultHostOrigin       = "http://localhost:8080"
	defaultAppSecretPath    = "/data/secret"
	defaultAppSecretVersion = "1"
	defaultDatabaseHost     = "localhost"
	defaultDatabasePort     = 5432
	defaultVolume           = "/data/files"
	defaultURLPrefix        = "/files"
	defaultLoginRequests    = 5
	defaultLoginWindow      = time.Minute
)

type AdminPassword string

func (a AdminPassword) Validate() error {
	return password.Validate(string(a))
}

type AppSecretValue string

func (a *AppSecretValue) Validate() error {
	if a == nil {
		return errors.New("secret should not be nil")
	}
	if len(*a) < appSecretBytes {
		return errors.New("secret should be at least 32 bytes")
	}
	return nil
}

// AppSecret signs access tokens. When Value is empty it is read from Path,
// which is created with a random secret on first start.
type AppSecret struct {
	Value   *AppSecretValue `yaml:"value" validate:"omitempty,validateFn"`
	Path    string          `yaml:"path" validate:"omitempty,filepath"`
	Version string          `yaml:"version"`
}

type Database struct {
	Port     uint16 `yaml:"port"`
	Host     string `yaml:"host" validate:"omitempty,hostname_rfc1123"`
	Database string `yaml:"database"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`

	Validate struct{} `yaml:"-" validate:"allOrNothing=Port Host Database User Password"`
}

// Fileserver is the local image volume, served under URLPrefix when S3 is
// not configured.
type Fileserver struct {
	Volume    string `yaml:"volume"`
	URLPrefix string `yaml:"url_prefix"`
}

// S3 selects the object storage backend for images when configured.
type S3 struct {
	Endpoint  string `yaml:"endpoint" validate:"omitempty,hostname_port|hostname_rfc1123"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	Bucket    string `yaml:"bucket"`
	UseSSL    bool   `yaml:"use_ssl"`
	PublicURL string `yaml:"public_url" validate:"omitempty,url"`

	Validate struct{} `yaml:"-" validate:"allOrNothing=Endpoint AccessKey SecretKey Bucket"`
}

func (s S3) Enabled() bool {
	return s.Endpoint != ""
}

// Admin is the account created on first start when no admin exists.
type Admin struct {
	FirstName string        `yaml:"first_name" validate:"required_with_all=Email Password"`
	LastName  string        `yaml:"last_name" validate:"required_with_all=Email Password"`
	Username  string        `yaml:"username" validate:"required_with_all=Email Password,max=150"`
	Email     string        `yaml:"email" validate:"omitempty,email"`
	Password  AdminPassword `yaml:"password" validate:"omitempty,validateFn"`

	Validate struct{} `yaml:"-" validate:"allOrNothing=FirstName LastName Username Email Password"`
}

// RateLimit bounds login attempts per client IP. Zero requests disables it.
type RateLimit struct {
	LoginRequests int           `yaml:"login_requests" validate:"gte=0"`
	LoginWindow   time.Duration `yaml:"login_window" validate:"gte=0"`
}

type Config struct {
	AppSecret  AppSecret  `yaml:"app_secret"`
	Admin      Admin      `yaml:"admin"`
	Fileserver Fileserver `yaml:"fileserver"`
	S3         S3         `yaml:"s3"`
	Database   Database   `yaml:"database"`
	RateLimit  RateLimit  `yaml:"ratelimit"`
	HostOrigin string     `yaml:"host_origin" validate:"url"`
	Env        string     `yaml:"env" validate:"omitempty,oneof=DEV PROD"`
	LogLevel   string     `yaml:"log_level" validate:"omitempty,oneof=debug info warn error"`
}

func defaultLogLevel(environment string) string {
	if environment == EnvProd {
		return "info"
	}
	return "debug"
}

// finish validates conf and resolves its app secret.
func finish(conf Config) (Config, error) {
	if err := newValidator().Struct(conf); err != nil {
		return conf, formatValidationError(err)
	}
	if err := loadAppSecret(&conf); err != nil {
		return conf, fmt.Errorf("loading app secret: %w", err)
	}
	return conf, nil
}

func LoadConfig() (Config, error) {
	if info, err := os.Lstat(configFilePath); err == nil && !info.IsDir() {
		return loadConfigFromFile(configFilePath)
	}
	return loadConfigFromEnv()
}
