// Package env provides a structure for managing application-wide dependencies.
package env

import (
	"context"
	"log/slog"

	"github.com/matt-dz/foodgram/internal/config"
	"github.com/matt-dz/foodgram/internal/database"
	"github.com/matt-dz/foodgram/internal/filestore"
	"github.com/matt-dz/foodgram/internal/log"
)

type envKeyType struct{}

var envKey envKeyType

type Env struct {
	Logger    *slog.Logger
	Database  database.Store
	FileStore filestore.FileStoreInterface
	Config    config.Config
}

func New(lg *slog.Logger, database database.Store) *Env {
	if lg == nil {
		lg = log.NullLogger()
	}

	return &Env{
		Logger:   lg,
		Database: database,
	}
}

func Null() *Env {
	return &Env{
		Logger: log.NullLogger(),
	}
}

// WithCtx stores env in the context.
func WithCtx(ctx context.Context, env *Env) context.Context {
	return context.WithValue(ctx, envKey, env)
}

// EnvFromCtx returns the env stored in the context, or a null env when
// nothing was stored.
func EnvFromCtx(ctx context.Context) *Env {
	if env, ok := ctx.Value(envKey).(*Env); ok && env != nil {
		return env
	}
	return Null()
}

// IsProd reports whether the server runs in production mode.
func (e *Env) IsProd() bool {
	return e.Config.Env == config.EnvProd
}
