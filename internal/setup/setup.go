// Package setup is responsible for setting up components.
package setup

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/matt-dz/foodgram/internal/argon2id"
	"github.com/matt-dz/foodgram/internal/config"
	"github.com/matt-dz/foodgram/internal/database"
	"github.com/matt-dz/foodgram/internal/env"
	"github.com/matt-dz/foodgram/internal/filestore"
	"github.com/matt-dz/foodgram/internal/http"
	"github.com/matt-dz/foodgram/internal/password"
)

// Database connects to PostgreSQL and applies the schema on first start.
func Database(ctx context.Context, conf config.Config) (*database.Database, error) {
	c := conf.Database
	if c.Database == "" {
		return nil, missingSetting("database", "DATABASE")
	}
	if c.User == "" {
		return nil, missingSetting("database", "DATABASE_USER")
	}

	dsn := url.URL{
		Scheme: "postgresql",
		User:   url.UserPassword(c.User, c.Password),
		Host:   fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:   c.Database,
	}

	pool, err := pgxpool.New(ctx, dsn.String())
	if err != nil {
		return nil, fmt.Errorf("creating database pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	db := database.NewDatabase(pool)
	if err := db.EnsureSchema(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("initializing database: %w", err)
	}

	return db, nil
}

// Admin creates the configured admin if no admin exists yet. Requires
// env.Database.
func Admin(ctx context.Context, env *env.Env) error {
	count, err := env.Database.GetAdminCount(ctx)
	if err != nil {
		return fmt.Errorf("getting admin count: %w", err)
	}
	if count > 0 {
		env.Logger.InfoContext(ctx, "admin already setup, skipping setup")
		return nil
	}

	admin := env.Config.Admin
	if admin.Email == "" || admin.Password == "" {
		env.Logger.InfoContext(ctx, "admin email and password not configured, skipping admin setup")
		return nil
	}
	err = password.Validate(string(admin.Password), admin.Username, admin.Email, admin.FirstName, admin.LastName)
	if err != nil {
		return fmt.Errorf("validating admin password: %w", err)
	}

	hashedPassword, err := argon2id.Hash(string(admin.Password), argon2id.DefaultParams)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}

	username := admin.Username
	if username == "" {
		username = "admin"
	}
	_, err = env.Database.CreateAdmin(ctx, database.CreateAdminParams{
		Email:        strings.ToLower(strings.TrimSpace(admin.Email)),
		Username:     username,
		FirstName:    admin.FirstName,
		LastName:     admin.LastName,
		PasswordHash: hashedPassword,
	})
	if err != nil {
		if database.IsUniqueViolation(err) {
			return fmt.Errorf("creating admin: email or username taken: %w", err)
		}
		return fmt.Errorf("creating admin: %w", err)
	}
	env.Logger.InfoContext(ctx, "successfully setup admin!")

	return nil
}

// FileStore returns the S3 store when S3 is configured and the local
// fileserver store otherwise.
func FileStore(ctx context.Context, conf config.Config, client *http.HTTP, logger *slog.Logger) (filestore.FileStoreInterface, error) {
	if conf.S3.Enabled() {
		store, err := filestore.NewS3Store(filestore.S3Options{
			Endpoint:  conf.S3.Endpoint,
			AccessKey: conf.S3.AccessKey,
			SecretKey: conf.S3.SecretKey,
			Bucket:    conf.S3.Bucket,
			UseSSL:    conf.S3.UseSSL,
			PublicURL: conf.S3.PublicURL,
			Transport: client.RoundTripper(),
			Logger:    logger,
		})
		if err != nil {
			return nil, fmt.Errorf("creating s3 file store: %w", err)
		}
		if err := store.EnsureBucket(ctx); err != nil {
			return nil, fmt.Errorf("ensuring bucket: %w", err)
		}
		return store, nil
	}

	if conf.Fileserver.Volume == "" {
		return nil, missingSetting("file store", "FILESERVER_VOLUME")
	}
	volume, err := filepath.Abs(conf.Fileserver.Volume)
	if err != nil {
		return nil, fmt.Errorf("creating fileserver path: %w", err)
	}
	return filestore.New(volume, conf.Fileserver.URLPrefix, conf.HostOrigin), nil
}
