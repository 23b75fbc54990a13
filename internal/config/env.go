package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

// envReader reads typed environment variables and collects every parse
// failure instead of stopping at the first.
type envReader struct {
	errs []error
}

func (r *envReader) string(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func (r *envReader) parse(key string, parse func(string) error) {
	v := os.Getenv(key)
	if v == "" {
		return
	}
	if err := parse(v); err != nil {
		r.errs = append(r.errs, fmt.Errorf("invalid %s (%q): %w", key, v, err))
	}
}

func (r *envReader) uint16(key string, def uint16) uint16 {
	n := def
	r.parse(key, func(v string) error {
		parsed, err := strconv.ParseUint(v, 10, 16)
		n = uint16(parsed)
		return err
	})
	return n
}

func (r *envReader) int(key string, def int) int {
	n := def
	r.parse(key, func(v string) (err error) {
		n, err = strconv.Atoi(v)
		return err
	})
	return n
}

func (r *envReader) bool(key string, def bool) bool {
	b := def
	r.parse(key, func(v string) (err error) {
		b, err = strconv.ParseBool(v)
		return err
	})
	return b
}

func (r *envReader) duration(key string, def time.Duration) time.Duration {
	d := def
	r.parse(key, func(v string) (err error) {
		d, err = time.ParseDuration(v)
		return err
	})
	return d
}

func loadConfigFromEnv() (Config, error) {
	var r envReader

	environment := r.string("ENV", EnvDev)
	conf := Config{
		HostOrigin: r.string("HOST_ORIGIN", defaultHostOrigin),
		Env:        environment,
		LogLevel:   r.string("LOG_LEVEL", defaultLogLevel(environment)),
		AppSecret: AppSecret{
			Path:    r.string("APP_SECRET_PATH", defaultAppSecretPath),
			Version: r.string("APP_SECRET_VERSION", defaultAppSecretVersion),
		},
		Database: Database{
			Port:     r.uint16("DATABASE_PORT", defaultDatabasePort),
			Host:     r.string("DATABASE_HOST", defaultDatabaseHost),
			Database: r.string("DATABASE", ""),
			User:     r.string("DATABASE_USER", ""),
			Password: r.string("DATABASE_PASSWORD", ""),
		},
		Fileserver: Fileserver{
			Volume:    r.string("FILESERVER_VOLUME", defaultVolume),
			URLPrefix: r.string("FILESERVER_URL_PREFIX", defaultURLPrefix),
		},
		S3: S3{
			Endpoint:  r.string("S3_ENDPOINT", ""),
			AccessKey: r.string("S3_ACCESS_KEY", ""),
			SecretKey: r.string("S3_SECRET_KEY", ""),
			Bucket:    r.string("S3_BUCKET", ""),
			UseSSL:    r.bool("S3_USE_SSL", false),
			PublicURL: r.string("S3_PUBLIC_URL", ""),
		},
		RateLimit: RateLimit{
			LoginRequests: r.int("RATELIMIT_LOGIN_REQUESTS", defaultLoginRequests),
			LoginWindow:   r.duration("RATELIMIT_LOGIN_WINDOW", defaultLoginWindow),
		},
		Admin: Admin{
			FirstName: r.string("ADMIN_FIRST_NAME", ""),
			LastName:  r.string("ADMIN_LAST_NAME", ""),
			Username:  r.string("ADMIN_USERNAME", ""),
			Email:     r.string("ADMIN_EMAIL", ""),
			Password:  AdminPassword(r.string("ADMIN_PASSWORD", "")),
		},
	}
	if secret := AppSecretValue(r.string("APP_SECRET", "")); secret != "" {
		conf.AppSecret.Value = &secret
	}
	if err := errors.Join(r.errs...); err != nil {
		return conf, err
	}

	return finish(conf)
}
