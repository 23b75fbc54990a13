package config

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

func loadConfigFromFile(path string) (Config, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}

	var conf Config
	if err := yaml.Unmarshal(contents, &conf); err != nil {
		return Config{}, fmt.Errorf("unmarshaling config: %w", err)
	}
	applyDefaults(&conf)

	conf, err = finish(conf)
	if err != nil {
		return Config{}, err
	}
	return conf, nil
}

// applyDefaults fills the settings a config file left out. A zero login
// request count in a file means unset; the environment can still disable
// the limiter with RATELIMIT_LOGIN_REQUESTS=0.
func applyDefaults(c *Config) {
	setDefault(&c.AppSecret.Path, defaultAppSecretPath)
	setDefault(&c.AppSecret.Version, defaultAppSecretVersion)
	setDefault(&c.Env, EnvDev)
	setDefault(&c.LogLevel, defaultLogLevel(c.Env))
	setDefault(&c.HostOrigin, defaultHostOrigin)
	setDefault(&c.Database.Host, defaultDatabaseHost)
	setDefault(&c.Database.Port, defaultDatabasePort)
	setDefault(&c.Fileserver.Volume, defaultVolume)
	setDefault(&c.Fileserver.URLPrefix, defaultURLPrefix)
	setDefault(&c.RateLimit.LoginRequests, defaultLoginRequests)
	setDefault(&c.RateLimit.LoginWindow, defaultLoginWindow)
}

func setDefault[T comparable](field *T, def T) {
	var zero T
	if *field == zero {
		*field = def
	}
}
