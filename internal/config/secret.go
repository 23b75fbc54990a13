package config

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"strings"
)

const (
	appSecretBytes     = 32
	appSecretFilePerms = 0o600
)

// loadAppSecret resolves conf.AppSecret.Value from its path when no value
// was configured, generating the file if it does not exist yet.
func loadAppSecret(conf *Config) error {
	if conf.AppSecret.Value != nil {
		return nil
	}

	secret, err := readSecret(conf.AppSecret.Path)
	if errors.Is(err, os.ErrNotExist) {
		secret, err = createSecret(conf.AppSecret.Path)
	}
	if err != nil {
		return err
	}

	val := AppSecretValue(secret)
	conf.AppSecret.Value = &val
	return nil
}

func readSecret(path string) (string, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return "", err
	}
	if info.IsDir() {
		return "", fmt.Errorf("expected file, got directory at %q", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading secret file: %w", err)
	}
	// a trailing newline is not part of the secret
	return strings.TrimRight(string(data), "\r\n"), nil
}

func createSecret(path string) (string, error) {
	raw := make([]byte, appSecretBytes)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("generating app secret: %w", err)
	}
	secret := base64.StdEncoding.EncodeToString(raw)

	// fails when another process created the file first
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, appSecretFilePerms)
	if err != nil {
		return "", fmt.Errorf("creating secret file: %w", err)
	}
	defer func() { _ = file.Close() }()

	if _, err := file.WriteString(secret); err != nil {
		return "", fmt.Errorf("writing secret file: %w", err)
	}
	return secret, nil
}
