// Package filestore names, stores and removes user uploaded images.
package filestore

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/matt-dz/foodgram/internal/fileserver"
	"github.com/oklog/ulid/v2"
)

const (
	recipeImagesDir = "recipes/images"
	avatarsDir      = "users/avatars"
)

const (
	KeyPrefix = "/files"
)

// FileStoreInterface is implemented by every image backend. Keys are opaque
// to callers and are what gets persisted in the database.
type FileStoreInterface interface {
	WriteRecipeImage(ctx context.Context, suffix string, data []byte) (key string, n int, err error)
	WriteAvatarImage(ctx context.Context, suffix string, data []byte) (key string, n int, err error)

	DeleteKey(ctx context.Context, key string) error

	FileURL(key string) string
}

// FileStore keeps images on the local fileserver volume.
type FileStore struct {
	keyPrefix string
	host      string
	fs        fileserver.FileServerInterface
}

var _ FileStoreInterface = (*FileStore)(nil)

func New(baseDirectory, keyPrefix, host string) *FileStore {
	return &FileStore{
		keyPrefix: keyPrefix,
		host:      strings.TrimRight(host, "/"),
		fs:        fileserver.New(baseDirectory),
	}
}

func (f *FileStore) WriteRecipeImage(_ context.Context, suffix string, data []byte) (key string, n int, err error) {
	return f.write(recipeImageKey, suffix, data)
}

func (f *FileStore) WriteAvatarImage(_ context.Context, suffix string, data []byte) (key string, n int, err error) {
	return f.write(avatarImageKey, suffix, data)
}

func (f *FileStore) write(keyFn func(id, suffix string) string, suffix string, data []byte) (string, int, error) {
	key := filepath.Join(f.keyPrefix, keyFn(generateKeyID(), suffix))
	_, n, err := f.fs.Write(extractKeyPrefix(key, f.keyPrefix), data)
	if err != nil {
		return "", n, err
	}
	return key, n, nil
}

func (f *FileStore) FileURL(key string) string {
	return f.host + "/" + strings.TrimLeft(key, "/")
}

func (f *FileStore) DeleteKey(_ context.Context, key string) error {
	return f.fs.Delete(extractKeyPrefix(key, f.keyPrefix))
}

func recipeImageKey(id, suffix string) string {
	return filepath.Join(recipeImagesDir, id+suffix)
}

func avatarImageKey(id, suffix string) string {
	return filepath.Join(avatarsDir, id+suffix)
}

func extractKeyPrefix(key string, prefix string) string {
	k := strings.Trim(key, "/")
	p := strings.Trim(prefix, "/")
	k = strings.TrimPrefix(k, p)
	return strings.TrimLeft(k, "/")
}

func generateKeyID() string {
	return strings.ToLower(ulid.Make().String())
}
