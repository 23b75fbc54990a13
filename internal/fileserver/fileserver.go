// Package fileserver stores files on a local volume served under a URL prefix.
package fileserver

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

const (
	directoryPerms = 0o755
	filePerms      = 0o644
)

const (
	RecipesDir = "recipes"
	UsersDir   = "users"
)

// topLevelDirectories are the only directories files may be written to or
// deleted from.
var topLevelDirectories = []string{RecipesDir, UsersDir}

var (
	ErrInvalidPath = errors.New("invalid path")
	ErrNotExist    = errors.New("file does not exist")
)

type FileServerInterface interface {
	Write(path string, data []byte) (fullpath string, n int, err error)
	Delete(path string) error
	BaseDirectory() string
}

type FileServer struct {
	baseDir string
}

var _ FileServerInterface = (*FileServer)(nil)

func New(baseDir string) *FileServer {
	return &FileServer{
		baseDir: baseDir,
	}
}

func (f *FileServer) BaseDirectory() string {
	if f == nil {
		return ""
	}
	return f.baseDir
}

// Write stores data at path, relative to the base directory.
func (f *FileServer) Write(path string, data []byte) (fullpath string, n int, err error) {
	if f == nil {
		return "", 0, nil
	}

	if !slices.Contains(topLevelDirectories, topLevelDirectory(path)) {
		return "", 0, fmt.Errorf("top level directory of %q: %w", path, ErrInvalidPath)
	}
	fullpath, err = cleanPath(f.baseDir, path)
	if err != nil {
		return "", 0, err
	}

	if err := os.MkdirAll(filepath.Dir(fullpath), directoryPerms); err != nil {
		return "", 0, fmt.Errorf("creating parent directories: %w", err)
	}

	file, err := os.OpenFile(fullpath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, filePerms)
	if err != nil {
		return "", 0, fmt.Errorf("creating file: %w", err)
	}
	defer func() { _ = file.Close() }()

	n, err = file.Write(data)
	if err != nil {
		return "", 0, fmt.Errorf("writing file: %w", err)
	}

	return fullpath, n, nil
}

// Delete removes the file at path and prunes the directories left empty
// below its top level directory.
func (f *FileServer) Delete(path string) error {
	if f == nil {
		return nil
	}

	top := topLevelDirectory(path)
	if !slices.Contains(topLevelDirectories, top) {
		return fmt.Errorf("top level directory of %q: %w", path, ErrInvalidPath)
	}
	fullpath, err := cleanPath(f.baseDir, path)
	if err != nil {
		return err
	}

	if err := os.Remove(fullpath); errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("removing %q: %w", path, ErrNotExist)
	} else if err != nil {
		return fmt.Errorf("removing %q: %w", path, err)
	}

	stop, err := cleanPath(f.baseDir, top)
	if err != nil {
		return err
	}
	for dir := filepath.Dir(fullpath); dir != stop && strings.HasPrefix(dir, stop); dir = filepath.Dir(dir) {
		empty, err := isEmptyDirectory(dir)
		if err != nil {
			return fmt.Errorf("checking directory: %w", err)
		}
		if !empty {
			break
		}
		if err := os.Remove(dir); err != nil {
			return fmt.Errorf("pruning directory: %w", err)
		}
	}

	return nil
}

// cleanPath resolves path against baseDir and rejects anything outside it.
func cleanPath(baseDir, path string) (string, error) {
	absBase, err := filepath.Abs(baseDir)
	if err != nil {
		return "", fmt.Errorf("resolving base directory: %w", err)
	}

	var full string
	if filepath.IsAbs(path) {
		full = filepath.Clean(path)
	} else {
		full = filepath.Join(absBase, path)
	}

	rel, err := filepath.Rel(absBase, full)
	if err != nil {
		return "", errors.Join(ErrInvalidPath, err)
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%q escapes base directory: %w", path, ErrInvalidPath)
	}

	return full, nil
}

func topLevelDirectory(path string) string {
	p := strings.TrimPrefix(filepath.Clean(path), string(filepath.Separator))
	top, _, _ := strings.Cut(p, string(filepath.Separator))
	return top
}

func isEmptyDirectory(dir string) (bool, error) {
	f, err := os.Open(dir)
	if err != nil {
		return false, err
	}
	defer func() { _ = f.Close() }()

	_, err = f.Readdirnames(1)
	if errors.Is(err, io.EOF) {
		return true, nil
	}
	return false, err
}
