package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/matt-dz/foodgram/internal/database"
	"github.com/matt-dz/foodgram/internal/image"
)

var ErrInvalidAvatar = errors.New("invalid avatar")

// AvatarStore persists avatar files.
type AvatarStore interface {
	URLResolver
	WriteAvatarImage(ctx context.Context, suffix string, data []byte) (key string, n int, err error)
	DeleteKey(ctx context.Context, key string) error
}

// SetAvatar stores the image in dataURI as the avatar of userID and returns
// its public URL. The previous avatar file is removed once the row points at
// the new one.
func SetAvatar(ctx context.Context, q database.Querier, files AvatarStore, userID int64, dataURI string) (string, error) {
	file, err := image.DecodeDataURI(dataURI)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidAvatar, err)
	}

	previous, err := q.GetUserAvatar(ctx, userID)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", ErrUserNotFound
	} else if err != nil {
		return "", fmt.Errorf("getting current avatar: %w", err)
	}

	key, _, err := files.WriteAvatarImage(ctx, file.Suffix, file.Data)
	if err != nil {
		return "", fmt.Errorf("storing avatar: %w", err)
	}

	if err := q.UpdateUserAvatar(ctx, database.UpdateUserAvatarParams{
		ID:     userID,
		Avatar: pgtype.Text{String: key, Valid: true},
	}); err != nil {
		_ = files.DeleteKey(ctx, key)
		return "", fmt.Errorf("updating avatar: %w", err)
	}

	if previous.Valid && previous.String != "" {
		_ = files.DeleteKey(ctx, previous.String)
	}
	return files.FileURL(key), nil
}

// RemoveAvatar clears the avatar of userID. Removing an absent avatar is not
// an error.
func RemoveAvatar(ctx context.Context, q database.Querier, files AvatarStore, userID int64) error {
	previous, err := q.GetUserAvatar(ctx, userID)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrUserNotFound
	} else if err != nil {
		return fmt.Errorf("getting current avatar: %w", err)
	}
	if !previous.Valid {
		return nil
	}

	if err := q.UpdateUserAvatar(ctx, database.UpdateUserAvatarParams{ID: userID}); err != nil {
		return fmt.Errorf("clearing avatar: %w", err)
	}
	_ = files.DeleteKey(ctx, previous.String)
	return nil
}
