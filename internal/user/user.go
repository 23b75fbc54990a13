// Package user contains the user read projection and the identity of the
// requester that derived flags are computed against.
package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/matt-dz/foodgram/internal/argon2id"
	"github.com/matt-dz/foodgram/internal/database"
)

const (
	MaxNameLength  = 150
	MaxEmailLength = 254
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("email or password is incorrect")
	ErrEmailConflict      = errors.New("email already in use")
	ErrUsernameConflict   = errors.New("username already in use")
)

// Viewer is the identity a read is projected for. The zero value is an
// anonymous viewer.
type Viewer struct {
	ID            int64
	Authenticated bool
}

func Anonymous() Viewer {
	return Viewer{}
}

func NewViewer(id int64) Viewer {
	return Viewer{ID: id, Authenticated: true}
}

// QueryID is the id passed to the EXISTS sub-queries. Anonymous viewers map
// to 0, which never matches a row.
func (v Viewer) QueryID() int64 {
	if !v.Authenticated {
		return 0
	}
	return v.ID
}

// Flag masks a derived boolean so anonymous viewers always see false.
func (v Viewer) Flag(b bool) bool {
	return v.Authenticated && b
}

// URLResolver turns a stored file key into a public URL.
type URLResolver interface {
	FileURL(key string) string
}

type Profile struct {
	ID           int64   `json:"id"`
	Email        string  `json:"email"`
	Username     string  `json:"username"`
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	IsSubscribed bool    `json:"is_subscribed"`
	Avatar       *string `json:"avatar"`
}

// FromRow projects a profile row for the viewer.
func FromRow(row database.GetUserProfileRow, viewer Viewer, urls URLResolver) Profile {
	return Profile{
		ID:           row.ID,
		Email:        row.Email,
		Username:     row.Username,
		FirstName:    row.FirstName,
		LastName:     row.LastName,
		IsSubscribed: viewer.Flag(row.IsSubscribed),
		Avatar:       AvatarURL(row.Avatar, urls),
	}
}

func AvatarURL(avatar pgtype.Text, urls URLResolver) *string {
	if !avatar.Valid || avatar.String == "" || urls == nil {
		return nil
	}
	u := urls.FileURL(avatar.String)
	return &u
}

func Get(ctx context.Context, q database.Querier, id int64, viewer Viewer, urls URLResolver) (Profile, error) {
	row, err := q.GetUserProfile(ctx, database.GetUserProfileParams{
		ID:       id,
		ViewerID: viewer.QueryID(),
	})
	if errors.Is(err, pgx.ErrNoRows) {
		return Profile{}, ErrUserNotFound
	} else if err != nil {
		return Profile{}, fmt.Errorf("getting user profile: %w", err)
	}
	return FromRow(row, viewer, urls), nil
}

func List(ctx context.Context, q database.Querier, viewer Viewer, urls URLResolver, limit, offset int32) ([]Profile, int64, error) {
	count, err := q.CountUsers(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("counting users: %w", err)
	}
	rows, err := q.ListUserProfiles(ctx, database.ListUserProfilesParams{
		ViewerID: viewer.QueryID(),
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("listing users: %w", err)
	}
	profiles := make([]Profile, 0, len(rows))
	for _, row := range rows {
		profiles = append(profiles, FromRow(database.GetUserProfileRow(row), viewer, urls))
	}
	return profiles, count, nil
}

type RegisterParams struct {
	Email     string
	Username  string
	FirstName string
	LastName  string
	Password  string
}

// Register hashes the password and stores a new user. Email and username
// clashes are reported by the unique indexes.
func Register(ctx context.Context, q database.Querier, params RegisterParams) (int64, error) {
	hash, err := argon2id.Hash(params.Password, argon2id.DefaultParams)
	if err != nil {
		return 0, fmt.Errorf("hashing password: %w", err)
	}

	id, err := q.CreateUser(ctx, database.CreateUserParams{
		Email:        strings.ToLower(strings.TrimSpace(params.Email)),
		Username:     params.Username,
		FirstName:    params.FirstName,
		LastName:     params.LastName,
		PasswordHash: hash,
	})
	if pgErr, ok := database.PgError(err, database.UniqueViolation); ok {
		if strings.Contains(pgErr.ConstraintName, "username") {
			return 0, ErrUsernameConflict
		}
		return 0, ErrEmailConflict
	} else if err != nil {
		return 0, fmt.Errorf("creating user: %w", err)
	}
	return id, nil
}

// Login returns the user owning email when password matches its hash. An
// unknown email and a wrong password are indistinguishable.
func Login(ctx context.Context, q database.Querier, email, password string) (database.User, error) {
	u, err := q.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if errors.Is(err, pgx.ErrNoRows) {
		return database.User{}, ErrInvalidCredentials
	} else if err != nil {
		return database.User{}, fmt.Errorf("getting user: %w", err)
	}

	ok, err := argon2id.Verify(password, u.PasswordHash)
	if err != nil {
		return database.User{}, fmt.Errorf("verifying password: %w", err)
	}
	if !ok {
		return database.User{}, ErrInvalidCredentials
	}
	return u, nil
}
