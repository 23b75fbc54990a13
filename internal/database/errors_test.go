package database

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestPgError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		code   string
		wantOK bool
	}{
		{
			name:   "matching code",
			err:    &pgconn.PgError{Code: UniqueViolation, ConstraintName: "unique_favorite_user_recipe"},
			code:   UniqueViolation,
			wantOK: true,
		},
		{
			name:   "wrapped error",
			err:    fmt.Errorf("creating favorite: %w", &pgconn.PgError{Code: ForeignKeyViolation}),
			code:   ForeignKeyViolation,
			wantOK: true,
		},
		{
			name:   "different code",
			err:    &pgconn.PgError{Code: CheckViolation},
			code:   UniqueViolation,
			wantOK: false,
		},
		{
			name:   "not a postgres error",
			err:    errors.New("boom"),
			code:   UniqueViolation,
			wantOK: false,
		},
		{
			name:   "nil error",
			err:    nil,
			code:   UniqueViolation,
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pgErr, ok := PgError(tt.err, tt.code)
			if ok != tt.wantOK {
				t.Fatalf("PgError() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && pgErr.Code != tt.code {
				t.Errorf("PgError() code = %q, want %q", pgErr.Code, tt.code)
			}
		})
	}
}

func TestMockStoreInTx(t *testing.T) {
	store := &MockStore{}

	if err := store.InTx(t.Context(), func(q Querier) error { return nil }); err != nil {
		t.Fatalf("InTx() error = %v", err)
	}
	wantErr := errors.New("rollback me")
	if err := store.InTx(t.Context(), func(q Querier) error { return wantErr }); !errors.Is(err, wantErr) {
		t.Fatalf("InTx() error = %v, want %v", err, wantErr)
	}

	if store.Commits != 1 || store.Rollbacks != 1 {
		t.Errorf("commits = %d, rollbacks = %d, want 1 and 1", store.Commits, store.Rollbacks)
	}
}
