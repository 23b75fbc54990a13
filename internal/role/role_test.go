package role

import (
	"testing"

	"github.com/matt-dz/foodgram/internal/database"
)

func TestParse(t *testing.T) {
	tests := map[string]Role{
		"user":    User,
		"admin":   Admin,
		"":        Unknown,
		"ADMIN":   Unknown,
		"unknown": Unknown,
	}
	for name, want := range tests {
		if got := Parse(name); got != want {
			t.Errorf("Parse(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestFromDB(t *testing.T) {
	if got := FromDB(database.RoleAdmin); got != Admin {
		t.Errorf("FromDB(admin) = %v", got)
	}
	if got := FromDB(database.RoleUser); got != User {
		t.Errorf("FromDB(user) = %v", got)
	}
	if got := FromDB(database.Role("moderator")); got != Unknown {
		t.Errorf("FromDB(moderator) = %v", got)
	}
}

func TestAllows(t *testing.T) {
	tests := []struct {
		have, required Role
		want           bool
	}{
		{Admin, Admin, true},
		{Admin, User, true},
		{User, User, true},
		{User, Admin, false},
		{Unknown, User, false},
		{Unknown, Unknown, false},
	}
	for _, tt := range tests {
		if got := tt.have.Allows(tt.required); got != tt.want {
			t.Errorf("%v.Allows(%v) = %v, want %v", tt.have, tt.required, got, tt.want)
		}
	}
}

func TestString(t *testing.T) {
	if User.String() != "user" || Admin.String() != "admin" || Unknown.String() != "unknown" {
		t.Errorf("unexpected names: %q %q %q", User, Admin, Unknown)
	}
}
