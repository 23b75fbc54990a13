// Package role maps account roles between the database, access tokens and
// route guards.
package role

import "github.com/matt-dz/foodgram/internal/database"

// Role is ordered: a higher role is granted everything a lower one is.
type Role int

const (
	Unknown Role = iota
	User
	Admin
)

var names = map[Role]string{
	User:  string(database.RoleUser),
	Admin: string(database.RoleAdmin),
}

func (r Role) String() string {
	if name, ok := names[r]; ok {
		return name
	}
	return "unknown"
}

// Allows reports whether r may access routes guarded by required.
// Unknown never allows anything.
func (r Role) Allows(required Role) bool {
	return r != Unknown && r >= required
}

// Parse returns the role named by a token claim, or Unknown.
func Parse(name string) Role {
	for r, n := range names {
		if n == name {
			return r
		}
	}
	return Unknown
}

func FromDB(r database.Role) Role {
	return Parse(string(r))
}
