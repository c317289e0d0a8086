package domain

// UserRole distinguishes challenge creators (brands) from clippers (content creators).
type UserRole string

const (
	RoleCreator UserRole = "CREATOR"
	RoleClipper UserRole = "CLIPPER"
)

// Valid reports whether the role is one of the closed set.
func (r UserRole) Valid() bool {
	return r == RoleCreator || r == RoleClipper
}

// User represents a registered user of the platform.
type User struct {
	UserID       string   `json:"userID"` // Primary Key (UUID)
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	PasswordHash string   `json:"-"`
	Role         UserRole `json:"role"`
	AvatarURL    string   `json:"avatarURL"`
	AuditFields
}
