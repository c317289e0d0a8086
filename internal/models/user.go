package models

// UserRole mirrors domain.UserRole for storage.
type UserRole string

const (
	RoleCreator UserRole = "CREATOR"
	RoleClipper UserRole = "CLIPPER"
)

// User represents a row in the users table.
type User struct {
	UserID       string   `db:"user_id"`
	Name         string   `db:"name"`
	Email        string   `db:"email"`
	PasswordHash string   `db:"password_hash"`
	Role         UserRole `db:"role"`
	AvatarURL    string   `db:"avatar_url"` // Nullable
	AuditFields
}
