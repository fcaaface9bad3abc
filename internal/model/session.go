package model

// Session holds the authenticated user state shared by all views.
// It is mutated only through the session.Store operations.
type Session struct {
	IsAuthenticated bool     `json:"isAuthenticated"`
	User            *User    `json:"user,omitempty"`
	Token           string   `json:"token,omitempty"`
	ViewMode        ViewMode `json:"viewMode,omitempty"`
}

// User is the account behind a session
type User struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       Role   `json:"role"`
	IsVerified bool   `json:"isVerified"`
}

// Role is the account role assigned by the backend
type Role string

const (
	RoleUser   Role = "user"
	RoleSeller Role = "seller"
	RoleAdmin  Role = "admin"
)

// ViewMode selects which read-only perspective sellers see. It never
// changes role or permissions.
type ViewMode string

const (
	ViewModeBuyer  ViewMode = "buyer"
	ViewModeSeller ViewMode = "seller"
)
