package domain

import "time"

const (
	RoleAdmin = "admin"
	RoleVet   = "vet"
	RoleStaff = "staff"
)

// User models a clinic staff account as returned by the backend.
type User struct {
	ID        string    `json:"id"`
	ClinicID  string    `json:"clinic_id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     *string   `json:"email"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsAdmin reports whether the user holds the admin role. This is a display
// gate for navigation and dashboard widgets; the backend enforces the real
// authorization.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// UserInput carries create/update fields for a staff account. Nil pointers
// are omitted from the serialized payload, giving partial updates.
type UserInput struct {
	Name     *string `json:"name,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Email    *string `json:"email,omitempty"`
	Role     *string `json:"role,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
	Password *string `json:"password,omitempty"`
}

// Credentials is the login request body for POST /auth/login.
type Credentials struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// AuthToken is the successful login response.
type AuthToken struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	User        User   `json:"user"`
}
