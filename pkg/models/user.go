package models

// Role distinguishes administrators from storefront customers.
type Role int

const (
	RoleAdmin    Role = 1
	RoleCustomer Role = 2
)

// Label returns the display name for the role, or an empty string for
// values the backend has not defined.
func (r Role) Label() string {
	switch r {
	case RoleAdmin:
		return "Administrator"
	case RoleCustomer:
		return "Customer"
	default:
		return ""
	}
}

// User is a back-office account. Username is immutable after creation;
// Password is write-only and never returned by the backend.
type User struct {
	UserID    int    `json:"user_id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      Role   `json:"role"`
	Avatar    string `json:"avatar,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

// FullName joins the optional first and last names the way the backend
// stores them, separated by a single space.
func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}
