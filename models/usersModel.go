package models

// Role ids used by the clinical backend. 100 is the only role allowed to
// manage system accounts; the remaining codes are operator variants.
const (
	RoleAdmin        = 100
	RoleReceptionist = 101
	RoleBilling      = 102
)

// User represents a system account held by the clinical backend.
type User struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
	RoleID   int    `json:"roleId"`
	Status   int    `json:"status"`
}

// UserUpdate is the partial payload accepted by the user update endpoint.
// Only non-nil fields are sent.
type UserUpdate struct {
	Name   *string `json:"name,omitempty"`
	Email  *string `json:"email,omitempty"`
	RoleID *int    `json:"roleId,omitempty"`
	Status *int    `json:"status,omitempty"`
}

// RoleLabel maps a role id to its display name.
func RoleLabel(roleID int) string {
	switch roleID {
	case RoleAdmin:
		return "Admin"
	case RoleReceptionist:
		return "Receptionist"
	case RoleBilling:
		return "Billing"
	default:
		return "Operator"
	}
}
