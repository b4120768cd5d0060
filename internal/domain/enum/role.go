package enum

// Role is the access level of a shop user
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleCashier Role = "cashier"
)

// IsValid checks whether the role is one of the known values
func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleCashier
}
