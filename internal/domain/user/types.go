package user

// Role decides what a signed-in user may touch. Owners see only their own
// business; admins see every business.
type Role string

const (
	RoleBusinessOwner Role = "BUSINESS_OWNER"
	RoleAdmin         Role = "ADMIN"
)

func (r Role) String() string { return string(r) }

// OwnsBusiness reports whether registration creates a business for this role.
func (r Role) OwnsBusiness() bool { return r == RoleBusinessOwner }

// SeesAllBusinesses is true for roles exempt from the per-business ownership check.
func (r Role) SeesAllBusinesses() bool { return r == RoleAdmin }

// NewRole parses a stored or token-carried role name.
func NewRole(s string) (Role, error) {
	switch r := Role(s); r {
	case RoleBusinessOwner, RoleAdmin:
		return r, nil
	}
	return "", ErrInvalidRole
}
