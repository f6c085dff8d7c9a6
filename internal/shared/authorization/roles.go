// Package authorization defines the platform's role model and route guards.
// The ticket core only distinguishes SUPER_ADMIN from ordinary members;
// credential management lives outside this service.
package authorization

type UserRole string

const (
	RoleSuperAdmin UserRole = "SUPER_ADMIN"
	RoleMember     UserRole = "MEMBER"
)

func (r UserRole) String() string {
	return string(r)
}

func (r UserRole) IsSuperAdmin() bool {
	return r == RoleSuperAdmin
}

func (r UserRole) IsValid() bool {
	return r == RoleSuperAdmin || r == RoleMember
}

func ParseUserRole(s string) UserRole {
	role := UserRole(s)
	if role.IsValid() {
		return role
	}
	return RoleMember
}
