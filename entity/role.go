package entity

type MembershipRole string

const (
	MembershipRoleOwner  MembershipRole = "OWNER"
	MembershipRoleAdmin  MembershipRole = "ADMIN"
	MembershipRoleMember MembershipRole = "MEMBER"
)

func (r MembershipRole) IsValid() bool {
	switch r {
	case MembershipRoleOwner, MembershipRoleAdmin, MembershipRoleMember:
		return true
	}
	return false
}

// UserRole is the platform-wide role of a user, independent of any team.
type UserRole string

const (
	UserRoleUser  UserRole = "USER"
	UserRoleAdmin UserRole = "ADMIN"
)

// OrgRole is what a route demands of the caller's membership in an organization.
type OrgRole string

const (
	OrgRoleMember OrgRole = "ORG_MEMBER"
	OrgRoleAdmin  OrgRole = "ORG_ADMIN"
)
