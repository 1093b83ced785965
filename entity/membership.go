package entity

type Membership struct {
	ID int64 `bson:"_id,omitempty" json:"id,omitempty"`

	TeamID int64 `bson:"teamId" json:"teamId"`
	Team   *Team `bson:"team,omitempty" json:"team,omitempty"`

	UserID int64 `bson:"userId" json:"userId"`
	User   *User `bson:"user,omitempty" json:"user,omitempty"`

	Role     MembershipRole `bson:"role" json:"role"`
	Accepted bool           `bson:"accepted" json:"accepted"`
}

func (m *Membership) IsOwnerOrAdmin() bool {
	return m.Role == MembershipRoleOwner || m.Role == MembershipRoleAdmin
}
