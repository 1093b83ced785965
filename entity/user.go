package entity

import "fmt"

type User struct {
	ID        int64    `bson:"_id" json:"id"`
	Username  string   `bson:"username,omitempty" json:"username"`
	Name      string   `bson:"name,omitempty" json:"name"`
	Email     string   `bson:"email,omitempty" json:"email"`
	AvatarURL string   `bson:"avatarUrl,omitempty" json:"avatarUrl,omitempty"`
	TimeZone  string   `bson:"timeZone,omitempty" json:"timeZone"`
	Role      UserRole `bson:"role,omitempty" json:"role,omitempty"`

	OrganizationID *int64 `bson:"organizationId,omitempty" json:"organizationId"`

	// Profile is filled by enrichment, never stored on the user document.
	Profile *Profile `bson:"-" json:"profile,omitempty"`
}

func (u *User) IsSystemAdmin() bool {
	return u.Role == UserRoleAdmin
}

// Profile is a user's identity inside one organization.
type Profile struct {
	ID             *int64 `bson:"_id,omitempty" json:"id"`
	UID            string `bson:"uid,omitempty" json:"uid,omitempty"`
	UserID         int64  `bson:"userId" json:"userId"`
	OrganizationID *int64 `bson:"organizationId,omitempty" json:"organizationId"`
	Username       string `bson:"username" json:"username"`

	Organization *Team `bson:"organization,omitempty" json:"organization,omitempty"`

	UpID string `bson:"-" json:"upId"`
}

// PersonalUpID is the profile id used for users outside any organization.
func PersonalUpID(userID int64) string {
	return fmt.Sprintf("usr-%d", userID)
}
