package service

// Actor is the authenticated caller a request acts on behalf of.
type Actor struct {
	UserID         int64
	Username       string
	OrganizationID *int64
	// IsOrgAdmin is true when the user is an accepted OWNER or ADMIN of their organization.
	IsOrgAdmin    bool
	IsSystemAdmin bool
}
