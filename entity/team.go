package entity

type Team struct {
	ID   int64  `bson:"_id,omitempty" json:"id"`
	Name string `bson:"name,omitempty" json:"name"`
	Slug string `bson:"slug,omitempty" json:"slug"`

	// ParentID points to the organization a sub-team belongs to.
	ParentID *int64 `bson:"parentId,omitempty" json:"parentId"`
	Parent   *Team  `bson:"parent,omitempty" json:"parent,omitempty"`

	IsOrganization bool   `bson:"isOrganization" json:"isOrganization"`
	IsPlatform     bool   `bson:"isPlatform" json:"isPlatform"`
	LogoURL        string `bson:"logoUrl,omitempty" json:"logoUrl,omitempty"`
	HideBranding   bool   `bson:"hideBranding" json:"hideBranding"`

	OrganizationSettings *OrganizationSettings `bson:"organizationSettings,omitempty" json:"organizationSettings,omitempty"`
	PlatformBilling      *PlatformBilling      `bson:"platformBilling,omitempty" json:"platformBilling,omitempty"`

	Members []*Membership `bson:"members,omitempty" json:"members,omitempty"`
}

type OrganizationSettings struct {
	IsAdminAPIEnabled bool `bson:"isAdminAPIEnabled" json:"isAdminAPIEnabled"`
}

type PlatformBilling struct {
	Plan PlatformPlan `bson:"plan" json:"plan"`
}

func (t *Team) MemberIDs() []int64 {
	ids := make([]int64, 0, len(t.Members))
	for _, m := range t.Members {
		ids = append(ids, m.UserID)
	}
	return ids
}

// OwnerAndAdminIDs returns the ids of members allowed to manage the team's event types.
func (t *Team) OwnerAndAdminIDs() []int64 {
	var ids []int64
	for _, m := range t.Members {
		if m.IsOwnerOrAdmin() {
			ids = append(ids, m.UserID)
		}
	}
	return ids
}

func (t *Team) IsAdminAPIEnabled() bool {
	return t.OrganizationSettings != nil && t.OrganizationSettings.IsAdminAPIEnabled
}

func (t *Team) Plan() PlatformPlan {
	if t.PlatformBilling == nil || t.PlatformBilling.Plan == "" {
		return PlatformPlanFree
	}
	return t.PlatformBilling.Plan
}
