package entity

type SchedulingType string

const (
	SchedulingTypeRoundRobin SchedulingType = "ROUND_ROBIN"
	SchedulingTypeCollective SchedulingType = "COLLECTIVE"
	SchedulingTypeManaged    SchedulingType = "MANAGED"
)

type EventType struct {
	ID          int64   `bson:"_id,omitempty" json:"id"`
	Title       string  `bson:"title,omitempty" json:"title"`
	Slug        string  `bson:"slug,omitempty" json:"slug"`
	Description *string `bson:"description,omitempty" json:"description"`
	Length      int     `bson:"length,omitempty" json:"length"`
	Hidden      bool    `bson:"hidden" json:"hidden"`
	Position    int     `bson:"position" json:"position"`

	UserID *int64 `bson:"userId,omitempty" json:"userId"`
	TeamID *int64 `bson:"teamId,omitempty" json:"teamId"`
	Team   *Team  `bson:"team,omitempty" json:"team,omitempty"`

	// ParentID is set on the per-user copies of a managed team event type.
	ParentID *int64 `bson:"parentId,omitempty" json:"parentId"`

	UserIDs  []int64      `bson:"userIds" json:"-"`
	Users    []*User      `bson:"users,omitempty" json:"users"`
	Hosts    []*Host      `bson:"hosts,omitempty" json:"hosts"`
	Children []*EventType `bson:"children,omitempty" json:"children"`

	PeriodType     PeriodType     `bson:"periodType,omitempty" json:"periodType"`
	SchedulingType SchedulingType `bson:"schedulingType,omitempty" json:"schedulingType"`

	Metadata      map[string]any  `bson:"metadata,omitempty" json:"metadata"`
	BookingFields []*BookingField `bson:"bookingFields,omitempty" json:"bookingFields"`
	CustomInputs  []*CustomInput  `bson:"customInputs,omitempty" json:"customInputs"`
}

type Host struct {
	UserID   int64 `bson:"userId" json:"userId"`
	IsFixed  bool  `bson:"isFixed" json:"isFixed"`
	Priority *int  `bson:"priority,omitempty" json:"priority"`
	User     *User `bson:"user,omitempty" json:"user,omitempty"`
}

func (e *EventType) IsTeamEvent() bool {
	return e.TeamID != nil
}

// HasUser reports whether the user owns the event type directly or is one of its direct users.
func (e *EventType) HasUser(userID int64) bool {
	if e.UserID != nil && *e.UserID == userID {
		return true
	}
	for _, u := range e.Users {
		if u.ID == userID {
			return true
		}
	}
	return false
}

// AssignedUsers are the hosts' users when any host is set, otherwise the direct users.
// Hosts whose user could not be joined are skipped.
func (e *EventType) AssignedUsers() []*User {
	if len(e.Hosts) == 0 {
		return e.Users
	}
	users := make([]*User, 0, len(e.Hosts))
	for _, h := range e.Hosts {
		if h == nil || h.User == nil {
			continue
		}
		users = append(users, h.User)
	}
	return users
}
