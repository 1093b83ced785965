package entity

// EventTypeUpdate holds the fields an update writes. Nil fields are left untouched.
type EventTypeUpdate struct {
	Title          *string
	Slug           *string
	Description    *string
	Length         *int
	Hidden         *bool
	UserIDs        []int64
	Hosts          []*Host
	PeriodType     *PeriodType
	SchedulingType *SchedulingType
	Metadata       map[string]any
	BookingFields  []*BookingField
}

// CustomInputsPlan is the set of writes that brings an event type's custom inputs
// in line with a submitted list.
type CustomInputsPlan struct {
	EventTypeID int64
	// KeepIDs are the only existing inputs that survive; every other input of the event type is deleted.
	KeepIDs []int64
	Create  []*CustomInput
	Update  []*CustomInput
}

type AttributeUpdate struct {
	Name    *string
	Slug    *string
	Type    *AttributeType
	Enabled *bool
}
