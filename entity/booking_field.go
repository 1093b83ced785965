package entity

const (
	BookingFieldEmail               = "email"
	BookingFieldAttendeePhoneNumber = "attendeePhoneNumber"
)

type BookingField struct {
	Name        string                `bson:"name" json:"name" validate:"required"`
	Type        string                `bson:"type" json:"type" validate:"required"`
	Label       string                `bson:"label,omitempty" json:"label,omitempty"`
	Placeholder string                `bson:"placeholder,omitempty" json:"placeholder,omitempty"`
	Required    bool                  `bson:"required" json:"required"`
	Hidden      bool                  `bson:"hidden" json:"hidden"`
	Options     []*BookingFieldOption `bson:"options,omitempty" json:"options,omitempty" validate:"omitempty,dive"`
	Sources     []*BookingFieldSource `bson:"sources,omitempty" json:"sources,omitempty"`
}

type BookingFieldOption struct {
	Label string `bson:"label" json:"label"`
	Value string `bson:"value" json:"value" validate:"required"`
}

type BookingFieldSource struct {
	ID    string `bson:"id" json:"id"`
	Type  string `bson:"type" json:"type"`
	Label string `bson:"label" json:"label"`
}

// FindBookingField returns the first field with the given name, or nil.
func FindBookingField(fields []*BookingField, name string) *BookingField {
	for _, f := range fields {
		if f.Name == name {
			return f
		}
	}
	return nil
}
