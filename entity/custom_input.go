package entity

type CustomInputType string

const (
	CustomInputTypeText     CustomInputType = "TEXT"
	CustomInputTypeTextLong CustomInputType = "TEXTLONG"
	CustomInputTypeNumber   CustomInputType = "NUMBER"
	CustomInputTypeBool     CustomInputType = "BOOL"
	CustomInputTypeRadio    CustomInputType = "RADIO"
	CustomInputTypePhone    CustomInputType = "PHONE"
)

type CustomInput struct {
	ID          int64                `bson:"_id,omitempty" json:"id"`
	EventTypeID int64                `bson:"eventTypeId" json:"eventTypeId"`
	Type        CustomInputType      `bson:"type" json:"type"`
	Label       string               `bson:"label" json:"label"`
	Required    bool                 `bson:"required" json:"required"`
	Placeholder string               `bson:"placeholder" json:"placeholder"`
	Options     []*CustomInputOption `bson:"options,omitempty" json:"options,omitempty"`

	HasToBeCreated bool `bson:"-" json:"hasToBeCreated,omitempty"`
}

type CustomInputOption struct {
	Label string `bson:"label" json:"label"`
	Type  string `bson:"type" json:"type"`
}
