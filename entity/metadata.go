package entity

type BookerLayout string

const (
	BookerLayoutMonthView  BookerLayout = "month_view"
	BookerLayoutWeekView   BookerLayout = "week_view"
	BookerLayoutColumnView BookerLayout = "column_view"
)

// EventTypeMetadata is the typed view of an event type's metadata blob.
type EventTypeMetadata struct {
	MultipleDuration        []int          `json:"multipleDuration,omitempty" validate:"omitempty,dive,gt=0"`
	AdditionalNotesRequired bool           `json:"additionalNotesRequired,omitempty"`
	DisableSuccessPage      bool           `json:"disableSuccessPage,omitempty"`
	GiphyThankYouPage       string         `json:"giphyThankYouPage,omitempty"`
	Apps                    map[string]any `json:"apps,omitempty"`

	DisableStandardEmails         *DisableStandardEmails         `json:"disableStandardEmails,omitempty"`
	ManagedEventConfig            *ManagedEventConfig            `json:"managedEventConfig,omitempty"`
	RequiresConfirmationThreshold *RequiresConfirmationThreshold `json:"requiresConfirmationThreshold,omitempty" validate:"omitempty"`
	BookerLayouts                 *BookerLayouts                 `json:"bookerLayouts,omitempty" validate:"omitempty"`
	Config                        *EventTypeConfig               `json:"config,omitempty"`
}

type DisableStandardEmails struct {
	Confirmation *struct {
		Host     bool `json:"host,omitempty"`
		Attendee bool `json:"attendee,omitempty"`
	} `json:"confirmation,omitempty"`
}

type ManagedEventConfig struct {
	UnlockedFields map[string]bool `json:"unlockedFields,omitempty"`
}

type RequiresConfirmationThreshold struct {
	Time int    `json:"time" validate:"gte=0"`
	Unit string `json:"unit" validate:"oneof=minutes hours"`
}

type BookerLayouts struct {
	EnabledLayouts []BookerLayout `json:"enabledLayouts" validate:"min=1,dive,oneof=month_view week_view column_view"`
	DefaultLayout  BookerLayout   `json:"defaultLayout" validate:"oneof=month_view week_view column_view"`
}

type EventTypeConfig struct {
	UseHostSchedulesForTeamEvent bool `json:"useHostSchedulesForTeamEvent,omitempty"`
}
