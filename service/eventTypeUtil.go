package service

import (
	"fmt"
	"strings"

	"github.com/joeyave/scala-booking/entity"
	"github.com/joeyave/scala-booking/helpers"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

// IsAuthorized reports whether actor may modify eventType.
// Team event types need an OWNER or ADMIN membership, or an org admin.
// Personal ones need the owner or one of the direct users.
func IsAuthorized(eventType *entity.EventType, actor Actor) bool {
	if eventType.Team != nil {
		return slices.Contains(eventType.Team.OwnerAndAdminIDs(), actor.UserID) || actor.IsOrgAdmin
	}
	return eventType.HasUser(actor.UserID)
}

// IsAllowedAssignment reports whether every id in userIDs may be assigned to eventType:
// team members for team event types, only the actor for personal ones.
func IsAllowedAssignment(eventType *entity.EventType, actor Actor, userIDs []int64) bool {
	if eventType.Team != nil {
		members := eventType.Team.MemberIDs()
		for _, userID := range userIDs {
			if !slices.Contains(members, userID) {
				return false
			}
		}
		return true
	}
	for _, userID := range userIDs {
		if userID != actor.UserID {
			return false
		}
	}
	return true
}

// CheckEventOwner runs both predicates in order and returns the FORBIDDEN error of the first that fails.
func CheckEventOwner(eventType *entity.EventType, actor Actor, userIDs []int64) error {
	if !IsAuthorized(eventType, actor) {
		return helpers.Forbidden("")
	}

	if !IsAllowedAssignment(eventType, actor, userIDs) {
		log.Warn().
			Int64("userId", actor.UserID).
			Int64("eventTypeId", eventType.ID).
			Ints64("users", userIDs).
			Msgf("User %d attempted to create an event for users %s.", actor.UserID, joinIDs(userIDs))
		return helpers.Forbidden("")
	}

	return nil
}

func joinIDs(ids []int64) string {
	strs := make([]string, len(ids))
	for i, id := range ids {
		strs[i] = fmt.Sprint(id)
	}
	return strings.Join(strs, ", ")
}

func IsPeriodType(s string) bool {
	return slices.Contains(entity.PeriodTypes, entity.PeriodType(s))
}

// HandlePeriodType normalizes a submitted period type. Unknown values are dropped.
func HandlePeriodType(periodType *string) *entity.PeriodType {
	if periodType == nil {
		return nil
	}
	passed := strings.ToUpper(*periodType)
	if !IsPeriodType(passed) {
		return nil
	}
	pt := entity.PeriodType(passed)
	return &pt
}

// HandleCustomInputs plans the writes for the submitted custom inputs of an event type.
// Inputs flagged hasToBeCreated are created, the others are updated by id,
// and any existing input missing from the list is deleted.
func HandleCustomInputs(customInputs []*entity.CustomInput, eventTypeID int64) *entity.CustomInputsPlan {
	plan := &entity.CustomInputsPlan{
		EventTypeID: eventTypeID,
		KeepIDs:     []int64{},
	}

	for _, input := range customInputs {
		data := &entity.CustomInput{
			EventTypeID: eventTypeID,
			Type:        input.Type,
			Label:       input.Label,
			Required:    input.Required,
			Placeholder: input.Placeholder,
		}
		if len(input.Options) > 0 {
			data.Options = input.Options
		}

		if input.HasToBeCreated {
			plan.Create = append(plan.Create, data)
			continue
		}

		data.ID = input.ID
		plan.KeepIDs = append(plan.KeepIDs, input.ID)
		plan.Update = append(plan.Update, data)
	}

	return plan
}

func EnsureUniqueBookingFields(fields []*entity.BookingField) error {
	discovered := make(map[string]struct{}, len(fields))
	for _, field := range fields {
		if _, ok := discovered[field.Name]; ok {
			return helpers.BadRequest("Duplicate booking field name: %s", field.Name)
		}
		discovered[field.Name] = struct{}{}
	}
	return nil
}

// EnsureEmailOrPhoneNumberIsPresent keeps at least one way of contacting the attendee.
// A field missing from the list counts as neither hidden nor required.
func EnsureEmailOrPhoneNumberIsPresent(fields []*entity.BookingField) error {
	if len(fields) == 0 {
		return nil
	}

	var email, phone entity.BookingField
	if f := entity.FindBookingField(fields, entity.BookingFieldEmail); f != nil {
		email = *f
	}
	if f := entity.FindBookingField(fields, entity.BookingFieldAttendeePhoneNumber); f != nil {
		phone = *f
	}

	switch {
	case email.Hidden && phone.Hidden:
		return helpers.BadRequest("Both Email and Attendee Phone Number cannot be hidden")
	case email.Hidden && email.Required:
		return helpers.BadRequest("Email field cannot be hidden if it is a required field. You can click on Edit to mark it as not required field.")
	case phone.Hidden && phone.Required:
		return helpers.BadRequest("Attendee Phone Number field cannot be hidden if it is a required field. You can click on Edit to mark it as not required field.")
	case !email.Required && !phone.Required:
		return helpers.BadRequest("Atleast Email or Attendee Phone Number need to be required field.")
	}
	return nil
}
