package service

import (
	"testing"

	"github.com/joeyave/scala-booking/entity"
	"github.com/joeyave/scala-booking/helpers"
	"github.com/stretchr/testify/assert"
)

func teamEventType(members ...*entity.Membership) *entity.EventType {
	teamID := int64(10)
	return &entity.EventType{
		ID:     1,
		TeamID: &teamID,
		Team:   &entity.Team{ID: teamID, Members: members},
	}
}

func personalEventType(ownerID int64, userIDs ...int64) *entity.EventType {
	eventType := &entity.EventType{ID: 2, UserID: &ownerID}
	for _, id := range userIDs {
		eventType.Users = append(eventType.Users, &entity.User{ID: id})
	}
	return eventType
}

func TestIsAuthorizedTeam(t *testing.T) {
	eventType := teamEventType(
		&entity.Membership{UserID: 1, Role: entity.MembershipRoleOwner},
		&entity.Membership{UserID: 2, Role: entity.MembershipRoleAdmin},
		&entity.Membership{UserID: 3, Role: entity.MembershipRoleMember},
	)

	assert.True(t, IsAuthorized(eventType, Actor{UserID: 1}))
	assert.True(t, IsAuthorized(eventType, Actor{UserID: 2}))
	assert.False(t, IsAuthorized(eventType, Actor{UserID: 3}))
	assert.False(t, IsAuthorized(eventType, Actor{UserID: 4}))
	assert.True(t, IsAuthorized(eventType, Actor{UserID: 3, IsOrgAdmin: true}))
	assert.True(t, IsAuthorized(eventType, Actor{UserID: 4, IsOrgAdmin: true}))
}

func TestIsAuthorizedPersonal(t *testing.T) {
	eventType := personalEventType(1, 5)

	assert.True(t, IsAuthorized(eventType, Actor{UserID: 1}))
	assert.True(t, IsAuthorized(eventType, Actor{UserID: 5}))
	assert.False(t, IsAuthorized(eventType, Actor{UserID: 6}))
	assert.False(t, IsAuthorized(eventType, Actor{UserID: 6, IsOrgAdmin: true}))
}

func TestIsAllowedAssignment(t *testing.T) {
	team := teamEventType(
		&entity.Membership{UserID: 1, Role: entity.MembershipRoleOwner},
		&entity.Membership{UserID: 2, Role: entity.MembershipRoleMember},
		&entity.Membership{UserID: 3, Role: entity.MembershipRoleMember},
	)
	actor := Actor{UserID: 1}

	assert.True(t, IsAllowedAssignment(team, actor, []int64{2, 3}))
	assert.False(t, IsAllowedAssignment(team, actor, []int64{2, 4}))
	assert.True(t, IsAllowedAssignment(team, actor, nil))

	personal := personalEventType(1)
	assert.True(t, IsAllowedAssignment(personal, actor, []int64{1}))
	assert.False(t, IsAllowedAssignment(personal, actor, []int64{1, 2}))
}

func TestCheckEventOwner(t *testing.T) {
	eventType := teamEventType(
		&entity.Membership{UserID: 1, Role: entity.MembershipRoleOwner},
		&entity.Membership{UserID: 2, Role: entity.MembershipRoleMember},
	)

	assert.NoError(t, CheckEventOwner(eventType, Actor{UserID: 1}, []int64{2}))

	err := CheckEventOwner(eventType, Actor{UserID: 2}, nil)
	assert.True(t, helpers.HasCode(err, helpers.CodeForbidden))

	err = CheckEventOwner(eventType, Actor{UserID: 1}, []int64{2, 9})
	assert.True(t, helpers.HasCode(err, helpers.CodeForbidden))
}

func TestHandlePeriodType(t *testing.T) {
	assert.Nil(t, HandlePeriodType(nil))
	assert.Nil(t, HandlePeriodType(ptr("")))
	assert.Nil(t, HandlePeriodType(ptr("weekly")))
	assert.Equal(t, ptr(entity.PeriodTypeRolling), HandlePeriodType(ptr("rolling")))
	assert.Equal(t, ptr(entity.PeriodTypeRollingWindow), HandlePeriodType(ptr("ROLLING_WINDOW")))
}

func TestHandleCustomInputs(t *testing.T) {
	plan := HandleCustomInputs([]*entity.CustomInput{
		{ID: 4, Type: entity.CustomInputTypeText, Label: "Company"},
		{Type: entity.CustomInputTypeRadio, Label: "Size", Options: []*entity.CustomInputOption{{Label: "S", Type: "radio"}}, HasToBeCreated: true},
		{Type: entity.CustomInputTypeBool, Label: "Agree", Options: []*entity.CustomInputOption{}, HasToBeCreated: true},
	}, 7)

	assert.Equal(t, int64(7), plan.EventTypeID)
	assert.Equal(t, []int64{4}, plan.KeepIDs)

	if assert.Len(t, plan.Update, 1) {
		assert.Equal(t, int64(4), plan.Update[0].ID)
		assert.Equal(t, int64(7), plan.Update[0].EventTypeID)
	}
	if assert.Len(t, plan.Create, 2) {
		assert.Equal(t, "Size", plan.Create[0].Label)
		assert.Len(t, plan.Create[0].Options, 1)
		assert.Nil(t, plan.Create[1].Options)
		assert.Zero(t, plan.Create[1].ID)
	}

	empty := HandleCustomInputs(nil, 7)
	assert.Empty(t, empty.KeepIDs)
	assert.NotNil(t, empty.KeepIDs)
}

func TestEnsureUniqueBookingFields(t *testing.T) {
	assert.NoError(t, EnsureUniqueBookingFields(nil))
	assert.NoError(t, EnsureUniqueBookingFields([]*entity.BookingField{{Name: "email"}, {Name: "phone"}}))

	err := EnsureUniqueBookingFields([]*entity.BookingField{{Name: "email"}, {Name: "email"}})
	if assert.Error(t, err) {
		assert.True(t, helpers.HasCode(err, helpers.CodeBadRequest))
		assert.Equal(t, "Duplicate booking field name: email", helpers.AsError(err).Message)
	}
}

func TestEnsureEmailOrPhoneNumberIsPresent(t *testing.T) {
	field := func(name string, hidden, required bool) *entity.BookingField {
		return &entity.BookingField{Name: name, Type: "text", Hidden: hidden, Required: required}
	}

	cases := []struct {
		name   string
		fields []*entity.BookingField
		want   string
	}{
		{
			name:   "empty",
			fields: nil,
		},
		{
			name:   "both hidden",
			fields: []*entity.BookingField{field("email", true, false), field("attendeePhoneNumber", true, false)},
			want:   "Both Email and Attendee Phone Number cannot be hidden",
		},
		{
			name:   "email hidden and required",
			fields: []*entity.BookingField{field("email", true, true), field("attendeePhoneNumber", false, true)},
			want:   "Email field cannot be hidden if it is a required field. You can click on Edit to mark it as not required field.",
		},
		{
			name:   "phone hidden and required",
			fields: []*entity.BookingField{field("email", false, true), field("attendeePhoneNumber", true, true)},
			want:   "Attendee Phone Number field cannot be hidden if it is a required field. You can click on Edit to mark it as not required field.",
		},
		{
			name:   "neither required",
			fields: []*entity.BookingField{field("email", false, false), field("attendeePhoneNumber", false, false)},
			want:   "Atleast Email or Attendee Phone Number need to be required field.",
		},
		{
			name:   "email required",
			fields: []*entity.BookingField{field("email", false, true), field("attendeePhoneNumber", false, false)},
		},
		{
			name:   "phone absent",
			fields: []*entity.BookingField{field("email", false, true)},
		},
		{
			name:   "both absent",
			fields: []*entity.BookingField{field("name", false, true)},
			want:   "Atleast Email or Attendee Phone Number need to be required field.",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := EnsureEmailOrPhoneNumberIsPresent(c.fields)
			if c.want == "" {
				assert.NoError(t, err)
				return
			}
			if assert.Error(t, err) {
				assert.Equal(t, helpers.CodeBadRequest, helpers.AsError(err).Code)
				assert.Equal(t, c.want, helpers.AsError(err).Message)
			}
		})
	}
}
