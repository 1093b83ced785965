package service

import (
	"context"
	"fmt"

	"github.com/joeyave/scala-booking/entity"
	"github.com/joeyave/scala-booking/helpers"
	"golang.org/x/exp/slices"
)

type EventTypeStore interface {
	// FindOneByIDWithAccess loads the event type with its direct users and team members.
	FindOneByIDWithAccess(ctx context.Context, ID int64) (*entity.EventType, error)
	FindOneByID(ctx context.Context, ID int64) (*entity.EventType, error)
	FindManyByUserID(ctx context.Context, userID int64) ([]*entity.EventType, error)
	FindManyByTeamIDs(ctx context.Context, teamIDs []int64) ([]*entity.EventType, error)
	UpdateOne(ctx context.Context, ID int64, update *entity.EventTypeUpdate) error
	DeleteOneByID(ctx context.Context, ID int64) error
}

type CustomInputStore interface {
	Apply(ctx context.Context, plan *entity.CustomInputsPlan) error
}

// Transactor runs fn so that either all of its writes are committed or none are.
// Stores must be called with the ctx fn receives.
type Transactor interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type EventTypeService struct {
	eventTypeRepository   EventTypeStore
	customInputRepository CustomInputStore
	membershipRepository  MembershipStore
	enricher              ProfileEnricher
	transactor            Transactor
}

func NewEventTypeService(eventTypeRepository EventTypeStore, customInputRepository CustomInputStore, membershipRepository MembershipStore, enricher ProfileEnricher, transactor Transactor) *EventTypeService {
	return &EventTypeService{
		eventTypeRepository:   eventTypeRepository,
		customInputRepository: customInputRepository,
		membershipRepository:  membershipRepository,
		enricher:              enricher,
		transactor:            transactor,
	}
}

// CheckOwner loads the event type and makes sure actor may change it and assign userIDs to it.
func (s *EventTypeService) CheckOwner(ctx context.Context, actor Actor, ID int64, userIDs []int64) (*entity.EventType, error) {
	eventType, err := s.eventTypeRepository.FindOneByIDWithAccess(ctx, ID)
	if err != nil {
		return nil, err
	}

	if err := CheckEventOwner(eventType, actor, userIDs); err != nil {
		return nil, err
	}

	return eventType, nil
}

type GetEventTypeInput struct {
	ID int64 `json:"id" validate:"required"`
}

func (s *EventTypeService) Get(ctx context.Context, actor Actor, input GetEventTypeInput) (*EventTypeView, error) {
	if err := validate.Struct(input); err != nil {
		return nil, helpers.BadRequest("%v", err)
	}

	if _, err := s.CheckOwner(ctx, actor, input.ID, nil); err != nil {
		return nil, err
	}

	eventType, err := s.eventTypeRepository.FindOneByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	return MapEventType(ctx, s.enricher, eventType)
}

type EventTypeGroup struct {
	TeamID     *int64           `json:"teamId"`
	TeamName   string           `json:"teamName,omitempty"`
	TeamSlug   string           `json:"teamSlug,omitempty"`
	ReadOnly   bool             `json:"readOnly"`
	EventTypes []*EventTypeView `json:"eventTypes"`
}

// List returns the actor's personal event types followed by one group per team they belong to.
func (s *EventTypeService) List(ctx context.Context, actor Actor) ([]*EventTypeGroup, error) {
	personal, err := s.eventTypeRepository.FindManyByUserID(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}

	personalGroup := &EventTypeGroup{EventTypes: []*EventTypeView{}}
	for _, eventType := range personal {
		view, err := MapEventType(ctx, s.enricher, eventType)
		if err != nil {
			return nil, err
		}
		personalGroup.EventTypes = append(personalGroup.EventTypes, view)
	}
	groups := []*EventTypeGroup{personalGroup}

	memberships, err := s.membershipRepository.FindManyByUserID(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}

	var teamIDs []int64
	teamGroups := map[int64]*EventTypeGroup{}
	for _, membership := range memberships {
		if !membership.Accepted || membership.Team == nil || membership.Team.IsOrganization {
			continue
		}
		teamID := membership.TeamID
		teamIDs = append(teamIDs, teamID)
		group := &EventTypeGroup{
			TeamID:     &teamID,
			TeamName:   membership.Team.Name,
			TeamSlug:   membership.Team.Slug,
			ReadOnly:   membership.Role == entity.MembershipRoleMember && !actor.IsOrgAdmin,
			EventTypes: []*EventTypeView{},
		}
		teamGroups[teamID] = group
		groups = append(groups, group)
	}

	if len(teamIDs) == 0 {
		return groups, nil
	}

	teamEventTypes, err := s.eventTypeRepository.FindManyByTeamIDs(ctx, teamIDs)
	if err != nil {
		return nil, err
	}
	for _, eventType := range teamEventTypes {
		group, ok := teamGroups[*eventType.TeamID]
		if !ok {
			continue
		}
		view, err := MapEventType(ctx, s.enricher, eventType)
		if err != nil {
			return nil, err
		}
		group.EventTypes = append(group.EventTypes, view)
	}

	return groups, nil
}

type UpdateEventTypeInput struct {
	ID    int64   `json:"id" validate:"required"`
	Users []int64 `json:"users"`

	Title          *string                `json:"title" validate:"omitempty,min=1,max=255"`
	Slug           *string                `json:"slug" validate:"omitempty,min=1"`
	Description    *string                `json:"description"`
	Length         *int                   `json:"length" validate:"omitempty,gt=0"`
	Hidden         *bool                  `json:"hidden"`
	Hosts          []*entity.Host         `json:"hosts" validate:"omitempty,dive,required"`
	PeriodType     *string                `json:"periodType"`
	SchedulingType *entity.SchedulingType `json:"schedulingType" validate:"omitempty,oneof=ROUND_ROBIN COLLECTIVE MANAGED"`
	Metadata       map[string]any         `json:"metadata"`
	BookingFields  []*entity.BookingField `json:"bookingFields" validate:"omitempty,dive,required"`
	CustomInputs   []*entity.CustomInput  `json:"customInputs" validate:"omitempty,dive,required"`
}

func (s *EventTypeService) Update(ctx context.Context, actor Actor, input UpdateEventTypeInput) (*EventTypeView, error) {
	if err := validate.Struct(input); err != nil {
		return nil, helpers.BadRequest("%v", err)
	}

	eventType, err := s.CheckOwner(ctx, actor, input.ID, input.Users)
	if err != nil {
		return nil, err
	}

	if input.BookingFields != nil {
		if err := EnsureUniqueBookingFields(input.BookingFields); err != nil {
			return nil, err
		}
		if err := EnsureEmailOrPhoneNumberIsPresent(input.BookingFields); err != nil {
			return nil, err
		}
	}

	update := &entity.EventTypeUpdate{
		Title:          input.Title,
		Description:    input.Description,
		Length:         input.Length,
		Hidden:         input.Hidden,
		PeriodType:     HandlePeriodType(input.PeriodType),
		SchedulingType: input.SchedulingType,
		BookingFields:  input.BookingFields,
	}

	if input.Slug != nil {
		slug := helpers.Slugify(*input.Slug)
		if slug == "" {
			return nil, helpers.BadRequest("Slug must contain letters or digits")
		}
		update.Slug = &slug
	}

	if input.Users != nil {
		update.UserIDs = input.Users
	}

	if input.Hosts != nil {
		if eventType.Team == nil {
			return nil, helpers.BadRequest("Hosts can only be set on team event types")
		}
		members := eventType.Team.MemberIDs()
		for _, host := range input.Hosts {
			if !slices.Contains(members, host.UserID) {
				return nil, helpers.Forbidden("User %d is not a member of the team", host.UserID)
			}
			host.User = nil
		}
		update.Hosts = input.Hosts
	}

	if input.Metadata != nil {
		if _, err := ParseEventTypeMetadata(input.Metadata); err != nil {
			return nil, err
		}
		update.Metadata = input.Metadata
	}

	var plan *entity.CustomInputsPlan
	if input.CustomInputs != nil {
		plan = HandleCustomInputs(input.CustomInputs, eventType.ID)
	}

	err = s.transactor.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.eventTypeRepository.UpdateOne(ctx, eventType.ID, update); err != nil {
			return err
		}
		if plan == nil {
			return nil
		}
		if err := s.customInputRepository.Apply(ctx, plan); err != nil {
			return fmt.Errorf("apply custom inputs: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	updated, err := s.eventTypeRepository.FindOneByID(ctx, eventType.ID)
	if err != nil {
		return nil, err
	}

	return MapEventType(ctx, s.enricher, updated)
}

type DeleteEventTypeInput struct {
	ID int64 `json:"id" validate:"required"`
}

type DeleteEventTypeResult struct {
	ID int64 `json:"id"`
}

func (s *EventTypeService) Delete(ctx context.Context, actor Actor, input DeleteEventTypeInput) (*DeleteEventTypeResult, error) {
	if err := validate.Struct(input); err != nil {
		return nil, helpers.BadRequest("%v", err)
	}

	if _, err := s.CheckOwner(ctx, actor, input.ID, nil); err != nil {
		return nil, err
	}

	if err := s.eventTypeRepository.DeleteOneByID(ctx, input.ID); err != nil {
		return nil, err
	}

	return &DeleteEventTypeResult{ID: input.ID}, nil
}
