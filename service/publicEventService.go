package service

import (
	"context"

	"github.com/joeyave/scala-booking/entity"
	"github.com/joeyave/scala-booking/helpers"
)

type TeamStore interface {
	FindOneByID(ctx context.Context, ID int64) (*entity.Team, error)
	FindOrganizationBySlug(ctx context.Context, slug string) (*entity.Team, error)
	// FindOneBySlug finds a team in the organization, or outside any organization when parentID is nil.
	FindOneBySlug(ctx context.Context, slug string, parentID *int64) (*entity.Team, error)
}

type PublicUserStore interface {
	// FindOneByUsername finds a user by their username in the organization, or outside any organization when orgID is nil.
	FindOneByUsername(ctx context.Context, username string, orgID *int64) (*entity.User, error)
}

type PublicEventTypeStore interface {
	FindOneByTeamIDAndSlug(ctx context.Context, teamID int64, slug string) (*entity.EventType, error)
	FindOneByUserIDAndSlug(ctx context.Context, userID int64, slug string) (*entity.EventType, error)
	FindSlugsByTeamID(ctx context.Context, teamID int64) ([]string, error)
}

type PublicEventLookup struct {
	Username                 string
	EventSlug                string
	IsTeamEvent              bool
	Org                      *string
	FromRedirectOfNonOrgLink bool
}

type PublicProfile struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Image    string `json:"image,omitempty"`
}

type PublicEvent struct {
	ID              int64                     `json:"id"`
	Title           string                    `json:"title"`
	Slug            string                    `json:"slug"`
	Length          int                       `json:"length"`
	Description     *string                   `json:"description"`
	SafeDescription string                    `json:"safeDescription,omitempty"`
	Hidden          bool                      `json:"hidden"`
	Metadata        *entity.EventTypeMetadata `json:"metadata"`
	Profile         PublicProfile             `json:"profile"`
	BookingFields   []*entity.BookingField    `json:"bookingFields"`
}

type PublicEventService struct {
	teamRepository      TeamStore
	userRepository      PublicUserStore
	eventTypeRepository PublicEventTypeStore
}

func NewPublicEventService(teamRepository TeamStore, userRepository PublicUserStore, eventTypeRepository PublicEventTypeStore) *PublicEventService {
	return &PublicEventService{
		teamRepository:      teamRepository,
		userRepository:      userRepository,
		eventTypeRepository: eventTypeRepository,
	}
}

// GetPublicEvent finds the event a booking page shows. It returns nil without an error when there is none.
func (s *PublicEventService) GetPublicEvent(ctx context.Context, lookup PublicEventLookup) (*PublicEvent, error) {
	event, err := s.getPublicEvent(ctx, lookup, lookup.Org)
	if err != nil {
		return nil, err
	}
	if event == nil && lookup.Org != nil && lookup.FromRedirectOfNonOrgLink {
		return s.getPublicEvent(ctx, lookup, nil)
	}
	return event, nil
}

func (s *PublicEventService) getPublicEvent(ctx context.Context, lookup PublicEventLookup, orgSlug *string) (*PublicEvent, error) {
	var orgID *int64
	if orgSlug != nil {
		org, err := s.teamRepository.FindOrganizationBySlug(ctx, *orgSlug)
		if helpers.HasCode(err, helpers.CodeNotFound) {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		orgID = &org.ID
	}

	var (
		eventType *entity.EventType
		profile   PublicProfile
		err       error
	)
	if lookup.IsTeamEvent {
		var team *entity.Team
		team, err = s.teamRepository.FindOneBySlug(ctx, lookup.Username, orgID)
		if err == nil {
			profile = PublicProfile{Name: team.Name, Username: team.Slug, Image: team.LogoURL}
			eventType, err = s.eventTypeRepository.FindOneByTeamIDAndSlug(ctx, team.ID, lookup.EventSlug)
		}
	} else {
		var user *entity.User
		user, err = s.userRepository.FindOneByUsername(ctx, lookup.Username, orgID)
		if err == nil {
			profile = PublicProfile{Name: user.Name, Username: user.Username, Image: user.AvatarURL}
			eventType, err = s.eventTypeRepository.FindOneByUserIDAndSlug(ctx, user.ID, lookup.EventSlug)
		}
	}
	if helpers.HasCode(err, helpers.CodeNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	metadata, err := ParseEventTypeMetadata(eventType.Metadata)
	if err != nil {
		return nil, err
	}

	event := &PublicEvent{
		ID:            eventType.ID,
		Title:         eventType.Title,
		Slug:          eventType.Slug,
		Length:        eventType.Length,
		Description:   eventType.Description,
		Hidden:        eventType.Hidden,
		Metadata:      metadata,
		Profile:       profile,
		BookingFields: eventType.BookingFields,
	}
	if eventType.Description != nil {
		event.SafeDescription = helpers.MarkdownToSafeHTML(*eventType.Description)
	}
	return event, nil
}
