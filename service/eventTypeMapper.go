package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/joeyave/scala-booking/entity"
	"github.com/joeyave/scala-booking/helpers"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type ProfileEnricher interface {
	EnrichUserWithItsProfile(ctx context.Context, user *entity.User) (*entity.User, error)
}

// EventTypeView is the API shape of an event type.
type EventTypeView struct {
	ID              int64   `json:"id"`
	Title           string  `json:"title"`
	Slug            string  `json:"slug"`
	Description     *string `json:"description"`
	SafeDescription *string `json:"safeDescription,omitempty"`
	Length          int     `json:"length"`
	Hidden          bool    `json:"hidden"`
	Position        int     `json:"position"`

	UserID   *int64       `json:"userId"`
	TeamID   *int64       `json:"teamId"`
	ParentID *int64       `json:"parentId"`
	Team     *entity.Team `json:"team,omitempty"`

	PeriodType     entity.PeriodType     `json:"periodType"`
	SchedulingType entity.SchedulingType `json:"schedulingType"`

	Users    []*entity.User        `json:"users"`
	Hosts    []*entity.Host        `json:"hosts"`
	Children []*ChildEventTypeView `json:"children"`

	Metadata      *entity.EventTypeMetadata `json:"metadata"`
	BookingFields []*entity.BookingField    `json:"bookingFields"`
	CustomInputs  []*entity.CustomInput     `json:"customInputs"`
}

// ChildEventTypeView is a per-user copy of a managed event type.
type ChildEventTypeView struct {
	ID       int64          `json:"id"`
	Title    string         `json:"title"`
	Slug     string         `json:"slug"`
	Hidden   bool           `json:"hidden"`
	UserID   *int64         `json:"userId"`
	ParentID *int64         `json:"parentId"`
	Users    []*entity.User `json:"users"`
}

// MapEventType shapes eventType for the API: it renders the description, enriches
// users with their profiles and parses the metadata. Any failure aborts the whole mapping.
func MapEventType(ctx context.Context, enricher ProfileEnricher, eventType *entity.EventType) (*EventTypeView, error) {
	view := &EventTypeView{
		ID:             eventType.ID,
		Title:          eventType.Title,
		Slug:           eventType.Slug,
		Description:    eventType.Description,
		Length:         eventType.Length,
		Hidden:         eventType.Hidden,
		Position:       eventType.Position,
		UserID:         eventType.UserID,
		TeamID:         eventType.TeamID,
		ParentID:       eventType.ParentID,
		Team:           eventType.Team,
		PeriodType:     eventType.PeriodType,
		SchedulingType: eventType.SchedulingType,
		Hosts:          eventType.Hosts,
		BookingFields:  eventType.BookingFields,
		CustomInputs:   eventType.CustomInputs,
	}

	if eventType.Description != nil && *eventType.Description != "" {
		safe := helpers.MarkdownToSafeHTML(*eventType.Description)
		view.SafeDescription = &safe
	}

	users, err := enrichUsers(ctx, enricher, eventType.AssignedUsers())
	if err != nil {
		return nil, err
	}
	view.Users = users

	metadata, err := ParseEventTypeMetadata(eventType.Metadata)
	if err != nil {
		return nil, err
	}
	view.Metadata = metadata

	view.Children = make([]*ChildEventTypeView, len(eventType.Children))
	for i, child := range eventType.Children {
		childUsers, err := enrichUsers(ctx, enricher, child.Users)
		if err != nil {
			return nil, err
		}
		view.Children[i] = &ChildEventTypeView{
			ID:       child.ID,
			Title:    child.Title,
			Slug:     child.Slug,
			Hidden:   child.Hidden,
			UserID:   child.UserID,
			ParentID: child.ParentID,
			Users:    childUsers,
		}
	}

	return view, nil
}

// enrichUsers enriches all users concurrently. The result keeps the input order.
func enrichUsers(ctx context.Context, enricher ProfileEnricher, users []*entity.User) ([]*entity.User, error) {
	enriched := make([]*entity.User, len(users))

	g, ctx := errgroup.WithContext(ctx)
	for i := range users {
		g.Go(func() error {
			user, err := enricher.EnrichUserWithItsProfile(ctx, users[i])
			if err != nil {
				return err
			}
			enriched[i] = user
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return enriched, nil
}

// ParseEventTypeMetadata checks a stored metadata blob against EventTypeMetadata.
// A nil blob parses to nil.
func ParseEventTypeMetadata(raw map[string]any) (*entity.EventTypeMetadata, error) {
	if raw == nil {
		return nil, nil
	}

	b, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("marshal metadata: %w", err)
	}

	var metadata entity.EventTypeMetadata
	if err := json.Unmarshal(b, &metadata); err != nil {
		return nil, helpers.BadRequest("Invalid metadata: %v", err)
	}

	if err := validate.Struct(&metadata); err != nil {
		return nil, helpers.BadRequest("Invalid metadata: %v", err)
	}

	if layouts := metadata.BookerLayouts; layouts != nil && !slices.Contains(layouts.EnabledLayouts, layouts.DefaultLayout) {
		return nil, helpers.BadRequest("Invalid metadata: default layout %q is not enabled", layouts.DefaultLayout)
	}

	return &metadata, nil
}
