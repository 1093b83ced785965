package controller

import (
	"context"
	"sort"

	"github.com/joeyave/scala-booking/entity"
	"github.com/joeyave/scala-booking/helpers"
)

type memUsers struct {
	users map[int64]*entity.User
}

func (r *memUsers) FindOneByID(_ context.Context, ID int64) (*entity.User, error) {
	if user, ok := r.users[ID]; ok {
		return user, nil
	}
	return nil, helpers.NotFound("User %d not found", ID)
}

func (r *memUsers) FindOneByUsername(_ context.Context, username string, _ *int64) (*entity.User, error) {
	for _, user := range r.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, helpers.NotFound("User %s not found", username)
}

type memProfiles struct{}

func (r *memProfiles) FindManyByUserID(context.Context, int64) ([]*entity.Profile, error) {
	return nil, nil
}

type memMemberships struct {
	memberships []*entity.Membership
}

func (r *memMemberships) FindOneByTeamIDAndUserID(_ context.Context, teamID, userID int64) (*entity.Membership, error) {
	for _, m := range r.memberships {
		if m.TeamID == teamID && m.UserID == userID {
			return m, nil
		}
	}
	return nil, helpers.NotFound("Membership not found")
}

func (r *memMemberships) FindManyByUserID(_ context.Context, userID int64) ([]*entity.Membership, error) {
	var memberships []*entity.Membership
	for _, m := range r.memberships {
		if m.UserID == userID {
			memberships = append(memberships, m)
		}
	}
	return memberships, nil
}

func (r *memMemberships) InsertOne(_ context.Context, membership *entity.Membership) (*entity.Membership, error) {
	r.memberships = append(r.memberships, membership)
	return membership, nil
}

type memTeams struct {
	teams []*entity.Team
}

func (r *memTeams) FindOneByID(_ context.Context, ID int64) (*entity.Team, error) {
	for _, team := range r.teams {
		if team.ID == ID {
			return team, nil
		}
	}
	return nil, helpers.NotFound("Team %d not found", ID)
}

func (r *memTeams) FindOrganizationBySlug(_ context.Context, slug string) (*entity.Team, error) {
	for _, team := range r.teams {
		if team.IsOrganization && team.Slug == slug {
			return team, nil
		}
	}
	return nil, helpers.NotFound("Organization %s not found", slug)
}

func (r *memTeams) FindOneBySlug(_ context.Context, slug string, parentID *int64) (*entity.Team, error) {
	for _, team := range r.teams {
		if team.IsOrganization || team.Slug != slug {
			continue
		}
		if parentID == nil && team.ParentID == nil || parentID != nil && team.ParentID != nil && *parentID == *team.ParentID {
			return team, nil
		}
	}
	return nil, helpers.NotFound("Team %s not found", slug)
}

func (r *memTeams) FindManyByParentID(_ context.Context, parentID int64) ([]*entity.Team, error) {
	var teams []*entity.Team
	for _, team := range r.teams {
		if team.ParentID != nil && *team.ParentID == parentID {
			teams = append(teams, team)
		}
	}
	return teams, nil
}

func (r *memTeams) InsertOne(_ context.Context, team *entity.Team) (*entity.Team, error) {
	team.ID = int64(1000 + len(r.teams))
	r.teams = append(r.teams, team)
	return team, nil
}

type memAttributes struct {
	attributes []*entity.Attribute
}

func (r *memAttributes) FindManyByTeamID(_ context.Context, teamID int64, skip, take int) ([]*entity.Attribute, error) {
	attributes := []*entity.Attribute{}
	for _, a := range r.attributes {
		if a.TeamID == teamID {
			attributes = append(attributes, a)
		}
	}
	if skip > len(attributes) {
		skip = len(attributes)
	}
	attributes = attributes[skip:]
	if take < len(attributes) {
		attributes = attributes[:take]
	}
	return attributes, nil
}

func (r *memAttributes) FindOneByTeamIDAndID(_ context.Context, teamID int64, ID string) (*entity.Attribute, error) {
	for _, a := range r.attributes {
		if a.TeamID == teamID && a.ID == ID {
			return a, nil
		}
	}
	return nil, helpers.NotFound("Attribute %s not found", ID)
}

func (r *memAttributes) InsertOne(_ context.Context, attribute *entity.Attribute) error {
	r.attributes = append(r.attributes, attribute)
	return nil
}

func (r *memAttributes) UpdateOne(ctx context.Context, teamID int64, ID string, update *entity.AttributeUpdate) (*entity.Attribute, error) {
	a, err := r.FindOneByTeamIDAndID(ctx, teamID, ID)
	if err != nil {
		return nil, err
	}
	if update.Name != nil {
		a.Name = *update.Name
	}
	if update.Enabled != nil {
		a.Enabled = *update.Enabled
	}
	return a, nil
}

func (r *memAttributes) DeleteOne(ctx context.Context, teamID int64, ID string) (*entity.Attribute, error) {
	for i, a := range r.attributes {
		if a.TeamID == teamID && a.ID == ID {
			r.attributes = append(r.attributes[:i], r.attributes[i+1:]...)
			return a, nil
		}
	}
	return nil, helpers.NotFound("Attribute %s not found", ID)
}

type memEventTypes struct {
	eventTypes map[int64]*entity.EventType
}

func (r *memEventTypes) sorted() []*entity.EventType {
	eventTypes := make([]*entity.EventType, 0, len(r.eventTypes))
	for _, e := range r.eventTypes {
		eventTypes = append(eventTypes, e)
	}
	sort.Slice(eventTypes, func(i, j int) bool { return eventTypes[i].ID < eventTypes[j].ID })
	return eventTypes
}

func (r *memEventTypes) FindOneByIDWithAccess(ctx context.Context, ID int64) (*entity.EventType, error) {
	return r.FindOneByID(ctx, ID)
}

func (r *memEventTypes) FindOneByID(_ context.Context, ID int64) (*entity.EventType, error) {
	if e, ok := r.eventTypes[ID]; ok {
		return e, nil
	}
	return nil, helpers.NotFound("Event type %d not found", ID)
}

func (r *memEventTypes) FindManyByUserID(_ context.Context, userID int64) ([]*entity.EventType, error) {
	var eventTypes []*entity.EventType
	for _, e := range r.sorted() {
		if e.TeamID == nil && e.UserID != nil && *e.UserID == userID {
			eventTypes = append(eventTypes, e)
		}
	}
	return eventTypes, nil
}

func (r *memEventTypes) FindManyByTeamIDs(_ context.Context, teamIDs []int64) ([]*entity.EventType, error) {
	var eventTypes []*entity.EventType
	for _, e := range r.sorted() {
		for _, teamID := range teamIDs {
			if e.TeamID != nil && *e.TeamID == teamID {
				eventTypes = append(eventTypes, e)
			}
		}
	}
	return eventTypes, nil
}

func (r *memEventTypes) UpdateOne(ctx context.Context, ID int64, update *entity.EventTypeUpdate) error {
	e, err := r.FindOneByID(ctx, ID)
	if err != nil {
		return err
	}
	if update.Title != nil {
		e.Title = *update.Title
	}
	return nil
}

func (r *memEventTypes) DeleteOneByID(_ context.Context, ID int64) error {
	delete(r.eventTypes, ID)
	return nil
}

func (r *memEventTypes) FindOneByTeamIDAndSlug(_ context.Context, teamID int64, slug string) (*entity.EventType, error) {
	for _, e := range r.sorted() {
		if e.TeamID != nil && *e.TeamID == teamID && e.Slug == slug {
			return e, nil
		}
	}
	return nil, helpers.NotFound("Event type %s not found", slug)
}

func (r *memEventTypes) FindOneByUserIDAndSlug(_ context.Context, userID int64, slug string) (*entity.EventType, error) {
	for _, e := range r.sorted() {
		if e.TeamID == nil && e.UserID != nil && *e.UserID == userID && e.Slug == slug {
			return e, nil
		}
	}
	return nil, helpers.NotFound("Event type %s not found", slug)
}

func (r *memEventTypes) FindSlugsByTeamID(_ context.Context, teamID int64) ([]string, error) {
	var slugs []string
	for _, e := range r.sorted() {
		if e.TeamID != nil && *e.TeamID == teamID {
			slugs = append(slugs, e.Slug)
		}
	}
	return slugs, nil
}

type memTransactor struct{}

func (memTransactor) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type memCustomInputs struct{}

func (r *memCustomInputs) Apply(context.Context, *entity.CustomInputsPlan) error {
	return nil
}

type memBookings struct {
	bookings []*entity.Booking
}

func (r *memBookings) FindOneByUID(_ context.Context, UID string) (*entity.Booking, error) {
	for _, b := range r.bookings {
		if b.UID == UID {
			return b, nil
		}
	}
	return nil, helpers.NotFound("Booking %s not found", UID)
}
