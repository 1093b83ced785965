package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/joeyave/scala-booking/entity"
	"github.com/joeyave/scala-booking/helpers"
)

func ptr[T any](v T) *T {
	return &v
}

type fakeProfileRepository struct {
	mu       sync.Mutex
	profiles map[int64][]*entity.Profile
	// delays lets tests finish enrichment out of order.
	delays map[int64]time.Duration
	err    error
	calls  int
}

func (r *fakeProfileRepository) FindManyByUserID(ctx context.Context, userID int64) ([]*entity.Profile, error) {
	r.mu.Lock()
	r.calls++
	delay := r.delays[userID]
	profiles := r.profiles[userID]
	err := r.err
	r.mu.Unlock()

	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return profiles, err
}

type fakeUserRepository struct {
	users map[int64]*entity.User
}

func (r *fakeUserRepository) FindOneByID(_ context.Context, ID int64) (*entity.User, error) {
	user, ok := r.users[ID]
	if !ok {
		return nil, helpers.NotFound("User %d not found", ID)
	}
	return user, nil
}

func (r *fakeUserRepository) FindOneByUsername(_ context.Context, username string, orgID *int64) (*entity.User, error) {
	for _, user := range r.users {
		if user.Username != username {
			continue
		}
		if (orgID == nil) != (user.OrganizationID == nil) {
			continue
		}
		if orgID != nil && *orgID != *user.OrganizationID {
			continue
		}
		return user, nil
	}
	return nil, helpers.NotFound("User %s not found", username)
}

type fakeMembershipRepository struct {
	memberships []*entity.Membership
}

func (r *fakeMembershipRepository) FindOneByTeamIDAndUserID(_ context.Context, teamID, userID int64) (*entity.Membership, error) {
	for _, m := range r.memberships {
		if m.TeamID == teamID && m.UserID == userID {
			return m, nil
		}
	}
	return nil, helpers.NotFound("Membership not found")
}

func (r *fakeMembershipRepository) FindManyByUserID(_ context.Context, userID int64) ([]*entity.Membership, error) {
	var memberships []*entity.Membership
	for _, m := range r.memberships {
		if m.UserID == userID {
			memberships = append(memberships, m)
		}
	}
	return memberships, nil
}

func (r *fakeMembershipRepository) InsertOne(_ context.Context, membership *entity.Membership) (*entity.Membership, error) {
	membership.ID = int64(len(r.memberships) + 1)
	r.memberships = append(r.memberships, membership)
	return membership, nil
}

type fakeEventTypeRepository struct {
	eventTypes map[int64]*entity.EventType
	updates    []*entity.EventTypeUpdate
	deleted    []int64
	updateErr  error
}

func (r *fakeEventTypeRepository) sorted() []*entity.EventType {
	eventTypes := make([]*entity.EventType, 0, len(r.eventTypes))
	for _, eventType := range r.eventTypes {
		eventTypes = append(eventTypes, eventType)
	}
	sort.Slice(eventTypes, func(i, j int) bool {
		return eventTypes[i].ID < eventTypes[j].ID
	})
	return eventTypes
}

func (r *fakeEventTypeRepository) FindOneByIDWithAccess(ctx context.Context, ID int64) (*entity.EventType, error) {
	return r.FindOneByID(ctx, ID)
}

func (r *fakeEventTypeRepository) FindOneByID(_ context.Context, ID int64) (*entity.EventType, error) {
	eventType, ok := r.eventTypes[ID]
	if !ok {
		return nil, helpers.NotFound("Event type %d not found", ID)
	}
	return eventType, nil
}

func (r *fakeEventTypeRepository) FindManyByUserID(_ context.Context, userID int64) ([]*entity.EventType, error) {
	var eventTypes []*entity.EventType
	for _, eventType := range r.sorted() {
		if eventType.TeamID == nil && eventType.UserID != nil && *eventType.UserID == userID {
			eventTypes = append(eventTypes, eventType)
		}
	}
	return eventTypes, nil
}

func (r *fakeEventTypeRepository) FindManyByTeamIDs(_ context.Context, teamIDs []int64) ([]*entity.EventType, error) {
	var eventTypes []*entity.EventType
	for _, eventType := range r.sorted() {
		if eventType.TeamID == nil {
			continue
		}
		for _, teamID := range teamIDs {
			if *eventType.TeamID == teamID {
				eventTypes = append(eventTypes, eventType)
			}
		}
	}
	return eventTypes, nil
}

func (r *fakeEventTypeRepository) UpdateOne(_ context.Context, ID int64, update *entity.EventTypeUpdate) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	eventType, ok := r.eventTypes[ID]
	if !ok {
		return helpers.NotFound("Event type %d not found", ID)
	}
	r.updates = append(r.updates, update)
	if update.Title != nil {
		eventType.Title = *update.Title
	}
	if update.Slug != nil {
		eventType.Slug = *update.Slug
	}
	if update.BookingFields != nil {
		eventType.BookingFields = update.BookingFields
	}
	if update.PeriodType != nil {
		eventType.PeriodType = *update.PeriodType
	}
	if update.Metadata != nil {
		eventType.Metadata = update.Metadata
	}
	return nil
}

func (r *fakeEventTypeRepository) DeleteOneByID(_ context.Context, ID int64) error {
	if _, ok := r.eventTypes[ID]; !ok {
		return helpers.NotFound("Event type %d not found", ID)
	}
	delete(r.eventTypes, ID)
	r.deleted = append(r.deleted, ID)
	return nil
}

func (r *fakeEventTypeRepository) FindOneByTeamIDAndSlug(_ context.Context, teamID int64, slug string) (*entity.EventType, error) {
	for _, eventType := range r.eventTypes {
		if eventType.TeamID != nil && *eventType.TeamID == teamID && eventType.Slug == slug {
			return eventType, nil
		}
	}
	return nil, helpers.NotFound("Event type %s not found", slug)
}

func (r *fakeEventTypeRepository) FindOneByUserIDAndSlug(_ context.Context, userID int64, slug string) (*entity.EventType, error) {
	for _, eventType := range r.eventTypes {
		if eventType.TeamID == nil && eventType.UserID != nil && *eventType.UserID == userID && eventType.Slug == slug {
			return eventType, nil
		}
	}
	return nil, helpers.NotFound("Event type %s not found", slug)
}

func (r *fakeEventTypeRepository) FindSlugsByTeamID(_ context.Context, teamID int64) ([]string, error) {
	var slugs []string
	for _, eventType := range r.sorted() {
		if eventType.TeamID != nil && *eventType.TeamID == teamID {
			slugs = append(slugs, eventType.Slug)
		}
	}
	return slugs, nil
}

type fakeCustomInputRepository struct {
	plans []*entity.CustomInputsPlan
}

func (r *fakeCustomInputRepository) Apply(_ context.Context, plan *entity.CustomInputsPlan) error {
	r.plans = append(r.plans, plan)
	return nil
}

// fakeTransactor runs fn directly and counts the calls that failed.
type fakeTransactor struct {
	calls   int
	aborted int
}

func (t *fakeTransactor) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	t.calls++
	err := fn(ctx)
	if err != nil {
		t.aborted++
	}
	return err
}

type fakeTeamRepository struct {
	teams []*entity.Team
}

func (r *fakeTeamRepository) FindOneByID(_ context.Context, ID int64) (*entity.Team, error) {
	for _, team := range r.teams {
		if team.ID == ID {
			return team, nil
		}
	}
	return nil, helpers.NotFound("Team %d not found", ID)
}

func (r *fakeTeamRepository) FindOrganizationBySlug(_ context.Context, slug string) (*entity.Team, error) {
	for _, team := range r.teams {
		if team.IsOrganization && team.Slug == slug {
			return team, nil
		}
	}
	return nil, helpers.NotFound("Organization %s not found", slug)
}

func (r *fakeTeamRepository) FindOneBySlug(_ context.Context, slug string, parentID *int64) (*entity.Team, error) {
	for _, team := range r.teams {
		if team.IsOrganization || team.Slug != slug {
			continue
		}
		if (parentID == nil) != (team.ParentID == nil) {
			continue
		}
		if parentID != nil && *parentID != *team.ParentID {
			continue
		}
		return team, nil
	}
	return nil, helpers.NotFound("Team %s not found", slug)
}

func (r *fakeTeamRepository) FindManyByParentID(_ context.Context, parentID int64) ([]*entity.Team, error) {
	var teams []*entity.Team
	for _, team := range r.teams {
		if team.ParentID != nil && *team.ParentID == parentID {
			teams = append(teams, team)
		}
	}
	return teams, nil
}

func (r *fakeTeamRepository) InsertOne(_ context.Context, team *entity.Team) (*entity.Team, error) {
	team.ID = int64(100 + len(r.teams))
	r.teams = append(r.teams, team)
	return team, nil
}

type fakeBookingRepository struct {
	bookings []*entity.Booking
}

func (r *fakeBookingRepository) FindOneByUID(_ context.Context, UID string) (*entity.Booking, error) {
	for _, booking := range r.bookings {
		if booking.UID == UID {
			return booking, nil
		}
	}
	return nil, helpers.NotFound("Booking %s not found", UID)
}

type fakeAttributeRepository struct {
	attributes []*entity.Attribute
}

func (r *fakeAttributeRepository) FindManyByTeamID(_ context.Context, teamID int64, skip, take int) ([]*entity.Attribute, error) {
	var attributes []*entity.Attribute
	for _, attribute := range r.attributes {
		if attribute.TeamID == teamID {
			attributes = append(attributes, attribute)
		}
	}
	if skip >= len(attributes) {
		return []*entity.Attribute{}, nil
	}
	attributes = attributes[skip:]
	if take < len(attributes) {
		attributes = attributes[:take]
	}
	return attributes, nil
}

func (r *fakeAttributeRepository) FindOneByTeamIDAndID(_ context.Context, teamID int64, ID string) (*entity.Attribute, error) {
	for _, attribute := range r.attributes {
		if attribute.TeamID == teamID && attribute.ID == ID {
			return attribute, nil
		}
	}
	return nil, helpers.NotFound("Attribute %s not found", ID)
}

func (r *fakeAttributeRepository) InsertOne(_ context.Context, attribute *entity.Attribute) error {
	for _, a := range r.attributes {
		if a.TeamID == attribute.TeamID && a.Slug == attribute.Slug {
			return helpers.Conflict("Attribute with slug %s already exists", attribute.Slug)
		}
	}
	r.attributes = append(r.attributes, attribute)
	return nil
}

func (r *fakeAttributeRepository) UpdateOne(ctx context.Context, teamID int64, ID string, update *entity.AttributeUpdate) (*entity.Attribute, error) {
	attribute, err := r.FindOneByTeamIDAndID(ctx, teamID, ID)
	if err != nil {
		return nil, err
	}
	if update.Name != nil {
		attribute.Name = *update.Name
	}
	if update.Slug != nil {
		attribute.Slug = *update.Slug
	}
	if update.Type != nil {
		attribute.Type = *update.Type
	}
	if update.Enabled != nil {
		attribute.Enabled = *update.Enabled
	}
	return attribute, nil
}

func (r *fakeAttributeRepository) DeleteOne(_ context.Context, teamID int64, ID string) (*entity.Attribute, error) {
	for i, attribute := range r.attributes {
		if attribute.TeamID == teamID && attribute.ID == ID {
			r.attributes = append(r.attributes[:i], r.attributes[i+1:]...)
			return attribute, nil
		}
	}
	return nil, helpers.NotFound("Attribute %s not found", ID)
}
