package service

import (
	"context"
	"sort"
	"strings"

	"github.com/hbollon/go-edlib"
	"github.com/joeyave/scala-booking/entity"
	"github.com/joeyave/scala-booking/helpers"
	"github.com/joeyave/scala-booking/txt"
)

type BookingStore interface {
	FindOneByUID(ctx context.Context, UID string) (*entity.Booking, error)
}

type TeamTypePageInput struct {
	OrgSlug        string
	TeamSlug       string
	TypeSlug       string
	RescheduleUID  string
	OrgRedirection bool
}

type TeamTypePageProps struct {
	Org       *entity.Team
	Team      *entity.Team
	EventType *PublicEvent
	// Booking is the booking being rescheduled, if any.
	Booking *entity.Booking
	// SimilarSlugs are the team's event slugs closest to the requested one. Only set when EventType is nil.
	SimilarSlugs []string
}

func (p *TeamTypePageProps) IsReschedule() bool {
	return p.Booking != nil
}

type PageMeta struct {
	Title       string
	Description string
}

// Meta builds the page title and description:
// "<Reschedule >?<title> | <profileName> | <appName>" and "<Reschedule >?<title>".
func (p *TeamTypePageProps) Meta(appName, lang string) PageMeta {
	var title, profileName string
	if p.EventType != nil {
		title = p.EventType.Title
		profileName = p.EventType.Profile.Name
	}
	if p.IsReschedule() {
		title = txt.Get("reschedule", lang) + " " + title
	}
	return PageMeta{
		Title:       strings.Join([]string{title, profileName, appName}, " | "),
		Description: title,
	}
}

type TeamPageService struct {
	teamRepository      TeamStore
	eventTypeRepository PublicEventTypeStore
	bookingRepository   BookingStore
	publicEventService  *PublicEventService
}

func NewTeamPageService(teamRepository TeamStore, eventTypeRepository PublicEventTypeStore, bookingRepository BookingStore, publicEventService *PublicEventService) *TeamPageService {
	return &TeamPageService{
		teamRepository:      teamRepository,
		eventTypeRepository: eventTypeRepository,
		bookingRepository:   bookingRepository,
		publicEventService:  publicEventService,
	}
}

// GetTeamTypePageProps loads everything the team booking page renders.
// A missing organization or team is NOT_FOUND; a missing event type leaves EventType nil.
func (s *TeamPageService) GetTeamTypePageProps(ctx context.Context, input TeamTypePageInput) (*TeamTypePageProps, error) {
	org, err := s.teamRepository.FindOrganizationBySlug(ctx, input.OrgSlug)
	if err != nil {
		return nil, err
	}

	team, err := s.teamRepository.FindOneBySlug(ctx, input.TeamSlug, &org.ID)
	if err != nil {
		return nil, err
	}

	props := &TeamTypePageProps{
		Org:  org,
		Team: team,
	}

	orgSlug := org.Slug
	event, err := s.publicEventService.GetPublicEvent(ctx, PublicEventLookup{
		Username:                 team.Slug,
		EventSlug:                input.TypeSlug,
		IsTeamEvent:              true,
		Org:                      &orgSlug,
		FromRedirectOfNonOrgLink: input.OrgRedirection,
	})
	if err != nil {
		return nil, err
	}
	if event == nil {
		slugs, err := s.eventTypeRepository.FindSlugsByTeamID(ctx, team.ID)
		if err != nil {
			return nil, err
		}
		props.SimilarSlugs = SimilarSlugs(input.TypeSlug, slugs, 3)
		return props, nil
	}
	props.EventType = event

	if input.RescheduleUID != "" {
		booking, err := s.bookingRepository.FindOneByUID(ctx, input.RescheduleUID)
		if err != nil && !helpers.HasCode(err, helpers.CodeNotFound) {
			return nil, err
		}
		if booking != nil && booking.EventTypeID != nil && *booking.EventTypeID == event.ID && booking.CanBeRescheduled() {
			props.Booking = booking
		}
	}

	return props, nil
}

// SimilarSlugs returns at most limit candidates resembling slug, most similar first.
func SimilarSlugs(slug string, candidates []string, limit int) []string {
	type scored struct {
		slug       string
		similarity float32
	}

	var matches []scored
	for _, candidate := range candidates {
		similarity, err := edlib.StringsSimilarity(slug, candidate, edlib.Levenshtein)
		if err != nil || similarity < 0.4 {
			continue
		}
		matches = append(matches, scored{slug: candidate, similarity: similarity})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].similarity > matches[j].similarity
	})

	var slugs []string
	for i := 0; i < len(matches) && i < limit; i++ {
		slugs = append(slugs, matches[i].slug)
	}
	return slugs
}
