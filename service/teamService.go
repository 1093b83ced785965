package service

import (
	"context"
	"strings"

	"github.com/joeyave/scala-booking/entity"
	"github.com/joeyave/scala-booking/helpers"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

type TeamWriter interface {
	TeamStore
	FindManyByParentID(ctx context.Context, parentID int64) ([]*entity.Team, error)
	InsertOne(ctx context.Context, team *entity.Team) (*entity.Team, error)
}

type MembershipWriter interface {
	MembershipStore
	InsertOne(ctx context.Context, membership *entity.Membership) (*entity.Membership, error)
}

type TeamService struct {
	teamRepository       TeamWriter
	membershipRepository MembershipWriter
}

func NewTeamService(teamRepository TeamWriter, membershipRepository MembershipWriter) *TeamService {
	return &TeamService{
		teamRepository:       teamRepository,
		membershipRepository: membershipRepository,
	}
}

func (s *TeamService) FindOneByID(ctx context.Context, ID int64) (*entity.Team, error) {
	return s.teamRepository.FindOneByID(ctx, ID)
}

// FindOrganization returns the organization with the given id. Regular teams are NOT_FOUND.
func (s *TeamService) FindOrganization(ctx context.Context, ID int64) (*entity.Team, error) {
	team, err := s.teamRepository.FindOneByID(ctx, ID)
	if err != nil {
		return nil, err
	}
	if !team.IsOrganization {
		return nil, helpers.NotFound("Organization %d not found", ID)
	}
	return team, nil
}

// FindOrganizationTeams returns the sub-teams of the organization.
func (s *TeamService) FindOrganizationTeams(ctx context.Context, orgID int64) ([]*entity.Team, error) {
	return s.teamRepository.FindManyByParentID(ctx, orgID)
}

// FindMembership returns the user's membership in the team, NOT_FOUND when there is none.
func (s *TeamService) FindMembership(ctx context.Context, teamID, userID int64) (*entity.Membership, error) {
	return s.membershipRepository.FindOneByTeamIDAndUserID(ctx, teamID, userID)
}

// IsOrgAdmin reports whether actor may administer the organization.
func (s *TeamService) IsOrgAdmin(ctx context.Context, actor *Actor, orgID int64) (bool, error) {
	if actor.IsSystemAdmin {
		return true, nil
	}
	membership, err := s.membershipRepository.FindOneByTeamIDAndUserID(ctx, orgID, actor.UserID)
	if helpers.HasCode(err, helpers.CodeNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return membership.Accepted && membership.IsOwnerOrAdmin(), nil
}

// CreateTeams creates a sub-team of the organization for every distinct non-blank name,
// with actor as its OWNER.
func (s *TeamService) CreateTeams(ctx context.Context, actor *Actor, orgID int64, names []string) ([]*entity.Team, error) {
	if _, err := s.FindOrganization(ctx, orgID); err != nil {
		return nil, err
	}

	ok, err := s.IsOrgAdmin(ctx, actor, orgID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, helpers.Forbidden("You are not an admin of organization %d", orgID)
	}

	var cleaned []string
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" || slices.Contains(cleaned, name) {
			continue
		}
		cleaned = append(cleaned, name)
	}
	if len(cleaned) == 0 {
		return nil, helpers.BadRequest("No team names given")
	}

	teams := make([]*entity.Team, 0, len(cleaned))
	for _, name := range cleaned {
		slug := helpers.Slugify(name)
		if slug == "" {
			return nil, helpers.BadRequest("Team name %q must contain letters or digits", name)
		}

		_, err := s.teamRepository.FindOneBySlug(ctx, slug, &orgID)
		if err == nil {
			return nil, helpers.Conflict("Team with slug %q already exists", slug)
		}
		if !helpers.HasCode(err, helpers.CodeNotFound) {
			return nil, err
		}

		team, err := s.teamRepository.InsertOne(ctx, &entity.Team{
			Name:     name,
			Slug:     slug,
			ParentID: &orgID,
		})
		if err != nil {
			return nil, err
		}

		_, err = s.membershipRepository.InsertOne(ctx, &entity.Membership{
			TeamID:   team.ID,
			UserID:   actor.UserID,
			Role:     entity.MembershipRoleOwner,
			Accepted: true,
		})
		if err != nil {
			return nil, err
		}

		log.Info().Int64("orgId", orgID).Int64("teamId", team.ID).Str("slug", slug).Msg("Created team.")
		teams = append(teams, team)
	}

	return teams, nil
}
