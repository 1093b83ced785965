package service

import (
	"context"
	"strconv"

	"github.com/joeyave/scala-booking/entity"
	"github.com/joeyave/scala-booking/helpers"
)

type UserStore interface {
	FindOneByID(ctx context.Context, ID int64) (*entity.User, error)
}

type ProfileStore interface {
	FindManyByUserID(ctx context.Context, userID int64) ([]*entity.Profile, error)
}

type MembershipStore interface {
	FindOneByTeamIDAndUserID(ctx context.Context, teamID, userID int64) (*entity.Membership, error)
	FindManyByUserID(ctx context.Context, userID int64) ([]*entity.Membership, error)
}

type UserService struct {
	userRepository       UserStore
	profileRepository    ProfileStore
	membershipRepository MembershipStore
}

func NewUserService(userRepository UserStore, profileRepository ProfileStore, membershipRepository MembershipStore) *UserService {
	return &UserService{
		userRepository:       userRepository,
		profileRepository:    profileRepository,
		membershipRepository: membershipRepository,
	}
}

func (s *UserService) FindOneByID(ctx context.Context, ID int64) (*entity.User, error) {
	return s.userRepository.FindOneByID(ctx, ID)
}

// EnrichUserWithItsProfile returns a copy of user with its organization profile attached.
// Users without one get a personal profile.
func (s *UserService) EnrichUserWithItsProfile(ctx context.Context, user *entity.User) (*entity.User, error) {
	if user == nil {
		return nil, nil
	}

	profiles, err := s.profileRepository.FindManyByUserID(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	enriched := *user
	if len(profiles) == 0 {
		enriched.Profile = &entity.Profile{
			UserID:   user.ID,
			Username: user.Username,
			UpID:     entity.PersonalUpID(user.ID),
		}
		return &enriched, nil
	}

	profile := *profiles[0]
	if profile.ID != nil {
		profile.UpID = strconv.FormatInt(*profile.ID, 10)
	}
	enriched.Profile = &profile
	enriched.Username = profile.Username
	return &enriched, nil
}

// LoadActor builds the request context for an authenticated user.
func (s *UserService) LoadActor(ctx context.Context, userID int64) (*Actor, error) {
	user, err := s.userRepository.FindOneByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	actor := &Actor{
		UserID:         user.ID,
		Username:       user.Username,
		OrganizationID: user.OrganizationID,
		IsSystemAdmin:  user.IsSystemAdmin(),
	}

	if user.OrganizationID != nil {
		membership, err := s.membershipRepository.FindOneByTeamIDAndUserID(ctx, *user.OrganizationID, user.ID)
		if err == nil {
			actor.IsOrgAdmin = membership.Accepted && membership.IsOwnerOrAdmin()
		} else if !helpers.HasCode(err, helpers.CodeNotFound) {
			return nil, err
		}
	}

	return actor, nil
}
