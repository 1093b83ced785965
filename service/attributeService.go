package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/joeyave/scala-booking/entity"
	"github.com/joeyave/scala-booking/helpers"
)

type AttributeStore interface {
	FindManyByTeamID(ctx context.Context, teamID int64, skip, take int) ([]*entity.Attribute, error)
	FindOneByTeamIDAndID(ctx context.Context, teamID int64, ID string) (*entity.Attribute, error)
	InsertOne(ctx context.Context, attribute *entity.Attribute) error
	UpdateOne(ctx context.Context, teamID int64, ID string, update *entity.AttributeUpdate) (*entity.Attribute, error)
	DeleteOne(ctx context.Context, teamID int64, ID string) (*entity.Attribute, error)
}

type OrganizationAttributeService struct {
	attributeRepository AttributeStore
}

func NewOrganizationAttributeService(attributeRepository AttributeStore) *OrganizationAttributeService {
	return &OrganizationAttributeService{
		attributeRepository: attributeRepository,
	}
}

type AttributeOptionInput struct {
	Value string `json:"value" validate:"required"`
	Slug  string `json:"slug" validate:"required"`
}

type CreateOrganizationAttributeInput struct {
	Name    string                  `json:"name" validate:"required"`
	Slug    string                  `json:"slug" validate:"required"`
	Type    entity.AttributeType    `json:"type" validate:"required,oneof=TEXT NUMBER SINGLE_SELECT MULTI_SELECT"`
	Options []*AttributeOptionInput `json:"options" validate:"dive,required"`
	Enabled *bool                   `json:"enabled"`
}

type UpdateOrganizationAttributeInput struct {
	Name    *string               `json:"name" validate:"omitempty,min=1"`
	Slug    *string               `json:"slug" validate:"omitempty,min=1"`
	Type    *entity.AttributeType `json:"type" validate:"omitempty,oneof=TEXT NUMBER SINGLE_SELECT MULTI_SELECT"`
	Enabled *bool                 `json:"enabled"`
}

func (s *OrganizationAttributeService) GetOrganizationAttributes(ctx context.Context, orgID int64, skip, take int) ([]*entity.Attribute, error) {
	return s.attributeRepository.FindManyByTeamID(ctx, orgID, skip, take)
}

// GetOrganizationAttribute returns nil without an error when the organization has no such attribute.
func (s *OrganizationAttributeService) GetOrganizationAttribute(ctx context.Context, orgID int64, attributeID string) (*entity.Attribute, error) {
	attribute, err := s.attributeRepository.FindOneByTeamIDAndID(ctx, orgID, attributeID)
	if helpers.HasCode(err, helpers.CodeNotFound) {
		return nil, nil
	}
	return attribute, err
}

func (s *OrganizationAttributeService) CreateOrganizationAttribute(ctx context.Context, orgID int64, input CreateOrganizationAttributeInput) (*entity.Attribute, error) {
	if err := validate.Struct(input); err != nil {
		return nil, helpers.BadRequest("%v", err)
	}

	slug := helpers.Slugify(input.Slug)
	if slug == "" {
		return nil, helpers.BadRequest("Slug must contain letters or digits")
	}

	attribute := &entity.Attribute{
		ID:      uuid.NewString(),
		TeamID:  orgID,
		Name:    input.Name,
		Slug:    slug,
		Type:    input.Type,
		Enabled: true,
		Options: []*entity.AttributeOption{},
	}
	if input.Enabled != nil {
		attribute.Enabled = *input.Enabled
	}

	seen := map[string]bool{}
	for _, option := range input.Options {
		optionSlug := helpers.Slugify(option.Slug)
		if optionSlug == "" || seen[optionSlug] {
			return nil, helpers.BadRequest("Invalid or duplicate option slug: %s", option.Slug)
		}
		seen[optionSlug] = true
		attribute.Options = append(attribute.Options, &entity.AttributeOption{
			ID:    uuid.NewString(),
			Value: option.Value,
			Slug:  optionSlug,
		})
	}

	if err := s.attributeRepository.InsertOne(ctx, attribute); err != nil {
		return nil, err
	}
	return attribute, nil
}

func (s *OrganizationAttributeService) UpdateOrganizationAttribute(ctx context.Context, orgID int64, attributeID string, input UpdateOrganizationAttributeInput) (*entity.Attribute, error) {
	if err := validate.Struct(input); err != nil {
		return nil, helpers.BadRequest("%v", err)
	}

	update := &entity.AttributeUpdate{
		Name:    input.Name,
		Type:    input.Type,
		Enabled: input.Enabled,
	}
	if input.Slug != nil {
		slug := helpers.Slugify(*input.Slug)
		if slug == "" {
			return nil, helpers.BadRequest("Slug must contain letters or digits")
		}
		update.Slug = &slug
	}

	return s.attributeRepository.UpdateOne(ctx, orgID, attributeID, update)
}

func (s *OrganizationAttributeService) DeleteOrganizationAttribute(ctx context.Context, orgID int64, attributeID string) (*entity.Attribute, error) {
	return s.attributeRepository.DeleteOne(ctx, orgID, attributeID)
}
