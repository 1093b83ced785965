package entity

type AttributeType string

const (
	AttributeTypeText         AttributeType = "TEXT"
	AttributeTypeNumber       AttributeType = "NUMBER"
	AttributeTypeSingleSelect AttributeType = "SINGLE_SELECT"
	AttributeTypeMultiSelect  AttributeType = "MULTI_SELECT"
)

// Attribute is a custom field an organization defines for its members.
type Attribute struct {
	ID                   string             `bson:"_id" json:"id"`
	TeamID               int64              `bson:"teamId" json:"teamId"`
	Name                 string             `bson:"name" json:"name"`
	Slug                 string             `bson:"slug" json:"slug"`
	Type                 AttributeType      `bson:"type" json:"type"`
	Enabled              bool               `bson:"enabled" json:"enabled"`
	UsersCanEditRelation bool               `bson:"usersCanEditRelation" json:"usersCanEditRelation"`
	Options              []*AttributeOption `bson:"options" json:"options"`
}

type AttributeOption struct {
	ID    string `bson:"id" json:"id"`
	Value string `bson:"value" json:"value"`
	Slug  string `bson:"slug" json:"slug"`
}

func (t AttributeType) HasOptions() bool {
	return t == AttributeTypeSingleSelect || t == AttributeTypeMultiSelect
}
