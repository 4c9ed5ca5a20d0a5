// Package model defines database models for the persistence layer.
package model

import (
	"github.com/habit-tracker/backend/internal/domain/entity"
)

// CategoryModel represents the categories table. The title is the
// primary key; there is no surrogate id in this design.
type CategoryModel struct {
	Title    string         `gorm:"type:varchar(100);primaryKey"`
	Trackers []TrackerModel `gorm:"foreignKey:CategoryTitle;references:Title"`
}

// TableName returns the table name for the CategoryModel.
func (CategoryModel) TableName() string {
	return "categories"
}

// ToEntity converts a CategoryModel to a domain Category entity.
func (m *CategoryModel) ToEntity() *entity.Category {
	trackers := make([]*entity.Tracker, len(m.Trackers))
	for i, tm := range m.Trackers {
		trackers[i] = tm.ToEntity()
	}

	return &entity.Category{
		Title:    m.Title,
		Trackers: trackers,
	}
}

// CategoryFromEntity creates a CategoryModel from a domain Category
// entity. Trackers are persisted through their own model, not through
// the association, so they are left out here.
func CategoryFromEntity(category *entity.Category) *CategoryModel {
	return &CategoryModel{
		Title: category.Title,
	}
}
