// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/habit-tracker/backend/internal/domain/entity"
)

// CreateCategoryRequest represents the request body for the explicit
// "add category" action.
type CreateCategoryRequest struct {
	Title string `json:"title" binding:"required,min=1,max=100"`
}

// CategoryResponse represents a single category in API responses.
type CategoryResponse struct {
	Title    string            `json:"title"`
	Trackers []TrackerResponse `json:"trackers"`
}

// CategoryListResponse represents the response for listing categories.
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// ToCategoryResponse converts a domain Category entity to a CategoryResponse DTO.
func ToCategoryResponse(cat *entity.Category) CategoryResponse {
	trackers := make([]TrackerResponse, len(cat.Trackers))
	for i, t := range cat.Trackers {
		trackers[i] = ToTrackerResponse(t)
	}
	return CategoryResponse{
		Title:    cat.Title,
		Trackers: trackers,
	}
}

// ToCategoryListResponse converts domain categories to a CategoryListResponse.
func ToCategoryListResponse(categories []*entity.Category) CategoryListResponse {
	out := make([]CategoryResponse, len(categories))
	for i, cat := range categories {
		out[i] = ToCategoryResponse(cat)
	}
	return CategoryListResponse{
		Categories: out,
	}
}
