// Package domain holds DTOs and ports for postings and bookmarks
package domain

import (
	"context"

	"internhasha/internal/adapters/internhasha"
	"internhasha/internal/core/posting"
)

// API is the slice of the REST client the listing flows need
type API interface {
	Posts(ctx context.Context, query string) (*internhasha.Response, error)
	Bookmarks(ctx context.Context) (*internhasha.Response, error)
	AddBookmark(ctx context.Context, id string) error
	RemoveBookmark(ctx context.Context, id string) error
}

// ServicePort is the postings contract used by the front ends
type ServicePort interface {
	List(ctx context.Context, f posting.Filter) (posting.Page, error)
	Window(ctx context.Context, f posting.Filter, page int) (posting.Window, error)
	Bookmarks(ctx context.Context) ([]posting.Post, error)
	Toggle(ctx context.Context, p posting.Post) (posting.Post, error)
	Add(ctx context.Context, id string) error
	Remove(ctx context.Context, id string) error
}

// ListInput is the query form of a listing request. Page is 0-based.
type ListInput struct {
	Page     int      `json:"page"     validate:"min=0"               example:"0"`
	Order    string   `json:"order"    validate:"omitempty,oneof=0 1" example:"0"`
	Roles    []string `json:"roles"                                   example:"FRONT,BACKEND"`
	Domains  []string `json:"domains"                                 example:"FINTECH"`
	IsActive bool     `json:"isActive"                                example:"true"`
}

// Filter converts the input into the canonical filter
func (in ListInput) Filter() posting.Filter {
	return posting.Filter{
		Page:     in.Page,
		Order:    posting.Order(in.Order),
		Roles:    posting.SplitList(in.Roles...),
		Domains:  posting.SplitList(in.Domains...),
		IsActive: in.IsActive,
	}
}

// WindowInput asks for one 1-based client-side page over the first two server pages
type WindowInput struct {
	ListInput
	View int `json:"view" validate:"min=0" example:"1"`
}
