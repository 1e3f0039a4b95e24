package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

type CreateReviewRequest struct {
	BusinessUser *uuid.UUID `json:"business_user"`
	Rating       *int       `json:"rating"`
	Description  string     `json:"description"`
}

func (r CreateReviewRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.BusinessUser, validation.Required),
		validation.Field(&r.Rating, validation.Required, validation.Min(1), validation.Max(5)),
	)
}

// UpdateReviewRequest allows patching rating and description only. The
// handler rejects bodies carrying any other key outright.
type UpdateReviewRequest struct {
	Rating      *int    `json:"rating"`
	Description *string `json:"description"`
}

func (r UpdateReviewRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Rating, validation.Min(1), validation.Max(5)),
	)
}

// ListReviewsRequest carries the query parameters of the review list
// endpoint.
type ListReviewsRequest struct {
	BusinessUserID *uuid.UUID
	ReviewerID     *uuid.UUID
	Ordering       string
}

func (r *ListReviewsRequest) Normalize() {
	if r.Ordering == "" {
		r.Ordering = "-updated_at"
	}
}

func (r ListReviewsRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Ordering, validation.In(
			"updated_at", "-updated_at", "rating", "-rating",
		)),
	)
}
