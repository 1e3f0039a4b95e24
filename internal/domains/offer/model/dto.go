package model

import (
	"strconv"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DetailPayload is one submitted offer detail. All fields are optional so
// the same shape serves both full creation and partial patching; the
// reconciliation planner decides which fields are mandatory.
type DetailPayload struct {
	ID                 *uuid.UUID       `json:"id"`
	Title              *string          `json:"title"`
	Revisions          *int             `json:"revisions"`
	DeliveryTimeInDays *int             `json:"delivery_time_in_days"`
	Price              *decimal.Decimal `json:"price"`
	Features           []string         `json:"features"`
	OfferType          *string          `json:"offer_type"`
}

func (p DetailPayload) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Title, validation.Length(0, 255)),
		validation.Field(&p.Revisions, validation.Min(-1)),
		validation.Field(&p.OfferType, validation.In(
			OfferTypeBasic.String(), OfferTypeStandard.String(), OfferTypePremium.String(),
		)),
	)
}

type CreateOfferRequest struct {
	Title       string          `json:"title"`
	Image       *string         `json:"image"`
	Description string          `json:"description"`
	Details     []DetailPayload `json:"details"`
}

func (r CreateOfferRequest) Validate() error {
	if err := validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.Length(1, 255)),
		validation.Field(&r.Details, validation.Required),
	); err != nil {
		return err
	}
	return validatePayloads(r.Details)
}

type UpdateOfferRequest struct {
	Title       *string `json:"title"`
	Image       *string `json:"image"`
	Description *string `json:"description"`
	// Details nil means the detail set stays untouched. A non-nil slice is
	// reconciled against the stored details.
	Details []DetailPayload `json:"details"`
}

func (r UpdateOfferRequest) Validate() error {
	if err := validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.NilOrNotEmpty, validation.Length(1, 255)),
	); err != nil {
		return err
	}
	return validatePayloads(r.Details)
}

func validatePayloads(payloads []DetailPayload) error {
	errs := validation.Errors{}
	for i, p := range payloads {
		if err := p.Validate(); err != nil {
			errs["details."+strconv.Itoa(i)] = err
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ListOffersRequest carries the query parameters of the offer list endpoint.
type ListOffersRequest struct {
	CreatorID       *uuid.UUID       `form:"creator_id"`
	MinPrice        *decimal.Decimal `form:"min_price"`
	MaxDeliveryTime *int             `form:"max_delivery_time"`
	Search          string           `form:"search"`
	Ordering        string           `form:"ordering"`
	Page            int              `form:"page"`
	PageSize        int              `form:"page_size"`
}

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

func (r *ListOffersRequest) Normalize() {
	if r.Page < 1 {
		r.Page = 1
	}
	if r.PageSize < 1 {
		r.PageSize = defaultPageSize
	}
	if r.PageSize > maxPageSize {
		r.PageSize = maxPageSize
	}
	if r.Ordering == "" {
		r.Ordering = "-updated_at"
	}
}

func (r ListOffersRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Ordering, validation.In(
			"updated_at", "-updated_at", "min_price", "-min_price",
		)),
		validation.Field(&r.MaxDeliveryTime, validation.Min(1)),
	)
}

// UserDetails is the offer creator summary embedded in offer responses.
type UserDetails struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Username  string `json:"username"`
}

// DetailBrief references a detail by id in offer list and detail views.
type DetailBrief struct {
	ID uuid.UUID `json:"id"`
}

// OfferRow is an offer joined with its derived metrics and creator summary,
// as produced by the list and get queries.
type OfferRow struct {
	Offer
	MinPrice        *decimal.Decimal
	MinDeliveryTime *int
	User            UserDetails
}

type OfferResponse struct {
	ID              uuid.UUID        `json:"id"`
	UserID          uuid.UUID        `json:"user"`
	Title           string           `json:"title"`
	Image           *string          `json:"image"`
	Description     string           `json:"description"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
	Details         []DetailBrief    `json:"details"`
	MinPrice        *decimal.Decimal `json:"min_price"`
	MinDeliveryTime *int             `json:"min_delivery_time"`
	UserDetails     UserDetails      `json:"user_details"`
}

func (r *OfferRow) ToResponse(details []OfferDetail) OfferResponse {
	briefs := make([]DetailBrief, 0, len(details))
	for _, d := range details {
		briefs = append(briefs, DetailBrief{ID: d.ID})
	}
	return OfferResponse{
		ID:              r.ID,
		UserID:          r.UserID,
		Title:           r.Title,
		Image:           r.Image,
		Description:     r.Description,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
		Details:         briefs,
		MinPrice:        r.MinPrice,
		MinDeliveryTime: r.MinDeliveryTime,
		UserDetails:     r.User,
	}
}
