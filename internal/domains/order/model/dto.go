package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateOrderRequest struct {
	OfferDetailID *uuid.UUID `json:"offer_detail_id"`
}

func (r CreateOrderRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.OfferDetailID, validation.Required),
	)
}

// UpdateOrderStatusRequest carries the PATCH body. Status is a pointer so a
// missing field can be told apart from an empty one; both are rejected.
type UpdateOrderStatusRequest struct {
	Status *string `json:"status"`
}

func (r UpdateOrderStatusRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Status, validation.Required),
	)
}

type OrderResponse struct {
	ID                 uuid.UUID        `json:"id"`
	CustomerUser       uuid.UUID        `json:"customer_user"`
	BusinessUser       uuid.UUID        `json:"business_user"`
	Title              string           `json:"title"`
	Revisions          int              `json:"revisions"`
	DeliveryTimeInDays int              `json:"delivery_time_in_days"`
	Price              *decimal.Decimal `json:"price"`
	Features           []string         `json:"features"`
	OfferType          string           `json:"offer_type"`
	Status             OrderStatus      `json:"status"`
	CreatedAt          time.Time        `json:"created_at"`
	UpdatedAt          time.Time        `json:"updated_at"`
}

func (o *Order) ToResponse() OrderResponse {
	return OrderResponse{
		ID:                 o.ID,
		CustomerUser:       o.CustomerUserID,
		BusinessUser:       o.BusinessUserID,
		Title:              o.Title,
		Revisions:          o.Revisions,
		DeliveryTimeInDays: o.DeliveryTimeInDays,
		Price:              o.Price,
		Features:           o.Features,
		OfferType:          o.OfferType,
		Status:             o.Status,
		CreatedAt:          o.CreatedAt,
		UpdatedAt:          o.UpdatedAt,
	}
}

// OrderCountResponse is the body of the in-progress count endpoint.
type OrderCountResponse struct {
	OrderCount int `json:"order_count"`
}

// CompletedOrderCountResponse is the body of the completed count endpoint.
type CompletedOrderCountResponse struct {
	CompletedOrderCount int `json:"completed_order_count"`
}
