package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	StatusInProgress OrderStatus = "in_progress"
	StatusCompleted  OrderStatus = "completed"
	StatusCancelled  OrderStatus = "cancelled"
)

func (s OrderStatus) IsValid() bool {
	switch s {
	case StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

func (s OrderStatus) String() string {
	return string(s)
}

// CanTransitionTo reports whether an order may move from s to next. Orders
// only ever leave in_progress; completed and cancelled are terminal.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if s != StatusInProgress {
		return false
	}
	return next == StatusCompleted || next == StatusCancelled
}

// Order is a booking of one offer detail. The detail's fields are copied
// into the order at creation, so later edits or deletion of the detail
// never change what was agreed.
type Order struct {
	ID             uuid.UUID  `db:"id"`
	CustomerUserID uuid.UUID  `db:"customer_user_id"`
	BusinessUserID uuid.UUID  `db:"business_user_id"`
	OfferDetailID  *uuid.UUID `db:"offer_detail_id"`

	Title              string           `db:"title"`
	Revisions          int              `db:"revisions"`
	DeliveryTimeInDays int              `db:"delivery_time_in_days"`
	Price              *decimal.Decimal `db:"price"`
	Features           pq.StringArray   `db:"features"`
	OfferType          string           `db:"offer_type"`

	Status    OrderStatus `db:"status"`
	CreatedAt time.Time   `db:"created_at"`
	UpdatedAt time.Time   `db:"updated_at"`
}
