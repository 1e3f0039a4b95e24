package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// OfferType is the pricing tier of an offer detail.
type OfferType string

const (
	OfferTypeBasic    OfferType = "basic"
	OfferTypeStandard OfferType = "standard"
	OfferTypePremium  OfferType = "premium"
)

func (t OfferType) IsValid() bool {
	switch t {
	case OfferTypeBasic, OfferTypeStandard, OfferTypePremium:
		return true
	}
	return false
}

func (t OfferType) String() string {
	return string(t)
}

// Offer is a business user's published service listing.
type Offer struct {
	ID          uuid.UUID `json:"id" db:"id"`
	UserID      uuid.UUID `json:"user" db:"user_id"`
	Title       string    `json:"title" db:"title"`
	Image       *string   `json:"image" db:"image"`
	Description string    `json:"description" db:"description"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// OfferDetail is one priced tier of an offer. An offer carries at least one
// detail and at most one per OfferType.
type OfferDetail struct {
	ID                 uuid.UUID        `json:"id" db:"id"`
	OfferID            uuid.UUID        `json:"offer" db:"offer_id"`
	Title              string           `json:"title" db:"title"`
	Revisions          int              `json:"revisions" db:"revisions"`
	DeliveryTimeInDays int              `json:"delivery_time_in_days" db:"delivery_time_in_days"`
	Price              *decimal.Decimal `json:"price" db:"price"`
	Features           pq.StringArray   `json:"features" db:"features"`
	OfferType          OfferType        `json:"offer_type" db:"offer_type"`
	CreatedAt          time.Time        `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time        `json:"updated_at" db:"updated_at"`
}

// MinPrice returns the lowest price across details, ignoring unpriced
// entries. Nil when no detail carries a price. Computed on every read,
// never stored.
func MinPrice(details []OfferDetail) *decimal.Decimal {
	var min *decimal.Decimal
	for i := range details {
		p := details[i].Price
		if p == nil {
			continue
		}
		if min == nil || p.LessThan(*min) {
			v := *p
			min = &v
		}
	}
	return min
}

// MinDeliveryTime returns the shortest delivery time across details, or nil
// for an empty set.
func MinDeliveryTime(details []OfferDetail) *int {
	var min *int
	for i := range details {
		d := details[i].DeliveryTimeInDays
		if min == nil || d < *min {
			v := d
			min = &v
		}
	}
	return min
}
