package model

import "errors"

var (
	ErrOfferNotFound  = errors.New("offer not found")
	ErrDetailNotFound = errors.New("offer detail not found")
	ErrNotPermitted   = errors.New("not permitted")
	ErrBusinessOnly   = errors.New("only business users can create offers")

	// Detail set violations, raised before any write happens.
	ErrNoDetails           = errors.New("offer must keep at least one detail")
	ErrDuplicateOfferType  = errors.New("offer details must have distinct offer types")
	ErrInvalidOfferType    = errors.New("invalid offer type")
	ErrMissingOfferType    = errors.New("offer type is required for new details")
	ErrInvalidDeliveryTime = errors.New("delivery time must be a positive number of days")
	ErrMissingDeliveryTime = errors.New("delivery time is required for new details")
)
