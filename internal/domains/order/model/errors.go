package model

import "errors"

var (
	ErrOrderNotFound        = errors.New("order not found")
	ErrOfferDetailNotFound  = errors.New("offer detail not found")
	ErrBusinessUserNotFound = errors.New("business user not found")
	ErrNotPermitted         = errors.New("not permitted")
	ErrCustomerOnly         = errors.New("only customer users can place orders")
	ErrInvalidStatus        = errors.New("invalid order status")
	ErrInvalidTransition    = errors.New("order status can no longer be changed")
)
