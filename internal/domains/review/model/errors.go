package model

import "errors"

var (
	ErrReviewNotFound       = errors.New("review not found")
	ErrBusinessUserNotFound = errors.New("business user not found")
	ErrNotPermitted         = errors.New("not permitted")
	ErrCustomerOnly         = errors.New("only customer users can write reviews")
	ErrDuplicateReview      = errors.New("you have already reviewed this business user")
)
