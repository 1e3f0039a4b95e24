package model

// BaseInfo is the public platform summary. AverageRating is rounded to one
// decimal place and 0 when no reviews exist yet.
type BaseInfo struct {
	ReviewCount          int     `json:"review_count"`
	AverageRating        float64 `json:"average_rating"`
	BusinessProfileCount int     `json:"business_profile_count"`
	OfferCount           int     `json:"offer_count"`
}
