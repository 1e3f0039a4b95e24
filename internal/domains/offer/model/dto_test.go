package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListOffersRequest_Normalize(t *testing.T) {
	var req ListOffersRequest
	req.Normalize()
	assert.Equal(t, 1, req.Page)
	assert.Equal(t, 10, req.PageSize)
	assert.Equal(t, "-updated_at", req.Ordering)

	req = ListOffersRequest{Page: 3, PageSize: 500, Ordering: "min_price"}
	req.Normalize()
	assert.Equal(t, 3, req.Page)
	assert.Equal(t, 100, req.PageSize)
	assert.Equal(t, "min_price", req.Ordering)
}

func TestListOffersRequest_Validate(t *testing.T) {
	req := ListOffersRequest{Ordering: "-min_price"}
	req.Normalize()
	assert.NoError(t, req.Validate())

	req = ListOffersRequest{Ordering: "title"}
	req.Normalize()
	assert.Error(t, req.Validate())
}
