package model

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string        { return &s }
func intPtr(n int) *int              { return &n }
func uuidPtr(u uuid.UUID) *uuid.UUID { return &u }

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func existingDetails(offerID uuid.UUID) []OfferDetail {
	return []OfferDetail{
		{
			ID:                 uuid.New(),
			OfferID:            offerID,
			Title:              "Basic",
			Revisions:          1,
			DeliveryTimeInDays: 5,
			Price:              decPtr("120"),
			Features:           []string{"Logo"},
			OfferType:          OfferTypeBasic,
		},
		{
			ID:                 uuid.New(),
			OfferID:            offerID,
			Title:              "Standard",
			Revisions:          3,
			DeliveryTimeInDays: 3,
			Price:              decPtr("200"),
			Features:           []string{"Logo", "Flyer"},
			OfferType:          OfferTypeStandard,
		},
	}
}

func TestBuildReconcilePlan_UpdateInsertDelete(t *testing.T) {
	offerID := uuid.New()
	existing := existingDetails(offerID)

	payloads := []DetailPayload{
		// patch the basic tier
		{ID: uuidPtr(existing[0].ID), Price: decPtr("150")},
		// new premium tier
		{
			Title:              strPtr("Premium"),
			Revisions:          intPtr(10),
			DeliveryTimeInDays: intPtr(1),
			Price:              decPtr("500"),
			OfferType:          strPtr("premium"),
		},
		// standard tier is not referenced and must be deleted
	}

	plan, err := BuildReconcilePlan(offerID, existing, payloads)
	require.NoError(t, err)

	require.Len(t, plan.Updates, 1)
	assert.Equal(t, existing[0].ID, plan.Updates[0].ID)
	assert.True(t, plan.Updates[0].Price.Equal(decimal.RequireFromString("150")))
	// unspecified fields keep their prior values
	assert.Equal(t, "Basic", plan.Updates[0].Title)
	assert.Equal(t, 5, plan.Updates[0].DeliveryTimeInDays)

	require.Len(t, plan.Inserts, 1)
	assert.Equal(t, OfferTypePremium, plan.Inserts[0].OfferType)
	assert.Equal(t, offerID, plan.Inserts[0].OfferID)
	assert.NotEqual(t, uuid.Nil, plan.Inserts[0].ID)

	require.Len(t, plan.DeleteIDs, 1)
	assert.Equal(t, existing[1].ID, plan.DeleteIDs[0])

	assert.Empty(t, plan.IgnoredIDs)
}

func TestBuildReconcilePlan_UnknownIDIsIgnored(t *testing.T) {
	offerID := uuid.New()
	existing := existingDetails(offerID)
	stale := uuid.New()

	payloads := []DetailPayload{
		{ID: uuidPtr(existing[0].ID)},
		{ID: uuidPtr(existing[1].ID)},
		{ID: uuidPtr(stale), Title: strPtr("should not land anywhere")},
	}

	plan, err := BuildReconcilePlan(offerID, existing, payloads)
	require.NoError(t, err)

	assert.Len(t, plan.Updates, 2)
	assert.Empty(t, plan.Inserts)
	assert.Empty(t, plan.DeleteIDs)
	assert.Equal(t, []uuid.UUID{stale}, plan.IgnoredIDs)
}

func TestBuildReconcilePlan_EmptyFinalSetRejected(t *testing.T) {
	offerID := uuid.New()
	existing := existingDetails(offerID)

	_, err := BuildReconcilePlan(offerID, existing, nil)
	assert.ErrorIs(t, err, ErrNoDetails)
}

func TestBuildReconcilePlan_DuplicateOfferTypeRejected(t *testing.T) {
	offerID := uuid.New()
	existing := existingDetails(offerID)

	payloads := []DetailPayload{
		{ID: uuidPtr(existing[0].ID)},
		{ID: uuidPtr(existing[1].ID), OfferType: strPtr("basic")},
	}

	_, err := BuildReconcilePlan(offerID, existing, payloads)
	assert.ErrorIs(t, err, ErrDuplicateOfferType)
}

func TestBuildReconcilePlan_NewDetailRequiredFields(t *testing.T) {
	offerID := uuid.New()

	_, err := BuildReconcilePlan(offerID, nil, []DetailPayload{
		{DeliveryTimeInDays: intPtr(3)},
	})
	assert.ErrorIs(t, err, ErrMissingOfferType)

	_, err = BuildReconcilePlan(offerID, nil, []DetailPayload{
		{OfferType: strPtr("basic")},
	})
	assert.ErrorIs(t, err, ErrMissingDeliveryTime)
}

func TestBuildReconcilePlan_InvalidDeliveryTimeRejected(t *testing.T) {
	offerID := uuid.New()
	existing := existingDetails(offerID)

	payloads := []DetailPayload{
		{ID: uuidPtr(existing[0].ID), DeliveryTimeInDays: intPtr(0)},
		{ID: uuidPtr(existing[1].ID)},
	}

	_, err := BuildReconcilePlan(offerID, existing, payloads)
	assert.ErrorIs(t, err, ErrInvalidDeliveryTime)
}

func TestBuildReconcilePlan_DoesNotMutateExisting(t *testing.T) {
	offerID := uuid.New()
	existing := existingDetails(offerID)

	payloads := []DetailPayload{
		{ID: uuidPtr(existing[0].ID), Title: strPtr("Changed"), Features: []string{"New"}},
		{ID: uuidPtr(existing[1].ID)},
	}

	_, err := BuildReconcilePlan(offerID, existing, payloads)
	require.NoError(t, err)

	assert.Equal(t, "Basic", existing[0].Title)
	assert.Equal(t, []string{"Logo"}, []string(existing[0].Features))
}

func TestDetailsFromPayloads(t *testing.T) {
	offerID := uuid.New()

	t.Run("builds and validates the set", func(t *testing.T) {
		details, err := DetailsFromPayloads(offerID, []DetailPayload{
			{Title: strPtr("Basic"), DeliveryTimeInDays: intPtr(5), OfferType: strPtr("basic")},
			{Title: strPtr("Premium"), DeliveryTimeInDays: intPtr(2), OfferType: strPtr("premium")},
		})
		require.NoError(t, err)
		require.Len(t, details, 2)
		assert.Equal(t, offerID, details[0].OfferID)
	})

	t.Run("submitted ids are ignored", func(t *testing.T) {
		someID := uuid.New()
		details, err := DetailsFromPayloads(offerID, []DetailPayload{
			{ID: uuidPtr(someID), Title: strPtr("Basic"), DeliveryTimeInDays: intPtr(5), OfferType: strPtr("basic")},
		})
		require.NoError(t, err)
		assert.NotEqual(t, someID, details[0].ID)
	})

	t.Run("empty set rejected", func(t *testing.T) {
		_, err := DetailsFromPayloads(offerID, nil)
		assert.ErrorIs(t, err, ErrNoDetails)
	})

	t.Run("duplicate tiers rejected", func(t *testing.T) {
		_, err := DetailsFromPayloads(offerID, []DetailPayload{
			{DeliveryTimeInDays: intPtr(5), OfferType: strPtr("basic")},
			{DeliveryTimeInDays: intPtr(3), OfferType: strPtr("basic")},
		})
		assert.ErrorIs(t, err, ErrDuplicateOfferType)
	})
}

func TestMinPrice(t *testing.T) {
	details := []OfferDetail{
		{Price: decPtr("120"), DeliveryTimeInDays: 5},
		{Price: decPtr("80"), DeliveryTimeInDays: 3},
		{Price: decPtr("200"), DeliveryTimeInDays: 10},
	}

	min := MinPrice(details)
	require.NotNil(t, min)
	assert.True(t, min.Equal(decimal.RequireFromString("80")))
}

func TestMinPrice_SkipsUnpriced(t *testing.T) {
	details := []OfferDetail{
		{Price: nil},
		{Price: decPtr("150")},
	}

	min := MinPrice(details)
	require.NotNil(t, min)
	assert.True(t, min.Equal(decimal.RequireFromString("150")))

	assert.Nil(t, MinPrice([]OfferDetail{{Price: nil}}))
	assert.Nil(t, MinPrice(nil))
}

func TestMinDeliveryTime(t *testing.T) {
	details := []OfferDetail{
		{DeliveryTimeInDays: 5},
		{DeliveryTimeInDays: 3},
		{DeliveryTimeInDays: 10},
	}

	min := MinDeliveryTime(details)
	require.NotNil(t, min)
	assert.Equal(t, 3, *min)

	assert.Nil(t, MinDeliveryTime(nil))
}
