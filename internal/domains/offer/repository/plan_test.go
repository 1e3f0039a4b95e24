package repository

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coderr-backend/internal/domains/offer/model"
)

func stmtVerb(s planStatement) string {
	return strings.Fields(strings.TrimSpace(s.sql))[0]
}

func TestPlanStatements_TierReplacementDeletesBeforeInsert(t *testing.T) {
	// keep basic by id, drop the stored standard row, add a fresh standard
	// one. The new row must not hit the tier uniqueness check while the old
	// row still exists.
	offerID := uuid.New()
	existing := []model.OfferDetail{
		{ID: uuid.New(), OfferID: offerID, OfferType: model.OfferTypeBasic, DeliveryTimeInDays: 3},
		{ID: uuid.New(), OfferID: offerID, OfferType: model.OfferTypeStandard, DeliveryTimeInDays: 5},
	}
	keepID := existing[0].ID
	standard := model.OfferTypeStandard.String()
	delivery := 7

	plan, err := model.BuildReconcilePlan(offerID, existing, []model.DetailPayload{
		{ID: &keepID},
		{OfferType: &standard, DeliveryTimeInDays: &delivery},
	})
	require.NoError(t, err)
	require.Len(t, plan.Inserts, 1)
	assert.Equal(t, model.OfferTypeStandard, plan.Inserts[0].OfferType)
	require.Equal(t, []uuid.UUID{existing[1].ID}, plan.DeleteIDs)

	stmts := planStatements(offerID, plan)
	require.Len(t, stmts, 3)
	assert.Equal(t, "DELETE", stmtVerb(stmts[0]))
	assert.Equal(t, "UPDATE", stmtVerb(stmts[1]))
	assert.Equal(t, "INSERT", stmtVerb(stmts[2]))
	assert.Equal(t, []interface{}{offerID, plan.DeleteIDs}, stmts[0].args)
}

func TestPlanStatements_Ordering(t *testing.T) {
	offerID := uuid.New()
	plan := &model.ReconcilePlan{
		Updates: []model.OfferDetail{
			{ID: uuid.New(), OfferID: offerID, OfferType: model.OfferTypeBasic, DeliveryTimeInDays: 2},
			{ID: uuid.New(), OfferID: offerID, OfferType: model.OfferTypeStandard, DeliveryTimeInDays: 4},
		},
		Inserts: []model.OfferDetail{
			{ID: uuid.New(), OfferID: offerID, OfferType: model.OfferTypePremium, DeliveryTimeInDays: 9},
		},
		DeleteIDs: []uuid.UUID{uuid.New(), uuid.New()},
	}

	stmts := planStatements(offerID, plan)
	require.Len(t, stmts, 4)

	verbs := make([]string, 0, len(stmts))
	for _, st := range stmts {
		verbs = append(verbs, stmtVerb(st))
	}
	assert.Equal(t, []string{"DELETE", "UPDATE", "UPDATE", "INSERT"}, verbs)
}

func TestPlanStatements_NoDeleteStatementWithoutDeletes(t *testing.T) {
	offerID := uuid.New()
	plan := &model.ReconcilePlan{
		Updates: []model.OfferDetail{
			{ID: uuid.New(), OfferID: offerID, OfferType: model.OfferTypeBasic, DeliveryTimeInDays: 2},
		},
	}

	stmts := planStatements(offerID, plan)
	require.Len(t, stmts, 1)
	assert.Equal(t, "UPDATE", stmtVerb(stmts[0]))
	assert.Equal(t, plan.Updates[0].ID, stmts[0].args[0])
	assert.Equal(t, offerID, stmts[0].args[1])
}
