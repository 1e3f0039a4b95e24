package model

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// ReconcilePlan describes how a submitted detail list maps onto the stored
// one. It is computed purely in memory; the repository applies it in a
// single transaction.
type ReconcilePlan struct {
	Updates   []OfferDetail
	Inserts   []OfferDetail
	DeleteIDs []uuid.UUID
	// IgnoredIDs are submitted ids that match no stored detail of this
	// offer. They are skipped without error so stale clients cannot touch
	// rows they no longer own.
	IgnoredIDs []uuid.UUID
}

// FinalSet is the detail set the offer ends up with once the plan runs.
func (p *ReconcilePlan) FinalSet() []OfferDetail {
	out := make([]OfferDetail, 0, len(p.Updates)+len(p.Inserts))
	out = append(out, p.Updates...)
	out = append(out, p.Inserts...)
	return out
}

// BuildReconcilePlan matches submitted detail payloads against the stored
// details of an offer:
//
//   - a payload with an id matching a stored detail patches that detail,
//     unspecified fields keep their prior values
//   - a payload with an unknown id is ignored
//   - a payload without an id becomes a new detail
//   - stored details referenced by no payload are deleted
//
// The resulting final set is validated before the plan is returned, so a
// plan that would leave the offer empty or with duplicate tiers never
// reaches the database.
func BuildReconcilePlan(offerID uuid.UUID, existing []OfferDetail, payloads []DetailPayload) (*ReconcilePlan, error) {
	byID := make(map[uuid.UUID]OfferDetail, len(existing))
	for _, d := range existing {
		byID[d.ID] = d
	}

	plan := &ReconcilePlan{}
	referenced := make(map[uuid.UUID]bool, len(payloads))

	for _, p := range payloads {
		if p.ID == nil {
			detail, err := newDetailFromPayload(offerID, p)
			if err != nil {
				return nil, err
			}
			plan.Inserts = append(plan.Inserts, detail)
			continue
		}

		current, ok := byID[*p.ID]
		if !ok {
			plan.IgnoredIDs = append(plan.IgnoredIDs, *p.ID)
			continue
		}
		referenced[*p.ID] = true
		plan.Updates = append(plan.Updates, patchDetail(current, p))
	}

	for _, d := range existing {
		if !referenced[d.ID] {
			plan.DeleteIDs = append(plan.DeleteIDs, d.ID)
		}
	}

	if err := ValidateDetailSet(plan.FinalSet()); err != nil {
		return nil, err
	}
	return plan, nil
}

// DetailsFromPayloads builds the initial detail set of a new offer. Any
// submitted ids are ignored since nothing exists yet to patch. The set is
// validated before it is returned.
func DetailsFromPayloads(offerID uuid.UUID, payloads []DetailPayload) ([]OfferDetail, error) {
	details := make([]OfferDetail, 0, len(payloads))
	for _, p := range payloads {
		p.ID = nil
		d, err := newDetailFromPayload(offerID, p)
		if err != nil {
			return nil, err
		}
		details = append(details, d)
	}
	if err := ValidateDetailSet(details); err != nil {
		return nil, err
	}
	return details, nil
}

// ValidateDetailSet enforces the structural rules of an offer's detail set:
// non-empty, positive delivery times, known and pairwise distinct offer
// types.
func ValidateDetailSet(details []OfferDetail) error {
	if len(details) == 0 {
		return ErrNoDetails
	}

	seen := make(map[OfferType]bool, len(details))
	for _, d := range details {
		if !d.OfferType.IsValid() {
			return ErrInvalidOfferType
		}
		if seen[d.OfferType] {
			return ErrDuplicateOfferType
		}
		seen[d.OfferType] = true

		if d.DeliveryTimeInDays <= 0 {
			return ErrInvalidDeliveryTime
		}
	}
	return nil
}

func newDetailFromPayload(offerID uuid.UUID, p DetailPayload) (OfferDetail, error) {
	if p.OfferType == nil {
		return OfferDetail{}, ErrMissingOfferType
	}
	if p.DeliveryTimeInDays == nil {
		return OfferDetail{}, ErrMissingDeliveryTime
	}

	d := OfferDetail{
		ID:                 uuid.New(),
		OfferID:            offerID,
		DeliveryTimeInDays: *p.DeliveryTimeInDays,
		OfferType:          OfferType(*p.OfferType),
		Features:           pq.StringArray{},
	}
	if p.Title != nil {
		d.Title = *p.Title
	}
	if p.Revisions != nil {
		d.Revisions = *p.Revisions
	}
	if p.Price != nil {
		v := *p.Price
		d.Price = &v
	}
	if p.Features != nil {
		d.Features = pq.StringArray(append([]string{}, p.Features...))
	}
	return d, nil
}

func patchDetail(current OfferDetail, p DetailPayload) OfferDetail {
	next := current
	next.Features = append(pq.StringArray{}, current.Features...)

	if p.Title != nil {
		next.Title = *p.Title
	}
	if p.Revisions != nil {
		next.Revisions = *p.Revisions
	}
	if p.DeliveryTimeInDays != nil {
		next.DeliveryTimeInDays = *p.DeliveryTimeInDays
	}
	if p.Price != nil {
		v := *p.Price
		next.Price = &v
	}
	if p.Features != nil {
		next.Features = pq.StringArray(append([]string{}, p.Features...))
	}
	if p.OfferType != nil {
		next.OfferType = OfferType(*p.OfferType)
	}
	return next
}
