package queries

import (
	"context"
	"strings"

	"studio-booking/internal/infra"
	"studio-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

const invalidDiscountMessage = "Kod nieprawidłowy lub wygasł."

type CatalogQueries interface {
	ListOffers(ctx context.Context) ([]*OfferView, error)
	GetOffer(ctx context.Context, id uuid.UUID) (*OfferView, error)
	VerifyDiscountCode(ctx context.Context, code string) (*DiscountVerification, error)
	ListDiscountCodes(ctx context.Context) ([]*DiscountCodeView, error)
}

type CatalogReadStore interface {
	ListOffers(ctx context.Context) ([]*OfferView, error)
	FindOfferByID(ctx context.Context, id uuid.UUID) (*OfferView, error)
	FindActiveDiscountByCode(ctx context.Context, code string) (*DiscountCodeView, error)
	ListDiscountCodes(ctx context.Context) ([]*DiscountCodeView, error)
}

type catalogQueriesImpl struct {
	store CatalogReadStore
}

func NewCatalogQueries(store CatalogReadStore) CatalogQueries {
	return &catalogQueriesImpl{store: store}
}

func (q *catalogQueriesImpl) ListOffers(ctx context.Context) ([]*OfferView, error) {
	offers, err := q.store.ListOffers(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return offers, nil
}

func (q *catalogQueriesImpl) GetOffer(ctx context.Context, id uuid.UUID) (*OfferView, error) {
	offer, err := q.store.FindOfferByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, errs.ErrOfferNotFound)
	}
	return offer, nil
}

// VerifyDiscountCode answers unknown and inactive codes the same way.
func (q *catalogQueriesImpl) VerifyDiscountCode(ctx context.Context, code string) (*DiscountVerification, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return &DiscountVerification{Valid: false, Message: invalidDiscountMessage}, nil
	}

	d, err := q.store.FindActiveDiscountByCode(ctx, code)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return &DiscountVerification{Valid: false, Message: invalidDiscountMessage}, nil
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	id := d.ID
	return &DiscountVerification{
		Valid: true,
		Type:  d.Type,
		Value: d.Value,
		ID:    &id,
	}, nil
}

func (q *catalogQueriesImpl) ListDiscountCodes(ctx context.Context) ([]*DiscountCodeView, error) {
	codes, err := q.store.ListDiscountCodes(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return codes, nil
}
