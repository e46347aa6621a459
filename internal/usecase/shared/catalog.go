package shared

import (
	"context"

	"github.com/google/uuid"
)

// CatalogReader is the write side's view of the offer catalog.
type CatalogReader interface {
	OfferByID(ctx context.Context, id uuid.UUID) (*OfferSnapshot, error)
}
