package commands

import (
	"context"

	"studio-booking/internal/domain/catalog"
	"studio-booking/internal/infra"
	"studio-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

type OfferInput struct {
	Category    string
	Title       string
	Description string
	Price       string
	Features    []string
	Duration    string
	ImageURL    string
	Questions   []string
}

type DiscountCodeInput struct {
	Code     string
	Type     string
	Value    float64
	IsActive bool
}

type CatalogWriter interface {
	CreateOffer(ctx context.Context, offer *catalog.Offer) (uuid.UUID, error)
	UpdateOffer(ctx context.Context, id uuid.UUID, offer *catalog.Offer) error
	DeleteOffer(ctx context.Context, id uuid.UUID) error
	CreateDiscountCode(ctx context.Context, code *catalog.DiscountCode) (uuid.UUID, error)
}

type CatalogCommands interface {
	CreateOffer(ctx context.Context, in OfferInput) (uuid.UUID, error)
	UpdateOffer(ctx context.Context, id uuid.UUID, in OfferInput) error
	DeleteOffer(ctx context.Context, id uuid.UUID) error
	CreateDiscountCode(ctx context.Context, in DiscountCodeInput) (uuid.UUID, error)
}

type catalogCommandsImpl struct {
	store CatalogWriter
}

func NewCatalogCommands(store CatalogWriter) CatalogCommands {
	return &catalogCommandsImpl{store: store}
}

func (c *catalogCommandsImpl) CreateOffer(ctx context.Context, in OfferInput) (uuid.UUID, error) {
	offer, err := in.toDomain()
	if err != nil {
		return uuid.Nil, err
	}
	id, err := c.store.CreateOffer(ctx, offer)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return id, nil
}

func (c *catalogCommandsImpl) UpdateOffer(ctx context.Context, id uuid.UUID, in OfferInput) error {
	offer, err := in.toDomain()
	if err != nil {
		return err
	}
	if err := c.store.UpdateOffer(ctx, id, offer); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrOfferNotFound)
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

func (c *catalogCommandsImpl) DeleteOffer(ctx context.Context, id uuid.UUID) error {
	if err := c.store.DeleteOffer(ctx, id); err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return errs.Mark(err, errs.ErrOfferNotFound)
		case infra.IsKind(err, infra.KindForeignKeyViolated):
			return errs.Mark(err, errs.ErrOfferInUse)
		default:
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
	}
	return nil
}

func (c *catalogCommandsImpl) CreateDiscountCode(ctx context.Context, in DiscountCodeInput) (uuid.UUID, error) {
	code, err := catalog.NewDiscountCode(in.Code, in.Type, in.Value, in.IsActive)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	id, err := c.store.CreateDiscountCode(ctx, code)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return uuid.Nil, errs.Mark(err, errs.ErrDuplicateDiscount)
		}
		return uuid.Nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return id, nil
}

func (in OfferInput) toDomain() (*catalog.Offer, error) {
	offer, err := catalog.NewOffer(in.Category, in.Title, in.Description, in.Price, in.Duration, in.ImageURL, in.Features, in.Questions)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	return offer, nil
}
