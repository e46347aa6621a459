package catalog

import (
	"context"
	"encoding/json"
	"errors"

	domaincatalog "studio-booking/internal/domain/catalog"
	"studio-booking/internal/infra"
	"studio-booking/internal/usecase/queries"
	"studio-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Store serves the offer catalog through gorm. It implements the write port used by
// catalog commands, the read port used by catalog queries and shared.CatalogReader.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) OfferByID(ctx context.Context, id uuid.UUID) (*shared.OfferSnapshot, error) {
	var m OfferModel
	if err := s.db.WithContext(ctx).Select("id", "title", "duration").First(&m, "id = ?", id).Error; err != nil {
		return nil, wrapErr("offer not found", "failed to find offer", err)
	}
	return &shared.OfferSnapshot{ID: m.ID, Title: m.Title, Duration: m.Duration}, nil
}

func (s *Store) ListOffers(ctx context.Context) ([]*queries.OfferView, error) {
	var models []OfferModel
	if err := s.db.WithContext(ctx).Order("title ASC").Find(&models).Error; err != nil {
		return nil, infra.WrapRepoErr("failed to list offers", err)
	}

	out := make([]*queries.OfferView, len(models))
	for i := range models {
		out[i] = toOfferView(models[i])
	}
	return out, nil
}

func (s *Store) FindOfferByID(ctx context.Context, id uuid.UUID) (*queries.OfferView, error) {
	var m OfferModel
	if err := s.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, wrapErr("offer not found", "failed to find offer", err)
	}
	return toOfferView(m), nil
}

func (s *Store) CreateOffer(ctx context.Context, offer *domaincatalog.Offer) (uuid.UUID, error) {
	m, err := fromOffer(offer)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to encode offer", err)
	}
	m.ID = uuid.New()
	if err := s.db.WithContext(ctx).Create(&m).Error; err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create offer", err)
	}
	return m.ID, nil
}

func (s *Store) UpdateOffer(ctx context.Context, id uuid.UUID, offer *domaincatalog.Offer) error {
	m, err := fromOffer(offer)
	if err != nil {
		return infra.WrapRepoErr("failed to encode offer", err)
	}

	// explicit Select so emptied fields are written too
	res := s.db.WithContext(ctx).
		Model(&OfferModel{}).
		Where("id = ?", id).
		Select("category", "title", "description", "price", "features", "duration", "image_url", "questions", "updated_at").
		Updates(&m)
	if res.Error != nil {
		return infra.WrapRepoErr("failed to update offer", res.Error)
	}
	if res.RowsAffected == 0 {
		return infra.WrapRepoErr("offer not found", gorm.ErrRecordNotFound, infra.KindNotFound)
	}
	return nil
}

// DeleteOffer fails with a foreign key violation while reservations still point at the offer.
func (s *Store) DeleteOffer(ctx context.Context, id uuid.UUID) error {
	res := s.db.WithContext(ctx).Delete(&OfferModel{}, "id = ?", id)
	if res.Error != nil {
		return infra.WrapRepoErr("failed to delete offer", res.Error)
	}
	if res.RowsAffected == 0 {
		return infra.WrapRepoErr("offer not found", gorm.ErrRecordNotFound, infra.KindNotFound)
	}
	return nil
}

func (s *Store) FindActiveDiscountByCode(ctx context.Context, code string) (*queries.DiscountCodeView, error) {
	var m DiscountCodeModel
	err := s.db.WithContext(ctx).
		Where("code = ? AND is_active = ?", code, true).
		First(&m).Error
	if err != nil {
		return nil, wrapErr("discount code not found", "failed to find discount code", err)
	}
	return toDiscountView(m), nil
}

func (s *Store) ListDiscountCodes(ctx context.Context) ([]*queries.DiscountCodeView, error) {
	var models []DiscountCodeModel
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&models).Error; err != nil {
		return nil, infra.WrapRepoErr("failed to list discount codes", err)
	}

	out := make([]*queries.DiscountCodeView, len(models))
	for i := range models {
		out[i] = toDiscountView(models[i])
	}
	return out, nil
}

func (s *Store) CreateDiscountCode(ctx context.Context, code *domaincatalog.DiscountCode) (uuid.UUID, error) {
	m := DiscountCodeModel{
		ID:       uuid.New(),
		Code:     code.Code(),
		Type:     string(code.Type()),
		Value:    code.Value(),
		IsActive: code.IsActive(),
	}
	if err := s.db.WithContext(ctx).Create(&m).Error; err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create discount code", err)
	}
	return m.ID, nil
}

func wrapErr(notFoundMsg, failMsg string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return infra.WrapRepoErr(notFoundMsg, err, infra.KindNotFound)
	}
	return infra.WrapRepoErr(failMsg, err)
}

func fromOffer(o *domaincatalog.Offer) (OfferModel, error) {
	features, err := json.Marshal(nonNil(o.Features()))
	if err != nil {
		return OfferModel{}, err
	}
	questions, err := json.Marshal(nonNil(o.Questions()))
	if err != nil {
		return OfferModel{}, err
	}
	return OfferModel{
		Category:    o.Category(),
		Title:       o.Title(),
		Description: o.Description(),
		Price:       o.Price(),
		Features:    string(features),
		Duration:    o.Duration(),
		ImageURL:    o.ImageURL(),
		Questions:   string(questions),
	}, nil
}

func toOfferView(m OfferModel) *queries.OfferView {
	return &queries.OfferView{
		ID:          m.ID,
		Category:    m.Category,
		Title:       m.Title,
		Description: m.Description,
		Price:       m.Price,
		Features:    decodeList(m.Features),
		Duration:    m.Duration,
		ImageURL:    m.ImageURL,
		Questions:   decodeList(m.Questions),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toDiscountView(m DiscountCodeModel) *queries.DiscountCodeView {
	return &queries.DiscountCodeView{
		ID:        m.ID,
		Code:      m.Code,
		Type:      m.Type,
		Value:     m.Value,
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
	}
}

func decodeList(s string) []string {
	out := []string{}
	if s == "" {
		return out
	}
	if err := json.Unmarshal([]byte(s), &out); err != nil {
		return []string{}
	}
	return out
}

func nonNil(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
