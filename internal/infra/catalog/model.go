package catalog

import (
	"time"

	"github.com/google/uuid"
)

// OfferModel maps the offers table. Features and Questions hold JSON string arrays.
type OfferModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Category    string    `gorm:"not null;default:''"`
	Title       string    `gorm:"not null"`
	Description string    `gorm:"not null;default:''"`
	Price       string    `gorm:"not null;default:''"`
	Features    string    `gorm:"not null;default:'[]'"`
	Duration    string    `gorm:"not null;default:''"`
	ImageURL    string    `gorm:"column:image_url;not null;default:''"`
	Questions   string    `gorm:"not null;default:'[]'"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (OfferModel) TableName() string { return "offers" }

type DiscountCodeModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Code      string    `gorm:"uniqueIndex;not null"`
	Type      string    `gorm:"not null"`
	Value     float64   `gorm:"type:numeric(10,2);not null"`
	IsActive  bool      `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (DiscountCodeModel) TableName() string { return "discount_codes" }
