package bootstrap

import (
	"studio-booking/internal/infra/catalog"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var CatalogDBModule = fx.Module("catalogdb",
	fx.Provide(
		NewCatalogDB,
	),
)

// NewCatalogDB shares the pgx pool, so closing the pool on stop covers gorm too.
func NewCatalogDB(pool *pgxpool.Pool) (*gorm.DB, error) {
	return catalog.Open(pool)
}
