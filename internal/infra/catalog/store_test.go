//go:build unit

package catalog

import (
	"context"
	"testing"

	domaincatalog "studio-booking/internal/domain/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newDryRunStore builds statements without a server and records the last INSERT.
func newDryRunStore(t *testing.T) (*Store, *[]any) {
	t.Helper()
	db, err := gorm.Open(postgres.New(postgres.Config{DSN: "host=localhost user=test dbname=test sslmode=disable"}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
		Logger:               logger.Discard,
	})
	require.NoError(t, err)

	var vars []any
	err = db.Callback().Create().After("gorm:create").Register("test:capture", func(tx *gorm.DB) {
		vars = append([]any(nil), tx.Statement.Vars...)
	})
	require.NoError(t, err)

	return NewStore(db), &vars
}

func TestStore_CreateDiscountCode(t *testing.T) {
	tests := []struct {
		name     string
		isActive bool
	}{
		{name: "無効なコードは無効のまま保存される", isActive: false},
		{name: "有効なコード", isActive: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, vars := newDryRunStore(t)
			code, err := domaincatalog.NewDiscountCode("LATO", "percentage", 10, tt.isActive)
			require.NoError(t, err)

			_, err = store.CreateDiscountCode(context.Background(), code)
			require.NoError(t, err)

			assert.Contains(t, *vars, tt.isActive)
			assert.NotContains(t, *vars, !tt.isActive)
		})
	}
}
