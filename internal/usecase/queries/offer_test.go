//go:build unit

package queries_test

import (
	"context"
	"testing"

	"studio-booking/internal/infra"
	"studio-booking/internal/pkg/errs"
	"studio-booking/internal/usecase/queries"
	queriesmock "studio-booking/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCatalogQueries_VerifyDiscountCode(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*queriesmock.MockCatalogReadStore, queries.CatalogQueries) {
		store := queriesmock.NewMockCatalogReadStore(gomock.NewController(t))
		return store, queries.NewCatalogQueries(store)
	}

	t.Run("有効なコード", func(t *testing.T) {
		store, q := setup(t)
		id := uuid.New()
		store.EXPECT().FindActiveDiscountByCode(ctx, "LATO10").
			Return(&queries.DiscountCodeView{ID: id, Code: "LATO10", Type: "percentage", Value: 10, IsActive: true}, nil)

		got, err := q.VerifyDiscountCode(ctx, " LATO10 ")
		require.NoError(t, err)
		assert.Equal(t, &queries.DiscountVerification{Valid: true, Type: "percentage", Value: 10, ID: &id}, got)
	})

	t.Run("未知のコードはエラーではなく無効", func(t *testing.T) {
		store, q := setup(t)
		store.EXPECT().FindActiveDiscountByCode(ctx, "lato10").
			Return(nil, infra.WrapRepoErr("discount", nil, infra.KindNotFound))

		got, err := q.VerifyDiscountCode(ctx, "lato10")
		require.NoError(t, err)
		assert.False(t, got.Valid)
		assert.Equal(t, "Kod nieprawidłowy lub wygasł.", got.Message)
		assert.Nil(t, got.ID)
	})

	t.Run("空のコードはDBを引かない", func(t *testing.T) {
		_, q := setup(t)

		got, err := q.VerifyDiscountCode(ctx, "   ")
		require.NoError(t, err)
		assert.False(t, got.Valid)
	})

	t.Run("DB障害", func(t *testing.T) {
		store, q := setup(t)
		store.EXPECT().FindActiveDiscountByCode(ctx, "X").Return(nil, infra.WrapRepoErr("boom", nil, infra.KindDBFailure))

		_, err := q.VerifyDiscountCode(ctx, "X")
		require.True(t, errs.Is(err, errs.ErrDatabaseOperationFailed))
	})
}

func TestCatalogQueries_GetOffer(t *testing.T) {
	ctx := context.Background()

	t.Run("存在しないオファー", func(t *testing.T) {
		store := queriesmock.NewMockCatalogReadStore(gomock.NewController(t))
		id := uuid.New()
		store.EXPECT().FindOfferByID(ctx, id).Return(nil, infra.WrapRepoErr("offer", nil, infra.KindNotFound))

		_, err := queries.NewCatalogQueries(store).GetOffer(ctx, id)
		require.True(t, errs.Is(err, errs.ErrOfferNotFound))
	})
}
