//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"studio-booking/internal/domain/message"
	"studio-booking/internal/domain/reservation"
	"studio-booking/internal/infra"
	sqlc "studio-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockReservationWriteQueries struct {
	mock.Mock
}

func (m *MockReservationWriteQueries) CreateReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReservationParams) (uuid.UUID, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockReservationWriteQueries) UpdateReservationStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateReservationStatusParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReservationWriteQueries) UpdateReservationDetails(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateReservationDetailsParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReservationWriteQueries) DeleteReservation(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReservationWriteQueries) TouchAdminTyping(ctx context.Context, db sqlc.DBTX, arg sqlc.TouchAdminTypingParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReservationWriteQueries) TouchClientTyping(ctx context.Context, db sqlc.DBTX, arg sqlc.TouchClientTypingParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func newTestReservation(t *testing.T) *reservation.Reservation {
	t.Helper()
	contact, err := reservation.NewContact("Anna Nowak", "anna@example.test", "+48 600 000 000")
	require.NoError(t, err)
	answers := reservation.Answers{{Question: "Ile osób?", Answer: "2"}}
	res, err := reservation.NewReservation(uuid.New(), time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC), contact, answers, nil, nil)
	require.NoError(t, err)
	return res
}

func TestReservationRepository_Create(t *testing.T) {
	res := newTestReservation(t)

	t.Run("パラメータが正しく変換される", func(t *testing.T) {
		q := new(MockReservationWriteQueries)
		q.On("CreateReservation", mock.Anything, mock.Anything, mock.MatchedBy(func(p sqlc.CreateReservationParams) bool {
			return p.Code == res.Code().Value() &&
				p.Password == res.Password().Value() &&
				p.Status == "pending" &&
				p.Answers == `{"Ile osób?":"2"}` &&
				!p.TotalPrice.Valid &&
				!p.DiscountCodeID.Valid
		})).Return(res.ID(), nil)

		id, err := NewReservationRepository(q).Create(context.Background(), nil, res)

		require.NoError(t, err)
		assert.Equal(t, res.ID(), id)
		q.AssertExpectations(t)
	})

	t.Run("コード重複はDUPLICATE_KEYになる", func(t *testing.T) {
		q := new(MockReservationWriteQueries)
		q.On("CreateReservation", mock.Anything, mock.Anything, mock.Anything).
			Return(uuid.Nil, &pgconn.PgError{Code: "23505"})

		_, err := NewReservationRepository(q).Create(context.Background(), nil, res)

		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
	})
}

func TestReservationRepository_UpdateStatus(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name     string
		affected int64
		err      error
		wantKind infra.RepositoryErrorKind
	}{
		{name: "success", affected: 1},
		{name: "not found", affected: 0, wantKind: infra.KindNotFound},
		{name: "database error", err: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := new(MockReservationWriteQueries)
			q.On("UpdateReservationStatus", mock.Anything, mock.Anything, sqlc.UpdateReservationStatusParams{
				ID:     id,
				Status: "confirmed",
			}).Return(tt.affected, tt.err)

			err := NewReservationRepository(q).UpdateStatus(context.Background(), nil, id, reservation.StatusConfirmed)

			if tt.wantKind != "" {
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestReservationRepository_TouchTyping(t *testing.T) {
	id := uuid.New()
	now := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	cutoff := now.Add(-2 * time.Second)

	t.Run("管理者はadmin列を更新する", func(t *testing.T) {
		q := new(MockReservationWriteQueries)
		q.On("TouchAdminTyping", mock.Anything, mock.Anything, mock.Anything).Return(int64(1), nil)

		ok, err := NewReservationRepository(q).TouchTyping(context.Background(), nil, id, message.SenderAdmin, now, cutoff)

		require.NoError(t, err)
		assert.True(t, ok)
		q.AssertNotCalled(t, "TouchClientTyping", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("デバウンス中は記録されない", func(t *testing.T) {
		q := new(MockReservationWriteQueries)
		q.On("TouchClientTyping", mock.Anything, mock.Anything, mock.Anything).Return(int64(0), nil)

		ok, err := NewReservationRepository(q).TouchTyping(context.Background(), nil, id, message.SenderClient, now, cutoff)

		require.NoError(t, err)
		assert.False(t, ok)
	})
}
