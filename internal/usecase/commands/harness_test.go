//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"studio-booking/internal/domain/reservation"
	"studio-booking/internal/usecase/shared"
	sharedmock "studio-booking/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// uowHarness runs Within callbacks inline against mocked repositories.
type uowHarness struct {
	uow          *sharedmock.MockUnitOfWork
	tx           *sharedmock.MockTx
	reads        *sharedmock.MockCommandReads
	reservations *sharedmock.MockReservationRepository
	messages     *sharedmock.MockMessageRepository
	users        *sharedmock.MockUserRepository
	notifier     *sharedmock.MockNotifier
}

func newUoWHarness(t *testing.T) *uowHarness {
	t.Helper()
	ctrl := gomock.NewController(t)

	h := &uowHarness{
		uow:          sharedmock.NewMockUnitOfWork(ctrl),
		tx:           sharedmock.NewMockTx(ctrl),
		reads:        sharedmock.NewMockCommandReads(ctrl),
		reservations: sharedmock.NewMockReservationRepository(ctrl),
		messages:     sharedmock.NewMockMessageRepository(ctrl),
		users:        sharedmock.NewMockUserRepository(ctrl),
		notifier:     sharedmock.NewMockNotifier(ctrl),
	}

	h.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, h.tx)
		}).AnyTimes()
	h.uow.EXPECT().CommandReads().Return(h.reads).AnyTimes()

	h.tx.EXPECT().Reservations().Return(h.reservations).AnyTimes()
	h.tx.EXPECT().Messages().Return(h.messages).AnyTimes()
	h.tx.EXPECT().Users().Return(h.users).AnyTimes()
	h.tx.EXPECT().Reads().Return(h.reads).AnyTimes()
	h.tx.EXPECT().DB().Return(nil).AnyTimes()

	return h
}

func storedReservation(t *testing.T, id uuid.UUID, date time.Time) *shared.ReservationSnapshot {
	t.Helper()
	code, err := reservation.ParseCode("abc123def4")
	require.NoError(t, err)
	contact, err := reservation.NewContact("Anna Nowak", "anna@example.test", "+48 600 000 000")
	require.NoError(t, err)

	res := reservation.ReconstructReservation(
		id, code, reservation.ReconstructPassword("x1y2z3"), uuid.New(), date, contact,
		reservation.Answers{{Question: "Ile osób?", Answer: "3"}},
		reservation.StatusPending, nil, nil, nil, nil, date.Add(-48*time.Hour), date.Add(-48*time.Hour),
	)
	return &shared.ReservationSnapshot{Reservation: res, OfferTitle: "Sesja rodzinna", OfferDuration: "90"}
}
