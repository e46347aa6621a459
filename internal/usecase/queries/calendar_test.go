//go:build unit

package queries_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"studio-booking/internal/infra"
	"studio-booking/internal/pkg/clock"
	"studio-booking/internal/pkg/config"
	"studio-booking/internal/pkg/errs"
	"studio-booking/internal/usecase/queries"
	queriesmock "studio-booking/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCalendarQueries_Feed(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2030, 6, 1, 9, 0, 0, 0, time.UTC)

	setup := func(t *testing.T, cfg config.Config) (*queriesmock.MockReservationReadStore, queries.CalendarQueries) {
		store := queriesmock.NewMockReservationReadStore(gomock.NewController(t))
		return store, queries.NewCalendarQueries(store, clock.NewMockClock(now), cfg)
	}

	t.Run("予約を状態つきのイベントにする", func(t *testing.T) {
		store, q := setup(t, config.NewTestConfig())
		pendingID, confirmedID := uuid.New(), uuid.New()
		store.EXPECT().ListForCalendar(ctx, time.Date(2030, 5, 1, 9, 0, 0, 0, time.UTC)).Return([]*queries.CalendarEntry{
			{
				ID: pendingID, Code: "abc123def4", Date: time.Date(2030, 6, 15, 12, 30, 0, 0, time.UTC),
				ClientName: "Anna Nowak", ClientEmail: "anna@example.test", ClientPhone: "600",
				Status: "pending", OfferTitle: "Sesja rodzinna", OfferDuration: "90 min",
			},
			{
				ID: confirmedID, Code: "zzzzzzzzz1", Date: time.Date(2030, 6, 20, 8, 0, 0, 0, time.UTC),
				ClientName: "Jan Kowalski", Status: "confirmed", OfferTitle: "Portret",
			},
		}, nil)

		body, err := q.Feed(ctx, "feed-token")
		require.NoError(t, err)

		lines := strings.Split(body, "\r\n")
		assert.Equal(t, "BEGIN:VCALENDAR", lines[0])
		assert.Equal(t, "END:VCALENDAR", lines[len(lines)-1])
		assert.Contains(t, lines, "METHOD:PUBLISH")
		assert.Contains(t, lines, "UID:"+pendingID.String()+"@example.test")
		assert.Contains(t, lines, "DTSTART:20300615T123000Z")
		assert.Contains(t, lines, "DTEND:20300615T140000Z")
		assert.Contains(t, lines, "SUMMARY:[Rezerwacja] Sesja rodzinna - Anna Nowak")
		assert.Contains(t, lines, "STATUS:TENTATIVE")
		assert.Contains(t, lines, "DTEND:20300620T090000Z")
		assert.Contains(t, lines, "STATUS:CONFIRMED")
		unfolded := strings.ReplaceAll(body, "\r\n ", "")
		assert.Contains(t, unfolded, `Kod: abc123def4\nStrona: http://localhost:3000/rezerwacja/abc123def4`)
		assert.Equal(t, 2, strings.Count(body, "BEGIN:VEVENT"))
	})

	t.Run("トークン不一致", func(t *testing.T) {
		_, q := setup(t, config.NewTestConfig())

		_, err := q.Feed(ctx, "feed-tokem")
		require.ErrorIs(t, err, errs.ErrCalendarTokenInvalid)
	})

	t.Run("トークン未設定なら常に拒否", func(t *testing.T) {
		cfg := config.NewTestConfig()
		cfg.Calendar.FeedToken = ""
		_, q := setup(t, cfg)

		_, err := q.Feed(ctx, "")
		require.ErrorIs(t, err, errs.ErrCalendarTokenInvalid)
	})

	t.Run("DB障害", func(t *testing.T) {
		store, q := setup(t, config.NewTestConfig())
		store.EXPECT().ListForCalendar(ctx, gomock.Any()).Return(nil, infra.WrapRepoErr("boom", nil, infra.KindDBFailure))

		_, err := q.Feed(ctx, "feed-token")
		require.True(t, errs.Is(err, errs.ErrDatabaseOperationFailed))
	})
}

func TestCalendarQueries_EventLinks(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2030, 6, 1, 9, 0, 0, 0, time.UTC)

	t.Run("リンクとICSを生成する", func(t *testing.T) {
		store := queriesmock.NewMockReservationReadStore(gomock.NewController(t))
		q := queries.NewCalendarQueries(store, clock.NewMockClock(now), config.NewTestConfig())
		id := uuid.New()
		store.EXPECT().FindByID(ctx, id).Return(&queries.ReservationDetailView{
			ID:    id,
			Code:  "abc123def4",
			Date:  time.Date(2030, 6, 15, 12, 30, 0, 0, time.UTC),
			Offer: queries.OfferSummaryView{Title: "Sesja rodzinna", Duration: "120"},
		}, nil)

		links, err := q.EventLinks(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "rezerwacja-abc123def4.ics", links.FileName)
		assert.True(t, strings.HasPrefix(links.GoogleURL, "https://www.google.com/calendar/render?"))
		assert.Contains(t, links.GoogleURL, "dates=20300615T123000Z%2F20300615T143000Z")
		assert.Contains(t, links.OutlookURL, "startdt=2030-06-15T12%3A30%3A00.000Z")
		assert.Contains(t, links.ICS, "DTSTAMP:20300601T090000Z")
		assert.Contains(t, links.ICS, "SUMMARY:Sesja: Sesja rodzinna - Studio")
		assert.NotContains(t, links.ICS, "METHOD:")
	})

	t.Run("存在しない予約", func(t *testing.T) {
		store := queriesmock.NewMockReservationReadStore(gomock.NewController(t))
		q := queries.NewCalendarQueries(store, clock.NewMockClock(now), config.NewTestConfig())
		id := uuid.New()
		store.EXPECT().FindByID(ctx, id).Return(nil, infra.WrapRepoErr("missing", nil, infra.KindNotFound))

		_, err := q.EventLinks(ctx, id)
		require.True(t, errs.Is(err, errs.ErrReservationNotFound))
	})
}
