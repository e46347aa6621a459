package queries

import (
	"context"
	"crypto/subtle"
	"fmt"
	"strings"

	"studio-booking/internal/domain/reservation"
	"studio-booking/internal/pkg/clock"
	"studio-booking/internal/pkg/config"
	"studio-booking/internal/pkg/errs"
	"studio-booking/internal/pkg/ical"

	"github.com/google/uuid"
)

type CalendarQueries interface {
	// Feed renders the admin subscription feed. The token must equal CALENDAR_FEED_TOKEN.
	Feed(ctx context.Context, token string) (string, error)
	EventLinks(ctx context.Context, reservationID uuid.UUID) (*CalendarLinks, error)
}

type calendarQueriesImpl struct {
	reservations ReservationReadStore
	clock        clock.Clock
	cfg          config.Config
}

func NewCalendarQueries(reservations ReservationReadStore, clk clock.Clock, cfg config.Config) CalendarQueries {
	return &calendarQueriesImpl{
		reservations: reservations,
		clock:        clk,
		cfg:          cfg,
	}
}

func (q *calendarQueriesImpl) Feed(ctx context.Context, token string) (string, error) {
	expected := q.cfg.Calendar.FeedToken
	if expected == "" || token == "" || subtle.ConstantTimeCompare([]byte(token), []byte(expected)) != 1 {
		return "", errs.ErrCalendarTokenInvalid
	}

	now := q.clock.Now()
	entries, err := q.reservations.ListForCalendar(ctx, now.AddDate(0, -1, 0))
	if err != nil {
		return "", errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	cal := ical.Calendar{
		ProdID:   q.prodID(),
		Method:   "PUBLISH",
		Name:     q.cfg.Calendar.Name,
		TimeZone: q.cfg.Calendar.TimeZone,
		Events:   make([]ical.Event, 0, len(entries)),
	}
	for _, e := range entries {
		status := ical.StatusTentative
		if e.Status == string(reservation.StatusConfirmed) {
			status = ical.StatusConfirmed
		}
		cal.Events = append(cal.Events, ical.Event{
			UID:     fmt.Sprintf("%s@%s", e.ID, q.cfg.App.Domain),
			Stamp:   now,
			Start:   e.Date,
			End:     ical.EndFor(e.Date, e.OfferDuration),
			Summary: fmt.Sprintf("[Rezerwacja] %s - %s", e.OfferTitle, e.ClientName),
			Description: strings.Join([]string{
				"Klient: " + e.ClientName,
				"Email: " + e.ClientEmail,
				"Telefon: " + e.ClientPhone,
				"Kod: " + e.Code,
				"Strona: " + q.managementLink(e.Code),
			}, "\n"),
			Status: status,
		})
	}
	return cal.Render(), nil
}

func (q *calendarQueriesImpl) EventLinks(ctx context.Context, reservationID uuid.UUID) (*CalendarLinks, error) {
	res, err := q.reservations.FindByID(ctx, reservationID)
	if err != nil {
		return nil, mapNotFound(err, errs.ErrReservationNotFound)
	}

	event := ical.Event{
		UID:     fmt.Sprintf("%s@%s", res.ID, q.cfg.App.Domain),
		Start:   res.Date,
		End:     ical.EndFor(res.Date, res.Offer.Duration),
		Summary: fmt.Sprintf("Sesja: %s - %s", res.Offer.Title, q.cfg.Calendar.Owner),
		Description: fmt.Sprintf("Twoja rezerwacja na sesję: %s.\nLink do zarządzania: %s",
			res.Offer.Title, q.managementLink(res.Code)),
	}

	return &CalendarLinks{
		GoogleURL:  ical.GoogleURL(event),
		OutlookURL: ical.OutlookURL(event),
		ICS:        ical.SingleEvent(q.prodID(), event, q.clock.Now()),
		FileName:   fmt.Sprintf("rezerwacja-%s.ics", res.Code),
	}, nil
}

func (q *calendarQueriesImpl) prodID() string {
	return fmt.Sprintf("-//%s//NONSGML Calendar//EN", q.cfg.Calendar.Owner)
}

func (q *calendarQueriesImpl) managementLink(code string) string {
	return strings.TrimRight(q.cfg.App.BaseURL, "/") + "/rezerwacja/" + code
}
