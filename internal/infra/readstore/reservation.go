package readstore

import (
	"context"
	"encoding/json"
	"time"

	"studio-booking/internal/domain/reservation"
	"studio-booking/internal/infra"
	sqlc "studio-booking/internal/infra/sqlc/generated"
	"studio-booking/internal/pkg/pgconv"
	"studio-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReservationViewQueries interface {
	GetReservationByCode(ctx context.Context, db sqlc.DBTX, code string) (sqlc.GetReservationByCodeRow, error)
	GetReservationByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetReservationByIDRow, error)
	GetReservationAccessByCode(ctx context.Context, db sqlc.DBTX, code string) (sqlc.GetReservationAccessByCodeRow, error)
	ListReservations(ctx context.Context, db sqlc.DBTX) ([]sqlc.ListReservationsRow, error)
	ListCalendarReservations(ctx context.Context, db sqlc.DBTX, date pgtype.Timestamptz) ([]sqlc.ListCalendarReservationsRow, error)
}

type ReservationReadStore struct {
	queries ReservationViewQueries
	db      sqlc.DBTX
}

func NewReservationReadStore(queries ReservationViewQueries, db sqlc.DBTX) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
	}
}

// FindByCode also returns the stored password so the caller can gate access.
func (r *ReservationReadStore) FindByCode(ctx context.Context, code string) (*queries.ReservationDetailView, string, error) {
	row, err := r.queries.GetReservationByCode(ctx, r.db, code)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find reservation by code", err)
	}

	view, err := toDetailView(sqlc.GetReservationByIDRow(row))
	if err != nil {
		return nil, "", infra.WrapRepoErr("failed to decode reservation", err)
	}
	return view, row.Password, nil
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationDetailView, error) {
	row, err := r.queries.GetReservationByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}

	view, err := toDetailView(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode reservation", err)
	}
	return view, nil
}

func (r *ReservationReadStore) FindAccessByCode(ctx context.Context, code string) (uuid.UUID, string, error) {
	row, err := r.queries.GetReservationAccessByCode(ctx, r.db, code)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return uuid.Nil, "", infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return uuid.Nil, "", infra.WrapRepoErr("failed to find reservation access", err)
	}
	return row.ID, row.Password, nil
}

func (r *ReservationReadStore) List(ctx context.Context) ([]*queries.ReservationListItem, error) {
	rows, err := r.queries.ListReservations(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}

	result := make([]*queries.ReservationListItem, len(rows))
	for i, row := range rows {
		result[i] = &queries.ReservationListItem{
			ID:          row.ID,
			Code:        row.Code,
			Date:        pgconv.TimeFromPgtype(row.Date),
			ClientName:  row.ClientName,
			ClientEmail: row.ClientEmail,
			ClientPhone: row.ClientPhone,
			Status:      row.Status,
			TotalPrice:  pgconv.StringPtrFromPgtype(row.TotalPrice),
			OfferTitle:  row.OfferTitle,
			CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return result, nil
}

// ListForCalendar returns non-cancelled reservations dated at or after since.
func (r *ReservationReadStore) ListForCalendar(ctx context.Context, since time.Time) ([]*queries.CalendarEntry, error) {
	rows, err := r.queries.ListCalendarReservations(ctx, r.db, pgconv.TimeToPgtype(since))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list calendar reservations", err)
	}

	result := make([]*queries.CalendarEntry, len(rows))
	for i, row := range rows {
		result[i] = &queries.CalendarEntry{
			ID:            row.ID,
			Code:          row.Code,
			Date:          pgconv.TimeFromPgtype(row.Date),
			ClientName:    row.ClientName,
			ClientEmail:   row.ClientEmail,
			ClientPhone:   row.ClientPhone,
			Status:        row.Status,
			OfferTitle:    row.OfferTitle,
			OfferDuration: row.OfferDuration,
		}
	}
	return result, nil
}

func toDetailView(row sqlc.GetReservationByIDRow) (*queries.ReservationDetailView, error) {
	answers, err := reservation.DecodeAnswers(row.Answers)
	if err != nil {
		return nil, err
	}

	return &queries.ReservationDetailView{
		ID:             row.ID,
		Code:           row.Code,
		Date:           pgconv.TimeFromPgtype(row.Date),
		ClientName:     row.ClientName,
		ClientEmail:    row.ClientEmail,
		ClientPhone:    row.ClientPhone,
		Answers:        answers,
		Status:         row.Status,
		TotalPrice:     pgconv.StringPtrFromPgtype(row.TotalPrice),
		DiscountCodeID: pgconv.UUIDPtrFromPgtype(row.DiscountCodeID),
		CreatedAt:      pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:      pgconv.TimeFromPgtype(row.UpdatedAt),
		Offer: queries.OfferSummaryView{
			ID:        row.OfferID,
			Title:     row.OfferTitle,
			Category:  row.OfferCategory,
			Price:     row.OfferPrice,
			Duration:  row.OfferDuration,
			ImageURL:  row.OfferImageUrl,
			Questions: decodeStringList(row.OfferQuestions),
		},
		Messages: []*queries.MessageView{},
		Typing: queries.TypingView{
			LastAdminTypingAt:  pgconv.TimePtrFromPgtype(row.LastAdminTypingAt),
			LastClientTypingAt: pgconv.TimePtrFromPgtype(row.LastClientTypingAt),
		},
	}, nil
}

// decodeStringList reads the JSON text columns of the offer table; malformed text yields an empty list.
func decodeStringList(s string) []string {
	out := []string{}
	if s == "" {
		return out
	}
	if err := json.Unmarshal([]byte(s), &out); err != nil {
		return []string{}
	}
	return out
}
