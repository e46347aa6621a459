package converter

import (
	"studio-booking/internal/domain/message"
	"studio-booking/internal/domain/reservation"
	"studio-booking/internal/domain/user"
	sqlc "studio-booking/internal/infra/sqlc/generated"
	"studio-booking/internal/pkg/errs"
	"studio-booking/internal/pkg/pgconv"
)

func ReservationToCreateParams(res *reservation.Reservation) (sqlc.CreateReservationParams, error) {
	answers, err := res.Answers().Encode()
	if err != nil {
		return sqlc.CreateReservationParams{}, errs.Wrap(err, "failed to encode answers")
	}

	contact := res.Contact()
	return sqlc.CreateReservationParams{
		Code:           res.Code().Value(),
		Password:       res.Password().Value(),
		OfferID:        res.OfferID(),
		Date:           pgconv.TimeToPgtype(res.Date()),
		ClientName:     contact.Name(),
		ClientEmail:    contact.Email(),
		ClientPhone:    contact.Phone(),
		Answers:        answers,
		Status:         res.Status().String(),
		TotalPrice:     pgconv.StringPtrToPgtype(res.TotalPrice()),
		DiscountCodeID: pgconv.UUIDPtrToPgtype(res.DiscountCodeID()),
	}, nil
}

func ReservationToDetailsParams(res *reservation.Reservation) sqlc.UpdateReservationDetailsParams {
	contact := res.Contact()
	return sqlc.UpdateReservationDetailsParams{
		ID:          res.ID(),
		Date:        pgconv.TimeToPgtype(res.Date()),
		TotalPrice:  pgconv.StringPtrToPgtype(res.TotalPrice()),
		ClientName:  contact.Name(),
		ClientEmail: contact.Email(),
		ClientPhone: contact.Phone(),
	}
}

// ReservationFromRow rebuilds the aggregate from the offer-joined row.
func ReservationFromRow(row sqlc.GetReservationByIDRow) (*reservation.Reservation, error) {
	code, err := reservation.ParseCode(row.Code)
	if err != nil {
		return nil, errs.Wrap(err, "stored reservation code is invalid")
	}
	answers, err := reservation.DecodeAnswers(row.Answers)
	if err != nil {
		return nil, errs.Wrap(err, "stored reservation answers are invalid")
	}
	contact, err := reservation.NewContact(row.ClientName, row.ClientEmail, row.ClientPhone)
	if err != nil {
		return nil, errs.Wrap(err, "stored reservation contact is invalid")
	}

	return reservation.ReconstructReservation(
		row.ID,
		code,
		reservation.ReconstructPassword(row.Password),
		row.OfferID,
		pgconv.TimeFromPgtype(row.Date),
		contact,
		answers,
		reservation.Status(row.Status),
		pgconv.StringPtrFromPgtype(row.TotalPrice),
		pgconv.UUIDPtrFromPgtype(row.DiscountCodeID),
		pgconv.TimePtrFromPgtype(row.LastAdminTypingAt),
		pgconv.TimePtrFromPgtype(row.LastClientTypingAt),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func MessageFromRow(row sqlc.ReservationMessage) *message.Message {
	return message.ReconstructMessage(
		row.ID,
		row.ReservationID,
		message.Sender(row.Sender),
		row.Content,
		pgconv.TimeFromPgtype(row.CreatedAt),
	)
}

func UserFromRow(row sqlc.User) (*user.User, error) {
	email, err := user.NewEmail(row.Email)
	if err != nil {
		return nil, errs.Wrap(err, "stored user email is invalid")
	}
	return user.ReconstructUser(
		row.ID,
		email,
		row.PasswordHash,
		user.Role(row.Role),
		row.IsActive,
		pgconv.TimePtrFromPgtype(row.LastLogin),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
