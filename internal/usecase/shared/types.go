package shared

import (
	"studio-booking/internal/domain/reservation"
	"studio-booking/internal/domain/user"

	"github.com/google/uuid"
)

// ReservationSnapshot carries the aggregate plus the offer fields notifications need.
type ReservationSnapshot struct {
	Reservation   *reservation.Reservation
	OfferTitle    string
	OfferDuration string
}

type UserSnapshot struct {
	User *user.User
}

type OfferSnapshot struct {
	ID       uuid.UUID
	Title    string
	Duration string
}
