package request

import (
	"strings"
	"time"

	"studio-booking/internal/domain/reservation"
	"studio-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

// formLocation interprets booking-form dates sent without an offset.
var formLocation = mustLoadLocation("Europe/Warsaw")

var ErrInvalidDate = errs.New("invalid date")

type CreateReservationRequest struct {
	OfferID        uuid.UUID           `json:"offerId" binding:"required"`
	Date           string              `json:"date" binding:"required"`
	ClientName     string              `json:"clientName" binding:"required"`
	ClientEmail    string              `json:"clientEmail" binding:"required,email"`
	ClientPhone    string              `json:"clientPhone" binding:"required"`
	Answers        reservation.Answers `json:"answers"`
	DiscountCodeID *uuid.UUID          `json:"discountCodeId,omitempty"`
	FinalPrice     *string             `json:"finalPrice,omitempty"`
}

type AccessRequest struct {
	Password string `json:"password" binding:"required"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type UpdateDetailsRequest struct {
	Date         *string `json:"date,omitempty"`
	TotalPrice   *string `json:"totalPrice,omitempty"`
	ClientName   *string `json:"clientName,omitempty"`
	ClientEmail  *string `json:"clientEmail,omitempty" binding:"omitempty,email"`
	ClientPhone  *string `json:"clientPhone,omitempty"`
	NotifyClient bool    `json:"notifyClient"`
}

// ParseDate accepts RFC 3339 and the offset-less "datetime-local" form.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	for _, layout := range []string{"2006-01-02T15:04:05", "2006-01-02T15:04"} {
		if t, err := time.ParseInLocation(layout, s, formLocation); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidDate
}

func mustLoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}
