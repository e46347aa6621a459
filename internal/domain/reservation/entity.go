package reservation

import (
	"errors"
	"strings"
	"time"

	"studio-booking/internal/pkg/patch"

	"github.com/google/uuid"
)

var (
	ErrInvalidCode        = errors.New("invalid reservation code")
	ErrInvalidStatus      = errors.New("invalid reservation status")
	ErrMissingOffer       = errors.New("offer is required")
	ErrMissingDate        = errors.New("date is required")
	ErrMissingClientName  = errors.New("client name is required")
	ErrInvalidClientEmail = errors.New("invalid client email")
	ErrMissingClientPhone = errors.New("client phone is required")
	ErrInvalidAnswers     = errors.New("answers must be an object of strings")
)

type Reservation struct {
	id                 uuid.UUID
	code               Code
	password           Password
	offerID            uuid.UUID
	date               time.Time
	contact            Contact
	answers            Answers
	status             Status
	totalPrice         *string
	discountCodeID     *uuid.UUID
	lastAdminTypingAt  *time.Time
	lastClientTypingAt *time.Time
	createdAt          time.Time
	updatedAt          time.Time
}

// NewReservation assigns a fresh code and password. Status always starts as pending.
func NewReservation(
	offerID uuid.UUID,
	date time.Time,
	contact Contact,
	answers Answers,
	totalPrice *string,
	discountCodeID *uuid.UUID,
) (*Reservation, error) {
	if offerID == uuid.Nil {
		return nil, ErrMissingOffer
	}
	if date.IsZero() {
		return nil, ErrMissingDate
	}

	code, err := NewCode()
	if err != nil {
		return nil, err
	}
	password, err := NewPassword()
	if err != nil {
		return nil, err
	}

	if answers == nil {
		answers = Answers{}
	}

	return &Reservation{
		id:             uuid.New(),
		code:           code,
		password:       password,
		offerID:        offerID,
		date:           date,
		contact:        contact,
		answers:        answers,
		status:         StatusPending,
		totalPrice:     normalizePrice(totalPrice),
		discountCodeID: discountCodeID,
	}, nil
}

func ReconstructReservation(
	id uuid.UUID,
	code Code,
	password Password,
	offerID uuid.UUID,
	date time.Time,
	contact Contact,
	answers Answers,
	status Status,
	totalPrice *string,
	discountCodeID *uuid.UUID,
	lastAdminTypingAt, lastClientTypingAt *time.Time,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:                 id,
		code:               code,
		password:           password,
		offerID:            offerID,
		date:               date,
		contact:            contact,
		answers:            answers,
		status:             status,
		totalPrice:         totalPrice,
		discountCodeID:     discountCodeID,
		lastAdminTypingAt:  lastAdminTypingAt,
		lastClientTypingAt: lastClientTypingAt,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
	}
}

// ChangeStatus allows any transition inside the enum.
func (r *Reservation) ChangeStatus(s Status) error {
	if !s.IsValid() {
		return ErrInvalidStatus
	}
	r.status = s
	return nil
}

type Details struct {
	Date        *time.Time
	TotalPrice  *string
	ClientName  *string
	ClientEmail *string
	ClientPhone *string
}

func (d Details) IsEmpty() bool {
	return d.Date == nil && d.TotalPrice == nil && d.ClientName == nil && d.ClientEmail == nil && d.ClientPhone == nil
}

// ApplyDetails reports whether the appointment date moved.
func (r *Reservation) ApplyDetails(d Details) (bool, error) {
	contact, err := NewContact(
		patch.Coalesce(d.ClientName, r.contact.name),
		patch.Coalesce(d.ClientEmail, r.contact.email),
		patch.Coalesce(d.ClientPhone, r.contact.phone),
	)
	if err != nil {
		return false, err
	}

	dateChanged := false
	if d.Date != nil {
		if d.Date.IsZero() {
			return false, ErrMissingDate
		}
		dateChanged = !d.Date.Equal(r.date)
		r.date = *d.Date
	}
	if d.TotalPrice != nil {
		r.totalPrice = normalizePrice(d.TotalPrice)
	}
	r.contact = contact
	return dateChanged, nil
}

func (r *Reservation) ID() uuid.UUID                  { return r.id }
func (r *Reservation) Code() Code                     { return r.code }
func (r *Reservation) Password() Password             { return r.password }
func (r *Reservation) OfferID() uuid.UUID             { return r.offerID }
func (r *Reservation) Date() time.Time                { return r.date }
func (r *Reservation) Contact() Contact               { return r.contact }
func (r *Reservation) Answers() Answers               { return r.answers }
func (r *Reservation) Status() Status                 { return r.status }
func (r *Reservation) TotalPrice() *string            { return r.totalPrice }
func (r *Reservation) DiscountCodeID() *uuid.UUID     { return r.discountCodeID }
func (r *Reservation) LastAdminTypingAt() *time.Time  { return r.lastAdminTypingAt }
func (r *Reservation) LastClientTypingAt() *time.Time { return r.lastClientTypingAt }
func (r *Reservation) CreatedAt() time.Time           { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time           { return r.updatedAt }

func normalizePrice(p *string) *string {
	if p == nil {
		return nil
	}
	s := strings.TrimSpace(*p)
	if s == "" {
		return nil
	}
	return &s
}
