package queries

import (
	"time"

	"studio-booking/internal/domain/reservation"

	"github.com/google/uuid"
)

type OfferSummaryView struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Category  string    `json:"category"`
	Price     string    `json:"price"`
	Duration  string    `json:"duration"`
	ImageURL  string    `json:"imageUrl"`
	Questions []string  `json:"questions"`
}

type MessageView struct {
	ID        uuid.UUID `json:"id"`
	Sender    string    `json:"sender"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

type TypingView struct {
	LastAdminTypingAt  *time.Time `json:"lastAdminTypingAt"`
	LastClientTypingAt *time.Time `json:"lastClientTypingAt"`
	CounterpartTyping  bool       `json:"counterpartTyping"`
}

// ReservationDetailView never carries the access password.
type ReservationDetailView struct {
	ID             uuid.UUID           `json:"id"`
	Code           string              `json:"code"`
	Date           time.Time           `json:"date"`
	ClientName     string              `json:"clientName"`
	ClientEmail    string              `json:"clientEmail"`
	ClientPhone    string              `json:"clientPhone"`
	Answers        reservation.Answers `json:"answers"`
	Status         string              `json:"status"`
	TotalPrice     *string             `json:"totalPrice"`
	DiscountCodeID *uuid.UUID          `json:"discountCodeId,omitempty"`
	CreatedAt      time.Time           `json:"createdAt"`
	UpdatedAt      time.Time           `json:"updatedAt"`
	Offer          OfferSummaryView    `json:"offer"`
	Messages       []*MessageView      `json:"messages"`
	Typing         TypingView          `json:"typing"`
}

type ReservationListItem struct {
	ID          uuid.UUID `json:"id"`
	Code        string    `json:"code"`
	Date        time.Time `json:"date"`
	ClientName  string    `json:"clientName"`
	ClientEmail string    `json:"clientEmail"`
	ClientPhone string    `json:"clientPhone"`
	Status      string    `json:"status"`
	TotalPrice  *string   `json:"totalPrice"`
	OfferTitle  string    `json:"offerTitle"`
	CreatedAt   time.Time `json:"createdAt"`
}

type CalendarEntry struct {
	ID            uuid.UUID
	Code          string
	Date          time.Time
	ClientName    string
	ClientEmail   string
	ClientPhone   string
	Status        string
	OfferTitle    string
	OfferDuration string
}

type ChatView struct {
	Messages []*MessageView `json:"messages"`
	Typing   TypingView     `json:"typing"`
}

type CalendarLinks struct {
	GoogleURL  string `json:"googleUrl"`
	OutlookURL string `json:"outlookUrl"`
	ICS        string `json:"ics"`
	FileName   string `json:"fileName"`
}

type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}

type OfferView struct {
	ID          uuid.UUID `json:"id"`
	Category    string    `json:"category"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       string    `json:"price"`
	Features    []string  `json:"features"`
	Duration    string    `json:"duration"`
	ImageURL    string    `json:"imageUrl"`
	Questions   []string  `json:"questions"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type DiscountCodeView struct {
	ID        uuid.UUID `json:"id"`
	Code      string    `json:"code"`
	Type      string    `json:"type"`
	Value     float64   `json:"value"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

type DiscountVerification struct {
	Valid   bool       `json:"valid"`
	Type    string     `json:"type,omitempty"`
	Value   float64    `json:"value,omitempty"`
	ID      *uuid.UUID `json:"id,omitempty"`
	Message string     `json:"message,omitempty"`
}
