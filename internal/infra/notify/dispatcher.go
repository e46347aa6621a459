package notify

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"studio-booking/internal/domain/message"
	"studio-booking/internal/infra/broker"
	"studio-booking/internal/infra/mailer"
	"studio-booking/internal/pkg/config"
	"studio-booking/internal/pkg/errs"
	"studio-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, payload any) error
}

// Dispatcher renders notification emails and mirrors each event to the broker.
// A nil publisher disables event publishing.
type Dispatcher struct {
	mail      mailer.Sender
	events    EventPublisher
	cfg       config.Config
	loc       *time.Location
	timeout   time.Duration
	adminMail string
}

func NewDispatcher(mail mailer.Sender, events EventPublisher, cfg config.Config) *Dispatcher {
	loc, err := time.LoadLocation(cfg.Calendar.TimeZone)
	if err != nil {
		slog.Warn("unknown calendar timezone, falling back to UTC", "timezone", cfg.Calendar.TimeZone)
		loc = time.UTC
	}
	timeout := cfg.Mail.SendTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Dispatcher{
		mail:      mail,
		events:    events,
		cfg:       cfg,
		loc:       loc,
		timeout:   timeout,
		adminMail: cfg.Mail.AdminRecipient(),
	}
}

var _ shared.Notifier = (*Dispatcher)(nil)

type reservationEvent struct {
	ReservationID uuid.UUID `json:"reservationId"`
	Code          string    `json:"code"`
	OfferTitle    string    `json:"offerTitle,omitempty"`
	Date          time.Time `json:"date"`
	Status        string    `json:"status,omitempty"`
	Sender        string    `json:"sender,omitempty"`
	OccurredAt    time.Time `json:"occurredAt"`
}

type pageData struct {
	Site         string
	ContactEmail string
	ContactPhone string
}

func (d *Dispatcher) page() pageData {
	return pageData{
		Site:         d.cfg.App.Domain,
		ContactEmail: d.cfg.Mail.From,
		ContactPhone: d.cfg.Mail.SitePhone,
	}
}

func (d *Dispatcher) ReservationCreated(ctx context.Context, ev shared.ReservationCreatedEvent) error {
	date := formatDateTime(ev.Date, d.loc)

	clientHTML, err := render(confirmationTmpl, struct {
		pageData
		ClientName, OfferTitle, Date, TotalPrice, Link, Password string
	}{d.page(), ev.ClientName, ev.OfferTitle, date, ev.TotalPrice, d.clientLink(ev.Code), ev.Password})
	if err != nil {
		return errs.Wrap(err, "render confirmation email")
	}

	adminHTML, err := render(adminNoticeTmpl, struct {
		ClientName, OfferTitle, Date, Link string
	}{ev.ClientName, ev.OfferTitle, date, d.baseURL() + "/admin/reservations"})
	if err != nil {
		return errs.Wrap(err, "render admin notice")
	}

	sendErr := errors.Join(
		d.send(ctx, mailer.Mail{
			To:      ev.ClientEmail,
			Subject: "Potwierdzenie Twojej rezerwacji - " + d.cfg.Mail.FromName,
			HTML:    clientHTML,
		}),
		d.send(ctx, mailer.Mail{
			To:      d.adminMail,
			Subject: "NOWA REZERWACJA - " + d.cfg.App.Domain,
			HTML:    adminHTML,
		}),
	)

	d.publish(ctx, broker.RoutingReservationCreated, reservationEvent{
		ReservationID: ev.ReservationID,
		Code:          ev.Code,
		OfferTitle:    ev.OfferTitle,
		Date:          ev.Date,
		Status:        "pending",
	})
	return sendErr
}

func (d *Dispatcher) StatusChanged(ctx context.Context, ev shared.StatusChangedEvent) error {
	style := styleFor(ev.Status)
	date := formatDate(ev.Date, d.loc)
	if ev.Status == shared.StatusDateChange {
		date = formatDateTime(ev.Date, d.loc)
	}

	html, err := render(statusTmpl, struct {
		pageData
		statusStyle
		Kind, ClientName, OfferTitle, Date string
	}{d.page(), style, ev.Status, ev.ClientName, ev.OfferTitle, date})
	if err != nil {
		return errs.Wrap(err, "render status email")
	}

	sendErr := d.send(ctx, mailer.Mail{
		To:      ev.ClientEmail,
		Subject: "Aktualizacja statusu rezerwacji: " + style.Label,
		HTML:    html,
	})

	d.publish(ctx, broker.RoutingStatusChanged, reservationEvent{
		ReservationID: ev.ReservationID,
		Code:          ev.Code,
		OfferTitle:    ev.OfferTitle,
		Date:          ev.Date,
		Status:        ev.Status,
	})
	return sendErr
}

// MessageSent emails the counterparty of the sender.
func (d *Dispatcher) MessageSent(ctx context.Context, ev shared.MessageSentEvent) error {
	var m mailer.Mail
	var heading, link string
	if ev.Sender == message.SenderClient {
		m.To = d.adminMail
		m.Subject = "Nowa wiadomość od klienta: " + ev.ClientName
		heading = "Nowa wiadomość od klienta " + ev.ClientName
		link = d.baseURL() + "/admin/reservations/" + ev.ReservationID.String()
	} else {
		m.To = ev.ClientEmail
		m.Subject = "Nowa wiadomość od " + d.cfg.Mail.FromName + " - Rezerwacja " + ev.Code
		heading = "Nowa wiadomość dotycząca rezerwacji " + ev.Code
		link = d.clientLink(ev.Code)
	}

	html, err := render(chatTmpl, struct {
		pageData
		Heading, Content, Link string
	}{d.page(), heading, ev.Content, link})
	if err != nil {
		return errs.Wrap(err, "render chat email")
	}
	m.HTML = html

	sendErr := d.send(ctx, m)

	d.publish(ctx, broker.RoutingMessageSent, reservationEvent{
		ReservationID: ev.ReservationID,
		Code:          ev.Code,
		Sender:        ev.Sender.String(),
	})
	return sendErr
}

func (d *Dispatcher) AdminPasswordChanged(ctx context.Context, ev shared.PasswordChangedEvent) error {
	html, err := render(passwordChangedTmpl, struct {
		pageData
		Link string
	}{d.page(), d.baseURL() + "/admin/login"})
	if err != nil {
		return errs.Wrap(err, "render password email")
	}

	return d.send(ctx, mailer.Mail{
		To:      ev.Recipient,
		Subject: "Ważne: Zmiana hasła do panelu administratora",
		HTML:    html,
	})
}

func (d *Dispatcher) send(ctx context.Context, m mailer.Mail) error {
	if strings.TrimSpace(m.To) == "" {
		return errs.New("mail recipient is empty")
	}
	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	if err := d.mail.Send(ctx, m); err != nil {
		slog.ErrorContext(ctx, "email sending failed", "to", m.To, "subject", m.Subject, "error", err.Error())
		return err
	}
	return nil
}

func (d *Dispatcher) publish(ctx context.Context, routingKey string, ev reservationEvent) {
	if d.events == nil {
		return
	}
	ev.OccurredAt = time.Now().UTC()

	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	if err := d.events.Publish(ctx, routingKey, ev); err != nil {
		slog.WarnContext(ctx, "event publish failed", "routing_key", routingKey, "error", err.Error())
	}
}

func (d *Dispatcher) clientLink(code string) string {
	return d.baseURL() + "/rezerwacja/" + code
}

func (d *Dispatcher) baseURL() string {
	return strings.TrimRight(d.cfg.App.BaseURL, "/")
}
