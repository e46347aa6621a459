package mailer

import (
	"context"
	"log/slog"

	"studio-booking/internal/pkg/config"
	"studio-booking/internal/pkg/errs"

	"github.com/wneessen/go-mail"
)

type Mail struct {
	To      string
	Subject string
	HTML    string
}

type Sender interface {
	Send(ctx context.Context, m Mail) error
}

type SMTPMailer struct {
	client   *mail.Client
	from     string
	fromName string
}

// New returns an SMTP sender, or a logging sender when EMAIL_SERVER_HOST is empty.
func New(cfg config.MailConfig) (Sender, error) {
	if cfg.Host == "" {
		slog.Warn("EMAIL_SERVER_HOST not set, outgoing mail will only be logged")
		return &LogMailer{}, nil
	}

	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithTimeout(cfg.SendTimeout),
	}
	if cfg.Port == 465 {
		opts = append(opts, mail.WithSSL())
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSOpportunistic))
	}
	if cfg.User != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.User),
			mail.WithPassword(cfg.Password),
		)
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, errs.Wrap(err, "failed to create mail client")
	}

	return &SMTPMailer{
		client:   client,
		from:     cfg.From,
		fromName: cfg.FromName,
	}, nil
}

func (s *SMTPMailer) Send(ctx context.Context, m Mail) error {
	msg := mail.NewMsg()
	if err := msg.FromFormat(s.fromName, s.from); err != nil {
		return errs.Wrap(err, "invalid sender address")
	}
	if err := msg.To(m.To); err != nil {
		return errs.Wrap(err, "invalid recipient address")
	}
	msg.Subject(m.Subject)
	msg.SetBodyString(mail.TypeTextHTML, m.HTML)

	if err := s.client.DialAndSendWithContext(ctx, msg); err != nil {
		return errs.Wrap(err, "failed to send mail")
	}
	return nil
}

type LogMailer struct{}

func (l *LogMailer) Send(ctx context.Context, m Mail) error {
	slog.InfoContext(ctx, "mail not sent (no SMTP host)", "to", m.To, "subject", m.Subject)
	return nil
}
