package bootstrap

import (
	"studio-booking/internal/infra/mailer"
	"studio-booking/internal/infra/notify"
	"studio-booking/internal/pkg/config"
	"studio-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var MailModule = fx.Module("mail",
	fx.Provide(
		NewMailer,
		fx.Annotate(
			notify.NewDispatcher,
			fx.As(new(shared.Notifier)),
		),
	),
)

func NewMailer(cfg config.Config) (mailer.Sender, error) {
	return mailer.New(cfg.Mail)
}
