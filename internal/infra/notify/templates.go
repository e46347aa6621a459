package notify

import (
	"bytes"
	"html/template"
	"time"
)

const footer = `
    <hr style="border: 0; border-top: 1px solid #eee; margin: 30px 0;" />
    <p style="font-size: 12px; color: #999; text-align: center;">Ta wiadomość została wysłana automatycznie przez system rezerwacji {{.Site}}</p>`

const contact = `
    <p>W razie pytań, prosimy o kontakt:<br/>
    Email: {{.ContactEmail}}<br/>
    Telefon: {{.ContactPhone}}</p>`

var confirmationTmpl = template.Must(template.New("confirmation").Parse(`
<div style="font-family: sans-serif; max-width: 600px; margin: 0 auto; color: #333;">
    <h2 style="color: #E63946;">Dziękujemy za rezerwację!</h2>
    <p>Cześć <strong>{{.ClientName}}</strong>,</p>
    <p>Twoja rezerwacja na usługę <strong>{{.OfferTitle}}</strong> została przyjęta do systemu.</p>
    <div style="background-color: #f8f9fa; padding: 20px; border-radius: 10px; margin: 20px 0;">
        <p style="margin: 0;"><strong>Termin:</strong> {{.Date}}</p>
        <p style="margin: 5px 0 0;"><strong>Kwota:</strong> {{.TotalPrice}}</p>
    </div>
    <p>Obecnie rezerwacja ma status <strong>Oczekująca</strong>. Wyślemy Ci kolejne powiadomienie, gdy tylko potwierdzimy termin.</p>
    <div style="text-align: center; margin: 30px 0;">
        <a href="{{.Link}}" style="background-color: #333; color: #fff; padding: 12px 25px; border-radius: 5px; text-decoration: none; font-weight: bold;">Zarządzaj swoją rezerwacją</a>
        <p style="font-size: 14px; color: #333; margin-top: 15px;">Twoje hasło do strony: <strong style="font-size: 18px; color: #E63946;">{{.Password}}</strong></p>
        <p style="font-size: 12px; color: #666; margin-top: 5px;">Hasło będzie potrzebne do zalogowania się na stronie zarządzania.</p>
    </div>` + contact + footer + `
</div>`))

var adminNoticeTmpl = template.Must(template.New("admin_notice").Parse(
	`<h3>Nowa rezerwacja od: {{.ClientName}}</h3><p>Usługa: {{.OfferTitle}}</p><p>Data: {{.Date}}</p><p>Link do panelu: <a href="{{.Link}}">{{.Link}}</a></p>`))

var statusTmpl = template.Must(template.New("status").Parse(`
<div style="font-family: sans-serif; max-width: 600px; margin: 0 auto; color: #333;">
    <h2 style="color: {{.Color}};">Aktualizacja Twojej rezerwacji</h2>
    <p>Cześć <strong>{{.ClientName}}</strong>,</p>
    <p>Informujemy, że status Twojej rezerwacji na usługę <strong>{{.OfferTitle}}</strong> (termin: {{.Date}}) został zmieniony na:</p>
    <div style="background-color: #f8f9fa; padding: 20px; border-radius: 10px; margin: 20px 0; border-left: 5px solid {{.Color}};">
        <p style="margin: 0; font-size: 18px; font-weight: bold; color: {{.Color}};"><strong>STATUS: {{.Label}}</strong></p>
    </div>
    <p>{{if eq .Kind "confirmed"}}Cieszymy się, że będziemy mogli współpracować! Twój termin został oficjalnie zarezerwowany.{{else if eq .Kind "cancelled"}}Z przykrością informujemy, że Twoja rezerwacja została anulowana. Jeśli masz pytania, skontaktuj się z nami.{{else if eq .Kind "date_change"}}Twój termin sesji został zaktualizowany. Nowy termin to: <strong>{{.Date}}</strong>.{{else}}Status Twojej rezerwacji uległ zmianie.{{end}}</p>` + contact + footer + `
</div>`))

var chatTmpl = template.Must(template.New("chat").Parse(`
<div style="font-family: sans-serif; max-width: 600px; margin: 0 auto; color: #333;">
    <h2 style="color: #333;">{{.Heading}}</h2>
    <div style="background-color: #f8f9fa; padding: 20px; border-radius: 10px; margin: 20px 0; white-space: pre-wrap;">{{.Content}}</div>
    <div style="text-align: center; margin: 30px 0;">
        <a href="{{.Link}}" style="background-color: #333; color: #fff; padding: 12px 25px; border-radius: 5px; text-decoration: none; font-weight: bold;">Odpowiedz</a>
    </div>` + footer + `
</div>`))

var passwordChangedTmpl = template.Must(template.New("password_changed").Parse(`
<div style="font-family: sans-serif; max-width: 600px; margin: 0 auto; color: #333;">
    <h2 style="color: #333;">Zmiana hasła zakończona sukcesem</h2>
    <p>Cześć,</p>
    <p>Informujemy, że hasło do Twojego konta administratora w serwisie <strong>{{.Site}}</strong> zostało pomyślnie zmienione.</p>
    <div style="background-color: #f0fdf4; padding: 20px; border-radius: 10px; margin: 20px 0; border-left: 5px solid #16a34a;">
        <p style="margin: 0; color: #166534;"><strong>Twoje konto jest bezpieczne.</strong></p>
        <p style="margin: 5px 0 0; font-size: 14px; color: #166534;">Jeśli to nie Ty dokonałeś tej zmiany, skontaktuj się natychmiast z administratorem technicznym.</p>
    </div>
    <p style="margin-top: 30px;">Możesz teraz zalogować się używając nowego hasła.</p>
    <div style="text-align: center; margin: 30px 0;">
        <a href="{{.Link}}" style="background-color: #333; color: #fff; padding: 12px 25px; border-radius: 5px; text-decoration: none; font-weight: bold;">Zaloguj się</a>
    </div>
    <hr style="border: 0; border-top: 1px solid #eee; margin: 30px 0;" />
    <p style="font-size: 12px; color: #999; text-align: center;">Wiadomość wygenerowana automatycznie.</p>
</div>`))

type statusStyle struct {
	Label string
	Color string
}

func styleFor(kind string) statusStyle {
	switch kind {
	case "confirmed":
		return statusStyle{Label: "POTWIERDZONA", Color: "#10B981"}
	case "cancelled":
		return statusStyle{Label: "ANULOWANA", Color: "#EF4444"}
	case "date_change":
		return statusStyle{Label: "ZMIANA TERMINU", Color: "#3B82F6"}
	default:
		return statusStyle{Label: "ZMIENIONA", Color: "#F59E0B"}
	}
}

func render(t *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

var polishMonths = [...]string{
	"stycznia", "lutego", "marca", "kwietnia", "maja", "czerwca",
	"lipca", "sierpnia", "września", "października", "listopada", "grudnia",
}

// formatDateTime renders "5 marca 2026, 14:30".
func formatDateTime(t time.Time, loc *time.Location) string {
	t = t.In(loc)
	return t.Format("2") + " " + polishMonths[t.Month()-1] + " " + t.Format("2006, 15:04")
}

// formatDate renders "05 marca 2026".
func formatDate(t time.Time, loc *time.Location) string {
	t = t.In(loc)
	return t.Format("02") + " " + polishMonths[t.Month()-1] + " " + t.Format("2006")
}
