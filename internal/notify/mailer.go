package notify

import (
	"gopkg.in/gomail.v2"

	"github.com/navalha-studio/booking-api/internal/config"
)

// Mailer envia e-mails transacionais via SMTP. Sem host configurado o
// envio vira no-op, para ambientes de desenvolvimento.
type Mailer struct {
	host string
	port int
	user string
	pass string
	from string
}

func NewMailer(cfg *config.Config) *Mailer {
	return &Mailer{
		host: cfg.SMTPHost,
		port: cfg.SMTPPort,
		user: cfg.SMTPUser,
		pass: cfg.SMTPPass,
		from: cfg.MailFrom,
	}
}

func (m *Mailer) Enabled() bool {
	return m != nil && m.host != ""
}

func (m *Mailer) Send(to, subject, htmlBody string) error {
	if !m.Enabled() || to == "" {
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(m.host, m.port, m.user, m.pass)
	return d.DialAndSend(msg)
}
