package utils

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"

	"github.com/viplat/gamehub-api/config"
	"github.com/viplat/gamehub-api/models"
)

const contactTemplate = `<html>
<body style="font-family: sans-serif;">
	<h2>New contact message</h2>
	<p><strong>From:</strong> {{.Name}} ({{.Email}})</p>
	<p><strong>Subject:</strong> {{.Subject}}</p>
	<p>{{.Message}}</p>
</body>
</html>`

// Mailer sends contact notifications to the shop inbox over SMTP. A Mailer
// built from incomplete config is disabled and safe to call.
type Mailer struct {
	cfg  config.MailConfig
	tmpl *template.Template
}

func NewMailer(cfg config.MailConfig) *Mailer {
	return &Mailer{
		cfg:  cfg,
		tmpl: template.Must(template.New("contact").Parse(contactTemplate)),
	}
}

func (m *Mailer) Enabled() bool {
	return m.cfg.MailEnabled()
}

func (m *Mailer) SendContactNotification(contact models.Contact) error {
	if !m.Enabled() {
		return nil
	}

	var body bytes.Buffer
	if err := m.tmpl.Execute(&body, contact); err != nil {
		return fmt.Errorf("template execution error: %w", err)
	}

	message := fmt.Sprintf(
		"From: %s\r\nSubject: %s\r\nMIME-version: 1.0;\r\nContent-Type: text/html; charset=\"UTF-8\";\r\n\r\n%s",
		m.cfg.FromEmail,
		"GameHub contact: "+contact.Subject,
		body.String(),
	)

	auth := smtp.PlainAuth("", m.cfg.FromEmail, m.cfg.FromPassword, m.cfg.SMTPHost)
	if err := smtp.SendMail(m.cfg.SMTPAddress, auth, m.cfg.FromEmail, []string{m.cfg.ShopInbox}, []byte(message)); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
