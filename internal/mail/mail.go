// Package mail delivers contact-form submissions over SMTP.
package mail

import (
	"fmt"
	"net/smtp"

	folio "github.com/niya-shroff/folio"
	"github.com/niya-shroff/folio/internal/config"
)

type Mailer struct {
	conf      config.SMTP
	recipient string
}

func NewMailer(conf config.SMTP, recipient string) *Mailer {
	return &Mailer{conf: conf, recipient: recipient}
}

// SendContact forwards a contact-form submission to the site owner.
// Reply-To is set to the sender so the owner can answer directly.
func (m *Mailer) SendContact(msg folio.ContactMessage) error {
	if m.conf.User == "" || m.conf.Password == "" {
		return fmt.Errorf("smtp credentials not configured")
	}

	subject := fmt.Sprintf("Portfolio Contact: %s", msg.Name)
	body := fmt.Sprintf("New contact form submission:\n\nName: %s\nEmail: %s\nMessage:\n%s\n", msg.Name, msg.Email, msg.Message)

	payload := []byte("To: " + m.recipient + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"From: " + m.conf.User + "\r\n" +
		"Reply-To: " + msg.Email + "\r\n" +
		"\r\n" +
		body + "\r\n")

	auth := smtp.PlainAuth("", m.conf.User, m.conf.Password, m.conf.Host)
	return smtp.SendMail(m.conf.Host+":"+m.conf.Port, auth, m.conf.User, []string{m.recipient}, payload)
}
