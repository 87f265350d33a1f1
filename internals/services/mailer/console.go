package mailer

import "log"

// consoleMailer logs messages instead of sending them. Used when no
// SENDGRID_API_KEY is configured (local dev).
type consoleMailer struct{}

var _ Mailer = (*consoleMailer)(nil)

func NewConsole() Mailer { return &consoleMailer{} }

func (consoleMailer) Send(msg Message) error {
	log.Printf("[MAIL] to=%s <%s> subject=%q\n%s", msg.ToName, msg.ToEmail, msg.Subject, msg.Text)
	return nil
}
