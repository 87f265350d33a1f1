package mailer

import (
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

type sendgridMailer struct {
	key      string
	from     *sgmail.Email
	subjPref string
}

var _ Mailer = (*sendgridMailer)(nil)

func NewSendgrid(apiKey, fromName, fromEmail, appName string) Mailer {
	return &sendgridMailer{
		key:      apiKey,
		from:     sgmail.NewEmail(fromName, fromEmail),
		subjPref: "[" + appName + "] ",
	}
}

func (m *sendgridMailer) Send(msg Message) error {
	p := sgmail.NewPersonalization()
	p.Subject = m.subjPref + msg.Subject
	p.AddTos(sgmail.NewEmail(msg.ToName, msg.ToEmail))

	mail := sgmail.NewV3Mail()
	mail.SetFrom(m.from)
	mail.AddPersonalizations(p)
	mail.AddContent(
		sgmail.NewContent("text/plain", msg.Text),
		sgmail.NewContent("text/html", msg.HTML),
	)

	client := sendgrid.NewSendClient(m.key)
	resp, err := client.Send(mail)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 300 {
		return fmt.Errorf("sendgrid returned %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}
