// Package mailer is the outbound-email sink. The fee/timetable/attendance
// cores never touch it; only the visitor-conversion flow does, and a send
// failure there does not undo the conversion.
package mailer

import "fmt"

type Message struct {
	ToName  string
	ToEmail string
	Subject string
	Text    string
	HTML    string
}

type Mailer interface {
	Send(msg Message) error
}

// WelcomeCredentials builds the email sent to a freshly converted student
// with their generated login credentials.
func WelcomeCredentials(name, email, password string) Message {
	text := fmt.Sprintf(
		"Hi %s,\n\nWelcome aboard! Your student account is ready.\n\nLogin email: %s\nPassword: %s\n\nPlease change your password after the first login.\n",
		name, email, password,
	)
	html := fmt.Sprintf(
		"<p>Hi %s,</p><p>Welcome aboard! Your student account is ready.</p><p>Login email: <b>%s</b><br>Password: <b>%s</b></p><p>Please change your password after the first login.</p>",
		name, email, password,
	)
	return Message{
		ToName:  name,
		ToEmail: email,
		Subject: "Your student account is ready",
		Text:    text,
		HTML:    html,
	}
}
