package mail

import (
	"bytes"
	"fmt"
	"text/template"

	"gopkg.in/gomail.v2"
)

const leadCapturedTemplate = `
<h2>New lead captured</h2>
<p><strong>{{.Name}}</strong> &lt;{{.Email}}&gt;{{if .Phone}} — {{.Phone}}{{end}}</p>
<p>Interest score: <strong>{{.Score}}/100</strong></p>
`

func NewEmailSender(host string, port int, user, password, from, salesTo string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
		SalesTo:  salesTo,
	}
}

// NotifyLeadCaptured mails the sales inbox about a freshly captured lead.
func (s *EmailSender) NotifyLeadCaptured(name, email, phone string, score int) error {
	data := LeadCapturedEmailData{
		Name:  name,
		Email: email,
		Phone: phone,
		Score: score,
	}

	t, err := template.New("lead_captured").Parse(leadCapturedTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse email template: %w", err)
	}

	var body bytes.Buffer
	if err := t.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", s.SalesTo)
	m.SetHeader("Subject", fmt.Sprintf("New lead: %s (score %d)", name, score))
	m.SetBody("text/html", body.String())

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send SMTP email: %w", err)
	}

	return nil
}
