package mailer

import (
	"bytes"
	"fmt"
	"text/template"
	"time"

	gomail "gopkg.in/mail.v2"
)

type SMTPClient struct {
	dialer    *gomail.Dialer
	fromEmail string
}

func NewSMTPClient(host string, port int, username, password, fromEmail string) (*SMTPClient, error) {
	if host == "" {
		return nil, fmt.Errorf("smtp host is required")
	}

	return &SMTPClient{
		dialer:    gomail.NewDialer(host, port, username, password),
		fromEmail: fromEmail,
	}, nil
}

func (c *SMTPClient) Send(templateFile, username, email string, data any) error {
	tmpl, err := template.ParseFS(FS, "templates/"+templateFile)
	if err != nil {
		return err
	}

	subject := new(bytes.Buffer)
	if err := tmpl.ExecuteTemplate(subject, "subject", data); err != nil {
		return err
	}

	body := new(bytes.Buffer)
	if err := tmpl.ExecuteTemplate(body, "body", data); err != nil {
		return err
	}

	message := gomail.NewMessage()
	message.SetHeader("From", message.FormatAddress(c.fromEmail, FromName))
	message.SetHeader("To", email)
	message.SetHeader("Subject", subject.String())
	message.SetBody("text/html", body.String())

	var lastErr error
	for i := 0; i < maxRetries; i++ {
		if lastErr = c.dialer.DialAndSend(message); lastErr == nil {
			return nil
		}
		time.Sleep(time.Second * time.Duration(i+1))
	}

	return fmt.Errorf("failed to send email after %d attempts: %w", maxRetries, lastErr)
}
