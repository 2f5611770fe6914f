package utils

import (
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

// Mailer sends best-effort notification emails. A nil Mailer is valid and
// sends nothing, so deployments without SMTP simply leave it unconfigured.
type Mailer struct {
	host     string
	port     int
	username string
	password string
	from     string
}

// NewMailerFromEnv builds a Mailer from SMTP_* environment variables, or nil
// when SMTP_HOST is unset.
func NewMailerFromEnv() *Mailer {
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		return nil
	}
	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil {
		port = 587
	}
	return &Mailer{
		host:     host,
		port:     port,
		username: os.Getenv("SMTP_USER"),
		password: os.Getenv("SMTP_PASSWORD"),
		from:     os.Getenv("SMTP_USER"),
	}
}

// SendWelcomeEmail notifies a newly created user of their account.
func (m *Mailer) SendWelcomeEmail(email, username string) error {
	if m == nil {
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", email)
	msg.SetHeader("Subject", "Your clinic console account")

	msg.SetBody("text/plain", "An account was created for you. Username: "+username)

	htmlBody := `
	<!DOCTYPE html>
	<html>
	<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; margin: 0; padding: 0;">
		<div style="background-color: #ffffff; margin: 20px auto; padding: 20px; border-radius: 8px; max-width: 600px;">
			<h1 style="color: #333333;">Welcome</h1>
			<p style="color: #666666;">An account was created for you on the clinic console.</p>
			<p style="color: #666666;">Username: <span style="font-weight: bold; color: #007bff;">` + username + `</span></p>
			<p style="color: #666666;">If you were not expecting this account, contact your administrator.</p>
		</div>
	</body>
	</html>`
	msg.AddAlternative("text/html", htmlBody)

	dialer := gomail.NewDialer(m.host, m.port, m.username, m.password)
	return dialer.DialAndSend(msg)
}
