package utils

import (
	"log"
	"os"
	"strconv"

	"github.com/wneessen/go-mail"
)

// SendEmail envoie un e-mail HTML via le SMTP configuré (Gmail par défaut)
func SendEmail(to, subject, htmlBody string) error {
	msg := mail.NewMsg()

	from := os.Getenv("GMAIL_EMAIL")
	if from == "" {
		from = "noreply@ananthalakshmi.com"
	}

	if err := msg.From(from); err != nil {
		return err
	}
	if err := msg.To(to); err != nil {
		return err
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, htmlBody)

	host := os.Getenv("SMTP_HOST")
	if host == "" {
		host = "smtp.gmail.com"
	}
	port := 587
	if p, err := strconv.Atoi(os.Getenv("SMTP_PORT")); err == nil && p > 0 {
		port = p
	}

	client, err := mail.NewClient(host,
		mail.WithPort(port),
		mail.WithSMTPAuth(mail.SMTPAuthLogin),
		mail.WithUsername(os.Getenv("GMAIL_EMAIL")),
		mail.WithPassword(os.Getenv("GMAIL_APP_PASSWORD")),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return err
	}

	log.Println("📤 Envoi de l'e-mail à", to)
	return client.DialAndSend(msg)
}
