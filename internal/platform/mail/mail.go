// Copyright (c) 2026 ArtFolio. All rights reserved.

// Package mail delivers transactional email over SMTP.
//
// # Architecture
//
// This package belongs to the Infrastructure layer. Services depend on the
// Mailer interface, keeping delivery (and its failure modes) out of the
// domain logic. Delivery is best-effort: callers decide whether a send
// failure is fatal.
package mail

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"
)

// Message is a single outbound email.
type Message struct {
	To      string
	ReplyTo string
	Subject string
	Body    string
}

// Mailer sends email messages.
type Mailer interface {
	Send(ctx context.Context, message Message) error
}

// SMTPMailer delivers mail through a plain-auth SMTP relay.
type SMTPMailer struct {
	host     string
	port     int
	username string
	password string
	from     string
}

// NewSMTPMailer creates a Mailer backed by the given SMTP relay.
//
// # Parameters
//   - host, port: SMTP relay address.
//   - username, password: Plain-auth credentials. The username doubles as
//     the envelope sender.
func NewSMTPMailer(host string, port int, username, password string) *SMTPMailer {
	return &SMTPMailer{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     username,
	}
}

// Send delivers the message synchronously.
//
// The context is honored up front only; net/smtp does not support
// per-operation cancellation once the dial starts.
func (mailer *SMTPMailer) Send(ctx context.Context, message Message) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("mail_send_canceled: %w", err)
	}

	address := fmt.Sprintf("%s:%d", mailer.host, mailer.port)
	auth := smtp.PlainAuth("", mailer.username, mailer.password, mailer.host)

	var payload strings.Builder
	payload.WriteString("From: " + mailer.from + "\r\n")
	payload.WriteString("To: " + message.To + "\r\n")
	if message.ReplyTo != "" {
		payload.WriteString("Reply-To: " + message.ReplyTo + "\r\n")
	}
	payload.WriteString("Subject: " + message.Subject + "\r\n")
	payload.WriteString("MIME-Version: 1.0\r\n")
	payload.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
	payload.WriteString("\r\n")
	payload.WriteString(message.Body)

	if err := smtp.SendMail(address, auth, mailer.from, []string{message.To}, []byte(payload.String())); err != nil {
		return fmt.Errorf("mail_send_failed: %w", err)
	}

	return nil
}

// NoopMailer silently discards messages. Used when SMTP is not configured
// (local development, tests).
type NoopMailer struct{}

// Send implements Mailer by doing nothing.
func (NoopMailer) Send(context.Context, Message) error {
	return nil
}
