// Copyright (c) 2026 ArtFolio. All rights reserved.

// Contact form use case: throttle, persist, then notify.
package contact

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/artfolio/artfolio/internal/platform/apperr"
	"github.com/artfolio/artfolio/internal/platform/constants"
	"github.com/artfolio/artfolio/internal/platform/ctxutil"
	"github.com/artfolio/artfolio/internal/platform/mail"
)

// Service implements the contact form use case.
type Service struct {
	messageRepository  MessageRepository
	throttleRepository ThrottleRepository
	mailer             mail.Mailer
	recipient          string
}

// NewService constructs a new [Service] with necessary dependencies.
//
// # Parameters
//   - recipient: Address that receives the notification email for every
//     submission (the site owner).
func NewService(
	messageRepository MessageRepository,
	throttleRepository ThrottleRepository,
	mailer mail.Mailer,
	recipient string,
) *Service {
	return &Service{
		messageRepository:  messageRepository,
		throttleRepository: throttleRepository,
		mailer:             mailer,
		recipient:          recipient,
	}
}

// SubmitInput holds a validated contact form submission.
type SubmitInput struct {
	Name     string
	Email    string
	Message  string
	ClientIP string
}

// Submit throttles, persists, and announces a contact form submission.
//
// # Flow
//  1. Count the hit against the client's throttle window; over the limit
//     the submission is rejected before touching the database.
//  2. Persist the message. A storage failure fails the request.
//  3. Email the site owner. Delivery is best-effort: a mail failure is
//     logged and never fails the request, since the message is already
//     safely stored.
func (service *Service) Submit(ctx context.Context, input SubmitInput) (*Message, error) {
	// ── 1. Throttle ───────────────────────────────────────────────────────

	hits, err := service.throttleRepository.Hit(ctx, input.ClientIP)
	if err != nil {
		return nil, fmt.Errorf("contact_service_throttle_failed: %w", err)
	}
	if hits > constants.ContactThrottleLimit {
		return nil, apperr.RateLimited(int(constants.ContactThrottleWindow.Seconds()))
	}

	// ── 2. Persistence ────────────────────────────────────────────────────

	message := &Message{
		Name:    input.Name,
		Email:   input.Email,
		Message: input.Message,
	}

	if err := service.messageRepository.Create(ctx, message); err != nil {
		return nil, err
	}

	// ── 3. Notification (best-effort) ─────────────────────────────────────

	notification := mail.Message{
		To:      service.recipient,
		ReplyTo: input.Email,
		Subject: fmt.Sprintf("New contact message from %s", input.Name),
		Body:    fmt.Sprintf("From: %s <%s>\n\n%s", input.Name, input.Email, input.Message),
	}

	if err := service.mailer.Send(ctx, notification); err != nil {
		ctxutil.GetLogger(ctx).Warn("contact_notification_failed",
			slog.Int64("message_id", message.ID),
			slog.Any("error", err),
		)
	}

	return message, nil
}
