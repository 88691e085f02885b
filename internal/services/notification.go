package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"coursebooking/internal/domain"
)

type notificationService struct {
	logger   *slog.Logger
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
}

// NewNotificationService returns a NotificationService that renders
// joining-instruction emails and sends them through the given Mailer.
func NewNotificationService(logger *slog.Logger, mailer domain.Mailer, renderer domain.EmailTemplateRenderer) domain.NotificationService {
	return &notificationService{logger: logger, mailer: mailer, renderer: renderer}
}

// RecipientsFor returns the purchaser with the full variant, plus one
// personalized variant per attendee when the booking's delivery mode is
// "all". The order is stable: purchaser first, then attendees in roster
// order.
func (s *notificationService) RecipientsFor(booking *domain.Booking) []domain.Recipient {
	recipients := []domain.Recipient{
		{Email: booking.PurchaserEmail, Variant: domain.VariantFull},
	}
	if booking.DeliveryMode == domain.DeliveryAll {
		for _, a := range booking.Attendees {
			recipients = append(recipients, domain.Recipient{
				Email:        a.Email,
				Variant:      domain.VariantPersonalized,
				AttendeeName: a.Name,
			})
		}
	}
	return recipients
}

// Dispatch renders and sends every recipient's variant. Sends are
// independent: a failure for one recipient is recorded and the fan-out
// continues. The returned error aggregates the failures, if any.
func (s *notificationService) Dispatch(ctx context.Context, booking *domain.Booking) (int, error) {
	var sent int
	var errs []error
	for _, rcpt := range s.RecipientsFor(booking) {
		data := &domain.BookingEmailData{
			Greeting:     "Hello,",
			SessionLabel: booking.SessionLabel,
			JoinLink:     booking.JoinLink,
			OrderID:      booking.OrderID,
		}
		if rcpt.Variant == domain.VariantFull {
			data.Attendees = booking.Attendees
		} else {
			data.Greeting = "Hi " + rcpt.AttendeeName + ","
		}

		subject, html, text, err := s.renderer.Render(rcpt.Variant, data)
		if err != nil {
			errs = append(errs, fmt.Errorf("render %s for %s: %w", rcpt.Variant, rcpt.Email, err))
			continue
		}
		if err := s.mailer.Send(rcpt.Email, subject, html, text); err != nil {
			errs = append(errs, fmt.Errorf("send to %s: %w", rcpt.Email, err))
			continue
		}
		s.logger.InfoContext(ctx, "joining instructions sent",
			"booking_id", booking.ID, "to", rcpt.Email, "variant", rcpt.Variant)
		sent++
	}
	return sent, errors.Join(errs...)
}
