package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// Notification variants for joining-instruction emails.
const (
	// VariantFull goes to the purchaser: session, join link, full roster.
	VariantFull = "booking_full"
	// VariantPersonalized goes to an individual attendee: greeting with
	// their own name, session, join link, no roster.
	VariantPersonalized = "booking_personalized"
)

// Recipient pairs a destination address with the message variant it
// should receive.
type Recipient struct {
	Email   string
	Variant string
	// AttendeeName is set for personalized recipients only.
	AttendeeName string
}

// BookingEmailData holds template data for joining-instruction emails.
type BookingEmailData struct {
	Greeting     string
	SessionLabel string
	JoinLink     string
	Attendees    []AttendeeEntry
	OrderID      string
}

// NotificationService decides recipients for a committed booking and
// dispatches joining instructions. Transport failures are independent per
// recipient: one failed send never blocks the rest.
type NotificationService interface {
	RecipientsFor(booking *Booking) []Recipient
	// Dispatch renders and sends every variant for the booking. It returns
	// the number of successful sends and an aggregate error covering the
	// failed recipients, if any.
	Dispatch(ctx context.Context, booking *Booking) (sent int, err error)
}
