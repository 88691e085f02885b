package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"coursebooking/internal/domain"
)

type recordedSend struct {
	to      string
	subject string
}

type fakeMailer struct {
	mu      sync.Mutex
	sends   []recordedSend
	failFor map[string]error
}

func (m *fakeMailer) Send(to, subject, html, text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err, ok := m.failFor[to]; ok {
		return err
	}
	m.sends = append(m.sends, recordedSend{to: to, subject: subject})
	return nil
}

type fakeRenderer struct{}

func (fakeRenderer) Render(templateName string, data any) (string, string, string, error) {
	d := data.(*domain.BookingEmailData)
	subject := "Your Course Booking Details"
	body := fmt.Sprintf("%s %s %s", d.Greeting, d.SessionLabel, d.JoinLink)
	return subject, "<p>" + body + "</p>", body, nil
}

func testBooking(mode domain.DeliveryMode) *domain.Booking {
	return &domain.Booking{
		ID:             "bk-1",
		OrderID:        "order-1",
		SessionLabel:   "Mon 2 Mar @ 10:00",
		JoinLink:       "https://zoom.example/j/1",
		PurchaserEmail: "buyer@example.com",
		DeliveryMode:   mode,
		Attendees: []domain.AttendeeEntry{
			{Name: "Jane", Email: "jane@example.com"},
			{Name: "Bob", Email: "bob@example.com"},
		},
	}
}

func TestNotificationService_RecipientsFor(t *testing.T) {
	svc := NewNotificationService(testLogger(), &fakeMailer{}, fakeRenderer{})

	t.Run("purchaser only", func(t *testing.T) {
		got := svc.RecipientsFor(testBooking(domain.DeliveryPurchaser))
		require.Equal(t, []domain.Recipient{
			{Email: "buyer@example.com", Variant: domain.VariantFull},
		}, got)
	})

	t.Run("purchaser and attendees", func(t *testing.T) {
		got := svc.RecipientsFor(testBooking(domain.DeliveryAll))
		require.Equal(t, []domain.Recipient{
			{Email: "buyer@example.com", Variant: domain.VariantFull},
			{Email: "jane@example.com", Variant: domain.VariantPersonalized, AttendeeName: "Jane"},
			{Email: "bob@example.com", Variant: domain.VariantPersonalized, AttendeeName: "Bob"},
		}, got)
	})
}

func TestNotificationService_Dispatch_FanOut(t *testing.T) {
	mailer := &fakeMailer{}
	svc := NewNotificationService(testLogger(), mailer, fakeRenderer{})

	sent, err := svc.Dispatch(context.Background(), testBooking(domain.DeliveryAll))

	require.NoError(t, err)
	require.Equal(t, 3, sent)
	require.Equal(t, "buyer@example.com", mailer.sends[0].to)
	require.Equal(t, "jane@example.com", mailer.sends[1].to)
	require.Equal(t, "bob@example.com", mailer.sends[2].to)
}

func TestNotificationService_Dispatch_IndependentFailures(t *testing.T) {
	// One bouncing attendee address must not block the purchaser or the
	// other attendee.
	mailer := &fakeMailer{failFor: map[string]error{"jane@example.com": errors.New("mailbox unavailable")}}
	svc := NewNotificationService(testLogger(), mailer, fakeRenderer{})

	sent, err := svc.Dispatch(context.Background(), testBooking(domain.DeliveryAll))

	require.Error(t, err)
	require.Contains(t, err.Error(), "jane@example.com")
	require.Equal(t, 2, sent)
	require.Len(t, mailer.sends, 2)
	require.Equal(t, "buyer@example.com", mailer.sends[0].to)
	require.Equal(t, "bob@example.com", mailer.sends[1].to)
}

func TestNotificationService_Dispatch_RepeatSendsSameVariants(t *testing.T) {
	mailer := &fakeMailer{}
	svc := NewNotificationService(testLogger(), mailer, fakeRenderer{})
	booking := testBooking(domain.DeliveryAll)

	first, err := svc.Dispatch(context.Background(), booking)
	require.NoError(t, err)
	second, err := svc.Dispatch(context.Background(), booking)
	require.NoError(t, err)

	require.Equal(t, first, second)
	require.Equal(t, mailer.sends[:3], mailer.sends[3:])
}
