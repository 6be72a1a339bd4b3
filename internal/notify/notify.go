package notify

import (
	"context"
	"fmt"
	"log"

	"github.com/Domenick1991/roombooking/internal/kafka"
)

// Sender turns booking events into attendee notifications. Delivery is a log line for now.
type Sender struct {
	logf func(format string, args ...interface{})
}

func NewSender() *Sender {
	return &Sender{logf: log.Printf}
}

func (s *Sender) Send(ctx context.Context, event kafka.BookingEvent) error {
	msg, err := Message(event)
	if err != nil {
		s.logf("skip notification %s: %v", event.ID, err)
		return nil
	}
	s.logf("notify user %d: %s", event.UserID, msg)
	return nil
}

func Message(event kafka.BookingEvent) (string, error) {
	switch event.Type {
	case kafka.EventBookingCreated:
		return fmt.Sprintf("your booking %d for room %d is confirmed", event.BookingID, event.RoomID), nil
	case kafka.EventBookingUpdated:
		return fmt.Sprintf("your booking %d was moved to room %d", event.BookingID, event.RoomID), nil
	default:
		return "", fmt.Errorf("unknown event type %q", event.Type)
	}
}
