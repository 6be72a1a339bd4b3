package booking

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/Domenick1991/roombooking/internal/domain"
	"github.com/Domenick1991/roombooking/internal/kafka"
	"github.com/Domenick1991/roombooking/internal/repository"
)

type BookingUseCase interface {
	GetBooking(ctx context.Context, userID int64) (*domain.Booking, error)
	CreateBooking(ctx context.Context, userID, roomID int64) (int64, error)
	UpdateBooking(ctx context.Context, userID, roomID, bookingID int64) (int64, error)
}

// RoomFinder returns (nil, nil) for an unknown room.
type RoomFinder interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
}

type RoomLocker interface {
	AcquireRoomLock(ctx context.Context, roomID int64, ttl time.Duration) (string, bool, error)
	ReleaseRoomLock(ctx context.Context, roomID int64, token string) error
}

const (
	lockRetryInterval  = 20 * time.Millisecond
	lockReleaseTimeout = 2 * time.Second
)

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type BookingService struct {
	bookings           repository.BookingRepository
	enrollments        repository.EnrollmentRepository
	tickets            repository.TicketRepository
	rooms              RoomFinder
	locker             RoomLocker
	lockTTL            time.Duration
	lockWait           time.Duration
	producer           Producer
	bookingTopic       string
	notificationsTopic string
}

type BookingServiceOption func(*BookingService)

// WithRoomLock holds a per-room lock around the occupancy check and the write.
// A busy lock is retried for up to ttl before the request gives up with domain.ErrBusy.
func WithRoomLock(locker RoomLocker, ttl time.Duration) BookingServiceOption {
	return func(s *BookingService) {
		s.locker = locker
		s.lockTTL = ttl
		s.lockWait = ttl
	}
}

func WithEvents(producer Producer, bookingTopic string) BookingServiceOption {
	return func(s *BookingService) {
		s.producer = producer
		s.bookingTopic = bookingTopic
	}
}

func WithNotificationsTopic(topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.notificationsTopic = topic
	}
}

func NewBookingService(
	bookings repository.BookingRepository,
	enrollments repository.EnrollmentRepository,
	tickets repository.TicketRepository,
	rooms RoomFinder,
	opts ...BookingServiceOption,
) *BookingService {
	service := &BookingService{
		bookings:    bookings,
		enrollments: enrollments,
		tickets:     tickets,
		rooms:       rooms,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *BookingService) GetBooking(ctx context.Context, userID int64) (*domain.Booking, error) {
	booking, err := s.bookings.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, fmt.Errorf("%w: user %d has no booking", domain.ErrNotFound, userID)
	}
	return booking, nil
}

// CreateBooking checks, in order: enrollment, ticket eligibility, room existence,
// one booking per user, room capacity. The order decides which error the caller sees.
func (s *BookingService) CreateBooking(ctx context.Context, userID, roomID int64) (int64, error) {
	if err := s.checkEligibility(ctx, userID); err != nil {
		return 0, err
	}

	room, err := s.findRoom(ctx, roomID)
	if err != nil {
		return 0, err
	}

	unlock, err := s.lockRoom(ctx, roomID)
	if err != nil {
		return 0, err
	}
	defer unlock()

	existing, err := s.bookings.FindByUserID(ctx, userID)
	if err != nil {
		return 0, err
	}
	if existing != nil {
		return 0, fmt.Errorf("%w: user %d already has booking %d", domain.ErrForbidden, userID, existing.ID)
	}

	if err := s.checkVacancy(ctx, room); err != nil {
		return 0, err
	}

	bookingID, err := s.bookings.Create(ctx, userID, roomID)
	if err != nil {
		return 0, err
	}

	event := kafka.NewBookingEvent(kafka.EventBookingCreated, bookingID, userID, roomID)
	if err := s.publish(ctx, event); err != nil {
		log.Printf("WARNING: Failed to publish %s event for booking %d: %v", event.Type, bookingID, err)
	}
	return bookingID, nil
}

// UpdateBooking moves the caller's booking to roomID. Eligibility is not re-checked. The
// caller counts as an occupant of the target room if already booked there.
func (s *BookingService) UpdateBooking(ctx context.Context, userID, roomID, bookingID int64) (int64, error) {
	current, err := s.bookings.FindByID(ctx, bookingID)
	if err != nil {
		return 0, err
	}
	if current == nil {
		return 0, fmt.Errorf("%w: booking %d", domain.ErrNotFound, bookingID)
	}
	if current.UserID != userID {
		return 0, fmt.Errorf("%w: booking %d belongs to another user", domain.ErrForbidden, bookingID)
	}

	room, err := s.findRoom(ctx, roomID)
	if err != nil {
		return 0, err
	}

	unlock, err := s.lockRoom(ctx, roomID)
	if err != nil {
		return 0, err
	}
	defer unlock()

	if err := s.checkVacancy(ctx, room); err != nil {
		return 0, err
	}

	updatedID, err := s.bookings.Update(ctx, bookingID, roomID)
	if err != nil {
		return 0, err
	}

	event := kafka.NewBookingEvent(kafka.EventBookingUpdated, updatedID, userID, roomID)
	event.PrevRoomID = current.RoomID
	if err := s.publish(ctx, event); err != nil {
		log.Printf("WARNING: Failed to publish %s event for booking %d: %v", event.Type, updatedID, err)
	}
	return updatedID, nil
}

func (s *BookingService) checkEligibility(ctx context.Context, userID int64) error {
	enrollment, err := s.enrollments.FindWithAddressByUserID(ctx, userID)
	if err != nil {
		return err
	}
	if enrollment == nil {
		return fmt.Errorf("%w: user %d has no enrollment", domain.ErrForbidden, userID)
	}

	ticket, err := s.tickets.FindByEnrollmentID(ctx, enrollment.ID)
	if err != nil {
		return err
	}
	if !ticket.EntitlesToHotel() {
		return fmt.Errorf("%w: ticket does not include a hotel stay", domain.ErrForbidden)
	}
	return nil
}

func (s *BookingService) findRoom(ctx context.Context, roomID int64) (*domain.Room, error) {
	room, err := s.rooms.GetByID(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, fmt.Errorf("%w: room %d", domain.ErrNotFound, roomID)
	}
	return room, nil
}

func (s *BookingService) checkVacancy(ctx context.Context, room *domain.Room) error {
	occupants, err := s.bookings.FindByRoomID(ctx, room.ID)
	if err != nil {
		return err
	}
	if !room.HasVacancy(len(occupants)) {
		return fmt.Errorf("%w: room %d is full", domain.ErrForbidden, room.ID)
	}
	return nil
}

func (s *BookingService) lockRoom(ctx context.Context, roomID int64) (func(), error) {
	if s.locker == nil {
		return func() {}, nil
	}

	waitCtx, cancel := context.WithTimeout(ctx, s.lockWait)
	defer cancel()

	ticker := time.NewTicker(lockRetryInterval)
	defer ticker.Stop()

	for {
		token, ok, err := s.locker.AcquireRoomLock(ctx, roomID, s.lockTTL)
		if err != nil {
			return nil, err
		}
		if ok {
			return func() { s.unlockRoom(ctx, roomID, token) }, nil
		}

		select {
		case <-ticker.C:
		case <-waitCtx.Done():
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			return nil, fmt.Errorf("%w: room %d is locked by another request", domain.ErrBusy, roomID)
		}
	}
}

// unlockRoom runs even after the request is canceled, otherwise the room stays locked for the full TTL.
func (s *BookingService) unlockRoom(ctx context.Context, roomID int64, token string) {
	releaseCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), lockReleaseTimeout)
	defer cancel()
	if err := s.locker.ReleaseRoomLock(releaseCtx, roomID, token); err != nil {
		log.Printf("WARNING: Failed to release lock for room %d: %v", roomID, err)
	}
}

func (s *BookingService) publish(ctx context.Context, event kafka.BookingEvent) error {
	if s.producer == nil || s.bookingTopic == "" {
		return nil
	}
	if err := s.producer.Publish(ctx, s.bookingTopic, event.Key(), event); err != nil {
		return err
	}
	if s.notificationsTopic != "" {
		return s.producer.Publish(ctx, s.notificationsTopic, event.Key(), event)
	}
	return nil
}

var _ BookingUseCase = (*BookingService)(nil)
