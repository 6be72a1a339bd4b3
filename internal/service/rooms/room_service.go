package rooms

import (
	"context"
	"log"

	"github.com/Domenick1991/roombooking/internal/domain"
	"github.com/Domenick1991/roombooking/internal/repository"
)

type RoomUseCase interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
	ListByHotel(ctx context.Context, hotelID int64) ([]domain.RoomOccupancy, error)
}

type RoomCache interface {
	GetRoom(ctx context.Context, id int64) (*domain.Room, error)
	SetRoom(ctx context.Context, room *domain.Room) error
}

type RoomService struct {
	repo  repository.RoomRepository
	cache RoomCache
}

// NewRoomService accepts a nil cache, in which case every lookup hits the repository.
func NewRoomService(repo repository.RoomRepository, cache RoomCache) *RoomService {
	return &RoomService{repo: repo, cache: cache}
}

// GetByID returns (nil, nil) when the room does not exist. Occupancy is never cached.
func (s *RoomService) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	if s.cache != nil {
		cached, err := s.cache.GetRoom(ctx, id)
		if err != nil {
			log.Printf("WARNING: room cache read failed for room %d: %v", id, err)
		} else if cached != nil {
			return cached, nil
		}
	}

	room, err := s.repo.GetByID(ctx, id)
	if err != nil || room == nil {
		return nil, err
	}
	if s.cache != nil {
		if err := s.cache.SetRoom(ctx, room); err != nil {
			log.Printf("WARNING: room cache write failed for room %d: %v", id, err)
		}
	}
	return room, nil
}

func (s *RoomService) ListByHotel(ctx context.Context, hotelID int64) ([]domain.RoomOccupancy, error) {
	return s.repo.ListByHotel(ctx, hotelID)
}

var _ RoomUseCase = (*RoomService)(nil)
