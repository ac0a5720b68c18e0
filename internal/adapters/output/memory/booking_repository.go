package memory

import (
	"sync"
	"time"

	"bbq-enquiry/internal/domain"
	"bbq-enquiry/internal/ports/output"

	"github.com/google/uuid"
)

// Compile-time check to ensure MemoryBookingRepository implements BookingRepository interface
var _ output.BookingRepository = (*MemoryBookingRepository)(nil)

// MemoryBookingRepository struct - Output adapter keeping confirmed bookings
// in process memory, for development and tests
type MemoryBookingRepository struct {
	mu       sync.RWMutex
	bookings map[string]*domain.Booking
	order    []string
}

// NewMemoryBookingRepository func - Creates new in-memory booking repository
func NewMemoryBookingRepository() *MemoryBookingRepository {
	return &MemoryBookingRepository{
		bookings: make(map[string]*domain.Booking),
	}
}

// CreateBooking stores a booking, assigning id and creation time
func (m *MemoryBookingRepository) CreateBooking(booking *domain.Booking) (*domain.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id, err := uuid.NewRandom()
	if err != nil {
		return nil, err
	}
	now := time.Now()

	stored := *booking
	stored.ID = &id
	stored.CreatedAt = &now

	m.bookings[stored.Reference] = &stored
	m.order = append(m.order, stored.Reference)
	return &stored, nil
}

// GetBooking returns a booking by reference
func (m *MemoryBookingRepository) GetBooking(reference string) (*domain.Booking, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	booking, ok := m.bookings[reference]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	result := *booking
	return &result, nil
}

// ListBookings returns all bookings in creation order
func (m *MemoryBookingRepository) ListBookings() ([]domain.Booking, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]domain.Booking, 0, len(m.order))
	for _, reference := range m.order {
		result = append(result, *m.bookings[reference])
	}
	return result, nil
}
