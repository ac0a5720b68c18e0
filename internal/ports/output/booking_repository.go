package output

import "bbq-enquiry/internal/domain"

// BookingRepository interface - Output port
// Defines what the application needs for persisting confirmed bookings
type BookingRepository interface {
	CreateBooking(booking *domain.Booking) (*domain.Booking, error)
	GetBooking(reference string) (*domain.Booking, error)
	ListBookings() ([]domain.Booking, error)
}
