package postgres

import (
	"errors"

	"bbq-enquiry/internal/domain"
	"bbq-enquiry/internal/ports/output"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Compile-time check to ensure BookingRepository implements BookingRepository interface
var _ output.BookingRepository = (*BookingRepository)(nil)

// BookingRepository struct - Secondary/Driven adapter for PostgreSQL
type BookingRepository struct {
	dbGorm *gorm.DB
}

// NewBookingRepository func - Creates new PostgreSQL repository
func NewBookingRepository(dbGorm *gorm.DB) *BookingRepository {
	logrus.Info("Migrate database ...")
	domain.MigrateDatabase(dbGorm)
	return &BookingRepository{
		dbGorm: dbGorm,
	}
}

// CreateBooking func - Persists a confirmed booking
func (p *BookingRepository) CreateBooking(booking *domain.Booking) (*domain.Booking, error) {
	if err := p.dbGorm.Create(booking).Error; err != nil {
		logrus.Errorln(err)
		return nil, err
	}
	return booking, nil
}

// GetBooking func - Fetches a booking by its reference
func (p *BookingRepository) GetBooking(reference string) (*domain.Booking, error) {
	var booking domain.Booking
	err := p.dbGorm.Where("reference = ?", reference).First(&booking).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrBookingNotFound
	}
	if err != nil {
		logrus.Errorln(err)
		return nil, err
	}
	return &booking, nil
}

// ListBookings func - Lists all bookings, newest first
func (p *BookingRepository) ListBookings() ([]domain.Booking, error) {
	var bookings []domain.Booking
	if err := p.dbGorm.Order("created_at DESC").Find(&bookings).Error; err != nil {
		logrus.Errorln(err)
		return nil, err
	}
	return bookings, nil
}
