package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Booking field names collected during the booking flow
const (
	BookingFieldName    = "name"
	BookingFieldDate    = "date"
	BookingFieldTime    = "time"
	BookingFieldGuests  = "guests"
	BookingFieldContact = "contact"
)

// RequiredBookingFields are the fields a booking needs before confirmation.
// Contact is optional, matching the original collection prompt.
var RequiredBookingFields = []string{
	BookingFieldName,
	BookingFieldDate,
	BookingFieldTime,
	BookingFieldGuests,
}

// Booking struct - Core domain entity for a confirmed table booking
type Booking struct {
	ID        *uuid.UUID `gorm:"type:uuid;primary_key;"`
	Reference string     `gorm:"type:varchar(40);not null;uniqueIndex"`
	Outlet    string     `gorm:"type:varchar(120);not null;"`
	Name      string     `gorm:"type:varchar(100);not null;"`
	Date      string     `gorm:"type:varchar(10);not null;"`
	Time      string     `gorm:"type:varchar(5);not null;"`
	Guests    int        `gorm:"not null;"`
	Contact   string     `gorm:"type:varchar(15)"`
	CreatedAt *time.Time `gorm:"type:timestamp"`
}

// TableName func
func (b *Booking) TableName() string {
	return "bookings"
}

// BeforeCreate hook - generates UUID before creating
func (b *Booking) BeforeCreate(tx *gorm.DB) (err error) {
	logrus.Info("BeforeCreate")
	id, err := uuid.NewRandom() // v4
	if err != nil {
		return err
	}
	b.ID = &id
	return nil
}

// MigrateDatabase func - Auto-migrate database schema
func MigrateDatabase(db *gorm.DB) {
	if db == nil {
		panic("An error when connect database")
	}

	err := db.AutoMigrate(&Booking{})
	if err != nil {
		panic(err)
	}
}

// GenerateBookingReference builds a unique reference of the form
// BN<timestamp><numeric suffix>
func GenerateBookingReference() string {
	timestamp := time.Now().Format("20060102150405")
	var suffix strings.Builder
	for _, c := range timestamp[len(timestamp)-4:] {
		suffix.WriteString(strconv.Itoa(int(c)))
	}
	return fmt.Sprintf("BN%s%s", timestamp, suffix.String())
}

var (
	bookingDateRe    = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)
	bookingTimeRe    = regexp.MustCompile(`\d{2}:\d{2}`)
	bookingGuestsRe  = regexp.MustCompile(`(\d+)\s*(?:guests?|people|persons?)`)
	bookingContactRe = regexp.MustCompile(`\+?[1-9]\d{9}`)
	bookingNameRe    = regexp.MustCompile(`(?i)(?:name is|i am|i'm|this is)\s+([a-zA-Z][a-zA-Z ]*)`)
	// Connectives that end the name capture when the sentence continues
	// ("my name is Asha Rao and we are 4 guests")
	bookingNameStopRe = regexp.MustCompile(`(?i)\s(?:and|for|on|at|with)\b`)
)

// ParseBookingInput extracts booking fields from free text. Only fields
// actually present in the text appear in the result, so callers can merge
// turns incrementally.
func ParseBookingInput(text string) map[string]string {
	fields := make(map[string]string)

	if m := bookingDateRe.FindString(text); m != "" && ValidBookingDate(m) {
		fields[BookingFieldDate] = m
	}
	if m := bookingTimeRe.FindString(text); m != "" && ValidBookingTime(m) {
		fields[BookingFieldTime] = m
	}
	if m := bookingGuestsRe.FindStringSubmatch(strings.ToLower(text)); m != nil {
		fields[BookingFieldGuests] = m[1]
	}
	if m := bookingContactRe.FindString(text); m != "" {
		fields[BookingFieldContact] = m
	}
	if m := bookingNameRe.FindStringSubmatch(text); m != nil {
		name := m[1]
		if cut := bookingNameStopRe.FindStringIndex(name); cut != nil {
			name = name[:cut[0]]
		}
		if name = strings.TrimSpace(name); name != "" {
			fields[BookingFieldName] = name
		}
	}

	return fields
}

// ValidBookingDate checks the YYYY-MM-DD format
func ValidBookingDate(value string) bool {
	_, err := time.Parse("2006-01-02", value)
	return err == nil
}

// ValidBookingTime checks the HH:MM format
func ValidBookingTime(value string) bool {
	_, err := time.Parse("15:04", value)
	return err == nil
}

// ValidPhoneNumber checks a 10-digit phone number with optional plus prefix
func ValidPhoneNumber(value string) bool {
	return regexp.MustCompile(`^\+?[1-9]\d{9}$`).MatchString(value)
}

// MissingBookingFields lists required fields not yet collected, in the
// canonical field order
func MissingBookingFields(details map[string]string) []string {
	var missing []string
	for _, field := range RequiredBookingFields {
		if details[field] == "" {
			missing = append(missing, field)
		}
	}
	return missing
}

// FormatBookingSummary renders collected booking details for the
// confirmation prompt
func FormatBookingSummary(outlet string, details map[string]string) string {
	get := func(field string) string {
		if v := details[field]; v != "" {
			return v
		}
		return "N/A"
	}
	return fmt.Sprintf(
		"Restaurant: %s\nName: %s\nDate: %s\nTime: %s\nGuests: %s\nContact: %s",
		outlet,
		get(BookingFieldName),
		get(BookingFieldDate),
		get(BookingFieldTime),
		get(BookingFieldGuests),
		get(BookingFieldContact),
	)
}
