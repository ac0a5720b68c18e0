package domain

import (
	"strings"
	"time"
)

// ConversationState represents the stage of an enquiry conversation
type ConversationState string

const (
	// StateInitialGreeting - First contact, nothing collected yet
	StateInitialGreeting ConversationState = "initial_greeting"
	// StateCitySelection - Waiting for the user to pick a city
	StateCitySelection ConversationState = "city_selection"
	// StateOutletSelection - Waiting for an outlet or an action (menu, booking, FAQs)
	StateOutletSelection ConversationState = "outlet_selection"
	// StateQueryTypeSelection - An intent is set, render the matching content
	StateQueryTypeSelection ConversationState = "query_type_selection"
	// StateFaqHandling - Walking through FAQ entries for an outlet
	StateFaqHandling ConversationState = "faq_handling"
	// StateBookingCollection - Collecting booking fields
	StateBookingCollection ConversationState = "booking_collection"
	// StateBookingConfirmation - Booking summary shown, waiting for yes/no
	StateBookingConfirmation ConversationState = "booking_confirmation"
	// StateFarewell - Conversation ended
	StateFarewell ConversationState = "farewell"
)

// conversationStates is the closed set of valid states
var conversationStates = map[ConversationState]struct{}{
	StateInitialGreeting:     {},
	StateCitySelection:       {},
	StateOutletSelection:     {},
	StateQueryTypeSelection:  {},
	StateFaqHandling:         {},
	StateBookingCollection:   {},
	StateBookingConfirmation: {},
	StateFarewell:            {},
}

// Valid reports whether the state is a member of the closed enumeration
func (s ConversationState) Valid() bool {
	_, ok := conversationStates[s]
	return ok
}

// ParseConversationState validates a caller-supplied state string.
// Returns false for empty or unknown values so callers can fall back
// deterministically instead of trusting raw input.
func ParseConversationState(value string) (ConversationState, bool) {
	state := ConversationState(value)
	if !state.Valid() {
		return "", false
	}
	return state, true
}

// QueryType represents the intent the user picked during outlet selection
type QueryType string

const (
	// QueryTypeMenu - Show the outlet menu
	QueryTypeMenu QueryType = "Menu"
	// QueryTypeFaqs - Show the outlet FAQs
	QueryTypeFaqs QueryType = "FAQs"
	// QueryTypeLocationInfo - General questions about a selected location
	QueryTypeLocationInfo QueryType = "Location_Info"
	// QueryTypeBooking - Table booking
	QueryTypeBooking QueryType = "Booking"
)

// SessionContext carries everything accumulated in one conversation.
// The dialogue engine treats a context as immutable input: it clones
// before mutating and returns the derived context for persistence.
type SessionContext struct {
	SessionID      string            `json:"session_id"`
	CurrentState   ConversationState `json:"current_state"`
	City           string            `json:"city,omitempty"`
	Outlet         string            `json:"outlet,omitempty"`
	QueryType      QueryType         `json:"query_type,omitempty"`
	BookingDetails map[string]string `json:"booking_details,omitempty"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

// NewSessionContext creates a fresh context for a session identifier
func NewSessionContext(sessionID string, state ConversationState) SessionContext {
	return SessionContext{
		SessionID:    sessionID,
		CurrentState: state,
		UpdatedAt:    time.Now(),
	}
}

// Clone returns a deep copy so a turn never aliases the stored context
func (c SessionContext) Clone() SessionContext {
	clone := c
	if c.BookingDetails != nil {
		clone.BookingDetails = make(map[string]string, len(c.BookingDetails))
		for k, v := range c.BookingDetails {
			clone.BookingDetails[k] = v
		}
	}
	return clone
}

// SetBookingDetail records one collected booking field
func (c *SessionContext) SetBookingDetail(field, value string) {
	if c.BookingDetails == nil {
		c.BookingDetails = make(map[string]string)
	}
	c.BookingDetails[field] = value
}

// Expired checks whether the context has been idle longer than timeout
func (c SessionContext) Expired(timeout time.Duration) bool {
	return time.Since(c.UpdatedAt) > timeout
}

// CanonicalCity normalizes a city the way it is stored in a context:
// first letter upper-cased, rest lower-cased ("delhi" -> "Delhi")
func CanonicalCity(city string) string {
	city = strings.TrimSpace(city)
	if city == "" {
		return ""
	}
	return strings.ToUpper(city[:1]) + strings.ToLower(city[1:])
}

// OutletKey composes the canonical outlet identifier used by the
// knowledge store ("<chain> - <City>")
func OutletKey(chain, city string) string {
	return chain + " - " + CanonicalCity(city)
}
