package application

import (
	"fmt"
	"strconv"
	"strings"

	"bbq-enquiry/internal/domain"
	"bbq-enquiry/internal/ports/output"
)

// Next actions offered alongside the outlet list
var nextActions = []string{"Menu", "Book Table", "FAQs"}

// DialogueEngine struct - The per-session state machine. Given the current
// context and one user utterance it decides the next state, derives a new
// context and produces the reply payload. Contexts are treated as immutable
// input: the engine clones before mutating and never touches the argument.
//
// Each turn runs in two phases: state-conditioned input interpretation
// (which may return a terminal re-prompt for unrecognized input), then
// response rendering on the post-transition state.
type DialogueEngine struct {
	knowledge output.KnowledgeStore
	bookings  output.BookingRepository
	chain     string
}

// NewDialogueEngine func - Creates new dialogue engine
func NewDialogueEngine(knowledge output.KnowledgeStore, bookings output.BookingRepository, chain string) *DialogueEngine {
	return &DialogueEngine{
		knowledge: knowledge,
		bookings:  bookings,
		chain:     chain,
	}
}

// ProcessTurn processes one user utterance. Malformed or unrecognized input
// is a normal branch that re-prompts in the same state, never an error. A
// returned error means a turn-level fault (knowledge store or booking
// persistence failure); no derived context should be stored in that case.
func (e *DialogueEngine) ProcessTurn(context domain.SessionContext, rawInput string) (domain.SessionContext, *domain.ChatReply, error) {
	next := context.Clone()
	input := strings.ToLower(strings.TrimSpace(rawInput))

	// Reference of a booking confirmed during this turn, echoed by the
	// farewell rendering
	var confirmedRef string

	// Phase 1 - state-conditioned input interpretation
	switch context.CurrentState {
	case domain.StateInitialGreeting:
		if input != "" {
			next.CurrentState = domain.StateCitySelection
		}

	case domain.StateCitySelection:
		cities, err := e.knowledge.ListCities()
		if err != nil {
			return context, nil, fmt.Errorf("failed to list cities: %w", err)
		}
		if containsFold(cities, input) {
			next.City = domain.CanonicalCity(input)
			next.CurrentState = domain.StateOutletSelection
		} else {
			// Terminal branch: unrecognized city, re-issue the prompt
			return next, &domain.ChatReply{
				Response: "Sorry, I don't recognize that city. Please select a city from the options.",
				State:    next.CurrentState,
				Options:  &domain.ReplyOptions{Cities: cities},
			}, nil
		}

	case domain.StateOutletSelection:
		outlets, err := e.knowledge.ListOutlets(strings.ToLower(context.City))
		if err != nil {
			return context, nil, fmt.Errorf("failed to list outlets: %w", err)
		}

		// Tie-break order is fixed: an outlet name match wins over the
		// keyword matches, so an outlet literally named "menu" resolves
		// as a location
		switch {
		case containsFold(outlets, input):
			next.Outlet = domain.OutletKey(e.chain, context.City)
			next.QueryType = domain.QueryTypeLocationInfo
			next.CurrentState = domain.StateQueryTypeSelection

		case strings.Contains(input, "menu"):
			next.Outlet = domain.OutletKey(e.chain, context.City)
			next.QueryType = domain.QueryTypeMenu
			next.CurrentState = domain.StateQueryTypeSelection

		case strings.Contains(input, "book table") || strings.Contains(input, "booking"):
			next.QueryType = domain.QueryTypeBooking
			next.CurrentState = domain.StateBookingCollection

		case strings.Contains(input, "faq"):
			next.Outlet = domain.OutletKey(e.chain, context.City)
			next.QueryType = domain.QueryTypeFaqs
			next.CurrentState = domain.StateQueryTypeSelection

		default:
			// Terminal branch: repeat the outlet prompt
			return next, &domain.ChatReply{
				Response: "I didn't understand that. Please select a location or one of the actions (Menu, Book Table, FAQs).",
				State:    next.CurrentState,
				Options:  &domain.ReplyOptions{Locations: outlets, NextActions: nextActions},
			}, nil
		}

	case domain.StateFaqHandling:
		if input == "no" {
			next.CurrentState = domain.StateFarewell
		}

	case domain.StateBookingCollection:
		parsed := domain.ParseBookingInput(rawInput)
		for field, value := range parsed {
			next.SetBookingDetail(field, value)
		}
		// A message with no recognizable field doubles as the guest name
		// when none was captured yet
		if len(parsed) == 0 && input != "" && next.BookingDetails[domain.BookingFieldName] == "" {
			next.SetBookingDetail(domain.BookingFieldName, strings.TrimSpace(rawInput))
		}
		if len(domain.MissingBookingFields(next.BookingDetails)) == 0 {
			next.CurrentState = domain.StateBookingConfirmation
		}

	case domain.StateBookingConfirmation:
		switch input {
		case "yes":
			reference, err := e.confirmBooking(next)
			if err != nil {
				return context, nil, fmt.Errorf("failed to store booking: %w", err)
			}
			confirmedRef = reference
			next.CurrentState = domain.StateFarewell
		case "no":
			next.CurrentState = domain.StateBookingCollection
		}

	case domain.StateQueryTypeSelection, domain.StateFarewell:
		// Input does not drive a transition here; the existing query type
		// and outlet determine the rendering
	}

	// Phase 2 - response rendering on the post-transition state
	reply, err := e.render(next, confirmedRef)
	if err != nil {
		return context, nil, err
	}
	return next, reply, nil
}

// render builds the reply payload for the post-transition state
func (e *DialogueEngine) render(context domain.SessionContext, confirmedRef string) (*domain.ChatReply, error) {
	reply := &domain.ChatReply{State: context.CurrentState}

	switch context.CurrentState {
	case domain.StateInitialGreeting:
		cities, err := e.knowledge.ListCities()
		if err != nil {
			return nil, fmt.Errorf("failed to list cities: %w", err)
		}
		reply.Response = fmt.Sprintf("Welcome to %s! How can I help you today? Please select your city.", e.chain)
		reply.Options = &domain.ReplyOptions{Cities: cities}

	case domain.StateCitySelection:
		cities, err := e.knowledge.ListCities()
		if err != nil {
			return nil, fmt.Errorf("failed to list cities: %w", err)
		}
		reply.Response = fmt.Sprintf("Please select a city (%s):", joinCanonical(cities, " or "))
		reply.Options = &domain.ReplyOptions{Cities: cities}

	case domain.StateOutletSelection:
		outlets, err := e.knowledge.ListOutlets(strings.ToLower(context.City))
		if err != nil {
			return nil, fmt.Errorf("failed to list outlets: %w", err)
		}
		if len(outlets) > 0 {
			var b strings.Builder
			fmt.Fprintf(&b, "Here are the locations in %s:\n", context.City)
			for _, outlet := range outlets {
				fmt.Fprintf(&b, "- %s\n", outlet)
			}
			b.WriteString("\nPlease select a location or tell me what you'd like to do (e.g., view menu, book a table, FAQs).")
			reply.Response = b.String()
			reply.Options = &domain.ReplyOptions{Locations: outlets, NextActions: nextActions}
		} else {
			cities, err := e.knowledge.ListCities()
			if err != nil {
				return nil, fmt.Errorf("failed to list cities: %w", err)
			}
			reply.Response = fmt.Sprintf("Sorry, no locations found for %s. Please select another city.", context.City)
			reply.Options = &domain.ReplyOptions{Cities: cities}
		}

	case domain.StateQueryTypeSelection:
		return e.renderQuery(context)

	case domain.StateFaqHandling:
		outlet := context.Outlet
		if outlet == "" && context.City != "" {
			outlet = domain.OutletKey(e.chain, context.City)
		}
		if outlet == "" {
			reply.Response = "I'm not sure how to proceed. Can we start over?"
			return reply, nil
		}
		faqs, err := e.knowledge.GetFaqs(outlet)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch faqs: %w", err)
		}
		if len(faqs) > 0 {
			reply.Response = fmt.Sprintf("Here are some FAQs for %s:\n%s\n\nWould you like anything else? (yes/no)", outlet, strings.Join(faqs, "\n"))
		} else {
			reply.Response = fmt.Sprintf("Sorry, I couldn't find FAQs for %s.\n\nWould you like anything else? (yes/no)", outlet)
		}
		reply.Options = &domain.ReplyOptions{Confirmation: []string{"yes", "no"}}

	case domain.StateBookingCollection:
		missing := domain.MissingBookingFields(context.BookingDetails)
		if len(context.BookingDetails) == 0 {
			reply.Response = "Please provide your booking details (name, date, time, guests)"
			reply.Options = &domain.ReplyOptions{BookingFields: domain.RequiredBookingFields}
		} else {
			reply.Response = fmt.Sprintf("Thanks! I still need the following details: %s", strings.Join(missing, ", "))
			reply.Options = &domain.ReplyOptions{BookingFields: missing}
		}

	case domain.StateBookingConfirmation:
		reply.Response = fmt.Sprintf("%s\n\nWould you like to confirm your booking? (yes/no)",
			domain.FormatBookingSummary(context.Outlet, context.BookingDetails))
		reply.Options = &domain.ReplyOptions{Confirmation: []string{"yes", "no"}}

	case domain.StateFarewell:
		if confirmedRef != "" {
			reply.Response = fmt.Sprintf("Your booking is confirmed! Reference: %s.\nThank you for choosing %s! Have a great day!", confirmedRef, e.chain)
		} else {
			reply.Response = fmt.Sprintf("Thank you for choosing %s! Have a great day!", e.chain)
		}

	default:
		// Guard for contexts that somehow carry a state outside the
		// enumeration; recover without touching the session
		reply.Response = "I'm not sure how to proceed. Can we start over?"
	}

	return reply, nil
}

// renderQuery dispatches on the captured query type once an intent is set
func (e *DialogueEngine) renderQuery(context domain.SessionContext) (*domain.ChatReply, error) {
	reply := &domain.ChatReply{State: context.CurrentState}

	switch context.QueryType {
	case domain.QueryTypeMenu:
		menu, err := e.knowledge.GetMenu(context.Outlet)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch menu: %w", err)
		}
		if len(menu) > 0 {
			reply.Response = fmt.Sprintf("Here is the menu for %s:\n%s", context.Outlet, strings.Join(menu, "\n"))
		} else {
			reply.Response = fmt.Sprintf("Sorry, I couldn't find the menu for %s.", context.Outlet)
		}

	case domain.QueryTypeFaqs:
		faqs, err := e.knowledge.GetFaqs(context.Outlet)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch faqs: %w", err)
		}
		if len(faqs) > 0 {
			reply.Response = fmt.Sprintf("Here are some FAQs for %s:\n%s", context.Outlet, strings.Join(faqs, "\n"))
		} else {
			reply.Response = fmt.Sprintf("Sorry, I couldn't find FAQs for %s.", context.Outlet)
		}

	case domain.QueryTypeLocationInfo:
		reply.Response = fmt.Sprintf("You've selected a location in %s. What specific information are you looking for about this location?", context.City)
		reply.Options = &domain.ReplyOptions{QueryTypes: []string{"FAQs", "Booking"}}

	default:
		reply.Response = "What would you like to know? (1 for FAQs, 2 for Booking)"
		reply.Options = &domain.ReplyOptions{QueryTypes: []string{"FAQs", "Booking"}}
	}

	return reply, nil
}

// confirmBooking persists a booking built from the collected details and
// returns its reference
func (e *DialogueEngine) confirmBooking(context domain.SessionContext) (string, error) {
	guests, _ := strconv.Atoi(context.BookingDetails[domain.BookingFieldGuests])
	outlet := context.Outlet
	if outlet == "" && context.City != "" {
		outlet = domain.OutletKey(e.chain, context.City)
	}

	booking := &domain.Booking{
		Reference: domain.GenerateBookingReference(),
		Outlet:    outlet,
		Name:      context.BookingDetails[domain.BookingFieldName],
		Date:      context.BookingDetails[domain.BookingFieldDate],
		Time:      context.BookingDetails[domain.BookingFieldTime],
		Guests:    guests,
		Contact:   context.BookingDetails[domain.BookingFieldContact],
	}

	stored, err := e.bookings.CreateBooking(booking)
	if err != nil {
		return "", err
	}
	return stored.Reference, nil
}

// containsFold reports whether values contains candidate, comparing
// case-insensitively through a single normalization rule
func containsFold(values []string, candidate string) bool {
	for _, value := range values {
		if strings.EqualFold(value, candidate) {
			return true
		}
	}
	return false
}

// joinCanonical joins city names in their canonical display form
func joinCanonical(cities []string, sep string) string {
	display := make([]string, 0, len(cities))
	for _, city := range cities {
		display = append(display, domain.CanonicalCity(city))
	}
	return strings.Join(display, sep)
}
