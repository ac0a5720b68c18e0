package application

import (
	"strings"

	"bbq-enquiry/internal/domain"
)

// mockKnowledgeStore implements output.KnowledgeStore with overridable
// behavior per test. The zero value serves a small two-city knowledge base.
type mockKnowledgeStore struct {
	ListCitiesFunc      func() ([]string, error)
	ListOutletsFunc     func(city string) ([]string, error)
	ListOutletNamesFunc func() ([]string, error)
	GetOutletFunc       func(outletID string) (*domain.OutletRecord, error)
	GetMenuFunc         func(outletID string) ([]string, error)
	GetFaqsFunc         func(outletID string) ([]string, error)
	SearchFunc          func(query string) (map[string]domain.SearchResult, error)
}

var (
	testCities  = []string{"delhi", "bangalore"}
	testOutlets = map[string][]string{
		"delhi":     {"Connaught Place", "Unity Mall, Janakpuri", "Sector C, Vasant Kunj"},
		"bangalore": {"JP Nagar", "Koramangala 1st Block", "Electronic City", "Indiranagar"},
	}
	testMenus = map[string][]string{
		"Barbeque Nation - Delhi":     {"Veg Starters: Paneer Tikka", "Desserts: Gulab Jamun"},
		"Barbeque Nation - Bangalore": {"Non-Veg Starters: Chicken Tikka", "Desserts: Kulfi"},
	}
	testFaqs = map[string][]string{
		"Barbeque Nation - Delhi":     {"Q: Timings? A: 12 to 11.", "Q: Parking? A: Yes."},
		"Barbeque Nation - Bangalore": {"Q: Valet? A: Yes."},
	}
)

func (m *mockKnowledgeStore) ListCities() ([]string, error) {
	if m.ListCitiesFunc != nil {
		return m.ListCitiesFunc()
	}
	return testCities, nil
}

func (m *mockKnowledgeStore) ListOutlets(city string) ([]string, error) {
	if m.ListOutletsFunc != nil {
		return m.ListOutletsFunc(city)
	}
	return testOutlets[strings.ToLower(city)], nil
}

func (m *mockKnowledgeStore) ListOutletNames() ([]string, error) {
	if m.ListOutletNamesFunc != nil {
		return m.ListOutletNamesFunc()
	}
	return []string{"Barbeque Nation - Bangalore", "Barbeque Nation - Delhi"}, nil
}

func (m *mockKnowledgeStore) GetOutlet(outletID string) (*domain.OutletRecord, error) {
	if m.GetOutletFunc != nil {
		return m.GetOutletFunc(outletID)
	}
	if _, ok := testMenus[outletID]; !ok {
		return nil, nil
	}
	return &domain.OutletRecord{Name: outletID}, nil
}

func (m *mockKnowledgeStore) GetMenu(outletID string) ([]string, error) {
	if m.GetMenuFunc != nil {
		return m.GetMenuFunc(outletID)
	}
	return testMenus[outletID], nil
}

func (m *mockKnowledgeStore) GetFaqs(outletID string) ([]string, error) {
	if m.GetFaqsFunc != nil {
		return m.GetFaqsFunc(outletID)
	}
	return testFaqs[outletID], nil
}

func (m *mockKnowledgeStore) Search(query string) (map[string]domain.SearchResult, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(query)
	}
	return map[string]domain.SearchResult{}, nil
}

// mockBookingRepository implements output.BookingRepository and records
// created bookings for assertions
type mockBookingRepository struct {
	CreateBookingFunc func(booking *domain.Booking) (*domain.Booking, error)
	Created           []*domain.Booking
}

func (m *mockBookingRepository) CreateBooking(booking *domain.Booking) (*domain.Booking, error) {
	if m.CreateBookingFunc != nil {
		return m.CreateBookingFunc(booking)
	}
	m.Created = append(m.Created, booking)
	return booking, nil
}

func (m *mockBookingRepository) GetBooking(reference string) (*domain.Booking, error) {
	for _, booking := range m.Created {
		if booking.Reference == reference {
			return booking, nil
		}
	}
	return nil, domain.ErrBookingNotFound
}

func (m *mockBookingRepository) ListBookings() ([]domain.Booking, error) {
	bookings := make([]domain.Booking, 0, len(m.Created))
	for _, booking := range m.Created {
		bookings = append(bookings, *booking)
	}
	return bookings, nil
}

// mockSessionStore implements output.SessionStore and captures writes and
// deletes for assertions
type mockSessionStore struct {
	GetSessionFunc    func(sessionID string) (*domain.SessionContext, error)
	UpdateSessionFunc func(context *domain.SessionContext) error
	DeleteSessionFunc func(sessionID string) error

	LastUpdatedSession *domain.SessionContext
	DeleteCalls        []string
}

func (m *mockSessionStore) GetSession(sessionID string) (*domain.SessionContext, error) {
	if m.GetSessionFunc != nil {
		return m.GetSessionFunc(sessionID)
	}
	return nil, nil
}

func (m *mockSessionStore) UpdateSession(context *domain.SessionContext) error {
	if m.UpdateSessionFunc != nil {
		return m.UpdateSessionFunc(context)
	}
	m.LastUpdatedSession = context
	return nil
}

func (m *mockSessionStore) DeleteSession(sessionID string) error {
	m.DeleteCalls = append(m.DeleteCalls, sessionID)
	if m.DeleteSessionFunc != nil {
		return m.DeleteSessionFunc(sessionID)
	}
	return nil
}

// mockAnalysisStore implements output.AnalysisStore over a plain map
type mockAnalysisStore struct {
	SaveAnalysisFunc func(analysis *domain.CallAnalysis) error

	saved map[string]*domain.CallAnalysis
	order []string
}

func (m *mockAnalysisStore) SaveAnalysis(analysis *domain.CallAnalysis) error {
	if m.SaveAnalysisFunc != nil {
		return m.SaveAnalysisFunc(analysis)
	}
	if m.saved == nil {
		m.saved = make(map[string]*domain.CallAnalysis)
	}
	if _, ok := m.saved[analysis.SessionID]; !ok {
		m.order = append(m.order, analysis.SessionID)
	}
	m.saved[analysis.SessionID] = analysis
	return nil
}

func (m *mockAnalysisStore) GetAnalysis(sessionID string) (*domain.CallAnalysis, error) {
	return m.saved[sessionID], nil
}

func (m *mockAnalysisStore) ListAnalyses() ([]domain.CallAnalysis, error) {
	analyses := make([]domain.CallAnalysis, 0, len(m.order))
	for _, id := range m.order {
		analyses = append(analyses, *m.saved[id])
	}
	return analyses, nil
}
