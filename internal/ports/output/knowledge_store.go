package output

import "bbq-enquiry/internal/domain"

// KnowledgeStore interface - Output port
// Read-only lookup of per-outlet records and the static city to outlet-list
// mapping. Lookups are case-sensitive on canonical identifiers; all
// canonicalization (title-casing, "<chain> - <City>" composition) happens in
// the caller. The store is immutable after construction and may be shared
// across sessions without locking.
type KnowledgeStore interface {
	// ListCities returns the configured city names in configuration order
	ListCities() ([]string, error)

	// ListOutlets returns outlet display names for a city, empty if the
	// city is unknown
	ListOutlets(city string) ([]string, error)

	// ListOutletNames returns every canonical outlet identifier with a
	// knowledge record, sorted
	ListOutletNames() ([]string, error)

	// GetOutlet returns the full record for a canonical outlet identifier,
	// nil if absent
	GetOutlet(outletID string) (*domain.OutletRecord, error)

	// GetMenu returns the ordered menu lines for an outlet, empty if absent
	GetMenu(outletID string) ([]string, error)

	// GetFaqs returns the ordered FAQ entries for an outlet, empty if absent
	GetFaqs(outletID string) ([]string, error)

	// Search matches query case-insensitively against menu lines and FAQ
	// entries of every outlet
	Search(query string) (map[string]domain.SearchResult, error)
}
