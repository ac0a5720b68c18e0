package domain

// OutletRecord - Read-only knowledge base record for a single outlet,
// keyed by the canonical outlet identifier ("<chain> - <City>")
type OutletRecord struct {
	Name    string   `json:"name"`
	City    string   `json:"city"`
	Address string   `json:"address"`
	Contact string   `json:"contact"`
	Hours   string   `json:"hours"`
	Menu    []string `json:"menu"`
	Faqs    []string `json:"faqs"`
}

// SearchResult holds the menu lines and FAQ entries of one outlet that
// matched a free-text search
type SearchResult struct {
	Menu []string `json:"menu,omitempty"`
	Faqs []string `json:"faq,omitempty"`
}
