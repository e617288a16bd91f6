package models

// Product represents one catalogue entry. Products are fixture data: read
// from disk once per process and never mutated.
type Product struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	ImageURL    string   `json:"image_url"`
	Description string   `json:"description"`
	Sizes       []string `json:"sizes"`
	Category    string   `json:"category"`
}

// HasSize reports whether size is one of the product's offered sizes.
func (p Product) HasSize(size string) bool {
	for _, s := range p.Sizes {
		if s == size {
			return true
		}
	}
	return false
}
