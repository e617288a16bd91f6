package repositories

import (
	"path/filepath"
	"strconv"
	"sync"

	"github.com/shashiranjanraj/vastra/app/models"
	"github.com/shashiranjanraj/vastra/pkg/collection"
	"github.com/shashiranjanraj/vastra/pkg/logger"
)

// ProductRepository serves the immutable catalogue. The fixture document is
// read on first use and cached for the process lifetime; a failed read is
// logged and degrades to an empty catalogue.
type ProductRepository struct {
	mu       sync.Mutex
	path     string
	loaded   bool
	products []models.Product
}

// NewProductRepository reads products from <dir>/products.json.
func NewProductRepository(dir string) *ProductRepository {
	return &ProductRepository{path: filepath.Join(dir, "products.json")}
}

// All returns every catalogue product, in document order.
func (r *ProductRepository) All() []models.Product {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.load()

	out := make([]models.Product, len(r.products))
	copy(out, r.products)
	return out
}

// Find looks a product up by id. String and numeric ids are both accepted;
// the id is normalized to the catalogue's integer key before comparison.
func (r *ProductRepository) Find(id interface{}) (models.Product, bool) {
	key, ok := normalizeID(id)
	if !ok {
		return models.Product{}, false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.load()

	return collection.First(r.products, func(p models.Product) bool {
		return p.ID == key
	})
}

// load fills the cache on the first successful read. Callers hold r.mu.
func (r *ProductRepository) load() {
	if r.loaded {
		return
	}

	var products []models.Product
	if err := readDocument(r.path, &products); err != nil {
		logger.Error("product fixture unavailable, serving empty catalogue", "error", err)
		return
	}

	r.products = products
	r.loaded = true
}

func normalizeID(id interface{}) (int, bool) {
	switch v := id.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	case string:
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}
