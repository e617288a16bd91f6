package services

import (
	"strings"
	"sync"

	"github.com/shashiranjanraj/vastra/app/models"
	"github.com/shashiranjanraj/vastra/app/repositories"
	"github.com/shashiranjanraj/vastra/pkg/collection"
	"github.com/shashiranjanraj/vastra/pkg/event"
	"github.com/shashiranjanraj/vastra/pkg/kv"
	"github.com/shashiranjanraj/vastra/pkg/logger"
)

// CartService owns the persisted cart: an ordered list of lines, at most
// one per (product id, size). Lines snapshot the product's name, price and
// image at insertion time; the catalogue is never consulted again for
// existing lines.
//
// Every mutation is one read-modify-write under the service mutex: the
// latest persisted value is read at the start of the operation and written
// back before it returns, so handler invocations never interleave
// mid-operation.
type CartService struct {
	mu       sync.Mutex
	store    kv.Store
	key      string
	products *repositories.ProductRepository
	bus      *event.Bus
}

func NewCartService(store kv.Store, key string, products *repositories.ProductRepository, bus *event.Bus) *CartService {
	return &CartService{store: store, key: key, products: products, bus: bus}
}

// Items returns the persisted cart in insertion order. A missing or
// corrupt record fails closed to an empty cart.
func (s *CartService) Items() []models.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read()
}

// Add puts quantity units of (productID, size) into the cart. If the line
// already exists its quantity is incremented; otherwise a new line is
// appended with the product's current name, price and image snapshotted.
func (s *CartService) Add(productID, quantity int, size string) (models.CartLine, error) {
	if strings.TrimSpace(size) == "" {
		return models.CartLine{}, models.ErrMissingSize
	}
	if quantity <= 0 {
		return models.CartLine{}, models.ErrNonPositiveQuantity
	}

	product, ok := s.products.Find(productID)
	if !ok {
		return models.CartLine{}, models.ErrProductNotFound
	}

	s.mu.Lock()
	lines := s.read()

	idx := collection.Search(lines, func(l models.CartLine) bool {
		return l.Matches(productID, size)
	})
	if idx >= 0 {
		lines[idx].Quantity += quantity
	} else {
		lines = append(lines, models.CartLine{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			ImageURL:  product.ImageURL,
			Quantity:  quantity,
			Size:      size,
		})
		idx = len(lines) - 1
	}

	line := lines[idx]
	count, err := s.write(lines)
	s.mu.Unlock()
	if err != nil {
		return models.CartLine{}, err
	}

	s.bus.Fire(event.CartUpdated, event.CartUpdate{Op: "add", ItemCount: count})
	return line, nil
}

// Remove drops the line matching exactly (productID, size). Removing an
// absent line is a no-op.
func (s *CartService) Remove(productID int, size string) {
	s.mu.Lock()
	lines := s.read()

	rest := collection.Reject(lines, func(l models.CartLine) bool {
		return l.Matches(productID, size)
	})
	if len(rest) == len(lines) {
		s.mu.Unlock()
		return
	}

	count, err := s.write(rest)
	s.mu.Unlock()
	if err != nil {
		return
	}

	s.bus.Fire(event.CartUpdated, event.CartUpdate{Op: "remove", ItemCount: count})
}

// UpdateQuantity sets the matching line's quantity. A non-positive
// quantity deletes the line instead of erroring; an absent line is a
// logged no-op.
func (s *CartService) UpdateQuantity(productID int, size string, quantity int) {
	if quantity <= 0 {
		s.Remove(productID, size)
		return
	}

	s.mu.Lock()
	lines := s.read()

	idx := collection.Search(lines, func(l models.CartLine) bool {
		return l.Matches(productID, size)
	})
	if idx < 0 {
		s.mu.Unlock()
		logger.Warn("update for a line not in the cart", "product_id", productID, "size", size)
		return
	}

	lines[idx].Quantity = quantity
	count, err := s.write(lines)
	s.mu.Unlock()
	if err != nil {
		return
	}

	s.bus.Fire(event.CartUpdated, event.CartUpdate{Op: "update", ItemCount: count})
}

// Total sums snapshotted price × quantity across all lines. Empty cart
// totals zero.
func (s *CartService) Total() float64 {
	return collection.Sum(s.Items(), func(l models.CartLine) float64 {
		return l.Subtotal()
	})
}

// ItemCount sums quantities across all lines (the navbar badge number).
func (s *CartService) ItemCount() int {
	return countItems(s.Items())
}

// read fetches the latest persisted cart. Callers hold s.mu.
func (s *CartService) read() []models.CartLine {
	var lines []models.CartLine
	s.store.Get(s.key, &lines)
	return lines
}

// write persists lines and returns the new item count. Callers hold s.mu.
func (s *CartService) write(lines []models.CartLine) (int, error) {
	if err := s.store.Put(s.key, lines); err != nil {
		logger.Error("cart store write failed", "error", err)
		return 0, err
	}
	return countItems(lines), nil
}

func countItems(lines []models.CartLine) int {
	return collection.Sum(lines, func(l models.CartLine) int {
		return l.Quantity
	})
}
