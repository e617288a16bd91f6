package services_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/shashiranjanraj/vastra/app/models"
	"github.com/shashiranjanraj/vastra/app/repositories"
	"github.com/shashiranjanraj/vastra/app/services"
	"github.com/shashiranjanraj/vastra/pkg/event"
	"github.com/shashiranjanraj/vastra/pkg/kv"
)

func writeFixtures(t *testing.T, products []models.Product, users []models.User) string {
	t.Helper()
	dir := t.TempDir()

	writeDoc := func(name string, v interface{}) {
		raw, err := json.Marshal(v)
		if err != nil {
			t.Fatalf("marshal %s: %v", name, err)
		}
		if err := os.WriteFile(filepath.Join(dir, name), raw, 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}

	writeDoc("products.json", products)
	writeDoc("users.json", users)
	return dir
}

func defaultProducts() []models.Product {
	return []models.Product{
		{ID: 42, Name: "Tee", Price: 10.00, ImageURL: "/img/tee.png", Description: "A tee", Sizes: []string{"S", "M", "L"}, Category: "tops"},
		{ID: 7, Name: "Hoodie", Price: 35.50, ImageURL: "/img/hoodie.png", Description: "A hoodie", Sizes: []string{"M", "L"}, Category: "tops"},
	}
}

func newCart(t *testing.T) (*services.CartService, *event.Bus) {
	t.Helper()
	dir := writeFixtures(t, defaultProducts(), nil)
	bus := event.NewBus()
	cart := services.NewCartService(kv.NewMemory(), "test:cart", repositories.NewProductRepository(dir), bus)
	return cart, bus
}

func TestAddTwiceMergesIntoOneLine(t *testing.T) {
	cart, _ := newCart(t)

	for i := 0; i < 2; i++ {
		if _, err := cart.Add(42, 1, "M"); err != nil {
			t.Fatalf("add failed: %v", err)
		}
	}

	lines := cart.Items()
	if len(lines) != 1 {
		t.Fatalf("expected a single merged line, got %d", len(lines))
	}
	if lines[0].Quantity != 2 {
		t.Errorf("expected quantity 2, got %d", lines[0].Quantity)
	}
}

func TestDistinctSizesAreIndependentLines(t *testing.T) {
	cart, _ := newCart(t)

	if _, err := cart.Add(42, 1, "S"); err != nil {
		t.Fatalf("add S failed: %v", err)
	}
	if _, err := cart.Add(42, 1, "M"); err != nil {
		t.Fatalf("add M failed: %v", err)
	}

	lines := cart.Items()
	if len(lines) != 2 {
		t.Fatalf("expected two lines, got %d", len(lines))
	}
	// Insertion order is preserved.
	if lines[0].Size != "S" || lines[1].Size != "M" {
		t.Errorf("unexpected order: %v, %v", lines[0].Size, lines[1].Size)
	}
}

func TestAddValidation(t *testing.T) {
	cart, _ := newCart(t)

	if _, err := cart.Add(42, 1, ""); err != models.ErrMissingSize {
		t.Errorf("expected ErrMissingSize, got %v", err)
	}
	if _, err := cart.Add(42, 0, "M"); err != models.ErrNonPositiveQuantity {
		t.Errorf("expected ErrNonPositiveQuantity, got %v", err)
	}
	if _, err := cart.Add(999, 1, "M"); err != models.ErrProductNotFound {
		t.Errorf("expected ErrProductNotFound, got %v", err)
	}

	if len(cart.Items()) != 0 {
		t.Error("failed adds must leave the cart unchanged")
	}
}

func TestUpdateQuantityZeroEqualsRemove(t *testing.T) {
	cartA, _ := newCart(t)
	cartB, _ := newCart(t)

	for _, c := range []*services.CartService{cartA, cartB} {
		if _, err := c.Add(42, 2, "M"); err != nil {
			t.Fatalf("add failed: %v", err)
		}
		if _, err := c.Add(7, 1, "L"); err != nil {
			t.Fatalf("add failed: %v", err)
		}
	}

	cartA.UpdateQuantity(42, "M", 0)
	cartB.Remove(42, "M")

	a, b := cartA.Items(), cartB.Items()
	if len(a) != 1 || len(b) != 1 {
		t.Fatalf("expected one line each, got %d and %d", len(a), len(b))
	}
	if a[0] != b[0] {
		t.Errorf("update-to-zero and remove diverged: %+v vs %+v", a[0], b[0])
	}
}

func TestUpdateQuantitySets(t *testing.T) {
	cart, _ := newCart(t)

	if _, err := cart.Add(42, 2, "M"); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	cart.UpdateQuantity(42, "M", 5)

	lines := cart.Items()
	if lines[0].Quantity != 5 {
		t.Errorf("expected quantity 5, got %d", lines[0].Quantity)
	}
	if got := cart.Total(); got != 50.00 {
		t.Errorf("expected total 50.00, got %v", got)
	}
}

func TestUpdateQuantityAbsentLineIsNoop(t *testing.T) {
	cart, _ := newCart(t)

	if _, err := cart.Add(42, 2, "M"); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	cart.UpdateQuantity(42, "XL", 3)

	lines := cart.Items()
	if len(lines) != 1 || lines[0].Quantity != 2 {
		t.Errorf("expected cart untouched, got %+v", lines)
	}
}

func TestRemoveAbsentLineIsNoop(t *testing.T) {
	cart, _ := newCart(t)

	cart.Remove(42, "M") // empty cart

	if _, err := cart.Add(42, 1, "M"); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	cart.Remove(42, "L") // same product, other size

	if len(cart.Items()) != 1 {
		t.Error("removing an absent line must not touch other lines")
	}
}

func TestRemovingLastLineYieldsEmptyValidCart(t *testing.T) {
	cart, _ := newCart(t)

	if _, err := cart.Add(42, 1, "M"); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	cart.Remove(42, "M")

	if len(cart.Items()) != 0 {
		t.Error("expected empty cart")
	}
	if cart.Total() != 0 {
		t.Errorf("expected total 0, got %v", cart.Total())
	}
	if cart.ItemCount() != 0 {
		t.Errorf("expected item count 0, got %d", cart.ItemCount())
	}
}

func TestAddScenario(t *testing.T) {
	cart, _ := newCart(t)

	line, err := cart.Add(42, 2, "M")
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}

	want := models.CartLine{ProductID: 42, Name: "Tee", Price: 10.00, ImageURL: "/img/tee.png", Quantity: 2, Size: "M"}
	if line != want {
		t.Errorf("unexpected line: %+v", line)
	}
	if got := cart.Total(); got != 20.00 {
		t.Errorf("expected total 20.00, got %v", got)
	}
	if got := cart.ItemCount(); got != 2 {
		t.Errorf("expected item count 2, got %d", got)
	}
}

func TestTotalUsesPriceSnapshot(t *testing.T) {
	products := defaultProducts()
	dir := writeFixtures(t, products, nil)
	store := kv.NewMemory()
	bus := event.NewBus()

	cart := services.NewCartService(store, "test:cart", repositories.NewProductRepository(dir), bus)
	if _, err := cart.Add(42, 2, "M"); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	// The fixture price changes and a fresh repository picks it up, but the
	// line keeps the price it was added at.
	products[0].Price = 99.99
	raw, _ := json.Marshal(products)
	if err := os.WriteFile(filepath.Join(dir, "products.json"), raw, 0o644); err != nil {
		t.Fatalf("rewrite fixture: %v", err)
	}

	reopened := services.NewCartService(store, "test:cart", repositories.NewProductRepository(dir), bus)
	if got := reopened.Total(); got != 20.00 {
		t.Errorf("expected snapshotted total 20.00, got %v", got)
	}
}

func TestCartSurvivesRestartOnFileStore(t *testing.T) {
	dir := writeFixtures(t, defaultProducts(), nil)
	dataDir := t.TempDir()
	bus := event.NewBus()

	cart := services.NewCartService(kv.NewFile(dataDir), "vastra:cart", repositories.NewProductRepository(dir), bus)
	if _, err := cart.Add(7, 3, "L"); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	reopened := services.NewCartService(kv.NewFile(dataDir), "vastra:cart", repositories.NewProductRepository(dir), bus)
	if got := reopened.ItemCount(); got != 3 {
		t.Errorf("expected item count 3 after restart, got %d", got)
	}
}

func TestMutationsPublishCartUpdated(t *testing.T) {
	cart, bus := newCart(t)

	var updates []event.CartUpdate
	bus.Listen(event.CartUpdated, func(payload interface{}) {
		if u, ok := payload.(event.CartUpdate); ok {
			updates = append(updates, u)
		}
	})

	if _, err := cart.Add(42, 2, "M"); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	cart.UpdateQuantity(42, "M", 5)
	cart.Remove(42, "M")

	if len(updates) != 3 {
		t.Fatalf("expected 3 events, got %d", len(updates))
	}
	if updates[0].Op != "add" || updates[0].ItemCount != 2 {
		t.Errorf("unexpected add event: %+v", updates[0])
	}
	if updates[1].Op != "update" || updates[1].ItemCount != 5 {
		t.Errorf("unexpected update event: %+v", updates[1])
	}
	if updates[2].Op != "remove" || updates[2].ItemCount != 0 {
		t.Errorf("unexpected remove event: %+v", updates[2])
	}
}

func TestCorruptCartFailsClosed(t *testing.T) {
	dir := writeFixtures(t, defaultProducts(), nil)
	store := kv.NewMemory()
	if err := store.Put("test:cart", "definitely not a cart"); err != nil {
		t.Fatalf("put failed: %v", err)
	}

	cart := services.NewCartService(store, "test:cart", repositories.NewProductRepository(dir), event.NewBus())
	if len(cart.Items()) != 0 {
		t.Error("expected corrupt cart to read as empty")
	}
}
