package controllers_test

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/vastra/app/models"
	"github.com/shashiranjanraj/vastra/app/repositories"
	"github.com/shashiranjanraj/vastra/app/routes"
	"github.com/shashiranjanraj/vastra/app/services"
	"github.com/shashiranjanraj/vastra/pkg/event"
	"github.com/shashiranjanraj/vastra/pkg/kv"
	"github.com/shashiranjanraj/vastra/pkg/router"
	"github.com/shashiranjanraj/vastra/pkg/testkit"
)

func writeFixture(t *testing.T, dir, name string, v interface{}) {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), raw, 0o644))
}

// newTestApp wires the full route table over in-memory stores and a
// throwaway fixture directory.
func newTestApp(t *testing.T) http.Handler {
	t.Helper()

	dir := t.TempDir()
	writeFixture(t, dir, "products.json", []models.Product{
		{ID: 1, Name: "Tee", Price: 10.00, Sizes: []string{"S", "M"}, Category: "tops"},
		{ID: 2, Name: "Jacket", Price: 25.50, Sizes: []string{"L"}, Category: "outerwear"},
	})
	writeFixture(t, dir, "users.json", []models.User{
		{ID: 1, Name: "Asha", Email: "asha@example.com", Password: "secret1"},
	})

	bus := event.NewBus()
	products := repositories.NewProductRepository(dir)
	users := repositories.NewUserRepository(dir)
	session := services.NewSessionStore(kv.NewMemory(), "vastra:session:user")

	r := router.New()
	routes.Register(r, routes.Deps{
		Products: products,
		Cart:     services.NewCartService(kv.NewMemory(), "vastra:cart", products, bus),
		Auth:     services.NewAuthService(users, session, bus),
	})
	return r.Handler()
}

type cartBody struct {
	Items     []models.CartLine `json:"items"`
	Total     float64           `json:"total"`
	ItemCount int               `json:"item_count"`
}

func TestProductEndpoints(t *testing.T) {
	app := newTestApp(t)

	var all []models.Product
	testkit.Do(t, app, http.MethodGet, "/api/products", nil).
		AssertStatus(t, http.StatusOK).
		DecodeData(t, &all)
	require.Len(t, all, 2)
	assert.Equal(t, "Tee", all[0].Name)

	var one models.Product
	testkit.Do(t, app, http.MethodGet, "/api/products/2", nil).
		AssertStatus(t, http.StatusOK).
		DecodeData(t, &one)
	assert.Equal(t, "Jacket", one.Name)
	assert.Equal(t, 25.50, one.Price)

	testkit.Do(t, app, http.MethodGet, "/api/products/99", nil).
		AssertStatus(t, http.StatusNotFound)
}

func TestCartAddShowAndMerge(t *testing.T) {
	app := newTestApp(t)

	var line models.CartLine
	testkit.Do(t, app, http.MethodPost, "/api/cart",
		map[string]interface{}{"product_id": 1, "quantity": 2, "size": "M"}).
		AssertStatus(t, http.StatusCreated).
		DecodeData(t, &line)
	assert.Equal(t, "Tee", line.Name)
	assert.Equal(t, 10.00, line.Price)
	assert.Equal(t, 2, line.Quantity)

	// Same product and size merges into the existing line.
	testkit.Do(t, app, http.MethodPost, "/api/cart",
		map[string]interface{}{"product_id": 1, "quantity": 1, "size": "M"}).
		AssertStatus(t, http.StatusCreated)

	// Same product, different size gets its own line.
	testkit.Do(t, app, http.MethodPost, "/api/cart",
		map[string]interface{}{"product_id": 1, "quantity": 1, "size": "S"}).
		AssertStatus(t, http.StatusCreated)

	var body cartBody
	testkit.Do(t, app, http.MethodGet, "/api/cart", nil).
		AssertStatus(t, http.StatusOK).
		DecodeData(t, &body)
	require.Len(t, body.Items, 2)
	assert.Equal(t, 4, body.ItemCount)
	assert.Equal(t, 40.00, body.Total)
}

func TestCartUpdateAndRemove(t *testing.T) {
	app := newTestApp(t)

	testkit.Do(t, app, http.MethodPost, "/api/cart",
		map[string]interface{}{"product_id": 1, "quantity": 3, "size": "M"}).
		AssertStatus(t, http.StatusCreated)
	testkit.Do(t, app, http.MethodPost, "/api/cart",
		map[string]interface{}{"product_id": 2, "quantity": 1, "size": "L"}).
		AssertStatus(t, http.StatusCreated)

	var body cartBody
	testkit.Do(t, app, http.MethodPut, "/api/cart",
		map[string]interface{}{"product_id": 1, "size": "M", "quantity": 1}).
		AssertStatus(t, http.StatusOK).
		DecodeData(t, &body)
	assert.Equal(t, 2, body.ItemCount)

	// Quantity zero behaves like removal.
	testkit.Do(t, app, http.MethodPut, "/api/cart",
		map[string]interface{}{"product_id": 1, "size": "M", "quantity": 0}).
		AssertStatus(t, http.StatusOK).
		DecodeData(t, &body)
	require.Len(t, body.Items, 1)
	assert.Equal(t, "Jacket", body.Items[0].Name)

	testkit.Do(t, app, http.MethodDelete, "/api/cart",
		map[string]interface{}{"product_id": 2, "size": "L"}).
		AssertStatus(t, http.StatusOK).
		DecodeData(t, &body)
	assert.Empty(t, body.Items)
	assert.Equal(t, 0, body.ItemCount)
}

func TestCartRejections(t *testing.T) {
	app := newTestApp(t)

	// Unknown product.
	testkit.Do(t, app, http.MethodPost, "/api/cart",
		map[string]interface{}{"product_id": 99, "quantity": 1, "size": "M"}).
		AssertStatus(t, http.StatusNotFound)

	// Missing size fails validation before the store is touched.
	testkit.Do(t, app, http.MethodPost, "/api/cart",
		map[string]interface{}{"product_id": 1, "quantity": 1}).
		AssertStatus(t, http.StatusUnprocessableEntity).
		AssertFieldError(t, "size")

	// Non-positive quantity.
	testkit.Do(t, app, http.MethodPost, "/api/cart",
		map[string]interface{}{"product_id": 1, "quantity": 0, "size": "M"}).
		AssertStatus(t, http.StatusUnprocessableEntity).
		AssertFieldError(t, "quantity")

	// Nothing above should have left anything in the cart.
	var body cartBody
	testkit.Do(t, app, http.MethodGet, "/api/cart", nil).
		AssertStatus(t, http.StatusOK).
		DecodeData(t, &body)
	assert.Empty(t, body.Items)
}

func TestAuthRegisterLoginLogout(t *testing.T) {
	app := newTestApp(t)

	// Anonymous.
	testkit.Do(t, app, http.MethodGet, "/api/me", nil).
		AssertStatus(t, http.StatusUnauthorized)

	// Register logs the new account in.
	var created map[string]interface{}
	testkit.Do(t, app, http.MethodPost, "/api/register", map[string]string{
		"name":                  "Ravi",
		"email":                 "ravi@example.com",
		"password":              "hunter2",
		"password_confirmation": "hunter2",
	}).
		AssertStatus(t, http.StatusCreated).
		DecodeData(t, &created)
	assert.Equal(t, "Ravi", created["name"])
	assert.NotContains(t, created, "password")

	var me map[string]interface{}
	testkit.Do(t, app, http.MethodGet, "/api/me", nil).
		AssertStatus(t, http.StatusOK).
		DecodeData(t, &me)
	assert.Equal(t, "ravi@example.com", me["email"])

	testkit.Do(t, app, http.MethodPost, "/api/logout", nil).
		AssertStatus(t, http.StatusOK)
	testkit.Do(t, app, http.MethodGet, "/api/me", nil).
		AssertStatus(t, http.StatusUnauthorized)

	// Fixture account can log in.
	testkit.Do(t, app, http.MethodPost, "/api/login",
		map[string]string{"email": "asha@example.com", "password": "secret1"}).
		AssertStatus(t, http.StatusOK)
}

func TestAuthFailures(t *testing.T) {
	app := newTestApp(t)

	// Duplicate of a fixture account.
	testkit.Do(t, app, http.MethodPost, "/api/register", map[string]string{
		"name":                  "Imposter",
		"email":                 "asha@example.com",
		"password":              "hunter2",
		"password_confirmation": "hunter2",
	}).
		AssertStatus(t, http.StatusConflict)

	// Confirmation mismatch.
	testkit.Do(t, app, http.MethodPost, "/api/register", map[string]string{
		"name":                  "Ravi",
		"email":                 "ravi@example.com",
		"password":              "hunter2",
		"password_confirmation": "hunter3",
	}).
		AssertStatus(t, http.StatusUnprocessableEntity).
		AssertFieldError(t, "password_confirmation")

	// Wrong password and unknown email answer identically.
	wrongPass := testkit.Do(t, app, http.MethodPost, "/api/login",
		map[string]string{"email": "asha@example.com", "password": "nope"}).
		AssertStatus(t, http.StatusUnauthorized)
	unknown := testkit.Do(t, app, http.MethodPost, "/api/login",
		map[string]string{"email": "nobody@example.com", "password": "nope"}).
		AssertStatus(t, http.StatusUnauthorized)
	assert.Equal(t, wrongPass.Envelope.Message, unknown.Envelope.Message)
}

func TestStorefrontPages(t *testing.T) {
	app := newTestApp(t)

	res := testkit.Do(t, app, http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, res.Code)
	assert.Contains(t, string(res.Body), "Tee")

	res = testkit.Do(t, app, http.MethodGet, "/products/1", nil)
	require.Equal(t, http.StatusOK, res.Code)
	assert.Contains(t, string(res.Body), "Tee")

	res = testkit.Do(t, app, http.MethodGet, "/cart", nil)
	require.Equal(t, http.StatusOK, res.Code)
}