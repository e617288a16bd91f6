package controllers

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/shashiranjanraj/vastra/app/models"
	"github.com/shashiranjanraj/vastra/app/repositories"
	"github.com/shashiranjanraj/vastra/app/services"
	"github.com/shashiranjanraj/vastra/app/views"
	"github.com/shashiranjanraj/vastra/pkg/logger"
	"github.com/shashiranjanraj/vastra/pkg/validate"
)

// PageController serves the server-rendered storefront. Every handler
// re-reads the stores before rendering, so a page always reflects the
// state left behind by the previous mutation.
type PageController struct {
	products *repositories.ProductRepository
	cart     *services.CartService
	auth     *services.AuthService
}

func NewPageController(products *repositories.ProductRepository, cart *services.CartService, auth *services.AuthService) *PageController {
	return &PageController{products: products, cart: cart, auth: auth}
}

// nav assembles the fragment shared by all pages: badge count and
// login/logout affordances, read fresh from the stores.
func (c *PageController) nav() views.Nav {
	user, loggedIn := c.auth.Current()
	return views.NewNav(user, loggedIn, c.cart.ItemCount())
}

// Index renders the product listing.
func (c *PageController) Index(w http.ResponseWriter, r *http.Request) {
	views.Render(w, "index.html", views.IndexData{Nav: c.nav(), Products: c.products.All()})
}

// Show renders one product's detail page.
func (c *PageController) Show(w http.ResponseWriter, r *http.Request) {
	product, ok := c.products.Find(chi.URLParam(r, "id"))
	if !ok {
		http.NotFound(w, r)
		return
	}
	views.Render(w, "product.html", views.ProductData{
		Nav:     c.nav(),
		Product: product,
		Error:   r.URL.Query().Get("error"),
	})
}

// Cart renders the cart table with its grand total.
func (c *PageController) Cart(w http.ResponseWriter, r *http.Request) {
	views.Render(w, "cart.html", views.CartData{
		Nav:   c.nav(),
		Lines: c.cart.Items(),
		Total: c.cart.Total(),
	})
}

// CartAdd handles the add-to-cart form.
func (c *PageController) CartAdd(w http.ResponseWriter, r *http.Request) {
	productID := formInt(r, "product_id")
	quantity := formInt(r, "quantity")
	size := r.PostFormValue("size")

	if _, err := c.cart.Add(productID, quantity, size); err != nil {
		logger.WithCtx(r.Context()).Info("add to cart rejected", "reason", err)
		if errors.Is(err, models.ErrProductNotFound) {
			http.NotFound(w, r)
			return
		}
		// Back to the product page with the message visible.
		q := url.Values{"error": {err.Error()}}
		http.Redirect(w, r, "/products/"+strconv.Itoa(productID)+"?"+q.Encode(), http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/cart", http.StatusSeeOther)
}

// CartUpdate handles the quantity form. Quantity zero removes the line.
func (c *PageController) CartUpdate(w http.ResponseWriter, r *http.Request) {
	c.cart.UpdateQuantity(formInt(r, "product_id"), r.PostFormValue("size"), formInt(r, "quantity"))
	http.Redirect(w, r, "/cart", http.StatusSeeOther)
}

// CartRemove handles the remove button.
func (c *PageController) CartRemove(w http.ResponseWriter, r *http.Request) {
	c.cart.Remove(formInt(r, "product_id"), r.PostFormValue("size"))
	http.Redirect(w, r, "/cart", http.StatusSeeOther)
}

// LoginForm renders the login page.
func (c *PageController) LoginForm(w http.ResponseWriter, r *http.Request) {
	views.Render(w, "login.html", views.FormData{Nav: c.nav()})
}

// Login handles the login form. Failures re-render the form with the
// generic message; nothing leaks which part of the credentials was wrong.
func (c *PageController) Login(w http.ResponseWriter, r *http.Request) {
	if _, err := c.auth.Login(r.PostFormValue("email"), r.PostFormValue("password")); err != nil {
		views.Render(w, "login.html", views.FormData{Nav: c.nav(), Error: models.ErrInvalidCredentials.Error()})
		return
	}
	http.Redirect(w, r, "/account", http.StatusSeeOther)
}

// RegisterForm renders the registration page.
func (c *PageController) RegisterForm(w http.ResponseWriter, r *http.Request) {
	views.Render(w, "register.html", views.FormData{Nav: c.nav()})
}

// Register handles the registration form.
func (c *PageController) Register(w http.ResponseWriter, r *http.Request) {
	input := registerInput{
		Name:                 r.PostFormValue("name"),
		Email:                r.PostFormValue("email"),
		Password:             r.PostFormValue("password"),
		PasswordConfirmation: r.PostFormValue("password_confirmation"),
	}

	if errs := validate.Struct(input); validate.HasErrors(errs) {
		views.Render(w, "register.html", views.FormData{Nav: c.nav(), Error: firstError(errs)})
		return
	}

	if _, err := c.auth.Register(input.Name, input.Email, input.Password); err != nil {
		views.Render(w, "register.html", views.FormData{Nav: c.nav(), Error: err.Error()})
		return
	}

	http.Redirect(w, r, "/account", http.StatusSeeOther)
}

// Logout clears the session and lands back on the listing.
func (c *PageController) Logout(w http.ResponseWriter, r *http.Request) {
	c.auth.Logout()
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Account renders the signed-in user's details; guests get the login page.
func (c *PageController) Account(w http.ResponseWriter, r *http.Request) {
	user, ok := c.auth.Current()
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	views.Render(w, "account.html", views.AccountData{Nav: c.nav(), User: user})
}

func formInt(r *http.Request, field string) int {
	n, _ := strconv.Atoi(r.PostFormValue(field))
	return n
}

func firstError(errs map[string]string) string {
	for _, msg := range errs {
		return msg
	}
	return ""
}
