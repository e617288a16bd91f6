package routes

import (
	"net/http"

	"github.com/shashiranjanraj/vastra/app/controllers"
	"github.com/shashiranjanraj/vastra/app/repositories"
	"github.com/shashiranjanraj/vastra/app/services"
	"github.com/shashiranjanraj/vastra/pkg/router"
)

// Deps bundles the constructed stores the handlers read and write.
// Everything is passed by reference: the stores own the state, the
// handlers just operate on them.
type Deps struct {
	Products *repositories.ProductRepository
	Cart     *services.CartService
	Auth     *services.AuthService
}

// Register mounts the storefront pages and the JSON API.
func Register(r *router.Router, d Deps) {
	pages := controllers.NewPageController(d.Products, d.Cart, d.Auth)
	productAPI := controllers.NewProductController(d.Products)
	cartAPI := controllers.NewCartController(d.Cart)
	authAPI := controllers.NewAuthController(d.Auth)

	// Server-rendered storefront.
	r.Get("/", "pages.index", pages.Index)
	r.Get("/products/{id}", "pages.product", pages.Show)
	r.Get("/cart", "pages.cart", pages.Cart)
	r.Post("/cart/add", "pages.cart.add", pages.CartAdd)
	r.Post("/cart/update", "pages.cart.update", pages.CartUpdate)
	r.Post("/cart/remove", "pages.cart.remove", pages.CartRemove)
	r.Get("/login", "pages.login", pages.LoginForm)
	r.Post("/login", "pages.login.submit", pages.Login)
	r.Get("/register", "pages.register", pages.RegisterForm)
	r.Post("/register", "pages.register.submit", pages.Register)
	r.Post("/logout", "pages.logout", pages.Logout)
	r.Get("/account", "pages.account", pages.Account)

	r.Get("/static/*", "static", http.StripPrefix("/static/",
		http.FileServer(http.Dir("public"))).ServeHTTP)

	// JSON API mirror of the same stores.
	api := r.Group("/api")
	api.Get("/products", "api.products.index", productAPI.Index)
	api.Get("/products/{id}", "api.products.show", productAPI.Show)

	api.Get("/cart", "api.cart.show", cartAPI.Show)
	api.Post("/cart", "api.cart.add", cartAPI.Add)
	api.Put("/cart", "api.cart.update", cartAPI.Update)
	api.Delete("/cart", "api.cart.remove", cartAPI.Remove)

	api.Post("/register", "api.auth.register", authAPI.Register)
	api.Post("/login", "api.auth.login", authAPI.Login)
	api.Post("/logout", "api.auth.logout", authAPI.Logout)
	api.Get("/me", "api.auth.me", authAPI.Me)
}
