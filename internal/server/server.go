// Package server wires the stores together and runs the HTTP surface.
package server

import (
	"net/http"

	"github.com/shashiranjanraj/vastra/app/repositories"
	"github.com/shashiranjanraj/vastra/app/routes"
	"github.com/shashiranjanraj/vastra/app/services"
	"github.com/shashiranjanraj/vastra/config"
	"github.com/shashiranjanraj/vastra/pkg/event"
	"github.com/shashiranjanraj/vastra/pkg/kv"
	"github.com/shashiranjanraj/vastra/pkg/logger"
	"github.com/shashiranjanraj/vastra/pkg/metrics"
	"github.com/shashiranjanraj/vastra/pkg/middleware"
	"github.com/shashiranjanraj/vastra/pkg/reqid"
	"github.com/shashiranjanraj/vastra/pkg/response"
	"github.com/shashiranjanraj/vastra/pkg/router"
)

// BuildDeps constructs the stores once for the process: the durable cart
// store, the session-scoped session store, the fixture-backed
// repositories, and the services over them. Metrics listeners attach to
// the same bus the services publish on.
func BuildDeps() routes.Deps {
	bus := event.Default

	cartStore := kv.NewFile(config.DataDir())
	if config.CartStoreDriver() == "memory" {
		cartStore = kv.NewMemory()
	}

	products := repositories.NewProductRepository(config.FixtureDir())
	users := repositories.NewUserRepository(config.FixtureDir())

	session := services.NewSessionStore(kv.NewMemory(), config.SessionKey())

	deps := routes.Deps{
		Products: products,
		Cart:     services.NewCartService(cartStore, config.CartKey(), products, bus),
		Auth:     services.NewAuthService(users, session, bus),
	}

	metrics.Subscribe(bus)
	return deps
}

// NewRouter builds the full middleware chain and mounts all routes.
func NewRouter(deps routes.Deps) *router.Router {
	r := router.New()

	r.Use(metrics.Middleware())
	r.Use(reqid.Middleware())
	r.Use(middleware.Recovery)
	r.Use(middleware.Logger)
	r.Use(middleware.CORS(middleware.DefaultCORSOptions()))
	r.Use(middleware.RateLimit(config.RateLimit()))

	routes.Register(r, deps)

	r.Get("/metrics", "metrics", metrics.Handler())
	r.Get("/healthz", "health", func(w http.ResponseWriter, _ *http.Request) {
		response.Success(w, map[string]string{"status": "ok"})
	})

	return r
}

// Start boots the storefront and blocks serving HTTP.
func Start() error {
	if err := config.Load(); err != nil {
		return err
	}

	deps := BuildDeps()
	r := NewRouter(deps)

	addr := ":" + config.AppPort()
	logger.Info("vastra running", "addr", addr, "env", config.AppEnv())
	return http.ListenAndServe(addr, r.Handler())
}
