// Package views renders the storefront pages. Renderers are pure
// read-and-render: controllers pass in data freshly read from the stores,
// and nothing here ever becomes the system of record.
//
// Persisted strings (cart snapshots, user-entered names and addresses) are
// run through bluemonday before rendering, since the durable cart file is
// plain JSON anyone can edit on disk.
package views

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/microcosm-cc/bluemonday"

	"github.com/shashiranjanraj/vastra/app/models"
	"github.com/shashiranjanraj/vastra/pkg/logger"
)

//go:embed templates/*.html
var files embed.FS

var sanitizer = bluemonday.StrictPolicy()

var tpl = template.Must(
	template.New("storefront").Funcs(template.FuncMap{
		"clean": func(s string) string { return sanitizer.Sanitize(s) },
		"money": func(v float64) string { return fmt.Sprintf("₹%.2f", v) },
	}).ParseFS(files, "templates/*.html"),
)

// Nav feeds the navigation fragment every page embeds: the cart badge and
// the login/register vs account/logout affordances.
type Nav struct {
	LoggedIn  bool
	UserName  string
	CartCount int
}

// NewNav builds the fragment data from current store state.
func NewNav(user models.User, loggedIn bool, cartCount int) Nav {
	return Nav{LoggedIn: loggedIn, UserName: user.Name, CartCount: cartCount}
}

type IndexData struct {
	Nav      Nav
	Products []models.Product
}

type ProductData struct {
	Nav     Nav
	Product models.Product
	Error   string
}

type CartData struct {
	Nav   Nav
	Lines []models.CartLine
	Total float64
}

type AccountData struct {
	Nav  Nav
	User models.User
}

type FormData struct {
	Nav   Nav
	Error string
}

// Render executes the named page template. An unknown template name is a
// logged no-op: pages that are not mounted simply render nothing.
func Render(w io.Writer, name string, data interface{}) {
	t := tpl.Lookup(name)
	if t == nil {
		logger.Warn("view not mounted, skipping render", "view", name)
		return
	}
	if err := t.Execute(w, data); err != nil {
		logger.Error("render failed", "view", name, "error", err)
	}
}
