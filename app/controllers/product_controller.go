package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shashiranjanraj/vastra/app/repositories"
	"github.com/shashiranjanraj/vastra/pkg/response"
)

// ProductController exposes the catalogue over the JSON API.
type ProductController struct {
	products *repositories.ProductRepository
}

func NewProductController(products *repositories.ProductRepository) *ProductController {
	return &ProductController{products: products}
}

// Index returns every catalogue product.
func (c *ProductController) Index(w http.ResponseWriter, r *http.Request) {
	response.Success(w, c.products.All())
}

// Show returns one product by id (string or numeric).
func (c *ProductController) Show(w http.ResponseWriter, r *http.Request) {
	product, ok := c.products.Find(chi.URLParam(r, "id"))
	if !ok {
		response.NotFound(w)
		return
	}
	response.Success(w, product)
}
