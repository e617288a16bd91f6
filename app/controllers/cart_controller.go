package controllers

import (
	"errors"
	"net/http"

	"github.com/shashiranjanraj/vastra/app/models"
	"github.com/shashiranjanraj/vastra/app/services"
	"github.com/shashiranjanraj/vastra/pkg/bind"
	"github.com/shashiranjanraj/vastra/pkg/logger"
	"github.com/shashiranjanraj/vastra/pkg/response"
)

// CartController exposes the cart store over the JSON API.
type CartController struct {
	cart *services.CartService
}

func NewCartController(cart *services.CartService) *CartController {
	return &CartController{cart: cart}
}

type addToCartInput struct {
	ProductID int    `json:"product_id" validate:"required,integer,gte=1"`
	Quantity  int    `json:"quantity"   validate:"required,integer,gt=0"`
	Size      string `json:"size"       validate:"required"`
}

type cartLineInput struct {
	ProductID int    `json:"product_id" validate:"required,integer,gte=1"`
	Size      string `json:"size"       validate:"required"`
}

type updateQuantityInput struct {
	ProductID int    `json:"product_id" validate:"required,integer,gte=1"`
	Size      string `json:"size"       validate:"required"`
	Quantity  int    `json:"quantity"`
}

// cartBody is what every cart endpoint answers with: the lines plus the
// derived numbers the nav badge and total display need.
func (c *CartController) cartBody() map[string]interface{} {
	return map[string]interface{}{
		"items":      c.cart.Items(),
		"total":      c.cart.Total(),
		"item_count": c.cart.ItemCount(),
	}
}

// Show returns the current cart.
func (c *CartController) Show(w http.ResponseWriter, r *http.Request) {
	response.Success(w, c.cartBody())
}

// Add puts items in the cart.
func (c *CartController) Add(w http.ResponseWriter, r *http.Request) {
	var input addToCartInput
	if errs, err := bind.JSON(r, &input); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	line, err := c.cart.Add(input.ProductID, input.Quantity, input.Size)
	if err != nil {
		logger.WithCtx(r.Context()).Info("add to cart rejected", "reason", err)
		switch {
		case errors.Is(err, models.ErrProductNotFound):
			response.NotFound(w)
		case errors.Is(err, models.ErrMissingSize), errors.Is(err, models.ErrNonPositiveQuantity):
			response.Error(w, http.StatusUnprocessableEntity, err.Error())
		default:
			response.Error(w, http.StatusInternalServerError, "could not update cart")
		}
		return
	}

	response.Created(w, line)
}

// Update sets a line's quantity; zero or below removes the line.
func (c *CartController) Update(w http.ResponseWriter, r *http.Request) {
	var input updateQuantityInput
	if errs, err := bind.JSON(r, &input); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	c.cart.UpdateQuantity(input.ProductID, input.Size, input.Quantity)
	response.Success(w, c.cartBody())
}

// Remove drops a line.
func (c *CartController) Remove(w http.ResponseWriter, r *http.Request) {
	var input cartLineInput
	if errs, err := bind.JSON(r, &input); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	c.cart.Remove(input.ProductID, input.Size)
	response.Success(w, c.cartBody())
}
