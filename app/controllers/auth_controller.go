package controllers

import (
	"errors"
	"net/http"

	"github.com/shashiranjanraj/vastra/app/models"
	"github.com/shashiranjanraj/vastra/app/services"
	"github.com/shashiranjanraj/vastra/pkg/bind"
	"github.com/shashiranjanraj/vastra/pkg/response"
)

// AuthController exposes the mock registration/login flow over the JSON API.
type AuthController struct {
	auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

type registerInput struct {
	Name                 string `json:"name"                  validate:"required,min=2,max=100"`
	Email                string `json:"email"                 validate:"required,email"`
	Password             string `json:"password"              validate:"required,min=4"`
	PasswordConfirmation string `json:"password_confirmation" validate:"confirmed"`
}

type loginInput struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// publicUser strips the password before a user record leaves the API.
func publicUser(u models.User) map[string]interface{} {
	out := map[string]interface{}{
		"id":    u.ID,
		"name":  u.Name,
		"email": u.Email,
	}
	if u.Address != "" {
		out["address"] = u.Address
	}
	return out
}

// Register creates a session-scoped account and logs it in.
func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var input registerInput
	if errs, err := bind.JSON(r, &input); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	user, err := c.auth.Register(input.Name, input.Email, input.Password)
	if err != nil {
		if errors.Is(err, models.ErrDuplicateEmail) {
			response.Conflict(w, err.Error())
			return
		}
		response.Error(w, http.StatusInternalServerError, "could not register")
		return
	}

	response.Created(w, publicUser(user))
}

// Login establishes the session. Failures are generic on purpose.
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var input loginInput
	if errs, err := bind.JSON(r, &input); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	user, err := c.auth.Login(input.Email, input.Password)
	if err != nil {
		response.Unauthorized(w, models.ErrInvalidCredentials.Error())
		return
	}

	response.Success(w, publicUser(user))
}

// Logout clears the session; logging out twice is fine.
func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	c.auth.Logout()
	response.Success(w, map[string]bool{"logged_out": true})
}

// Me returns the current session's user.
func (c *AuthController) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := c.auth.Current()
	if !ok {
		response.Unauthorized(w, "not logged in")
		return
	}
	response.Success(w, publicUser(user))
}
