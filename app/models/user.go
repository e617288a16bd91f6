package models

// User is an account record. Seed users come from the fixture document;
// users registered at runtime live only in the session-scoped overlay.
//
// Passwords are stored and compared in plain form: this is a mock
// storefront, not an authentication system.
type User struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Address  string `json:"address,omitempty"`
}
