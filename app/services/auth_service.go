package services

import (
	"github.com/shashiranjanraj/vastra/app/models"
	"github.com/shashiranjanraj/vastra/app/repositories"
	"github.com/shashiranjanraj/vastra/pkg/event"
	"github.com/shashiranjanraj/vastra/pkg/logger"
)

// AuthService drives the mock registration/login flow. Credentials are
// compared in plain form against the user directory; nothing here is real
// security and nothing is meant to be.
type AuthService struct {
	users   *repositories.UserRepository
	session *SessionStore
	bus     *event.Bus
}

func NewAuthService(users *repositories.UserRepository, session *SessionStore, bus *event.Bus) *AuthService {
	return &AuthService{users: users, session: session, bus: bus}
}

// Register creates an account in the session-scoped overlay and logs it in.
// Fails with models.ErrDuplicateEmail when the email is already taken
// (fixture or overlay, exact match). The new id is max(existing)+1.
func (s *AuthService) Register(name, email, password string) (models.User, error) {
	user, err := s.users.Create(name, email, password)
	if err != nil {
		s.bus.Fire(event.AuthChanged, event.AuthChange{Action: "register", Outcome: "failed"})
		return models.User{}, err
	}

	s.session.Set(user)
	s.bus.Fire(event.AuthChanged, event.AuthChange{Action: "register", Outcome: "ok"})
	logger.Info("user registered", "user_id", user.ID)

	return user, nil
}

// Login establishes the session for a matching account. Unknown email and
// wrong password produce the same models.ErrInvalidCredentials, so callers
// can't probe which one it was.
func (s *AuthService) Login(email, password string) (models.User, error) {
	user, ok := s.users.FindByEmail(email)
	if !ok || user.Password != password {
		s.bus.Fire(event.AuthChanged, event.AuthChange{Action: "login", Outcome: "failed"})
		return models.User{}, models.ErrInvalidCredentials
	}

	s.session.Set(user)
	s.bus.Fire(event.AuthChanged, event.AuthChange{Action: "login", Outcome: "ok"})
	logger.Info("user logged in", "user_id", user.ID)

	return user, nil
}

// Logout clears the session unconditionally. Logging out with no session
// is a no-op that still notifies listeners so views refresh.
func (s *AuthService) Logout() {
	s.session.Clear()
	s.bus.Fire(event.AuthChanged, event.AuthChange{Action: "logout", Outcome: "ok"})
}

// Current returns the logged-in user, if any.
func (s *AuthService) Current() (models.User, bool) {
	return s.session.Current()
}
