package repositories

import (
	"path/filepath"
	"sync"

	"github.com/shashiranjanraj/vastra/app/models"
	"github.com/shashiranjanraj/vastra/pkg/collection"
	"github.com/shashiranjanraj/vastra/pkg/logger"
)

// UserRepository is the session-scoped user directory: the fixture users
// plus every account registered during this process. The overlay is seeded
// from users.json on the first successful access and never written back;
// registered accounts vanish with the process, like the fixture intends.
type UserRepository struct {
	mu      sync.Mutex
	path    string
	seeded  bool
	overlay []models.User
}

// NewUserRepository reads seed users from <dir>/users.json.
func NewUserRepository(dir string) *UserRepository {
	return &UserRepository{path: filepath.Join(dir, "users.json")}
}

// All returns the current directory: fixture users plus overlay additions.
func (r *UserRepository) All() []models.User {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seed()

	out := make([]models.User, len(r.overlay))
	copy(out, r.overlay)
	return out
}

// FindByEmail looks a user up by exact, case-sensitive email match.
func (r *UserRepository) FindByEmail(email string) (models.User, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seed()

	return collection.First(r.overlay, func(u models.User) bool {
		return u.Email == email
	})
}

// Create appends a new account to the overlay. The id is allocated as
// max(existing ids)+1 over the directory at call time (1 when empty), and
// the duplicate-email check happens under the same lock, so back-to-back
// registrations always see each other.
func (r *UserRepository) Create(name, email, password string) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seed()

	taken := collection.Contains(r.overlay, func(u models.User) bool {
		return u.Email == email
	})
	if taken {
		return models.User{}, models.ErrDuplicateEmail
	}

	user := models.User{
		ID:       collection.Max(r.overlay, func(u models.User) int { return u.ID }) + 1,
		Name:     name,
		Email:    email,
		Password: password,
	}
	r.overlay = append(r.overlay, user)

	return user, nil
}

// Count reports the directory size (fixture + overlay).
func (r *UserRepository) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seed()
	return len(r.overlay)
}

// seed fills the overlay from the fixture on the first successful read.
// Callers hold r.mu. Once seeded the fixture is never consulted again.
func (r *UserRepository) seed() {
	if r.seeded {
		return
	}

	var users []models.User
	if err := readDocument(r.path, &users); err != nil {
		logger.Error("user fixture unavailable, serving empty directory", "error", err)
		return
	}

	// Accounts registered before a late-arriving fixture stay in the overlay.
	r.overlay = append(users, r.overlay...)
	r.seeded = true
}
