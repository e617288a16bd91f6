package seeders

import "github.com/shashiranjanraj/vastra/app/models"

func init() {
	Register("users", SeedUsers)
}

// SeedUsers writes the seed accounts. Plain passwords: this is a mock.
func SeedUsers(dir string) error {
	users := []models.User{
		{ID: 1, Name: "Asha Verma", Email: "asha@example.com", Password: "password1", Address: "12 Hill Road, Bandra"},
		{ID: 2, Name: "Ravi Iyer", Email: "ravi@example.com", Password: "password2"},
	}

	return writeDocument(dir, "users.json", users)
}
