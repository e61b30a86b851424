package memory

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/glacefrais/storefront/internal/domain/user"
)

// UsersRepo is the fixed principal set. Secrets are bcrypt-hashed at load so
// no plaintext survives past startup; there is no registration or mutation
// path.
type UsersRepo struct {
	users []user.User
}

// DefaultSeeds is the storefront's principal set: one admin, one regular
// user. Secrets come from configuration.
func DefaultSeeds(adminPassword, userPassword string) []user.Seed {
	return []user.Seed{
		{ID: 1, Username: "admin", Password: adminPassword, Role: user.RoleAdmin},
		{ID: 2, Username: "user", Password: userPassword, Role: user.RoleUser},
	}
}

func NewUsersRepo(seeds []user.Seed) (*UsersRepo, error) {
	users := make([]user.User, 0, len(seeds))

	for _, s := range seeds {
		hash, err := bcrypt.GenerateFromPassword([]byte(s.Password), bcrypt.DefaultCost)

		if err != nil {
			return nil, err
		}

		users = append(users, user.User{
			ID:           s.ID,
			Username:     s.Username,
			PasswordHash: string(hash),
			Role:         s.Role,
		})
	}

	return &UsersRepo{users: users}, nil
}

// Authenticate matches credentials as an exact pair: the username must equal
// a stored principal's and the password must verify against that principal's
// hash. A valid password paired with the wrong username fails.
func (r *UsersRepo) Authenticate(username, password string) (user.User, error) {
	for _, u := range r.users {
		if u.Username != username {
			continue
		}

		if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
			return user.User{}, user.ErrInvalidCredentials
		}

		return u, nil
	}

	return user.User{}, user.ErrInvalidCredentials
}
