package user

import "errors"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

type User struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"` // never expose hash in JSON
	Role         string `json:"role"`
}

// Seed is a principal before its secret has been hashed. The storefront has a
// fixed principal set; seeds exist only so the default secrets can be
// overridden from the environment before load.
type Seed struct {
	ID       int
	Username string
	Password string
	Role     string
}

var ErrInvalidCredentials = errors.New("invalid credentials")
