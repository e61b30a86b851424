// Package auth implements the storefront bearer token: a base64 rendering of
// the claims JSON, carried unchanged from the original API surface. The
// encoding is reversible and carries no signature; anyone holding the scheme
// can mint a token. That weakness is documented, not fixed here, because the
// token representation is part of the published contract.
package auth

import (
	"encoding/base64"
	"encoding/json"
	"time"
)

// TokenTTL is fixed at one hour and is not configurable.
const TokenTTL = time.Hour

type Claims struct {
	UserID int    `json:"userId"`
	Role   string `json:"role"`
	Exp    int64  `json:"exp"` // milliseconds since epoch
}

// Result is what Verify reports. Role is only meaningful when Valid is true,
// and is the embedded value verbatim: membership in the known role set is the
// caller's problem.
type Result struct {
	Valid bool
	Role  string
}

// Issue produces a token for the given principal, expiring one hour from now.
func Issue(userID int, role string) (string, error) {
	claims := Claims{
		UserID: userID,
		Role:   role,
		Exp:    time.Now().UnixMilli() + TokenTTL.Milliseconds(),
	}

	b, err := json.Marshal(claims)

	if err != nil {
		return "", err
	}

	return base64.StdEncoding.EncodeToString(b), nil
}

// Verify is total over the string input space: an absent token, undecodable
// base64, malformed claims JSON, or an expiry strictly in the past all map to
// an invalid Result. It never returns an error.
func Verify(token string) Result {
	if token == "" {
		return Result{}
	}

	raw, err := base64.StdEncoding.DecodeString(token)

	if err != nil {
		return Result{}
	}

	var claims Claims

	if err := json.Unmarshal(raw, &claims); err != nil {
		return Result{}
	}

	if claims.Exp < time.Now().UnixMilli() {
		return Result{}
	}

	return Result{Valid: true, Role: claims.Role}
}
