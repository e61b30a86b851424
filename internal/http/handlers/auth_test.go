package handlers_test

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glacefrais/storefront/internal/auth"
	"github.com/glacefrais/storefront/internal/domain/user"
	"github.com/glacefrais/storefront/internal/http/handlers"
)

type fakeUsers struct {
	authenticateFn func(username, password string) (user.User, error)
}

func (f *fakeUsers) Authenticate(username, password string) (user.User, error) {
	if f.authenticateFn != nil {
		return f.authenticateFn(username, password)
	}
	return user.User{}, user.ErrInvalidCredentials
}

func adminUser() user.User {
	return user.User{ID: 1, Username: "admin", Role: user.RoleAdmin}
}

func TestLogin(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		usersSetup     func(*fakeUsers)
		wantStatusCode int
	}{
		{
			name: "success",
			body: `{"username": "admin", "password": "admin123"}`,
			usersSetup: func(f *fakeUsers) {
				f.authenticateFn = func(username, password string) (user.User, error) {
					if username != "admin" || password != "admin123" {
						return user.User{}, user.ErrInvalidCredentials
					}
					return adminUser(), nil
				}
			},
			wantStatusCode: http.StatusOK,
		},
		{
			// password shape is checked before any lookup
			name:           "short_password",
			body:           `{"username": "admin", "password": "admin"}`,
			usersSetup:     func(f *fakeUsers) {},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "missing_password",
			body:           `{"username": "admin"}`,
			usersSetup:     func(f *fakeUsers) {},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			// missing username passes validation but fails the lookup
			name:           "missing_username",
			body:           `{"password": "admin123"}`,
			usersSetup:     func(f *fakeUsers) {},
			wantStatusCode: http.StatusUnauthorized,
		},
		{
			name:           "credential_mismatch",
			body:           `{"username": "user", "password": "admin123"}`,
			usersSetup:     func(f *fakeUsers) {},
			wantStatusCode: http.StatusUnauthorized,
		},
		{
			name: "unexpected_failure",
			body: `{"username": "admin", "password": "admin123"}`,
			usersSetup: func(f *fakeUsers) {
				f.authenticateFn = func(string, string) (user.User, error) {
					return user.User{}, errors.New("boom")
				}
			},
			wantStatusCode: http.StatusInternalServerError,
		},
		{
			name:           "malformed_body",
			body:           `{"username"`,
			usersSetup:     func(f *fakeUsers) {},
			wantStatusCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeUsers{}
			tt.usersSetup(fake)

			h := handlers.NewAuthHandler(fake, nil)
			r := setupRouter(http.MethodPost, "/login", h.Login)

			req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")

			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.wantStatusCode {
				t.Fatalf("got status %d, want %d, body=%s", w.Code, tt.wantStatusCode, w.Body.String())
			}
		})
	}
}

func TestLoginResponseTokenDecodesToRole(t *testing.T) {
	fake := &fakeUsers{
		authenticateFn: func(string, string) (user.User, error) {
			return adminUser(), nil
		},
	}

	h := handlers.NewAuthHandler(fake, nil)
	r := setupRouter(http.MethodPost, "/login", h.Login)

	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBufferString(`{"username":"admin","password":"admin123"}`))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("got status %d, body=%s", w.Code, w.Body.String())
	}

	var resp handlers.LoginResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal login response: %v", err)
	}

	if resp.User.ID != 1 || resp.User.Username != "admin" || resp.User.Role != user.RoleAdmin {
		t.Fatalf("unexpected user payload: %+v", resp.User)
	}

	// the token itself must decode to the admin role
	raw, err := base64.StdEncoding.DecodeString(resp.Token)
	if err != nil {
		t.Fatalf("token is not base64: %v", err)
	}

	var claims auth.Claims
	if err := json.Unmarshal(raw, &claims); err != nil {
		t.Fatalf("token payload is not claims JSON: %v", err)
	}

	if claims.UserID != 1 || claims.Role != user.RoleAdmin {
		t.Fatalf("claims = %+v", claims)
	}

	if res := auth.Verify(resp.Token); !res.Valid || res.Role != user.RoleAdmin {
		t.Fatalf("issued token does not verify: %+v", res)
	}
}
