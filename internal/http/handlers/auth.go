package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/glacefrais/storefront/internal/auth"
	"github.com/glacefrais/storefront/internal/domain/user"
	"github.com/glacefrais/storefront/internal/observability"
)

type UserAuthenticator interface {
	Authenticate(username, password string) (user.User, error)
}

type AuthHandler struct {
	users UserAuthenticator
	prom  *observability.Prom
}

func NewAuthHandler(users UserAuthenticator, prom *observability.Prom) *AuthHandler {
	return &AuthHandler{users: users, prom: prom}
}

// Username carries no binding rules: an absent username simply fails the
// credential lookup with a 401, which is the observed contract. Password
// shape is validated (400) before any lookup happens.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginResponse struct {
	Token string    `json:"token"`
	User  user.User `json:"user"`
}

func (h *AuthHandler) Login(ctx *gin.Context) {
	var req LoginRequest

	if !BindJSON(ctx, &req) {
		h.countLogin("invalid_request")
		return
	}

	u, err := h.users.Authenticate(req.Username, req.Password)

	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			h.countLogin("invalid_credentials")
			RespondUnAuthorized(ctx, "invalid_credentials", "Username or password is incorrect.")
			return
		}

		h.countLogin("error")
		RespondInternal(ctx, "Could not log in")
		return
	}

	token, err := auth.Issue(u.ID, u.Role)

	if err != nil {
		h.countLogin("error")
		RespondInternal(ctx, "Could not issue token")
		return
	}

	h.countLogin("ok")

	ctx.JSON(http.StatusOK, LoginResponse{
		Token: token,
		User:  u,
	})
}

func (h *AuthHandler) countLogin(result string) {
	if h.prom != nil {
		h.prom.Logins.WithLabelValues(result).Inc()
	}
}
