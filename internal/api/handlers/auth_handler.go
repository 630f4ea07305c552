package handlers

import (
	"net/http"
	"time"

	"github.com/advising-studio/engine/internal/api/envelope"
)

// AuthHandler only ends sessions. Tokens are minted by the identity provider.
type AuthHandler struct {
	cookieName   string
	secureCookie bool
}

func NewAuthHandler(cookieName string, secureCookie bool) *AuthHandler {
	return &AuthHandler{cookieName: cookieName, secureCookie: secureCookie}
}

// Logout godoc
// @Summary  End the session
// @Tags     auth
// @Produce  json
// @Success  200  {object}  envelope.Message
// @Router   /api/auth/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
	writeJSON(w, r, http.StatusOK, envelope.Message{Message: "Logout successful"})
}
