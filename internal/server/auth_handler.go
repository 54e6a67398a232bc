package server

import (
	"log"
	"net/http"

	"github.com/jonathan/role-taxonomy/internal/config"
	"github.com/jonathan/role-taxonomy/internal/types"
)

// AuthHandler exchanges the shared admin key for a bearer token.
type AuthHandler struct {
	adminKeys  *config.AdminKeyConfig
	jwtService *JWTService
}

// NewAuthHandler creates an auth handler over the given key config.
func NewAuthHandler(adminKeys *config.AdminKeyConfig, jwtService *JWTService) *AuthHandler {
	return &AuthHandler{
		adminKeys:  adminKeys,
		jwtService: jwtService,
	}
}

// HandleLogin handles POST /admin/login. The admin key is compared against
// the configured bcrypt hash; on success a short-lived JWT is returned.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req types.AdminLoginRequest
	if err := decodeJSON(r.Body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if !h.adminKeys.VerifyKey(req.Key) {
		authErr := &ErrInvalidAdminKey{}
		writeError(w, HTTPStatus(authErr), authErr.Error())
		return
	}

	token, err := h.jwtService.GenerateAdminToken()
	if err != nil {
		log.Printf("Error generating admin token: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to generate token")
		return
	}

	writeJSON(w, http.StatusOK, types.AdminLoginResponse{Token: token})
}
