package handlers

import (
	"encoding/json"
	"net/http"

	"student-manager/auth"
	"student-manager/logger"
	"student-manager/middleware"
	"student-manager/models"
)

type AuthHandler struct {
	authenticator *auth.Authenticator
	jwtService    *auth.JWTService
	log           *logger.Logger
}

func NewAuthHandler(authenticator *auth.Authenticator, jwtService *auth.JWTService, log *logger.Logger) *AuthHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &AuthHandler{
		authenticator: authenticator,
		jwtService:    jwtService,
		log:           log.Component("auth"),
	}
}

// Login обрабатывает вход оператора
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var loginReq models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&loginReq); err != nil {
		writeError(w, h.log, http.StatusBadRequest, "Invalid request body")
		return
	}

	op, err := h.authenticator.Login(loginReq.Email, loginReq.Password)
	if err != nil {
		h.log.Warning("❌ Invalid login", map[string]interface{}{"email": loginReq.Email})
		writeError(w, h.log, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	token, err := h.jwtService.GenerateToken(op)
	if err != nil {
		h.log.Error("❌ Error generating token", err, map[string]interface{}{"email": op.Email})
		writeError(w, h.log, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.log.Info("✅ Operator logged in", map[string]interface{}{"email": op.Email})
	writeJSON(w, h.log, http.StatusOK, models.LoginResponse{Token: token, Operator: op})
}

// GetCurrentUser возвращает текущего оператора
func (h *AuthHandler) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetUserClaims(r.Context())
	if claims == nil {
		writeError(w, h.log, http.StatusUnauthorized, "Not authenticated")
		return
	}
	writeJSON(w, h.log, http.StatusOK, models.Operator{Email: claims.Email, Role: claims.Role})
}
