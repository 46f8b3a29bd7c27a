package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"movie-discovery/internal/data/repository"
	"movie-discovery/internal/dto/request"
	"movie-discovery/internal/dto/response"
	"movie-discovery/internal/usecase"
	"movie-discovery/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	service   usecase.AuthService
	cookieCfg utils.CookieConfig
	log       *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, cookieCfg utils.CookieConfig, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service:   service,
		cookieCfg: cookieCfg,
		log:       log.With(zap.String("handler", "auth")),
	}
}

// Me handles GET /me. Anonymous callers learn only the boolean.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	token := ""
	if cookie, err := r.Cookie(h.cookieCfg.Name); err == nil {
		token = cookie.Value
	}

	loggedIn, err := h.service.WhoAmI(r.Context(), token)
	if err != nil {
		utils.ResponseInternalError(w, "Server error")
		return
	}

	if !loggedIn {
		utils.ResponseJSON(w, http.StatusUnauthorized, response.MeResponse{LoggedIn: false})
		return
	}

	utils.ResponseOK(w, response.MeResponse{LoggedIn: true})
}

// Register handles POST /register. Success implies login: the new
// session cookie rides on the response.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest

	// Decode request body
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "All fields required")
		return
	}

	// Validate request before any write
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "All fields required")
		return
	}

	session, err := h.service.Register(r.Context(), &req)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateUser) {
			utils.ResponseBadRequest(w, "User already exists")
			return
		}
		h.log.Error("Register failed", zap.Error(err))
		utils.ResponseInternalError(w, "Server error")
		return
	}

	utils.SetSessionCookie(w, h.cookieCfg, session.Token.String(), session.ExpiresAt)
	utils.ResponseMessage(w, "Registered successfully")
}

// Login handles POST /login. Unknown email and wrong password answer
// identically so account existence never leaks.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid credentials")
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Invalid credentials")
		return
	}

	session, err := h.service.Login(r.Context(), &req)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			utils.ResponseBadRequest(w, "Invalid credentials")
			return
		}
		h.log.Error("Login failed", zap.Error(err))
		utils.ResponseInternalError(w, "Server error")
		return
	}

	utils.SetSessionCookie(w, h.cookieCfg, session.Token.String(), session.ExpiresAt)
	utils.ResponseOK(w, response.LoginResponse{
		Success: true,
		UserID:  session.UserID.String(),
	})
}

// Logout handles POST /logout (protected)
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token, ok := utils.GetTokenFromContext(r.Context())
	if !ok {
		utils.ResponseBadRequest(w, "Missing userID (user not logged in)")
		return
	}

	if err := h.service.Logout(r.Context(), token); err != nil {
		h.log.Error("Logout failed", zap.Error(err))
		utils.ResponseInternalError(w, "Logout failed")
		return
	}

	utils.ClearSessionCookie(w, h.cookieCfg)
	utils.ResponseMessage(w, "Logged out")
}
