// internal/handler/auth.go
package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	chmw "github.com/go-chi/chi/v5/middleware"

	"github.com/upstartlab/ideahub/internal/domain"
	"github.com/upstartlab/ideahub/internal/middleware"
	"github.com/upstartlab/ideahub/internal/model"
	"github.com/upstartlab/ideahub/internal/service"
)

type AuthHandler struct {
	userService *service.UserService
}

func NewAuthHandler(userService *service.UserService) *AuthHandler {
	return &AuthHandler{userService: userService}
}

type SessionResponse struct {
	User  *model.User `json:"user"`
	Token string      `json:"token"`
}

func (h *AuthHandler) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var input service.RegisterInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	output, err := h.userService.Register(r.Context(), input)
	if err != nil {
		slog.ErrorContext(r.Context(), "User registration error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithDomainError(w, err)
		return
	}

	setSessionCookie(w, output.Token)
	respondWithJSON(w, http.StatusCreated, SessionResponse{User: output.User, Token: output.Token})
}

func (h *AuthHandler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var input service.LoginInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	output, err := h.userService.Login(r.Context(), input)
	if err != nil {
		slog.ErrorContext(r.Context(), "User login error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithDomainError(w, err)
		return
	}

	setSessionCookie(w, output.Token)
	respondWithJSON(w, http.StatusOK, SessionResponse{User: output.User, Token: output.Token})
}

// AdminLoginHandler is the administrative entry point. A valid credential
// with a non-admin-capable role gets its session cookie expired and a 403,
// never a token: the forced-logout contract.
func (h *AuthHandler) AdminLoginHandler(w http.ResponseWriter, r *http.Request) {
	var input service.LoginInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	output, err := h.userService.AdminLogin(r.Context(), input)
	if err != nil {
		slog.ErrorContext(r.Context(), "Admin login error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		if errors.Is(err, domain.ErrForbidden) {
			clearSessionCookie(w)
			respondWithError(w, http.StatusForbidden, "Administrative role required")
			return
		}
		respondWithDomainError(w, err)
		return
	}

	setSessionCookie(w, output.Token)
	respondWithJSON(w, http.StatusOK, SessionResponse{User: output.User, Token: output.Token})
}

func (h *AuthHandler) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	clearSessionCookie(w)
	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Logged out successfully"})
}

// AuthCheckHandler probes session validity for the admin shell. Runs behind
// AuthMiddleware + RequireAdminCapable, so reaching it means the session is
// good.
func (h *AuthHandler) AuthCheckHandler(w http.ResponseWriter, r *http.Request) {
	userID, role, ok := middleware.Identity(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "No session")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"userId": userID,
		"role":   role,
	})
}

func setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     "token",
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     "token",
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-1 * time.Hour),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
