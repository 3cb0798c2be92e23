// internal/handler/admin.go
package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chmw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/upstartlab/ideahub/internal/middleware"
	"github.com/upstartlab/ideahub/internal/model"
	"github.com/upstartlab/ideahub/internal/service"
)

// AdminHandler serves the user-administration and dashboard endpoints. All
// routes are mounted behind RequireAdminCapable.
type AdminHandler struct {
	userService    *service.UserService
	metricsService *service.MetricsService
}

func NewAdminHandler(userService *service.UserService, metricsService *service.MetricsService) *AdminHandler {
	return &AdminHandler{
		userService:    userService,
		metricsService: metricsService,
	}
}

func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	input := service.ListUsersInput{
		Query:      q.Get("query"),
		Department: q.Get("department"),
		Page:       queryInt(q, "page", 1),
		PageSize:   queryInt(q, "pageSize", 0),
	}

	if roleStr := q.Get("role"); roleStr != "" {
		role, err := model.ParseRole(roleStr)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid role filter")
			return
		}
		input.Role = role
	}

	page, err := h.userService.ListUsers(r.Context(), input)
	if err != nil {
		slog.ErrorContext(r.Context(), "List users error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, page)
}

func (h *AdminHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	_, role, ok := middleware.Identity(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "No session")
		return
	}

	if err := h.userService.DeleteUser(r.Context(), role, id); err != nil {
		slog.ErrorContext(r.Context(), "Delete user error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"message": "User deleted"})
}

// UserSubmissions lists the ideas one user has submitted.
func (h *AdminHandler) UserSubmissions(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	_, role, ok := middleware.Identity(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "No session")
		return
	}

	ideas, err := h.userService.UserSubmissions(r.Context(), role, id)
	if err != nil {
		slog.ErrorContext(r.Context(), "User submissions error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, ideas)
}

// Metrics serves the aggregate counters behind the dashboard cards.
func (h *AdminHandler) Metrics(w http.ResponseWriter, r *http.Request) {
	metrics, err := h.metricsService.Snapshot(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Metrics error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, metrics)
}
