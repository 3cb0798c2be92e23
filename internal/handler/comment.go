// internal/handler/comment.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chmw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/upstartlab/ideahub/internal/middleware"
	"github.com/upstartlab/ideahub/internal/service"
)

type CommentHandler struct {
	commentService *service.CommentService
}

func NewCommentHandler(commentService *service.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// ListComments returns an idea's comment threads; ?query= or ?userId=
// switch to a flat filtered listing.
func (h *CommentHandler) ListComments(w http.ResponseWriter, r *http.Request) {
	ideaID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid idea ID")
		return
	}

	input := service.ListCommentsInput{Query: r.URL.Query().Get("query")}
	if u := r.URL.Query().Get("userId"); u != "" {
		uid, err := uuid.Parse(u)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid user ID")
			return
		}
		input.UserID = uid
	}

	comments, err := h.commentService.ListComments(r.Context(), ideaID, input)
	if err != nil {
		slog.ErrorContext(r.Context(), "List comments error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, comments)
}

func (h *CommentHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	ideaID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid idea ID")
		return
	}

	userID, _, ok := middleware.Identity(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "No session")
		return
	}

	var input service.AddCommentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	comment, err := h.commentService.AddComment(r.Context(), userID, ideaID, input)
	if err != nil {
		slog.ErrorContext(r.Context(), "Add comment error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, comment)
}

func (h *CommentHandler) UpdateComment(w http.ResponseWriter, r *http.Request) {
	commentID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid comment ID")
		return
	}

	userID, role, ok := middleware.Identity(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "No session")
		return
	}

	var input service.UpdateCommentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	comment, err := h.commentService.UpdateComment(r.Context(), userID, role, commentID, input)
	if err != nil {
		slog.ErrorContext(r.Context(), "Update comment error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, comment)
}

func (h *CommentHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	commentID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid comment ID")
		return
	}

	userID, role, ok := middleware.Identity(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "No session")
		return
	}

	if err := h.commentService.DeleteComment(r.Context(), userID, role, commentID); err != nil {
		slog.ErrorContext(r.Context(), "Delete comment error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Comment deleted"})
}
