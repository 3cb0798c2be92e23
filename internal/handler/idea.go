// internal/handler/idea.go
package handler

import (
	"encoding/json"
	"log/slog"
	"mime"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	chmw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/upstartlab/ideahub/internal/middleware"
	"github.com/upstartlab/ideahub/internal/model"
	"github.com/upstartlab/ideahub/internal/service"
	"github.com/upstartlab/ideahub/internal/storage"
)

// maxUploadBytes caps multipart submissions at 32 MiB.
const maxUploadBytes = 32 << 20

type IdeaHandler struct {
	ideaService *service.IdeaService
	uploads     *storage.UploadStore
}

func NewIdeaHandler(ideaService *service.IdeaService, uploads *storage.UploadStore) *IdeaHandler {
	return &IdeaHandler{
		ideaService: ideaService,
		uploads:     uploads,
	}
}

// CreateIdea accepts either a JSON body or a multipart form carrying an
// "attachment" file and any number of "files" media entries.
func (h *IdeaHandler) CreateIdea(w http.ResponseWriter, r *http.Request) {
	userID, _, ok := middleware.Identity(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "No session")
		return
	}

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	var input service.CreateIdeaInput
	var err error
	if mediaType == "multipart/form-data" {
		input, err = h.parseMultipartIdea(r)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid multipart payload")
			return
		}
	} else {
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid request payload")
			return
		}
		defer r.Body.Close()
	}

	idea, err := h.ideaService.CreateIdea(r.Context(), userID, input)
	if err != nil {
		slog.ErrorContext(r.Context(), "Create idea error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, idea)
}

func (h *IdeaHandler) parseMultipartIdea(r *http.Request) (service.CreateIdeaInput, error) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return service.CreateIdeaInput{}, err
	}

	input := service.CreateIdeaInput{
		Title:            r.FormValue("title"),
		Description:      r.FormValue("description"),
		Category:         r.FormValue("category"),
		Impact:           r.FormValue("impact"),
		Department:       r.FormValue("department"),
		Priority:         r.FormValue("priority"),
		Inspiration:      r.FormValue("inspiration"),
		SimilarSolutions: r.FormValue("similarSolutions"),
		AdminNotes:       r.FormValue("adminNotes"),
	}
	if tags := r.FormValue("tags"); tags != "" {
		for _, tag := range strings.Split(tags, ",") {
			if t := strings.TrimSpace(tag); t != "" {
				input.Tags = append(input.Tags, t)
			}
		}
	}

	if files := r.MultipartForm.File["attachment"]; len(files) > 0 {
		url, err := h.uploads.Save(files[0])
		if err != nil {
			return service.CreateIdeaInput{}, err
		}
		input.AttachmentURL = url
	}

	for _, fh := range r.MultipartForm.File["files"] {
		url, err := h.uploads.Save(fh)
		if err != nil {
			return service.CreateIdeaInput{}, err
		}
		mediaType := "file"
		if ct := fh.Header.Get("Content-Type"); ct != "" {
			mediaType = strings.SplitN(ct, "/", 2)[0]
		}
		input.MediaURLs = append(input.MediaURLs, model.Media{Type: mediaType, URL: url})
	}

	return input, nil
}

// ListIdeas serves the public listing with the shared filter/pagination
// parameters: query, status, category, userId, page, pageSize.
func (h *IdeaHandler) ListIdeas(w http.ResponseWriter, r *http.Request) {
	input, err := listInputFromQuery(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	page, err := h.ideaService.ListIdeas(r.Context(), input)
	if err != nil {
		slog.ErrorContext(r.Context(), "List ideas error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, page)
}

// AdminListIdeas is the triage dashboard's listing. It accepts the public
// filter set plus a department filter.
func (h *IdeaHandler) AdminListIdeas(w http.ResponseWriter, r *http.Request) {
	input, err := listInputFromQuery(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	input.Department = r.URL.Query().Get("department")

	page, err := h.ideaService.ListIdeas(r.Context(), input)
	if err != nil {
		slog.ErrorContext(r.Context(), "Admin list ideas error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, page)
}

func listInputFromQuery(r *http.Request) (service.ListIdeasInput, error) {
	q := r.URL.Query()
	input := service.ListIdeasInput{
		Query:    q.Get("query"),
		Page:     queryInt(q, "page", 1),
		PageSize: queryInt(q, "pageSize", 0),
	}

	if s := q.Get("status"); s != "" {
		status, err := model.ParseStatus(s)
		if err != nil {
			return input, err
		}
		input.Status = status
	}
	if c := q.Get("category"); c != "" {
		category, err := model.ParseCategory(c)
		if err != nil {
			return input, err
		}
		input.Category = category
	}
	if u := q.Get("userId"); u != "" {
		uid, err := uuid.Parse(u)
		if err != nil {
			return input, err
		}
		input.UserID = uid
	}
	return input, nil
}

func (h *IdeaHandler) GetIdea(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid idea ID")
		return
	}

	idea, err := h.ideaService.GetIdea(r.Context(), id)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, idea)
}

// ReviewQueue lists pending ideas with their SLA labels.
func (h *IdeaHandler) ReviewQueue(w http.ResponseWriter, r *http.Request) {
	items, err := h.ideaService.ReviewQueue(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Review queue error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, items)
}

func (h *IdeaHandler) PatchIdea(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid idea ID")
		return
	}

	_, role, ok := middleware.Identity(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "No session")
		return
	}

	var input service.PatchIdeaInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	idea, err := h.ideaService.PatchIdea(r.Context(), role, id, input)
	if err != nil {
		slog.ErrorContext(r.Context(), "Patch idea error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, idea)
}

func (h *IdeaHandler) Vote(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid idea ID")
		return
	}

	idea, err := h.ideaService.Vote(r.Context(), id)
	if err != nil {
		slog.ErrorContext(r.Context(), "Vote error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, idea)
}

// AdvanceStatus moves an idea one step down the linear pipeline.
func (h *IdeaHandler) AdvanceStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid idea ID")
		return
	}

	_, role, ok := middleware.Identity(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "No session")
		return
	}

	idea, err := h.ideaService.AdvanceStatus(r.Context(), role, id)
	if err != nil {
		slog.ErrorContext(r.Context(), "Advance status error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, idea)
}

// SetStatus is the management screen's free-form selector.
func (h *IdeaHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid idea ID")
		return
	}

	_, role, ok := middleware.Identity(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "No session")
		return
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	idea, err := h.ideaService.SetStatusDirect(r.Context(), role, id, body.Status)
	if err != nil {
		slog.ErrorContext(r.Context(), "Set status error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, idea)
}

func (h *IdeaHandler) Assign(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid idea ID")
		return
	}

	_, role, ok := middleware.Identity(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "No session")
		return
	}

	var input service.AssignInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	idea, err := h.ideaService.Assign(r.Context(), role, id, input)
	if err != nil {
		slog.ErrorContext(r.Context(), "Assign idea error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, idea)
}
