// internal/service/idea.go
package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/upstartlab/ideahub/internal/config"
	"github.com/upstartlab/ideahub/internal/domain"
	"github.com/upstartlab/ideahub/internal/email"
	"github.com/upstartlab/ideahub/internal/email/mailer"
	"github.com/upstartlab/ideahub/internal/model"
	"github.com/upstartlab/ideahub/internal/query"
	"github.com/upstartlab/ideahub/internal/repository"
	"github.com/upstartlab/ideahub/internal/workflow"
)

// emailSentinel marks an assignment request that addresses the assignee by
// email instead of user ID.
const emailSentinel = "email:"

type IdeaService struct {
	repo         repository.IdeaRepositoryIface
	userRepo     repository.UserRepositoryIface
	cacheService *CacheService
	emailService *email.Service
	config       *config.Config
	validate     *validator.Validate
}

func NewIdeaService(
	repo repository.IdeaRepositoryIface,
	userRepo repository.UserRepositoryIface,
	cacheService *CacheService,
	emailService *email.Service,
	config *config.Config,
) *IdeaService {
	return &IdeaService{
		repo:         repo,
		userRepo:     userRepo,
		cacheService: cacheService,
		emailService: emailService,
		config:       config,
		validate:     validator.New(),
	}
}

type CreateIdeaInput struct {
	Title            string        `json:"title" validate:"required,min=3,max=200"`
	Description      string        `json:"description" validate:"required,min=10,max=5000"`
	Category         string        `json:"category" validate:"required"`
	Impact           string        `json:"impact" validate:"max=2000"`
	Department       string        `json:"department" validate:"max=128"`
	Priority         string        `json:"priority" validate:"max=32"`
	Tags             []string      `json:"tags" validate:"max=10,dive,max=40"`
	Inspiration      string        `json:"inspiration" validate:"max=2000"`
	SimilarSolutions string        `json:"similarSolutions" validate:"max=2000"`
	AdminNotes       string        `json:"adminNotes" validate:"max=2000"`
	AttachmentURL    string        `json:"-"`
	MediaURLs        []model.Media `json:"-"`
}

// CreateIdea validates and stores a new submission. New ideas always enter
// the pipeline at "submitted" with zero votes.
func (s *IdeaService) CreateIdea(ctx context.Context, submitterID uuid.UUID, input CreateIdeaInput) (*model.Idea, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
	}

	category, err := model.ParseCategory(input.Category)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidCategory, err)
	}

	idea := &model.Idea{
		Title:            input.Title,
		Description:      input.Description,
		Category:         category,
		Status:           model.StatusSubmitted,
		Priority:         input.Priority,
		Department:       input.Department,
		Tags:             input.Tags,
		Impact:           input.Impact,
		Inspiration:      input.Inspiration,
		SimilarSolutions: input.SimilarSolutions,
		AdminNotes:       input.AdminNotes,
		AttachmentURL:    input.AttachmentURL,
		MediaURLs:        input.MediaURLs,
		SubmittedByID:    submitterID,
	}

	if err := s.repo.Create(ctx, idea); err != nil {
		return nil, fmt.Errorf("creating idea: %w", err)
	}

	s.invalidate(ctx, "ideas")
	return idea, nil
}

type ListIdeasInput struct {
	Query      string
	Status     model.IdeaStatus
	Category   model.IdeaCategory
	UserID     uuid.UUID
	Department string
	Page       int
	PageSize   int
}

// ListIdeas returns the filtered, paginated idea list. The raw listing is
// cached under "ideas"; the predicate engine runs on every request.
func (s *IdeaService) ListIdeas(ctx context.Context, input ListIdeasInput) (query.Page[*model.Idea], error) {
	var ideas []*model.Idea
	err := s.cacheService.GetOrSet(ctx, "ideas", &ideas, func() (interface{}, error) {
		return s.repo.FindAll(ctx)
	})
	if err != nil {
		return query.Page[*model.Idea]{}, fmt.Errorf("listing ideas: %w", err)
	}

	filtered := query.Ideas(ideas, query.Filter{
		Query:      input.Query,
		Status:     input.Status,
		Category:   input.Category,
		UserID:     input.UserID,
		Department: input.Department,
	})
	return query.Paginate(filtered, input.Page, input.PageSize), nil
}

func (s *IdeaService) GetIdea(ctx context.Context, id uuid.UUID) (*model.Idea, error) {
	var idea model.Idea
	err := s.cacheService.GetOrSet(ctx, "ideas/"+id.String(), &idea, func() (interface{}, error) {
		return s.repo.FindByID(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	return &idea, nil
}

// ReviewItem pairs a pending idea with its review urgency label.
type ReviewItem struct {
	Idea *model.Idea `json:"idea"`
	SLA  string      `json:"sla"`
}

// ReviewQueue lists ideas awaiting review, oldest first, with the SLA label
// computed against the current clock. The queue is read straight from the
// repository: SLA labels age with every request and must never be served
// stale from the cache.
func (s *IdeaService) ReviewQueue(ctx context.Context) ([]ReviewItem, error) {
	ideas, err := s.repo.FindByStatuses(ctx, []model.IdeaStatus{
		model.StatusSubmitted,
		model.StatusInReview,
	})
	if err != nil {
		return nil, fmt.Errorf("loading review queue: %w", err)
	}

	now := time.Now()
	items := make([]ReviewItem, 0, len(ideas))
	for _, idea := range ideas {
		items = append(items, ReviewItem{
			Idea: idea,
			SLA:  workflow.ReviewSLA(idea.CreatedAt, now),
		})
	}
	return items, nil
}

type PatchIdeaInput struct {
	Status     *string `json:"status"`
	AdminNotes *string `json:"adminNotes"`
	Priority   *string `json:"priority"`
	Department *string `json:"department"`
}

// PatchIdea applies a partial update. Triage fields are admin territory, so
// the whole operation is gated on an admin-capable role.
func (s *IdeaService) PatchIdea(ctx context.Context, actor model.Role, id uuid.UUID, input PatchIdeaInput) (*model.Idea, error) {
	if !actor.AdminCapable() {
		return nil, domain.ErrForbidden
	}

	idea, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Status != nil {
		status, err := model.ParseStatus(*input.Status)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", domain.ErrInvalidStatus, err)
		}
		idea.Status = status
	}
	if input.AdminNotes != nil {
		idea.AdminNotes = *input.AdminNotes
	}
	if input.Priority != nil {
		idea.Priority = *input.Priority
	}
	if input.Department != nil {
		idea.Department = *input.Department
	}

	if err := s.repo.Update(ctx, idea); err != nil {
		return nil, fmt.Errorf("updating idea: %w", err)
	}

	s.invalidate(ctx, "ideas")
	return idea, nil
}

// Vote records one vote increment. There is no per-user deduplication here;
// exactly-once semantics, if ever required, belong to a dedicated ballot
// store, not this counter.
func (s *IdeaService) Vote(ctx context.Context, id uuid.UUID) (*model.Idea, error) {
	if err := s.repo.IncrementVotes(ctx, id); err != nil {
		return nil, err
	}

	s.invalidate(ctx, "ideas")
	return s.repo.FindByID(ctx, id)
}

// AdvanceStatus moves an idea one step along the linear review pipeline.
// Admin-capable callers only; denied callers observe no mutation.
func (s *IdeaService) AdvanceStatus(ctx context.Context, actor model.Role, id uuid.UUID) (*model.Idea, error) {
	if !actor.AdminCapable() {
		return nil, domain.ErrForbidden
	}

	idea, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	idea.Status = workflow.NextStatus(idea.Status)
	if err := s.repo.Update(ctx, idea); err != nil {
		return nil, fmt.Errorf("advancing status: %w", err)
	}

	s.invalidate(ctx, "ideas")
	return idea, nil
}

// SetStatusDirect assigns a status through the management screen's
// free-form selector. This is a separate transition path from
// AdvanceStatus and is deliberately not validated against the linear
// pipeline (see DESIGN.md).
func (s *IdeaService) SetStatusDirect(ctx context.Context, actor model.Role, id uuid.UUID, target string) (*model.Idea, error) {
	if !actor.AdminCapable() {
		return nil, domain.ErrForbidden
	}

	status, err := model.ParseStatus(target)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidStatus, err)
	}
	if !workflow.CanSetDirect(status) {
		return nil, fmt.Errorf("%w: %q is not directly assignable", domain.ErrInvalidStatus, target)
	}

	idea, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	idea.Status = status
	if err := s.repo.Update(ctx, idea); err != nil {
		return nil, fmt.Errorf("setting status: %w", err)
	}

	s.invalidate(ctx, "ideas")
	return idea, nil
}

type AssignInput struct {
	Role   string `json:"role"`
	UserID string `json:"userId"`
}

// Assign attaches a user to an idea under a role label. UserID may carry an
// "email:" sentinel to request assignment by email address.
func (s *IdeaService) Assign(ctx context.Context, actor model.Role, id uuid.UUID, input AssignInput) (*model.Idea, error) {
	if !actor.AdminCapable() {
		return nil, domain.ErrForbidden
	}

	role, err := model.ParseRole(input.Role)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidRole, err)
	}

	assignee, err := s.resolveAssignee(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	// Read-modify-write on the assignment fields runs inside a transaction.
	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	idea, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	idea.AssignedToID = &assignee.ID
	idea.AssignedRole = role
	if err := s.repo.Update(ctx, idea); err != nil {
		return nil, fmt.Errorf("assigning idea: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing transaction: %w", err)
	}

	s.invalidate(ctx, "ideas")

	// Notification is best effort; the assignment itself already happened.
	if s.emailService != nil && assignee.Email != "" {
		link := fmt.Sprintf("%s/ideas/%s", s.config.BaseURL, idea.ID)
		if err := mailer.SendAssignmentEmail(s.emailService, assignee.Email, assignee.Name(), string(role), idea.Title, link); err != nil {
			slog.WarnContext(ctx, "sending assignment email", "error", err, "idea", idea.ID)
		}
	}

	return idea, nil
}

func (s *IdeaService) resolveAssignee(ctx context.Context, ref string) (*model.User, error) {
	if strings.HasPrefix(ref, emailSentinel) {
		user, err := s.userRepo.FindByEmail(ctx, strings.TrimPrefix(ref, emailSentinel))
		if err != nil {
			return nil, domain.ErrAssigneeMissing
		}
		return user, nil
	}

	uid, err := uuid.Parse(ref)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid assignee reference", domain.ErrInvalidInput)
	}

	user, err := s.userRepo.FindByID(ctx, uid)
	if err != nil {
		return nil, domain.ErrAssigneeMissing
	}
	return user, nil
}

func (s *IdeaService) invalidate(ctx context.Context, resources ...string) {
	for _, res := range append(resources, "metrics") {
		_ = s.cacheService.Invalidate(ctx, res)
	}
}
