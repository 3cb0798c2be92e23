// internal/service/comment.go
package service

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/upstartlab/ideahub/internal/domain"
	"github.com/upstartlab/ideahub/internal/model"
	"github.com/upstartlab/ideahub/internal/query"
	"github.com/upstartlab/ideahub/internal/repository"
)

type CommentService struct {
	repo         repository.CommentRepositoryIface
	ideaRepo     repository.IdeaRepositoryIface
	cacheService *CacheService
	validate     *validator.Validate
}

func NewCommentService(
	repo repository.CommentRepositoryIface,
	ideaRepo repository.IdeaRepositoryIface,
	cacheService *CacheService,
) *CommentService {
	return &CommentService{
		repo:         repo,
		ideaRepo:     ideaRepo,
		cacheService: cacheService,
		validate:     validator.New(),
	}
}

type AddCommentInput struct {
	Content  string     `json:"content" validate:"required,min=1,max=2000"`
	ParentID *uuid.UUID `json:"parentId"`
}

// AddComment attaches a comment (or a threaded reply) to an idea. A reply's
// parent must exist and belong to the same idea.
func (s *CommentService) AddComment(ctx context.Context, userID, ideaID uuid.UUID, input AddCommentInput) (*model.Comment, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
	}

	if _, err := s.ideaRepo.FindByID(ctx, ideaID); err != nil {
		return nil, err
	}

	if input.ParentID != nil {
		parent, err := s.repo.FindByID(ctx, *input.ParentID)
		if err != nil {
			return nil, domain.ErrParentCommentGone
		}
		if parent.IdeaID != ideaID {
			return nil, fmt.Errorf("%w: parent belongs to a different idea", domain.ErrInvalidInput)
		}
	}

	comment := &model.Comment{
		IdeaID:   ideaID,
		UserID:   userID,
		Content:  input.Content,
		ParentID: input.ParentID,
	}

	if err := s.repo.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("creating comment: %w", err)
	}

	s.invalidate(ctx, "ideas/"+ideaID.String())
	return s.repo.FindByID(ctx, comment.ID)
}

type ListCommentsInput struct {
	Query  string
	UserID uuid.UUID
}

// ListComments returns an idea's comments as reply trees. When a filter is
// present the matching comments come back flat, because a filtered subset
// has no meaningful thread shape.
func (s *CommentService) ListComments(ctx context.Context, ideaID uuid.UUID, input ListCommentsInput) ([]*model.Comment, error) {
	var comments []*model.Comment
	key := "ideas/" + ideaID.String() + "/comments"
	err := s.cacheService.GetOrSet(ctx, key, &comments, func() (interface{}, error) {
		return s.repo.FindByIdea(ctx, ideaID)
	})
	if err != nil {
		return nil, fmt.Errorf("listing comments: %w", err)
	}

	if input.Query != "" || input.UserID != uuid.Nil {
		return query.Comments(comments, query.Filter{
			Query:  input.Query,
			UserID: input.UserID,
		}), nil
	}

	return model.BuildCommentTree(comments), nil
}

type UpdateCommentInput struct {
	Content string `json:"content" validate:"required,min=1,max=2000"`
}

// UpdateComment edits a comment's content. Allowed for the author or an
// admin-capable role.
func (s *CommentService) UpdateComment(ctx context.Context, actorID uuid.UUID, actorRole model.Role, commentID uuid.UUID, input UpdateCommentInput) (*model.Comment, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
	}

	comment, err := s.repo.FindByID(ctx, commentID)
	if err != nil {
		return nil, err
	}

	if comment.UserID != actorID && !actorRole.AdminCapable() {
		return nil, domain.ErrForbidden
	}

	comment.Content = input.Content
	if err := s.repo.Update(ctx, comment); err != nil {
		return nil, fmt.Errorf("updating comment: %w", err)
	}

	s.invalidate(ctx, "ideas/"+comment.IdeaID.String())
	return comment, nil
}

// DeleteComment removes a comment. Allowed for the author or an
// admin-capable role.
func (s *CommentService) DeleteComment(ctx context.Context, actorID uuid.UUID, actorRole model.Role, commentID uuid.UUID) error {
	comment, err := s.repo.FindByID(ctx, commentID)
	if err != nil {
		return err
	}

	if comment.UserID != actorID && !actorRole.AdminCapable() {
		return domain.ErrForbidden
	}

	if err := s.repo.Delete(ctx, commentID); err != nil {
		return err
	}

	s.invalidate(ctx, "ideas/"+comment.IdeaID.String())
	return nil
}

func (s *CommentService) invalidate(ctx context.Context, resources ...string) {
	for _, res := range append(resources, "metrics") {
		_ = s.cacheService.Invalidate(ctx, res)
	}
}
