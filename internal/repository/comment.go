// internal/repository/comment.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/upstartlab/ideahub/internal/domain"
	"github.com/upstartlab/ideahub/internal/model"
)

type CommentRepositoryIface interface {
	Create(ctx context.Context, comment *model.Comment) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Comment, error)
	FindByIdea(ctx context.Context, ideaID uuid.UUID) ([]*model.Comment, error)
	Update(ctx context.Context, comment *model.Comment) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}

type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) Create(ctx context.Context, comment *model.Comment) error {
	result := r.db.WithContext(ctx).Create(comment)
	if result.Error != nil {
		return fmt.Errorf("failed to create comment: %w", result.Error)
	}
	return nil
}

func (r *CommentRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Comment, error) {
	var comment model.Comment
	result := r.db.WithContext(ctx).Preload("Author").First(&comment, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCommentNotFound
		}
		return nil, fmt.Errorf("failed to find comment: %w", result.Error)
	}
	return &comment, nil
}

// FindByIdea returns an idea's comments oldest first, with authors loaded
// for display and search.
func (r *CommentRepository) FindByIdea(ctx context.Context, ideaID uuid.UUID) ([]*model.Comment, error) {
	var comments []*model.Comment
	result := r.db.WithContext(ctx).
		Preload("Author").
		Where("idea_id = ?", ideaID).
		Order("created_at ASC").
		Find(&comments)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find comments: %w", result.Error)
	}
	return comments, nil
}

func (r *CommentRepository) Update(ctx context.Context, comment *model.Comment) error {
	result := r.db.WithContext(ctx).Save(comment)
	if result.Error != nil {
		return fmt.Errorf("failed to update comment: %w", result.Error)
	}
	return nil
}

func (r *CommentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.Comment{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete comment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrCommentNotFound
	}
	return nil
}

func (r *CommentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Comment{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count comments: %w", err)
	}
	return count, nil
}
