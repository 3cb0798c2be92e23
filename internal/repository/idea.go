// internal/repository/idea.go
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

type IdeaRepositoryIface interface {
	Begin(ctx context.Context) (Transaction, error)

	Create(ctx context.Context, idea *model.Idea) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Idea, error)
	FindAll(ctx context.Context) ([]*model.Idea, error)
	FindByStatuses(ctx context.Context, statuses []model.IdeaStatus) ([]*model.Idea, error)
	FindBySubmitter(ctx context.Context, userID uuid.UUID) ([]*model.Idea, error)
	Update(ctx context.Context, idea *model.Idea) error
	IncrementVotes(ctx context.Context, id uuid.UUID) error
	CountByStatus(ctx context.Context) (map[model.IdeaStatus]int64, error)
	CountByCategory(ctx context.Context) (map[model.IdeaCategory]int64, error)
}

type IdeaRepository struct {
	db *gorm.DB
}

func NewIdeaRepository(db *gorm.DB) *IdeaRepository {
	return &IdeaRepository{db: db}
}

func (r *IdeaRepository) Begin(ctx context.Context) (Transaction, error) {
	tx := r.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &gormTransaction{tx: tx}, nil
}

func (r *IdeaRepository) Create(ctx context.Context, idea *model.Idea) error {
	result := r.db.WithContext(ctx).Create(idea)
	if result.Error != nil {
		return fmt.Errorf("failed to create idea: %w", result.Error)
	}
	return nil
}

func (r *IdeaRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Idea, error) {
	var idea model.Idea
	result := r.db.WithContext(ctx).
		Preload("SubmittedBy").
		Preload("AssignedTo").
		First(&idea, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrIdeaNotFound
		}
		return nil, fmt.Errorf("failed to find idea: %w", result.Error)
	}
	return &idea, nil
}

// FindAll returns all ideas, newest first. Filtering happens in memory in
// the query package; listings are small enough that the predicate engine
// owns that concern.
func (r *IdeaRepository) FindAll(ctx context.Context) ([]*model.Idea, error) {
	var ideas []*model.Idea
	result := r.db.WithContext(ctx).
		Preload("SubmittedBy").
		Preload("AssignedTo").
		Order("created_at DESC").
		Find(&ideas)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find all ideas: %w", result.Error)
	}
	return ideas, nil
}

func (r *IdeaRepository) FindByStatuses(ctx context.Context, statuses []model.IdeaStatus) ([]*model.Idea, error) {
	var ideas []*model.Idea
	result := r.db.WithContext(ctx).
		Preload("SubmittedBy").
		Where("status IN ?", statuses).
		Order("created_at ASC").
		Find(&ideas)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find ideas by status: %w", result.Error)
	}
	return ideas, nil
}

func (r *IdeaRepository) FindBySubmitter(ctx context.Context, userID uuid.UUID) ([]*model.Idea, error) {
	var ideas []*model.Idea
	result := r.db.WithContext(ctx).
		Where("submitted_by_id = ?", userID).
		Order("created_at DESC").
		Find(&ideas)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find ideas by submitter: %w", result.Error)
	}
	return ideas, nil
}

func (r *IdeaRepository) Update(ctx context.Context, idea *model.Idea) error {
	result := r.db.WithContext(ctx).Save(idea)
	if result.Error != nil {
		return fmt.Errorf("failed to update idea: %w", result.Error)
	}
	return nil
}

// IncrementVotes bumps the vote counter atomically in the database rather
// than read-modify-writing the row.
func (r *IdeaRepository) IncrementVotes(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Model(&model.Idea{}).
		Where("id = ?", id).
		UpdateColumn("votes", gorm.Expr("votes + 1"))
	if result.Error != nil {
		return fmt.Errorf("failed to increment votes: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrIdeaNotFound
	}
	return nil
}

type statusCount struct {
	Status model.IdeaStatus
	Count  int64
}

func (r *IdeaRepository) CountByStatus(ctx context.Context) (map[model.IdeaStatus]int64, error) {
	var rows []statusCount
	result := r.db.WithContext(ctx).
		Model(&model.Idea{}).
		Select("status, count(*) as count").
		Group("status").
		Scan(&rows)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to count ideas by status: %w", result.Error)
	}

	counts := make(map[model.IdeaStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

type categoryCount struct {
	Category model.IdeaCategory
	Count    int64
}

func (r *IdeaRepository) CountByCategory(ctx context.Context) (map[model.IdeaCategory]int64, error) {
	var rows []categoryCount
	result := r.db.WithContext(ctx).
		Model(&model.Idea{}).
		Select("category, count(*) as count").
		Group("category").
		Scan(&rows)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to count ideas by category: %w", result.Error)
	}

	counts := make(map[model.IdeaCategory]int64, len(rows))
	for _, row := range rows {
		counts[row.Category] = row.Count
	}
	return counts, nil
}
