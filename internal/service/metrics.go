// internal/service/metrics.go
package service

import (
	"context"
	"fmt"

	"github.com/upstartlab/ideahub/internal/model"
	"github.com/upstartlab/ideahub/internal/repository"
)

// Metrics holds the aggregate counters behind the dashboard cards.
type Metrics struct {
	TotalIdeas    int64                        `json:"totalIdeas"`
	TotalUsers    int64                        `json:"totalUsers"`
	TotalComments int64                        `json:"totalComments"`
	ByStatus      map[model.IdeaStatus]int64   `json:"byStatus"`
	ByCategory    map[model.IdeaCategory]int64 `json:"byCategory"`
}

type MetricsService struct {
	ideaRepo     repository.IdeaRepositoryIface
	userRepo     repository.UserRepositoryIface
	commentRepo  repository.CommentRepositoryIface
	cacheService *CacheService
}

func NewMetricsService(
	ideaRepo repository.IdeaRepositoryIface,
	userRepo repository.UserRepositoryIface,
	commentRepo repository.CommentRepositoryIface,
	cacheService *CacheService,
) *MetricsService {
	return &MetricsService{
		ideaRepo:     ideaRepo,
		userRepo:     userRepo,
		commentRepo:  commentRepo,
		cacheService: cacheService,
	}
}

// Snapshot computes the dashboard counters. Results live under the
// "metrics" cache key, which every mutating service invalidates.
func (s *MetricsService) Snapshot(ctx context.Context) (*Metrics, error) {
	var metrics Metrics
	err := s.cacheService.GetOrSet(ctx, "metrics", &metrics, func() (interface{}, error) {
		return s.compute(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("computing metrics: %w", err)
	}
	return &metrics, nil
}

func (s *MetricsService) compute(ctx context.Context) (*Metrics, error) {
	byStatus, err := s.ideaRepo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	byCategory, err := s.ideaRepo.CountByCategory(ctx)
	if err != nil {
		return nil, err
	}

	var totalIdeas int64
	for _, n := range byStatus {
		totalIdeas += n
	}

	totalUsers, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	totalComments, err := s.commentRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	return &Metrics{
		TotalIdeas:    totalIdeas,
		TotalUsers:    totalUsers,
		TotalComments: totalComments,
		ByStatus:      byStatus,
		ByCategory:    byCategory,
	}, nil
}
