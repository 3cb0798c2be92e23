package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/upstartlab/ideahub/internal/config"
	"github.com/upstartlab/ideahub/internal/domain"
	"github.com/upstartlab/ideahub/internal/mocks"
	"github.com/upstartlab/ideahub/internal/model"
	"github.com/upstartlab/ideahub/internal/service"

	"github.com/google/uuid"
)

func newIdeaService(ideaRepo *mocks.MockIdeaRepositoryIface, userRepo *mocks.MockUserRepositoryIface, cache *service.CacheService) *service.IdeaService {
	return service.NewIdeaService(
		ideaRepo,
		userRepo,
		cache,
		nil,
		&config.Config{BaseURL: "http://localhost:8080"},
	)
}

func TestCreateIdea(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("new submissions start at submitted", func(t *testing.T) {
		ideaRepo := mocks.NewMockIdeaRepositoryIface(ctrl)
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)
		cache := newTestCache()
		defer cache.Close()

		ideaRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, idea *model.Idea) error {
				assert.Equal(t, model.StatusSubmitted, idea.Status)
				assert.Equal(t, 0, idea.Votes)
				idea.ID = uuid.New()
				return nil
			})

		svc := newIdeaService(ideaRepo, userRepo, cache)

		idea, err := svc.CreateIdea(context.Background(), uuid.New(), service.CreateIdeaInput{
			Title:       "Shared staging environment",
			Description: "A long-lived staging cluster teams can book time on.",
			Category:    "opportunity",
		})

		assert.NoError(t, err)
		assert.Equal(t, model.StatusSubmitted, idea.Status)
	})

	t.Run("unknown category is rejected", func(t *testing.T) {
		ideaRepo := mocks.NewMockIdeaRepositoryIface(ctrl)
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)
		cache := newTestCache()
		defer cache.Close()

		svc := newIdeaService(ideaRepo, userRepo, cache)

		_, err := svc.CreateIdea(context.Background(), uuid.New(), service.CreateIdeaInput{
			Title:       "Shared staging environment",
			Description: "A long-lived staging cluster teams can book time on.",
			Category:    "wish",
		})

		assert.ErrorIs(t, err, domain.ErrInvalidCategory)
	})

	t.Run("short description fails validation", func(t *testing.T) {
		ideaRepo := mocks.NewMockIdeaRepositoryIface(ctrl)
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)
		cache := newTestCache()
		defer cache.Close()

		svc := newIdeaService(ideaRepo, userRepo, cache)

		_, err := svc.CreateIdea(context.Background(), uuid.New(), service.CreateIdeaInput{
			Title:       "Shared staging environment",
			Description: "too short",
			Category:    "opportunity",
		})

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestAdvanceStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("two advances walk submitted to in-refinement", func(t *testing.T) {
		ideaRepo := mocks.NewMockIdeaRepositoryIface(ctrl)
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)
		cache := newTestCache()
		defer cache.Close()

		id := uuid.New()
		stored := &model.Idea{ID: id, Status: model.StatusSubmitted}

		ideaRepo.EXPECT().FindByID(gomock.Any(), id).Return(stored, nil).Times(2)
		ideaRepo.EXPECT().Update(gomock.Any(), stored).Return(nil).Times(2)

		svc := newIdeaService(ideaRepo, userRepo, cache)

		idea, err := svc.AdvanceStatus(context.Background(), model.RoleReviewer, id)
		assert.NoError(t, err)
		assert.Equal(t, model.StatusInReview, idea.Status)

		idea, err = svc.AdvanceStatus(context.Background(), model.RoleReviewer, id)
		assert.NoError(t, err)
		assert.Equal(t, model.StatusInRefinement, idea.Status)
	})

	t.Run("closed ideas cycle back to submitted", func(t *testing.T) {
		ideaRepo := mocks.NewMockIdeaRepositoryIface(ctrl)
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)
		cache := newTestCache()
		defer cache.Close()

		id := uuid.New()
		ideaRepo.EXPECT().FindByID(gomock.Any(), id).Return(&model.Idea{ID: id, Status: model.StatusClosed}, nil)
		ideaRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

		svc := newIdeaService(ideaRepo, userRepo, cache)

		idea, err := svc.AdvanceStatus(context.Background(), model.RoleAdmin, id)
		assert.NoError(t, err)
		assert.Equal(t, model.StatusSubmitted, idea.Status)
	})

	t.Run("non-admin callers observe no mutation", func(t *testing.T) {
		ideaRepo := mocks.NewMockIdeaRepositoryIface(ctrl)
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)
		cache := newTestCache()
		defer cache.Close()

		svc := newIdeaService(ideaRepo, userRepo, cache)

		_, err := svc.AdvanceStatus(context.Background(), model.RoleUser, uuid.New())
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})
}

func TestSetStatusDirect(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("parked is directly assignable", func(t *testing.T) {
		ideaRepo := mocks.NewMockIdeaRepositoryIface(ctrl)
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)
		cache := newTestCache()
		defer cache.Close()

		id := uuid.New()
		ideaRepo.EXPECT().FindByID(gomock.Any(), id).Return(&model.Idea{ID: id, Status: model.StatusInReview}, nil)
		ideaRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

		svc := newIdeaService(ideaRepo, userRepo, cache)

		idea, err := svc.SetStatusDirect(context.Background(), model.RoleTransformer, id, "parked")
		assert.NoError(t, err)
		assert.Equal(t, model.StatusParked, idea.Status)
	})

	t.Run("pipeline-only statuses are refused", func(t *testing.T) {
		ideaRepo := mocks.NewMockIdeaRepositoryIface(ctrl)
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)
		cache := newTestCache()
		defer cache.Close()

		svc := newIdeaService(ideaRepo, userRepo, cache)

		for _, target := range []string{"in-refinement", "closed"} {
			_, err := svc.SetStatusDirect(context.Background(), model.RoleAdmin, uuid.New(), target)
			assert.ErrorIs(t, err, domain.ErrInvalidStatus, target)
		}
	})

	t.Run("unknown status is refused", func(t *testing.T) {
		ideaRepo := mocks.NewMockIdeaRepositoryIface(ctrl)
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)
		cache := newTestCache()
		defer cache.Close()

		svc := newIdeaService(ideaRepo, userRepo, cache)

		_, err := svc.SetStatusDirect(context.Background(), model.RoleAdmin, uuid.New(), "garbage")
		assert.ErrorIs(t, err, domain.ErrInvalidStatus)
	})
}

func TestVote(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ideaRepo := mocks.NewMockIdeaRepositoryIface(ctrl)
	userRepo := mocks.NewMockUserRepositoryIface(ctrl)
	cache := newTestCache()
	defer cache.Close()

	id := uuid.New()
	gomock.InOrder(
		ideaRepo.EXPECT().IncrementVotes(gomock.Any(), id).Return(nil),
		ideaRepo.EXPECT().FindByID(gomock.Any(), id).Return(&model.Idea{ID: id, Votes: 5}, nil),
	)

	svc := newIdeaService(ideaRepo, userRepo, cache)

	idea, err := svc.Vote(context.Background(), id)
	assert.NoError(t, err)
	assert.Equal(t, 5, idea.Votes)
}

func TestVoteInvalidatesCachedListing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ideaRepo := mocks.NewMockIdeaRepositoryIface(ctrl)
	userRepo := mocks.NewMockUserRepositoryIface(ctrl)
	cache := newTestCache()
	defer cache.Close()

	id := uuid.New()
	first := []*model.Idea{{ID: id, Title: "Cut meeting load", Description: "Replace status meetings with a weekly digest", Category: model.CategoryPainPoint, Votes: 0}}
	second := []*model.Idea{{ID: id, Title: "Cut meeting load", Description: "Replace status meetings with a weekly digest", Category: model.CategoryPainPoint, Votes: 1}}

	gomock.InOrder(
		ideaRepo.EXPECT().FindAll(gomock.Any()).Return(first, nil),
		ideaRepo.EXPECT().IncrementVotes(gomock.Any(), id).Return(nil),
		ideaRepo.EXPECT().FindByID(gomock.Any(), id).Return(second[0], nil),
		ideaRepo.EXPECT().FindAll(gomock.Any()).Return(second, nil),
	)

	svc := newIdeaService(ideaRepo, userRepo, cache)

	page, err := svc.ListIdeas(context.Background(), service.ListIdeasInput{})
	assert.NoError(t, err)
	assert.Equal(t, 0, page.Items[0].Votes)

	_, err = svc.Vote(context.Background(), id)
	assert.NoError(t, err)

	// The vote invalidated the listing, so this refetches instead of
	// serving the stale count.
	page, err = svc.ListIdeas(context.Background(), service.ListIdeasInput{})
	assert.NoError(t, err)
	assert.Equal(t, 1, page.Items[0].Votes)
}

func TestReviewQueue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ideaRepo := mocks.NewMockIdeaRepositoryIface(ctrl)
	userRepo := mocks.NewMockUserRepositoryIface(ctrl)
	cache := newTestCache()
	defer cache.Close()

	now := time.Now()
	ideaRepo.EXPECT().
		FindByStatuses(gomock.Any(), []model.IdeaStatus{model.StatusSubmitted, model.StatusInReview}).
		Return([]*model.Idea{
			{Title: "old", Status: model.StatusSubmitted, CreatedAt: now.Add(-4 * 24 * time.Hour)},
			{Title: "fresh", Status: model.StatusInReview, CreatedAt: now},
		}, nil)

	svc := newIdeaService(ideaRepo, userRepo, cache)

	items, err := svc.ReviewQueue(context.Background())
	assert.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, "Overdue", items[0].SLA)
	assert.Equal(t, "3 days left", items[1].SLA)
}

func TestAssign(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("assign by user ID", func(t *testing.T) {
		ideaRepo := mocks.NewMockIdeaRepositoryIface(ctrl)
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)
		cache := newTestCache()
		defer cache.Close()

		assignee := &model.User{ID: uuid.New(), Username: "impl"}
		ideaID := uuid.New()

		userRepo.EXPECT().FindByID(gomock.Any(), assignee.ID).Return(assignee, nil)
		ideaRepo.EXPECT().Begin(gomock.Any()).Return(newTxMock(ctrl, true), nil)
		ideaRepo.EXPECT().FindByID(gomock.Any(), ideaID).Return(&model.Idea{ID: ideaID}, nil)
		ideaRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

		svc := newIdeaService(ideaRepo, userRepo, cache)

		idea, err := svc.Assign(context.Background(), model.RoleAdmin, ideaID, service.AssignInput{
			Role:   "implementer",
			UserID: assignee.ID.String(),
		})

		assert.NoError(t, err)
		assert.Equal(t, assignee.ID, *idea.AssignedToID)
		assert.Equal(t, model.RoleImplementer, idea.AssignedRole)
	})

	t.Run("assign by email sentinel", func(t *testing.T) {
		ideaRepo := mocks.NewMockIdeaRepositoryIface(ctrl)
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)
		cache := newTestCache()
		defer cache.Close()

		assignee := &model.User{ID: uuid.New(), Username: "rev", Email: "rev@example.com"}
		ideaID := uuid.New()

		userRepo.EXPECT().FindByEmail(gomock.Any(), "rev@example.com").Return(assignee, nil)
		ideaRepo.EXPECT().Begin(gomock.Any()).Return(newTxMock(ctrl, true), nil)
		ideaRepo.EXPECT().FindByID(gomock.Any(), ideaID).Return(&model.Idea{ID: ideaID}, nil)
		ideaRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

		svc := newIdeaService(ideaRepo, userRepo, cache)

		idea, err := svc.Assign(context.Background(), model.RoleAdmin, ideaID, service.AssignInput{
			Role:   "reviewer",
			UserID: "email:rev@example.com",
		})

		assert.NoError(t, err)
		assert.Equal(t, assignee.ID, *idea.AssignedToID)
	})

	t.Run("missing assignee", func(t *testing.T) {
		ideaRepo := mocks.NewMockIdeaRepositoryIface(ctrl)
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)
		cache := newTestCache()
		defer cache.Close()

		userRepo.EXPECT().FindByEmail(gomock.Any(), "gone@example.com").Return(nil, domain.ErrUserNotFound)

		svc := newIdeaService(ideaRepo, userRepo, cache)

		_, err := svc.Assign(context.Background(), model.RoleAdmin, uuid.New(), service.AssignInput{
			Role:   "reviewer",
			UserID: "email:gone@example.com",
		})

		assert.ErrorIs(t, err, domain.ErrAssigneeMissing)
	})

	t.Run("unknown role", func(t *testing.T) {
		ideaRepo := mocks.NewMockIdeaRepositoryIface(ctrl)
		userRepo := mocks.NewMockUserRepositoryIface(ctrl)
		cache := newTestCache()
		defer cache.Close()

		svc := newIdeaService(ideaRepo, userRepo, cache)

		_, err := svc.Assign(context.Background(), model.RoleAdmin, uuid.New(), service.AssignInput{
			Role:   "wizard",
			UserID: uuid.New().String(),
		})

		assert.ErrorIs(t, err, domain.ErrInvalidRole)
	})
}

func TestPatchIdea(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ideaRepo := mocks.NewMockIdeaRepositoryIface(ctrl)
	userRepo := mocks.NewMockUserRepositoryIface(ctrl)
	cache := newTestCache()
	defer cache.Close()

	id := uuid.New()
	ideaRepo.EXPECT().FindByID(gomock.Any(), id).Return(&model.Idea{ID: id, Status: model.StatusSubmitted}, nil)
	ideaRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

	svc := newIdeaService(ideaRepo, userRepo, cache)

	notes := "needs a cost estimate"
	status := "in-review"
	idea, err := svc.PatchIdea(context.Background(), model.RoleReviewer, id, service.PatchIdeaInput{
		Status:     &status,
		AdminNotes: &notes,
	})

	assert.NoError(t, err)
	assert.Equal(t, model.StatusInReview, idea.Status)
	assert.Equal(t, notes, idea.AdminNotes)

	_, err = svc.PatchIdea(context.Background(), model.RoleUser, id, service.PatchIdeaInput{})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
