// internal/service/user.go
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/upstartlab/ideahub/internal/auth"
	"github.com/upstartlab/ideahub/internal/config"
	"github.com/upstartlab/ideahub/internal/domain"
	"github.com/upstartlab/ideahub/internal/model"
	"github.com/upstartlab/ideahub/internal/query"
	"github.com/upstartlab/ideahub/internal/repository"
)

type UserService struct {
	repo           repository.UserRepositoryIface
	ideaRepo       repository.IdeaRepositoryIface
	passwordHasher *auth.PasswordHasher
	tokenManager   *auth.TokenManager
	cacheService   *CacheService
	config         *config.Config
	validate       *validator.Validate
}

func NewUserService(
	repo repository.UserRepositoryIface,
	ideaRepo repository.IdeaRepositoryIface,
	passwordHasher *auth.PasswordHasher,
	tokenManager *auth.TokenManager,
	cacheService *CacheService,
	config *config.Config,
) *UserService {
	return &UserService{
		repo:           repo,
		ideaRepo:       ideaRepo,
		passwordHasher: passwordHasher,
		tokenManager:   tokenManager,
		cacheService:   cacheService,
		config:         config,
		validate:       validator.New(),
	}
}

type RegisterInput struct {
	Username    string `json:"username" validate:"required,min=3,max=64"`
	Email       string `json:"email" validate:"omitempty,email"`
	Password    string `json:"password" validate:"required,min=8"`
	DisplayName string `json:"displayName" validate:"max=128"`
	Department  string `json:"department" validate:"max=128"`
}

type RegisterOutput struct {
	User  *model.User `json:"user"`
	Token string      `json:"token"`
}

// Register creates a new account with the default user role. Privileged
// roles are only granted through user administration, never at signup.
func (s *UserService) Register(ctx context.Context, input RegisterInput) (*RegisterOutput, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
	}

	// The uniqueness checks and the insert must see one consistent view, or
	// two concurrent signups can both pass the check.
	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	existing, err := s.repo.FindByUsername(ctx, input.Username)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrUsernameTaken
	}

	if input.Email != "" {
		existing, err = s.repo.FindByEmail(ctx, input.Email)
		if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrEmailAlreadyExists
		}
	}

	hashed, err := s.passwordHasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &model.User{
		Username:     input.Username,
		Email:        input.Email,
		DisplayName:  input.DisplayName,
		Department:   input.Department,
		Role:         model.RoleUser,
		PasswordHash: hashed,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing transaction: %w", err)
	}

	s.invalidate(ctx, "users")

	token, err := s.tokenManager.Generate(user)
	if err != nil {
		return nil, fmt.Errorf("generating token: %w", err)
	}

	return &RegisterOutput{User: user, Token: token}, nil
}

type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginOutput struct {
	User  *model.User `json:"user"`
	Token string      `json:"token"`
}

func (s *UserService) Login(ctx context.Context, input LoginInput) (*LoginOutput, error) {
	user, err := s.repo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	verified, err := s.passwordHasher.Verify(input.Password, user.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("verifying password: %w", err)
	}
	if !verified {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokenManager.Generate(user)
	if err != nil {
		return nil, fmt.Errorf("generating token: %w", err)
	}

	return &LoginOutput{User: user, Token: token}, nil
}

// AdminLogin authenticates against the administrative entry point. A valid
// credential without an admin-capable role is rejected with ErrForbidden
// and no token is ever minted, so a non-privileged session cannot reach an
// admin view even momentarily.
func (s *UserService) AdminLogin(ctx context.Context, input LoginInput) (*LoginOutput, error) {
	user, err := s.repo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	verified, err := s.passwordHasher.Verify(input.Password, user.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("verifying password: %w", err)
	}
	if !verified {
		return nil, domain.ErrInvalidCredentials
	}

	if !user.Role.AdminCapable() {
		return nil, domain.ErrForbidden
	}

	token, err := s.tokenManager.Generate(user)
	if err != nil {
		return nil, fmt.Errorf("generating token: %w", err)
	}

	return &LoginOutput{User: user, Token: token}, nil
}

type ListUsersInput struct {
	Query      string
	Role       model.Role
	Department string
	Page       int
	PageSize   int
}

// ListUsers returns the filtered, paginated user directory for the admin
// screen. The raw list is cached under "users"; filtering stays in memory.
func (s *UserService) ListUsers(ctx context.Context, input ListUsersInput) (query.Page[*model.User], error) {
	var users []*model.User
	err := s.cacheService.GetOrSet(ctx, "users", &users, func() (interface{}, error) {
		return s.repo.FindAll(ctx)
	})
	if err != nil {
		return query.Page[*model.User]{}, fmt.Errorf("listing users: %w", err)
	}

	filtered := query.Users(users, query.Filter{
		Query:      input.Query,
		Role:       input.Role,
		Department: input.Department,
	})
	return query.Paginate(filtered, input.Page, input.PageSize), nil
}

func (s *UserService) GetUser(ctx context.Context, id uuid.UUID) (*model.User, error) {
	return s.repo.FindByID(ctx, id)
}

// DeleteUser removes a user account. Admin-capable callers only.
func (s *UserService) DeleteUser(ctx context.Context, actor model.Role, id uuid.UUID) error {
	if !actor.AdminCapable() {
		return domain.ErrForbidden
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidate(ctx, "users")
	return nil
}

// UserSubmissions lists the ideas a user has submitted, for the admin
// user-detail screen.
func (s *UserService) UserSubmissions(ctx context.Context, actor model.Role, id uuid.UUID) ([]*model.Idea, error) {
	if !actor.AdminCapable() {
		return nil, domain.ErrForbidden
	}

	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, err
	}
	return s.ideaRepo.FindBySubmitter(ctx, id)
}

func (s *UserService) invalidate(ctx context.Context, resources ...string) {
	for _, res := range append(resources, "metrics") {
		_ = s.cacheService.Invalidate(ctx, res)
	}
}
