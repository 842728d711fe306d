package users

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// UserServiceImpl implements the UserService interface
type UserServiceImpl struct {
	store    UserStore
	renderer *ReportRenderer
	logger   *zap.Logger
}

// NewUserService creates a new user service instance. An empty locale renders
// reports in English.
func NewUserService(store UserStore, locale string, logger *zap.Logger) *UserServiceImpl {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UserServiceImpl{
		store:    store,
		renderer: NewReportRenderer(locale),
		logger:   logger,
	}
}

// CreateUser validates the request and stores a new active user
func (s *UserServiceImpl) CreateUser(ctx context.Context, req *CreateUserRequest) (*User, error) {
	if req == nil {
		return nil, newRequiredFieldsError("", nil)
	}
	if err := req.Validate(); err != nil {
		s.logger.Debug("Rejected user creation", zap.Error(err))
		return nil, err
	}

	user := req.ToUser()
	if err := s.store.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("User created",
		zap.String("user_id", user.ID),
		zap.Bool("is_admin", user.IsAdmin))
	return user, nil
}

// GetUserByID returns the user or nil when no user has that ID
func (s *UserServiceImpl) GetUserByID(ctx context.Context, userID string) *User {
	user, ok := s.store.GetUser(ctx, userID)
	if !ok {
		return nil
	}
	return user
}

// DeactivateUser marks a non-admin user inactive. Unknown users and admins are
// left untouched and yield false.
func (s *UserServiceImpl) DeactivateUser(ctx context.Context, userID string) bool {
	if !s.store.SetStatus(ctx, userID, UserStatusInactive) {
		s.logger.Debug("User not deactivated", zap.String("user_id", userID))
		return false
	}

	s.logger.Info("User deactivated", zap.String("user_id", userID))
	return true
}

// ListUsers returns all users in creation order
func (s *UserServiceImpl) ListUsers(ctx context.Context) []*User {
	return s.store.ListUsers(ctx)
}

// GenerateUserReport renders every stored user as plain text
func (s *UserServiceImpl) GenerateUserReport(ctx context.Context) string {
	return s.renderer.Render(s.store.ListUsers(ctx))
}

// Reset removes all users
func (s *UserServiceImpl) Reset(ctx context.Context) {
	s.store.Clear(ctx)
	s.logger.Debug("User store cleared")
}
