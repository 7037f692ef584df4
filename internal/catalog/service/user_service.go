package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"filmorate/internal/catalog/models"
	"filmorate/internal/catalog/storage"
)

type UserService interface {
	FindAll(ctx context.Context) ([]models.User, error)
	Create(ctx context.Context, user *models.User) (*models.User, error)
	Update(ctx context.Context, user *models.User) (*models.User, error)
	GetByID(ctx context.Context, id int) (*models.User, error)
	AddFriend(ctx context.Context, userID, friendID int) error
	RemoveFriend(ctx context.Context, userID, friendID int) error
	GetFriends(ctx context.Context, userID int) ([]models.User, error)
	GetCommonFriends(ctx context.Context, userID, otherID int) ([]models.User, error)
}

type userService struct {
	users   storage.UserStore
	friends storage.FriendStore
	logger  *slog.Logger
}

func NewUserService(users storage.UserStore, friends storage.FriendStore, logger *slog.Logger) UserService {
	return &userService{
		users:   users,
		friends: friends,
		logger:  logger,
	}
}

func validUser(user *models.User) error {
	if strings.TrimSpace(user.Email) == "" || !strings.Contains(user.Email, "@") {
		return fmt.Errorf("user email is missing or malformed: %w", ErrValidation)
	}
	if strings.TrimSpace(user.Login) == "" || strings.Contains(user.Login, " ") {
		return fmt.Errorf("user login must not be blank or contain spaces: %w", ErrValidation)
	}
	if user.Birthday.After(time.Now()) {
		return fmt.Errorf("user birthday must not be in the future: %w", ErrValidation)
	}
	if strings.TrimSpace(user.Name) == "" {
		user.Name = user.Login
	}
	return nil
}

func (s *userService) FindAll(ctx context.Context) ([]models.User, error) {
	return s.users.FindAll(ctx)
}

func (s *userService) Create(ctx context.Context, user *models.User) (*models.User, error) {
	if err := validUser(user); err != nil {
		return nil, err
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	s.logger.Debug("user created", "id", user.ID, "login", user.Login)
	return user, nil
}

func (s *userService) Update(ctx context.Context, user *models.User) (*models.User, error) {
	if err := validUser(user); err != nil {
		return nil, err
	}
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	s.logger.Debug("user updated", "id", user.ID)
	return user, nil
}

func (s *userService) GetByID(ctx context.Context, id int) (*models.User, error) {
	return s.users.GetByID(ctx, id)
}

func (s *userService) AddFriend(ctx context.Context, userID, friendID int) error {
	if err := s.friends.AddFriend(ctx, userID, friendID); err != nil {
		return err
	}
	s.logger.Info("friend added", "user_id", userID, "friend_id", friendID)
	return nil
}

func (s *userService) RemoveFriend(ctx context.Context, userID, friendID int) error {
	if err := s.friends.RemoveFriend(ctx, userID, friendID); err != nil {
		return err
	}
	s.logger.Info("friend removed", "user_id", userID, "friend_id", friendID)
	return nil
}

func (s *userService) GetFriends(ctx context.Context, userID int) ([]models.User, error) {
	return s.friends.GetFriends(ctx, userID)
}

func (s *userService) GetCommonFriends(ctx context.Context, userID, otherID int) ([]models.User, error) {
	return s.friends.GetCommonFriends(ctx, userID, otherID)
}
