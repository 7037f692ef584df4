package memory

import (
	"context"
	"fmt"
	"sync"

	"filmorate/internal/catalog/models"
	"filmorate/internal/catalog/storage"
)

type UserStore struct {
	mu     sync.RWMutex
	users  map[int]models.User
	order  []int
	nextID int
}

func NewUserStore() *UserStore {
	return &UserStore{users: make(map[int]models.User)}
}

func (s *UserStore) Create(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	user.ID = s.nextID
	s.users[user.ID] = *user
	s.order = append(s.order, user.ID)

	return nil
}

func (s *UserStore) Update(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[user.ID]; !ok {
		return fmt.Errorf("user with id %d: %w", user.ID, storage.ErrNotFound)
	}
	s.users[user.ID] = *user

	return nil
}

func (s *UserStore) GetByID(ctx context.Context, id int) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, fmt.Errorf("user with id %d: %w", id, storage.ErrNotFound)
	}
	return &user, nil
}

func (s *UserStore) FindAll(ctx context.Context) ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]models.User, 0, len(s.order))
	for _, id := range s.order {
		list = append(list, s.users[id])
	}
	return list, nil
}

func (s *UserStore) Exists(ctx context.Context, id int) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.users[id]
	return ok, nil
}

func (s *UserStore) CheckExists(ctx context.Context, id int) error {
	ok, err := s.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("user with id %d: %w", id, storage.ErrNotFound)
	}
	return nil
}
