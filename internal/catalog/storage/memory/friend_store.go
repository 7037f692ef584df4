package memory

import (
	"context"
	"sync"

	"filmorate/internal/catalog/models"
	"filmorate/internal/catalog/storage"
)

type FriendStore struct {
	mu    sync.Mutex
	edges map[int][]int // user id -> friend ids in insertion order

	users storage.UserStore
}

func NewFriendStore(users storage.UserStore) *FriendStore {
	return &FriendStore{
		edges: make(map[int][]int),
		users: users,
	}
}

func (s *FriendStore) AddFriend(ctx context.Context, userID, friendID int) error {
	if err := s.users.CheckExists(ctx, userID); err != nil {
		return err
	}
	if err := s.users.CheckExists(ctx, friendID); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Both directions, so symmetry holds by construction.
	s.addEdge(userID, friendID)
	s.addEdge(friendID, userID)

	return nil
}

func (s *FriendStore) RemoveFriend(ctx context.Context, userID, friendID int) error {
	if err := s.users.CheckExists(ctx, userID); err != nil {
		return err
	}
	if err := s.users.CheckExists(ctx, friendID); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.removeEdge(userID, friendID)
	s.removeEdge(friendID, userID)

	return nil
}

func (s *FriendStore) GetFriends(ctx context.Context, userID int) ([]models.User, error) {
	if err := s.users.CheckExists(ctx, userID); err != nil {
		return nil, err
	}

	s.mu.Lock()
	ids := append([]int(nil), s.edges[userID]...)
	s.mu.Unlock()

	return s.resolve(ctx, ids)
}

func (s *FriendStore) GetCommonFriends(ctx context.Context, userID, otherID int) ([]models.User, error) {
	if err := s.users.CheckExists(ctx, userID); err != nil {
		return nil, err
	}
	if err := s.users.CheckExists(ctx, otherID); err != nil {
		return nil, err
	}

	s.mu.Lock()
	otherSet := make(map[int]bool, len(s.edges[otherID]))
	for _, id := range s.edges[otherID] {
		otherSet[id] = true
	}
	var common []int
	for _, id := range s.edges[userID] {
		if otherSet[id] {
			common = append(common, id)
		}
	}
	s.mu.Unlock()

	return s.resolve(ctx, common)
}

func (s *FriendStore) addEdge(from, to int) {
	for _, id := range s.edges[from] {
		if id == to {
			return
		}
	}
	s.edges[from] = append(s.edges[from], to)
}

func (s *FriendStore) removeEdge(from, to int) {
	list := s.edges[from]
	for i, id := range list {
		if id == to {
			s.edges[from] = append(list[:i], list[i+1:]...)
			return
		}
	}
}

func (s *FriendStore) resolve(ctx context.Context, ids []int) ([]models.User, error) {
	users := make([]models.User, 0, len(ids))
	for _, id := range ids {
		u, err := s.users.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		users = append(users, *u)
	}
	return users, nil
}
