package memory

import (
	"context"
	"sort"
	"sync"

	"filmorate/internal/catalog/models"
	"filmorate/internal/catalog/storage"
)

type LikeStore struct {
	mu    sync.Mutex
	likes map[int]map[int]struct{} // film id -> set of user ids

	films storage.FilmStore
	users storage.UserStore
}

func NewLikeStore(films storage.FilmStore, users storage.UserStore) *LikeStore {
	return &LikeStore{
		likes: make(map[int]map[int]struct{}),
		films: films,
		users: users,
	}
}

func (s *LikeStore) AddLike(ctx context.Context, filmID, userID int) error {
	if err := s.films.CheckExists(ctx, filmID); err != nil {
		return err
	}
	if err := s.users.CheckExists(ctx, userID); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	set, ok := s.likes[filmID]
	if !ok {
		set = make(map[int]struct{})
		s.likes[filmID] = set
	}
	set[userID] = struct{}{}

	return nil
}

func (s *LikeStore) RemoveLike(ctx context.Context, filmID, userID int) error {
	if err := s.films.CheckExists(ctx, filmID); err != nil {
		return err
	}
	if err := s.users.CheckExists(ctx, userID); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.likes[filmID], userID)

	return nil
}

func (s *LikeStore) CountLikes(ctx context.Context, filmID int) (int64, error) {
	if err := s.films.CheckExists(ctx, filmID); err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return int64(len(s.likes[filmID])), nil
}

// GetPopular ranks films with at least one like by like count descending (ties
// by id ascending), then pads with zero-like films by id ascending up to count.
func (s *LikeStore) GetPopular(ctx context.Context, count int) ([]models.Film, error) {
	if count <= 0 {
		return []models.Film{}, nil
	}

	films, err := s.films.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	counts := make(map[int]int, len(s.likes))
	for filmID, set := range s.likes {
		counts[filmID] = len(set)
	}
	s.mu.Unlock()

	var liked, unliked []models.Film
	for _, f := range films {
		if counts[f.ID] > 0 {
			liked = append(liked, f)
		} else {
			unliked = append(unliked, f)
		}
	}

	sort.Slice(liked, func(i, j int) bool {
		if counts[liked[i].ID] != counts[liked[j].ID] {
			return counts[liked[i].ID] > counts[liked[j].ID]
		}
		return liked[i].ID < liked[j].ID
	})
	sort.Slice(unliked, func(i, j int) bool {
		return unliked[i].ID < unliked[j].ID
	})

	result := append(liked, unliked...)
	if len(result) > count {
		result = result[:count]
	}
	return result, nil
}
