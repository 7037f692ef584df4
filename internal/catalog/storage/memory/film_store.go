// Package memory provides the transient in-process storage backend. Each store
// owns its map and id counter behind a single mutex, so id assignment is
// race-free.
package memory

import (
	"context"
	"fmt"
	"sync"

	"filmorate/internal/catalog/models"
	"filmorate/internal/catalog/storage"
)

type FilmStore struct {
	mu     sync.RWMutex
	films  map[int]models.Film
	order  []int
	nextID int

	genres storage.GenreStore
	mpa    storage.MPAStore
}

func NewFilmStore(genres storage.GenreStore, mpa storage.MPAStore) *FilmStore {
	return &FilmStore{
		films:  make(map[int]models.Film),
		genres: genres,
		mpa:    mpa,
	}
}

func (s *FilmStore) Create(ctx context.Context, film *models.Film) error {
	if err := s.resolveReferences(ctx, film); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// The store owns identity: any caller-supplied id is discarded.
	s.nextID++
	film.ID = s.nextID
	s.films[film.ID] = *film
	s.order = append(s.order, film.ID)

	return nil
}

func (s *FilmStore) Update(ctx context.Context, film *models.Film) error {
	if err := s.resolveReferences(ctx, film); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.films[film.ID]; !ok {
		return fmt.Errorf("film with id %d: %w", film.ID, storage.ErrNotFound)
	}
	s.films[film.ID] = *film

	return nil
}

func (s *FilmStore) GetByID(ctx context.Context, id int) (*models.Film, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	film, ok := s.films[id]
	if !ok {
		return nil, fmt.Errorf("film with id %d: %w", id, storage.ErrNotFound)
	}
	return &film, nil
}

func (s *FilmStore) FindAll(ctx context.Context) ([]models.Film, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]models.Film, 0, len(s.order))
	for _, id := range s.order {
		list = append(list, s.films[id])
	}
	return list, nil
}

func (s *FilmStore) Exists(ctx context.Context, id int) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.films[id]
	return ok, nil
}

func (s *FilmStore) CheckExists(ctx context.Context, id int) error {
	ok, err := s.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("film with id %d: %w", id, storage.ErrNotFound)
	}
	return nil
}

// resolveReferences replaces the film's MPA and genre stubs with the full
// reference entities, failing with ErrNotFound on a dangling id. Runs before
// the store lock is taken so the reference stores stay independent.
func (s *FilmStore) resolveReferences(ctx context.Context, film *models.Film) error {
	mpa, err := s.mpa.GetByID(ctx, film.MPA.ID)
	if err != nil {
		return err
	}
	film.MPA = *mpa
	film.MPAID = mpa.ID

	genres := make([]models.Genre, 0, len(film.Genres))
	seen := make(map[int]bool, len(film.Genres))
	for _, g := range film.Genres {
		if seen[g.ID] {
			continue
		}
		seen[g.ID] = true
		resolved, err := s.genres.GetByID(ctx, g.ID)
		if err != nil {
			return err
		}
		genres = append(genres, *resolved)
	}
	film.Genres = genres

	return nil
}
