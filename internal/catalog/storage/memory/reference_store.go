package memory

import (
	"context"
	"fmt"

	"filmorate/internal/catalog/models"
	"filmorate/internal/catalog/storage"
)

// Reference stores are read-only; the transient backend seeds them with the
// same rows the database migration inserts.

type GenreStore struct {
	genres []models.Genre
	byID   map[int]models.Genre
}

func NewGenreStore() *GenreStore {
	genres := []models.Genre{
		{ID: 1, Name: "Comedy"},
		{ID: 2, Name: "Drama"},
		{ID: 3, Name: "Animation"},
		{ID: 4, Name: "Thriller"},
		{ID: 5, Name: "Documentary"},
		{ID: 6, Name: "Action"},
	}
	byID := make(map[int]models.Genre, len(genres))
	for _, g := range genres {
		byID[g.ID] = g
	}
	return &GenreStore{genres: genres, byID: byID}
}

func (s *GenreStore) GetByID(ctx context.Context, id int) (*models.Genre, error) {
	g, ok := s.byID[id]
	if !ok {
		return nil, fmt.Errorf("genre with id %d: %w", id, storage.ErrNotFound)
	}
	return &g, nil
}

func (s *GenreStore) FindAll(ctx context.Context) ([]models.Genre, error) {
	return append([]models.Genre(nil), s.genres...), nil
}

type MPAStore struct {
	ratings []models.MPA
	byID    map[int]models.MPA
}

func NewMPAStore() *MPAStore {
	ratings := []models.MPA{
		{ID: 1, Name: "G", Description: "No age restrictions"},
		{ID: 2, Name: "PG", Description: "Parental guidance suggested"},
		{ID: 3, Name: "PG-13", Description: "Not recommended under 13"},
		{ID: 4, Name: "R", Description: "Under 17 requires an adult"},
		{ID: 5, Name: "NC-17", Description: "No one 17 and under admitted"},
	}
	byID := make(map[int]models.MPA, len(ratings))
	for _, m := range ratings {
		byID[m.ID] = m
	}
	return &MPAStore{ratings: ratings, byID: byID}
}

func (s *MPAStore) GetByID(ctx context.Context, id int) (*models.MPA, error) {
	m, ok := s.byID[id]
	if !ok {
		return nil, fmt.Errorf("mpa rating with id %d: %w", id, storage.ErrNotFound)
	}
	return &m, nil
}

func (s *MPAStore) FindAll(ctx context.Context) ([]models.MPA, error) {
	return append([]models.MPA(nil), s.ratings...), nil
}
