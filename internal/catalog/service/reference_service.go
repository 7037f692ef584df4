package service

import (
	"context"

	"filmorate/internal/catalog/models"
	"filmorate/internal/catalog/storage"
)

// Reference services are thin read-only wrappers over the lookup stores.

type GenreService interface {
	FindAll(ctx context.Context) ([]models.Genre, error)
	GetByID(ctx context.Context, id int) (*models.Genre, error)
}

type genreService struct {
	genres storage.GenreStore
}

func NewGenreService(genres storage.GenreStore) GenreService {
	return &genreService{genres: genres}
}

func (s *genreService) FindAll(ctx context.Context) ([]models.Genre, error) {
	return s.genres.FindAll(ctx)
}

func (s *genreService) GetByID(ctx context.Context, id int) (*models.Genre, error) {
	return s.genres.GetByID(ctx, id)
}

type MPAService interface {
	FindAll(ctx context.Context) ([]models.MPA, error)
	GetByID(ctx context.Context, id int) (*models.MPA, error)
}

type mpaService struct {
	ratings storage.MPAStore
}

func NewMPAService(ratings storage.MPAStore) MPAService {
	return &mpaService{ratings: ratings}
}

func (s *mpaService) FindAll(ctx context.Context) ([]models.MPA, error) {
	return s.ratings.FindAll(ctx)
}

func (s *mpaService) GetByID(ctx context.Context, id int) (*models.MPA, error) {
	return s.ratings.GetByID(ctx, id)
}
