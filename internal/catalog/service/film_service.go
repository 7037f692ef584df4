package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"filmorate/internal/catalog/models"
	"filmorate/internal/catalog/storage"
)

// firstFilmBirthday is the earliest admissible release date (the Lumière
// screening of 1895-12-28).
var firstFilmBirthday = time.Date(1895, time.December, 28, 0, 0, 0, 0, time.UTC)

const maxDescriptionLen = 200

type FilmService interface {
	FindAll(ctx context.Context) ([]models.Film, error)
	Create(ctx context.Context, film *models.Film) (*models.Film, error)
	Update(ctx context.Context, film *models.Film) (*models.Film, error)
	GetByID(ctx context.Context, id int) (*models.Film, error)
	AddLike(ctx context.Context, filmID, userID int) error
	RemoveLike(ctx context.Context, filmID, userID int) error
	GetPopular(ctx context.Context, count int) ([]models.Film, error)
}

type filmService struct {
	films  storage.FilmStore
	likes  storage.LikeStore
	cache  *PopularCache
	logger *slog.Logger
}

func NewFilmService(films storage.FilmStore, likes storage.LikeStore, cache *PopularCache, logger *slog.Logger) FilmService {
	return &filmService{
		films:  films,
		likes:  likes,
		cache:  cache,
		logger: logger,
	}
}

func validFilm(film *models.Film) error {
	if film.Name == "" {
		return fmt.Errorf("film name must not be blank: %w", ErrValidation)
	}
	if len(film.Description) > maxDescriptionLen {
		return fmt.Errorf("film description exceeds %d characters: %w", maxDescriptionLen, ErrValidation)
	}
	if film.ReleaseDate.Before(firstFilmBirthday) {
		return fmt.Errorf("film release date predates the first film: %w", ErrValidation)
	}
	if film.Duration <= 0 {
		return fmt.Errorf("film duration must be positive: %w", ErrValidation)
	}
	return nil
}

func (s *filmService) FindAll(ctx context.Context) ([]models.Film, error) {
	return s.films.FindAll(ctx)
}

func (s *filmService) Create(ctx context.Context, film *models.Film) (*models.Film, error) {
	if err := validFilm(film); err != nil {
		return nil, err
	}
	if err := s.films.Create(ctx, film); err != nil {
		return nil, err
	}
	s.logger.Debug("film created", "id", film.ID, "name", film.Name)
	s.cache.Invalidate(ctx)
	return film, nil
}

func (s *filmService) Update(ctx context.Context, film *models.Film) (*models.Film, error) {
	if err := validFilm(film); err != nil {
		return nil, err
	}
	if err := s.films.Update(ctx, film); err != nil {
		return nil, err
	}
	s.logger.Debug("film updated", "id", film.ID)
	s.cache.Invalidate(ctx)
	return film, nil
}

func (s *filmService) GetByID(ctx context.Context, id int) (*models.Film, error) {
	return s.films.GetByID(ctx, id)
}

func (s *filmService) AddLike(ctx context.Context, filmID, userID int) error {
	if err := s.likes.AddLike(ctx, filmID, userID); err != nil {
		return err
	}
	s.logger.Info("like added", "film_id", filmID, "user_id", userID)
	s.cache.Invalidate(ctx)
	return nil
}

func (s *filmService) RemoveLike(ctx context.Context, filmID, userID int) error {
	if err := s.likes.RemoveLike(ctx, filmID, userID); err != nil {
		return err
	}
	s.logger.Info("like removed", "film_id", filmID, "user_id", userID)
	s.cache.Invalidate(ctx)
	return nil
}

func (s *filmService) GetPopular(ctx context.Context, count int) ([]models.Film, error) {
	if films, ok := s.cache.Get(ctx, count); ok {
		return films, nil
	}

	films, err := s.likes.GetPopular(ctx, count)
	if err != nil {
		return nil, err
	}

	s.cache.Set(ctx, count, films)
	return films, nil
}
