// Package db provides the persistent storage backend on top of gorm/Postgres.
package db

import (
	"context"
	"errors"
	"fmt"

	"filmorate/internal/catalog/models"
	"filmorate/internal/catalog/storage"

	"gorm.io/gorm"
)

type FilmStore struct {
	db     *gorm.DB
	genres storage.GenreStore
	mpa    storage.MPAStore
}

func NewFilmStore(db *gorm.DB, genres storage.GenreStore, mpa storage.MPAStore) *FilmStore {
	return &FilmStore{db: db, genres: genres, mpa: mpa}
}

func (s *FilmStore) Create(ctx context.Context, film *models.Film) error {
	if err := s.resolveReferences(ctx, film); err != nil {
		return err
	}

	// The database assigns the id; whatever the caller sent is discarded.
	film.ID = 0

	// Film row and its genre links are one logical write.
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(film).Error; err != nil {
			return fmt.Errorf("create film: %w", err)
		}
		return replaceGenreLinks(tx, film.ID, film.Genres)
	})
	if err != nil {
		return err
	}

	return nil
}

func (s *FilmStore) Update(ctx context.Context, film *models.Film) error {
	if err := s.CheckExists(ctx, film.ID); err != nil {
		return err
	}
	if err := s.resolveReferences(ctx, film); err != nil {
		return err
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(film).Error; err != nil {
			return fmt.Errorf("update film: %w", err)
		}
		if err := tx.Where("id_film = ?", film.ID).Delete(&models.FilmGenre{}).Error; err != nil {
			return fmt.Errorf("clear film genres: %w", err)
		}
		return replaceGenreLinks(tx, film.ID, film.Genres)
	})
	if err != nil {
		return err
	}

	return nil
}

func (s *FilmStore) GetByID(ctx context.Context, id int) (*models.Film, error) {
	var film models.Film
	if err := s.db.WithContext(ctx).First(&film, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("film with id %d: %w", id, storage.ErrNotFound)
		}
		return nil, fmt.Errorf("get film: %w", err)
	}
	if err := s.loadReferences(ctx, &film); err != nil {
		return nil, err
	}
	return &film, nil
}

func (s *FilmStore) FindAll(ctx context.Context) ([]models.Film, error) {
	var films []models.Film
	if err := s.db.WithContext(ctx).Order("id").Find(&films).Error; err != nil {
		return nil, fmt.Errorf("list films: %w", err)
	}
	for i := range films {
		if err := s.loadReferences(ctx, &films[i]); err != nil {
			return nil, err
		}
	}
	return films, nil
}

func (s *FilmStore) Exists(ctx context.Context, id int) (bool, error) {
	var n int64
	if err := s.db.WithContext(ctx).Model(&models.Film{}).Where("id = ?", id).Count(&n).Error; err != nil {
		return false, fmt.Errorf("check film exists: %w", err)
	}
	return n > 0, nil
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

// resolveReferences validates the MPA and genre ids and replaces the stubs
// with full reference entities before any row is written.
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

// loadReferences fills MPA and genres on a film read back from the database.
func (s *FilmStore) loadReferences(ctx context.Context, film *models.Film) error {
	mpa, err := s.mpa.GetByID(ctx, film.MPAID)
	if err != nil {
		return err
	}
	film.MPA = *mpa

	var links []models.FilmGenre
	if err := s.db.WithContext(ctx).
		Where("id_film = ?", film.ID).
		Order("id_genre").
		Find(&links).Error; err != nil {
		return fmt.Errorf("load film genres: %w", err)
	}

	film.Genres = make([]models.Genre, 0, len(links))
	for _, link := range links {
		g, err := s.genres.GetByID(ctx, link.GenreID)
		if err != nil {
			return err
		}
		film.Genres = append(film.Genres, *g)
	}

	return nil
}

func replaceGenreLinks(tx *gorm.DB, filmID int, genres []models.Genre) error {
	if len(genres) == 0 {
		return nil
	}
	links := make([]models.FilmGenre, 0, len(genres))
	for _, g := range genres {
		links = append(links, models.FilmGenre{FilmID: filmID, GenreID: g.ID})
	}
	if err := tx.Create(&links).Error; err != nil {
		return fmt.Errorf("link film genres: %w", err)
	}
	return nil
}
