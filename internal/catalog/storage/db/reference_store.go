package db

import (
	"context"
	"errors"
	"fmt"

	"filmorate/internal/catalog/models"
	"filmorate/internal/catalog/storage"

	"gorm.io/gorm"
)

type GenreStore struct {
	db *gorm.DB
}

func NewGenreStore(db *gorm.DB) *GenreStore {
	return &GenreStore{db: db}
}

func (s *GenreStore) GetByID(ctx context.Context, id int) (*models.Genre, error) {
	var g models.Genre
	if err := s.db.WithContext(ctx).First(&g, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("genre with id %d: %w", id, storage.ErrNotFound)
		}
		return nil, fmt.Errorf("get genre: %w", err)
	}
	return &g, nil
}

func (s *GenreStore) FindAll(ctx context.Context) ([]models.Genre, error) {
	var list []models.Genre
	if err := s.db.WithContext(ctx).Order("id").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list genres: %w", err)
	}
	return list, nil
}

type MPAStore struct {
	db *gorm.DB
}

func NewMPAStore(db *gorm.DB) *MPAStore {
	return &MPAStore{db: db}
}

func (s *MPAStore) GetByID(ctx context.Context, id int) (*models.MPA, error) {
	var m models.MPA
	if err := s.db.WithContext(ctx).First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("mpa rating with id %d: %w", id, storage.ErrNotFound)
		}
		return nil, fmt.Errorf("get mpa rating: %w", err)
	}
	return &m, nil
}

func (s *MPAStore) FindAll(ctx context.Context) ([]models.MPA, error) {
	var list []models.MPA
	if err := s.db.WithContext(ctx).Order("id").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list mpa ratings: %w", err)
	}
	return list, nil
}
