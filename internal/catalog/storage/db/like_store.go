package db

import (
	"context"
	"fmt"

	"filmorate/internal/catalog/models"
	"filmorate/internal/catalog/storage"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LikeStore struct {
	db    *gorm.DB
	films storage.FilmStore
	users storage.UserStore
}

func NewLikeStore(db *gorm.DB, films storage.FilmStore, users storage.UserStore) *LikeStore {
	return &LikeStore{db: db, films: films, users: users}
}

func (s *LikeStore) AddLike(ctx context.Context, filmID, userID int) error {
	if err := s.films.CheckExists(ctx, filmID); err != nil {
		return err
	}
	if err := s.users.CheckExists(ctx, userID); err != nil {
		return err
	}

	// Primary key on (id_film, id_user) plus DO NOTHING makes this idempotent.
	like := models.Like{FilmID: filmID, UserID: userID}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id_film"}, {Name: "id_user"}},
		DoNothing: true,
	}).Create(&like).Error
	if err != nil {
		return fmt.Errorf("add like: %w", err)
	}

	return nil
}

func (s *LikeStore) RemoveLike(ctx context.Context, filmID, userID int) error {
	if err := s.films.CheckExists(ctx, filmID); err != nil {
		return err
	}
	if err := s.users.CheckExists(ctx, userID); err != nil {
		return err
	}

	err := s.db.WithContext(ctx).
		Where("id_film = ? AND id_user = ?", filmID, userID).
		Delete(&models.Like{}).Error
	if err != nil {
		return fmt.Errorf("remove like: %w", err)
	}

	return nil
}

func (s *LikeStore) CountLikes(ctx context.Context, filmID int) (int64, error) {
	if err := s.films.CheckExists(ctx, filmID); err != nil {
		return 0, err
	}

	var n int64
	if err := s.db.WithContext(ctx).Model(&models.Like{}).Where("id_film = ?", filmID).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count likes: %w", err)
	}
	return n, nil
}

// GetPopular orders every film by like count descending with id ascending as
// the tie-break; zero-like films sort last by id, which is exactly the
// ranked-then-fallback list.
func (s *LikeStore) GetPopular(ctx context.Context, count int) ([]models.Film, error) {
	if count <= 0 {
		return []models.Film{}, nil
	}

	var ids []int
	err := s.db.WithContext(ctx).Raw(`
		SELECT f.id
		FROM films f
		LEFT JOIN likes_by_users l ON l.id_film = f.id
		GROUP BY f.id
		ORDER BY COUNT(l.id_user) DESC, f.id ASC
		LIMIT ?`, count).Scan(&ids).Error
	if err != nil {
		return nil, fmt.Errorf("rank films: %w", err)
	}

	films := make([]models.Film, 0, len(ids))
	for _, id := range ids {
		film, err := s.films.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		films = append(films, *film)
	}

	return films, nil
}
