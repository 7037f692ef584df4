package db

import (
	"context"
	"fmt"

	"filmorate/internal/catalog/models"
	"filmorate/internal/catalog/storage"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FriendStore struct {
	db    *gorm.DB
	users storage.UserStore
}

func NewFriendStore(db *gorm.DB, users storage.UserStore) *FriendStore {
	return &FriendStore{db: db, users: users}
}

func (s *FriendStore) AddFriend(ctx context.Context, userID, friendID int) error {
	if err := s.users.CheckExists(ctx, userID); err != nil {
		return err
	}
	if err := s.users.CheckExists(ctx, friendID); err != nil {
		return err
	}

	// Two directed rows per pair, written atomically, so reads never need a
	// self-join to recover symmetry. Re-adding an existing edge is a no-op.
	edges := []models.FriendEdge{
		{UserID: userID, FriendID: friendID},
		{UserID: friendID, FriendID: userID},
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id_user"}, {Name: "id_friend"}},
			DoNothing: true,
		}).Create(&edges).Error
	})
	if err != nil {
		return fmt.Errorf("add friend: %w", err)
	}

	return nil
}

func (s *FriendStore) RemoveFriend(ctx context.Context, userID, friendID int) error {
	if err := s.users.CheckExists(ctx, userID); err != nil {
		return err
	}
	if err := s.users.CheckExists(ctx, friendID); err != nil {
		return err
	}

	err := s.db.WithContext(ctx).
		Where("(id_user = ? AND id_friend = ?) OR (id_user = ? AND id_friend = ?)",
			userID, friendID, friendID, userID).
		Delete(&models.FriendEdge{}).Error
	if err != nil {
		return fmt.Errorf("remove friend: %w", err)
	}

	return nil
}

func (s *FriendStore) GetFriends(ctx context.Context, userID int) ([]models.User, error) {
	if err := s.users.CheckExists(ctx, userID); err != nil {
		return nil, err
	}

	var friends []models.User
	err := s.db.WithContext(ctx).
		Model(&models.User{}).
		Joins("JOIN friends f ON f.id_friend = users.id").
		Where("f.id_user = ?", userID).
		Order("f.id").
		Find(&friends).Error
	if err != nil {
		return nil, fmt.Errorf("get friends: %w", err)
	}

	return friends, nil
}

func (s *FriendStore) GetCommonFriends(ctx context.Context, userID, otherID int) ([]models.User, error) {
	if err := s.users.CheckExists(ctx, userID); err != nil {
		return nil, err
	}
	if err := s.users.CheckExists(ctx, otherID); err != nil {
		return nil, err
	}

	var friends []models.User
	err := s.db.WithContext(ctx).
		Model(&models.User{}).
		Joins("JOIN friends f ON f.id_friend = users.id").
		Joins("JOIN friends o ON o.id_friend = users.id").
		Where("f.id_user = ? AND o.id_user = ?", userID, otherID).
		Order("f.id").
		Find(&friends).Error
	if err != nil {
		return nil, fmt.Errorf("get common friends: %w", err)
	}

	return friends, nil
}
