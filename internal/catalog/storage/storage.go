// Package storage defines the contracts both storage backends (the transient
// in-memory one and the persistent Postgres one) must satisfy identically.
package storage

import (
	"context"
	"errors"

	"filmorate/internal/catalog/models"
)

var (
	// ErrNotFound means a referenced film/user/genre/mpa id does not exist.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists means a create collided with an existing record.
	ErrAlreadyExists = errors.New("already exists")
)

// FilmStore owns film identity and persistence.
type FilmStore interface {
	// Create assigns a fresh id (any caller-supplied id is ignored), persists
	// the film and returns it with MPA and genres resolved.
	Create(ctx context.Context, film *models.Film) error
	// Update replaces all fields of an existing film; ErrNotFound otherwise.
	Update(ctx context.Context, film *models.Film) error
	GetByID(ctx context.Context, id int) (*models.Film, error)
	FindAll(ctx context.Context) ([]models.Film, error)
	// Exists is the cheap existence check used before relation mutations.
	Exists(ctx context.Context, id int) (bool, error)
	CheckExists(ctx context.Context, id int) error
}

// UserStore owns user identity and persistence.
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int) (*models.User, error)
	FindAll(ctx context.Context) ([]models.User, error)
	Exists(ctx context.Context, id int) (bool, error)
	CheckExists(ctx context.Context, id int) error
}

// FriendStore manages the symmetric friendship relation. Every mutation
// asserts both users exist before touching edges.
type FriendStore interface {
	AddFriend(ctx context.Context, userID, friendID int) error
	// RemoveFriend removes the edge in both directions; removing an absent
	// edge is a no-op.
	RemoveFriend(ctx context.Context, userID, friendID int) error
	// GetFriends returns resolved friends in edge insertion order.
	GetFriends(ctx context.Context, userID int) ([]models.User, error)
	// GetCommonFriends returns the intersection of both friend sets, ordered
	// by the first user's edge insertion order.
	GetCommonFriends(ctx context.Context, userID, otherID int) ([]models.User, error)
}

// LikeStore manages the film/user like relation and feeds the ranking query.
type LikeStore interface {
	// AddLike is idempotent: liking twice leaves one edge.
	AddLike(ctx context.Context, filmID, userID int) error
	// RemoveLike is a no-op when the edge does not exist.
	RemoveLike(ctx context.Context, filmID, userID int) error
	CountLikes(ctx context.Context, filmID int) (int64, error)
	// GetPopular lists films with at least one like ordered by like count
	// descending (ties by id ascending), padded with zero-like films by id
	// ascending up to count.
	GetPopular(ctx context.Context, count int) ([]models.Film, error)
}

// GenreStore is a read-only reference lookup.
type GenreStore interface {
	GetByID(ctx context.Context, id int) (*models.Genre, error)
	FindAll(ctx context.Context) ([]models.Genre, error)
}

// MPAStore is a read-only reference lookup.
type MPAStore interface {
	GetByID(ctx context.Context, id int) (*models.MPA, error)
	FindAll(ctx context.Context) ([]models.MPA, error)
}
