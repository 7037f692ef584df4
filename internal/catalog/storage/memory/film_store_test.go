package memory

import (
	"context"
	"testing"
	"time"

	"filmorate/internal/catalog/models"
	"filmorate/internal/catalog/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFilmStore() *FilmStore {
	return NewFilmStore(NewGenreStore(), NewMPAStore())
}

func testFilm(name string) *models.Film {
	return &models.Film{
		Name:        name,
		Description: "a film about " + name,
		ReleaseDate: models.NewDate(2010, time.December, 10),
		Duration:    100,
		MPA:         models.MPA{ID: 1},
		Genres:      []models.Genre{{ID: 1}},
	}
}

func TestFilmStore_CreateAssignsSequentialIDs(t *testing.T) {
	store := newTestFilmStore()
	ctx := context.Background()

	first := testFilm("first")
	second := testFilm("second")

	require.NoError(t, store.Create(ctx, first))
	require.NoError(t, store.Create(ctx, second))

	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 2, second.ID)
}

func TestFilmStore_CreateIgnoresCallerSuppliedID(t *testing.T) {
	store := newTestFilmStore()
	ctx := context.Background()

	film := testFilm("film")
	film.ID = 100
	require.NoError(t, store.Create(ctx, film))

	assert.Equal(t, 1, film.ID)
}

func TestFilmStore_CreateResolvesReferences(t *testing.T) {
	store := newTestFilmStore()
	ctx := context.Background()

	film := testFilm("film")
	film.Genres = []models.Genre{{ID: 2}, {ID: 1}, {ID: 2}}
	require.NoError(t, store.Create(ctx, film))

	assert.Equal(t, "G", film.MPA.Name)
	// duplicates collapse, first-seen order kept
	require.Len(t, film.Genres, 2)
	assert.Equal(t, "Drama", film.Genres[0].Name)
	assert.Equal(t, "Comedy", film.Genres[1].Name)
}

func TestFilmStore_CreateWithUnknownMPA(t *testing.T) {
	store := newTestFilmStore()

	film := testFilm("film")
	film.MPA = models.MPA{ID: 999}

	err := store.Create(context.Background(), film)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestFilmStore_CreateWithUnknownGenre(t *testing.T) {
	store := newTestFilmStore()

	film := testFilm("film")
	film.Genres = []models.Genre{{ID: 999}}

	err := store.Create(context.Background(), film)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestFilmStore_GetByIDReturnsCreated(t *testing.T) {
	store := newTestFilmStore()
	ctx := context.Background()

	film := testFilm("film")
	require.NoError(t, store.Create(ctx, film))

	got, err := store.GetByID(ctx, film.ID)
	require.NoError(t, err)
	assert.Equal(t, film, got)
}

func TestFilmStore_GetByIDUnknown(t *testing.T) {
	store := newTestFilmStore()

	_, err := store.GetByID(context.Background(), 999)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestFilmStore_UpdateReplacesFields(t *testing.T) {
	store := newTestFilmStore()
	ctx := context.Background()

	film := testFilm("film")
	require.NoError(t, store.Create(ctx, film))

	film.Name = "renamed"
	film.Duration = 90
	require.NoError(t, store.Update(ctx, film))

	got, err := store.GetByID(ctx, film.ID)
	require.NoError(t, err)
	assert.Equal(t, "renamed", got.Name)
	assert.Equal(t, 90, got.Duration)
}

func TestFilmStore_UpdateUnknownIDNeverCreates(t *testing.T) {
	store := newTestFilmStore()
	ctx := context.Background()

	film := testFilm("film")
	film.ID = 42

	err := store.Update(ctx, film)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	all, err := store.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestFilmStore_FindAllInsertionOrder(t *testing.T) {
	store := newTestFilmStore()
	ctx := context.Background()

	for _, name := range []string{"a", "b", "c"} {
		require.NoError(t, store.Create(ctx, testFilm(name)))
	}

	all, err := store.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "a", all[0].Name)
	assert.Equal(t, "b", all[1].Name)
	assert.Equal(t, "c", all[2].Name)
}

func TestFilmStore_Exists(t *testing.T) {
	store := newTestFilmStore()
	ctx := context.Background()

	film := testFilm("film")
	require.NoError(t, store.Create(ctx, film))

	ok, err := store.Exists(ctx, film.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.Exists(ctx, 999)
	require.NoError(t, err)
	assert.False(t, ok)

	assert.NoError(t, store.CheckExists(ctx, film.ID))
	assert.ErrorIs(t, store.CheckExists(ctx, 999), storage.ErrNotFound)
}
