package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"filmorate/internal/catalog/models"
	"filmorate/internal/catalog/service"
	"filmorate/internal/catalog/storage/memory"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupRouter wires the full route table over the transient backend.
func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	genres := memory.NewGenreStore()
	mpa := memory.NewMPAStore()
	films := memory.NewFilmStore(genres, mpa)
	users := memory.NewUserStore()
	friends := memory.NewFriendStore(users)
	likes := memory.NewLikeStore(films, users)

	api := r.Group("")
	NewFilmHandler(service.NewFilmService(films, likes, nil, logger)).RegisterRoutes(api)
	NewUserHandler(service.NewUserService(users, friends, logger)).RegisterRoutes(api)
	NewReferenceHandler(service.NewGenreService(genres), service.NewMPAService(mpa)).RegisterRoutes(api)

	return r
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func filmPayload(name string) map[string]any {
	return map[string]any{
		"name":        name,
		"description": "description",
		"releaseDate": "2010-12-10",
		"duration":    100,
		"mpa":         map[string]any{"id": 1},
		"genres":      []map[string]any{{"id": 1}},
	}
}

func userPayload(login string) map[string]any {
	return map[string]any{
		"email":    login + "@example.com",
		"login":    login,
		"name":     "name",
		"birthday": "2000-12-20",
	}
}

func TestFilmRoutes_CreateAndGet(t *testing.T) {
	router := setupRouter()

	w := doJSON(t, router, http.MethodPost, "/films", filmPayload("film"))
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Film
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, 1, created.ID)
	assert.Equal(t, "G", created.MPA.Name)

	w = doJSON(t, router, http.MethodGet, "/films/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/films", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestFilmRoutes_GetUnknownIs404(t *testing.T) {
	router := setupRouter()

	w := doJSON(t, router, http.MethodGet, "/films/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestFilmRoutes_ValidationFailureIs400(t *testing.T) {
	router := setupRouter()

	payload := filmPayload("")
	w := doJSON(t, router, http.MethodPost, "/films", payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFilmRoutes_UpdateUnknownIs404(t *testing.T) {
	router := setupRouter()

	payload := filmPayload("film")
	payload["id"] = 999
	w := doJSON(t, router, http.MethodPut, "/films", payload)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestFilmRoutes_LikesAndPopular(t *testing.T) {
	router := setupRouter()

	for i := 0; i < 3; i++ {
		w := doJSON(t, router, http.MethodPost, "/films", filmPayload("film"))
		require.Equal(t, http.StatusCreated, w.Code)
	}
	for _, login := range []string{"u1", "u2"} {
		w := doJSON(t, router, http.MethodPost, "/users", userPayload(login))
		require.Equal(t, http.StatusCreated, w.Code)
	}

	require.Equal(t, http.StatusOK, doJSON(t, router, http.MethodPut, "/films/2/like/1", nil).Code)
	require.Equal(t, http.StatusOK, doJSON(t, router, http.MethodPut, "/films/2/like/2", nil).Code)
	require.Equal(t, http.StatusOK, doJSON(t, router, http.MethodPut, "/films/1/like/1", nil).Code)

	w := doJSON(t, router, http.MethodGet, "/films/popular?count=3", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var popular []models.Film
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &popular))
	require.Len(t, popular, 3)
	assert.Equal(t, 2, popular[0].ID)
	assert.Equal(t, 1, popular[1].ID)
	assert.Equal(t, 3, popular[2].ID)

	// unlike and check the 404 mapping on a dangling user
	assert.Equal(t, http.StatusOK, doJSON(t, router, http.MethodDelete, "/films/2/like/1", nil).Code)
	assert.Equal(t, http.StatusNotFound, doJSON(t, router, http.MethodPut, "/films/2/like/999", nil).Code)
}

func TestFilmRoutes_PopularDefaultsToTen(t *testing.T) {
	router := setupRouter()

	for i := 0; i < 12; i++ {
		w := doJSON(t, router, http.MethodPost, "/films", filmPayload("film"))
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doJSON(t, router, http.MethodGet, "/films/popular", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var popular []models.Film
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &popular))
	assert.Len(t, popular, 10)
}

func TestFilmRoutes_PopularRejectsBadCount(t *testing.T) {
	router := setupRouter()

	assert.Equal(t, http.StatusBadRequest, doJSON(t, router, http.MethodGet, "/films/popular?count=zero", nil).Code)
	assert.Equal(t, http.StatusBadRequest, doJSON(t, router, http.MethodGet, "/films/popular?count=0", nil).Code)
}

func TestUserRoutes_CreateAndGet(t *testing.T) {
	router := setupRouter()

	w := doJSON(t, router, http.MethodPost, "/users", userPayload("login"))
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, 1, created.ID)

	assert.Equal(t, http.StatusOK, doJSON(t, router, http.MethodGet, "/users/1", nil).Code)
	assert.Equal(t, http.StatusNotFound, doJSON(t, router, http.MethodGet, "/users/999", nil).Code)
}

func TestUserRoutes_FriendFlow(t *testing.T) {
	router := setupRouter()

	for _, login := range []string{"u1", "u2", "u3"} {
		w := doJSON(t, router, http.MethodPost, "/users", userPayload(login))
		require.Equal(t, http.StatusCreated, w.Code)
	}

	require.Equal(t, http.StatusOK, doJSON(t, router, http.MethodPut, "/users/1/friends/2", nil).Code)
	require.Equal(t, http.StatusOK, doJSON(t, router, http.MethodPut, "/users/3/friends/2", nil).Code)

	w := doJSON(t, router, http.MethodGet, "/users/1/friends", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var friends []models.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &friends))
	require.Len(t, friends, 1)
	assert.Equal(t, 2, friends[0].ID)

	w = doJSON(t, router, http.MethodGet, "/users/1/friends/common/3", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var common []models.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &common))
	require.Len(t, common, 1)
	assert.Equal(t, 2, common[0].ID)

	require.Equal(t, http.StatusOK, doJSON(t, router, http.MethodDelete, "/users/1/friends/2", nil).Code)

	w = doJSON(t, router, http.MethodGet, "/users/2/friends", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &friends))
	for _, f := range friends {
		assert.NotEqual(t, 1, f.ID)
	}
}

func TestUserRoutes_FriendWithUnknownUserIs404(t *testing.T) {
	router := setupRouter()

	w := doJSON(t, router, http.MethodPost, "/users", userPayload("login"))
	require.Equal(t, http.StatusCreated, w.Code)

	assert.Equal(t, http.StatusNotFound, doJSON(t, router, http.MethodPut, "/users/1/friends/999", nil).Code)
}

func TestReferenceRoutes(t *testing.T) {
	router := setupRouter()

	w := doJSON(t, router, http.MethodGet, "/genres", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var genres []models.Genre
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &genres))
	assert.Len(t, genres, 6)

	w = doJSON(t, router, http.MethodGet, "/genres/1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/mpa", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var ratings []models.MPA
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ratings))
	assert.Len(t, ratings, 5)

	assert.Equal(t, http.StatusNotFound, doJSON(t, router, http.MethodGet, "/mpa/999", nil).Code)
	assert.Equal(t, http.StatusNotFound, doJSON(t, router, http.MethodGet, "/genres/999", nil).Code)
}

func TestBadPathParamsAre400(t *testing.T) {
	router := setupRouter()

	assert.Equal(t, http.StatusBadRequest, doJSON(t, router, http.MethodGet, "/films/abc", nil).Code)
	assert.Equal(t, http.StatusBadRequest, doJSON(t, router, http.MethodGet, "/users/abc", nil).Code)
	assert.Equal(t, http.StatusBadRequest, doJSON(t, router, http.MethodPut, "/films/1/like/abc", nil).Code)
}
