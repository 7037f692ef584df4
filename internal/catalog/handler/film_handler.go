package handler

import (
	"net/http"
	"strconv"

	"filmorate/internal/catalog/models"
	"filmorate/internal/catalog/service"

	"github.com/gin-gonic/gin"
)

const defaultPopularCount = 10

type FilmHandler struct {
	filmService service.FilmService
}

func NewFilmHandler(filmService service.FilmService) *FilmHandler {
	return &FilmHandler{filmService: filmService}
}

// RegisterRoutes registers film-related routes
func (h *FilmHandler) RegisterRoutes(router *gin.RouterGroup) {
	films := router.Group("/films")
	{
		films.GET("", h.List)
		films.POST("", h.Create)
		films.PUT("", h.Update)
		films.GET("/popular", h.GetPopular)
		films.GET("/:id", h.GetByID)
		films.PUT("/:id/like/:userId", h.AddLike)
		films.DELETE("/:id/like/:userId", h.RemoveLike)
	}
}

// List returns every film
// GET /films
func (h *FilmHandler) List(c *gin.Context) {
	films, err := h.filmService.FindAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, films)
}

// Create stores a new film; the id is assigned by the store
// POST /films
func (h *FilmHandler) Create(c *gin.Context) {
	var film models.Film
	if err := c.ShouldBindJSON(&film); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid film payload"})
		return
	}

	created, err := h.filmService.Create(c.Request.Context(), &film)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// Update replaces all fields of an existing film
// PUT /films
func (h *FilmHandler) Update(c *gin.Context) {
	var film models.Film
	if err := c.ShouldBindJSON(&film); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid film payload"})
		return
	}

	updated, err := h.filmService.Update(c.Request.Context(), &film)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// GetByID returns a single film
// GET /films/:id
func (h *FilmHandler) GetByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid film ID"})
		return
	}

	film, err := h.filmService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, film)
}

// AddLike records that a user liked a film
// PUT /films/:id/like/:userId
func (h *FilmHandler) AddLike(c *gin.Context) {
	filmID, userID, ok := likeParams(c)
	if !ok {
		return
	}

	if err := h.filmService.AddLike(c.Request.Context(), filmID, userID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// RemoveLike removes a user's like from a film
// DELETE /films/:id/like/:userId
func (h *FilmHandler) RemoveLike(c *gin.Context) {
	filmID, userID, ok := likeParams(c)
	if !ok {
		return
	}

	if err := h.filmService.RemoveLike(c.Request.Context(), filmID, userID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// GetPopular returns the ranked film list
// GET /films/popular?count=N
func (h *FilmHandler) GetPopular(c *gin.Context) {
	count := defaultPopularCount
	if raw := c.Query("count"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid count parameter"})
			return
		}
		count = parsed
	}

	films, err := h.filmService.GetPopular(c.Request.Context(), count)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, films)
}

func likeParams(c *gin.Context) (filmID, userID int, ok bool) {
	filmID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid film ID"})
		return 0, 0, false
	}
	userID, err = strconv.Atoi(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return 0, 0, false
	}
	return filmID, userID, true
}
