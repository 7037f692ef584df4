package handler

import (
	"net/http"
	"strconv"

	"filmorate/internal/catalog/service"

	"github.com/gin-gonic/gin"
)

// ReferenceHandler serves the read-only genre and MPA lookups.
type ReferenceHandler struct {
	genreService service.GenreService
	mpaService   service.MPAService
}

func NewReferenceHandler(genreService service.GenreService, mpaService service.MPAService) *ReferenceHandler {
	return &ReferenceHandler{
		genreService: genreService,
		mpaService:   mpaService,
	}
}

func (h *ReferenceHandler) RegisterRoutes(router *gin.RouterGroup) {
	genres := router.Group("/genres")
	{
		genres.GET("", h.ListGenres)
		genres.GET("/:id", h.GetGenre)
	}
	mpa := router.Group("/mpa")
	{
		mpa.GET("", h.ListMPA)
		mpa.GET("/:id", h.GetMPA)
	}
}

// GET /genres
func (h *ReferenceHandler) ListGenres(c *gin.Context) {
	genres, err := h.genreService.FindAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, genres)
}

// GET /genres/:id
func (h *ReferenceHandler) GetGenre(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid genre ID"})
		return
	}

	genre, err := h.genreService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, genre)
}

// GET /mpa
func (h *ReferenceHandler) ListMPA(c *gin.Context) {
	ratings, err := h.mpaService.FindAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ratings)
}

// GET /mpa/:id
func (h *ReferenceHandler) GetMPA(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid MPA ID"})
		return
	}

	rating, err := h.mpaService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rating)
}
