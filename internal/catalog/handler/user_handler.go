package handler

import (
	"net/http"
	"strconv"

	"filmorate/internal/catalog/models"
	"filmorate/internal/catalog/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService service.UserService
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// RegisterRoutes registers user-related routes
func (h *UserHandler) RegisterRoutes(router *gin.RouterGroup) {
	users := router.Group("/users")
	{
		users.GET("", h.List)
		users.POST("", h.Create)
		users.PUT("", h.Update)
		users.GET("/:id", h.GetByID)
		users.PUT("/:id/friends/:friendId", h.AddFriend)
		users.DELETE("/:id/friends/:friendId", h.RemoveFriend)
		users.GET("/:id/friends", h.GetFriends)
		users.GET("/:id/friends/common/:otherId", h.GetCommonFriends)
	}
}

// List returns every user
// GET /users
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userService.FindAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// Create stores a new user; the id is assigned by the store
// POST /users
func (h *UserHandler) Create(c *gin.Context) {
	var user models.User
	if err := c.ShouldBindJSON(&user); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user payload"})
		return
	}

	created, err := h.userService.Create(c.Request.Context(), &user)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// Update replaces all fields of an existing user
// PUT /users
func (h *UserHandler) Update(c *gin.Context) {
	var user models.User
	if err := c.ShouldBindJSON(&user); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user payload"})
		return
	}

	updated, err := h.userService.Update(c.Request.Context(), &user)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// GetByID returns a single user
// GET /users/:id
func (h *UserHandler) GetByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	user, err := h.userService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// AddFriend creates a symmetric friendship edge
// PUT /users/:id/friends/:friendId
func (h *UserHandler) AddFriend(c *gin.Context) {
	userID, friendID, ok := friendParams(c, "friendId")
	if !ok {
		return
	}

	if err := h.userService.AddFriend(c.Request.Context(), userID, friendID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// RemoveFriend removes a friendship edge in both directions
// DELETE /users/:id/friends/:friendId
func (h *UserHandler) RemoveFriend(c *gin.Context) {
	userID, friendID, ok := friendParams(c, "friendId")
	if !ok {
		return
	}

	if err := h.userService.RemoveFriend(c.Request.Context(), userID, friendID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// GetFriends returns a user's friends in edge insertion order
// GET /users/:id/friends
func (h *UserHandler) GetFriends(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	friends, err := h.userService.GetFriends(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, friends)
}

// GetCommonFriends returns the intersection of two users' friend sets
// GET /users/:id/friends/common/:otherId
func (h *UserHandler) GetCommonFriends(c *gin.Context) {
	userID, otherID, ok := friendParams(c, "otherId")
	if !ok {
		return
	}

	friends, err := h.userService.GetCommonFriends(c.Request.Context(), userID, otherID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, friends)
}

func friendParams(c *gin.Context, otherParam string) (userID, otherID int, ok bool) {
	userID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return 0, 0, false
	}
	otherID, err = strconv.Atoi(c.Param(otherParam))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return 0, 0, false
	}
	return userID, otherID, true
}
