package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cjpearson85/be-nc-games/models"
)

func (h *Handler) GetUsers(c *gin.Context) {
	sortBy, order, limit, page, err := parseListParams(c, "username", "asc")
	if err != nil {
		respondError(c, err)
		return
	}

	users, total, err := h.users.List(models.UserQuery{
		SortBy: sortBy,
		Order:  order,
		Limit:  limit,
		Page:   page,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	if users == nil {
		users = []models.UserWithLikes{}
	}
	c.JSON(http.StatusOK, gin.H{"total_count": total, "users": users})
}

func (h *Handler) GetUserByUsername(c *gin.Context) {
	user, err := h.users.Get(c.Param("username"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (h *Handler) PatchUserByUsername(c *gin.Context) {
	username := c.Param("username")
	if username != actingUser(c) {
		c.JSON(http.StatusForbidden, gin.H{"message": "Invalid user"})
		return
	}

	var upd models.UserUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request format"})
		return
	}

	user, err := h.users.Update(username, upd)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}
