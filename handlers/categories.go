package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cjpearson85/be-nc-games/models"
)

func (h *Handler) GetCategories(c *gin.Context) {
	categories, err := h.categories.List()
	if err != nil {
		respondError(c, err)
		return
	}
	if categories == nil {
		categories = []models.Category{}
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

func (h *Handler) PostCategory(c *gin.Context) {
	var req struct {
		Slug        string  `json:"slug"`
		Description *string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request format"})
		return
	}

	category, err := h.categories.Insert(req.Slug, req.Description)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"category": category})
}
