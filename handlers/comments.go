package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cjpearson85/be-nc-games/models"
)

func (h *Handler) GetCommentsByReviewID(c *gin.Context) {
	reviewID, err := pathID(c, "review_id")
	if err != nil {
		respondError(c, err)
		return
	}

	sortBy, order, limit, page, err := parseListParams(c, "created_at", "desc")
	if err != nil {
		respondError(c, err)
		return
	}

	comments, total, err := h.comments.ListByReview(reviewID, models.CommentQuery{
		SortBy: sortBy,
		Order:  order,
		Limit:  limit,
		Page:   page,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	if comments == nil {
		comments = []models.Comment{}
	}
	c.JSON(http.StatusOK, gin.H{"total_count": total, "comments": comments})
}

func (h *Handler) PostCommentByReviewID(c *gin.Context) {
	reviewID, err := pathID(c, "review_id")
	if err != nil {
		respondError(c, err)
		return
	}

	var req struct {
		Body string `json:"body"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request format"})
		return
	}

	comment, err := h.comments.Insert(reviewID, actingUser(c), req.Body)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"comment": comment})
}

func (h *Handler) PatchCommentByID(c *gin.Context) {
	id, err := pathID(c, "comment_id")
	if err != nil {
		respondError(c, err)
		return
	}

	var upd models.CommentUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid datatype"})
		return
	}

	comment, err := h.comments.Update(id, actingUser(c), upd)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"comment": comment})
}

func (h *Handler) DeleteCommentByID(c *gin.Context) {
	id, err := pathID(c, "comment_id")
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.comments.Delete(id, actingUser(c)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
