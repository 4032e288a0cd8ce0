package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cjpearson85/be-nc-games/models"
)

func (h *Handler) GetReviews(c *gin.Context) {
	sortBy, order, limit, page, err := parseListParams(c, "created_at", "desc")
	if err != nil {
		respondError(c, err)
		return
	}

	q := models.ReviewQuery{
		SortBy:   sortBy,
		Order:    order,
		Category: c.Query("category"),
		Title:    c.Query("title"),
		Owner:    c.Query("owner"),
		Limit:    limit,
		Page:     page,
	}
	// created_at is a relative window in milliseconds
	if window := c.Query("created_at"); window != "" {
		ms, convErr := strconv.Atoi(window)
		if convErr != nil || ms < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Bad request"})
			return
		}
		q.CreatedSince = time.Duration(ms) * time.Millisecond
	}

	reviews, total, err := h.reviews.List(q)
	if err != nil {
		respondError(c, err)
		return
	}
	if reviews == nil {
		reviews = []models.Review{}
	}
	c.JSON(http.StatusOK, gin.H{"total_count": total, "reviews": reviews})
}

func (h *Handler) PostReview(c *gin.Context) {
	var req struct {
		Title        string `json:"title"`
		ReviewBody   string `json:"review_body"`
		Designer     string `json:"designer"`
		Category     string `json:"category"`
		ReviewImgURL string `json:"review_img_url"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request format"})
		return
	}

	review, err := h.reviews.Insert(models.ReviewInsert{
		Owner:        actingUser(c),
		Title:        req.Title,
		ReviewBody:   req.ReviewBody,
		Designer:     req.Designer,
		Category:     req.Category,
		ReviewImgURL: req.ReviewImgURL,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"review": review})
}

func (h *Handler) GetReviewByID(c *gin.Context) {
	id, err := pathID(c, "review_id")
	if err != nil {
		respondError(c, err)
		return
	}

	review, err := h.reviews.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"review": review})
}

func (h *Handler) PatchReviewByID(c *gin.Context) {
	id, err := pathID(c, "review_id")
	if err != nil {
		respondError(c, err)
		return
	}

	var upd models.ReviewUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid datatype"})
		return
	}

	review, err := h.reviews.Update(id, actingUser(c), upd)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"review": review})
}

func (h *Handler) DeleteReviewByID(c *gin.Context) {
	id, err := pathID(c, "review_id")
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.reviews.Delete(id, actingUser(c)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
