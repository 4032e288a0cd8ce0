package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

var endpoints = gin.H{
	"GET /api":                              "this list of available endpoints",
	"GET /api/categories":                   "all categories, ordered by slug",
	"POST /api/categories":                  "add a category (auth required)",
	"GET /api/users":                        "all users with total_likes; sort_by, order, limit, p",
	"GET /api/users/:username":              "a single user with total_likes",
	"PATCH /api/users/:username":            "update your own name or avatar (auth required)",
	"POST /api/register":                    "create a user, returns the user and a token",
	"POST /api/login":                       "returns a token for valid credentials",
	"GET /api/reviews":                      "all reviews; sort_by, order, category, title, owner, created_at, limit, p",
	"POST /api/reviews":                     "add a review owned by the acting user (auth required)",
	"GET /api/reviews/:review_id":           "a single review with comment_count",
	"PATCH /api/reviews/:review_id":         "vote on or edit a review per the ownership rules (auth required)",
	"DELETE /api/reviews/:review_id":        "delete your own review and its comments (auth required)",
	"GET /api/reviews/:review_id/comments":  "comments for a review; sort_by, order, limit, p",
	"POST /api/reviews/:review_id/comments": "add a comment authored by the acting user (auth required)",
	"PATCH /api/comments/:comment_id":       "vote on or edit a comment per the ownership rules (auth required)",
	"DELETE /api/comments/:comment_id":      "delete your own comment (auth required)",
}

func (h *Handler) GetEndpoints(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"endpoints": endpoints})
}
