package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"github.com/cjpearson85/be-nc-games/config"
	"github.com/cjpearson85/be-nc-games/models"
)

// Handler carries the per-resource models; the database handle is injected
// once here rather than shared through package state.
type Handler struct {
	cfg        *config.Config
	categories *models.CategoryModel
	users      *models.UserModel
	reviews    *models.ReviewModel
	comments   *models.CommentModel
}

func New(db *sqlx.DB, cfg *config.Config) *Handler {
	return &Handler{
		cfg:        cfg,
		categories: &models.CategoryModel{DB: db},
		users:      &models.UserModel{DB: db},
		reviews:    &models.ReviewModel{DB: db},
		comments:   &models.CommentModel{DB: db},
	}
}

// parseListParams reads the shared pagination/sorting query params, applying
// the per-endpoint defaults.
func parseListParams(c *gin.Context, defaultSort, defaultOrder string) (sortBy, order string, limit, page int, err error) {
	sortBy = c.DefaultQuery("sort_by", defaultSort)
	order = c.DefaultQuery("order", defaultOrder)

	limit, convErr := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if convErr != nil {
		return "", "", 0, 0, &models.APIError{Status: http.StatusBadRequest, Message: "Bad request"}
	}
	page, convErr = strconv.Atoi(c.DefaultQuery("p", "1"))
	if convErr != nil {
		return "", "", 0, 0, &models.APIError{Status: http.StatusBadRequest, Message: "Bad request"}
	}
	return sortBy, order, limit, page, nil
}

// pathID parses a numeric path parameter, rejecting non-integer ids.
func pathID(c *gin.Context, name string) (int, error) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil {
		return 0, &models.APIError{Status: http.StatusBadRequest, Message: "Bad request"}
	}
	return id, nil
}
