package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"

	"github.com/cjpearson85/be-nc-games/models"
)

// respondError translates model rejections and raw database errors into the
// API's error envelope. Database errors a model did not pre-validate are
// mapped by their Postgres error code.
func respondError(c *gin.Context, err error) {
	var apiErr *models.APIError
	if errors.As(err, &apiErr) {
		c.JSON(apiErr.Status, gin.H{"message": apiErr.Message})
		return
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "22P02": // invalid_text_representation
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid datatype"})
		case "23502": // not_null_violation
			c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required fields"})
		case "23503": // foreign_key_violation
			c.JSON(http.StatusNotFound, gin.H{"message": "Referenced resource does not exist"})
		case "23505": // unique_violation
			c.JSON(http.StatusBadRequest, gin.H{"message": "Duplicate key value violates unique constraint"})
		default:
			serverError(c, err)
		}
		return
	}

	serverError(c, err)
}

func serverError(c *gin.Context, err error) {
	log.Printf("unhandled error: %v", err)
	c.JSON(http.StatusInternalServerError, gin.H{"message": "Server side error"})
}
