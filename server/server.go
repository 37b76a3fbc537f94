// Package server holds the REST handlers of the Lens API. Handlers validate
// input, talk to the database and map failures onto the three-way error
// taxonomy: 400 for missing/invalid fields, 404 for absent entities and an
// opaque 500 for everything unexpected.
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	Logger "github.com/lenshq/lens-backend/utils/log"
	"gorm.io/gorm"
)

// Handler carries the shared DB handle for all route handlers.
type Handler struct {
	DB *gorm.DB
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db}
}

// internalError logs the real cause server side and returns the opaque
// message, nothing about the failure leaks to the caller.
func internalError(c *gin.Context, err error) {
	Logger.Log.Errorf("%s %s failed: %v", c.Request.Method, c.FullPath(), err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}

func notFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, gin.H{"error": msg})
}
