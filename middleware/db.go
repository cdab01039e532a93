package middleware

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/minhajulhaq/ppm-backend/services"
)

// DBMiddleware menaruh koneksi database di context request.
func DBMiddleware(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("db", db)
		c.Next()
	}
}

// RecordingDeps menaruh RecordingService dan blob storage di context untuk
// controller recording.
func RecordingDeps(svc *services.RecordingService, storage services.BlobStorage) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("recordingService", svc)
		c.Set("blobStorage", storage)
		c.Next()
	}
}
