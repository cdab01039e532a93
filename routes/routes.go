package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/minhajulhaq/ppm-backend/controllers"
	"github.com/minhajulhaq/ppm-backend/middleware"
	"github.com/minhajulhaq/ppm-backend/models"
	"github.com/minhajulhaq/ppm-backend/services"
	"github.com/minhajulhaq/ppm-backend/utils"
	"github.com/minhajulhaq/ppm-backend/ws"
)

func SetupRouter(r *gin.Engine, db *gorm.DB) *gin.Engine {
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
	r.GET("/health", controllers.HealthCheck)

	// Service recording dibangun sekali; halaman player diberi tahu lewat
	// hub setiap recording aktif berganti
	storage := utils.SupabaseStorage{}
	recordingSvc := services.NewRecordingService(services.NewGormRecordingStore(db), storage)
	recordingSvc.OnActiveChanged = func(rec *models.Recording) {
		ws.BroadcastActiveRecordingChanged(rec.ID.String(), rec.Title)
	}

	api := r.Group("/api")
	api.Use(middleware.DBMiddleware(db), middleware.RecordingDeps(recordingSvc, storage))

	auth := api.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
	}

	// Endpoint publik: player, berita, profil pengurus, form pendaftaran
	{
		api.GET("/recordings", controllers.GetRecordings)
		api.GET("/recordings/:id", controllers.GetRecordingDetail)
		api.PUT("/recordings/:id", controllers.PlayRecording)

		api.GET("/berita", controllers.GetBeritaPublic)
		api.GET("/berita/:slug", controllers.GetBeritaBySlug)

		api.GET("/pengurus", controllers.GetPengurusPublic)

		api.POST("/pendaftaran", controllers.CreatePendaftaran)
	}

	admin := api.Group("/admin")
	{
		admin.Use(middleware.AuthMiddleware(), middleware.RequireRoles("admin", "guru"))

		// Manajemen recording mangkulan
		admin.POST("/recordings", controllers.UploadRecording)
		admin.PUT("/recordings/:id", controllers.UpdateRecording)
		admin.DELETE("/recordings/:id", controllers.DeleteRecording)

		// Manajemen santri
		admin.GET("/santri", controllers.GetSantri)
		admin.POST("/santri", controllers.CreateSantri)
		admin.PUT("/santri/:id", controllers.UpdateSantri)
		admin.DELETE("/santri/:id", controllers.DeleteSantri)

		// Review pendaftaran
		admin.GET("/pendaftaran", controllers.GetPendaftaran)
		admin.PUT("/pendaftaran/:id/status", controllers.ReviewPendaftaran)
		admin.DELETE("/pendaftaran/:id", controllers.DeletePendaftaran)

		// Manajemen berita
		admin.GET("/berita", controllers.GetBerita)
		admin.POST("/berita", controllers.CreateBerita)
		admin.PUT("/berita/:id", controllers.UpdateBerita)
		admin.DELETE("/berita/:id", controllers.DeleteBerita)

		// Manajemen pengurus
		admin.GET("/pengurus", controllers.GetPengurus)
		admin.POST("/pengurus", controllers.CreatePengurus)
		admin.PUT("/pengurus/:id", controllers.UpdatePengurus)
		admin.PATCH("/pengurus/:id/toggle-status", controllers.TogglePengurusStatus)
		admin.DELETE("/pengurus/:id", controllers.DeletePengurus)

		// Dashboard
		admin.GET("/stats/overview", controllers.GetDashboardOverview)
		admin.GET("/stats/pendaftaran-monthly", controllers.GetPendaftaranMonthly)
	}

	r.GET("/ws/player", ws.HandlePlayerWebSocket)

	return r
}
