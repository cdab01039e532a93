package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/minhajulhaq/ppm-backend/models"
)

type PendaftaranInput struct {
	Nama     string `json:"nama" binding:"required"`
	Kampus   string `json:"kampus" binding:"required"`
	Jurusan  string `json:"jurusan"`
	Phone    string `json:"phone" binding:"required"`
	Email    string `json:"email"`
	Alamat   string `json:"alamat"`
	Motivasi string `json:"motivasi"`
}

// POST /api/pendaftaran
// Formulir pendaftaran dari website publik; masuk dengan status pending.
func CreatePendaftaran(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	var input PendaftaranInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pendaftaran := models.Pendaftaran{
		Nama:     input.Nama,
		Kampus:   input.Kampus,
		Jurusan:  input.Jurusan,
		Phone:    input.Phone,
		Email:    input.Email,
		Alamat:   input.Alamat,
		Motivasi: input.Motivasi,
		Status:   models.StatusPendaftaranPending,
	}

	if err := db.Create(&pendaftaran).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal mengirim pendaftaran"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Pendaftaran berhasil dikirim. Kami akan menghubungi Anda.",
		"pendaftaran": pendaftaran,
	})
}

// GET /api/admin/pendaftaran?status=
func GetPendaftaran(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	query := db.Model(&models.Pendaftaran{})
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var pendaftaran []models.Pendaftaran
	if err := query.Order("created_at DESC").Find(&pendaftaran).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal mengambil data pendaftaran"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": pendaftaran})
}

type ReviewPendaftaranInput struct {
	Status string `json:"status" binding:"required,oneof=approved rejected"`
}

// PUT /api/admin/pendaftaran/:id/status
// Approve/reject pendaftaran; pencatat review diambil dari token.
func ReviewPendaftaran(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	var pendaftaran models.Pendaftaran
	if err := db.First(&pendaftaran, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Pendaftaran tidak ditemukan"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal mengambil data pendaftaran"})
		return
	}

	var input ReviewPendaftaranInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Status harus approved atau rejected"})
		return
	}

	now := time.Now()
	pendaftaran.Status = input.Status
	pendaftaran.ReviewedAt = &now
	if reviewerID, err := uuid.Parse(c.GetString("user_id")); err == nil {
		pendaftaran.ReviewedBy = &reviewerID
	}

	if err := db.Save(&pendaftaran).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal memperbarui status pendaftaran"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Status pendaftaran diperbarui",
		"pendaftaran": pendaftaran,
	})
}

// DELETE /api/admin/pendaftaran/:id
func DeletePendaftaran(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	result := db.Delete(&models.Pendaftaran{}, "id = ?", c.Param("id"))
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal menghapus pendaftaran"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Pendaftaran tidak ditemukan"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Pendaftaran berhasil dihapus"})
}
