package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/minhajulhaq/ppm-backend/models"
)

type PengurusInput struct {
	Nama     string `json:"nama" binding:"required"`
	Jabatan  string `json:"jabatan" binding:"required"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	PhotoURL string `json:"photo_url"`
	Periode  string `json:"periode"`
	IsActive *bool  `json:"is_active"`
}

// GET /api/pengurus
// Halaman profil hanya menampilkan pengurus periode berjalan.
func GetPengurusPublic(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	var pengurus []models.Pengurus
	err := db.Where("is_active = ?", true).Order("created_at ASC").Find(&pengurus).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal mengambil data pengurus"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": pengurus})
}

// GET /api/admin/pengurus
func GetPengurus(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	var pengurus []models.Pengurus
	if err := db.Order("created_at DESC").Find(&pengurus).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal mengambil data pengurus"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": pengurus})
}

// POST /api/admin/pengurus
func CreatePengurus(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	var input PengurusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pengurus := models.Pengurus{
		Nama:     input.Nama,
		Jabatan:  input.Jabatan,
		Phone:    input.Phone,
		Email:    input.Email,
		PhotoURL: input.PhotoURL,
		Periode:  input.Periode,
		IsActive: true,
	}
	if input.IsActive != nil {
		pengurus.IsActive = *input.IsActive
	}

	if err := db.Create(&pengurus).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal menambahkan pengurus"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Pengurus berhasil ditambahkan",
		"pengurus": pengurus,
	})
}

// PUT /api/admin/pengurus/:id
func UpdatePengurus(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	var pengurus models.Pengurus
	if err := db.First(&pengurus, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Pengurus tidak ditemukan"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal mengambil data pengurus"})
		return
	}

	var input PengurusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pengurus.Nama = input.Nama
	pengurus.Jabatan = input.Jabatan
	pengurus.Phone = input.Phone
	pengurus.Email = input.Email
	pengurus.PhotoURL = input.PhotoURL
	pengurus.Periode = input.Periode
	if input.IsActive != nil {
		pengurus.IsActive = *input.IsActive
	}

	if err := db.Save(&pengurus).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal memperbarui pengurus"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Data pengurus berhasil diperbarui",
		"pengurus": pengurus,
	})
}

// PATCH /api/admin/pengurus/:id/toggle-status
func TogglePengurusStatus(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	var pengurus models.Pengurus
	if err := db.First(&pengurus, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Pengurus tidak ditemukan"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal mengambil data pengurus"})
		return
	}

	pengurus.IsActive = !pengurus.IsActive
	if err := db.Save(&pengurus).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal mengubah status pengurus"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Status pengurus diubah",
		"pengurus": pengurus,
	})
}

// DELETE /api/admin/pengurus/:id
func DeletePengurus(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	result := db.Delete(&models.Pengurus{}, "id = ?", c.Param("id"))
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal menghapus pengurus"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Pengurus tidak ditemukan"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Pengurus berhasil dihapus"})
}
