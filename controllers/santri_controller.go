package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/minhajulhaq/ppm-backend/models"
)

type SantriInput struct {
	Nama     string `json:"nama" binding:"required"`
	NIS      string `json:"nis" binding:"required"`
	Kampus   string `json:"kampus" binding:"required"`
	Angkatan int    `json:"angkatan" binding:"required"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Alamat   string `json:"alamat"`
	PhotoURL string `json:"photo_url"`
	Status   string `json:"status"`
}

// GET /api/admin/santri?search=&status=
func GetSantri(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	query := db.Model(&models.Santri{})

	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		query = query.Where("nama ILIKE ? OR nis ILIKE ?", like, like)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var santri []models.Santri
	if err := query.Order("created_at DESC").Find(&santri).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal mengambil data santri"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": santri})
}

// POST /api/admin/santri
func CreateSantri(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	var input SantriInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// NIS harus unik
	var count int64
	db.Model(&models.Santri{}).Where("nis = ?", input.NIS).Count(&count)
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "NIS sudah terdaftar"})
		return
	}

	santri := models.Santri{
		Nama:     input.Nama,
		NIS:      input.NIS,
		Kampus:   input.Kampus,
		Angkatan: input.Angkatan,
		Phone:    input.Phone,
		Email:    input.Email,
		Alamat:   input.Alamat,
		PhotoURL: input.PhotoURL,
		Status:   models.StatusSantriAktif,
	}
	if input.Status != "" {
		santri.Status = input.Status
	}

	if err := db.Create(&santri).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal menambahkan santri"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Santri berhasil ditambahkan",
		"santri":  santri,
	})
}

// PUT /api/admin/santri/:id
func UpdateSantri(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	var santri models.Santri
	if err := db.First(&santri, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Santri tidak ditemukan"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal mengambil data santri"})
		return
	}

	var input SantriInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// NIS baru tidak boleh bentrok dengan santri lain
	if input.NIS != santri.NIS {
		var count int64
		db.Model(&models.Santri{}).Where("nis = ? AND id != ?", input.NIS, santri.ID).Count(&count)
		if count > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "NIS sudah terdaftar"})
			return
		}
	}

	santri.Nama = input.Nama
	santri.NIS = input.NIS
	santri.Kampus = input.Kampus
	santri.Angkatan = input.Angkatan
	santri.Phone = input.Phone
	santri.Email = input.Email
	santri.Alamat = input.Alamat
	santri.PhotoURL = input.PhotoURL
	if input.Status != "" {
		santri.Status = input.Status
	}

	if err := db.Save(&santri).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal memperbarui santri"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Data santri berhasil diperbarui",
		"santri":  santri,
	})
}

// DELETE /api/admin/santri/:id
func DeleteSantri(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	result := db.Delete(&models.Santri{}, "id = ?", c.Param("id"))
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal menghapus santri"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Santri tidak ditemukan"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Santri berhasil dihapus"})
}
