package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"

	"github.com/minhajulhaq/ppm-backend/models"
)

func GenerateSlug(title string) string {
	return slug.Make(title)
}

type BeritaInput struct {
	Title    string `json:"title" binding:"required"`
	Content  string `json:"content" binding:"required"`
	Excerpt  string `json:"excerpt"`
	ImageURL string `json:"image_url"`
	Category string `json:"category"`
	Status   string `json:"status"`
}

// GET /api/berita?category=
// Halaman depan hanya melihat berita yang sudah publish.
func GetBeritaPublic(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	query := db.Model(&models.Berita{}).Where("status = ?", models.StatusBeritaPublished)
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}

	var berita []models.Berita
	if err := query.Order("published_at DESC").Find(&berita).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal mengambil berita"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": berita})
}

// GET /api/berita/:slug
func GetBeritaBySlug(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	var berita models.Berita
	err := db.Where("slug = ? AND status = ?", c.Param("slug"), models.StatusBeritaPublished).
		First(&berita).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Berita tidak ditemukan"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal mengambil berita"})
		return
	}

	c.JSON(http.StatusOK, berita)
}

// GET /api/admin/berita?status=&category=&search=
func GetBerita(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	query := db.Model(&models.Berita{})
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if search := c.Query("search"); search != "" {
		query = query.Where("title ILIKE ?", "%"+search+"%")
	}

	var berita []models.Berita
	if err := query.Order("created_at DESC").Find(&berita).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal mengambil berita"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": berita})
}

// POST /api/admin/berita
func CreateBerita(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	var input BeritaInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	title := strings.TrimSpace(input.Title)
	slugValue := GenerateSlug(title)

	// Judul/slug tidak boleh dobel
	var count int64
	db.Model(&models.Berita{}).Where("slug = ?", slugValue).Count(&count)
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Berita dengan judul serupa sudah ada"})
		return
	}

	berita := models.Berita{
		Title:    title,
		Slug:     slugValue,
		Content:  input.Content,
		Excerpt:  input.Excerpt,
		ImageURL: input.ImageURL,
		Category: models.KategoriBeritaUmum,
		Status:   models.StatusBeritaDraft,
	}
	if input.Category != "" {
		berita.Category = input.Category
	}
	if input.Status != "" {
		berita.Status = input.Status
	}
	if berita.Status == models.StatusBeritaPublished {
		now := time.Now()
		berita.PublishedAt = &now
	}
	if authorID, err := uuid.Parse(c.GetString("user_id")); err == nil {
		berita.AuthorID = &authorID
	}

	if err := db.Create(&berita).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal membuat berita"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Berita berhasil dibuat",
		"berita":  berita,
	})
}

// PUT /api/admin/berita/:id
func UpdateBerita(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	var berita models.Berita
	if err := db.First(&berita, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Berita tidak ditemukan"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal mengambil berita"})
		return
	}

	var input BeritaInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	title := strings.TrimSpace(input.Title)
	if title != berita.Title {
		slugValue := GenerateSlug(title)
		var count int64
		db.Model(&models.Berita{}).Where("slug = ? AND id != ?", slugValue, berita.ID).Count(&count)
		if count > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Berita dengan judul serupa sudah ada"})
			return
		}
		berita.Title = title
		berita.Slug = slugValue
	}

	berita.Content = input.Content
	berita.Excerpt = input.Excerpt
	berita.ImageURL = input.ImageURL
	if input.Category != "" {
		berita.Category = input.Category
	}
	if input.Status != "" {
		// published_at terisi saat pertama kali publish
		if input.Status == models.StatusBeritaPublished && berita.PublishedAt == nil {
			now := time.Now()
			berita.PublishedAt = &now
		}
		berita.Status = input.Status
	}

	if err := db.Save(&berita).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal memperbarui berita"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Berita berhasil diperbarui",
		"berita":  berita,
	})
}

// DELETE /api/admin/berita/:id
func DeleteBerita(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	result := db.Delete(&models.Berita{}, "id = ?", c.Param("id"))
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal menghapus berita"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Berita tidak ditemukan"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Berita berhasil dihapus"})
}
