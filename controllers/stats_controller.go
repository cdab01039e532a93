package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/minhajulhaq/ppm-backend/models"
)

type MonthlyPoint struct {
	Month string `json:"month"` // "2025-01"
	Count int64  `json:"count"`
}

type DashboardOverview struct {
	TotalSantri        int64 `json:"total_santri"`
	SantriAktif        int64 `json:"santri_aktif"`
	PendingPendaftaran int64 `json:"pending_pendaftaran"`
	PublishedBerita    int64 `json:"published_berita"`
	TotalRecordings    int64 `json:"total_recordings"`
	TotalPlays         int64 `json:"total_plays"`
}

func getYearParam(c *gin.Context) int {
	yStr := c.Query("year")
	if yStr == "" {
		return time.Now().Year()
	}
	if y, err := strconv.Atoi(yStr); err == nil {
		return y
	}
	return time.Now().Year()
}

// GET /api/admin/stats/overview
// Angka-angka untuk kartu di dashboard admin.
func GetDashboardOverview(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	var overview DashboardOverview
	db.Model(&models.Santri{}).Count(&overview.TotalSantri)
	db.Model(&models.Santri{}).Where("status = ?", models.StatusSantriAktif).Count(&overview.SantriAktif)
	db.Model(&models.Pendaftaran{}).Where("status = ?", models.StatusPendaftaranPending).Count(&overview.PendingPendaftaran)
	db.Model(&models.Berita{}).Where("status = ?", models.StatusBeritaPublished).Count(&overview.PublishedBerita)
	db.Model(&models.Recording{}).Count(&overview.TotalRecordings)
	db.Model(&models.Recording{}).Select("COALESCE(SUM(play_count), 0)").Scan(&overview.TotalPlays)

	c.JSON(http.StatusOK, overview)
}

// GET /api/admin/stats/pendaftaran-monthly?year=
// Jumlah pendaftaran per bulan untuk grafik dashboard.
func GetPendaftaranMonthly(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)
	year := getYearParam(c)

	// waktu dibaca dalam zona Asia/Jakarta
	rows, err := db.Raw(`
		SELECT TO_CHAR((created_at AT TIME ZONE 'UTC' AT TIME ZONE 'Asia/Jakarta'), 'YYYY-MM') AS month,
		       COUNT(*) AS count
		FROM pendaftaran
		WHERE EXTRACT(YEAR FROM (created_at AT TIME ZONE 'UTC' AT TIME ZONE 'Asia/Jakarta')) = ?
		GROUP BY month
		ORDER BY month
	`, year).Rows()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer rows.Close()

	var res []MonthlyPoint
	for rows.Next() {
		var p MonthlyPoint
		if err := rows.Scan(&p.Month, &p.Count); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		res = append(res, p)
	}

	c.JSON(http.StatusOK, gin.H{
		"year": year,
		"data": res,
	})
}
