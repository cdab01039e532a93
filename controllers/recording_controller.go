package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/minhajulhaq/ppm-backend/services"
	"github.com/minhajulhaq/ppm-backend/utils"
)

const maxRecordingSize = 50 * 1024 * 1024 // 50MB, sama dengan batas form upload

func isAudioContentType(contentType string) bool {
	return strings.HasPrefix(contentType, "audio/")
}

func recordingService(c *gin.Context) *services.RecordingService {
	return c.MustGet("recordingService").(*services.RecordingService)
}

func blobStorage(c *gin.Context) services.BlobStorage {
	return c.MustGet("blobStorage").(services.BlobStorage)
}

// GET /api/recordings?active=true&kelas=&mangkulan=
// Daftar recording untuk player dan panel arsip admin, terbaru lebih dulu.
func GetRecordings(c *gin.Context) {
	svc := recordingService(c)

	filter := services.RecordingFilter{
		Kelas:      c.Query("kelas"),
		Mangkulan:  c.Query("mangkulan"),
		ActiveOnly: c.Query("active") == "true",
	}

	recordings, err := svc.List(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal mengambil daftar recording"})
		return
	}

	// Durasi lama (M:SS) dinormalkan untuk tampilan
	for i := range recordings {
		recordings[i].Duration = utils.FormatDurationDisplay(recordings[i].Duration)
	}

	c.JSON(http.StatusOK, recordings)
}

// GET /api/recordings/:id
func GetRecordingDetail(c *gin.Context) {
	svc := recordingService(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID recording tidak valid"})
		return
	}

	rec, err := svc.Get(id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Recording tidak ditemukan"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal mengambil recording"})
		return
	}

	rec.Duration = utils.FormatDurationDisplay(rec.Duration)
	c.JSON(http.StatusOK, rec)
}

type playRecordingInput struct {
	IncrementPlayCount bool `json:"increment_play_count"`
}

// PUT /api/recordings/:id
// Endpoint publik yang dipakai player; hanya menerima increment_play_count.
func PlayRecording(c *gin.Context) {
	svc := recordingService(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID recording tidak valid"})
		return
	}

	var input playRecordingInput
	if err := c.ShouldBindJSON(&input); err != nil || !input.IncrementPlayCount {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Hanya increment_play_count yang diizinkan di endpoint ini"})
		return
	}

	rec, err := svc.IncrementPlayCount(id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Recording tidak ditemukan"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal memperbarui play count"})
		return
	}

	rec.Duration = utils.FormatDurationDisplay(rec.Duration)
	c.JSON(http.StatusOK, rec)
}

// POST /api/admin/recordings (multipart)
// Alur upload: validasi file, hitung durasi, upload ke bucket, lalu publish
// lewat RecordingService. Recording lama otomatis diarsipkan.
func UploadRecording(c *gin.Context) {
	svc := recordingService(c)
	storage := blobStorage(c)
	userIDStr := c.GetString("user_id")

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Tidak ada file audio yang dikirim"})
		return
	}

	contentType := file.Header.Get("Content-Type")
	if !isAudioContentType(contentType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Mohon upload file audio (MP3)"})
		return
	}
	if file.Size > maxRecordingSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File terlalu besar. Maksimal 50MB"})
		return
	}

	input := services.PublishInput{
		Title:       c.PostForm("title"),
		Speaker:     c.PostForm("speaker"),
		Date:        c.PostForm("date"),
		Kelas:       c.PostForm("kelas"),
		Mangkulan:   c.PostForm("mangkulan"),
		Description: c.PostForm("description"),
		FileSize:    file.Size,
	}

	// Metadata divalidasi dulu; kalau ada field yang kurang, file tidak
	// perlu sampai ke bucket
	if err := services.ValidatePublishInput(input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Durasi dihitung dari file-nya; kalau decode gagal upload tetap
	// jalan dengan durasi 0:00:00
	if seconds, err := services.GetMP3DurationFromFile(file); err == nil {
		input.Duration = utils.FormatSecondsToDuration(seconds)
	} else {
		input.Duration = "0:00:00"
	}

	fileName, fileURL, err := storage.UploadRecording(file)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Gagal upload file ke storage", "details": err.Error()})
		return
	}

	rec, err := svc.Publish(userIDStr, input, fileURL, fileName)
	if err != nil {
		var vErr *services.ValidationError
		if errors.As(err, &vErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal menyimpan recording", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":   "Recording berhasil dipublish",
		"recording": rec,
	})
}

type updateRecordingInput struct {
	Restore     bool    `json:"restore"`
	Title       *string `json:"title"`
	Speaker     *string `json:"speaker"`
	Date        *string `json:"date"`
	Kelas       *string `json:"kelas"`
	Mangkulan   *string `json:"mangkulan"`
	Description *string `json:"description"`
}

// PUT /api/admin/recordings/:id
// Body {restore: true} mengaktifkan kembali recording arsip (yang aktif
// sekarang ikut diarsipkan); selain itu dianggap patch metadata.
func UpdateRecording(c *gin.Context) {
	svc := recordingService(c)
	userIDStr := c.GetString("user_id")

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID recording tidak valid"})
		return
	}

	var input updateRecordingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var rec interface{}
	if input.Restore {
		rec, err = svc.Restore(userIDStr, id)
	} else {
		rec, err = svc.UpdateMetadata(id, services.MetadataPatch{
			Title:       input.Title,
			Speaker:     input.Speaker,
			Date:        input.Date,
			Kelas:       input.Kelas,
			Mangkulan:   input.Mangkulan,
			Description: input.Description,
		})
	}

	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Recording tidak ditemukan"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal memperbarui recording", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, rec)
}

// DELETE /api/admin/recordings/:id
// Menghapus baris recording beserta file audionya; id yang sudah tidak ada
// tetap dibalas sukses.
func DeleteRecording(c *gin.Context) {
	svc := recordingService(c)
	userIDStr := c.GetString("user_id")

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID recording tidak valid"})
		return
	}

	if err := svc.Delete(userIDStr, id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal menghapus recording", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
