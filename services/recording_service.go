package services

import (
	"errors"
	"log"
	"mime/multipart"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/minhajulhaq/ppm-backend/models"
)

// BlobStorage adalah kontrak penyimpanan file audio (Supabase Storage di
// produksi). UploadRecording mengembalikan nama object dan URL publiknya.
type BlobStorage interface {
	UploadRecording(fileHeader *multipart.FileHeader) (name string, url string, err error)
	RemoveRecording(name string) error
}

// PublishInput adalah metadata recording dari form upload.
type PublishInput struct {
	Title       string
	Speaker     string
	Date        string
	Kelas       string
	Mangkulan   string
	Description string
	FileSize    int64
	Duration    string
}

// MetadataPatch untuk update biasa; field nil tidak diubah. is_active
// sengaja tidak ada di sini.
type MetadataPatch struct {
	Title       *string
	Speaker     *string
	Date        *string
	Kelas       *string
	Mangkulan   *string
	Description *string
}

// RecordingService menjaga invarian satu-recording-aktif: setiap publish
// atau restore mengarsipkan semua recording aktif lain dalam transaksi
// yang sama.
type RecordingService struct {
	store   RecordingStore
	storage BlobStorage

	// OnActiveChanged dipanggil setelah recording aktif berganti
	// (dipakai hub WebSocket untuk refresh halaman player). Boleh nil.
	OnActiveChanged func(rec *models.Recording)
}

func NewRecordingService(store RecordingStore, storage BlobStorage) *RecordingService {
	return &RecordingService{store: store, storage: storage}
}

// ValidatePublishInput mengecek field wajib metadata recording. Controller
// memanggilnya sebelum upload file supaya metadata yang kurang tidak
// meninggalkan file yatim di bucket.
func ValidatePublishInput(in PublishInput) error {
	var missing []string
	if strings.TrimSpace(in.Title) == "" {
		missing = append(missing, "title")
	}
	if strings.TrimSpace(in.Speaker) == "" {
		missing = append(missing, "speaker")
	}
	if strings.TrimSpace(in.Date) == "" {
		missing = append(missing, "date")
	}
	if strings.TrimSpace(in.Kelas) == "" {
		missing = append(missing, "kelas")
	}
	if strings.TrimSpace(in.Mangkulan) == "" {
		missing = append(missing, "mangkulan")
	}
	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}
	return nil
}

// Publish mengarsipkan semua recording aktif lalu menyimpan recording baru
// sebagai satu-satunya yang aktif. Kedua langkah jalan dalam satu
// transaksi, jadi setelah Publish sukses tepat satu recording yang aktif.
func (s *RecordingService) Publish(actorID string, in PublishInput, fileURL, fileName string) (*models.Recording, error) {
	if err := ValidatePublishInput(in); err != nil {
		return nil, err
	}

	rec := &models.Recording{
		Title:       strings.TrimSpace(in.Title),
		Speaker:     strings.TrimSpace(in.Speaker),
		Date:        in.Date,
		Kelas:       in.Kelas,
		Mangkulan:   in.Mangkulan,
		Description: in.Description,
		FileURL:     fileURL,
		FileName:    fileName,
		FileSize:    in.FileSize,
		Duration:    in.Duration,
		PlayCount:   0,
		IsActive:    true,
	}

	err := s.store.Transaction(func(tx RecordingStore) error {
		if err := tx.ArchiveActive(time.Now()); err != nil {
			return err
		}
		return tx.Create(rec)
	})
	if err != nil {
		return nil, err
	}

	log.Printf("recording %s (%s) dipublish oleh user %s", rec.ID, rec.Title, actorID)
	if s.OnActiveChanged != nil {
		s.OnActiveChanged(rec)
	}
	return rec, nil
}

// Restore mengaktifkan kembali recording lama; recording yang sedang aktif
// diarsipkan dalam transaksi yang sama.
func (s *RecordingService) Restore(actorID string, id uuid.UUID) (*models.Recording, error) {
	rec, err := s.store.FindByID(id)
	if err != nil {
		return nil, err
	}

	err = s.store.Transaction(func(tx RecordingStore) error {
		now := time.Now()
		if err := tx.ArchiveActive(now); err != nil {
			return err
		}
		rec.IsActive = true
		rec.UpdatedAt = now
		return tx.Save(rec)
	})
	if err != nil {
		return nil, err
	}

	log.Printf("recording %s (%s) direstore oleh user %s", rec.ID, rec.Title, actorID)
	if s.OnActiveChanged != nil {
		s.OnActiveChanged(rec)
	}
	return rec, nil
}

// IncrementPlayCount menambah play_count satu. Tidak dijamin exactly-once
// kalau dua pendengar menekan play bersamaan; counter ini informasional.
func (s *RecordingService) IncrementPlayCount(id uuid.UUID) (*models.Recording, error) {
	rec, err := s.store.FindByID(id)
	if err != nil {
		return nil, err
	}

	rec.PlayCount = rec.PlayCount + 1
	rec.UpdatedAt = time.Now()
	if err := s.store.Save(rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// UpdateMetadata mengubah field deskriptif recording. Aktivasi tidak bisa
// diubah lewat sini.
func (s *RecordingService) UpdateMetadata(id uuid.UUID, patch MetadataPatch) (*models.Recording, error) {
	rec, err := s.store.FindByID(id)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		rec.Title = *patch.Title
	}
	if patch.Speaker != nil {
		rec.Speaker = *patch.Speaker
	}
	if patch.Date != nil {
		rec.Date = *patch.Date
	}
	if patch.Kelas != nil {
		rec.Kelas = *patch.Kelas
	}
	if patch.Mangkulan != nil {
		rec.Mangkulan = *patch.Mangkulan
	}
	if patch.Description != nil {
		rec.Description = *patch.Description
	}
	rec.UpdatedAt = time.Now()

	if err := s.store.Save(rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// Delete menghapus file audio (best-effort) lalu baris recording-nya.
// Gagal hapus file hanya dicatat; baris tetap dihapus. Id yang sudah tidak
// ada dianggap sukses (idempoten).
func (s *RecordingService) Delete(actorID string, id uuid.UUID) error {
	rec, err := s.store.FindByID(id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil
		}
		return err
	}

	if rec.FileName != "" {
		if err := s.storage.RemoveRecording(rec.FileName); err != nil {
			log.Printf("gagal hapus file %s dari storage: %v", rec.FileName, err)
		}
	}

	if err := s.store.Delete(id); err != nil {
		return err
	}
	log.Printf("recording %s (%s) dihapus oleh user %s", rec.ID, rec.Title, actorID)
	return nil
}

// Get mengambil satu recording.
func (s *RecordingService) Get(id uuid.UUID) (*models.Recording, error) {
	return s.store.FindByID(id)
}

// List mengambil recording terbaru lebih dulu, dengan filter opsional.
func (s *RecordingService) List(filter RecordingFilter) ([]models.Recording, error) {
	return s.store.List(filter)
}
