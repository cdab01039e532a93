package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/minhajulhaq/ppm-backend/models"
)

// RecordingFilter menyaring hasil List. String kosong berarti tanpa filter.
type RecordingFilter struct {
	Kelas      string
	Mangkulan  string
	ActiveOnly bool
}

// RecordingStore adalah akses tabel recordings. Store tidak boleh punya
// jalur tulis is_active sendiri; semua mutasi aktivasi lewat
// RecordingService.
type RecordingStore interface {
	Create(rec *models.Recording) error
	FindByID(id uuid.UUID) (*models.Recording, error)
	List(filter RecordingFilter) ([]models.Recording, error)
	// ArchiveActive mengarsipkan semua baris aktif dan menyegarkan
	// updated_at mereka.
	ArchiveActive(now time.Time) error
	Save(rec *models.Recording) error
	Delete(id uuid.UUID) error
	// Transaction menjalankan fn dalam satu transaksi database; store yang
	// diterima fn terikat ke transaksi itu, sehingga arsip + aktivasi
	// bisa jadi satu unit atomik.
	Transaction(fn func(RecordingStore) error) error
}

type GormRecordingStore struct {
	db *gorm.DB
}

func NewGormRecordingStore(db *gorm.DB) *GormRecordingStore {
	return &GormRecordingStore{db: db}
}

func (s *GormRecordingStore) Create(rec *models.Recording) error {
	if err := s.db.Create(rec).Error; err != nil {
		return &StoreError{Op: "insert recording", Err: err}
	}
	return nil
}

func (s *GormRecordingStore) FindByID(id uuid.UUID) (*models.Recording, error) {
	var rec models.Recording
	if err := s.db.First(&rec, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, &StoreError{Op: "find recording", Err: err}
	}
	return &rec, nil
}

func (s *GormRecordingStore) List(filter RecordingFilter) ([]models.Recording, error) {
	query := s.db.Model(&models.Recording{})
	if filter.Kelas != "" {
		query = query.Where("kelas = ?", filter.Kelas)
	}
	if filter.Mangkulan != "" {
		query = query.Where("mangkulan = ?", filter.Mangkulan)
	}
	if filter.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}

	var recordings []models.Recording
	if err := query.Order("created_at DESC").Find(&recordings).Error; err != nil {
		return nil, &StoreError{Op: "list recordings", Err: err}
	}
	return recordings, nil
}

func (s *GormRecordingStore) ArchiveActive(now time.Time) error {
	err := s.db.Model(&models.Recording{}).
		Where("is_active = ?", true).
		Updates(map[string]interface{}{"is_active": false, "updated_at": now}).Error
	if err != nil {
		return &StoreError{Op: "archive recordings", Err: err}
	}
	return nil
}

func (s *GormRecordingStore) Save(rec *models.Recording) error {
	if err := s.db.Save(rec).Error; err != nil {
		return &StoreError{Op: "update recording", Err: err}
	}
	return nil
}

func (s *GormRecordingStore) Delete(id uuid.UUID) error {
	if err := s.db.Delete(&models.Recording{}, "id = ?", id).Error; err != nil {
		return &StoreError{Op: "delete recording", Err: err}
	}
	return nil
}

func (s *GormRecordingStore) Transaction(fn func(RecordingStore) error) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return fn(&GormRecordingStore{db: tx})
	})
}
