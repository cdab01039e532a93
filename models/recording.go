package models

import (
	"time"

	"github.com/google/uuid"
)

// Kelas (kecepatan mangkulan) dan mangkulan (materi) mengikuti pilihan di
// halaman player: kelas cepatan/lambatan, mangkulan quran/hadits.
const (
	KelasCepatan  = "cepatan"
	KelasLambatan = "lambatan"

	MangkulanQuran  = "quran"
	MangkulanHadits = "hadits"
)

// Recording adalah satu rekaman mangkulan yang diupload admin.
// Maksimal satu baris boleh ber-is_active = true pada satu waktu;
// hanya services.RecordingService yang boleh mengubah is_active.
type Recording struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Speaker     string    `gorm:"size:100;not null" json:"speaker"`
	Date        string    `gorm:"size:10;not null" json:"date"` // tanggal sesi, format ISO (YYYY-MM-DD)
	Kelas       string    `gorm:"type:varchar(20);not null" json:"kelas"`
	Mangkulan   string    `gorm:"type:varchar(20);not null" json:"mangkulan"`
	Description string    `gorm:"type:text" json:"description"`
	FileURL     string    `gorm:"type:text;not null" json:"file_url"`
	FileName    string    `gorm:"type:text" json:"file_name"` // nama object di bucket, dipakai saat hapus file
	FileSize    int64     `json:"file_size"`
	Duration    string    `gorm:"size:20" json:"duration"` // H:MM:SS (data lama bisa M:SS)
	PlayCount   int       `gorm:"default:0" json:"play_count"`
	IsActive    bool      `gorm:"default:false;index" json:"is_active"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
