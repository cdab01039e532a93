package models

import (
	"time"

	"github.com/google/uuid"
)

// Pengurus pondok untuk halaman profil. IsActive di sini per-baris
// (pengurus periode berjalan), bukan flag tunggal seperti Recording.
type Pengurus struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Nama      string    `gorm:"size:150;not null" json:"nama"`
	Jabatan   string    `gorm:"size:100;not null" json:"jabatan"`
	Phone     string    `gorm:"size:20" json:"phone"`
	Email     string    `gorm:"size:150" json:"email"`
	PhotoURL  string    `gorm:"type:text" json:"photo_url"`
	Periode   string    `gorm:"size:20" json:"periode"`
	IsActive  bool      `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Pengurus) TableName() string { return "pengurus" }
