package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPendaftaranPending  = "pending"
	StatusPendaftaranApproved = "approved"
	StatusPendaftaranRejected = "rejected"
)

// Pendaftaran adalah formulir pendaftaran calon santri dari website publik.
type Pendaftaran struct {
	ID         uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Nama       string     `gorm:"size:150;not null" json:"nama"`
	Kampus     string     `gorm:"size:100;not null" json:"kampus"`
	Jurusan    string     `gorm:"size:100" json:"jurusan"`
	Phone      string     `gorm:"size:20;not null" json:"phone"`
	Email      string     `gorm:"size:150" json:"email"`
	Alamat     string     `gorm:"type:text" json:"alamat"`
	Motivasi   string     `gorm:"type:text" json:"motivasi"`
	Status     string     `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	ReviewedBy *uuid.UUID `gorm:"type:uuid" json:"reviewed_by"`
	ReviewedAt *time.Time `json:"reviewed_at"`
	CreatedAt  time.Time  `gorm:"autoCreateTime" json:"created_at"`
}

// Nama Indonesia tidak berakhiran -s; tabel dipakai juga di query raw.
func (Pendaftaran) TableName() string { return "pendaftaran" }
