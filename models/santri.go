package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusSantriAktif  = "aktif"
	StatusSantriAlumni = "alumni"
	StatusSantriCuti   = "cuti"
)

// Santri adalah mahasiswa yang tinggal di pondok.
type Santri struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Nama      string    `gorm:"size:150;not null" json:"nama"`
	NIS       string    `gorm:"size:30;uniqueIndex;not null" json:"nis"`
	Kampus    string    `gorm:"size:100;not null" json:"kampus"`
	Angkatan  int       `gorm:"not null" json:"angkatan"`
	Phone     string    `gorm:"size:20" json:"phone"`
	Email     string    `gorm:"size:150" json:"email"`
	Alamat    string    `gorm:"type:text" json:"alamat"`
	PhotoURL  string    `gorm:"type:text" json:"photo_url"`
	Status    string    `gorm:"type:varchar(20);not null;default:'aktif'" json:"status"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Santri) TableName() string { return "santri" }
