package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	KategoriBeritaUmum       = "umum"
	KategoriBeritaKajian     = "kajian"
	KategoriBeritaPrestasi   = "prestasi"
	KategoriBeritaPengumuman = "pengumuman"

	StatusBeritaDraft     = "draft"
	StatusBeritaPublished = "published"
)

// Berita untuk halaman depan dan carousel.
type Berita struct {
	ID          uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Title       string     `gorm:"size:255;not null" json:"title"`
	Slug        string     `gorm:"size:255;uniqueIndex;not null" json:"slug"`
	Content     string     `gorm:"type:text;not null" json:"content"`
	Excerpt     string     `gorm:"type:text" json:"excerpt"`
	ImageURL    string     `gorm:"type:text" json:"image_url"`
	Category    string     `gorm:"type:varchar(20);not null;default:'umum'" json:"category"`
	Status      string     `gorm:"type:varchar(20);not null;default:'draft'" json:"status"`
	PublishedAt *time.Time `json:"published_at"`
	AuthorID    *uuid.UUID `gorm:"type:uuid" json:"author_id"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Berita) TableName() string { return "berita" }
