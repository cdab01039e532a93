package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/minhajulhaq/ppm-backend/models"
)

var DB *gorm.DB

func InitDB() {
	// Ambil konfigurasi dari environment
	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbUser := os.Getenv("DB_USER")
	dbPass := os.Getenv("DB_PASSWORD")
	dbName := os.Getenv("DB_NAME")

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=Asia/Jakarta",
		dbHost, dbUser, dbPass, dbName, dbPort,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		log.Fatal("Tidak bisa terhubung ke database:", err)
	}

	DB = db

	// Connection pooling
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal("Tidak bisa mengambil sql.DB dari gorm:", err)
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	err = DB.AutoMigrate(
		&models.User{},
		&models.Recording{},
		&models.Santri{},
		&models.Pendaftaran{},
		&models.Berita{},
		&models.Pengurus{},
	)
	if err != nil {
		log.Fatal("autoMigrate gagal: ", err)
	}
	log.Println("postgreSQL connected & migrated successfully!")
}
