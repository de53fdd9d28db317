package db

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init() {
	sqlDB, err := OpenSQL()
	if err != nil {
		log.Fatal("Failed to connect to DB:", err)
	}

	applied, err := MigrateUp(sqlDB)
	if err != nil {
		log.Fatal("Failed to apply migrations:", err)
	}

	DB, err = gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to open gorm session:", err)
	}

	log.Printf("Database connected, %d migrations applied", applied)
}

func InitWithGormDB(gormDB *gorm.DB) {
	DB = gormDB
}
