package common

import (
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// ConnectDb opens the relational store. A postgres DSN in DATABASE_URL
// takes precedence; otherwise the sqlite file from sqlite_db is used.
func ConnectDb() *gorm.DB {
	config := &gorm.Config{
		// unique violations surface as gorm.ErrDuplicatedKey on every driver
		TranslateError: true,
	}

	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		db, err := gorm.Open(postgres.Open(dsn), config)
		if err != nil {
			log.Println("Error opening postgres db: " + err.Error())
			return nil
		}
		log.Println("opened postgres db")
		return db
	}

	dbFile := os.Getenv("sqlite_db")
	if dbFile == "" {
		dbFile = "tutorialhub.db"
	}

	db, err := gorm.Open(sqlite.Open(dbFile), config)
	if err != nil {
		log.Println("Error opening sqlite db: " + err.Error())
		return nil
	}
	log.Println("opened sqlite db at:", dbFile)
	return db
}
