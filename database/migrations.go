package database

import (
	"log"

	"tutorialhub/models"

	"gorm.io/gorm"
)

func RunMigrations(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Tag{},
		&models.Tutorial{},
		&models.TutorialTag{},
	)

	if err != nil {
		log.Printf("Error running migrations: %v", err)
		return err
	}

	log.Println("Migrations completed successfully")
	return nil
}

// SeedCategories inserts the starter taxonomy once, when the table is empty.
func SeedCategories(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Category{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	categories := []models.Category{
		{Name: "Frontend Development", Slug: "frontend", Description: "HTML, CSS, JavaScript, React, Vue"},
		{Name: "Backend Development", Slug: "backend", Description: "Node.js, PHP, Python, APIs"},
		{Name: "Database", Slug: "database", Description: "MySQL, MongoDB, PostgreSQL"},
		{Name: "DevOps", Slug: "devops", Description: "Docker, CI/CD, Cloud"},
		{Name: "Mobile Development", Slug: "mobile", Description: "React Native, Flutter, iOS, Android"},
		{Name: "Other", Slug: "other", Description: "Miscellaneous tutorials"},
	}

	if err := db.Create(&categories).Error; err != nil {
		log.Printf("Error seeding categories: %v", err)
		return err
	}

	log.Printf("Seeded %d categories", len(categories))
	return nil
}
