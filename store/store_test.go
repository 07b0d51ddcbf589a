package store

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"tutorialhub/models"
)

func setupTestDB() *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		panic("failed to connect database")
	}

	db.AutoMigrate(&models.User{}, &models.Category{}, &models.Tag{}, &models.Tutorial{}, &models.TutorialTag{})
	return db
}

func setupRepos(db *gorm.DB) (*TutorialRepo, *TagRepo, *CategoryRepo, *UserRepo) {
	tags := NewTagRepo(db)
	return NewTutorialRepo(db, tags), tags, NewCategoryRepo(db), NewUserRepo(db)
}

func createTestTutorial(repo *TutorialRepo, title string, published bool) *models.Tutorial {
	tutorial, err := repo.Create(TutorialInput{
		Title:       title,
		Description: "Test description",
		Published:   published,
	})
	if err != nil {
		panic(err)
	}
	return tutorial
}
