package store

import (
	"errors"

	"gorm.io/gorm"

	"tutorialhub/models"
)

// CategoryRepo owns the flat category taxonomy. A tutorial references
// at most one category; deleting a category nulls those references.
type CategoryRepo struct {
	db *gorm.DB
}

func NewCategoryRepo(db *gorm.DB) *CategoryRepo {
	return &CategoryRepo{db: db}
}

func (r *CategoryRepo) Create(name, slug, description string) (*models.Category, error) {
	category := models.Category{
		Name:        name,
		Slug:        SlugOr(slug, name),
		Description: description,
	}
	if err := r.db.Create(&category).Error; err != nil {
		return nil, translateDuplicate(err, "name", "slug")
	}
	return &category, nil
}

func (r *CategoryRepo) FindByID(id int) (*models.Category, error) {
	var category models.Category
	if err := r.db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepo) GetAll() ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.Order("name ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// GetAllWithCount lists categories with their tutorial counts.
// Left-joined so zero-count categories are included.
func (r *CategoryRepo) GetAllWithCount() ([]models.Category, error) {
	var categories []models.Category
	err := r.db.Model(&models.Category{}).
		Select("categories.*, COUNT(tutorials.id) AS tutorial_count").
		Joins("LEFT JOIN tutorials ON tutorials.category_id = categories.id").
		Group("categories.id").
		Order("categories.name ASC").
		Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *CategoryRepo) UpdateByID(id int, name, slug, description string) (*models.Category, error) {
	res := r.db.Model(&models.Category{}).Where("id = ?", id).Updates(map[string]interface{}{
		"name":        name,
		"slug":        SlugOr(slug, name),
		"description": description,
	})
	if res.Error != nil {
		return nil, translateDuplicate(res.Error, "name", "slug")
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return r.FindByID(id)
}

// Remove deletes a category; referencing tutorials keep their rows with
// category_id set to NULL.
func (r *CategoryRepo) Remove(id int) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Tutorial{}).
			Where("category_id = ?", id).
			Update("category_id", nil).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Category{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}
