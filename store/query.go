package store

import (
	"gorm.io/gorm"

	"tutorialhub/models"
)

const DefaultPageSize = 10

// TutorialFilter carries the listing predicates and pagination window.
// Nil/zero fields add no predicate; present fields AND together.
type TutorialFilter struct {
	Title      string
	Published  *bool
	CategoryID *int
	TagID      *int
	Page       int
	Limit      int
}

// Pagination describes the window applied to a listing and the size of
// the full result set before the window was applied.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// TutorialPage is one page of filtered tutorials.
type TutorialPage struct {
	Tutorials  []models.Tutorial `json:"tutorials"`
	Pagination Pagination        `json:"pagination"`
}

type predicate func(*gorm.DB) *gorm.DB

// predicates compiles the filter into a list of typed predicates.
func (f TutorialFilter) predicates() []predicate {
	var preds []predicate
	if f.Title != "" {
		title := f.Title
		preds = append(preds, func(q *gorm.DB) *gorm.DB {
			return q.Where("tutorials.title LIKE ?", "%"+title+"%")
		})
	}
	if f.Published != nil {
		published := *f.Published
		preds = append(preds, func(q *gorm.DB) *gorm.DB {
			return q.Where("tutorials.published = ?", published)
		})
	}
	if f.CategoryID != nil {
		categoryID := *f.CategoryID
		preds = append(preds, func(q *gorm.DB) *gorm.DB {
			return q.Where("tutorials.category_id = ?", categoryID)
		})
	}
	if f.TagID != nil {
		tagID := *f.TagID
		preds = append(preds, func(q *gorm.DB) *gorm.DB {
			// joining the association table can duplicate rows;
			// callers pair this with DISTINCT on tutorials
			return q.Joins("INNER JOIN tutorial_tags ON tutorial_tags.tutorial_id = tutorials.id").
				Where("tutorial_tags.tag_id = ?", tagID)
		})
	}
	return preds
}

// apply compiles the predicate set onto a tutorials query.
func (f TutorialFilter) apply(db *gorm.DB) *gorm.DB {
	q := db.Model(&models.Tutorial{})
	for _, p := range f.predicates() {
		q = p(q)
	}
	return q
}

// page returns the sanitized page number, >= 1.
func (f TutorialFilter) page() int {
	if f.Page < 1 {
		return 1
	}
	return f.Page
}

// limit returns the sanitized page size, defaulting to DefaultPageSize.
func (f TutorialFilter) limit() int {
	if f.Limit < 1 {
		return DefaultPageSize
	}
	return f.Limit
}

func (f TutorialFilter) offset() int {
	return (f.page() - 1) * f.limit()
}

func totalPages(total int64, limit int) int {
	if total == 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}
