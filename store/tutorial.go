package store

import (
	"errors"

	"gorm.io/gorm"

	"tutorialhub/models"
)

// TutorialRepo owns the content records, the dynamic filter/paginate
// listing and the orchestration of tag association sync.
type TutorialRepo struct {
	db   *gorm.DB
	tags *TagRepo
}

func NewTutorialRepo(db *gorm.DB, tags *TagRepo) *TutorialRepo {
	return &TutorialRepo{db: db, tags: tags}
}

// TutorialInput is the validated, strongly-typed boundary DTO. The
// routing layer coerces loose request values (e.g. published as the
// string "true") before it reaches the repository.
type TutorialInput struct {
	Title       string
	Description string
	Published   bool
	Image       string
	CategoryID  *int

	// Tags, when non-nil, is the exact tag name set to sync alongside
	// the field write. Nil leaves associations untouched.
	Tags []string
}

func (r *TutorialRepo) Create(in TutorialInput) (*models.Tutorial, error) {
	tutorial := models.Tutorial{
		Title:       in.Title,
		Description: in.Description,
		Published:   in.Published,
		Image:       in.Image,
		CategoryID:  in.CategoryID,
	}
	if err := r.db.Create(&tutorial).Error; err != nil {
		return nil, err
	}
	if in.Tags != nil {
		ids, err := r.tags.ResolveNames(in.Tags)
		if err != nil {
			return nil, err
		}
		if err := r.tags.SyncTutorialTags(tutorial.ID, ids); err != nil {
			return nil, err
		}
	}
	return r.FindByID(tutorial.ID)
}

// FindByID returns the record enriched with its resolved category (nil
// when uncategorized) and its full tag list ordered by name.
func (r *TutorialRepo) FindByID(id int) (*models.Tutorial, error) {
	var tutorial models.Tutorial
	if err := r.db.Preload("Category").First(&tutorial, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	tags, err := r.tags.GetByTutorialID(tutorial.ID)
	if err != nil {
		return nil, err
	}
	tutorial.Tags = tags
	return &tutorial, nil
}

// GetAll lists tutorials matching the filter. The total is counted with
// the identical predicate set before pagination is applied, then the
// page is fetched newest-first. Each row's tag list is filled by a
// secondary lookup; the read amplification is accepted for simplicity
// over a single joined fetch.
func (r *TutorialRepo) GetAll(filter TutorialFilter) (*TutorialPage, error) {
	var total int64
	if err := filter.apply(r.db).Distinct("tutorials.id").Count(&total).Error; err != nil {
		return nil, err
	}

	var tutorials []models.Tutorial
	err := filter.apply(r.db).
		Distinct("tutorials.*").
		Preload("Category").
		Order("tutorials.created_at DESC, tutorials.id DESC").
		Limit(filter.limit()).
		Offset(filter.offset()).
		Find(&tutorials).Error
	if err != nil {
		return nil, err
	}

	for i := range tutorials {
		tags, err := r.tags.GetByTutorialID(tutorials[i].ID)
		if err != nil {
			return nil, err
		}
		tutorials[i].Tags = tags
	}

	return &TutorialPage{
		Tutorials: tutorials,
		Pagination: Pagination{
			Page:       filter.page(),
			Limit:      filter.limit(),
			Total:      total,
			TotalPages: totalPages(total, filter.limit()),
		},
	}, nil
}

// UpdateByID fully replaces title/description/published/image/category.
// When the input carries a tag set, the field write and the association
// sync run in one transaction, so a sync failure rolls the fields back
// rather than leaving the two halves split.
func (r *TutorialRepo) UpdateByID(id int, in TutorialInput) (*models.Tutorial, error) {
	var tagIDs []int
	if in.Tags != nil {
		ids, err := r.tags.ResolveNames(in.Tags)
		if err != nil {
			return nil, err
		}
		tagIDs = ids
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Tutorial{}).Where("id = ?", id).Updates(map[string]interface{}{
			"title":       in.Title,
			"description": in.Description,
			"published":   in.Published,
			"image":       in.Image,
			"category_id": in.CategoryID,
		})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		if in.Tags != nil {
			return syncTutorialTags(tx, id, tagIDs)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r.FindByID(id)
}

// Remove deletes one tutorial; its associations cascade.
func (r *TutorialRepo) Remove(id int) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tutorial_id = ?", id).Delete(&models.TutorialTag{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Tutorial{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// RemoveAll deletes every tutorial and every association.
func (r *TutorialRepo) RemoveAll() error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.TutorialTag{}).Error; err != nil {
			return err
		}
		return tx.Where("1 = 1").Delete(&models.Tutorial{}).Error
	})
}
