package store

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"tutorialhub/models"
)

const DefaultPopularLimit = 10

// TagRepo owns the flat tag label set and the tutorial-tag association
// synchronizer.
type TagRepo struct {
	db *gorm.DB
}

func NewTagRepo(db *gorm.DB) *TagRepo {
	return &TagRepo{db: db}
}

func (r *TagRepo) Create(name, slug string) (*models.Tag, error) {
	tag := models.Tag{
		Name: name,
		Slug: SlugOr(slug, name),
	}
	if err := r.db.Create(&tag).Error; err != nil {
		return nil, translateDuplicate(err, "name", "slug")
	}
	return &tag, nil
}

func (r *TagRepo) FindByID(id int) (*models.Tag, error) {
	var tag models.Tag
	if err := r.db.First(&tag, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &tag, nil
}

// FindOrCreate resolves a tag by the slug derived from name, inserting
// it when absent. Two concurrent calls with the same name may both see
// "absent"; the loser's insert trips the unique constraint and is
// recovered by re-reading, so the race never creates a second row nor
// surfaces to the caller.
func (r *TagRepo) FindOrCreate(name string) (*models.Tag, error) {
	slug := Slugify(name)

	var existing models.Tag
	err := r.db.Where("slug = ?", slug).First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	tag := models.Tag{Name: name, Slug: slug}
	if err := r.db.Create(&tag).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			if err := r.db.Where("slug = ?", slug).First(&existing).Error; err != nil {
				return nil, err
			}
			return &existing, nil
		}
		return nil, err
	}
	return &tag, nil
}

func (r *TagRepo) GetAll() ([]models.Tag, error) {
	var tags []models.Tag
	if err := r.db.Order("name ASC").Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

// GetAllWithCount lists every tag with the number of tutorials carrying
// it, most used first, ties broken by name.
func (r *TagRepo) GetAllWithCount() ([]models.Tag, error) {
	var tags []models.Tag
	err := r.db.Model(&models.Tag{}).
		Select("tags.*, COUNT(tutorial_tags.tutorial_id) AS tutorial_count").
		Joins("LEFT JOIN tutorial_tags ON tutorial_tags.tag_id = tags.id").
		Group("tags.id").
		Order("tutorial_count DESC, tags.name ASC").
		Find(&tags).Error
	if err != nil {
		return nil, err
	}
	return tags, nil
}

// GetPopular truncates the counted listing to the limit (default 10).
func (r *TagRepo) GetPopular(limit int) ([]models.Tag, error) {
	if limit < 1 {
		limit = DefaultPopularLimit
	}
	tags, err := r.GetAllWithCount()
	if err != nil {
		return nil, err
	}
	if len(tags) > limit {
		tags = tags[:limit]
	}
	return tags, nil
}

// GetByTutorialID returns a tutorial's tags ordered by name.
func (r *TagRepo) GetByTutorialID(tutorialID int) ([]models.Tag, error) {
	var tags []models.Tag
	err := r.db.Model(&models.Tag{}).
		Joins("INNER JOIN tutorial_tags ON tutorial_tags.tag_id = tags.id").
		Where("tutorial_tags.tutorial_id = ?", tutorialID).
		Order("tags.name ASC").
		Find(&tags).Error
	if err != nil {
		return nil, err
	}
	return tags, nil
}

// SyncTutorialTags replaces the tutorial's association set with exactly
// tagIDs. Delete and insert run in one transaction so concurrent reads
// never observe a half-written set. Idempotent; an empty set clears.
func (r *TagRepo) SyncTutorialTags(tutorialID int, tagIDs []int) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return syncTutorialTags(tx, tutorialID, tagIDs)
	})
}

// syncTutorialTags is the sync body, shared with callers that already
// hold a transaction. This is the only writer path for associations.
func syncTutorialTags(tx *gorm.DB, tutorialID int, tagIDs []int) error {
	if err := tx.Where("tutorial_id = ?", tutorialID).Delete(&models.TutorialTag{}).Error; err != nil {
		return err
	}
	if len(tagIDs) == 0 {
		return nil
	}
	rows := make([]models.TutorialTag, 0, len(tagIDs))
	for _, tagID := range tagIDs {
		rows = append(rows, models.TutorialTag{TutorialID: tutorialID, TagID: tagID})
	}
	return tx.Create(&rows).Error
}

// ResolveNames find-or-creates every name and returns the tag ids in
// input order.
func (r *TagRepo) ResolveNames(names []string) ([]int, error) {
	ids := make([]int, 0, len(names))
	for _, name := range names {
		tag, err := r.FindOrCreate(name)
		if err != nil {
			return nil, err
		}
		ids = append(ids, tag.ID)
	}
	return ids, nil
}

func (r *TagRepo) UpdateByID(id int, name, slug string) (*models.Tag, error) {
	res := r.db.Model(&models.Tag{}).Where("id = ?", id).Updates(map[string]interface{}{
		"name": name,
		"slug": SlugOr(slug, name),
	})
	if res.Error != nil {
		return nil, translateDuplicate(res.Error, "name", "slug")
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return r.FindByID(id)
}

// Remove deletes a tag and cascades its associations.
func (r *TagRepo) Remove(id int) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tag_id = ?", id).Delete(&models.TutorialTag{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Tag{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// SplitTagNames parses a comma-delimited tag string into trimmed,
// non-empty names.
func SplitTagNames(s string) []string {
	var names []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		names = append(names, part)
	}
	return names
}
