package models

import "time"

type User struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Username  string    `gorm:"size:50;unique;not null" json:"username"`
	Email     string    `gorm:"size:100;unique;not null" json:"email"`
	Password  string    `gorm:"size:255;not null" json:"-"` // bcrypt hash, never serialized
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Category struct {
	ID          int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"size:100;unique;not null" json:"name"`
	Slug        string    `gorm:"size:100;unique;not null" json:"slug"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// filled by the counted listing only
	TutorialCount int64 `gorm:"->;-:migration" json:"tutorial_count,omitempty"`
}

type Tag struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"size:50;unique;not null" json:"name"`
	Slug      string    `gorm:"size:50;unique;not null" json:"slug"`
	CreatedAt time.Time `json:"created_at"`

	// filled by the counted listing only
	TutorialCount int64 `gorm:"->;-:migration" json:"tutorial_count,omitempty"`
}

type Tutorial struct {
	ID          int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Published   bool      `gorm:"default:false" json:"published"`
	Image       string    `gorm:"size:255" json:"image"`
	CategoryID  *int      `gorm:"index" json:"category_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Loaded by reference, never embedded as owned state.
	Category *Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL" json:"category,omitempty"`
	Tags     []Tag     `gorm:"-" json:"tags"`
}

// TutorialTag is the many-to-many join row between tutorials and tags.
type TutorialTag struct {
	TutorialID int       `gorm:"primaryKey" json:"tutorial_id"`
	TagID      int       `gorm:"primaryKey" json:"tag_id"`
	CreatedAt  time.Time `json:"created_at"`
}
