package model

import "time"

// BlogPost is a bilingual article. Only published posts are visible on
// the public site; drafts stay admin-only.
type BlogPost struct {
	Id            int        `json:"id" gorm:"primaryKey;autoIncrement"`
	Slug          string     `json:"slug" gorm:"uniqueIndex;not null"`
	TitleUz       string     `json:"titleUz" gorm:"not null"`
	TitleEn       string     `json:"titleEn" gorm:"not null"`
	ContentUz     string     `json:"contentUz"`
	ContentEn     string     `json:"contentEn"`
	CoverImageURL string     `json:"coverImageUrl"`
	Published     bool       `json:"published" gorm:"index"`
	PublishedAt   *time.Time `json:"publishedAt"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}
