package model

import "time"

// Service is a consulting offering shown in the public catalog, with
// titles and descriptions in both Uzbek and English.
type Service struct {
	Id            int       `json:"id" gorm:"primaryKey;autoIncrement"`
	TitleUz       string    `json:"titleUz" gorm:"not null"`
	TitleEn       string    `json:"titleEn" gorm:"not null"`
	DescriptionUz string    `json:"descriptionUz"`
	DescriptionEn string    `json:"descriptionEn"`
	Category      string    `json:"category" gorm:"index"`
	PriceFrom     int64     `json:"priceFrom"`
	ImageURL      string    `json:"imageUrl"`
	Featured      bool      `json:"featured"`
	Active        *bool     `json:"active"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// IsActive reports whether the service is visible on the public site.
func (s *Service) IsActive() bool {
	return s.Active != nil && *s.Active
}

// PortfolioItem is a completed project shown on the public portfolio page.
type PortfolioItem struct {
	Id         int       `json:"id" gorm:"primaryKey;autoIncrement"`
	TitleUz    string    `json:"titleUz" gorm:"not null"`
	TitleEn    string    `json:"titleEn" gorm:"not null"`
	SummaryUz  string    `json:"summaryUz"`
	SummaryEn  string    `json:"summaryEn"`
	ProjectURL string    `json:"projectUrl"`
	ImageURL   string    `json:"imageUrl"`
	SortOrder  int       `json:"sortOrder" gorm:"default:0"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
