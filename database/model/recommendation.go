package model

import "time"

// Recommendation is an AI-generated business suggestion stored for a
// dashboard user.
type Recommendation struct {
	Id           int       `json:"id" gorm:"primaryKey;autoIncrement"`
	UserId       string    `json:"userId" gorm:"index;not null"`
	BusinessType string    `json:"businessType"`
	Content      string    `json:"content"`
	CreatedAt    time.Time `json:"createdAt"`
}
