package model

import "time"

// Topic is a curated tag imported through the admin CSV pipeline, kept as a
// lookup table for keyword curation.
type Topic struct {
	Id          string    `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	Name        string    `gorm:"uniqueIndex" json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	IsActive    bool      `gorm:"default:true" json:"isActive"`
}
