package model

import "time"

// Profile carries the optional title/team/bio extension of a User, populated
// mostly by the people CSV import.
type Profile struct {
	Id        string    `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	UserID    string    `gorm:"uniqueIndex" json:"userId"`
	Title     string    `json:"title"`
	Team      string    `json:"team"`
	Bio       string    `json:"bio"`
}
