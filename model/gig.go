package model

import "time"

// Gig statuses. Transitions are advisory, any value may be written.
const (
	GigStatusActive = "ACTIVE"
	GigStatusPaused = "PAUSED"
	GigStatusClosed = "CLOSED"
)

/*

Gig is a service offering a startup publishes when it needs external help

StartupID: owning startup, "belongs-to" relation
Type: enumerated by convention, e.g. "DEVELOPMENT", "DESIGN", "MARKETING"
Status: one of the GigStatus* constants, defaults to ACTIVE
Budget / Duration / Requirements / Deliverables / Skills / Experience /
Location: free text facts shown to candidates
Priority: author assigned importance, defaults to 1
IsActive: soft delete flag

*/
type Gig struct {
	Id           string    `gorm:"primaryKey" json:"id"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
	StartupID    string    `gorm:"index" json:"startupId"`
	Startup      *Startup  `json:"startup,omitempty"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Type         string    `json:"type"`
	Status       string    `gorm:"default:ACTIVE" json:"status"`
	Budget       string    `json:"budget"`
	Duration     string    `json:"duration"`
	Requirements string    `json:"requirements"`
	Deliverables string    `json:"deliverables"`
	Skills       string    `json:"skills"`
	Experience   string    `json:"experience"`
	Location     string    `json:"location"`
	Priority     int       `gorm:"default:1" json:"priority"`
	IsActive     bool      `gorm:"default:true" json:"isActive"`

	Offers []Offer `json:"offers"`
}
