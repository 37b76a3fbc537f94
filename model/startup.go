package model

import "time"

/*

Startup is the company profile behind the startup dashboard

UserID: owning user, one startup per user
Name: required display name
TeamSize / FoundedYear: optional numeric facts, nullable
Gigs: service offerings published by the startup, "has-many"
Offers: inbound business opportunities, "has-many"

Deleting a startup cascades to its gigs and offers.

*/
type Startup struct {
	Id            string    `gorm:"primaryKey" json:"id"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
	UserID        string    `gorm:"uniqueIndex" json:"userId"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Industry      string    `json:"industry"`
	Stage         string    `json:"stage"`
	TeamSize      *int      `json:"teamSize"`
	Website       string    `json:"website"`
	Location      string    `json:"location"`
	FoundedYear   *int      `json:"foundedYear"`
	Funding       string    `json:"funding"`
	TechStack     string    `json:"techStack"`
	BusinessModel string    `json:"businessModel"`
	TargetMarket  string    `json:"targetMarket"`

	Gigs   []Gig   `json:"gigs"`
	Offers []Offer `json:"offers"`
}
