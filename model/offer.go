package model

import "time"

// Offer statuses. The backend does not enforce an ordering between them, the
// PENDING -> INTERESTED/DECLINED -> IN_PROGRESS -> ACCEPTED flow is advisory.
const (
	OfferStatusPending    = "PENDING"
	OfferStatusInterested = "INTERESTED"
	OfferStatusDeclined   = "DECLINED"
	OfferStatusInProgress = "IN_PROGRESS"
	OfferStatusAccepted   = "ACCEPTED"
)

/*

Offer is an inbound business opportunity directed at a startup

StartupID: receiving startup, "belongs-to" relation
GigID: optional gig the offer responds to, nullable "belongs-to" relation
Type: enumerated by convention, e.g. "PROJECT", "PARTNERSHIP", "INVESTMENT",
	"ACQUISITION"
Status: one of the OfferStatus* constants, defaults to PENDING
Company / Contact / Budget / Timeline / Terms: free text deal facts
Priority: importance assigned by the sender, defaults to 1
IsActive: soft delete flag

*/
type Offer struct {
	Id          string    `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	StartupID   string    `gorm:"index" json:"startupId"`
	Startup     *Startup  `json:"startup,omitempty"`
	GigID       *string   `json:"gigId"`
	Gig         *Gig      `json:"gig,omitempty"`
	Type        string    `json:"type"`
	Status      string    `gorm:"default:PENDING" json:"status"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Company     string    `json:"company"`
	Contact     string    `json:"contact"`
	Budget      string    `json:"budget"`
	Timeline    string    `json:"timeline"`
	Terms       string    `json:"terms"`
	Priority    int       `gorm:"default:1" json:"priority"`
	IsActive    bool      `gorm:"default:true" json:"isActive"`
}
