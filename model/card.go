package model

import "time"

// Card types. A card is the single recommendable unit shown to a user.
const (
	CardTypeProject    = "PROJECT"
	CardTypeInsight    = "INSIGHT"
	CardTypeConnection = "CONNECTION"
	CardTypeNudge      = "NUDGE"
)

/*

Card is one recommendable opportunity surfaced to users by the ranking service

Id: primary key
Type: one of the CardType* constants
Title / Description / Content: display copy
Reason: human readable justification for why this card exists
Keywords: comma separated tags matched against user keyword lists
Source: where the card came from, e.g. "csv_import"
SourceID: provenance identifier within the source
Priority: author assigned importance, 1 to 5
IsActive: soft delete flag, only active cards are eligible for ranking

*/
type Card struct {
	Id          string    `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	Type        string    `json:"type"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Content     string    `json:"content"`
	Reason      string    `json:"reason"`
	Keywords    string    `json:"keywords"`
	Source      string    `json:"source"`
	SourceID    string    `json:"sourceId"`
	Priority    int       `json:"priority"`
	IsActive    bool      `gorm:"default:true" json:"isActive"`
}
