package model

import "time"

// Interaction types a user can take on a card. NOT_NOW and NEVER_SHOW are the
// negative ones that penalize a card's score on subsequent rankings.
const (
	InteractionAct       = "ACT"
	InteractionShare     = "SHARE"
	InteractionNotNow    = "NOT_NOW"
	InteractionNeverShow = "NEVER_SHOW"
)

/*

UserInteraction records one action a user took on one card

UserID / CardID: the (user, card) pair, many interactions may exist per pair
Type: one of the Interaction* constants, stored uppercased
SharedWith: free text recipient, only meaningful for SHARE
Notes: optional free text

Rows are append only, they are never mutated or deleted.

*/
type UserInteraction struct {
	Id         string    `gorm:"primaryKey" json:"id"`
	CreatedAt  time.Time `json:"createdAt"`
	UserID     string    `gorm:"index" json:"userId"`
	CardID     string    `json:"cardId"`
	Card       *Card     `json:"card,omitempty"`
	Type       string    `json:"type"`
	SharedWith string    `json:"sharedWith"`
	Notes      string    `json:"notes"`
}
