package model

import "time"

/*

WeeklyDigestItem is one shared card inside a WeeklyDigest

DigestID: owning digest
CardID / Card: the shared card, "belongs-to" relation
CardType / CardTitle: denormalized snapshot taken at share time so the digest
	stays readable even if the card is later edited or deactivated
Interaction: the interaction type that produced the item, always "SHARE"
SharedWith: free text recipient copied from the interaction

Items are immutable once created.

*/
type WeeklyDigestItem struct {
	Id          string    `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time `json:"createdAt"`
	DigestID    string    `gorm:"index" json:"digestId"`
	CardID      string    `json:"cardId"`
	Card        *Card     `json:"card,omitempty"`
	CardType    string    `json:"cardType"`
	CardTitle   string    `json:"cardTitle"`
	Interaction string    `json:"interaction"`
	SharedWith  string    `json:"sharedWith"`
}
