package model

import "time"

/*

User is an employee profile that opportunity cards are matched against

Id: primary key
Email: unique identity used by the profile API
Name: display name
ExpertiseKeywords: comma separated tags for what the user is good at
InterestKeywords: comma separated tags for what the user wants to see more of
ConnectionPreference: how the user prefers to contribute, e.g. "deep_focus",
	"collaboration", "ad_hoc_advisory"
SendDigestToManager:
ManagerEmail:
	weekly digest routing, both optional
Profile: extended title/team/bio information, "has-one" relation
Interactions: every action the user ever took on a card, "has-many" relation

*/
type User struct {
	Id                   string    `gorm:"primaryKey" json:"id"`
	CreatedAt            time.Time `json:"createdAt"`
	UpdatedAt            time.Time `json:"updatedAt"`
	Email                string    `gorm:"uniqueIndex" json:"email"`
	Name                 string    `json:"name"`
	ExpertiseKeywords    string    `json:"expertiseKeywords"`
	InterestKeywords     string    `json:"interestKeywords"`
	ConnectionPreference string    `json:"connectionPreference"`
	SendDigestToManager  bool      `json:"sendDigestToManager"`
	ManagerEmail         string    `json:"managerEmail"`

	Profile      *Profile          `json:"profile,omitempty"`
	Interactions []UserInteraction `json:"interactions,omitempty"`
}
