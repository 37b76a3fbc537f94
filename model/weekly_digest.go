package model

import "time"

/*

WeeklyDigest aggregates one user's shared cards for one calendar week

UserID + WeekStart: composite unique key, WeekStart is the local Sunday
	midnight of the week the digest covers
WeekEnd: WeekStart plus seven days
Content: freeform summary text editable through the digest API
IsSent / SentAt: delivery state, IsSent flips to true exactly once when the
	digest goes out
Items: the shared card snapshots collected during the week, "has-many"

Digests are created lazily, either on the first SHARE of the week or on the
first read.

*/
type WeeklyDigest struct {
	Id        string     `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
	UserID    string     `gorm:"uniqueIndex:idx_digest_user_week" json:"userId"`
	User      *User      `json:"user,omitempty"`
	WeekStart time.Time  `gorm:"uniqueIndex:idx_digest_user_week" json:"weekStart"`
	WeekEnd   time.Time  `json:"weekEnd"`
	Content   string     `json:"content"`
	IsSent    bool       `json:"isSent"`
	SentAt    *time.Time `json:"sentAt"`

	Items []WeeklyDigestItem `json:"digestItems" gorm:"foreignKey:DigestID"`
}
