package models

import "time"

// Creator is a profile row keyed by the creator's wallet address.
// The ledger only references CreatorID; the profile fields are
// presentation data and may be absent for creators who receive tips.
type Creator struct {
	CreatorID       string    `gorm:"primaryKey;size:128" json:"creator_id"`
	DisplayName     string    `gorm:"size:128" json:"display_name"`
	ProfileImageURL string    `json:"profile_image_url"`
	Bio             string    `json:"bio"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
