package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Supporter is the derived running aggregate for one (supporter, creator)
// pair. TotalTipped, TipCount and LastTippedAt must always equal the
// sum/count/max over the committed tips for the pair; updates happen in
// the same transaction as the tip insert.
type Supporter struct {
	SupporterID  string          `gorm:"primaryKey;size:128" json:"supporter_id"`
	CreatorID    string          `gorm:"primaryKey;size:128;index" json:"creator_id"`
	TotalTipped  decimal.Decimal `gorm:"type:numeric(20,6);not null;default:0" json:"total_tipped"`
	TipCount     int64           `gorm:"not null;default:0" json:"tip_count"`
	LastTippedAt time.Time       `gorm:"not null" json:"last_tipped_at"`
}
