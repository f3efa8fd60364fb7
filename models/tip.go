package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Tip is a single recorded payment from a supporter to a creator.
// Rows are append-only: a tip is never mutated or deleted once written.
type Tip struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	SenderID        string          `gorm:"index;size:128;not null" json:"sender_id"`
	CreatorID       string          `gorm:"index;size:128;not null" json:"creator_id"`
	Amount          decimal.Decimal `gorm:"type:numeric(20,6);not null" json:"amount"`
	FeeAmount       decimal.Decimal `gorm:"type:numeric(20,6);not null" json:"fee_amount"` // computed once at creation, audit only
	Currency        string          `gorm:"size:16;default:'USDC'" json:"currency"`
	Message         string          `json:"message"`
	Timestamp       time.Time       `gorm:"index;not null" json:"timestamp"` // client-supplied, not guaranteed monotonic
	TransactionHash string          `gorm:"uniqueIndex;size:80;not null" json:"transaction_hash"`
	CreatedAt       time.Time       `json:"created_at"`
}
