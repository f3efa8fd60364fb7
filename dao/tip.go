package dao

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/vistara-apps/tipspark-818f-17568736/models"
)

// TipDAO handles tip ledger database operations
type TipDAO struct {
	db *gorm.DB
}

func NewTipDAO(db *gorm.DB) *TipDAO {
	return &TipDAO{db: db}
}

// RecordTip persists a tip and applies the supporter aggregate delta in
// one transaction. It is idempotent on TransactionHash: a repeated hash
// returns the previously stored tip and leaves the aggregate untouched.
// The returned bool reports whether a new row was created.
//
// The aggregate update is a single conditional upsert with SQL-side
// increments, so concurrent writers for the same (sender, creator) pair
// serialize on the row and no update is lost. A plain read-then-upsert
// would drop increments under concurrency.
func (d *TipDAO) RecordTip(tip *models.Tip) (*models.Tip, bool, error) {
	var existing models.Tip
	err := d.db.Where("transaction_hash = ?", tip.TransactionHash).First(&existing).Error
	if err == nil {
		return &existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	if tip.ID == uuid.Nil {
		tip.ID = uuid.New()
	}

	err = d.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(tip).Error; err != nil {
			return err
		}

		supporter := models.Supporter{
			SupporterID:  tip.SenderID,
			CreatorID:    tip.CreatorID,
			TotalTipped:  tip.Amount,
			TipCount:     1,
			LastTippedAt: tip.Timestamp,
		}
		return tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "supporter_id"}, {Name: "creator_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"total_tipped":   gorm.Expr("supporters.total_tipped + excluded.total_tipped"),
				"tip_count":      gorm.Expr("supporters.tip_count + 1"),
				"last_tipped_at": gorm.Expr("GREATEST(supporters.last_tipped_at, excluded.last_tipped_at)"),
			}),
		}).Create(&supporter).Error
	})
	if err != nil {
		// Lost a race against a concurrent insert of the same hash; the
		// unique index aborted our transaction, so return the winner.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			if ferr := d.db.Where("transaction_hash = ?", tip.TransactionHash).First(&existing).Error; ferr == nil {
				return &existing, false, nil
			}
		}
		return nil, false, err
	}

	return tip, true, nil
}

// GetTipsByCreator retrieves all tips received by a creator, newest
// first. Equal timestamps keep insertion order.
func (d *TipDAO) GetTipsByCreator(creatorID string) ([]models.Tip, error) {
	var tips []models.Tip
	if err := d.db.Where("creator_id = ?", creatorID).
		Order("timestamp DESC, created_at ASC").
		Find(&tips).Error; err != nil {
		return nil, err
	}
	return tips, nil
}

// GetTipsBySender retrieves all tips sent by a supporter, newest first.
func (d *TipDAO) GetTipsBySender(senderID string) ([]models.Tip, error) {
	var tips []models.Tip
	if err := d.db.Where("sender_id = ?", senderID).
		Order("timestamp DESC, created_at ASC").
		Find(&tips).Error; err != nil {
		return nil, err
	}
	return tips, nil
}
