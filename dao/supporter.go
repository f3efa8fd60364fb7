package dao

import (
	"gorm.io/gorm"

	"github.com/vistara-apps/tipspark-818f-17568736/models"
)

// SupporterDAO handles supporter aggregate queries
type SupporterDAO struct {
	db *gorm.DB
}

func NewSupporterDAO(db *gorm.DB) *SupporterDAO {
	return &SupporterDAO{db: db}
}

// TopSupporters retrieves a creator's supporter aggregates ordered by
// total tipped descending. Equal totals rank the earlier last tip
// first, so the ordering is stable across calls.
func (d *SupporterDAO) TopSupporters(creatorID string, limit int) ([]models.Supporter, error) {
	var supporters []models.Supporter
	if err := d.db.Where("creator_id = ?", creatorID).
		Order("total_tipped DESC, last_tipped_at ASC").
		Limit(limit).
		Find(&supporters).Error; err != nil {
		return nil, err
	}
	return supporters, nil
}

// GetSupporter retrieves the aggregate for one (supporter, creator) pair
func (d *SupporterDAO) GetSupporter(supporterID, creatorID string) (*models.Supporter, error) {
	var supporter models.Supporter
	if err := d.db.Where("supporter_id = ? AND creator_id = ?", supporterID, creatorID).
		First(&supporter).Error; err != nil {
		return nil, err
	}
	return &supporter, nil
}
