package dao

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/vistara-apps/tipspark-818f-17568736/models"
)

// CreatorDAO handles creator profile database operations
type CreatorDAO struct {
	db *gorm.DB
}

func NewCreatorDAO(db *gorm.DB) *CreatorDAO {
	return &CreatorDAO{db: db}
}

// GetCreator retrieves a creator profile by ID
func (d *CreatorDAO) GetCreator(creatorID string) (*models.Creator, error) {
	var creator models.Creator
	if err := d.db.Where("creator_id = ?", creatorID).First(&creator).Error; err != nil {
		return nil, err
	}
	return &creator, nil
}

// UpsertCreator creates or replaces a creator profile
func (d *CreatorDAO) UpsertCreator(creator *models.Creator) error {
	return d.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "creator_id"}},
		UpdateAll: true,
	}).Create(creator).Error
}
