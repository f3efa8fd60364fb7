package logic

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/vistara-apps/tipspark-818f-17568736/models"
)

// SupporterStore is the aggregate read contract implemented by
// dao.SupporterDAO.
type SupporterStore interface {
	TopSupporters(creatorID string, limit int) ([]models.Supporter, error)
	GetSupporter(supporterID, creatorID string) (*models.Supporter, error)
}

// Summary holds the per-creator analytics rollup. AverageTip divides
// the total by unique supporters, not by tip count: a supporter tipping
// ten times counts once in the denominator. That is the intended
// creator-economics metric.
type Summary struct {
	TotalTips     decimal.Decimal `json:"total_tips"`
	UniqueTippers int             `json:"unique_tippers"`
	AverageTip    decimal.Decimal `json:"average_tip"`
	TipCount      int             `json:"tip_count"`
}

// AnalyticsLogic computes read-side statistics over the tip ledger.
// It holds no state of its own; every call recomputes from the ledger
// snapshot at call time.
type AnalyticsLogic struct {
	tips       TipStore
	supporters SupporterStore
	now        func() time.Time
}

func NewAnalyticsLogic(tips TipStore, supporters SupporterStore) *AnalyticsLogic {
	return &AnalyticsLogic{
		tips:       tips,
		supporters: supporters,
		now:        time.Now,
	}
}

// Summarize computes the rollup for a creator, optionally restricted to
// tips inside the given time window ("week", "month", "all" or empty).
// A creator with no tips yields a zero-valued summary, not an error.
func (l *AnalyticsLogic) Summarize(creatorID, window string) (*Summary, error) {
	if creatorID == "" {
		return nil, fmt.Errorf("%w: creator id is required", ErrInvalidInput)
	}
	cutoff, bounded, err := windowCutoff(window, l.now())
	if err != nil {
		return nil, err
	}

	tips, err := l.tips.GetTipsByCreator(creatorID)
	if err != nil {
		return nil, err
	}

	total := decimal.Zero
	seen := make(map[string]struct{})
	count := 0
	for _, tip := range tips {
		if bounded && tip.Timestamp.Before(cutoff) {
			continue
		}
		total = total.Add(tip.Amount)
		seen[tip.SenderID] = struct{}{}
		count++
	}

	average := decimal.Zero
	if len(seen) > 0 {
		average = total.Div(decimal.NewFromInt(int64(len(seen)))).Round(2)
	}

	return &Summary{
		TotalTips:     total,
		UniqueTippers: len(seen),
		AverageTip:    average,
		TipCount:      count,
	}, nil
}

// RecentTips returns the n most recent tips for a creator
func (l *AnalyticsLogic) RecentTips(creatorID string, n int) ([]models.Tip, error) {
	if creatorID == "" {
		return nil, fmt.Errorf("%w: creator id is required", ErrInvalidInput)
	}
	if n <= 0 {
		return []models.Tip{}, nil
	}
	tips, err := l.tips.GetTipsByCreator(creatorID)
	if err != nil {
		return nil, err
	}
	if len(tips) > n {
		tips = tips[:n]
	}
	return tips, nil
}

// SupporterAggregate returns the running aggregate for one
// (supporter, creator) pair. A pair with no recorded tips yields a
// zero-valued aggregate, not an error.
func (l *AnalyticsLogic) SupporterAggregate(supporterID, creatorID string) (*models.Supporter, error) {
	if supporterID == "" {
		return nil, fmt.Errorf("%w: supporter id is required", ErrInvalidInput)
	}
	if creatorID == "" {
		return nil, fmt.Errorf("%w: creator id is required", ErrInvalidInput)
	}
	agg, err := l.supporters.GetSupporter(supporterID, creatorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &models.Supporter{
				SupporterID: supporterID,
				CreatorID:   creatorID,
				TotalTipped: decimal.Zero,
			}, nil
		}
		return nil, err
	}
	return agg, nil
}

// TopSupporters returns a creator's supporters ranked by total tipped
func (l *AnalyticsLogic) TopSupporters(creatorID string, limit int) ([]models.Supporter, error) {
	if creatorID == "" {
		return nil, fmt.Errorf("%w: creator id is required", ErrInvalidInput)
	}
	if limit <= 0 {
		limit = 10
	}
	return l.supporters.TopSupporters(creatorID, limit)
}
