package logic

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vistara-apps/tipspark-818f-17568736/models"
)

// TipStore is the ledger persistence contract implemented by dao.TipDAO.
// RecordTip must apply the tip insert and the supporter aggregate delta
// atomically and be idempotent on the transaction hash; the bool
// reports whether a new tip was created.
type TipStore interface {
	RecordTip(tip *models.Tip) (*models.Tip, bool, error)
	GetTipsByCreator(creatorID string) ([]models.Tip, error)
	GetTipsBySender(senderID string) ([]models.Tip, error)
}

// TransferVerifier confirms a settled on-chain transfer before it is
// admitted to the ledger. Implemented by pkg.ChainClient.
type TransferVerifier interface {
	ConfirmTransfer(ctx context.Context, txHash, expectedSender string) error
}

// TipNotifier fans a freshly recorded tip out to live listeners.
// Implemented by pkg.TipHub.
type TipNotifier interface {
	BroadcastTip(tip *models.Tip)
}

// RecordTipInput carries one confirmed transfer into the ledger.
type RecordTipInput struct {
	SenderID        string
	CreatorID       string
	Amount          decimal.Decimal
	Message         string
	Timestamp       time.Time
	TransactionHash string
}

// LedgerLogic handles tip recording business logic
type LedgerLogic struct {
	tips     TipStore
	verifier TransferVerifier // nil skips on-chain confirmation
	notifier TipNotifier      // nil skips live notifications
	currency string
}

func NewLedgerLogic(tips TipStore, verifier TransferVerifier, notifier TipNotifier, currency string) *LedgerLogic {
	return &LedgerLogic{
		tips:     tips,
		verifier: verifier,
		notifier: notifier,
		currency: currency,
	}
}

// RecordTip validates the transfer, computes the service fee and
// persists the tip together with its supporter aggregate update.
// Repeated calls with the same transaction hash return the tip recorded
// by the first call and do not touch the aggregate again.
func (l *LedgerLogic) RecordTip(ctx context.Context, in RecordTipInput) (*models.Tip, error) {
	if in.SenderID == "" {
		return nil, fmt.Errorf("%w: sender id is required", ErrInvalidInput)
	}
	if in.CreatorID == "" {
		return nil, fmt.Errorf("%w: creator id is required", ErrInvalidInput)
	}
	if in.TransactionHash == "" {
		return nil, fmt.Errorf("%w: transaction hash is required", ErrInvalidInput)
	}
	if !in.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: tip amount must be positive, got %s", ErrInvalidInput, in.Amount)
	}

	if l.verifier != nil {
		if err := l.verifier.ConfirmTransfer(ctx, in.TransactionHash, in.SenderID); err != nil {
			return nil, err
		}
	}

	fee, err := ComputeFee(in.Amount)
	if err != nil {
		return nil, err
	}

	timestamp := in.Timestamp
	if timestamp.IsZero() {
		timestamp = time.Now().UTC()
	}

	tip := &models.Tip{
		SenderID:        in.SenderID,
		CreatorID:       in.CreatorID,
		Amount:          in.Amount,
		FeeAmount:       fee,
		Currency:        l.currency,
		Message:         in.Message,
		Timestamp:       timestamp,
		TransactionHash: in.TransactionHash,
	}

	recorded, created, err := l.tips.RecordTip(tip)
	if err != nil {
		return nil, fmt.Errorf("record tip: %w", err)
	}

	if created {
		log.Printf("Recorded tip %s: %s %s from %s to %s",
			recorded.ID, recorded.Amount, recorded.Currency, recorded.SenderID, recorded.CreatorID)
		if l.notifier != nil {
			l.notifier.BroadcastTip(recorded)
		}
	} else {
		log.Printf("Duplicate tip for tx %s, returning existing record %s", in.TransactionHash, recorded.ID)
	}

	return recorded, nil
}

// GetTipsByCreator retrieves a creator's received tips, newest first
func (l *LedgerLogic) GetTipsByCreator(creatorID string) ([]models.Tip, error) {
	if creatorID == "" {
		return nil, fmt.Errorf("%w: creator id is required", ErrInvalidInput)
	}
	return l.tips.GetTipsByCreator(creatorID)
}

// GetTipsBySender retrieves a supporter's sent tips, newest first
func (l *LedgerLogic) GetTipsBySender(senderID string) ([]models.Tip, error) {
	if senderID == "" {
		return nil, fmt.Errorf("%w: sender id is required", ErrInvalidInput)
	}
	return l.tips.GetTipsBySender(senderID)
}
