package pkg

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
)

var (
	ErrTxNotFound     = errors.New("tx receipt not found")
	ErrTxFailed       = errors.New("transaction failed")
	ErrSenderMismatch = errors.New("sender mismatch")
)

const rpcTimeout = 5 * time.Second

// ChainClient confirms settled transfers against an EVM JSON-RPC node.
type ChainClient struct {
	rpcURL string
}

func NewChainClient(rpcURL string) *ChainClient {
	return &ChainClient{rpcURL: rpcURL}
}

// ConfirmTransfer checks that the transaction exists, succeeded and was
// signed by expectedSender. ErrTxNotFound means the transfer may still
// be pending; the caller can retry later.
func (c *ChainClient) ConfirmTransfer(ctx context.Context, txHash, expectedSender string) error {
	client, err := ethclient.Dial(c.rpcURL)
	if err != nil {
		return fmt.Errorf("failed to connect to RPC: %w", err)
	}
	defer client.Close()

	ctx, cancel := context.WithTimeout(ctx, rpcTimeout)
	defer cancel()

	hash := common.HexToHash(txHash)

	receipt, err := client.TransactionReceipt(ctx, hash)
	if err != nil {
		// Only a genuinely absent receipt means "still pending"; a
		// failed RPC call must stay retryable for the caller.
		if errors.Is(err, ethereum.NotFound) {
			return ErrTxNotFound
		}
		return fmt.Errorf("failed to get tx receipt: %w", err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return fmt.Errorf("%w (status: %d)", ErrTxFailed, receipt.Status)
	}

	tx, _, err := client.TransactionByHash(ctx, hash)
	if err != nil {
		return fmt.Errorf("failed to get tx details: %w", err)
	}

	from, err := types.Sender(types.LatestSignerForChainID(tx.ChainId()), tx)
	if err != nil {
		return fmt.Errorf("failed to recover sender: %w", err)
	}
	if !strings.EqualFold(from.Hex(), expectedSender) {
		return fmt.Errorf("%w: tx.from=%s, expected=%s", ErrSenderMismatch, from.Hex(), expectedSender)
	}

	return nil
}
