package controller

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/shopspring/decimal"

	"github.com/vistara-apps/tipspark-818f-17568736/logic"
	"github.com/vistara-apps/tipspark-818f-17568736/pkg"
)

// TipController handles HTTP requests
type TipController struct {
	ledgerLogic *logic.LedgerLogic
	hub         *pkg.TipHub
	upgrader    websocket.Upgrader
}

func NewTipController(ledgerLogic *logic.LedgerLogic, hub *pkg.TipHub) *TipController {
	return &TipController{
		ledgerLogic: ledgerLogic,
		hub:         hub,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true // overlay widgets connect cross-origin
			},
		},
	}
}

// RecordTip handles POST /tips
func (c *TipController) RecordTip(ctx *gin.Context) {
	type Request struct {
		SenderID        string `json:"sender_id" binding:"required"`
		CreatorID       string `json:"creator_id" binding:"required"`
		Amount          string `json:"amount" binding:"required"`
		Message         string `json:"message"`
		Timestamp       string `json:"timestamp"`
		TransactionHash string `json:"transaction_hash" binding:"required"`
	}
	var req Request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid amount: " + err.Error()})
		return
	}

	var timestamp time.Time
	if req.Timestamp != "" {
		timestamp, err = time.Parse(time.RFC3339, req.Timestamp)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid timestamp: " + err.Error()})
			return
		}
	}

	tip, err := c.ledgerLogic.RecordTip(ctx.Request.Context(), logic.RecordTipInput{
		SenderID:        req.SenderID,
		CreatorID:       req.CreatorID,
		Amount:          amount,
		Message:         req.Message,
		Timestamp:       timestamp,
		TransactionHash: req.TransactionHash,
	})
	if err != nil {
		abortWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, tip)
}

// ListTips handles GET /tips?creator_id=... or ?sender_id=...
func (c *TipController) ListTips(ctx *gin.Context) {
	creatorID := ctx.Query("creator_id")
	senderID := ctx.Query("sender_id")

	switch {
	case creatorID != "":
		tips, err := c.ledgerLogic.GetTipsByCreator(creatorID)
		if err != nil {
			abortWithError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, tips)
	case senderID != "":
		tips, err := c.ledgerLogic.GetTipsBySender(senderID)
		if err != nil {
			abortWithError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, tips)
	default:
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "creator_id or sender_id is required"})
	}
}

// WatchTips handles GET /ws/tips/:id, streaming recorded tips for a
// creator over a websocket until the peer disconnects.
func (c *TipController) WatchTips(ctx *gin.Context) {
	creatorID := ctx.Param("id")
	if creatorID == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "creator id is required"})
		return
	}

	conn, err := c.upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		log.Printf("WS upgrade failed: %v", err)
		return
	}

	c.hub.Register(creatorID, conn)
	defer c.hub.Unregister(creatorID, conn)

	// Drain control frames; returning unregisters the session.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
