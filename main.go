package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/vistara-apps/tipspark-818f-17568736/config"
	"github.com/vistara-apps/tipspark-818f-17568736/controller"
	"github.com/vistara-apps/tipspark-818f-17568736/dao"
	"github.com/vistara-apps/tipspark-818f-17568736/logic"
	"github.com/vistara-apps/tipspark-818f-17568736/models"
	"github.com/vistara-apps/tipspark-818f-17568736/pkg"
)

func main() {
	// Initialize config
	if len(os.Args) < 2 {
		log.Fatal("Usage: go run main.go <config.yaml>")
	}
	configFile := os.Args[1]
	if err := config.LoadConfig(configFile); err != nil {
		log.Fatalf("Failed to load config from %s: %v", configFile, err)
	}

	// Initialize database. TranslateError lets the duplicate-hash race
	// in TipDAO.RecordTip surface as gorm.ErrDuplicatedKey.
	db, err := gorm.Open(postgres.Open(config.GlobalConfig.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := db.AutoMigrate(&models.Creator{}, &models.Tip{}, &models.Supporter{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// Optional on-chain transfer confirmation
	var verifier logic.TransferVerifier
	if config.GlobalConfig.Chain.RPCURL != "" {
		verifier = pkg.NewChainClient(config.GlobalConfig.Chain.RPCURL)
		log.Printf("On-chain confirmation enabled via %s", config.GlobalConfig.Chain.RPCURL)
	}

	// Live tip notifications
	hub := pkg.NewTipHub()

	// Initialize DAOs
	creatorDAO := dao.NewCreatorDAO(db)
	tipDAO := dao.NewTipDAO(db)
	supporterDAO := dao.NewSupporterDAO(db)

	// Initialize Logics
	ledgerLogic := logic.NewLedgerLogic(tipDAO, verifier, hub, config.GlobalConfig.Ledger.Currency)
	analyticsLogic := logic.NewAnalyticsLogic(tipDAO, supporterDAO)

	// Initialize Controllers
	creatorCtrl := controller.NewCreatorController(creatorDAO)
	tipCtrl := controller.NewTipController(ledgerLogic, hub)
	analyticsCtrl := controller.NewAnalyticsController(analyticsLogic)

	// Setup Gin router
	r := gin.Default()
	r.POST("/tips", tipCtrl.RecordTip)
	r.GET("/tips", tipCtrl.ListTips)
	r.GET("/creators/:id", creatorCtrl.GetCreator)
	r.PUT("/creators/:id", creatorCtrl.UpsertCreator)
	r.GET("/creators/:id/summary", analyticsCtrl.Summary)
	r.GET("/creators/:id/top-supporters", analyticsCtrl.TopSupporters)
	r.GET("/creators/:id/supporters/:supporterId", analyticsCtrl.Supporter)
	r.GET("/creators/:id/recent-tips", analyticsCtrl.RecentTips)
	r.GET("/ws/tips/:id", tipCtrl.WatchTips)

	// Run server
	if err := r.Run(fmt.Sprintf(":%d", config.GlobalConfig.Server.Port)); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
