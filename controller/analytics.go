package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vistara-apps/tipspark-818f-17568736/logic"
)

// AnalyticsController handles HTTP requests
type AnalyticsController struct {
	analyticsLogic *logic.AnalyticsLogic
}

func NewAnalyticsController(analyticsLogic *logic.AnalyticsLogic) *AnalyticsController {
	return &AnalyticsController{analyticsLogic: analyticsLogic}
}

// Summary handles GET /creators/:id/summary?window=week|month|all
func (c *AnalyticsController) Summary(ctx *gin.Context) {
	summary, err := c.analyticsLogic.Summarize(ctx.Param("id"), ctx.Query("window"))
	if err != nil {
		abortWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, summary)
}

// TopSupporters handles GET /creators/:id/top-supporters?limit=n
func (c *AnalyticsController) TopSupporters(ctx *gin.Context) {
	limit := queryInt(ctx, "limit", 10)
	supporters, err := c.analyticsLogic.TopSupporters(ctx.Param("id"), limit)
	if err != nil {
		abortWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, supporters)
}

// Supporter handles GET /creators/:id/supporters/:supporterId
func (c *AnalyticsController) Supporter(ctx *gin.Context) {
	agg, err := c.analyticsLogic.SupporterAggregate(ctx.Param("supporterId"), ctx.Param("id"))
	if err != nil {
		abortWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, agg)
}

// RecentTips handles GET /creators/:id/recent-tips?limit=n
func (c *AnalyticsController) RecentTips(ctx *gin.Context) {
	limit := queryInt(ctx, "limit", 10)
	tips, err := c.analyticsLogic.RecentTips(ctx.Param("id"), limit)
	if err != nil {
		abortWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, tips)
}

func queryInt(ctx *gin.Context, key string, fallback int) int {
	raw := ctx.Query(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
