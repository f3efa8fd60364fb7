package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vistara-apps/tipspark-818f-17568736/dao"
	"github.com/vistara-apps/tipspark-818f-17568736/models"
)

// CreatorController handles HTTP requests
type CreatorController struct {
	creatorDAO *dao.CreatorDAO
}

func NewCreatorController(creatorDAO *dao.CreatorDAO) *CreatorController {
	return &CreatorController{creatorDAO: creatorDAO}
}

// GetCreator handles GET /creators/:id
func (c *CreatorController) GetCreator(ctx *gin.Context) {
	creator, err := c.creatorDAO.GetCreator(ctx.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "creator not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, creator)
}

// UpsertCreator handles PUT /creators/:id
func (c *CreatorController) UpsertCreator(ctx *gin.Context) {
	type Request struct {
		DisplayName     string `json:"display_name"`
		ProfileImageURL string `json:"profile_image_url"`
		Bio             string `json:"bio"`
	}
	var req Request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	creator := &models.Creator{
		CreatorID:       ctx.Param("id"),
		DisplayName:     req.DisplayName,
		ProfileImageURL: req.ProfileImageURL,
		Bio:             req.Bio,
		UpdatedAt:       time.Now().UTC(),
	}
	if err := c.creatorDAO.UpsertCreator(creator); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, creator)
}
