package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/lenshq/lens-backend/model"
	"gorm.io/gorm"
)

// GetStartups returns all startups, or the single startup owned by the user
// in the userId query parameter.
func (h *Handler) GetStartups(c *gin.Context) {
	userID := c.Query("userId")

	if userID != "" {
		var startup model.Startup
		queryResult := h.DB.Preload("Gigs").Preload("Offers").Where("user_id = ?", userID).First(&startup)
		if queryResult.RowsAffected != 1 {
			notFound(c, "Startup not found")
			return
		}
		c.JSON(http.StatusOK, startup)
		return
	}

	var startups []model.Startup
	if err := h.DB.Preload("Gigs").Preload("Offers").Find(&startups).Error; err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, startups)
}

type createStartupRequest struct {
	UserID        string `json:"userId"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	Industry      string `json:"industry"`
	Stage         string `json:"stage"`
	TeamSize      *int   `json:"teamSize"`
	Website       string `json:"website"`
	Location      string `json:"location"`
	FoundedYear   *int   `json:"foundedYear"`
	Funding       string `json:"funding"`
	TechStack     string `json:"techStack"`
	BusinessModel string `json:"businessModel"`
	TargetMarket  string `json:"targetMarket"`
}

// CreateStartup creates the single startup a user may own.
func (h *Handler) CreateStartup(c *gin.Context) {
	var req createStartupRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.UserID == "" || req.Name == "" {
		badRequest(c, "User ID and name are required")
		return
	}

	var existing model.Startup
	if h.DB.Where("user_id = ?", req.UserID).First(&existing).RowsAffected == 1 {
		badRequest(c, "Startup already exists for this user")
		return
	}

	startup := model.Startup{
		Id:            uuid.New().String(),
		UserID:        req.UserID,
		Name:          req.Name,
		Description:   req.Description,
		Industry:      req.Industry,
		Stage:         req.Stage,
		TeamSize:      req.TeamSize,
		Website:       req.Website,
		Location:      req.Location,
		FoundedYear:   req.FoundedYear,
		Funding:       req.Funding,
		TechStack:     req.TechStack,
		BusinessModel: req.BusinessModel,
		TargetMarket:  req.TargetMarket,
	}
	if err := h.DB.Create(&startup).Error; err != nil {
		internalError(c, err)
		return
	}

	c.JSON(http.StatusCreated, startup)
}

type updateStartupRequest struct {
	Name          *string `json:"name"`
	Description   *string `json:"description"`
	Industry      *string `json:"industry"`
	Stage         *string `json:"stage"`
	TeamSize      *int    `json:"teamSize"`
	Website       *string `json:"website"`
	Location      *string `json:"location"`
	FoundedYear   *int    `json:"foundedYear"`
	Funding       *string `json:"funding"`
	TechStack     *string `json:"techStack"`
	BusinessModel *string `json:"businessModel"`
	TargetMarket  *string `json:"targetMarket"`
}

// UpdateStartup applies a partial update, only fields present in the payload
// change.
func (h *Handler) UpdateStartup(c *gin.Context) {
	id := c.Param("id")

	var startup model.Startup
	if h.DB.Where("id = ?", id).First(&startup).RowsAffected != 1 {
		notFound(c, "Startup not found")
		return
	}

	var req updateStartupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid payload")
		return
	}
	if err := copier.CopyWithOption(&startup, &req, copier.Option{IgnoreEmpty: true}); err != nil {
		internalError(c, err)
		return
	}
	if err := h.DB.Save(&startup).Error; err != nil {
		internalError(c, err)
		return
	}

	full, err := h.loadStartup(startup.Id)
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, full)
}

// DeleteStartup removes the startup together with its gigs and offers.
func (h *Handler) DeleteStartup(c *gin.Context) {
	id := c.Param("id")

	var startup model.Startup
	if h.DB.Where("id = ?", id).First(&startup).RowsAffected != 1 {
		notFound(c, "Startup not found")
		return
	}

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("startup_id = ?", id).Delete(&model.Gig{}).Error; err != nil {
			return err
		}
		if err := tx.Where("startup_id = ?", id).Delete(&model.Offer{}).Error; err != nil {
			return err
		}
		return tx.Delete(&startup).Error
	})
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Startup deleted successfully"})
}

func (h *Handler) loadStartup(id string) (*model.Startup, error) {
	var startup model.Startup
	err := h.DB.Preload("Gigs").Preload("Offers").Where("id = ?", id).First(&startup).Error
	return &startup, err
}
