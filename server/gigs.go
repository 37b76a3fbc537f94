package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/lenshq/lens-backend/model"
	"gorm.io/gorm"
)

// GetGigs lists gigs, optionally narrowed to one startup.
func (h *Handler) GetGigs(c *gin.Context) {
	query := h.DB.Preload("Startup").Preload("Offers").Order("created_at desc")
	if startupID := c.Query("startupId"); startupID != "" {
		query = query.Where("startup_id = ?", startupID)
	}

	var gigs []model.Gig
	if err := query.Find(&gigs).Error; err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, gigs)
}

type createGigRequest struct {
	StartupID    string `json:"startupId"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Type         string `json:"type"`
	Budget       string `json:"budget"`
	Duration     string `json:"duration"`
	Requirements string `json:"requirements"`
	Deliverables string `json:"deliverables"`
	Skills       string `json:"skills"`
	Experience   string `json:"experience"`
	Location     string `json:"location"`
	Priority     *int   `json:"priority"`
}

// CreateGig publishes a new service offering for a startup.
func (h *Handler) CreateGig(c *gin.Context) {
	var req createGigRequest
	if err := c.ShouldBindJSON(&req); err != nil ||
		req.StartupID == "" || req.Title == "" || req.Description == "" || req.Type == "" {
		badRequest(c, "Startup ID, title, description, and type are required")
		return
	}

	var startup model.Startup
	if h.DB.Where("id = ?", req.StartupID).First(&startup).RowsAffected != 1 {
		notFound(c, "Startup not found")
		return
	}

	priority := 1
	if req.Priority != nil {
		priority = *req.Priority
	}
	gig := model.Gig{
		Id:           uuid.New().String(),
		StartupID:    req.StartupID,
		Title:        req.Title,
		Description:  req.Description,
		Type:         req.Type,
		Status:       model.GigStatusActive,
		Budget:       req.Budget,
		Duration:     req.Duration,
		Requirements: req.Requirements,
		Deliverables: req.Deliverables,
		Skills:       req.Skills,
		Experience:   req.Experience,
		Location:     req.Location,
		Priority:     priority,
		IsActive:     true,
	}
	if err := h.DB.Create(&gig).Error; err != nil {
		internalError(c, err)
		return
	}

	full, err := h.loadGig(gig.Id)
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusCreated, full)
}

type updateGigRequest struct {
	Title        *string `json:"title"`
	Description  *string `json:"description"`
	Type         *string `json:"type"`
	Status       *string `json:"status"`
	Budget       *string `json:"budget"`
	Duration     *string `json:"duration"`
	Requirements *string `json:"requirements"`
	Deliverables *string `json:"deliverables"`
	Skills       *string `json:"skills"`
	Experience   *string `json:"experience"`
	Location     *string `json:"location"`
	Priority     *int    `json:"priority"`
	IsActive     *bool   `json:"isActive"`
}

// UpdateGig applies a partial update to a gig.
func (h *Handler) UpdateGig(c *gin.Context) {
	id := c.Param("id")

	var gig model.Gig
	if h.DB.Where("id = ?", id).First(&gig).RowsAffected != 1 {
		notFound(c, "Gig not found")
		return
	}

	var req updateGigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid payload")
		return
	}
	if err := copier.CopyWithOption(&gig, &req, copier.Option{IgnoreEmpty: true}); err != nil {
		internalError(c, err)
		return
	}
	if err := h.DB.Save(&gig).Error; err != nil {
		internalError(c, err)
		return
	}

	full, err := h.loadGig(gig.Id)
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, full)
}

// DeleteGig removes a gig. Offers that pointed at it stay but lose the
// reference.
func (h *Handler) DeleteGig(c *gin.Context) {
	id := c.Param("id")

	var gig model.Gig
	if h.DB.Where("id = ?", id).First(&gig).RowsAffected != 1 {
		notFound(c, "Gig not found")
		return
	}

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Offer{}).Where("gig_id = ?", id).Update("gig_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&gig).Error
	})
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Gig deleted successfully"})
}

func (h *Handler) loadGig(id string) (*model.Gig, error) {
	var gig model.Gig
	err := h.DB.Preload("Startup").Preload("Offers").Where("id = ?", id).First(&gig).Error
	return &gig, err
}
