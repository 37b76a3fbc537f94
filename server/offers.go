package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/lenshq/lens-backend/model"
)

// GetOffers lists offers, optionally narrowed to one startup.
func (h *Handler) GetOffers(c *gin.Context) {
	query := h.DB.Preload("Startup").Preload("Gig").Order("created_at desc")
	if startupID := c.Query("startupId"); startupID != "" {
		query = query.Where("startup_id = ?", startupID)
	}

	var offers []model.Offer
	if err := query.Find(&offers).Error; err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, offers)
}

type createOfferRequest struct {
	StartupID   string  `json:"startupId"`
	GigID       *string `json:"gigId"`
	Type        string  `json:"type"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Company     string  `json:"company"`
	Contact     string  `json:"contact"`
	Budget      string  `json:"budget"`
	Timeline    string  `json:"timeline"`
	Terms       string  `json:"terms"`
	Priority    *int    `json:"priority"`
}

// CreateOffer records an inbound business opportunity for a startup,
// optionally tied to one of its gigs.
func (h *Handler) CreateOffer(c *gin.Context) {
	var req createOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil ||
		req.StartupID == "" || req.Type == "" || req.Title == "" || req.Description == "" {
		badRequest(c, "Startup ID, type, title, and description are required")
		return
	}

	var startup model.Startup
	if h.DB.Where("id = ?", req.StartupID).First(&startup).RowsAffected != 1 {
		notFound(c, "Startup not found")
		return
	}

	if req.GigID != nil && *req.GigID != "" {
		var gig model.Gig
		if h.DB.Where("id = ?", *req.GigID).First(&gig).RowsAffected != 1 {
			notFound(c, "Gig not found")
			return
		}
	}

	priority := 1
	if req.Priority != nil {
		priority = *req.Priority
	}
	offer := model.Offer{
		Id:          uuid.New().String(),
		StartupID:   req.StartupID,
		GigID:       req.GigID,
		Type:        req.Type,
		Status:      model.OfferStatusPending,
		Title:       req.Title,
		Description: req.Description,
		Company:     req.Company,
		Contact:     req.Contact,
		Budget:      req.Budget,
		Timeline:    req.Timeline,
		Terms:       req.Terms,
		Priority:    priority,
		IsActive:    true,
	}
	if err := h.DB.Create(&offer).Error; err != nil {
		internalError(c, err)
		return
	}

	full, err := h.loadOffer(offer.Id)
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusCreated, full)
}

type updateOfferRequest struct {
	Type        *string `json:"type"`
	Status      *string `json:"status"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Company     *string `json:"company"`
	Contact     *string `json:"contact"`
	Budget      *string `json:"budget"`
	Timeline    *string `json:"timeline"`
	Terms       *string `json:"terms"`
	Priority    *int    `json:"priority"`
	IsActive    *bool   `json:"isActive"`
}

// UpdateOffer applies a partial update. Status transitions are advisory,
// any value the caller writes is accepted.
func (h *Handler) UpdateOffer(c *gin.Context) {
	id := c.Param("id")

	var offer model.Offer
	if h.DB.Where("id = ?", id).First(&offer).RowsAffected != 1 {
		notFound(c, "Offer not found")
		return
	}

	var req updateOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid payload")
		return
	}
	if err := copier.CopyWithOption(&offer, &req, copier.Option{IgnoreEmpty: true}); err != nil {
		internalError(c, err)
		return
	}
	if err := h.DB.Save(&offer).Error; err != nil {
		internalError(c, err)
		return
	}

	full, err := h.loadOffer(offer.Id)
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, full)
}

// DeleteOffer removes an offer.
func (h *Handler) DeleteOffer(c *gin.Context) {
	id := c.Param("id")

	var offer model.Offer
	if h.DB.Where("id = ?", id).First(&offer).RowsAffected != 1 {
		notFound(c, "Offer not found")
		return
	}

	if err := h.DB.Delete(&offer).Error; err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Offer deleted successfully"})
}

// AcceptOffer marks the offer accepted.
func (h *Handler) AcceptOffer(c *gin.Context) {
	h.setOfferStatus(c, model.OfferStatusAccepted, "Offer accepted successfully")
}

// DeclineOffer marks the offer declined.
func (h *Handler) DeclineOffer(c *gin.Context) {
	h.setOfferStatus(c, model.OfferStatusDeclined, "Offer declined successfully")
}

func (h *Handler) setOfferStatus(c *gin.Context, status, message string) {
	id := c.Param("id")

	var offer model.Offer
	if h.DB.Where("id = ?", id).First(&offer).RowsAffected != 1 {
		notFound(c, "Offer not found")
		return
	}

	offer.Status = status
	if err := h.DB.Save(&offer).Error; err != nil {
		internalError(c, err)
		return
	}

	full, err := h.loadOffer(offer.Id)
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": message, "offer": full})
}

func (h *Handler) loadOffer(id string) (*model.Offer, error) {
	var offer model.Offer
	err := h.DB.Preload("Startup").Preload("Gig").Where("id = ?", id).First(&offer).Error
	return &offer, err
}
