package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/lenshq/lens-backend/model"
	"github.com/lenshq/lens-backend/ranking"
	Logger "github.com/lenshq/lens-backend/utils/log"
)

// GetCards returns the top ranked active cards for a user.
func (h *Handler) GetCards(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		badRequest(c, "User ID required")
		return
	}

	cards, err := ranking.TopCardsForUser(h.DB, userID)
	if err == ranking.ErrUserNotFound {
		notFound(c, "User not found")
		return
	}
	if err != nil {
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"cards": cards})
}

type recordInteractionRequest struct {
	UserID     string `json:"userId"`
	CardID     string `json:"cardId"`
	Action     string `json:"action"`
	SharedWith string `json:"sharedWith"`
	Notes      string `json:"notes"`
}

// RecordInteraction persists one user action on a card. A share additionally
// lands a snapshot item in the user's current weekly digest.
func (h *Handler) RecordInteraction(c *gin.Context) {
	var req recordInteractionRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.UserID == "" || req.CardID == "" || req.Action == "" {
		badRequest(c, "Missing required fields")
		return
	}

	interaction := model.UserInteraction{
		Id:         uuid.New().String(),
		UserID:     req.UserID,
		CardID:     req.CardID,
		Type:       strings.ToUpper(req.Action),
		SharedWith: req.SharedWith,
		Notes:      req.Notes,
	}
	if err := h.DB.Create(&interaction).Error; err != nil {
		internalError(c, err)
		return
	}

	if strings.EqualFold(req.Action, "share") {
		if err := h.appendToWeeklyDigest(&interaction); err != nil {
			internalError(c, err)
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "interaction": interaction})
}

// appendToWeeklyDigest finds or creates the digest covering the current week
// and snapshots the shared card into it. An unknown card id skips the item
// without surfacing an error, the interaction row already exists either way.
func (h *Handler) appendToWeeklyDigest(interaction *model.UserInteraction) error {
	weekStart, weekEnd := weekSpan(time.Now())

	digest, err := h.findOrCreateWeeklyDigest(interaction.UserID, weekStart, weekEnd)
	if err != nil {
		return err
	}

	var card model.Card
	queryResult := h.DB.Where("id = ?", interaction.CardID).First(&card)
	if queryResult.RowsAffected != 1 {
		Logger.Log.Warn("shared card not found, skipping digest item: ", interaction.CardID)
		return nil
	}

	item := model.WeeklyDigestItem{
		Id:          uuid.New().String(),
		DigestID:    digest.Id,
		CardID:      card.Id,
		CardType:    card.Type,
		CardTitle:   card.Title,
		Interaction: model.InteractionShare,
		SharedWith:  interaction.SharedWith,
	}
	return h.DB.Create(&item).Error
}
