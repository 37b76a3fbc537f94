package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/lenshq/lens-backend/model"
)

// weekSpan returns the local-time Sunday midnight starting the week that
// contains now, plus the exclusive end seven days later.
func weekSpan(now time.Time) (time.Time, time.Time) {
	start := time.Date(now.Year(), now.Month(), now.Day()-int(now.Weekday()), 0, 0, 0, 0, now.Location())
	return start, start.AddDate(0, 0, 7)
}

// findOrCreateWeeklyDigest is the idempotent lookup for the (user, week) row.
// Two concurrent shares in the same week may race on the unique key, so a
// failed create falls back to re-reading the row the other writer won with.
func (h *Handler) findOrCreateWeeklyDigest(userID string, weekStart, weekEnd time.Time) (*model.WeeklyDigest, error) {
	var digest model.WeeklyDigest
	queryResult := h.DB.Where("user_id = ? AND week_start = ?", userID, weekStart).First(&digest)
	if queryResult.RowsAffected == 1 {
		return &digest, nil
	}

	digest = model.WeeklyDigest{
		Id:        uuid.New().String(),
		UserID:    userID,
		WeekStart: weekStart,
		WeekEnd:   weekEnd,
	}
	if createErr := h.DB.Create(&digest).Error; createErr != nil {
		queryResult = h.DB.Where("user_id = ? AND week_start = ?", userID, weekStart).First(&digest)
		if queryResult.RowsAffected != 1 {
			return nil, createErr
		}
	}
	return &digest, nil
}

func (h *Handler) loadDigestWithItems(id string) (*model.WeeklyDigest, error) {
	var digest model.WeeklyDigest
	err := h.DB.Preload("Items.Card").Preload("User").Where("id = ?", id).First(&digest).Error
	return &digest, err
}

// GetDigest returns the current week's digest for a user, creating an empty
// one on first read.
func (h *Handler) GetDigest(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		badRequest(c, "User ID required")
		return
	}

	weekStart, weekEnd := weekSpan(time.Now())
	digest, err := h.findOrCreateWeeklyDigest(userID, weekStart, weekEnd)
	if err != nil {
		internalError(c, err)
		return
	}

	full, err := h.loadDigestWithItems(digest.Id)
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"digest": full})
}

type upsertDigestRequest struct {
	UserID  string `json:"userId"`
	Content string `json:"content"`
}

// UpsertDigestContent writes the freeform content of the current week's
// digest, creating the digest when it does not exist yet.
func (h *Handler) UpsertDigestContent(c *gin.Context) {
	var req upsertDigestRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.UserID == "" || req.Content == "" {
		badRequest(c, "Missing required fields")
		return
	}

	weekStart, weekEnd := weekSpan(time.Now())
	digest, err := h.findOrCreateWeeklyDigest(req.UserID, weekStart, weekEnd)
	if err != nil {
		internalError(c, err)
		return
	}

	if err := h.DB.Model(digest).Update("content", req.Content).Error; err != nil {
		internalError(c, err)
		return
	}

	full, err := h.loadDigestWithItems(digest.Id)
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"digest": full})
}

type markDigestSentRequest struct {
	DigestID string `json:"digestId"`
	IsSent   bool   `json:"isSent"`
}

// MarkDigestSent flips the delivery flag and stamps (or clears) the sent
// time.
func (h *Handler) MarkDigestSent(c *gin.Context) {
	var req markDigestSentRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.DigestID == "" {
		badRequest(c, "Digest ID required")
		return
	}

	var digest model.WeeklyDigest
	queryResult := h.DB.Where("id = ?", req.DigestID).First(&digest)
	if queryResult.RowsAffected != 1 {
		notFound(c, "Digest not found")
		return
	}

	digest.IsSent = req.IsSent
	if req.IsSent {
		now := time.Now()
		digest.SentAt = &now
	} else {
		digest.SentAt = nil
	}
	if err := h.DB.Save(&digest).Error; err != nil {
		internalError(c, err)
		return
	}

	full, err := h.loadDigestWithItems(digest.Id)
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"digest": full})
}
