package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/lenshq/lens-backend/model"
)

// GetUser fetches a user by email with their profile and full interaction
// history.
func (h *Handler) GetUser(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		badRequest(c, "Email required")
		return
	}

	var user model.User
	queryResult := h.DB.Preload("Profile").Preload("Interactions.Card").Where("email = ?", email).First(&user)
	if queryResult.RowsAffected != 1 {
		notFound(c, "User not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

type upsertUserRequest struct {
	Email                string `json:"email"`
	Name                 string `json:"name"`
	ExpertiseKeywords    string `json:"expertiseKeywords"`
	InterestKeywords     string `json:"interestKeywords"`
	ConnectionPreference string `json:"connectionPreference"`
}

// UpsertUser creates a user keyed by email, or refreshes the matching
// keyword profile when the email is already known.
func (h *Handler) UpsertUser(c *gin.Context) {
	var req upsertUserRequest
	if err := c.ShouldBindJSON(&req); err != nil ||
		req.Email == "" || req.ExpertiseKeywords == "" || req.InterestKeywords == "" || req.ConnectionPreference == "" {
		badRequest(c, "Missing required fields")
		return
	}

	var user model.User
	queryResult := h.DB.Preload("Profile").Where("email = ?", req.Email).First(&user)
	if queryResult.RowsAffected == 1 {
		user.Name = req.Name
		user.ExpertiseKeywords = req.ExpertiseKeywords
		user.InterestKeywords = req.InterestKeywords
		user.ConnectionPreference = req.ConnectionPreference
		if err := h.DB.Save(&user).Error; err != nil {
			internalError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": user})
		return
	}

	user = model.User{
		Id:                   uuid.New().String(),
		Email:                req.Email,
		Name:                 req.Name,
		ExpertiseKeywords:    req.ExpertiseKeywords,
		InterestKeywords:     req.InterestKeywords,
		ConnectionPreference: req.ConnectionPreference,
	}
	if err := h.DB.Create(&user).Error; err != nil {
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

type updateUserSettingsRequest struct {
	UserID              string  `json:"userId"`
	SendDigestToManager *bool   `json:"sendDigestToManager"`
	ManagerEmail        *string `json:"managerEmail"`
}

// UpdateUserSettings adjusts the manager digest routing fields.
func (h *Handler) UpdateUserSettings(c *gin.Context) {
	var req updateUserSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.UserID == "" {
		badRequest(c, "User ID required")
		return
	}

	var user model.User
	queryResult := h.DB.Where("id = ?", req.UserID).First(&user)
	if queryResult.RowsAffected != 1 {
		notFound(c, "User not found")
		return
	}

	if req.SendDigestToManager != nil {
		user.SendDigestToManager = *req.SendDigestToManager
	}
	if req.ManagerEmail != nil {
		user.ManagerEmail = *req.ManagerEmail
	}
	if err := h.DB.Save(&user).Error; err != nil {
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}
