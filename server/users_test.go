package server

import (
	"net/http"
	"testing"

	"github.com/lenshq/lens-backend/model"
	"github.com/lenshq/lens-backend/utils"
	"github.com/stretchr/testify/require"
)

func TestGetUserValidation(t *testing.T) {
	db, _ := utils.CreateTempDB(t)
	router := newTestRouter(db)

	w := performGET(router, "/users")
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = performGET(router, "/users?email=missing@example.com")
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpsertUserCreatesThenUpdates(t *testing.T) {
	db, _ := utils.CreateTempDB(t)
	router := newTestRouter(db)

	w := performJSON(router, http.MethodPost, "/users", map[string]string{
		"email":                "new@example.com",
		"name":                 "New User",
		"expertiseKeywords":    "go,backend",
		"interestKeywords":     "distributed systems",
		"connectionPreference": "collaboration",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		User model.User `json:"user"`
	}
	decodeBody(t, w, &resp)
	require.NotEmpty(t, resp.User.Id)
	require.Equal(t, "go,backend", resp.User.ExpertiseKeywords)

	// same email updates the keyword profile in place
	w = performJSON(router, http.MethodPost, "/users", map[string]string{
		"email":                "new@example.com",
		"name":                 "Renamed User",
		"expertiseKeywords":    "go,backend,sql",
		"interestKeywords":     "distributed systems",
		"connectionPreference": "deep_focus",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var updated struct {
		User model.User `json:"user"`
	}
	decodeBody(t, w, &updated)
	require.Equal(t, resp.User.Id, updated.User.Id)
	require.Equal(t, "Renamed User", updated.User.Name)
	require.Equal(t, "deep_focus", updated.User.ConnectionPreference)

	var count int64
	db.Model(&model.User{}).Count(&count)
	require.Equal(t, int64(1), count)
}

func TestUpsertUserMissingFields(t *testing.T) {
	db, _ := utils.CreateTempDB(t)
	router := newTestRouter(db)

	w := performJSON(router, http.MethodPost, "/users", map[string]string{
		"email": "incomplete@example.com",
		"name":  "No Keywords",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetUserIncludesInteractions(t *testing.T) {
	db, _ := utils.CreateTempDB(t)
	router := newTestRouter(db)

	user := createTestUser(t, db, "history@example.com")
	card := createTestCard(t, db, "card", "database", 3, true)
	performJSON(router, http.MethodPost, "/cards", map[string]string{
		"userId": user.Id,
		"cardId": card.Id,
		"action": "act",
	})

	w := performGET(router, "/users?email="+user.Email)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		User model.User `json:"user"`
	}
	decodeBody(t, w, &resp)
	require.Len(t, resp.User.Interactions, 1)
	require.NotNil(t, resp.User.Interactions[0].Card)
	require.Equal(t, card.Id, resp.User.Interactions[0].Card.Id)
}

func TestUpdateUserSettings(t *testing.T) {
	db, _ := utils.CreateTempDB(t)
	router := newTestRouter(db)
	user := createTestUser(t, db, "settings@example.com")

	w := performJSON(router, http.MethodPut, "/users", map[string]interface{}{
		"userId":              user.Id,
		"sendDigestToManager": true,
		"managerEmail":        "boss@example.com",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var saved model.User
	require.NoError(t, db.Where("id = ?", user.Id).First(&saved).Error)
	require.True(t, saved.SendDigestToManager)
	require.Equal(t, "boss@example.com", saved.ManagerEmail)

	w = performJSON(router, http.MethodPut, "/users", map[string]interface{}{})
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = performJSON(router, http.MethodPut, "/users", map[string]interface{}{"userId": "nope"})
	require.Equal(t, http.StatusNotFound, w.Code)
}
