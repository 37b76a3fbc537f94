package server

import (
	"net/http"
	"strings"
	"testing"

	"github.com/lenshq/lens-backend/model"
	"github.com/lenshq/lens-backend/utils"
	"github.com/stretchr/testify/require"
)

func TestGetCardsMissingUserID(t *testing.T) {
	db, _ := utils.CreateTempDB(t)
	router := newTestRouter(db)

	w := performGET(router, "/cards")
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetCardsUnknownUser(t *testing.T) {
	db, _ := utils.CreateTempDB(t)
	router := newTestRouter(db)

	w := performGET(router, "/cards?userId=nope")
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetCardsReturnsRankedActiveCards(t *testing.T) {
	db, _ := utils.CreateTempDB(t)
	router := newTestRouter(db)

	user := createTestUser(t, db, "cards@example.com")
	for i := 0; i < 6; i++ {
		createTestCard(t, db, "active", "database", 3, true)
	}
	createTestCard(t, db, "inactive", "database", 5, false)

	w := performGET(router, "/cards?userId="+user.Id)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Cards []model.Card `json:"cards"`
	}
	decodeBody(t, w, &resp)
	require.Len(t, resp.Cards, 5)
	for _, card := range resp.Cards {
		require.True(t, card.IsActive)
	}
	// internal score never leaves the ranking package
	require.False(t, strings.Contains(w.Body.String(), `"score"`))
}

func TestRecordInteractionMissingFields(t *testing.T) {
	db, _ := utils.CreateTempDB(t)
	router := newTestRouter(db)

	w := performJSON(router, http.MethodPost, "/cards", map[string]string{"userId": "u"})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRecordInteractionUppercasesAction(t *testing.T) {
	db, _ := utils.CreateTempDB(t)
	router := newTestRouter(db)

	user := createTestUser(t, db, "act@example.com")
	card := createTestCard(t, db, "card", "database", 3, true)

	w := performJSON(router, http.MethodPost, "/cards", map[string]string{
		"userId": user.Id,
		"cardId": card.Id,
		"action": "act",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var interaction model.UserInteraction
	require.NoError(t, db.Where("user_id = ?", user.Id).First(&interaction).Error)
	require.Equal(t, model.InteractionAct, interaction.Type)
	require.Equal(t, card.Id, interaction.CardID)
}

func TestShareCreatesDigestAndItem(t *testing.T) {
	db, _ := utils.CreateTempDB(t)
	router := newTestRouter(db)

	user := createTestUser(t, db, "share@example.com")
	card := createTestCard(t, db, "Shared Card", "database", 3, true)

	w := performJSON(router, http.MethodPost, "/cards", map[string]string{
		"userId":     user.Id,
		"cardId":     card.Id,
		"action":     "share",
		"sharedWith": "teammate@example.com",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var digests []model.WeeklyDigest
	require.NoError(t, db.Preload("Items").Find(&digests).Error)
	require.Len(t, digests, 1)
	require.Len(t, digests[0].Items, 1)
	require.Equal(t, "Shared Card", digests[0].Items[0].CardTitle)
	require.Equal(t, model.CardTypeProject, digests[0].Items[0].CardType)
	require.Equal(t, model.InteractionShare, digests[0].Items[0].Interaction)
	require.Equal(t, "teammate@example.com", digests[0].Items[0].SharedWith)

	// a second share in the same week reuses the digest and appends
	other := createTestCard(t, db, "Another Card", "sql", 2, true)
	w = performJSON(router, http.MethodPost, "/cards", map[string]string{
		"userId": user.Id,
		"cardId": other.Id,
		"action": "SHARE",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var after []model.WeeklyDigest
	require.NoError(t, db.Preload("Items").Find(&after).Error)
	require.Len(t, after, 1)
	require.Equal(t, digests[0].Id, after[0].Id)
	require.Len(t, after[0].Items, 2)
}

func TestShareWithUnknownCardSkipsDigestItem(t *testing.T) {
	db, _ := utils.CreateTempDB(t)
	router := newTestRouter(db)

	user := createTestUser(t, db, "ghost@example.com")

	w := performJSON(router, http.MethodPost, "/cards", map[string]string{
		"userId": user.Id,
		"cardId": "no_such_card",
		"action": "share",
	})
	// the interaction is still recorded and no error surfaces
	require.Equal(t, http.StatusOK, w.Code)

	var interactions int64
	db.Model(&model.UserInteraction{}).Count(&interactions)
	require.Equal(t, int64(1), interactions)

	var items int64
	db.Model(&model.WeeklyDigestItem{}).Count(&items)
	require.Equal(t, int64(0), items)
}
