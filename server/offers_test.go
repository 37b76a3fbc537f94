package server

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/lenshq/lens-backend/model"
	"github.com/lenshq/lens-backend/utils"
	"github.com/stretchr/testify/require"
)

func createOfferVia(t *testing.T, router *gin.Engine, startupID string) model.Offer {
	t.Helper()
	w := performJSON(router, http.MethodPost, "/offers", map[string]interface{}{
		"startupId":   startupID,
		"type":        "PROJECT",
		"title":       "Enterprise Project",
		"description": "Custom automation work",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var offer model.Offer
	decodeBody(t, w, &offer)
	return offer
}

func TestCreateOfferValidation(t *testing.T) {
	db, _ := utils.CreateTempDB(t)
	router := newTestRouter(db)

	w := performJSON(router, http.MethodPost, "/offers", map[string]interface{}{
		"startupId": "s",
		"title":     "missing type and description",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = performJSON(router, http.MethodPost, "/offers", map[string]interface{}{
		"startupId":   "no_such_startup",
		"type":        "PROJECT",
		"title":       "Offer",
		"description": "Deal",
	})
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateOfferUnknownGig(t *testing.T) {
	db, _ := utils.CreateTempDB(t)
	router := newTestRouter(db)
	user := createTestUser(t, db, "og@example.com")
	startup := createTestStartup(t, db, user.Id)

	w := performJSON(router, http.MethodPost, "/offers", map[string]interface{}{
		"startupId":   startup.Id,
		"gigId":       "no_such_gig",
		"type":        "PROJECT",
		"title":       "Offer",
		"description": "Deal",
	})
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateOfferDefaultsToPending(t *testing.T) {
	db, _ := utils.CreateTempDB(t)
	router := newTestRouter(db)
	user := createTestUser(t, db, "op@example.com")
	startup := createTestStartup(t, db, user.Id)

	offer := createOfferVia(t, router, startup.Id)
	require.Equal(t, model.OfferStatusPending, offer.Status)
	require.Equal(t, 1, offer.Priority)
}

func TestAcceptAndDeclineOffer(t *testing.T) {
	db, _ := utils.CreateTempDB(t)
	router := newTestRouter(db)
	user := createTestUser(t, db, "oa@example.com")
	startup := createTestStartup(t, db, user.Id)
	offer := createOfferVia(t, router, startup.Id)

	w := performJSON(router, http.MethodPost, "/offers/"+offer.Id+"/accept", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var saved model.Offer
	require.NoError(t, db.Where("id = ?", offer.Id).First(&saved).Error)
	require.Equal(t, model.OfferStatusAccepted, saved.Status)

	w = performJSON(router, http.MethodPost, "/offers/"+offer.Id+"/decline", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, db.Where("id = ?", offer.Id).First(&saved).Error)
	require.Equal(t, model.OfferStatusDeclined, saved.Status)

	w = performJSON(router, http.MethodPost, "/offers/ghost/accept", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateOfferAcceptsAnyStatus(t *testing.T) {
	db, _ := utils.CreateTempDB(t)
	router := newTestRouter(db)
	user := createTestUser(t, db, "ou@example.com")
	startup := createTestStartup(t, db, user.Id)
	offer := createOfferVia(t, router, startup.Id)

	// transitions are advisory, a jump straight to IN_PROGRESS is accepted
	w := performJSON(router, http.MethodPut, "/offers/"+offer.Id, map[string]interface{}{
		"status": model.OfferStatusInProgress,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var saved model.Offer
	require.NoError(t, db.Where("id = ?", offer.Id).First(&saved).Error)
	require.Equal(t, model.OfferStatusInProgress, saved.Status)
	require.Equal(t, "Enterprise Project", saved.Title)
}

func TestDeleteOffer(t *testing.T) {
	db, _ := utils.CreateTempDB(t)
	router := newTestRouter(db)
	user := createTestUser(t, db, "od@example.com")
	startup := createTestStartup(t, db, user.Id)
	offer := createOfferVia(t, router, startup.Id)

	w := performJSON(router, http.MethodDelete, "/offers/"+offer.Id, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var count int64
	db.Model(&model.Offer{}).Count(&count)
	require.Equal(t, int64(0), count)

	w = performJSON(router, http.MethodDelete, "/offers/"+offer.Id, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}
