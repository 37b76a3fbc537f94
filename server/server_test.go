package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/lenshq/lens-backend/model"
	"github.com/lenshq/lens-backend/utils/dotenv"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	dotenv.LoadDotEnvsInTests()
	os.Exit(m.Run())
}

// newTestRouter wires every handler the same way cmd/server does, minus the
// global middlewares that are irrelevant for handler behavior.
func newTestRouter(db *gorm.DB) *gin.Engine {
	h := NewHandler(db)
	router := gin.New()

	router.GET("/cards", h.GetCards)
	router.POST("/cards", h.RecordInteraction)
	router.GET("/digest", h.GetDigest)
	router.POST("/digest", h.UpsertDigestContent)
	router.PUT("/digest", h.MarkDigestSent)
	router.GET("/users", h.GetUser)
	router.POST("/users", h.UpsertUser)
	router.PUT("/users", h.UpdateUserSettings)
	router.GET("/startups", h.GetStartups)
	router.POST("/startups", h.CreateStartup)
	router.PUT("/startups/:id", h.UpdateStartup)
	router.DELETE("/startups/:id", h.DeleteStartup)
	router.GET("/gigs", h.GetGigs)
	router.POST("/gigs", h.CreateGig)
	router.PUT("/gigs/:id", h.UpdateGig)
	router.DELETE("/gigs/:id", h.DeleteGig)
	router.GET("/offers", h.GetOffers)
	router.POST("/offers", h.CreateOffer)
	router.PUT("/offers/:id", h.UpdateOffer)
	router.DELETE("/offers/:id", h.DeleteOffer)
	router.POST("/offers/:id/accept", h.AcceptOffer)
	router.POST("/offers/:id/decline", h.DeclineOffer)
	router.POST("/admin/import", h.ImportData)
	router.GET("/admin/import", h.DownloadTemplate)
	router.POST("/admin/sample-data", h.SeedSampleData)

	return router
}

func performJSON(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func performGET(router *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func createTestUser(t *testing.T, db *gorm.DB, email string) *model.User {
	user := &model.User{
		Id:                   uuid.New().String(),
		Email:                email,
		Name:                 "Test User",
		ExpertiseKeywords:    "database,sql",
		InterestKeywords:     "performance",
		ConnectionPreference: "deep_focus",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestCard(t *testing.T, db *gorm.DB, title, keywords string, priority int, isActive bool) *model.Card {
	card := &model.Card{
		Id:       uuid.New().String(),
		Type:     model.CardTypeProject,
		Title:    title,
		Keywords: keywords,
		Priority: priority,
		IsActive: isActive,
	}
	require.NoError(t, db.Create(card).Error)
	return card
}

func createTestStartup(t *testing.T, db *gorm.DB, userID string) *model.Startup {
	startup := &model.Startup{
		Id:     uuid.New().String(),
		UserID: userID,
		Name:   "Test Startup",
	}
	require.NoError(t, db.Create(startup).Error)
	return startup
}
