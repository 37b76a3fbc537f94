package main

import (
	"github.com/gin-gonic/gin"
	"github.com/lenshq/lens-backend/server"
)

// AddRoutes registers the full REST surface on the router.
func AddRoutes(router *gin.Engine, h *server.Handler) {
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

	admin := router.Group("/admin")
	admin.POST("/import", h.ImportData)
	admin.GET("/import", h.DownloadTemplate)
	admin.POST("/sample-data", h.SeedSampleData)
}
