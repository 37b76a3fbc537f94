package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lenshq/lens-backend/model"
)

// SeedSampleData creates a demo user with a startup, gigs and offers so a
// fresh environment has something to click through. Re-posting is a no-op
// for rows that already exist.
func (h *Handler) SeedSampleData(c *gin.Context) {
	teamSize := 15
	foundedYear := 2021

	user := model.User{
		Id:                   "user_1",
		Email:                "startup@techflow.io",
		Name:                 "TechFlow Founder",
		ExpertiseKeywords:    "AI,workflow,automation,SaaS",
		InterestKeywords:     "startups,technology,investment",
		ConnectionPreference: "collaboration",
	}
	if err := h.DB.Where("id = ?", user.Id).FirstOrCreate(&user).Error; err != nil {
		internalError(c, err)
		return
	}

	startup := model.Startup{
		Id:            "startup_1",
		UserID:        user.Id,
		Name:          "TechFlow Inc.",
		Description:   "AI-powered workflow automation platform for modern teams",
		Industry:      "SaaS",
		Stage:         "Series A",
		TeamSize:      &teamSize,
		Website:       "https://techflow.io",
		Location:      "San Francisco, CA",
		FoundedYear:   &foundedYear,
		Funding:       "$5M",
		TechStack:     "React, Node.js, Python, PostgreSQL, AWS",
		BusinessModel: "B2B SaaS",
		TargetMarket:  "Mid-market enterprises",
	}
	if err := h.DB.Where("user_id = ?", startup.UserID).FirstOrCreate(&startup).Error; err != nil {
		internalError(c, err)
		return
	}

	gigs := []model.Gig{
		{
			Id:           "gig_1",
			StartupID:    startup.Id,
			Title:        "Frontend Development for Dashboard",
			Description:  "Need experienced React developer to build new analytics dashboard",
			Type:         "DEVELOPMENT",
			Status:       model.GigStatusActive,
			Budget:       "$3000-5000",
			Duration:     "2-3 weeks",
			Requirements: "Strong React, TypeScript, and chart library experience",
			Deliverables: "Fully functional analytics dashboard with responsive design",
			Skills:       "React, TypeScript, D3.js, CSS",
			Experience:   "3+ years",
			Location:     "Remote",
			Priority:     4,
			IsActive:     true,
		},
		{
			Id:          "gig_2",
			StartupID:   startup.Id,
			Title:       "UI/UX Design for Mobile App",
			Description: "Looking for talented designer to redesign mobile app interface",
			Type:        "DESIGN",
			Status:      model.GigStatusActive,
			Budget:      "$2000-3500",
			Duration:    "1-2 weeks",
			Skills:      "Figma, Mobile Design, UI/UX",
			Experience:  "2+ years",
			Location:    "Remote",
			Priority:    3,
			IsActive:    true,
		},
	}
	for i := range gigs {
		if err := h.DB.Where("id = ?", gigs[i].Id).FirstOrCreate(&gigs[i]).Error; err != nil {
			internalError(c, err)
			return
		}
	}

	offers := []model.Offer{
		{
			Id:          "offer_1",
			StartupID:   startup.Id,
			Type:        "PROJECT",
			Status:      model.OfferStatusPending,
			Title:       "Enterprise Client Project",
			Description: "Large enterprise client needs custom workflow automation solution",
			Company:     "Fortune 500 Company",
			Contact:     "john@enterprise.com",
			Budget:      "$50,000-75,000",
			Timeline:    "3-4 months",
			Terms:       "Fixed price project with milestone payments",
			Priority:    5,
			IsActive:    true,
		},
		{
			Id:          "offer_2",
			StartupID:   startup.Id,
			Type:        "PARTNERSHIP",
			Status:      model.OfferStatusInterested,
			Title:       "Strategic Partnership Opportunity",
			Description: "Leading CRM platform wants to integrate with our solution",
			Company:     "CRM Corp",
			Contact:     "partnerships@crmcorp.com",
			Budget:      "Revenue sharing",
			Timeline:    "Ongoing",
			Terms:       "50/50 revenue sharing on joint customers",
			Priority:    4,
			IsActive:    true,
		},
	}
	for i := range offers {
		if err := h.DB.Where("id = ?", offers[i].Id).FirstOrCreate(&offers[i]).Error; err != nil {
			internalError(c, err)
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    user,
		"startup": startup,
		"gigs":    gigs,
		"offers":  offers,
	})
}
