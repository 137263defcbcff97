package controller

import (
	"errors"
	"net/http"

	"github.com/evolvo-uz/evolvo/database/model"
	"github.com/evolvo-uz/evolvo/web/service"

	"github.com/gin-gonic/gin"
)

// DashboardController serves the customer dashboard: profile upserts and
// AI-generated business recommendations. Identity comes from an external
// provider, so the dashboard works with upserted user ids.
type DashboardController struct {
	userService           *service.UserService
	recommendationService *service.RecommendationService
}

func NewDashboardController(g *gin.RouterGroup, userService *service.UserService,
	recommendationService *service.RecommendationService,
) *DashboardController {
	a := &DashboardController{
		userService:           userService,
		recommendationService: recommendationService,
	}

	users := g.Group("/users")
	users.POST("/upsert", a.upsertUser)
	users.GET("/:id/recommendations", a.listRecommendations)
	users.POST("/:id/recommendations", a.generateRecommendation)

	return a
}

func (a *DashboardController) upsertUser(c *gin.Context) {
	var user model.User
	if err := c.ShouldBindJSON(&user); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": I18nWeb(c, "auth.invalidFormData")})
		return
	}
	// Role and credentials are never writable through the public
	// dashboard path.
	user.Role = ""
	user.PasswordHash = ""
	if err := a.userService.Upsert(&user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": I18nWeb(c, "fail")})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"id":    user.Id,
		"email": user.Email,
	})
}

func (a *DashboardController) listRecommendations(c *gin.Context) {
	recs, err := a.recommendationService.GetForUser(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": I18nWeb(c, "fail")})
		return
	}
	c.JSON(http.StatusOK, recs)
}

type recommendationRequest struct {
	BusinessType string `json:"businessType"`
}

func (a *DashboardController) generateRecommendation(c *gin.Context) {
	var req recommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.BusinessType == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": I18nWeb(c, "recommendations.emptyBusinessType")})
		return
	}

	rec, err := a.recommendationService.Generate(c.Request.Context(), c.Param("id"), req.BusinessType)
	if err != nil {
		if errors.Is(err, service.ErrAIUnavailable) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"message": I18nWeb(c, "recommendations.unavailable")})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": I18nWeb(c, "fail")})
		return
	}
	c.JSON(http.StatusCreated, rec)
}
