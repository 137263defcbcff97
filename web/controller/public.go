package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/evolvo-uz/evolvo/database"
	"github.com/evolvo-uz/evolvo/database/model"
	"github.com/evolvo-uz/evolvo/web/service"

	"github.com/gin-gonic/gin"
)

// PublicController serves unauthenticated browsing and the lead-capture
// order flow.
type PublicController struct {
	catalogService   *service.CatalogService
	blogService      *service.BlogService
	portfolioService *service.PortfolioService
	orderService     *service.OrderService
}

func NewPublicController(g *gin.RouterGroup, catalogService *service.CatalogService, blogService *service.BlogService,
	portfolioService *service.PortfolioService, orderService *service.OrderService,
) *PublicController {
	a := &PublicController{
		catalogService:   catalogService,
		blogService:      blogService,
		portfolioService: portfolioService,
		orderService:     orderService,
	}

	g.GET("/services", a.listServices)
	g.GET("/services/:id", a.getService)
	g.GET("/blog", a.listPosts)
	g.GET("/blog/:slug", a.getPost)
	g.GET("/portfolio", a.listPortfolio)
	g.POST("/orders", a.createOrder)

	return a
}

func (a *PublicController) listServices(c *gin.Context) {
	services, err := a.catalogService.GetActiveServices()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": I18nWeb(c, "fail")})
		return
	}
	c.JSON(http.StatusOK, services)
}

func (a *PublicController) getService(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": I18nWeb(c, "catalog.notFound")})
		return
	}
	svc, err := a.catalogService.GetService(id)
	if err != nil || !svc.IsActive() {
		c.JSON(http.StatusNotFound, gin.H{"message": I18nWeb(c, "catalog.notFound")})
		return
	}
	c.JSON(http.StatusOK, svc)
}

func (a *PublicController) listPosts(c *gin.Context) {
	posts, err := a.blogService.GetPublishedPosts()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": I18nWeb(c, "fail")})
		return
	}
	c.JSON(http.StatusOK, posts)
}

func (a *PublicController) getPost(c *gin.Context) {
	post, err := a.blogService.GetPostBySlug(c.Param("slug"))
	if err != nil {
		if database.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"message": I18nWeb(c, "blog.notFound")})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": I18nWeb(c, "fail")})
		return
	}
	c.JSON(http.StatusOK, post)
}

func (a *PublicController) listPortfolio(c *gin.Context) {
	items, err := a.portfolioService.GetItems()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": I18nWeb(c, "fail")})
		return
	}
	c.JSON(http.StatusOK, items)
}

func (a *PublicController) createOrder(c *gin.Context) {
	var order model.Order
	if err := c.ShouldBindJSON(&order); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": I18nWeb(c, "auth.invalidFormData")})
		return
	}
	if err := a.orderService.CreateOrder(&order); err != nil {
		if errors.Is(err, service.ErrMissingContact) {
			c.JSON(http.StatusBadRequest, gin.H{"message": I18nWeb(c, "orders.missingContact")})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": I18nWeb(c, "fail")})
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":   I18nWeb(c, "orders.created"),
		"reference": order.Reference,
	})
}
