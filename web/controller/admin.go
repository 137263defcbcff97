package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/evolvo-uz/evolvo/database"
	"github.com/evolvo-uz/evolvo/database/model"
	"github.com/evolvo-uz/evolvo/web/middleware"
	"github.com/evolvo-uz/evolvo/web/service"
	"github.com/evolvo-uz/evolvo/web/unsplash"

	"github.com/gin-gonic/gin"
)

// AdminController is the back-office: catalog, orders, clients, blog and
// portfolio management plus system status and image search.
type AdminController struct {
	catalogService   *service.CatalogService
	orderService     *service.OrderService
	clientService    *service.ClientService
	blogService      *service.BlogService
	portfolioService *service.PortfolioService
	statusService    *service.StatusService
	unsplashClient   *unsplash.Client
}

func NewAdminController(g *gin.RouterGroup, authService *service.AuthService, userService *service.UserService,
	catalogService *service.CatalogService, orderService *service.OrderService, clientService *service.ClientService,
	blogService *service.BlogService, portfolioService *service.PortfolioService,
	unsplashClient *unsplash.Client, secureCookie bool,
) *AdminController {
	a := &AdminController{
		catalogService:   catalogService,
		orderService:     orderService,
		clientService:    clientService,
		blogService:      blogService,
		portfolioService: portfolioService,
		statusService:    &service.StatusService{},
		unsplashClient:   unsplashClient,
	}

	admin := g.Group("/admin")
	admin.Use(middleware.AdminRequired(authService, userService, secureCookie))
	{
		admin.GET("/services", a.listServices)
		admin.POST("/services", a.createService)
		admin.PUT("/services/:id", a.updateService)
		admin.DELETE("/services/:id", a.deleteService)

		admin.GET("/orders", a.listOrders)
		admin.PUT("/orders/:id/status", a.updateOrderStatus)
		admin.DELETE("/orders/:id", a.deleteOrder)

		admin.GET("/clients", a.listClients)
		admin.GET("/clients/:id", a.getClient)
		admin.POST("/clients", a.createClient)
		admin.PUT("/clients/:id", a.updateClient)
		admin.DELETE("/clients/:id", a.deleteClient)

		admin.GET("/blog", a.listPosts)
		admin.POST("/blog", a.createPost)
		admin.PUT("/blog/:id", a.updatePost)
		admin.DELETE("/blog/:id", a.deletePost)

		admin.GET("/portfolio", a.listPortfolio)
		admin.GET("/portfolio/:id", a.getPortfolioItem)
		admin.POST("/portfolio", a.createPortfolioItem)
		admin.PUT("/portfolio/:id", a.updatePortfolioItem)
		admin.DELETE("/portfolio/:id", a.deletePortfolioItem)

		admin.GET("/status", a.status)
		admin.GET("/images/search", a.searchImages)
	}

	return a
}

func pathId(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		pureJsonMsg(c, http.StatusBadRequest, false, I18nWeb(c, "auth.invalidFormData"))
		return 0, false
	}
	return id, true
}

func (a *AdminController) listServices(c *gin.Context) {
	services, err := a.catalogService.GetAllServices()
	jsonObj(c, services, err)
}

func (a *AdminController) createService(c *gin.Context) {
	var svc model.Service
	if err := c.ShouldBindJSON(&svc); err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, I18nWeb(c, "auth.invalidFormData"))
		return
	}
	err := a.catalogService.AddService(&svc)
	jsonMsgObj(c, I18nWeb(c, "success"), &svc, err)
}

func (a *AdminController) updateService(c *gin.Context) {
	id, ok := pathId(c)
	if !ok {
		return
	}
	var svc model.Service
	if err := c.ShouldBindJSON(&svc); err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, I18nWeb(c, "auth.invalidFormData"))
		return
	}
	svc.Id = id
	err := a.catalogService.UpdateService(&svc)
	jsonMsgObj(c, I18nWeb(c, "success"), &svc, err)
}

func (a *AdminController) deleteService(c *gin.Context) {
	id, ok := pathId(c)
	if !ok {
		return
	}
	jsonMsg(c, I18nWeb(c, "success"), a.catalogService.DeleteService(id))
}

func (a *AdminController) listOrders(c *gin.Context) {
	orders, err := a.orderService.GetOrders(c.Query("status"))
	if errors.Is(err, service.ErrBadStatus) {
		pureJsonMsg(c, http.StatusBadRequest, false, I18nWeb(c, "orders.badStatus"))
		return
	}
	jsonObj(c, orders, err)
}

type orderStatusForm struct {
	Status string `json:"status"`
}

func (a *AdminController) updateOrderStatus(c *gin.Context) {
	id, ok := pathId(c)
	if !ok {
		return
	}
	var form orderStatusForm
	if err := c.ShouldBindJSON(&form); err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, I18nWeb(c, "auth.invalidFormData"))
		return
	}
	err := a.orderService.UpdateStatus(id, form.Status)
	if errors.Is(err, service.ErrBadStatus) {
		pureJsonMsg(c, http.StatusBadRequest, false, I18nWeb(c, "orders.badStatus"))
		return
	}
	jsonMsg(c, I18nWeb(c, "success"), err)
}

func (a *AdminController) deleteOrder(c *gin.Context) {
	id, ok := pathId(c)
	if !ok {
		return
	}
	jsonMsg(c, I18nWeb(c, "success"), a.orderService.DeleteOrder(id))
}

func (a *AdminController) listClients(c *gin.Context) {
	clients, err := a.clientService.GetClients()
	jsonObj(c, clients, err)
}

func (a *AdminController) getClient(c *gin.Context) {
	id, ok := pathId(c)
	if !ok {
		return
	}
	client, err := a.clientService.GetClient(id)
	if database.IsNotFound(err) {
		pureJsonMsg(c, http.StatusNotFound, false, I18nWeb(c, "clients.notFound"))
		return
	}
	jsonObj(c, client, err)
}

func (a *AdminController) createClient(c *gin.Context) {
	var client model.Client
	if err := c.ShouldBindJSON(&client); err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, I18nWeb(c, "auth.invalidFormData"))
		return
	}
	err := a.clientService.AddClient(&client)
	jsonMsgObj(c, I18nWeb(c, "success"), &client, err)
}

func (a *AdminController) updateClient(c *gin.Context) {
	id, ok := pathId(c)
	if !ok {
		return
	}
	var client model.Client
	if err := c.ShouldBindJSON(&client); err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, I18nWeb(c, "auth.invalidFormData"))
		return
	}
	client.Id = id
	err := a.clientService.UpdateClient(&client)
	jsonMsgObj(c, I18nWeb(c, "success"), &client, err)
}

func (a *AdminController) deleteClient(c *gin.Context) {
	id, ok := pathId(c)
	if !ok {
		return
	}
	jsonMsg(c, I18nWeb(c, "success"), a.clientService.DeleteClient(id))
}

func (a *AdminController) listPosts(c *gin.Context) {
	posts, err := a.blogService.GetAllPosts()
	jsonObj(c, posts, err)
}

func (a *AdminController) createPost(c *gin.Context) {
	var post model.BlogPost
	if err := c.ShouldBindJSON(&post); err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, I18nWeb(c, "auth.invalidFormData"))
		return
	}
	err := a.blogService.AddPost(&post)
	if errors.Is(err, service.ErrSlugTaken) {
		pureJsonMsg(c, http.StatusConflict, false, I18nWeb(c, "blog.slugTaken"))
		return
	}
	jsonMsgObj(c, I18nWeb(c, "success"), &post, err)
}

func (a *AdminController) updatePost(c *gin.Context) {
	id, ok := pathId(c)
	if !ok {
		return
	}
	var post model.BlogPost
	if err := c.ShouldBindJSON(&post); err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, I18nWeb(c, "auth.invalidFormData"))
		return
	}
	post.Id = id
	err := a.blogService.UpdatePost(&post)
	jsonMsgObj(c, I18nWeb(c, "success"), &post, err)
}

func (a *AdminController) deletePost(c *gin.Context) {
	id, ok := pathId(c)
	if !ok {
		return
	}
	jsonMsg(c, I18nWeb(c, "success"), a.blogService.DeletePost(id))
}

func (a *AdminController) listPortfolio(c *gin.Context) {
	items, err := a.portfolioService.GetItems()
	jsonObj(c, items, err)
}

func (a *AdminController) getPortfolioItem(c *gin.Context) {
	id, ok := pathId(c)
	if !ok {
		return
	}
	item, err := a.portfolioService.GetItem(id)
	if database.IsNotFound(err) {
		pureJsonMsg(c, http.StatusNotFound, false, I18nWeb(c, "portfolio.notFound"))
		return
	}
	jsonObj(c, item, err)
}

func (a *AdminController) createPortfolioItem(c *gin.Context) {
	var item model.PortfolioItem
	if err := c.ShouldBindJSON(&item); err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, I18nWeb(c, "auth.invalidFormData"))
		return
	}
	err := a.portfolioService.AddItem(&item)
	jsonMsgObj(c, I18nWeb(c, "success"), &item, err)
}

func (a *AdminController) updatePortfolioItem(c *gin.Context) {
	id, ok := pathId(c)
	if !ok {
		return
	}
	var item model.PortfolioItem
	if err := c.ShouldBindJSON(&item); err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, I18nWeb(c, "auth.invalidFormData"))
		return
	}
	item.Id = id
	err := a.portfolioService.UpdateItem(&item)
	jsonMsgObj(c, I18nWeb(c, "success"), &item, err)
}

func (a *AdminController) deletePortfolioItem(c *gin.Context) {
	id, ok := pathId(c)
	if !ok {
		return
	}
	jsonMsg(c, I18nWeb(c, "success"), a.portfolioService.DeleteItem(id))
}

func (a *AdminController) status(c *gin.Context) {
	jsonObj(c, a.statusService.GetStatus(), nil)
}

func (a *AdminController) searchImages(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		pureJsonMsg(c, http.StatusBadRequest, false, I18nWeb(c, "images.emptyQuery"))
		return
	}
	perPage, _ := strconv.Atoi(c.Query("perPage"))
	images, err := a.unsplashClient.Search(c.Request.Context(), query, perPage)
	if err != nil {
		if errors.Is(err, unsplash.ErrNotConfigured) {
			pureJsonMsg(c, http.StatusServiceUnavailable, false, I18nWeb(c, "images.unavailable"))
			return
		}
		pureJsonMsg(c, http.StatusBadGateway, false, I18nWeb(c, "images.unavailable"))
		return
	}
	jsonObj(c, images, nil)
}
