package handler

import (
	"net/http"

	"boatyard/internal/app/handler/api"
	"boatyard/internal/app/handler/middleware"
	"boatyard/internal/app/repository"
	"boatyard/internal/app/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Handler struct {
	Repository     *repository.Repository
	BoatAPIHandler *api.BoatHandler
	Cache          *utils.ResponseCache
	JwtKey         string
}

func NewHandler(rep *repository.Repository, cache *utils.ResponseCache, jwtKey string) *Handler {
	return &Handler{
		Repository:     rep,
		BoatAPIHandler: &api.BoatHandler{Repository: rep},
		Cache:          cache,
		JwtKey:         jwtKey,
	}
}

func (h *Handler) SetupRoutes(router *gin.Engine) {
	router.Use(middleware.RequestLogger())

	router.GET("/healthz", h.Health)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API маршруты, только чтение
	apiGroup := router.Group("/api", middleware.AuthMiddleware(h.JwtKey, utils.ScopeReadBoats), middleware.CacheMiddleware(h.Cache))
	{
		apiGroup.GET("/boats", h.BoatAPIHandler.GetBoatsAPI)
		apiGroup.GET("/boats/:id", h.BoatAPIHandler.GetBoatAPI)

		// Именованные выборки
		apiGroup.GET("/boats/first_five", h.BoatAPIHandler.FirstFiveAPI)
		apiGroup.GET("/boats/dinghy", h.BoatAPIHandler.DinghyAPI)
		apiGroup.GET("/boats/ship", h.BoatAPIHandler.ShipAPI)
		apiGroup.GET("/boats/last_three_alphabetically", h.BoatAPIHandler.LastThreeAlphabeticallyAPI)
		apiGroup.GET("/boats/without_a_captain", h.BoatAPIHandler.WithoutACaptainAPI)
		apiGroup.GET("/boats/sailboats", h.BoatAPIHandler.SailboatsAPI)
		apiGroup.GET("/boats/with_three_classifications", h.BoatAPIHandler.WithThreeClassificationsAPI)
		apiGroup.GET("/boats/non_sailboats", h.BoatAPIHandler.NonSailboatsAPI)
		apiGroup.GET("/boats/longest", h.BoatAPIHandler.LongestAPI)
	}
}

// Health - GET /healthz - доступность БД
func (h *Handler) Health(c *gin.Context) {
	if err := h.Repository.Ping(c.Request.Context()); err != nil {
		h.errorHandler(c, http.StatusServiceUnavailable, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

func (h *Handler) errorHandler(c *gin.Context, code int, err error) {
	logrus.Error(err.Error())
	c.JSON(code, gin.H{
		"description": err.Error(),
	})
}
