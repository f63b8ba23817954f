package pokedex

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"novadex/internal/apperr"
	"novadex/internal/httpx"
)

type Handler struct {
	Service *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Service: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.lookupByQuery)           // GET /api/pokemon?name=
	rg.GET("/catalog", h.catalog)         // GET /api/pokemon/catalog
	rg.GET("/:name", h.lookup)            // GET /api/pokemon/:name
	rg.GET("/:name/matchups", h.matchups) // GET /api/pokemon/:name/matchups?opponent=
}

func (h *Handler) RegisterTeamRoutes(rg *gin.RouterGroup) {
	rg.POST("/metrics", h.team) // POST /api/team/metrics
}

func (h *Handler) lookupByQuery(c *gin.Context) {
	h.respondLookup(c, c.Query("name"))
}

func (h *Handler) lookup(c *gin.Context) {
	h.respondLookup(c, c.Param("name"))
}

func (h *Handler) respondLookup(c *gin.Context, name string) {
	res, err := h.Service.Lookup(c.Request.Context(), name)
	if err != nil {
		httpx.AbortWithError(c, "lookup", err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) catalog(c *gin.Context) {
	res, err := h.Service.Catalog(c.Request.Context())
	if err != nil {
		httpx.AbortWithError(c, "catalog", err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) matchups(c *gin.Context) {
	res, err := h.Service.Matchups(c.Request.Context(), c.Param("name"), c.Query("opponent"))
	if err != nil {
		httpx.AbortWithError(c, "matchups", err)
		return
	}
	c.JSON(http.StatusOK, res)
}

type teamRequest struct {
	Names []string `json:"names"`
}

func (h *Handler) team(c *gin.Context) {
	var req teamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.AbortWithError(c, "team", apperr.Invalid("body must be {\"names\": [...]}"))
		return
	}
	res, err := h.Service.Team(c.Request.Context(), req.Names)
	if err != nil {
		httpx.AbortWithError(c, "team", err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) cacheStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.Service.CacheStats())
}

// NewRouter assembles the public HTTP surface.
func NewRouter(svc *Service) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), httpx.RequestID(), httpx.Recovery())
	router.NoRoute(httpx.NotFound)

	// only a local reverse proxy may set X-Forwarded-For
	if err := router.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		log.Printf("[api] trusted proxies: %v", err)
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	h := NewHandler(svc)
	router.GET("/debug/cache", h.cacheStats)
	h.RegisterRoutes(router.Group("/api/pokemon"))
	h.RegisterTeamRoutes(router.Group("/api/team"))

	return router
}
