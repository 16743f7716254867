package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"evcontrol/internal/handler/api"
	"evcontrol/internal/handler/middleware"
	"evcontrol/internal/handler/view"
	"evcontrol/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, boardHandler *api.BoardHandler, authMiddleware *middleware.AuthMiddleware, sessionMiddleware *middleware.SessionMiddleware) {
	view.Install(engine)
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, boardHandler, authMiddleware, sessionMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, boardHandler *api.BoardHandler, authMiddleware *middleware.AuthMiddleware, sessionMiddleware *middleware.SessionMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	app := engine.Group("")
	app.Use(authMiddleware.RequireAuth(), sessionMiddleware.Attach())
	{
		addRoutes(app, []route{
			{Method: http.MethodGet, Path: "/", Handler: boardHandler.Page},
			{Method: http.MethodGet, Path: "/api/board", Handler: boardHandler.State},
		})

		ui := app.Group("/ui")
		{
			addRoutes(ui, []route{
				{Method: http.MethodPost, Path: "/reload", Handler: boardHandler.Reload},
				{Method: http.MethodPost, Path: "/search", Handler: boardHandler.Search},
				{Method: http.MethodPost, Path: "/search/clear", Handler: boardHandler.ClearSearch},
				{Method: http.MethodPost, Path: "/calendar/navigate", Handler: boardHandler.Navigate},
				{Method: http.MethodPost, Path: "/calendar/month", Handler: boardHandler.GoToMonth},
				{Method: http.MethodPost, Path: "/calendar/today", Handler: boardHandler.Today},
				{Method: http.MethodPost, Path: "/days/:date", Handler: boardHandler.ClickDay},
				{Method: http.MethodPost, Path: "/reservations/new", Handler: boardHandler.OpenNew},
				{Method: http.MethodPost, Path: "/reservations/:id/edit", Handler: boardHandler.OpenEdit},
				{Method: http.MethodPost, Path: "/reservations/:id/delete", Handler: boardHandler.OpenDelete},
				{Method: http.MethodPost, Path: "/dialog/submit", Handler: boardHandler.Submit},
				{Method: http.MethodPost, Path: "/dialog/edit", Handler: boardHandler.EditSelected},
				{Method: http.MethodPost, Path: "/dialog/delete", Handler: boardHandler.DeleteSelected},
				{Method: http.MethodPost, Path: "/dialog/confirm-delete", Handler: boardHandler.ConfirmDelete},
				{Method: http.MethodPost, Path: "/dialog/dismiss", Handler: boardHandler.Dismiss},
				{Method: http.MethodPost, Path: "/theme/toggle", Handler: boardHandler.ToggleTheme},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}
