package routes

import (
	"net/http"

	"jobportal_front/internal/handlers"
	"jobportal_front/internal/logger"
	"jobportal_front/ws"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует страницы и WebSocket.
// SessionMiddleware уже подключен на уровне роутера.
func RegisterRoutes(
	ginRouter *gin.Engine,
	appHandlers *handlers.AppHandlers,
	wsHandler *ws.WebSocketHandler,
) {
	ginRouter.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	root := ginRouter.Group("")
	{
		appHandlers.SessionHandler.RegisterRoutes(root)
		appHandlers.ReferenceHandler.RegisterRoutes(root)
		appHandlers.JobHandler.RegisterRoutes(root)
		appHandlers.JobSeekerHandler.RegisterRoutes(root)
		appHandlers.CompanyHandler.RegisterRoutes(root)
	}

	ginRouter.GET("/ws", wsHandler.ServeWS)
	logger.Info("WebSocket route /ws registered")
}
