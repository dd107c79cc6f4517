package http

import (
	"github.com/gin-gonic/gin"

	"event-task-suggester/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// All routes share the per-client rate limit.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	events := rg.Group("/events")
	{
		events.POST("/suggestions", mw.RateLimit(), h.Generate)
		events.POST("/suggestions/accept", mw.RateLimit(), h.Accept)
	}

	rg.GET("/tasks", mw.RateLimit(), h.ListTasks)
	rg.GET("/suggestions/feedback", mw.RateLimit(), h.Feedback)
	rg.GET("/calendar/suggestions", mw.RateLimit(), h.Upcoming)
}
