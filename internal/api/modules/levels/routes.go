package levels

import "github.com/gin-gonic/gin"

// RegisterRoutes registers the routes for the levels module
func RegisterRoutes(g *gin.RouterGroup, ctrl *Controller) {
	group := g.Group("/levels")

	group.POST("", ctrl.SaveLevel)   // Save a new level or update a recognized one
	group.GET("", ctrl.ListLevels)   // List all levels, newest first
	group.GET("/:id", ctrl.GetLevel) // Get a single level by id
}
