package generate

import "github.com/gin-gonic/gin"

// RegisterRoutes registers the routes for the generate module
func RegisterRoutes(g *gin.RouterGroup, ctrl *Controller) {
	g.POST("/generate", ctrl.GenerateLevel)
	g.POST("/generate-image", ctrl.GenerateImage)
}
