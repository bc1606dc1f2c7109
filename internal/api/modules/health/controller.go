package health

import (
	"net/http"

	"github.com/ethanbaker/api/pkg/api_types"
	"github.com/gin-gonic/gin"
	"github.com/paarad/27-backroom-generator/pkg/sdk"
)

// Return status of the API
func getStatus(c *gin.Context) {
	c.JSON(http.StatusOK, sdk.HealthResponse{
		Envelope: sdk.Success(),
		Status:   api_types.StatusSuccess,
	})
}
