package levels

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/paarad/27-backroom-generator/pkg/backroom"
	"github.com/paarad/27-backroom-generator/pkg/sdk"
)

// Controller serves saved levels
type Controller struct {
	store backroom.Store
}

func NewController(store backroom.Store) *Controller {
	return &Controller{store: store}
}

// SaveLevel handles POST requests to persist a level
func (ctrl *Controller) SaveLevel(c *gin.Context) {
	// Parse request body
	var req sdk.SaveLevelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, backroom.NewValidationError(sdk.MessageInvalidBody), sdk.MessageSaveFailed)
		return
	}

	if err := req.Level.Validate(); err != nil {
		fail(c, err, sdk.MessageSaveFailed)
		return
	}

	result, err := ctrl.store.SaveLevel(c.Request.Context(), req.Level, req.AuthorName)
	if err != nil {
		fail(c, err, sdk.MessageSaveFailed)
		return
	}

	c.JSON(http.StatusOK, sdk.SaveLevelResponse{
		Envelope: sdk.Success(),
		ID:       result.ID,
		Updated:  result.Updated,
	})
}

// ListLevels handles GET requests for every saved level
func (ctrl *Controller) ListLevels(c *gin.Context) {
	levels, err := ctrl.store.ListLevels(c.Request.Context())
	if err != nil {
		fail(c, err, sdk.MessageListFailed)
		return
	}

	if levels == nil {
		levels = []*backroom.Level{}
	}

	c.JSON(http.StatusOK, sdk.ListLevelsResponse{Envelope: sdk.Success(), Levels: levels})
}

// GetLevel handles GET requests for a single level by id
func (ctrl *Controller) GetLevel(c *gin.Context) {
	level, err := ctrl.store.GetLevel(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err, sdk.MessageGetFailed)
		return
	}

	if level == nil {
		c.JSON(sdk.NewNotFound(sdk.MessageLevelNotFound).AsGinResponse())
		return
	}

	c.JSON(http.StatusOK, sdk.GetLevelResponse{Envelope: sdk.Success(), Level: level})
}

// fail records the error for the request log and sends the client-facing envelope
func fail(c *gin.Context, err error, message string) {
	_ = c.Error(err)
	c.JSON(sdk.NewFailure(err, message).AsGinResponse())
}
