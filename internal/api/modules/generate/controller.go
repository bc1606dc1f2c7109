package generate

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/paarad/27-backroom-generator/pkg/backroom"
	"github.com/paarad/27-backroom-generator/pkg/sdk"
)

// Controller serves level and image generation
type Controller struct {
	text   backroom.TextGenerator
	images backroom.ImageGenerator
}

func NewController(text backroom.TextGenerator, images backroom.ImageGenerator) *Controller {
	return &Controller{text: text, images: images}
}

// GenerateLevel handles POST requests to generate a level from a prompt
func (ctrl *Controller) GenerateLevel(c *gin.Context) {
	// Parse request body
	var req sdk.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, backroom.NewValidationError(sdk.MessageInvalidBody), sdk.MessageGenerateFailed)
		return
	}

	// Reject bad prompts before anything is sent upstream
	if err := backroom.ValidatePrompt(req.Prompt); err != nil {
		fail(c, err, sdk.MessageGenerateFailed)
		return
	}

	level, err := ctrl.text.GenerateLevel(c.Request.Context(), req.Prompt)
	if err != nil {
		fail(c, err, sdk.MessageGenerateFailed)
		return
	}

	c.JSON(http.StatusOK, sdk.GenerateResponse{Envelope: sdk.Success(), Level: level})
}

// GenerateImage handles POST requests to generate an image for a level
func (ctrl *Controller) GenerateImage(c *gin.Context) {
	// Parse request body
	var req sdk.GenerateImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, backroom.NewValidationError(sdk.MessageInvalidBody), sdk.MessageGenerateImageFailed)
		return
	}

	if req.Level == nil || strings.TrimSpace(req.Level.VisualDescription) == "" {
		fail(c, backroom.NewValidationError(sdk.MessageLevelRequired), sdk.MessageGenerateImageFailed)
		return
	}

	imageURL, err := ctrl.images.GenerateImage(c.Request.Context(), req.Level)
	if err != nil {
		fail(c, err, sdk.MessageGenerateImageFailed)
		return
	}

	c.JSON(http.StatusOK, sdk.GenerateImageResponse{Envelope: sdk.Success(), ImageURL: imageURL})
}

// fail records the error for the request log and sends the client-facing envelope
func fail(c *gin.Context, err error, message string) {
	_ = c.Error(err)
	c.JSON(sdk.NewFailure(err, message).AsGinResponse())
}
