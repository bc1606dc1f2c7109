package sdk

import (
	"net/http"

	"github.com/ethanbaker/api/pkg/api_types"
	"github.com/paarad/27-backroom-generator/pkg/backroom"
)

// Fixed client-facing messages, one per operation family
const (
	MessageGenerateFailed      = "Failed to generate backroom level. Please try again."
	MessageGenerateImageFailed = "Failed to generate image. Please try again."
	MessageSaveFailed          = "Failed to save level"
	MessageListFailed          = "Failed to fetch levels"
	MessageGetFailed           = "Failed to fetch level"
	MessageLevelNotFound       = "Level not found"
	MessageLevelRequired       = "Level data is required"
	MessageInvalidBody         = "Could not parse request body"
)

// Envelope is the common part of every response body
type Envelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// Failure is an error response along with the HTTP status it is sent with
type Failure struct {
	Code int `json:"-"`
	Envelope
}

// AsGinResponse converts the Failure to a format suitable for Gin framework
func (f Failure) AsGinResponse() (int, any) {
	return f.Code, f
}

// NewFailure maps an error onto a response. Validation errors are sent back with their
// own message and a 400; everything else gets the fixed message and a 500.
func NewFailure(err error, message string) Failure {
	if backroom.IsValidation(err) {
		return Failure{
			Code:     http.StatusBadRequest,
			Envelope: Envelope{Error: backroom.ValidationMessage(err)},
		}
	}

	return Failure{
		Code:     http.StatusInternalServerError,
		Envelope: Envelope{Error: message},
	}
}

// NewNotFound creates a 404 response with the given message
func NewNotFound(message string) Failure {
	return Failure{
		Code:     http.StatusNotFound,
		Envelope: Envelope{Error: message},
	}
}

/** Requests */

// GenerateRequest represents the request body for generating a level
type GenerateRequest struct {
	Prompt string `json:"prompt"`
}

// GenerateImageRequest represents the request body for generating a level's image
type GenerateImageRequest struct {
	Level *backroom.Level `json:"level"`
}

// SaveLevelRequest represents the request body for saving a level
type SaveLevelRequest struct {
	Level      *backroom.Level `json:"level"`
	AuthorName string          `json:"authorName,omitempty"`
}

/** Responses */

// GenerateResponse carries a freshly generated level
type GenerateResponse struct {
	Envelope
	Level *backroom.Level `json:"level,omitempty"`
}

// GenerateImageResponse carries the reference to a generated image
type GenerateImageResponse struct {
	Envelope
	ImageURL string `json:"imageUrl,omitempty"`
}

// SaveLevelResponse reports where a level was saved and whether it replaced an existing one
type SaveLevelResponse struct {
	Envelope
	ID      string `json:"id,omitempty"`
	Updated bool   `json:"updated"`
}

// ListLevelsResponse carries every saved level, newest first
type ListLevelsResponse struct {
	Envelope
	Levels []*backroom.Level `json:"levels"`
}

// GetLevelResponse carries a single saved level
type GetLevelResponse struct {
	Envelope
	Level *backroom.Level `json:"level,omitempty"`
}

// HealthResponse reports that the service is up
type HealthResponse struct {
	Envelope
	Status api_types.StatusType `json:"status"`
}

// Success returns an envelope for a successful response
func Success() Envelope {
	return Envelope{Success: true}
}
