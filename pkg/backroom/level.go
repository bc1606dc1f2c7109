package backroom

import (
	"fmt"
	"reflect"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// MaxPromptLength is the maximum number of characters accepted in a prompt
const MaxPromptLength = 500

// Level is a single generated backrooms level
type Level struct {
	ID                string    `json:"id,omitempty"`
	LevelNumber       *int      `json:"levelNumber,omitempty"`
	Name              string    `json:"name" validate:"required,notblank"`
	VisualDescription string    `json:"visualDescription" validate:"required,notblank"`
	Hazards           []string  `json:"hazards" validate:"required"`
	Lore              string    `json:"lore" validate:"required,notblank"`
	StoryHook         string    `json:"storyHook" validate:"required,notblank"`
	ImageURL          string    `json:"imageUrl,omitempty"`
	AuthorName        string    `json:"authorName,omitempty"`
	CreatedAt         time.Time `json:"createdAt,omitzero"`
	Prompt            string    `json:"prompt" validate:"required,notblank,max=500"`
}

// SaveResult is returned by a store after persisting a level
type SaveResult struct {
	ID      string `json:"id"`
	Updated bool   `json:"updated"`
}

var validate = newValidator()

// newValidator reports field errors using their JSON names
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// IsValidForGeneration reports whether a raw prompt may be sent to a generator
func IsValidForGeneration(prompt string) bool {
	return ValidatePrompt(prompt) == nil
}

// ValidatePrompt checks a raw prompt and returns a validation error describing the problem
func ValidatePrompt(prompt string) error {
	if strings.TrimSpace(prompt) == "" {
		return NewValidationError("Prompt is required")
	}
	if utf8.RuneCountInString(prompt) > MaxPromptLength {
		return NewValidationError(fmt.Sprintf("Prompt is too long (max %d characters)", MaxPromptLength))
	}
	return nil
}

// IsValidForPersistence reports whether a level has every field a store requires
func IsValidForPersistence(level *Level) bool {
	return level.Validate() == nil
}

// Validate checks that all required fields are present and not blank, and that
// the prompt fits the accepted length
func (l *Level) Validate() error {
	if l == nil {
		return NewValidationError("Level data is required")
	}

	err := validate.Struct(l)
	if err == nil {
		return nil
	}

	var missing []string
	tooLong := false
	if fieldErrs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range fieldErrs {
			if fe.Tag() == "max" {
				tooLong = true
				continue
			}
			missing = append(missing, fe.Field())
		}
	}

	switch {
	case len(missing) > 0:
		return &Error{
			Kind:    KindValidation,
			Op:      "validate",
			Message: "Level is missing required fields: " + strings.Join(missing, ", "),
			Err:     err,
		}
	case tooLong:
		return &Error{
			Kind:    KindValidation,
			Op:      "validate",
			Message: fmt.Sprintf("Prompt is too long (max %d characters)", MaxPromptLength),
			Err:     err,
		}
	}

	return &Error{Kind: KindValidation, Op: "validate", Message: "Level data is invalid", Err: err}
}

// WithImage returns a copy of the level with the image reference attached
func (l *Level) WithImage(url string) *Level {
	enriched := l.Clone()
	enriched.ImageURL = url
	return enriched
}

// Clone returns a deep copy of the level
func (l *Level) Clone() *Level {
	if l == nil {
		return nil
	}

	out := *l
	if l.LevelNumber != nil {
		n := *l.LevelNumber
		out.LevelNumber = &n
	}
	if l.Hazards != nil {
		out.Hazards = append(make([]string, 0, len(l.Hazards)), l.Hazards...)
	}
	return &out
}

// NormalizeAuthor trims an author name, returning "" for blank input
func NormalizeAuthor(name string) string {
	return strings.TrimSpace(name)
}
