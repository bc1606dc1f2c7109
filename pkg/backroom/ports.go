package backroom

import "context"

// TextGenerator turns a prompt into a level using a generative text service
type TextGenerator interface {
	GenerateLevel(ctx context.Context, prompt string) (*Level, error)
}

// ImageGenerator produces an image reference from a level's visual description.
// Implementations must not mutate the level.
type ImageGenerator interface {
	GenerateImage(ctx context.Context, level *Level) (string, error)
}

// Store defines the persistence operations for levels
type Store interface {
	// SaveLevel updates an equivalent stored level or inserts a new one
	SaveLevel(ctx context.Context, level *Level, authorName string) (SaveResult, error)

	// ListLevels returns every stored level, newest first
	ListLevels(ctx context.Context) ([]*Level, error)

	// GetLevel returns the level with the given id, or nil if none exists
	GetLevel(ctx context.Context, id string) (*Level, error)
}
