package levels

import (
	"time"

	"github.com/paarad/27-backroom-generator/pkg/backroom"
	"gorm.io/datatypes"
)

// LevelModel represents the database row for a saved level
type LevelModel struct {
	ID        string    `json:"id" gorm:"column:id;type:char(36);primaryKey"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;index"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at"`

	LevelNumber       *int                        `json:"level_number" gorm:"column:level_number"`
	Name              string                      `json:"name" gorm:"column:name;type:text;not null"`
	VisualDescription string                      `json:"visual_description" gorm:"column:visual_description;type:text;not null"`
	Hazards           datatypes.JSONSlice[string] `json:"hazards" gorm:"column:hazards"`
	Lore              string                      `json:"lore" gorm:"column:lore;type:text;not null"`
	StoryHook         string                      `json:"story_hook" gorm:"column:story_hook;type:text;not null"`
	ImageURL          *string                     `json:"image_url" gorm:"column:image_url;type:longtext"`
	AuthorName        *string                     `json:"author_name" gorm:"column:author_name;size:255"`
	Prompt            string                      `json:"prompt" gorm:"column:prompt;size:500;not null;index"`
}

// TableName sets the table name for GORM
func (LevelModel) TableName() string {
	return "backroom_generator_levels"
}

// toModel maps a level onto the storage schema. It is the inverse of toLevel
// for every field except id and created_at, which the store owns.
func toModel(level *backroom.Level, authorName string) *LevelModel {
	model := &LevelModel{
		Name:              level.Name,
		VisualDescription: level.VisualDescription,
		Hazards:           datatypes.JSONSlice[string](append([]string{}, level.Hazards...)),
		Lore:              level.Lore,
		StoryHook:         level.StoryHook,
		ImageURL:          optional(level.ImageURL),
		AuthorName:        optional(authorName),
		Prompt:            level.Prompt,
	}

	if level.LevelNumber != nil {
		n := *level.LevelNumber
		model.LevelNumber = &n
	}

	return model
}

// toLevel maps a stored row back onto a level
func toLevel(model *LevelModel) *backroom.Level {
	level := &backroom.Level{
		ID:                model.ID,
		Name:              model.Name,
		VisualDescription: model.VisualDescription,
		Hazards:           append([]string{}, model.Hazards...),
		Lore:              model.Lore,
		StoryHook:         model.StoryHook,
		ImageURL:          deref(model.ImageURL),
		AuthorName:        deref(model.AuthorName),
		CreatedAt:         model.CreatedAt,
		Prompt:            model.Prompt,
	}

	if model.LevelNumber != nil {
		n := *model.LevelNumber
		level.LevelNumber = &n
	}

	return level
}

// resolveAuthor picks the explicit author name, then the level's own, trimming both
func resolveAuthor(authorName string, level *backroom.Level) string {
	if author := backroom.NormalizeAuthor(authorName); author != "" {
		return author
	}
	return backroom.NormalizeAuthor(level.AuthorName)
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
