package generator

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/openai/openai-go/v2"
	"github.com/paarad/27-backroom-generator/pkg/backroom"
	"github.com/paarad/27-backroom-generator/pkg/utils"
	"go.uber.org/zap"
)

const opGenerateLevel = "generate level"

// TextGenerator creates levels with the OpenAI chat completions API
type TextGenerator struct {
	client       openai.Client
	opts         Options
	systemPrompt string
	logger       *zap.Logger
	now          func() time.Time
}

// NewTextGenerator creates a text generator. The system prompt is read from
// level.md in the prompts directory when one is configured.
func NewTextGenerator(client openai.Client, opts Options, logger *zap.Logger) *TextGenerator {
	return &TextGenerator{
		client:       client,
		opts:         opts,
		systemPrompt: utils.LoadPromptWithFallback(opts.PromptsDir, "level", defaultLevelPrompt),
		logger:       logger.With(zap.String("component", "text_generator"), zap.String("model", opts.TextModel)),
		now:          time.Now,
	}
}

// generatedLevel is the JSON shape requested from the model
type generatedLevel struct {
	LevelNumber       json.RawMessage `json:"levelNumber"`
	Name              string          `json:"name"`
	VisualDescription string          `json:"visualDescription"`
	Hazards           []string        `json:"hazards"`
	Lore              string          `json:"lore"`
	StoryHook         string          `json:"storyHook"`
}

// GenerateLevel makes a single chat completion request and parses the result into a level
func (g *TextGenerator) GenerateLevel(ctx context.Context, prompt string) (*backroom.Level, error) {
	prompt = strings.TrimSpace(prompt)
	started := time.Now()

	completion, err := g.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(g.opts.TextModel),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(g.systemPrompt),
			openai.UserMessage(userMessage(prompt)),
		},
		Temperature:         openai.Float(g.opts.Temperature),
		MaxCompletionTokens: openai.Int(g.opts.MaxTokens),
	})
	if err != nil {
		observe("text", g.opts.TextModel, "error", started)
		g.logger.Warn("Chat completion request failed", zap.Error(err), zap.Duration("latency", time.Since(started)))
		return nil, &backroom.Error{Kind: backroom.KindGenerationUnavailable, Op: opGenerateLevel, Err: err}
	}

	var content string
	if len(completion.Choices) > 0 {
		content = completion.Choices[0].Message.Content
	}
	if strings.TrimSpace(content) == "" {
		observe("text", g.opts.TextModel, "empty", started)
		g.logger.Warn("Chat completion returned no content", zap.Int("choices", len(completion.Choices)))
		return nil, &backroom.Error{Kind: backroom.KindGenerationEmpty, Op: opGenerateLevel, Message: "no content generated"}
	}

	level, err := parseLevel(content)
	if err != nil {
		observe("text", g.opts.TextModel, "malformed", started)

		var genErr *backroom.Error
		if errors.As(err, &genErr) {
			g.logger.Warn("Could not parse generated level",
				zap.Error(err),
				zap.String("raw_content", genErr.Raw),
				zap.String("cleaned_content", genErr.Cleaned),
			)
		}
		return nil, err
	}

	observe("text", g.opts.TextModel, "success", started)
	g.logger.Debug("Generated level", zap.String("name", level.Name), zap.Duration("latency", time.Since(started)))

	level.Prompt = prompt
	level.CreatedAt = g.now().UTC()
	return level, nil
}

// parseLevel sanitizes model output and decodes it into a level with every required field set
func parseLevel(raw string) (*backroom.Level, error) {
	cleaned := SanitizeJSON(raw)
	malformed := func(message string, cause error) error {
		return &backroom.Error{
			Kind:    backroom.KindGenerationMalformed,
			Op:      opGenerateLevel,
			Message: message,
			Err:     cause,
			Raw:     raw,
			Cleaned: cleaned,
		}
	}

	var out generatedLevel
	if err := json.Unmarshal([]byte(cleaned), &out); err != nil {
		return nil, malformed("failed to parse AI response as JSON", err)
	}

	level := &backroom.Level{
		LevelNumber:       parseLevelNumber(out.LevelNumber),
		Name:              strings.TrimSpace(out.Name),
		VisualDescription: strings.TrimSpace(out.VisualDescription),
		Lore:              strings.TrimSpace(out.Lore),
		StoryHook:         strings.TrimSpace(out.StoryHook),
		Hazards:           make([]string, 0, len(out.Hazards)),
	}
	for _, hazard := range out.Hazards {
		if hazard = strings.TrimSpace(hazard); hazard != "" {
			level.Hazards = append(level.Hazards, hazard)
		}
	}

	var missing []string
	for _, field := range []struct{ name, value string }{
		{"name", level.Name},
		{"visualDescription", level.VisualDescription},
		{"lore", level.Lore},
		{"storyHook", level.StoryHook},
	} {
		if field.value == "" {
			missing = append(missing, field.name)
		}
	}
	if len(level.Hazards) == 0 {
		missing = append(missing, "hazards")
	}
	if len(missing) > 0 {
		return nil, malformed("AI response is missing fields: "+strings.Join(missing, ", "), nil)
	}

	return level, nil
}

// parseLevelNumber accepts the decorative level number as a whole JSON number or numeric string
func parseLevelNumber(raw json.RawMessage) *int {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}

	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		if f != math.Trunc(f) || f < math.MinInt32 || f > math.MaxInt32 {
			return nil
		}
		n := int(f)
		return &n
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 32); err == nil {
			v := int(n)
			return &v
		}
	}

	return nil
}
