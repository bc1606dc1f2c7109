package generator

import (
	"context"
	"strings"
	"time"

	"github.com/openai/openai-go/v2"
	"github.com/paarad/27-backroom-generator/pkg/backroom"
	"github.com/paarad/27-backroom-generator/pkg/utils"
	"go.uber.org/zap"
)

const opGenerateImage = "generate image"

// ImageGenerator renders level descriptions with the OpenAI images API
type ImageGenerator struct {
	client openai.Client
	opts   Options
	style  string
	logger *zap.Logger
}

// NewImageGenerator creates an image generator. The style suffix comes from the
// options, then image.md in the prompts directory, then the built-in style.
func NewImageGenerator(client openai.Client, opts Options, logger *zap.Logger) *ImageGenerator {
	style := opts.ImageStyle
	if style == "" {
		style = utils.LoadPromptWithFallback(opts.PromptsDir, "image", defaultImageStyle)
	}

	return &ImageGenerator{
		client: client,
		opts:   opts,
		style:  style,
		logger: logger.With(zap.String("component", "image_generator"), zap.String("model", opts.ImageModel)),
	}
}

// GenerateImage requests exactly one image for the level and returns its URL,
// or a data URL when the service responds with base64 content
func (g *ImageGenerator) GenerateImage(ctx context.Context, level *backroom.Level) (string, error) {
	if level == nil || strings.TrimSpace(level.VisualDescription) == "" {
		return "", &backroom.Error{Kind: backroom.KindValidation, Op: opGenerateImage, Message: "Level data is required"}
	}

	started := time.Now()

	resp, err := g.client.Images.Generate(ctx, openai.ImageGenerateParams{
		Prompt:  imagePrompt(level.VisualDescription, g.style),
		Model:   openai.ImageModel(g.opts.ImageModel),
		N:       openai.Int(1),
		Size:    openai.ImageGenerateParamsSize(g.opts.ImageSize),
		Quality: openai.ImageGenerateParamsQuality(g.opts.ImageQuality),
	})
	if err != nil {
		observe("image", g.opts.ImageModel, "error", started)
		g.logger.Warn("Image request failed", zap.Error(err), zap.Duration("latency", time.Since(started)))
		return "", &backroom.Error{Kind: backroom.KindImageUnavailable, Op: opGenerateImage, Err: err}
	}

	var ref string
	if len(resp.Data) > 0 {
		switch image := resp.Data[0]; {
		case image.URL != "":
			ref = image.URL
		case image.B64JSON != "":
			ref = "data:image/png;base64," + image.B64JSON
		}
	}

	if ref == "" {
		observe("image", g.opts.ImageModel, "empty", started)
		g.logger.Warn("Image response contained no reference", zap.Int("images", len(resp.Data)))
		return "", &backroom.Error{Kind: backroom.KindImageEmpty, Op: opGenerateImage, Message: "no image URL generated"}
	}

	observe("image", g.opts.ImageModel, "success", started)
	g.logger.Debug("Generated image", zap.Duration("latency", time.Since(started)))
	return ref, nil
}
