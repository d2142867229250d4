package llm

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/shared"
	"github.com/sketchboard/ai-backend/internal/config"
	"github.com/sketchboard/ai-backend/internal/models"
)

// VisionClient extracts a textual content description from an uploaded
// image using the multimodal model.
type VisionClient struct {
	logger  *log.Logger
	client  openai.Client
	model   string
	timeout time.Duration
}

func NewVisionClient(logger *log.Logger, client openai.Client, cfg config.VisionConfig) *VisionClient {
	return &VisionClient{
		logger:  logger,
		client:  client,
		model:   cfg.Model,
		timeout: cfg.Timeout,
	}
}

// DescribeUI extracts a structured description of a UI sketch, geared
// towards code generation.
func (c *VisionClient) DescribeUI(ctx context.Context, image string) (string, error) {
	return c.describe(ctx, systemPromptUIExtraction, userPromptUIExtraction, image)
}

// DescribeContent extracts a fact-only description of the image, geared
// towards question answering.
func (c *VisionClient) DescribeContent(ctx context.Context, image string) (string, error) {
	return c.describe(ctx, systemPromptContentExtraction, userPromptContentExtraction, image)
}

func (c *VisionClient) describe(ctx context.Context, systemPrompt, framing, image string) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model: shared.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage([]openai.ChatCompletionContentPartUnionParam{
				openai.TextContentPart(framing),
				openai.ImageContentPart(openai.ChatCompletionContentPartImageImageURLParam{
					URL: image,
				}),
			}),
		},
		MaxTokens:   openai.Int(extractionMaxTokens),
		Temperature: openai.Float(extractionTemperature),
	}

	resp, err := c.client.Chat.Completions.New(ctx, params, option.WithRequestTimeout(c.timeout))
	if err != nil {
		c.logger.Printf("vision extraction error: %v\n", err)
		return "", models.UpstreamFailure("image content extraction failed")
	}

	if len(resp.Choices) == 0 {
		return "", models.UpstreamEmpty("vision model returned empty content")
	}

	content := extractedContent(resp.Choices[0].Message)
	if strings.TrimSpace(content) == "" {
		return "", models.UpstreamEmpty("vision model returned empty content")
	}

	c.logger.Printf("image content extracted, length: %d\n", len(content))
	return content, nil
}

// extractedContent prefers the non-standard reasoning_content field over
// the regular content field. The vision backend places the actual
// description in reasoning_content for some models; dropping this rule
// silently loses the extraction output.
func extractedContent(msg openai.ChatCompletionMessage) string {
	if field, ok := msg.JSON.ExtraFields["reasoning_content"]; ok && field.Valid() {
		var reasoning string
		if err := sonic.Unmarshal([]byte(field.Raw()), &reasoning); err == nil {
			if strings.TrimSpace(reasoning) != "" {
				return reasoning
			}
		}
	}
	return msg.Content
}
