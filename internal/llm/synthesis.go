package llm

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/shared"
	"github.com/sketchboard/ai-backend/internal/config"
	"github.com/sketchboard/ai-backend/internal/models"
)

// SynthesisClient turns a content description (or a raw prompt) into the
// final artifact using the text model.
type SynthesisClient struct {
	logger  *log.Logger
	client  openai.Client
	model   string
	timeout time.Duration
}

func NewSynthesisClient(logger *log.Logger, client openai.Client, cfg config.SynthesisConfig) *SynthesisClient {
	return &SynthesisClient{
		logger:  logger,
		client:  client,
		model:   cfg.Model,
		timeout: cfg.Timeout,
	}
}

// GenerateHTML produces a standalone HTML document from a design
// description, embedding the supplied text elements and theme.
func (c *SynthesisClient) GenerateHTML(ctx context.Context, description, texts, theme string) (string, error) {
	if theme == "" {
		theme = defaultTheme
	}
	if texts == "" {
		texts = noTexts
	}
	system := fmt.Sprintf(systemPromptCodeFromDescription, theme, texts)
	user := fmt.Sprintf(userPromptCodeFromDescription, description)
	return c.complete(ctx, system, user, synthesisMaxTokens)
}

// GenerateHTMLFromMockup produces HTML straight from the canvas text
// elements and theme, without a vision-stage description.
func (c *SynthesisClient) GenerateHTMLFromMockup(ctx context.Context, texts, theme string) (string, error) {
	if theme == "" {
		theme = defaultTheme
	}
	if texts == "" {
		texts = noTexts
	}
	system := fmt.Sprintf(systemPromptCodeFromMockup, theme, texts)
	return c.complete(ctx, system, userPromptCodeFromMockup, mockupMaxTokens)
}

// Answer responds to a question strictly from the supplied description, or
// summarizes the description when no question is given.
func (c *SynthesisClient) Answer(ctx context.Context, description, question string) (string, error) {
	var user string
	if question != "" {
		user = fmt.Sprintf(userPromptAnswerTemplate, description, question)
	} else {
		user = fmt.Sprintf(userPromptSummaryTemplate, description)
	}
	return c.complete(ctx, systemPromptAnswer, user, synthesisMaxTokens)
}

// GenerateDiagram converts a free-form description into Mermaid code.
func (c *SynthesisClient) GenerateDiagram(ctx context.Context, prompt string) (string, error) {
	user := fmt.Sprintf(userPromptDiagramTemplate, prompt)
	return c.complete(ctx, systemPromptDiagram, user, diagramMaxTokens)
}

func (c *SynthesisClient) complete(ctx context.Context, system, user string, maxTokens int64) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model: shared.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(user),
		},
		MaxTokens:   openai.Int(maxTokens),
		Temperature: openai.Float(synthesisTemperature),
	}

	resp, err := c.client.Chat.Completions.New(ctx, params, option.WithRequestTimeout(c.timeout))
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusTooManyRequests {
			return "", models.RateLimited(models.RateLimitMessage)
		}
		c.logger.Printf("synthesis error: %v\n", err)
		return "", models.UpstreamFailure(models.GenericFailureMessage)
	}

	if len(resp.Choices) == 0 {
		return "", models.UpstreamEmpty("synthesis model returned empty content")
	}

	content := resp.Choices[0].Message.Content
	if strings.TrimSpace(content) == "" {
		return "", models.UpstreamEmpty("synthesis model returned empty content")
	}

	c.logger.Printf("synthesis succeeded, length: %d\n", len(content))
	return content, nil
}
