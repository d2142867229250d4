package pipeline

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/sketchboard/ai-backend/internal/metrics"
	"github.com/sketchboard/ai-backend/internal/models"
	"github.com/sketchboard/ai-backend/internal/preprocess"
)

// Extractor is the vision stage: it turns an image data URI into a textual
// content description.
type Extractor interface {
	DescribeUI(ctx context.Context, image string) (string, error)
	DescribeContent(ctx context.Context, image string) (string, error)
}

// Synthesizer is the text stage: it turns a description or prompt into the
// final artifact.
type Synthesizer interface {
	GenerateHTML(ctx context.Context, description, texts, theme string) (string, error)
	GenerateHTMLFromMockup(ctx context.Context, texts, theme string) (string, error)
	Answer(ctx context.Context, description, question string) (string, error)
	GenerateDiagram(ctx context.Context, prompt string) (string, error)
}

// Pipeline orchestrates the two generation stages. Stages run strictly in
// sequence, a stage failure aborts the request, and nothing is retried.
type Pipeline struct {
	logger *log.Logger
	vision Extractor
	synth  Synthesizer
}

func New(logger *log.Logger, vision Extractor, synth Synthesizer) *Pipeline {
	return &Pipeline{
		logger: logger,
		vision: vision,
		synth:  synth,
	}
}

// GenerateCode runs the code generation flow: image (if any) through the
// vision stage, then the synthesis stage, then HTML normalization.
func (p *Pipeline) GenerateCode(ctx context.Context, req *models.GenerateRequest) (*models.CodeResponse, error) {
	var (
		description string
		usedVision  bool
	)

	switch resolveInput(req.HasImage(), false, req.HasTexts()) {
	case inputImage:
		image, err := preprocess.NormalizeImage(req.Image)
		if err != nil {
			return nil, err
		}

		p.logger.Println("image detected, extracting content with vision model")
		description, err = timedStage(metrics.StageExtraction, func() (string, error) {
			return p.vision.DescribeUI(ctx, image)
		})
		if err != nil {
			return nil, err
		}
		usedVision = true

		if req.HasTexts() {
			description += additionalTexts(req.Texts)
		}
	case inputTexts:
		description = fmt.Sprintf("Create a UI from the following text description: %s", req.Texts)
	default:
		return nil, models.InvalidInput("please provide an image or text description for code generation")
	}

	p.logger.Printf("content description length: %d\n", len(description))

	raw, err := timedStage(metrics.StageSynthesis, func() (string, error) {
		return p.synth.GenerateHTML(ctx, description, req.Texts, req.Theme)
	})
	if err != nil {
		return nil, err
	}

	return &models.CodeResponse{
		HTML:          NormalizeHTML(raw),
		ProcessedWith: provenance(usedVision),
	}, nil
}

// GenerateAnswer runs the question answering flow.
func (p *Pipeline) GenerateAnswer(ctx context.Context, req *models.GenerateRequest) (*models.TextResponse, error) {
	var (
		description string
		question    string
		usedVision  bool
	)

	switch resolveInput(req.HasImage(), req.HasPrompt(), req.HasTexts()) {
	case inputImage:
		image, err := preprocess.NormalizeImage(req.Image)
		if err != nil {
			return nil, err
		}

		p.logger.Println("image detected, extracting content with vision model")
		description, err = timedStage(metrics.StageExtraction, func() (string, error) {
			return p.vision.DescribeContent(ctx, image)
		})
		if err != nil {
			return nil, err
		}
		usedVision = true

		if req.HasTexts() {
			description += additionalTexts(req.Texts)
		}
		question = req.Prompt
	case inputPrompt:
		description = req.Texts
		if description == "" {
			description = "no specific context"
		}
		question = req.Prompt
	case inputTexts:
		description = req.Texts
	default:
		return nil, models.InvalidInput("please provide an image, text description or question")
	}

	p.logger.Printf("content description length: %d\n", len(description))

	answer, err := timedStage(metrics.StageSynthesis, func() (string, error) {
		return p.synth.Answer(ctx, description, question)
	})
	if err != nil {
		return nil, err
	}

	return &models.TextResponse{
		Text:          answer,
		ProcessedWith: provenance(usedVision),
	}, nil
}

// GenerateMockupCode is the single-stage code flow: the image must be
// present, but synthesis works from the canvas texts and theme alone.
func (p *Pipeline) GenerateMockupCode(ctx context.Context, req *models.GenerateRequest) (*models.CodeResponse, error) {
	if !req.HasImage() {
		return nil, models.InvalidInput("image is required")
	}

	raw, err := timedStage(metrics.StageSynthesis, func() (string, error) {
		return p.synth.GenerateHTMLFromMockup(ctx, req.Texts, req.Theme)
	})
	if err != nil {
		return nil, err
	}

	return &models.CodeResponse{HTML: strings.TrimSpace(raw)}, nil
}

// GenerateDiagram is the single-stage text-to-diagram flow.
func (p *Pipeline) GenerateDiagram(ctx context.Context, prompt string) (*models.DiagramResponse, error) {
	if len(strings.TrimSpace(prompt)) < 3 {
		return nil, models.InvalidInput("prompt is too short (minimum 3 characters)")
	}
	if len(prompt) > 1000 {
		return nil, models.InvalidInput("prompt is too long (maximum 1000 characters)")
	}

	raw, err := timedStage(metrics.StageSynthesis, func() (string, error) {
		return p.synth.GenerateDiagram(ctx, prompt)
	})
	if err != nil {
		return nil, err
	}

	return &models.DiagramResponse{GeneratedResponse: strings.TrimSpace(raw)}, nil
}

func timedStage(stage string, fn func() (string, error)) (string, error) {
	start := time.Now()
	out, err := fn()

	status := metrics.StatusOK
	if err != nil {
		status = metrics.StatusError
	}
	metrics.GenerationStageTotal(stage, status)
	metrics.GenerationStageDuration(stage, status, time.Since(start))

	return out, err
}

func additionalTexts(texts string) string {
	return fmt.Sprintf("\n\nAdditional text information: %s", texts)
}

func provenance(usedVision bool) string {
	if usedVision {
		return models.ProcessedWithPipeline
	}
	return models.ProcessedWithSynthesis
}
