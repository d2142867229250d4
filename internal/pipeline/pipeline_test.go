package pipeline

import (
	"context"
	"log"
	"strings"
	"testing"

	"github.com/sketchboard/ai-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeVision struct {
	description string
	err         error
	calls       []string
	gotImage    string
}

func (f *fakeVision) DescribeUI(_ context.Context, image string) (string, error) {
	f.calls = append(f.calls, "ui")
	f.gotImage = image
	return f.description, f.err
}

func (f *fakeVision) DescribeContent(_ context.Context, image string) (string, error) {
	f.calls = append(f.calls, "content")
	f.gotImage = image
	return f.description, f.err
}

type fakeSynth struct {
	output string
	err    error
	calls  []string

	gotDescription string
	gotTexts       string
	gotTheme       string
	gotQuestion    string
	gotPrompt      string
}

func (f *fakeSynth) GenerateHTML(_ context.Context, description, texts, theme string) (string, error) {
	f.calls = append(f.calls, "html")
	f.gotDescription, f.gotTexts, f.gotTheme = description, texts, theme
	return f.output, f.err
}

func (f *fakeSynth) GenerateHTMLFromMockup(_ context.Context, texts, theme string) (string, error) {
	f.calls = append(f.calls, "mockup")
	f.gotTexts, f.gotTheme = texts, theme
	return f.output, f.err
}

func (f *fakeSynth) Answer(_ context.Context, description, question string) (string, error) {
	f.calls = append(f.calls, "answer")
	f.gotDescription, f.gotQuestion = description, question
	return f.output, f.err
}

func (f *fakeSynth) GenerateDiagram(_ context.Context, prompt string) (string, error) {
	f.calls = append(f.calls, "diagram")
	f.gotPrompt = prompt
	return f.output, f.err
}

func newTestPipeline(vision *fakeVision, synth *fakeSynth) *Pipeline {
	return New(log.New(&strings.Builder{}, "", 0), vision, synth)
}

func TestGenerateCode_NoInput(t *testing.T) {
	vision := &fakeVision{}
	synth := &fakeSynth{}
	p := newTestPipeline(vision, synth)

	_, err := p.GenerateCode(context.Background(), &models.GenerateRequest{Theme: "dark"})

	require.Error(t, err)
	assert.Equal(t, models.KindInvalidInput, models.Classify(err).Kind)
	assert.Empty(t, vision.calls, "no upstream call on invalid input")
	assert.Empty(t, synth.calls, "no upstream call on invalid input")
}

func TestGenerateCode_ImageDriven(t *testing.T) {
	vision := &fakeVision{description: "a login form with two inputs"}
	synth := &fakeSynth{output: "<html><body>ok</body></html>"}
	p := newTestPipeline(vision, synth)

	resp, err := p.GenerateCode(context.Background(), &models.GenerateRequest{
		Image: "data:image/png;base64,AAAA",
		Theme: "dark",
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"ui"}, vision.calls)
	assert.Equal(t, []string{"html"}, synth.calls)
	assert.Equal(t, "data:image/png;base64,AAAA", vision.gotImage)
	assert.Contains(t, synth.gotDescription, "a login form with two inputs")
	assert.Equal(t, "dark", synth.gotTheme)
	assert.Equal(t, models.ProcessedWithPipeline, resp.ProcessedWith)
	assert.Equal(t, "<html><body>ok</body></html>", resp.HTML)
}

func TestGenerateCode_ImageWithTexts(t *testing.T) {
	vision := &fakeVision{description: "extracted layout"}
	synth := &fakeSynth{output: "<html></html>"}
	p := newTestPipeline(vision, synth)

	_, err := p.GenerateCode(context.Background(), &models.GenerateRequest{
		Image: "data:image/png;base64,AAAA",
		Texts: "Login, Submit",
	})

	require.NoError(t, err)
	idxExtracted := strings.Index(synth.gotDescription, "extracted layout")
	idxTexts := strings.Index(synth.gotDescription, "Login, Submit")
	require.GreaterOrEqual(t, idxExtracted, 0)
	require.Greater(t, idxTexts, idxExtracted, "supplied texts follow the extracted description")
	assert.Contains(t, synth.gotDescription, "Additional text information")
}

func TestGenerateCode_TextsOnly(t *testing.T) {
	vision := &fakeVision{}
	synth := &fakeSynth{output: "<p>hi</p>"}
	p := newTestPipeline(vision, synth)

	resp, err := p.GenerateCode(context.Background(), &models.GenerateRequest{Texts: "a pricing page"})

	require.NoError(t, err)
	assert.Empty(t, vision.calls, "no vision stage without an image")
	assert.Contains(t, synth.gotDescription, "a pricing page")
	assert.Equal(t, models.ProcessedWithSynthesis, resp.ProcessedWith)
	assert.True(t, strings.HasPrefix(resp.HTML, "<!DOCTYPE html>"), "fragment gets a document shell")
}

func TestGenerateCode_VisionFailureAbortsSynthesis(t *testing.T) {
	vision := &fakeVision{err: models.UpstreamEmpty("vision model returned empty content")}
	synth := &fakeSynth{output: "<html></html>"}
	p := newTestPipeline(vision, synth)

	_, err := p.GenerateCode(context.Background(), &models.GenerateRequest{Image: "data:image/png;base64,AAAA"})

	require.Error(t, err)
	genErr := models.Classify(err)
	assert.Equal(t, models.KindUpstreamEmpty, genErr.Kind)
	assert.Equal(t, 500, genErr.HTTPStatus())
	assert.Empty(t, synth.calls, "synthesis never runs after a failed extraction")
}

func TestGenerateCode_RateLimitPropagates(t *testing.T) {
	vision := &fakeVision{description: "desc"}
	synth := &fakeSynth{err: models.RateLimited(models.RateLimitMessage)}
	p := newTestPipeline(vision, synth)

	_, err := p.GenerateCode(context.Background(), &models.GenerateRequest{Image: "data:image/png;base64,AAAA"})

	require.Error(t, err)
	genErr := models.Classify(err)
	assert.Equal(t, models.KindRateLimited, genErr.Kind)
	assert.Equal(t, 429, genErr.HTTPStatus())
	assert.Equal(t, models.RateLimitMessage, genErr.Message)
}

func TestGenerateAnswer_NoInput(t *testing.T) {
	vision := &fakeVision{}
	synth := &fakeSynth{}
	p := newTestPipeline(vision, synth)

	_, err := p.GenerateAnswer(context.Background(), &models.GenerateRequest{})

	require.Error(t, err)
	assert.Equal(t, models.KindInvalidInput, models.Classify(err).Kind)
	assert.Empty(t, vision.calls)
	assert.Empty(t, synth.calls)
}

func TestGenerateAnswer_ImageDriven(t *testing.T) {
	vision := &fakeVision{description: "a bar chart of monthly sales"}
	synth := &fakeSynth{output: "Sales peaked in June."}
	p := newTestPipeline(vision, synth)

	resp, err := p.GenerateAnswer(context.Background(), &models.GenerateRequest{
		Image:  "data:image/png;base64,AAAA",
		Prompt: "When did sales peak?",
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"content"}, vision.calls, "answer flow uses the fact extraction prompt")
	assert.Contains(t, synth.gotDescription, "a bar chart of monthly sales")
	assert.Equal(t, "When did sales peak?", synth.gotQuestion)
	assert.Equal(t, models.ProcessedWithPipeline, resp.ProcessedWith)
	assert.Equal(t, "Sales peaked in June.", resp.Text)
}

func TestGenerateAnswer_PromptOnly(t *testing.T) {
	vision := &fakeVision{}
	synth := &fakeSynth{output: "42"}
	p := newTestPipeline(vision, synth)

	resp, err := p.GenerateAnswer(context.Background(), &models.GenerateRequest{Prompt: "What is the answer?"})

	require.NoError(t, err)
	assert.Empty(t, vision.calls)
	assert.Equal(t, "no specific context", synth.gotDescription)
	assert.Equal(t, "What is the answer?", synth.gotQuestion)
	assert.Equal(t, models.ProcessedWithSynthesis, resp.ProcessedWith)
}

func TestGenerateAnswer_PromptWithTexts(t *testing.T) {
	synth := &fakeSynth{output: "ok"}
	p := newTestPipeline(&fakeVision{}, synth)

	_, err := p.GenerateAnswer(context.Background(), &models.GenerateRequest{
		Prompt: "Summarize this",
		Texts:  "quarterly report contents",
	})

	require.NoError(t, err)
	assert.Equal(t, "quarterly report contents", synth.gotDescription)
}

func TestGenerateAnswer_TextsOnly(t *testing.T) {
	synth := &fakeSynth{output: "a summary"}
	p := newTestPipeline(&fakeVision{}, synth)

	resp, err := p.GenerateAnswer(context.Background(), &models.GenerateRequest{Texts: "some notes"})

	require.NoError(t, err)
	assert.Equal(t, "some notes", synth.gotDescription)
	assert.Empty(t, synth.gotQuestion, "no question means summarization")
	assert.Equal(t, models.ProcessedWithSynthesis, resp.ProcessedWith)
}

func TestGenerateMockupCode(t *testing.T) {
	t.Run("requires image", func(t *testing.T) {
		synth := &fakeSynth{}
		p := newTestPipeline(&fakeVision{}, synth)

		_, err := p.GenerateMockupCode(context.Background(), &models.GenerateRequest{Texts: "Login"})

		require.Error(t, err)
		assert.Equal(t, models.KindInvalidInput, models.Classify(err).Kind)
		assert.Empty(t, synth.calls)
	})

	t.Run("synthesizes from texts and theme", func(t *testing.T) {
		synth := &fakeSynth{output: "  <html>mock</html>\n"}
		p := newTestPipeline(&fakeVision{}, synth)

		resp, err := p.GenerateMockupCode(context.Background(), &models.GenerateRequest{
			Image: "data:image/png;base64,AAAA",
			Texts: "Login",
			Theme: "dark",
		})

		require.NoError(t, err)
		assert.Equal(t, []string{"mockup"}, synth.calls)
		assert.Equal(t, "<html>mock</html>", resp.HTML)
		assert.Empty(t, resp.ProcessedWith)
	})
}

func TestGenerateDiagram(t *testing.T) {
	tests := []struct {
		name    string
		prompt  string
		wantErr bool
	}{
		{"empty prompt", "", true},
		{"too short", "ab", true},
		{"whitespace only", "   ", true},
		{"too long", strings.Repeat("x", 1001), true},
		{"valid", "user login flow", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			synth := &fakeSynth{output: "flowchart TD\nA-->B\n"}
			p := newTestPipeline(&fakeVision{}, synth)

			resp, err := p.GenerateDiagram(context.Background(), tt.prompt)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, models.KindInvalidInput, models.Classify(err).Kind)
				assert.Empty(t, synth.calls)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.prompt, synth.gotPrompt)
			assert.Equal(t, "flowchart TD\nA-->B", resp.GeneratedResponse)
		})
	}
}
