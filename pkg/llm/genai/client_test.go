package genai

import (
	"context"
	"errors"
	"testing"

	"github.com/kcaldas/genie-skill/pkg/ai"
	"github.com/kcaldas/genie-skill/pkg/config"
	"github.com/kcaldas/genie-skill/pkg/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func newTestClient(fn func(ctx context.Context, model string, contents []*genai.Content, cfg *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)) *Client {
	return &Client{
		Backend:               config.BackendGeminiAPI,
		Model:                 config.ModelConfig{ModelName: config.DefaultModelName},
		logger:                logging.NewDisabledLogger(),
		callGenerateContentFn: fn,
	}
}

func textResponse(parts ...*genai.Part) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: genai.NewContentFromParts(parts, genai.RoleModel)},
		},
	}
}

func TestClientGenerateContentSendsRawQuery(t *testing.T) {
	var (
		capturedModel    string
		capturedContents []*genai.Content
		capturedConfig   *genai.GenerateContentConfig
	)
	client := newTestClient(func(ctx context.Context, model string, contents []*genai.Content, cfg *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
		capturedModel = model
		capturedContents = contents
		capturedConfig = cfg
		return textResponse(genai.NewPartFromText("Paris")), nil
	})

	response, err := client.GenerateContent(context.Background(), ai.Prompt{Text: "capital of France"})
	require.NoError(t, err)
	assert.Equal(t, "Paris", response)

	assert.Equal(t, config.DefaultModelName, capturedModel)
	require.Len(t, capturedContents, 1)
	assert.Equal(t, genai.RoleUser, capturedContents[0].Role)
	require.Len(t, capturedContents[0].Parts, 1)
	assert.Equal(t, "capital of France", capturedContents[0].Parts[0].Text)
	assert.Nil(t, capturedConfig, "no generation parameters should be overridden by default")
}

func TestClientGenerateContentPromptModelWins(t *testing.T) {
	var capturedModel string
	client := newTestClient(func(ctx context.Context, model string, contents []*genai.Content, cfg *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
		capturedModel = model
		return textResponse(genai.NewPartFromText("ok")), nil
	})

	_, err := client.GenerateContent(context.Background(), ai.Prompt{Text: "hi", ModelName: "gemini-2.5-pro"})
	require.NoError(t, err)
	assert.Equal(t, "gemini-2.5-pro", capturedModel)
}

func TestClientGenerateContentAppliesModelParameters(t *testing.T) {
	var capturedConfig *genai.GenerateContentConfig
	client := newTestClient(func(ctx context.Context, model string, contents []*genai.Content, cfg *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
		capturedConfig = cfg
		return textResponse(genai.NewPartFromText("ok")), nil
	})
	client.Model.MaxTokens = 256
	client.Model.Temperature = 0.4

	_, err := client.GenerateContent(context.Background(), ai.Prompt{Text: "hi"})
	require.NoError(t, err)

	require.NotNil(t, capturedConfig)
	assert.Equal(t, int32(256), capturedConfig.MaxOutputTokens)
	require.NotNil(t, capturedConfig.Temperature)
	assert.InDelta(t, 0.4, *capturedConfig.Temperature, 0.0001)
	assert.Nil(t, capturedConfig.TopP)
}

func TestClientGenerateContentJoinsTextAndSkipsThoughts(t *testing.T) {
	thought := genai.NewPartFromText("thinking about France")
	thought.Thought = true

	client := newTestClient(func(ctx context.Context, model string, contents []*genai.Content, cfg *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
		return textResponse(thought, genai.NewPartFromText("The capital "), genai.NewPartFromText("is Paris.")), nil
	})

	response, err := client.GenerateContent(context.Background(), ai.Prompt{Text: "capital of France"})
	require.NoError(t, err)
	assert.Equal(t, "The capital is Paris.", response)
}

func TestClientGenerateContentErrors(t *testing.T) {
	testCases := []struct {
		name       string
		response   *genai.GenerateContentResponse
		err        error
		wantErrMsg string
	}{
		{
			name:       "upstream error",
			err:        errors.New("dial tcp: connection refused"),
			wantErrMsg: "connection refused",
		},
		{
			name:       "no candidates",
			response:   &genai.GenerateContentResponse{},
			wantErrMsg: "no response candidates",
		},
		{
			name: "blocked prompt",
			response: &genai.GenerateContentResponse{
				PromptFeedback: &genai.GenerateContentResponsePromptFeedback{BlockReason: genai.BlockedReasonSafety},
			},
			wantErrMsg: "prompt blocked",
		},
		{
			name: "candidate without content",
			response: &genai.GenerateContentResponse{
				Candidates: []*genai.Candidate{{Content: nil}},
			},
			wantErrMsg: "no content in response candidate",
		},
		{
			name:       "only empty parts",
			response:   textResponse(genai.NewPartFromText("")),
			wantErrMsg: "no usable content",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			client := newTestClient(func(ctx context.Context, model string, contents []*genai.Content, cfg *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
				return tc.response, tc.err
			})

			response, err := client.GenerateContent(context.Background(), ai.Prompt{Text: "ping"})
			require.Error(t, err)
			assert.Empty(t, response)
			assert.Contains(t, err.Error(), tc.wantErrMsg)
		})
	}
}

func TestClientGenerateContentWithoutClient(t *testing.T) {
	client := &Client{Model: config.ModelConfig{ModelName: config.DefaultModelName}}

	_, err := client.GenerateContent(context.Background(), ai.Prompt{Text: "ping"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not initialized")
}

func TestBuildGenerateConfig(t *testing.T) {
	assert.Nil(t, buildGenerateConfig(ai.Prompt{Text: "plain"}))

	cfg := buildGenerateConfig(ai.Prompt{
		Text:        "tuned",
		Instruction: "Answer in one sentence.",
		MaxTokens:   256,
		Temperature: 0.3,
		TopP:        0.8,
	})
	require.NotNil(t, cfg)
	require.NotNil(t, cfg.SystemInstruction)
	assert.Equal(t, "Answer in one sentence.", cfg.SystemInstruction.Parts[0].Text)
	assert.Equal(t, int32(256), cfg.MaxOutputTokens)
	require.NotNil(t, cfg.Temperature)
	assert.InDelta(t, 0.3, *cfg.Temperature, 0.0001)
	require.NotNil(t, cfg.TopP)
	assert.InDelta(t, 0.8, *cfg.TopP, 0.0001)
	assert.Equal(t, int32(1), cfg.CandidateCount)
}

func TestClientConfigFor(t *testing.T) {
	gemini, err := clientConfigFor(config.SkillConfig{Backend: config.BackendGeminiAPI, GeminiAPIKey: "secret"})
	require.NoError(t, err)
	assert.Equal(t, genai.BackendGeminiAPI, gemini.Backend)
	assert.Equal(t, "secret", gemini.APIKey)
	assert.Equal(t, ai.ClientHeaderValue, gemini.HTTPOptions.Headers.Get(ai.ClientHeaderName))

	vertex, err := clientConfigFor(config.SkillConfig{Backend: config.BackendVertexAI, VertexProject: "proj", VertexLocation: "europe-west1"})
	require.NoError(t, err)
	assert.Equal(t, genai.BackendVertexAI, vertex.Backend)
	assert.Equal(t, "proj", vertex.Project)
	assert.Equal(t, "europe-west1", vertex.Location)

	_, err = clientConfigFor(config.SkillConfig{Backend: "bedrock"})
	assert.Error(t, err)
}

func TestNewClientRequiresCredentials(t *testing.T) {
	_, err := NewClient(context.Background(), config.SkillConfig{
		Backend: config.BackendGeminiAPI,
		Model:   config.ModelConfig{ModelName: config.DefaultModelName},
	})
	require.ErrorIs(t, err, config.ErrMissingCredentials)
}

func TestClientGetStatus(t *testing.T) {
	client := newTestClient(nil)
	status := client.GetStatus()
	assert.Equal(t, "gemini", status.Backend)
	assert.Contains(t, status.Model, config.DefaultModelName)
	assert.False(t, status.Connected)
}
