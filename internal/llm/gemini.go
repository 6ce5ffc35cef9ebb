package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"sheet-template-api/config"

	"google.golang.org/genai"
)

var genaiGenerateContentHook = func(client *genai.Client, ctx context.Context, model string, contents []*genai.Content, cfg *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	return client.Models.GenerateContent(ctx, model, contents, cfg)
}

var newGenaiClientHook = genai.NewClient

type GeminiProvider struct {
	Client *genai.Client
	Model  string
}

func (p *GeminiProvider) Name() string { return "gemini:" + p.Model }

func (p *GeminiProvider) Complete(ctx context.Context, req Request) (string, error) {
	if p.Client == nil {
		return "", ErrNotConfigured
	}

	cfg := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(req.Temperature),
		MaxOutputTokens: req.MaxOutputTokens,
	}
	if req.SystemPrompt != "" {
		cfg.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: req.SystemPrompt}},
		}
	}

	resp, err := genaiGenerateContentHook(p.Client, ctx, p.Model, []*genai.Content{
		{
			Role:  genai.RoleUser,
			Parts: []*genai.Part{{Text: req.UserPrompt}},
		},
	}, cfg)
	if err != nil {
		return "", fmt.Errorf("generation error: %w", err)
	}

	text := responseText(resp)
	if strings.TrimSpace(text) == "" {
		return "", errors.New("no response from Gemini")
	}
	return text, nil
}

// responseText joins the text parts of the first candidate that has any.
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		var parts []string
		for _, part := range candidate.Content.Parts {
			if part != nil && part.Text != "" && !part.Thought {
				parts = append(parts, part.Text)
			}
		}
		if len(parts) > 0 {
			return strings.Join(parts, "\n")
		}
	}
	return ""
}

// NewProvider builds the process-wide provider. Vertex AI (ADC) is used when a
// GCP project is configured, the Gemini API when a key is set, and otherwise
// an UnavailableProvider.
func NewProvider(ctx context.Context, cfg config.Config) (Provider, error) {
	var cc *genai.ClientConfig
	switch {
	case cfg.GCPProject != "":
		cc = &genai.ClientConfig{
			Backend:  genai.BackendVertexAI,
			Project:  cfg.GCPProject,
			Location: cfg.GCPLocation,
		}
	case cfg.GeminiKey != "":
		cc = &genai.ClientConfig{
			Backend: genai.BackendGeminiAPI,
			APIKey:  cfg.GeminiKey,
		}
	default:
		return UnavailableProvider{}, nil
	}

	client, err := newGenaiClientHook(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &GeminiProvider{Client: client, Model: cfg.GeminiModel}, nil
}
