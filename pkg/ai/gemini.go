package ai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"google.golang.org/genai"

	"github.com/johnquangdev/agendacraft/pkg/config"
)

const defaultModel = "gemini-3-flash-preview"

// ErrEmptyResponse is returned when the model replies without any text part
var ErrEmptyResponse = errors.New("empty response from gemini")

// contentGenerator is the slice of genai.Models used here
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// GeminiClient generates structured meeting agendas with the Gemini API
type GeminiClient struct {
	models  contentGenerator
	model   string
	timeout time.Duration
}

// NewGeminiClient creates a Gemini client using values from the provided config.
// Pass a nil config to fall back to environment variables.
func NewGeminiClient(ctx context.Context, cfg *config.GeminiConfig) (*GeminiClient, error) {
	var apiKey, model, baseURL string
	timeout := 90 * time.Second
	if cfg != nil {
		apiKey = cfg.APIKey
		model = cfg.Model
		baseURL = cfg.BaseURL
		if cfg.Timeout > 0 {
			timeout = cfg.Timeout
		}
	}
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if model == "" {
		model = defaultModel
	}

	cc := &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: &http.Client{Timeout: timeout},
	}
	if baseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: baseURL}
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &GeminiClient{
		models:  client.Models,
		model:   model,
		timeout: timeout,
	}, nil
}

// Model returns the model name requests are sent to
func (g *GeminiClient) Model() string {
	return g.model
}

// GenerateAgenda sends the document text to Gemini and returns the raw JSON reply.
// The reply is constrained server-side by AgendaSchema; callers still parse and validate it.
func (g *GeminiClient) GenerateAgenda(ctx context.Context, documentText string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	result, err := g.models.GenerateContent(ctx, g.model, genai.Text(AgendaPrompt(documentText)), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   AgendaSchema(),
	})
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}
	if result == nil {
		return "", ErrEmptyResponse
	}

	text := result.Text()
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}
