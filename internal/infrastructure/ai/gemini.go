package ai

import (
	"context"
	"errors"
	"log"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
)

// Gemini wraps the langchaingo Google AI model as a plain prompt-in,
// text-out generator.
type Gemini struct {
	model llms.Model
}

// NewGemini returns nil (not an error) when no API key is configured; the
// estimator and assistant treat a nil generator as "service unconfigured".
func NewGemini(ctx context.Context, apiKey, model string, logger *log.Logger) (*Gemini, error) {
	if apiKey == "" {
		if logger != nil {
			logger.Printf("ai | GEMINI_API_KEY missing, AI features disabled")
		}
		return nil, nil
	}

	llm, err := googleai.New(ctx,
		googleai.WithAPIKey(apiKey),
		googleai.WithDefaultModel(model),
	)
	if err != nil {
		return nil, err
	}

	return &Gemini{model: llm}, nil
}

func (g *Gemini) Generate(ctx context.Context, prompt string) (string, error) {
	if g == nil || g.model == nil {
		return "", errors.New("gemini client not initialized")
	}
	return llms.GenerateFromSinglePrompt(ctx, g.model, prompt)
}
