package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"career-canvas/internal/match"
)

const (
	assistantUnavailable = "AI Service Unavailable"
	assistantApology     = "Sorry, I couldn't process that."
)

const assistantPromptTemplate = `
System: You are a helpful Job Assistant.
Context: %s
User: %s

Answer concisely.
`

type AssistantUsecase interface {
	Chat(ctx context.Context, message string, chatContext any) string
}

// Assistant answers seeker questions grounded on whatever context the client
// sends (current job, application history). It never errors: the unavailable
// and apology strings are part of its contract.
type Assistant struct {
	gen    match.Generator
	logger *log.Logger
}

func NewAssistantUsecase(gen match.Generator, logger *log.Logger) *Assistant {
	return &Assistant{gen: gen, logger: logger}
}

func (u *Assistant) Chat(ctx context.Context, message string, chatContext any) string {
	if u == nil || u.gen == nil {
		return assistantUnavailable
	}

	ctxJSON, err := json.Marshal(chatContext)
	if err != nil {
		ctxJSON = []byte("{}")
	}

	prompt := fmt.Sprintf(assistantPromptTemplate, string(ctxJSON), message)
	reply, err := u.gen.Generate(ctx, prompt)
	if err != nil {
		if u.logger != nil {
			u.logger.Printf("assistant | generation error: %v", err)
		}
		return assistantApology
	}
	return reply
}
