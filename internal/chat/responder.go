package chat

import (
	"context"
	"fmt"
)

// Generator produces text for a prompt. *gemini.Client implements it.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

const promptTemplate = `You are CareerCompass, a career guidance assistant. You help students and professionals with career planning, job searching, resumes, interviews, skill development and higher education choices.

Guidelines:
- Keep answers concise: under 200 words, using short paragraphs or bullet points.
- Be friendly, encouraging and professional.
- Give practical, actionable advice.
- If the question is not about careers, education or professional growth, politely say so and steer the conversation back to career topics.

User message:
%s`

// AIResponder asks the generative-AI service for a reply.
type AIResponder struct {
	gen Generator
}

func NewAIResponder(gen Generator) *AIResponder {
	return &AIResponder{gen: gen}
}

func (r *AIResponder) Respond(ctx context.Context, message string) (string, error) {
	return r.gen.Generate(ctx, fmt.Sprintf(promptTemplate, message))
}
