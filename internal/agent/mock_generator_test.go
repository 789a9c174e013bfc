package agent

import (
	"context"

	"medinfo-agent/internal/gemini"
)

// MockGenerator is a mock implementation of Generator.
type MockGenerator struct {
	GenerateTextFunc  func(ctx context.Context, prompt string) (string, error)
	GenerateImageFunc func(ctx context.Context, prompt string) (gemini.Image, error)
}

func (m *MockGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	if m.GenerateTextFunc != nil {
		return m.GenerateTextFunc(ctx, prompt)
	}
	return "", nil
}

func (m *MockGenerator) GenerateImage(ctx context.Context, prompt string) (gemini.Image, error) {
	if m.GenerateImageFunc != nil {
		return m.GenerateImageFunc(ctx, prompt)
	}
	return gemini.Image{}, nil
}
