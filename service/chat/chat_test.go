package chat

import (
	"context"
	"errors"

	"joigo-tour-backend/model"

	"github.com/tmc/langchaingo/llms"
)

// fakeLLM 记录调用次数，按配置返回固定回复或错误
type fakeLLM struct {
	reply string
	err   error
	calls int
}

func (f *fakeLLM) GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &llms.ContentResponse{
		Choices: []*llms.ContentChoice{{Content: f.reply}},
	}, nil
}

func (f *fakeLLM) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

type fakeEmbeddingProvider struct {
	vector []float32
	err    error
}

func (f *fakeEmbeddingProvider) Embed(ctx context.Context, text string) ([]float32, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.vector, nil
}

func (f *fakeEmbeddingProvider) Dim() int {
	return len(f.vector)
}

type fakeSearcher struct {
	matches []model.TourMatch
	err     error
}

func (f *fakeSearcher) MatchTours(ctx context.Context, vector []float32, threshold float64, count int) ([]model.TourMatch, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.matches, nil
}

var errBoom = errors.New("boom")
