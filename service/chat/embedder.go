package chat

import (
	"context"
	"errors"
	"fmt"

	"joigo-tour-backend/config"
	"joigo-tour-backend/utils"

	"github.com/tmc/langchaingo/embeddings"
	"github.com/tmc/langchaingo/llms/openai"
)

const embeddingBatchSize = 10

// ErrDimensionMismatch 模型输出维度与配置的索引维度不一致
var ErrDimensionMismatch = errors.New("embedding dimension mismatch")

// EmbeddingProvider 文本向量化，输出固定维度
type EmbeddingProvider interface {
	Embed(ctx context.Context, text string) ([]float32, error)
	Dim() int
}

// OpenAIEmbeddingProvider 通过 OpenAI 兼容接口生成向量
type OpenAIEmbeddingProvider struct {
	embedder embeddings.Embedder
	dim      int
}

var _ EmbeddingProvider = &OpenAIEmbeddingProvider{}

func NewOpenAIEmbeddingProvider() (*OpenAIEmbeddingProvider, error) {
	client, err := openai.New(
		openai.WithEmbeddingModel(config.Cfg.Model.EmbeddingModel),
		openai.WithToken(config.Cfg.Model.APIKey),
		openai.WithBaseURL(config.Cfg.Model.BaseURL),
		openai.WithHTTPClient(utils.DefaultHTTPClient()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create embedder client: %v", err)
	}

	embedder, err := embeddings.NewEmbedder(client,
		embeddings.WithBatchSize(embeddingBatchSize),
		embeddings.WithStripNewLines(false),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create embedder: %v", err)
	}

	return &OpenAIEmbeddingProvider{
		embedder: embedder,
		dim:      config.Cfg.Model.EmbeddingDim,
	}, nil
}

func (p *OpenAIEmbeddingProvider) Embed(ctx context.Context, text string) ([]float32, error) {
	vector, err := p.embedder.EmbedQuery(ctx, text)
	if err != nil {
		return nil, err
	}

	if len(vector) != p.dim {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrDimensionMismatch, len(vector), p.dim)
	}
	return vector, nil
}

func (p *OpenAIEmbeddingProvider) Dim() int {
	return p.dim
}
