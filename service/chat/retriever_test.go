package chat

import (
	"context"
	"fmt"
	"testing"

	"joigo-tour-backend/dao"
	"joigo-tour-backend/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRetriever(provider EmbeddingProvider, searcher TourSearcher) *Retriever {
	return &Retriever{
		Provider:  provider,
		Searcher:  searcher,
		Threshold: 0.3,
		TopK:      2,
	}
}

func TestRetrieveFound(t *testing.T) {
	searcher := &fakeSearcher{matches: []model.TourMatch{
		{ID: "a", Title: "Tour Hạ Long", Similarity: 0.55},
		{ID: "b", Title: "Tour Sapa", Similarity: 0.72},
	}}
	r := newTestRetriever(&fakeEmbeddingProvider{vector: []float32{0.1, 0.2}}, searcher)

	got, err := r.Retrieve(context.Background(), "tour biển")

	require.NoError(t, err)
	assert.Equal(t, RetrievalFound, got.Status)
	require.Len(t, got.Results, 2)
	// 按相似度降序
	assert.Equal(t, "b", got.Results[0].ID)
	assert.Equal(t, "a", got.Results[1].ID)
}

func TestRetrieveEnforcesThresholdAndTopK(t *testing.T) {
	// 底层返回了越界数据：低于阈值的行 + 超过 TopK 的行
	searcher := &fakeSearcher{matches: []model.TourMatch{
		{ID: "a", Similarity: 0.31},
		{ID: "b", Similarity: 0.1},
		{ID: "c", Similarity: 0.9},
		{ID: "d", Similarity: 0.5},
	}}
	r := newTestRetriever(&fakeEmbeddingProvider{vector: []float32{0.1}}, searcher)

	got, err := r.Retrieve(context.Background(), "tour biển")

	require.NoError(t, err)
	assert.Equal(t, RetrievalFound, got.Status)
	require.Len(t, got.Results, 2)
	assert.Equal(t, "c", got.Results[0].ID)
	assert.Equal(t, "d", got.Results[1].ID)
}

func TestRetrieveKeepsExactThresholdMatch(t *testing.T) {
	searcher := &fakeSearcher{matches: []model.TourMatch{
		{ID: "edge", Similarity: 0.3},
	}}
	r := newTestRetriever(&fakeEmbeddingProvider{vector: []float32{0.1}}, searcher)

	got, err := r.Retrieve(context.Background(), "tour biển")

	require.NoError(t, err)
	assert.Equal(t, RetrievalFound, got.Status)
	require.Len(t, got.Results, 1)
	assert.Equal(t, "edge", got.Results[0].ID)
}

func TestRetrieveNotFound(t *testing.T) {
	r := newTestRetriever(&fakeEmbeddingProvider{vector: []float32{0.1}}, &fakeSearcher{})

	got, err := r.Retrieve(context.Background(), "tour sao hỏa")

	require.NoError(t, err)
	assert.Equal(t, RetrievalNotFound, got.Status)
	assert.Empty(t, got.Results)
}

func TestRetrieveEmbeddingFailureDegrades(t *testing.T) {
	r := newTestRetriever(&fakeEmbeddingProvider{err: errBoom}, &fakeSearcher{})

	got, err := r.Retrieve(context.Background(), "tour biển")

	require.NoError(t, err)
	assert.Equal(t, RetrievalUnavailable, got.Status)
}

func TestRetrieveSearchFailureDegrades(t *testing.T) {
	r := newTestRetriever(&fakeEmbeddingProvider{vector: []float32{0.1}}, &fakeSearcher{err: errBoom})

	got, err := r.Retrieve(context.Background(), "tour biển")

	require.NoError(t, err)
	assert.Equal(t, RetrievalUnavailable, got.Status)
}

func TestRetrieveDimensionMismatchIsHardError(t *testing.T) {
	embedErr := fmt.Errorf("%w: got 4, want 768", ErrDimensionMismatch)
	r := newTestRetriever(&fakeEmbeddingProvider{err: embedErr}, &fakeSearcher{})

	_, err := r.Retrieve(context.Background(), "tour biển")
	assert.ErrorIs(t, err, ErrDimensionMismatch)

	r = newTestRetriever(&fakeEmbeddingProvider{vector: []float32{0.1}},
		&fakeSearcher{err: dao.ErrEmbeddingDimMismatch})

	_, err = r.Retrieve(context.Background(), "tour biển")
	assert.ErrorIs(t, err, dao.ErrEmbeddingDimMismatch)
}
