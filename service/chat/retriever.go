package chat

import (
	"context"
	"errors"
	"log/slog"
	"sort"

	"joigo-tour-backend/dao"
	"joigo-tour-backend/model"
)

type RetrievalStatus int

const (
	// RetrievalFound 至少一条结果达到阈值
	RetrievalFound RetrievalStatus = iota

	// RetrievalNotFound 检索正常执行但没有达标结果
	RetrievalNotFound

	// RetrievalUnavailable 向量化或检索不可用，按空结果降级
	RetrievalUnavailable
)

// Retrieval 一次检索的结果
type Retrieval struct {
	Status  RetrievalStatus
	Results []model.TourMatch
}

// TourSearcher 向量相似度检索，返回带 similarity 的候选
type TourSearcher interface {
	MatchTours(ctx context.Context, vector []float32, threshold float64, count int) ([]model.TourMatch, error)
}

// DBTourSearcher 基于 match_tours 函数的检索实现
type DBTourSearcher struct{}

var _ TourSearcher = &DBTourSearcher{}

func (DBTourSearcher) MatchTours(ctx context.Context, vector []float32, threshold float64, count int) ([]model.TourMatch, error) {
	return dao.MatchTours(ctx, vector, threshold, count)
}

type Retriever struct {
	Provider  EmbeddingProvider
	Searcher  TourSearcher
	Threshold float64
	TopK      int
}

// Retrieve 结果数不超过 TopK，且每条 similarity >= Threshold。
// 维度不匹配属于部署错误，直接返回 error；其余失败一律降级为 Unavailable。
func (r *Retriever) Retrieve(ctx context.Context, query string) (Retrieval, error) {
	vector, err := r.Provider.Embed(ctx, query)
	if err != nil {
		if errors.Is(err, ErrDimensionMismatch) {
			return Retrieval{Status: RetrievalUnavailable}, err
		}
		slog.Warn("embedding unavailable, skipping retrieval", "err", err)
		return Retrieval{Status: RetrievalUnavailable}, nil
	}

	candidates, err := r.Searcher.MatchTours(ctx, vector, r.Threshold, r.TopK)
	if err != nil {
		if errors.Is(err, dao.ErrEmbeddingDimMismatch) {
			return Retrieval{Status: RetrievalUnavailable}, err
		}
		slog.Warn("similarity search failed, skipping retrieval", "err", err)
		return Retrieval{Status: RetrievalUnavailable}, nil
	}

	// 底层实现不一定严格遵守阈值和数量约束，这里统一收敛
	results := make([]model.TourMatch, 0, len(candidates))
	for _, c := range candidates {
		if c.Similarity >= r.Threshold {
			results = append(results, c)
		}
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Similarity > results[j].Similarity
	})
	if len(results) > r.TopK {
		results = results[:r.TopK]
	}

	if len(results) == 0 {
		return Retrieval{Status: RetrievalNotFound}, nil
	}
	return Retrieval{Status: RetrievalFound, Results: results}, nil
}
