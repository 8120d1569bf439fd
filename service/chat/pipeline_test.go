package chat

import (
	"context"
	"testing"

	"joigo-tour-backend/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPipeline(store SessionStore, rewriteLLM, generateLLM *fakeLLM, searcher TourSearcher) *Pipeline {
	return &Pipeline{
		Store:    store,
		Rewriter: NewQueryRewriter(rewriteLLM),
		Retriever: &Retriever{
			Provider:  &fakeEmbeddingProvider{vector: []float32{0.1, 0.2}},
			Searcher:  searcher,
			Threshold: 0.3,
			TopK:      5,
		},
		Assembler:     &ContextAssembler{ExchangeRateVND: 23000},
		Generator:     NewAnswerGenerator(generateLLM),
		HistoryWindow: 4,
	}
}

func TestHandleNewAnonymousSession(t *testing.T) {
	store := NewMemorySessionStore()
	rewriteLLM := &fakeLLM{reply: "should not be called"}
	generateLLM := &fakeLLM{reply: "Tour Hạ Long giá 2,300,000 VNĐ."}
	searcher := &fakeSearcher{matches: []model.TourMatch{
		{ID: "a", Title: "Tour Hạ Long", Price: 100, Similarity: 0.6},
	}}
	p := newTestPipeline(store, rewriteLLM, generateLLM, searcher)

	result, err := p.Handle(context.Background(), nil, "", "vi", "có tour hạ long không?")

	require.NoError(t, err)
	assert.NotEmpty(t, result.SessionID)
	assert.Equal(t, "Tour Hạ Long giá 2,300,000 VNĐ.", result.Reply)
	assert.Equal(t, 1, result.RelevantTours)
	assert.False(t, result.Degraded)
	// 首轮没有历史，不触发改写
	assert.Empty(t, result.RewrittenQuery)
	assert.Zero(t, rewriteLLM.calls)

	// 用户消息和回复都已入库
	turns, err := store.Turns(context.Background(), result.SessionID)
	require.NoError(t, err)
	require.Len(t, turns, 2)
	assert.Equal(t, model.RoleUser, turns[0].Role)
	assert.Equal(t, "có tour hạ long không?", turns[0].Content)
	assert.Equal(t, model.RoleAssistant, turns[1].Role)
	assert.Equal(t, result.Reply, turns[1].Content)

	// 新会话标题取首条消息
	session, err := store.GetSession(context.Background(), result.SessionID)
	require.NoError(t, err)
	assert.Equal(t, "có tour hạ long không?", session.Title)
	assert.Equal(t, model.LanguageVI, session.Language)
}

func TestHandleReusesExplicitSessionAndRewrites(t *testing.T) {
	ctx := context.Background()
	store := NewMemorySessionStore()
	session, err := store.CreateSession(ctx, "", nil, "title", model.LanguageVI)
	require.NoError(t, err)
	require.NoError(t, store.AppendTurn(ctx, session.SessionID, model.RoleUser, "có tour hạ long không?"))
	require.NoError(t, store.AppendTurn(ctx, session.SessionID, model.RoleAssistant, "Có tour Hạ Long 3 ngày."))

	rewriteLLM := &fakeLLM{reply: "giá tour Hạ Long 3 ngày"}
	generateLLM := &fakeLLM{reply: "Giá là 2,300,000 VNĐ."}
	p := newTestPipeline(store, rewriteLLM, generateLLM, &fakeSearcher{})

	result, err := p.Handle(ctx, nil, session.SessionID, "vi", "giá bao nhiêu?")

	require.NoError(t, err)
	assert.Equal(t, session.SessionID, result.SessionID)
	assert.Equal(t, 1, rewriteLLM.calls)
	assert.Equal(t, "giá tour Hạ Long 3 ngày", result.RewrittenQuery)
	assert.Zero(t, result.RelevantTours)
}

func TestHandleResumesLatestSessionForUser(t *testing.T) {
	ctx := context.Background()
	store := NewMemorySessionStore()
	userID := "user-1"
	session, err := store.CreateSession(ctx, "", &userID, "old chat", model.LanguageVI)
	require.NoError(t, err)

	p := newTestPipeline(store, &fakeLLM{reply: "q"}, &fakeLLM{reply: "reply"}, &fakeSearcher{})

	result, err := p.Handle(ctx, &userID, "", "vi", "xin chào")

	require.NoError(t, err)
	assert.Equal(t, session.SessionID, result.SessionID)
}

func TestHandleDegradedGeneration(t *testing.T) {
	store := NewMemorySessionStore()
	p := newTestPipeline(store, &fakeLLM{}, &fakeLLM{err: errBoom}, &fakeSearcher{})

	result, err := p.Handle(context.Background(), nil, "", "en", "any tours?")

	require.NoError(t, err)
	assert.True(t, result.Degraded)
	assert.Equal(t, "Sorry, the system is busy right now. Please try again in a few minutes.", result.Reply)

	// 致歉文案同样入库，保持对话完整
	turns, err := store.Turns(context.Background(), result.SessionID)
	require.NoError(t, err)
	require.Len(t, turns, 2)
	assert.Equal(t, result.Reply, turns[1].Content)
}

func TestHandleBackfillsDefaultTitleOnFirstMessage(t *testing.T) {
	ctx := context.Background()
	store := NewMemorySessionStore()
	session, err := store.CreateSession(ctx, "", nil, model.DefaultSessionTitle, model.LanguageVI)
	require.NoError(t, err)

	p := newTestPipeline(store, &fakeLLM{}, &fakeLLM{reply: "reply"}, &fakeSearcher{})

	_, err = p.Handle(ctx, nil, session.SessionID, "vi", "có tour hạ long không?")
	require.NoError(t, err)

	got, err := store.GetSession(ctx, session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, "có tour hạ long không?", got.Title)
}

func TestHandleKeepsCustomTitle(t *testing.T) {
	ctx := context.Background()
	store := NewMemorySessionStore()
	session, err := store.CreateSession(ctx, "", nil, "Chuyến đi hè", model.LanguageVI)
	require.NoError(t, err)

	p := newTestPipeline(store, &fakeLLM{}, &fakeLLM{reply: "reply"}, &fakeSearcher{})

	_, err = p.Handle(ctx, nil, session.SessionID, "vi", "có tour hạ long không?")
	require.NoError(t, err)

	got, err := store.GetSession(ctx, session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, "Chuyến đi hè", got.Title)
}

func TestNormalizeLanguage(t *testing.T) {
	assert.Equal(t, model.LanguageEN, NormalizeLanguage("en"))
	assert.Equal(t, model.LanguageEN, NormalizeLanguage("EN"))
	assert.Equal(t, model.LanguageVI, NormalizeLanguage("vi"))
	assert.Equal(t, model.LanguageVI, NormalizeLanguage(""))
	assert.Equal(t, model.LanguageVI, NormalizeLanguage("fr"))
}

func TestDeriveTitle(t *testing.T) {
	assert.Equal(t, model.DefaultSessionTitle, deriveTitle("   "))
	assert.Equal(t, "xin chào", deriveTitle("  xin chào  "))

	long := "tôi muốn tìm một tour du lịch biển dài ngày cho cả gia đình vào mùa hè này"
	title := deriveTitle(long)
	assert.Equal(t, 43, len([]rune(title)))
	assert.Equal(t, string([]rune(long)[:40])+"...", title)
}
