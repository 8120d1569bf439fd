package chat

import (
	"context"
	"testing"
	"time"

	"joigo-tour-backend/model"

	"github.com/stretchr/testify/assert"
)

func sampleHistory() []Turn {
	return []Turn{
		{Role: model.RoleUser, Content: "Có tour nào đi Đà Nẵng không?", CreatedAt: time.Now()},
		{Role: model.RoleAssistant, Content: "Có, hiện có tour Đà Nẵng 3 ngày 2 đêm.", CreatedAt: time.Now()},
	}
}

func TestRewriteEmptyHistorySkipsModel(t *testing.T) {
	llm := &fakeLLM{reply: "should not be used"}
	r := NewQueryRewriter(llm)

	got := r.Rewrite(context.Background(), nil, "tour đó giá bao nhiêu?")

	assert.Equal(t, "tour đó giá bao nhiêu?", got)
	assert.Zero(t, llm.calls)
}

func TestRewriteUsesModelOutput(t *testing.T) {
	llm := &fakeLLM{reply: "  Giá tour Đà Nẵng 3 ngày 2 đêm là bao nhiêu?\n"}
	r := NewQueryRewriter(llm)

	got := r.Rewrite(context.Background(), sampleHistory(), "tour đó giá bao nhiêu?")

	assert.Equal(t, "Giá tour Đà Nẵng 3 ngày 2 đêm là bao nhiêu?", got)
	assert.Equal(t, 1, llm.calls)
}

func TestRewriteFallsBackOnError(t *testing.T) {
	llm := &fakeLLM{err: errBoom}
	r := NewQueryRewriter(llm)

	got := r.Rewrite(context.Background(), sampleHistory(), "tour đó giá bao nhiêu?")

	assert.Equal(t, "tour đó giá bao nhiêu?", got)
}

func TestRewriteFallsBackOnEmptyOutput(t *testing.T) {
	llm := &fakeLLM{reply: "   \n"}
	r := NewQueryRewriter(llm)

	got := r.Rewrite(context.Background(), sampleHistory(), "tour đó giá bao nhiêu?")

	assert.Equal(t, "tour đó giá bao nhiêu?", got)
}
