package chat

import (
	"context"
	"testing"

	"joigo-tour-backend/model"

	"github.com/stretchr/testify/assert"
)

func TestGenerateStripsMarkup(t *testing.T) {
	llm := &fakeLLM{reply: "**Tour Hạ Long** có giá _2,300,000 VNĐ_."}
	g := NewAnswerGenerator(llm)

	got := g.Generate(context.Background(), model.LanguageVI, "context", nil, "giá bao nhiêu?")

	assert.False(t, got.Degraded)
	assert.Equal(t, "Tour Hạ Long có giá 2,300,000 VNĐ.", got.Text)
}

func TestGenerateDegradesOnFailure(t *testing.T) {
	g := NewAnswerGenerator(&fakeLLM{err: errBoom})

	got := g.Generate(context.Background(), model.LanguageVI, "context", nil, "giá bao nhiêu?")
	assert.True(t, got.Degraded)
	assert.Equal(t, "Xin lỗi, hệ thống đang bận. Vui lòng thử lại sau ít phút.", got.Text)

	got = g.Generate(context.Background(), model.LanguageEN, "context", nil, "how much?")
	assert.True(t, got.Degraded)
	assert.Equal(t, "Sorry, the system is busy right now. Please try again in a few minutes.", got.Text)
}

func TestStripMarkup(t *testing.T) {
	assert.Equal(t, "plain", StripMarkup("plain"))
	assert.Equal(t, "bold and italic", StripMarkup("**bold** and *italic*"))
	assert.Equal(t, "underlined", StripMarkup("  __underlined__  "))
}
