package chat

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"strings"
	"text/template"

	"joigo-tour-backend/model"

	"github.com/tmc/langchaingo/llms"
)

var (
	//go:embed prompts/system_vi.txt
	systemPromptVI string

	//go:embed prompts/system_en.txt
	systemPromptEN string
)

// 模型即使被要求输出纯文本也常带富文本标记，统一剥掉
var markupSequences = []string{"**", "__", "*", "_"}

// Answer 单轮回复。Degraded 表示生成调用失败，Text 为固定致歉文案。
type Answer struct {
	Text     string
	Degraded bool
}

// AnswerGenerator 每条用户消息只调用一次生成模型，失败不重试
type AnswerGenerator struct {
	llm llms.Model
}

func NewAnswerGenerator(llm llms.Model) *AnswerGenerator {
	return &AnswerGenerator{llm: llm}
}

func (g *AnswerGenerator) Generate(ctx context.Context, language, contextBlock string, history []Turn, message string) Answer {
	messages, err := g.buildMessages(language, contextBlock, history, message)
	if err != nil {
		slog.Error("failed to build generation prompt", "err", err)
		return Answer{Text: busyMessage(language), Degraded: true}
	}

	resp, err := g.llm.GenerateContent(ctx, messages)
	if err != nil {
		slog.Error("generation call failed", "err", err)
		return Answer{Text: busyMessage(language), Degraded: true}
	}
	if len(resp.Choices) == 0 {
		slog.Error("generation returned no choices")
		return Answer{Text: busyMessage(language), Degraded: true}
	}

	return Answer{Text: StripMarkup(resp.Choices[0].Content)}
}

func (g *AnswerGenerator) buildMessages(language, contextBlock string, history []Turn, message string) ([]llms.MessageContent, error) {
	systemPrompt := systemPromptVI
	if language == model.LanguageEN {
		systemPrompt = systemPromptEN
	}

	tmpl, err := template.New("system").Parse(systemPrompt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse prompt template: %v", err)
	}

	var buf bytes.Buffer
	data := struct {
		Context string
	}{
		Context: contextBlock,
	}
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to execute template: %v", err)
	}

	messages := make([]llms.MessageContent, 0, len(history)+2)
	messages = append(messages, llms.TextParts(llms.ChatMessageTypeSystem, buf.String()))

	for _, turn := range history {
		role := llms.ChatMessageTypeHuman
		if turn.Role == model.RoleAssistant {
			role = llms.ChatMessageTypeAI
		}
		messages = append(messages, llms.TextParts(role, turn.Content))
	}

	messages = append(messages, llms.TextParts(llms.ChatMessageTypeHuman, message))
	return messages, nil
}

// StripMarkup 去掉加粗/斜体标记
func StripMarkup(s string) string {
	for _, seq := range markupSequences {
		s = strings.ReplaceAll(s, seq, "")
	}
	return strings.TrimSpace(s)
}

func busyMessage(language string) string {
	if language == model.LanguageEN {
		return "Sorry, the system is busy right now. Please try again in a few minutes."
	}
	return "Xin lỗi, hệ thống đang bận. Vui lòng thử lại sau ít phút."
}
