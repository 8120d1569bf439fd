package chat

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"strings"
	"text/template"

	"github.com/tmc/langchaingo/llms"
)

//go:embed prompts/rewrite.txt
var rewritePrompt string

// QueryRewriter 结合历史把追问改写为独立检索语句。改写是尽力而为的优化，
// 任何失败都降级为原文。
type QueryRewriter struct {
	llm llms.Model
}

func NewQueryRewriter(llm llms.Model) *QueryRewriter {
	return &QueryRewriter{llm: llm}
}

// Rewrite 历史为空时直接返回原文，不调用模型
func (r *QueryRewriter) Rewrite(ctx context.Context, history []Turn, message string) string {
	if len(history) == 0 {
		return message
	}

	prompt, err := r.buildPrompt(history, message)
	if err != nil {
		slog.Warn("failed to build rewrite prompt", "err", err)
		return message
	}

	rewritten, err := llms.GenerateFromSinglePrompt(ctx, r.llm, prompt)
	if err != nil {
		slog.Warn("query rewrite failed, using original message", "err", err)
		return message
	}

	rewritten = strings.TrimSpace(rewritten)
	if rewritten == "" {
		return message
	}
	return rewritten
}

func (r *QueryRewriter) buildPrompt(history []Turn, message string) (string, error) {
	tmpl, err := template.New("rewrite").Parse(rewritePrompt)
	if err != nil {
		return "", fmt.Errorf("failed to parse prompt template: %v", err)
	}

	var lines strings.Builder
	for _, turn := range history {
		lines.WriteString(turn.Role)
		lines.WriteString(": ")
		lines.WriteString(turn.Content)
		lines.WriteString("\n")
	}

	var buf bytes.Buffer
	data := struct {
		History string
		Message string
	}{
		History: lines.String(),
		Message: message,
	}
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %v", err)
	}
	return buf.String(), nil
}
