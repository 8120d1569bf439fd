package chat

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"joigo-tour-backend/config"
	"joigo-tour-backend/model"
	"joigo-tour-backend/utils"

	"github.com/google/uuid"
	"github.com/tmc/langchaingo/llms/openai"
)

const (
	// LLM 流式输出可能较慢，放宽超时
	generationTimeout = 300 * time.Second

	maxTitleRunes = 40
)

// Result 一轮对话的处理结果
type Result struct {
	Reply          string
	SessionID      string
	RewrittenQuery string
	RelevantTours  int
	Degraded       bool
}

// Pipeline 串联会话解析、历史加载、查询改写、向量检索、上下文拼装与生成。
// 所有外部调用按顺序阻塞执行；改写和检索失败降级，生成失败返回致歉文案。
type Pipeline struct {
	Store         SessionStore
	Rewriter      *QueryRewriter
	Retriever     *Retriever
	Assembler     *ContextAssembler
	Generator     *AnswerGenerator
	HistoryWindow int
}

// DefaultPipeline 由 Init 装配的全局实例
var DefaultPipeline *Pipeline

// Init 按配置装配 DefaultPipeline
func Init() error {
	llm, err := openai.New(
		openai.WithModel(config.Cfg.Model.ChatModel),
		openai.WithToken(config.Cfg.Model.APIKey),
		openai.WithBaseURL(config.Cfg.Model.BaseURL),
		openai.WithHTTPClient(utils.NewHTTPClient(
			utils.WithTimeout(generationTimeout),
		)),
	)
	if err != nil {
		return fmt.Errorf("failed to create llm client: %v", err)
	}

	provider, err := NewOpenAIEmbeddingProvider()
	if err != nil {
		return err
	}

	var store SessionStore
	switch config.Cfg.Chat.SessionStore {
	case "memory":
		store = NewMemorySessionStore()
	default:
		store = NewPostgresSessionStore()
	}

	policyDoc := ""
	if path := config.Cfg.Chat.PolicyDocPath; path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			slog.Warn("failed to read policy document, continuing without it", "path", path, "err", err)
		} else {
			policyDoc = strings.TrimSpace(string(data))
		}
	}

	DefaultPipeline = &Pipeline{
		Store:    store,
		Rewriter: NewQueryRewriter(llm),
		Retriever: &Retriever{
			Provider:  provider,
			Searcher:  DBTourSearcher{},
			Threshold: config.Cfg.Chat.SimilarityThreshold,
			TopK:      config.Cfg.Chat.TopK,
		},
		Assembler: &ContextAssembler{
			ExchangeRateVND: config.Cfg.Chat.ExchangeRateVND,
			PolicyDoc:       policyDoc,
		},
		Generator:     NewAnswerGenerator(llm),
		HistoryWindow: config.Cfg.Chat.HistoryWindow,
	}
	return nil
}

// Handle 处理一条用户消息。持久化失败只记日志，已生成的回复仍然返回。
func (p *Pipeline) Handle(ctx context.Context, userID *string, sessionID, language, message string) (*Result, error) {
	language = NormalizeLanguage(language)

	session, err := p.resolveSession(ctx, userID, sessionID, language, message)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve session: %v", err)
	}

	history, err := p.Store.RecentTurns(ctx, session.SessionID, p.HistoryWindow)
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %v", err)
	}

	// 占位标题的空会话在收到首条消息时回填标题
	if session.Title == model.DefaultSessionTitle && len(history) == 0 {
		if err := p.Store.UpdateTitle(ctx, session.SessionID, deriveTitle(message)); err != nil {
			slog.Warn("failed to backfill session title", "session_id", session.SessionID, "err", err)
		}
	}

	rewritten := p.Rewriter.Rewrite(ctx, history, message)

	retrieval, err := p.Retriever.Retrieve(ctx, rewritten)
	if err != nil {
		return nil, fmt.Errorf("retrieval failed: %v", err)
	}

	contextBlock := p.Assembler.Assemble(retrieval.Results, language)

	answer := p.Generator.Generate(ctx, language, contextBlock, history, message)

	if err := p.Store.AppendTurn(ctx, session.SessionID, model.RoleUser, message); err != nil {
		slog.Error("failed to persist user turn", "session_id", session.SessionID, "err", err)
	} else if err := p.Store.AppendTurn(ctx, session.SessionID, model.RoleAssistant, answer.Text); err != nil {
		slog.Error("failed to persist assistant turn", "session_id", session.SessionID, "err", err)
	}

	result := &Result{
		Reply:         answer.Text,
		SessionID:     session.SessionID,
		RelevantTours: len(retrieval.Results),
		Degraded:      answer.Degraded,
	}
	if rewritten != message {
		result.RewrittenQuery = rewritten
	}
	return result, nil
}

// resolveSession 指定了存在的会话则复用；已登录用户未指定时复用其最近会话；
// 否则新建。新建会话的标题取首条消息截断。
func (p *Pipeline) resolveSession(ctx context.Context, userID *string, sessionID, language, message string) (*model.ChatSession, error) {
	if sessionID != "" {
		session, err := p.Store.GetSession(ctx, sessionID)
		if err != nil {
			return nil, err
		}
		if session != nil {
			return session, nil
		}
		// 客户端自带的新会话标识，沿用它建会话
		return p.Store.CreateSession(ctx, sessionID, userID, deriveTitle(message), language)
	}

	if userID != nil {
		session, err := p.Store.LatestSession(ctx, *userID)
		if err != nil {
			return nil, err
		}
		if session != nil {
			return session, nil
		}
	}

	return p.Store.CreateSession(ctx, "", userID, deriveTitle(message), language)
}

func deriveTitle(message string) string {
	title := strings.TrimSpace(message)
	if title == "" {
		return model.DefaultSessionTitle
	}
	return truncateRunes(title, maxTitleRunes)
}

// NormalizeLanguage 未知取值一律回落到越南语
func NormalizeLanguage(language string) string {
	if strings.EqualFold(language, model.LanguageEN) {
		return model.LanguageEN
	}
	return model.LanguageVI
}

func newSessionID() string {
	return uuid.New().String()
}
