package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"joigo-tour-backend/config"
	"joigo-tour-backend/dao"
	"joigo-tour-backend/model"
)

// match_tours: 余弦相似度检索，低于阈值的行直接在库内过滤掉。
// 向量维度必须与 tours.embedding 列一致
const matchToursFunction = `
CREATE OR REPLACE FUNCTION match_tours(
	query_embedding vector(%d),
	match_threshold float,
	match_count int
)
RETURNS TABLE (
	id uuid,
	title text,
	price double precision,
	description text,
	similarity float
)
LANGUAGE sql STABLE
AS $$
	SELECT
		tours.id,
		tours.title,
		tours.price,
		tours.description,
		1 - (tours.embedding <=> query_embedding) AS similarity
	FROM tours
	WHERE tours.embedding IS NOT NULL
		AND 1 - (tours.embedding <=> query_embedding) >= match_threshold
	ORDER BY similarity DESC
	LIMIT match_count;
$$;
`

const embeddingIndex = `
CREATE INDEX IF NOT EXISTS idx_tours_embedding ON tours
USING hnsw (embedding vector_cosine_ops);
`

func main() {
	configPath := flag.String("config", "./config/config.yaml", "path to config file")
	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		slog.Error("Failed to load config", "err", err)
		os.Exit(1)
	}
	if err := dao.Init(config.Cfg.Database.DSN); err != nil {
		slog.Error("Failed to connect to database", "err", err)
		os.Exit(1)
	}

	if err := dao.DB.Exec("CREATE EXTENSION IF NOT EXISTS vector").Error; err != nil {
		slog.Error("Failed to create vector extension", "err", err)
		os.Exit(1)
	}

	err := dao.DB.AutoMigrate(
		&model.Profile{},
		&model.Tour{},
		&model.Favorite{},
		&model.Booking{},
		&model.Consultation{},
		&model.ChatSession{},
		&model.ChatMessage{},
		&model.Visitor{},
		&model.TourView{},
	)
	if err != nil {
		slog.Error("Failed to migrate tables", "err", err)
		os.Exit(1)
	}

	fn := fmt.Sprintf(matchToursFunction, config.Cfg.Model.EmbeddingDim)
	if err := dao.DB.Exec(fn).Error; err != nil {
		slog.Error("Failed to create match_tours function", "err", err)
		os.Exit(1)
	}

	if err := dao.DB.Exec(embeddingIndex).Error; err != nil {
		slog.Error("Failed to create embedding index", "err", err)
		os.Exit(1)
	}

	slog.Info("schema migrated")
}
