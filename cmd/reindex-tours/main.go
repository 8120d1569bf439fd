package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"joigo-tour-backend/config"
	"joigo-tour-backend/dao"
	"joigo-tour-backend/service/indexer"
)

// 全量重建 tour 向量。换 embedding 模型或改维度后跑一次
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

	ctx := context.Background()
	tours, err := dao.GetTours(ctx)
	if err != nil {
		slog.Error("Failed to load tours", "err", err)
		os.Exit(1)
	}

	failed := 0
	for _, tour := range tours {
		if err := indexer.IndexTour(ctx, tour.ID); err != nil {
			slog.Error("Failed to index tour", "tour_id", tour.ID, "err", err)
			failed++
		}
	}

	slog.Info("reindex finished", "total", len(tours), "failed", failed)
	if failed > 0 {
		os.Exit(1)
	}
}
