package main

import (
	"flag"
	"log/slog"
	"os"

	"joigo-tour-backend/config"
	"joigo-tour-backend/dao"
	"joigo-tour-backend/router"
	"joigo-tour-backend/service/chat"
	"joigo-tour-backend/service/mq"

	"github.com/gin-gonic/gin"
)

func main() {
	configPath := flag.String("config", "./config/config.yaml", "path to config file")
	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		slog.Error("Failed to load config", "err", err)
		os.Exit(1)
	}
	gin.SetMode(config.Cfg.Server.Mode)

	if err := dao.Init(config.Cfg.Database.DSN); err != nil {
		slog.Error("Failed to connect to database", "err", err)
		os.Exit(1)
	}

	if err := chat.Init(); err != nil {
		slog.Error("Failed to init chat pipeline", "err", err)
		os.Exit(1)
	}

	if config.Cfg.MQ.Enabled {
		if err := mq.Init(); err != nil {
			slog.Error("Failed to init mq", "err", err)
			os.Exit(1)
		}
		if err := mq.Run(); err != nil {
			slog.Error("Failed to start mq", "err", err)
			os.Exit(1)
		}
	}

	r := router.Register()
	if err := r.Run(":" + config.Cfg.Server.Port); err != nil {
		slog.Error("Failed to run server", "err", err)
		os.Exit(1)
	}
}
