package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"joigo-tour-backend/config"
	"joigo-tour-backend/dao"
	"joigo-tour-backend/model"
	"joigo-tour-backend/service/media"
)

// 把本地目录下的 tour 图片批量搬到 OSS，对象名保留原文件名，
// 同时把引用该文件名的 tours.image 改写为 object name。迁移老数据用
func main() {
	configPath := flag.String("config", "./config/config.yaml", "path to config file")
	dir := flag.String("dir", "./images", "directory containing tour images")
	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		slog.Error("Failed to load config", "err", err)
		os.Exit(1)
	}
	if err := dao.Init(config.Cfg.Database.DSN); err != nil {
		slog.Error("Failed to connect to database", "err", err)
		os.Exit(1)
	}

	entries, err := os.ReadDir(*dir)
	if err != nil {
		slog.Error("Failed to read image directory", "dir", *dir, "err", err)
		os.Exit(1)
	}

	ctx := context.Background()
	uploaded := 0
	for _, entry := range entries {
		if entry.IsDir() || !isImage(entry.Name()) {
			continue
		}

		data, err := os.ReadFile(filepath.Join(*dir, entry.Name()))
		if err != nil {
			slog.Error("Failed to read image", "file", entry.Name(), "err", err)
			continue
		}

		objectName := "tours/" + entry.Name()
		if err := media.UploadObject(ctx, objectName, data); err != nil {
			slog.Error("Failed to upload image", "file", entry.Name(), "err", err)
			continue
		}

		err = dao.DB.WithContext(ctx).Model(&model.Tour{}).
			Where("image = ?", entry.Name()).
			Update("image", objectName).Error
		if err != nil {
			slog.Error("Failed to update tour image reference", "file", entry.Name(), "err", err)
		}

		slog.Info("uploaded", "object_name", objectName)
		uploaded++
	}

	slog.Info("upload finished", "uploaded", uploaded)
}

func isImage(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".jpg", ".jpeg", ".png", ".webp":
		return true
	}
	return false
}
