package main

import (
	"crypto/rand"
	"encoding/base64"
	"flag"
	"log/slog"
	"os"

	"joigo-tour-backend/config"
	"joigo-tour-backend/middleware"
	"joigo-tour-backend/model"
)

func generateJWTSecret() (string, error) {
	key := make([]byte, 32)
	_, err := rand.Read(key)
	if err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(key), nil
}

// 不带 -user 时生成新的 JWT 密钥；带 -user 时用配置的密钥
// 签发一个开发用 bearer token，调接口时直接塞 Authorization 头
func main() {
	configPath := flag.String("config", "./config/config.yaml", "path to config file")
	user := flag.String("user", "", "profile id to mint a dev token for")
	role := flag.String("role", model.RoleMember, "token role: user or admin")
	flag.Parse()

	if *user == "" {
		secret, err := generateJWTSecret()
		if err != nil {
			slog.Error("Failed to generate secret", "err", err)
			os.Exit(1)
		}
		slog.Info("Generated JWT Secret:", "secret", secret)
		return
	}

	if err := config.Init(*configPath); err != nil {
		slog.Error("Failed to load config", "err", err)
		os.Exit(1)
	}

	token, err := middleware.GenerateToken(*user, *role)
	if err != nil {
		slog.Error("Failed to generate token", "err", err)
		os.Exit(1)
	}

	slog.Info("Generated dev token", "user_id", *user, "role", *role, "token", token)
}
