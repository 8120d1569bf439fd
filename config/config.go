package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Cfg 全局配置实例
var Cfg Config

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Model    ModelConfig    `mapstructure:"model"`
	Chat     ChatConfig     `mapstructure:"chat"`
	MQ       MQConfig       `mapstructure:"mq"`
	OSS      OSSConfig      `mapstructure:"oss"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

type DatabaseConfig struct {
	DSN string `mapstructure:"dsn"`
}

type JWTConfig struct {
	SecretKey   string `mapstructure:"secret_key"`
	ExpireHours int    `mapstructure:"expire_hours"`
}

type ModelConfig struct {
	APIKey         string `mapstructure:"api_key"`
	BaseURL        string `mapstructure:"base_url"`
	ChatModel      string `mapstructure:"chat_model"`
	EmbeddingModel string `mapstructure:"embedding_model"`

	// 向量维度，必须与 tours 表 embedding 列的维度一致
	EmbeddingDim int `mapstructure:"embedding_dim"`
}

type ChatConfig struct {
	// 读取历史时保留的最近消息条数
	HistoryWindow int `mapstructure:"history_window"`

	SimilarityThreshold float64 `mapstructure:"similarity_threshold"`
	TopK                int     `mapstructure:"top_k"`

	// USD -> VND 固定汇率
	ExchangeRateVND float64 `mapstructure:"exchange_rate_vnd"`

	// 预订政策参考文档路径，为空则不附加
	PolicyDocPath string `mapstructure:"policy_doc_path"`

	// 会话存储类型: postgres | memory
	SessionStore string `mapstructure:"session_store"`
}

type MQConfig struct {
	Enabled    bool     `mapstructure:"enabled"`
	NameServer []string `mapstructure:"name_server"`
}

type OSSConfig struct {
	Region          string `mapstructure:"region"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	AccessKeySecret string `mapstructure:"access_key_secret"`
	BucketName      string `mapstructure:"bucket_name"`
}

func Init(configPath string) error {
	viper.SetConfigFile(configPath)
	viper.SetConfigType("yaml")
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file: %v", err)
	}

	if err := viper.Unmarshal(&Cfg); err != nil {
		return fmt.Errorf("failed to unmarshal config: %v", err)
	}

	return nil
}

func setDefaults() {
	viper.SetDefault("server.port", "8000")
	viper.SetDefault("server.mode", "debug")
	viper.SetDefault("jwt.expire_hours", 24)
	viper.SetDefault("model.embedding_dim", 768)
	viper.SetDefault("chat.history_window", 12)
	viper.SetDefault("chat.similarity_threshold", 0.3)
	viper.SetDefault("chat.top_k", 5)
	viper.SetDefault("chat.exchange_rate_vnd", 23000)
	viper.SetDefault("chat.session_store", "postgres")
	viper.SetDefault("mq.enabled", false)
}
