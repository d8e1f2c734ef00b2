package config

import (
	"fmt"
	"os"
	"strconv"
)

// Configは各サービス共通の設定
type Config struct {
	Port string // サーバーポート

	PostgresUser     string // DBユーザー
	PostgresPassword string // DBパスワード
	PostgresDB       string // DB名
	PostgresHost     string // DBホスト
	PostgresPort     int    // DBポート

	RedisAddr string // 商品キャッシュ用（空なら無効）

	BcryptCost int // パスワードハッシュのコスト
}

// Loadは環境変数から設定を読む。defaultPortはサービスごとの既定ポート。
func Load(defaultPort string) (Config, error) {
	cfg := Config{
		Port: getenv("PORT", defaultPort),

		PostgresUser:     os.Getenv("POSTGRES_USER"),
		PostgresPassword: os.Getenv("POSTGRES_PASSWORD"),
		PostgresDB:       os.Getenv("POSTGRES_DB"),
		PostgresHost:     getenv("POSTGRES_HOST", "localhost"),

		RedisAddr: os.Getenv("REDIS_ADDR"),

		BcryptCost: 12,
	}

	pgPort, err := atoiEnv("POSTGRES_PORT", 5432)
	if err != nil {
		return Config{}, err
	}
	cfg.PostgresPort = pgPort

	if v := os.Getenv("BCRYPT_COST"); v != "" {
		cost, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("BCRYPT_COST must be number: %w", err)
		}
		cfg.BcryptCost = cost
	}

	//必須チェック（DATABASE_URL運用なら個別変数は不要）
	if os.Getenv("DATABASE_URL") == "" {
		if cfg.PostgresUser == "" {
			return Config{}, fmt.Errorf("POSTGRES_USER is required")
		}
		if cfg.PostgresPassword == "" {
			return Config{}, fmt.Errorf("POSTGRES_PASSWORD is required")
		}
		if cfg.PostgresDB == "" {
			return Config{}, fmt.Errorf("POSTGRES_DB is required")
		}
	}

	return cfg, nil
}

func getenv(key string, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoiEnv(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be number: %w", key, err)
	}
	return i, nil
}
