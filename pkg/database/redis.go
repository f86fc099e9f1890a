package database

import (
	"context"
	"fmt"
	"hospital_survey_backend/internal/config"
	"log"

	"github.com/go-redis/redis/v8"
)

// InitRedis conecta ao Redis usado como cache do painel. Retorna nil
// quando o host não está configurado (instalação local sem Redis).
func InitRedis(cfg *config.RedisConfig) (*redis.Client, error) {
	if cfg.Host == "" {
		log.Println("Redis not configured, dashboard cache disabled")
		return nil, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     20,
		MinIdleConns: 2,
	})

	ctx := context.Background()
	_, err := rdb.Ping(ctx).Result()
	if err != nil {
		return nil, err
	}

	log.Println("Redis connection established")
	return rdb, nil
}
