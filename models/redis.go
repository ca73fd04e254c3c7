package models

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisClient is nil when Redis is unavailable. Callers treat a nil client as
// "no cache, no cart persistence" and fall back to in-memory state.
var RedisClient *redis.Client

func InitRedis() {
	opts, err := redisOptions()
	if err != nil {
		log.Printf("Invalid Redis configuration: %v; running without cache", err)
		return
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("Redis unreachable: %v; running without cache", err)
		client.Close()
		return
	}

	RedisClient = client
	log.Println("Redis connected")
}

func redisOptions() (*redis.Options, error) {
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		return redis.ParseURL(redisURL)
	}
	return &redis.Options{
		Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
	}, nil
}

func CloseRedis() {
	if RedisClient != nil {
		RedisClient.Close()
	}
}
