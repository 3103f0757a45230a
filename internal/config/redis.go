package config

import (
	"os"
	"strconv"
	"sync"
)

type RedisConfig struct {
	Address  string
	Password string
	DB       int
}

var (
	redisConfig *RedisConfig
	redisOnce   sync.Once
)

func LoadRedisConfig() *RedisConfig {
	redisOnce.Do(func() {
		db, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
		redisConfig = &RedisConfig{
			Address:  os.Getenv("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       db,
		}
		if redisConfig.Address == "" {
			redisConfig.Address = "localhost:6379"
		}
	})
	return redisConfig
}
