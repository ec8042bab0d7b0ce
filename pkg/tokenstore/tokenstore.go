package tokenstore

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// Config Redis连接配置
type Config struct {
	Host     string
	Port     int
	Password string
	DB       int
	Prefix   string
}

// TokenStore 基于Redis的令牌吊销表
// 登出时按jti写入，有效期与令牌剩余寿命一致，过期自动清理
type TokenStore struct {
	client *redis.Client
	prefix string
}

// NewTokenStore 创建令牌吊销存储
func NewTokenStore(cfg *Config) *TokenStore {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	return &TokenStore{
		client: client,
		prefix: cfg.Prefix,
	}
}

// Revoke 吊销令牌
func (s *TokenStore) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		// 已过期的令牌无需入表
		return nil
	}
	return s.client.Set(ctx, s.key(jti), 1, ttl).Err()
}

// IsRevoked 检查令牌是否已吊销
func (s *TokenStore) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := s.client.Exists(ctx, s.key(jti)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Ping 检查Redis连接
func (s *TokenStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close 关闭Redis连接
func (s *TokenStore) Close() error {
	return s.client.Close()
}

func (s *TokenStore) key(jti string) string {
	return s.prefix + ":" + jti
}
