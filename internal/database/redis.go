package database

import (
	"sync"

	"mtblog/pkg/config"
	"mtblog/pkg/tokenstore"
)

var (
	tokenStoreInstance *tokenstore.TokenStore
	tokenStoreOnce     sync.Once
)

// GetTokenStore 获取令牌吊销存储的单例实例
func GetTokenStore() *tokenstore.TokenStore {
	tokenStoreOnce.Do(func() {
		cfg := config.GetConfig()
		tokenStoreInstance = tokenstore.NewTokenStore(&tokenstore.Config{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			Prefix:   cfg.Redis.Prefix,
		})
	})
	return tokenStoreInstance
}

// CloseTokenStore 关闭Redis连接
func CloseTokenStore() error {
	if tokenStoreInstance != nil {
		return tokenStoreInstance.Close()
	}
	return nil
}
