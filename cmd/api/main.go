package main

import (
	"context"
	"log"

	"kvcache/internal/core/config"
	"kvcache/internal/core/logger"
	"kvcache/internal/core/server"
	"kvcache/internal/features/kv/adapters"
	"kvcache/internal/features/kv/handler"
	"kvcache/internal/features/kv/ports"
	"kvcache/internal/features/kv/service"

	"go.uber.org/zap"
)

// @title kvcache API
// @version 1.0
// @description Uniform key-value cache over interchangeable backends (memory, file, JSON file, redis).
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
		zap.String("cache_backend", cfg.Cache.Backend),
	)

	store, err := buildStore(cfg)
	if err != nil {
		l.Fatal("Failed to initialize cache backend", zap.Error(err))
	}

	kvService := service.NewKVService(store)
	kvHandler := handler.NewKVHandler(kvService)

	srv := server.New(cfg)

	// Register Routes
	srv.App.Get("/keys/:key", kvHandler.GetKey)
	srv.App.Put("/keys/:key", kvHandler.SetKey)
	srv.App.Delete("/keys/:key", kvHandler.DeleteKey)
	srv.App.Get("/keys/:key/exists", kvHandler.KeyExists)
	srv.App.Post("/keys/mget", kvHandler.GetMany)
	srv.App.Post("/keys/mset", kvHandler.SetMany)
	srv.App.Post("/keys/mdel", kvHandler.DeleteMany)
	srv.App.Delete("/keys", kvHandler.Flush)

	if err := srv.Run(); err != nil {
		l.Fatal("Server failed to start", zap.Error(err))
	}
}

// buildStore wires the backend selected by CACHE_BACKEND.
func buildStore(cfg *config.AppConfig) (ports.Store, error) {
	switch cfg.Cache.Backend {
	case config.BackendMemory:
		return adapters.NewMemoryStore(), nil
	case config.BackendFile:
		return adapters.NewFileStore(cfg.Cache.Dir, adapters.MsgpackCodec{})
	case config.BackendJSON:
		return adapters.NewFileStore(cfg.Cache.Dir, adapters.JSONCodec{})
	case config.BackendRedis:
		client, err := adapters.NewRedisClient(cfg.Cache.RedisURL)
		if err != nil {
			return nil, err
		}
		if err := client.Ping(context.Background()); err != nil {
			return nil, err
		}
		logger.Named("cache").Info("Redis connection verified")
		return adapters.NewRedisStore(client), nil
	default:
		// config.Validate rejects unknown backends before we get here.
		return adapters.NewMemoryStore(), nil
	}
}
