package main

import (
	"cleaning-app/reviews-seeder/config"
	"cleaning-app/reviews-seeder/internal/repository"
	"cleaning-app/reviews-seeder/internal/services"
	"cleaning-app/reviews-seeder/utils"
	"cleaning-app/reviews-seeder/utils/mongodb"
	"context"
	"log"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("[SEED] %v", err)
	}
}

func run() error {
	// 1. Базовый контекст + менеджер завершения
	ctx, shutdownManager := utils.NewShutdownManager(context.Background())
	shutdownManager.StartListening()
	defer func() {
		if err := shutdownManager.Shutdown(); err != nil {
			log.Printf("[SHUTDOWN] %v", err)
		}
	}()

	// 2. Загрузка конфигурации
	cfg, err := config.NewConfig()
	if err != nil {
		return err
	}

	// 3. Подключение к MongoDB
	client, err := mongodb.NewMongoDBConnection(ctx, cfg.MongoDB)
	if err != nil {
		return err
	}
	shutdownManager.Register(func(ctx context.Context) error {
		log.Println("[SHUTDOWN] Closing MongoDB connection...")
		return client.Disconnect(ctx)
	})

	// 4. Кеш шлюза (необязательно)
	var cache services.CacheInvalidator
	if cfg.Redis.Enabled() {
		redisClient, err := utils.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			log.Printf("[REDIS] Cache invalidation disabled: %v", err)
		} else {
			shutdownManager.Register(func(context.Context) error {
				log.Println("[SHUTDOWN] Closing Redis connection...")
				return redisClient.Close()
			})
			cache = utils.NewCacheInvalidator(redisClient, cfg.Redis.ListKey)
		}
	}

	// 5. Заполнение коллекции
	repo := repository.NewReviewRepository(client.Database(cfg.MongoDB.DBName), cfg.Seed.Collection)
	res, err := services.NewSeedService(repo, cache).Seed(ctx)
	if err != nil {
		return err
	}

	log.Printf("[SEED] Done: %d reviews in %s.%s", len(res.InsertedIDs), cfg.MongoDB.DBName, res.Collection)
	return nil
}
