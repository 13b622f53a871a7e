package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"
	"time"

	"skytrak-service/internal/domain/entity"
	"skytrak-service/internal/infrastructure/config"
	"skytrak-service/internal/infrastructure/persistence"
	"skytrak-service/internal/interface/repository"
	"skytrak-service/pkg/logger"
)

// Loads a JSON array of flights into the flight store, upserting by numero_voo.
func main() {
	file := flag.String("file", "voos.json", "JSON array of flights")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}
	log := logger.NewLogger(cfg.Env)
	defer log.Sync()

	raw, err := os.ReadFile(*file)
	if err != nil {
		log.Fatal("Failed to read seed file", "file", *file, "error", err)
	}

	var flights []entity.Flight
	if err := json.Unmarshal(raw, &flights); err != nil {
		log.Fatal("Failed to parse seed file", "file", *file, "error", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	client, err := persistence.NewMongoClient(ctx, cfg.MongoURI, cfg.MongoUser, cfg.MongoPassword)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB", "error", err)
	}
	defer client.Disconnect(context.Background())

	store := repository.NewMongoFlightRepository(persistence.GetDatabase(client, cfg.MongoDB))
	if cfg.RedisAddr != "" {
		redisClient, err := persistence.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			log.Warn("Redis unavailable, cached flight list may be stale", "error", err)
		} else {
			defer redisClient.Close()
			store = repository.NewCachedFlightRepository(store, redisClient, cfg.FlightCacheTTL, nil, log)
		}
	}

	loaded, skipped := 0, 0
	for i := range flights {
		if flights[i].Key() == "" {
			skipped++
			continue
		}
		if err := store.Upsert(ctx, &flights[i]); err != nil {
			log.Error("Failed to upsert flight", "numero_voo", flights[i].NumeroVoo, "error", err)
			skipped++
			continue
		}
		loaded++
	}

	log.Info("Seed finished", "loaded", loaded, "skipped", skipped)
}
