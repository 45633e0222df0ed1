package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rogerio-castellano/store-api/internal/auth"
	"github.com/rogerio-castellano/store-api/internal/config"
	"github.com/rogerio-castellano/store-api/internal/db"
	"github.com/rogerio-castellano/store-api/internal/http/ban"
	"github.com/rogerio-castellano/store-api/internal/http/handlers"
	rl "github.com/rogerio-castellano/store-api/internal/http/rate_limiter"
	"github.com/rogerio-castellano/store-api/internal/http/router"
	"github.com/rogerio-castellano/store-api/internal/redissvc"
	"github.com/rogerio-castellano/store-api/internal/repo"
)

var ctx = context.Background()

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("❌ Invalid configuration:", err)
	}
	auth.SetSecret(cfg.JWTSecret)

	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatalf("Could not connect to Redis: %v", err)
	}
	defer rdb.Close()

	redisService := redissvc.NewRedisService(rdb, ctx)
	ban.SetRedisService(redisService)

	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("❌ Could not connect to database:", err)
	}
	defer database.Close()

	handlers.SetUserRepo(repo.NewPostgresUserRepository(database))
	handlers.SetProductRepo(repo.NewPostgresProductRepository(database))

	go ban.StartDailyBanSummary(24 * time.Hour)
	go rl.StartVisitorCleanupLoop()

	r := router.NewRouter()
	log.Println("✅ Server running on :8080")
	if err := http.ListenAndServe(":8080", r); err != nil {
		log.Fatal(err)
	}
}
