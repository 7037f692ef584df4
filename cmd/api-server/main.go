package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"filmorate/database"
	"filmorate/internal/catalog/handler"
	"filmorate/internal/catalog/service"
	"filmorate/internal/catalog/storage"
	dbstore "filmorate/internal/catalog/storage/db"
	"filmorate/internal/catalog/storage/memory"
	"filmorate/internal/config"
	"filmorate/internal/logger"
	"filmorate/internal/middleware"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	slogger := logger.New(cfg.LogLevel, cfg.LogFormat)

	var (
		films   storage.FilmStore
		users   storage.UserStore
		friends storage.FriendStore
		likes   storage.LikeStore
		genres  storage.GenreStore
		mpa     storage.MPAStore
	)

	switch cfg.StorageBackend {
	case "postgres":
		gormDB, err := database.ConnectDB(cfg, slogger)
		if err != nil {
			log.Fatalf("could not connect to database: %v", err)
		}
		genres = dbstore.NewGenreStore(gormDB)
		mpa = dbstore.NewMPAStore(gormDB)
		films = dbstore.NewFilmStore(gormDB, genres, mpa)
		users = dbstore.NewUserStore(gormDB)
		friends = dbstore.NewFriendStore(gormDB, users)
		likes = dbstore.NewLikeStore(gormDB, films, users)
	default:
		genres = memory.NewGenreStore()
		mpa = memory.NewMPAStore()
		films = memory.NewFilmStore(genres, mpa)
		users = memory.NewUserStore()
		friends = memory.NewFriendStore(users)
		likes = memory.NewLikeStore(films, users)
	}
	slogger.Info("storage backend selected", "backend", cfg.StorageBackend)

	cache := service.NewPopularCache(connectRedis(cfg, slogger), cfg.CacheTTL, slogger)

	filmService := service.NewFilmService(films, likes, cache, slogger)
	userService := service.NewUserService(users, friends, slogger)
	genreService := service.NewGenreService(genres)
	mpaService := service.NewMPAService(mpa)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))

	api := r.Group("")
	handler.NewFilmHandler(filmService).RegisterRoutes(api)
	handler.NewUserHandler(userService).RegisterRoutes(api)
	handler.NewReferenceHandler(genreService, mpaService).RegisterRoutes(api)

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	slogger.Info("starting HTTP server", "addr", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

// connectRedis returns nil when no redis is configured or reachable; the
// popular cache degrades to a pass-through in that case.
func connectRedis(cfg *config.Config, slogger *slog.Logger) *redis.Client {
	if cfg.RedisURL == "" {
		return nil
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		slogger.Warn("invalid REDIS_URL, running without cache", "error", err)
		return nil
	}
	if cfg.RedisPassword != "" {
		opts.Password = cfg.RedisPassword
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		slogger.Warn("redis unreachable, running without cache", "error", err)
		client.Close()
		return nil
	}

	slogger.Info("popular cache enabled", "redis", opts.Addr)
	return client
}
