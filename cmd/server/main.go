package main

import (
	"context"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/ultroidx/movie-platform/internal/config"
	"github.com/ultroidx/movie-platform/internal/database"
	"github.com/ultroidx/movie-platform/internal/handler"
	"github.com/ultroidx/movie-platform/internal/logger"
	"github.com/ultroidx/movie-platform/internal/middleware"
	"github.com/ultroidx/movie-platform/internal/newsfeed"
	"github.com/ultroidx/movie-platform/internal/omdb"
	"github.com/ultroidx/movie-platform/internal/queue"
	"github.com/ultroidx/movie-platform/internal/repository"
	"github.com/ultroidx/movie-platform/internal/router"
	"github.com/ultroidx/movie-platform/internal/seeder"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.New("server")

	db, err := database.Open(cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		log.Error("mongo connect failed", "error", err)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := database.EnsureIndexes(ctx, db); err != nil {
		cancel()
		log.Error("index creation failed", "error", err)
		return
	}
	cancel()

	movies := repository.NewMovieRepo(db)
	users := repository.NewUserRepo(db)
	tokens := repository.NewTokenRepo(db)
	news := repository.NewNewsRepo(db)
	playlists := repository.NewPlaylistRepo(db)
	chats := repository.NewChatRepo(db)
	contacts := repository.NewContactRepo(db)

	meta := omdb.NewClient(cfg.OMDbAPIKey, cfg.OMDbAPIURL, config.ProductionHouses)
	feed := newsfeed.NewClient(cfg.NewsAPIKey, cfg.NewsAPIURL, logger.New("newsfeed"))
	movieSeeder := seeder.New(movies, meta, logger.New("seeder"))
	newsSeeder := seeder.NewNews(news, feed, logger.New("seeder"))

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())

	// Redis backs both the response cache and the rate limiter.  When Redis
	// is unreachable both degrade to pass-through.
	rdb := config.NewRedisClient()
	rlCfg := config.LoadRateLimitConfig()
	if rlCfg.Enabled {
		e.Use(middleware.NewTokenBucket(rlCfg, rdb))
	}
	cacheCfg := config.LoadCacheConfig()
	var cacheMW []echo.MiddlewareFunc
	if cacheCfg.Enabled && rdb != nil {
		cacheMW = append(cacheMW, middleware.NewRedisCache(cacheCfg, rdb))
	}

	router.RegisterRoutes(e)
	router.RegisterAuth(e, handler.NewAuthHandler(cfg, users, tokens), cfg.JWTSecret)
	router.RegisterMovies(e, handler.NewMovieHandler(cfg, movies, meta), cfg.JWTSecret, cacheMW...)
	router.RegisterProfile(e, handler.NewProfileHandler(users, playlists), cfg.JWTSecret)
	router.RegisterPlaylists(e, handler.NewPlaylistHandler(playlists), cfg.JWTSecret)
	router.RegisterNews(e, handler.NewNewsHandler(news), cfg.JWTSecret, cacheMW...)
	router.RegisterChat(e, handler.NewChatHandler(chats), cfg.JWTSecret)
	router.RegisterContact(e, handler.NewContactHandler(contacts), cfg.JWTSecret)
	router.RegisterAdmin(e, handler.NewAdminHandler(movies, news, movieSeeder, newsSeeder), cfg.JWTSecret)

	// Broker consumer runs for the life of the process and reconnects on
	// its own; a broker outage never blocks startup.
	go func() {
		if err := queue.StartContactConsumer(); err != nil {
			log.Warn("contact consumer stopped", "error", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Info("listening", "addr", addr, "env", cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Error("server stopped", "error", err)
	}
}
