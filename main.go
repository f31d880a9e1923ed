package main

import (
	"context"
	"time"

	"github.com/Raul1156/monopoly/app/controllers"
	"github.com/Raul1156/monopoly/pkg/configs"
	"github.com/Raul1156/monopoly/pkg/engine"
	"github.com/Raul1156/monopoly/pkg/middleware"
	"github.com/Raul1156/monopoly/pkg/routes"
	"github.com/Raul1156/monopoly/platform/board"
	"github.com/Raul1156/monopoly/platform/cache"
	"github.com/Raul1156/monopoly/platform/database"
	"github.com/Raul1156/monopoly/platform/logging"
	"github.com/Raul1156/monopoly/platform/queries"
	socket "github.com/Raul1156/monopoly/platform/sockets"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

func loadBoard(cfg *configs.Config, src engine.Source) (*board.Board, error) {
	if cfg.BoardFile != "" {
		return board.LoadFile(cfg.BoardFile, src)
	}
	return board.Default(src)
}

func openStore(cfg *configs.Config, log *logrus.Logger) database.Store {
	if cfg.Store != "postgres" {
		return database.NewMemoryStore()
	}
	store := database.NewPostgresStore(database.PostgreSQLConnection(cfg.Postgres))
	if err := store.CreateSchema(context.Background()); err != nil {
		log.WithError(err).Fatal("unable to create schema")
	}
	log.WithField("addr", cfg.Postgres.Addr).Info("using postgres store")
	return store
}

func main() {
	cfg := configs.MustLoad()
	log := logging.Init(cfg.LogLevel)
	secret := []byte(cfg.JWTSecret)

	src := engine.NewRandSource(time.Now().UnixNano())
	b, err := loadBoard(cfg, src)
	if err != nil {
		log.WithError(err).Fatal("unable to load board")
	}

	sockets, err := socket.NewServer(secret, log)
	if err != nil {
		log.WithError(err).Fatal("unable to create socket.io server")
	}
	notifiers := queries.Notifiers{sockets}

	var (
		locker  queries.Locker = queries.NewLocalLocker()
		history *cache.EventLog
	)
	if cfg.Locker == "redis" {
		pool := cache.CreateRedisPool(cfg.Redis)
		defer pool.Close()
		locker = cache.NewRedisLocker(pool, cfg.Redis.LockTTL, log)
		history = cache.NewEventLog(pool, log)
		notifiers = append(notifiers, history)
		log.WithField("addr", cfg.Redis.URL).Info("using redis locks")
	}

	svc := queries.NewService(queries.Options{
		Store:    openStore(cfg, log),
		Locker:   locker,
		Board:    b,
		Roller:   engine.NewRoller(src),
		Notifier: notifiers,
		Logger:   log,
		Secret:   secret,
	})
	sockets.Register(svc)

	app := fiber.New()
	middleware.FiberMiddleware(app, cfg.AllowOrigin, log)
	ctrl := controllers.New(svc, b, log)
	if history != nil {
		ctrl.WithHistory(history)
	}
	routes.Register(app, ctrl, middleware.JWTProtected(secret))

	go func() {
		if err := sockets.Listen(":"+cfg.SocketPort, cfg.AllowOrigin); err != nil {
			log.WithError(err).Error("socket.io server stopped")
		}
	}()
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.WithError(err).Fatal("http server stopped")
	}
}
