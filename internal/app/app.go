package app

import (
	"context"
	"fmt"
	"time"

	"github.com/RithigaS/BACKEND/internal/config"
	"github.com/RithigaS/BACKEND/internal/middleware"
	"github.com/RithigaS/BACKEND/internal/repo"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// App owns the Mongo client and the router. The client is constructed here,
// injected into the repos and disconnected in Close; nothing holds it as
// package state.
type App struct {
	cfg    config.Config
	client *mongo.Client
	router *gin.Engine
	log    zerolog.Logger
}

func New(cfg config.Config, log zerolog.Logger) (*App, error) {
	a := &App{cfg: cfg, log: log}

	client, err := newMongo(cfg.Mongo)
	if err != nil {
		return nil, err
	}
	a.client = client

	db := client.Database(cfg.Mongo.Database)
	if err := repo.NewMongoUserRepo(db).EnsureIndexes(context.Background()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ensure indexes: %w", err)
	}

	a.router = newRouter(cfg, db, log)
	return a, nil
}

func (a *App) Router() *gin.Engine {
	return a.router
}

func (a *App) Close(ctx context.Context) error {
	if a.client != nil {
		return a.client.Disconnect(ctx)
	}
	return nil
}

func newMongo(cfg config.MongoConfig) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout.Duration())
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	return client, nil
}

func newRouter(cfg config.Config, db *mongo.Database, log zerolog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))

	// One trusted frontend origin, cookies/credentials allowed.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.CORS.FrontendOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	Setup(r, cfg, db)
	return r
}
