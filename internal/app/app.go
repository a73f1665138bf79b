package app

import (
	"context"
	"log"
	"time"

	"todolist/internal/config"
	"todolist/internal/repo"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type App struct {
	cfg    config.Config
	todos  *repo.MemoryTodoRepo
	router *gin.Engine
}

// New builds the app around a freshly seeded in-memory store.
func New(cfg config.Config) (*App, error) {
	todos := repo.NewMemoryTodoRepo(repo.SeedTodos())
	log.Printf("store seeded, next id %d", todos.NextID())
	return NewWithRepo(cfg, todos), nil
}

// NewWithRepo builds the app around an existing store.
func NewWithRepo(cfg config.Config, todos *repo.MemoryTodoRepo) *App {
	if cfg.App.IsProd() {
		gin.SetMode(gin.ReleaseMode)
	}
	a := &App{cfg: cfg, todos: todos}
	a.router = newRouter(cfg, todos)
	return a
}

func (a *App) Router() *gin.Engine {
	return a.router
}

// Close releases app resources. The store lives only in memory, so there is nothing to flush.
func (a *App) Close(ctx context.Context) error {
	return nil
}

func newRouter(cfg config.Config, todos *repo.MemoryTodoRepo) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS", "HEAD"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", "Content-Type", RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}))
	r.Use(RequestID())

	Setup(r, cfg, todos)
	return r
}
