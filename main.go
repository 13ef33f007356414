package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/harisharnamm/rasoi-v1-sub000/configs"
	"github.com/harisharnamm/rasoi-v1-sub000/pkg/logger"
	"github.com/harisharnamm/rasoi-v1-sub000/repository"
	"github.com/harisharnamm/rasoi-v1-sub000/routes"
	"github.com/harisharnamm/rasoi-v1-sub000/state"
	"github.com/harisharnamm/rasoi-v1-sub000/ws"
)

func main() {
	cfg := configs.LoadConfig()

	zlog, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatalf("logger init failed: %v", err)
	}
	defer zlog.Sync()

	// DB-backed snapshot slot
	db, err := configs.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}
	slot, err := repository.NewSnapshotRepository(db)
	if err != nil {
		log.Fatalf("snapshot repository init failed: %v", err)
	}

	store, err := state.New(slot, cfg.Namespace, zlog)
	if err != nil {
		log.Fatalf("state load failed: %v", err)
	}

	if cfg.SeedDemo {
		if err := configs.SeedDemo(store); err != nil {
			log.Fatalf("demo seed failed: %v", err)
		}
	}

	// Live state feed
	hub := ws.NewEventHub()
	store.SetPublisher(hub)
	go hub.Run()

	// HTTP
	if cfg.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	routes.RegisterRoutes(r, store, hub)

	addr := fmt.Sprintf(":%s", cfg.Port)
	zlog.Info("server listening", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
