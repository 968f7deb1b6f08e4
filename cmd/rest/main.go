package main

import (
	"context"
	"log"

	"course-mentor-be/internal/bootstrap"
	"course-mentor-be/internal/config"
	"course-mentor-be/internal/server"
	"course-mentor-be/internal/tracer"
	"course-mentor-be/pkg/database"
)

func main() {
	shutdownTracer := tracer.InitTracer()
	defer func() {
		if err := shutdownTracer(context.Background()); err != nil {
			log.Printf("Error shutting down tracer: %v", err)
		}
	}()

	cfg := config.Load()

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	container := bootstrap.NewContainer(db, cfg)
	defer container.Logger.Sync()

	if err := container.ConsumerService.Consume(context.Background()); err != nil {
		log.Fatalf("failed to start turn consumer: %v", err)
	}

	srv := server.New(cfg, container)
	log.Printf("🚀 course-mentor-be listening on :%s", cfg.App.Port)
	if err := srv.Run(); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
