package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/linchiayu/bible-notes-api/internal/database"
	"github.com/linchiayu/bible-notes-api/internal/server"
	"github.com/linchiayu/bible-notes-api/pkg/config"
)

func gracefulShutdown(apiServer *http.Server, done chan bool) {
	// Listen for the interrupt signal.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	log.Println("shutting down gracefully, press Ctrl+C again to force")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := apiServer.Shutdown(ctx); err != nil {
		log.Printf("Server forced to shutdown with error: %v", err)
	}

	log.Println("Server exiting")
	done <- true
}

func main() {
	cfg := config.LoadConfig()
	db := database.New(cfg)
	defer db.Close()

	s := server.NewServer(db, cfg)
	apiServer := s.HTTPServer()

	done := make(chan bool, 1)
	go gracefulShutdown(apiServer, done)

	log.Printf("Listening on :%s", cfg.Port)
	if err := apiServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("http server error: %v", err)
	}

	<-done
	log.Println("Graceful shutdown complete.")
}
