package server

import (
	"fmt"
	"log"
	"net/http"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"github.com/linchiayu/bible-notes-api/internal/database"
	"github.com/linchiayu/bible-notes-api/pkg/config"
)

type Server struct {
	port    string
	db      database.Service
	handler http.Handler
	cfg     *config.Config
}

// NewServer constructs the app server with all dependencies injected.
func NewServer(db database.Service, cfg *config.Config) *Server {
	stats := db.Health()

	fmt.Println("Database Health:", stats)

	if stats["status"] != "up" {
		log.Fatal("Database connection failed")
		return &Server{}
	}
	log.Println("Database connection successful")

	if cfg.AdminDeleteKey == "" {
		log.Println("ADMIN_DELETE_KEY not set: note deletion is disabled")
	}

	s := &Server{
		port: cfg.Port,
		db:   db,
		cfg:  cfg,
	}

	s.handler = s.RegisterRoutes()
	return s
}

// HTTPServer returns the actual *http.Server instance
func (s *Server) HTTPServer() *http.Server {
	return &http.Server{
		Addr:         fmt.Sprintf(":%s", s.port),
		Handler:      s.handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}
