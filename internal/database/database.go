package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strconv"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/joho/godotenv/autoload"

	"github.com/linchiayu/bible-notes-api/pkg/config"
)

// Service represents a service that interacts with a database.
type Service interface {
	// Health returns a map of health status information.
	// The keys and values in the map are service-specific.
	Health() map[string]string

	// DB exposes the read-tier connection pool (reference data queries).
	DB() *sql.DB

	// AdminDB exposes the privileged pool used for note writes and deletes.
	AdminDB() *sql.DB

	// Close terminates both connection pools.
	Close() error
}

type service struct {
	db      *sql.DB
	adminDB *sql.DB
}

var dbInstance *service

func New(cfg *config.Config) Service {
	// Reuse Connection
	if dbInstance != nil {
		return dbInstance
	}

	db, err := open(cfg, cfg.DBUser, cfg.DBPassword)
	if err != nil {
		log.Fatal(err)
	}

	adminDB := db
	if cfg.DBAdminUser != cfg.DBUser {
		adminDB, err = open(cfg, cfg.DBAdminUser, cfg.DBAdminPassword)
		if err != nil {
			log.Fatal(err)
		}
	}

	dbInstance = &service{db: db, adminDB: adminDB}
	return dbInstance
}

func open(cfg *config.Config, user, password string) (*sql.DB, error) {
	connStr := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable&search_path=%s",
		user, password, cfg.DBHost, cfg.DBPort, cfg.DBName, cfg.DBSchema)
	db, err := sql.Open("pgx", connStr)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(25)
	db.SetConnMaxIdleTime(5 * time.Minute)
	return db, nil
}

// Health checks the health of the database connection by pinging the database.
// It returns a map with keys indicating various health statistics.
func (s *service) Health() map[string]string {
	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	stats := make(map[string]string)

	// Ping the database
	err := s.db.PingContext(ctx)
	if err != nil {
		stats["status"] = "down"
		stats["error"] = fmt.Sprintf("db down: %v", err)
		log.Printf("db down: %v", err)
		return stats
	}

	// Database is up, add more statistics
	stats["status"] = "up"
	stats["message"] = "It's healthy"

	dbStats := s.db.Stats()
	stats["open_connections"] = strconv.Itoa(dbStats.OpenConnections)
	stats["in_use"] = strconv.Itoa(dbStats.InUse)
	stats["idle"] = strconv.Itoa(dbStats.Idle)
	stats["wait_count"] = strconv.FormatInt(dbStats.WaitCount, 10)

	return stats
}

func (s *service) DB() *sql.DB {
	return s.db
}

func (s *service) AdminDB() *sql.DB {
	return s.adminDB
}

// Close closes the database connection.
// It logs a message indicating the disconnection from the specific database.
func (s *service) Close() error {
	log.Println("Disconnected from database")
	if s.adminDB != s.db {
		s.adminDB.Close()
	}
	return s.db.Close()
}
