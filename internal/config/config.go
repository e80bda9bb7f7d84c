/*
Package config
File: config.go
Description:
    Environment-driven configuration and connectors for the backing
    services. Every knob has a default so the binary runs standalone
    with the in-memory save store.
*/

package config

import (
	"context"
	"database/sql"
	"log"
	"os"
	"time"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
)

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Addr is the HTTP listen address.
func Addr() string { return getenv("ADDR", ":8081") }

// CatalogPath is the location of the static catalog YAML.
func CatalogPath() string { return getenv("CATALOG_PATH", "catalog.yaml") }

// SaveKey is the persistence key of the game document.
func SaveKey() string { return getenv("SAVE_KEY", "petCafeGameState") }

// SaveBackend selects the save store: "memory", "redis" or "postgres".
func SaveBackend() string { return getenv("SAVE_BACKEND", "memory") }

// EventsTopic is the Kafka topic for the analytics stream.
func EventsTopic() string { return getenv("KAFKA_TOPIC", "cafe-events") }

// InvoiceBaseURL is the base URL encoded into bundle invoice QR codes.
func InvoiceBaseURL() string { return getenv("INVOICE_BASE_URL", "https://cafe.example.com") }

func MustInitRedis() *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: getenv("REDIS_HOST", "localhost") + ":" + getenv("REDIS_PORT", "6379"),
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	return client
}

func MustInitPostgres() *sql.DB {
	connStr := "host=" + getenv("DB_HOST", "localhost") +
		" port=" + getenv("DB_PORT", "5432") +
		" user=" + getenv("DB_USER", "postgres") +
		" password=" + os.Getenv("DB_PASSWORD") +
		" dbname=" + getenv("DB_NAME", "petcafe") +
		" sslmode=disable"

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err = db.Ping(); err != nil {
		log.Fatal("Failed to ping database:", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	return db
}

// NewKafkaWriter returns a writer for the events topic, or nil when no
// broker is configured. The event stream is optional.
func NewKafkaWriter(topic string) *kafka.Writer {
	broker := os.Getenv("KAFKA_BROKER")
	if broker == "" {
		return nil
	}
	return &kafka.Writer{
		Addr:     kafka.TCP(broker),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}
}
