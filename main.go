/*
Package main
File: main.go
Description: Server entry point. Loads the catalog, restores the saved
game document, starts the real-time WebSocket hub and runs the 1-second
heartbeat that drives the cafe simulation.
*/

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/everforgeworks/pet-cafe-server/internal/api"
	"github.com/everforgeworks/pet-cafe-server/internal/catalog"
	"github.com/everforgeworks/pet-cafe-server/internal/config"
	"github.com/everforgeworks/pet-cafe-server/internal/game"
	"github.com/everforgeworks/pet-cafe-server/internal/storage"
)

func main() {
	// 1. Load the static catalog from YAML
	cat, err := catalog.Load(config.CatalogPath())
	if err != nil {
		log.Fatalf("Catalog Fail: %v", err)
	}

	// 2. Pick the save store
	var store game.SaveStore
	switch backend := config.SaveBackend(); backend {
	case "redis":
		store = storage.NewRedisStore(config.MustInitRedis())
	case "postgres":
		ps := storage.NewPostgresStore(config.MustInitPostgres())
		if err := ps.Init(context.Background()); err != nil {
			log.Fatalf("Postgres Init Fail: %v", err)
		}
		store = ps
	case "memory":
		store = storage.NewMemoryStore()
	default:
		log.Fatalf("Unknown save backend %q", backend)
	}

	// 3. Initialize and start the Real-Time WebSocket Hub
	hub := api.NewHub()
	go hub.Run()

	// 4. Optional analytics stream
	var events game.EventPublisher
	if w := config.NewKafkaWriter(config.EventsTopic()); w != nil {
		events = storage.NewKafkaPublisher(w)
		log.Println("Kafka events: Online")
	}

	// 5. Build the simulation and restore the save
	g := game.New(game.Config{
		Catalog:   cat,
		Store:     store,
		SaveKey:   config.SaveKey(),
		Notifier:  hub,
		Messenger: hub,
		Renderer:  hub,
		Rewards:   hub,
		Events:    events,
	})
	g.Load(context.Background())

	// 6. THE CAFE HEARTBEAT
	// Runs every second: patience, cooking, boosts, spawn, persist.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	engine := game.NewEngine(g, time.Second)
	go engine.Run(ctx)

	// 7. Hot-reload: SIGHUP refreshes the catalog without a restart
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGHUP)
		for range sigChan {
			log.Println("SIGNAL: Reloading catalog...")
			fresh, err := catalog.Load(config.CatalogPath())
			if err != nil {
				log.Printf("Catalog reload failed, keeping previous: %v", err)
				continue
			}
			g.SetCatalog(fresh)
		}
	}()

	// 8. Router and server
	handler := api.NewHandler(g, api.InvoiceQRGenerator{BaseURL: config.InvoiceBaseURL()})
	srv := &http.Server{Addr: config.Addr(), Handler: api.NewRouter(handler, hub)}

	go func() {
		log.Printf("PET CAFE Server live on %s", config.Addr())
		log.Printf("Real-time Hub: Online")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
}
