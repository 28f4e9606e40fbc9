// Package main is the entry point for the Event Manager server.
package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/event-manager/backend/internal/api"
	"github.com/event-manager/backend/internal/config"
	"github.com/event-manager/backend/internal/notify"
	"github.com/event-manager/backend/internal/reminder"
	"github.com/event-manager/backend/internal/storage"
	"github.com/event-manager/backend/internal/store"
	"github.com/event-manager/backend/internal/websocket"
)

// version is set at build time via -ldflags "-X main.version=x.y.z".
var version = "dev"

func main() {
	// A local .env is optional; the environment wins either way.
	godotenv.Load()
	cfg := config.Load()

	addr := flag.String("addr", cfg.Server.Addr, "HTTP server address")
	dataDir := flag.String("data", cfg.Server.DataDir, "Data directory for the SQLite database")
	staticDir := flag.String("static", cfg.Server.StaticDir, "Directory for static frontend files")
	flag.Parse()

	log.Printf("Starting Event Manager (version: %s)...", version)

	// Initialize database
	db, err := storage.NewDB(filepath.Join(*dataDir, "event-manager.db"))
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	if err := storage.RunMigrations(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations complete")

	// Initialize repositories
	eventRepo := storage.NewEventRepository(db)
	categoryRepo := storage.NewCategoryRepository(db)
	reminderRepo := storage.NewReminderRepository(db)
	commentRepo := storage.NewCommentRepository(db)
	settingsRepo := storage.NewSettingsRepository(db)

	// Seed the fixed category set on first run
	if err := categoryRepo.Seed(context.Background()); err != nil {
		log.Fatalf("Failed to seed categories: %v", err)
	}

	// Initialize WebSocket hub
	hub := websocket.NewHub()
	go hub.Run()
	broadcaster := websocket.NewEventBroadcaster(hub)

	// Initialize notification client and state store
	notifier := notify.NewTelegramNotifier(settingsRepo, cfg.Telegram)
	st := store.New(eventRepo, categoryRepo, reminderRepo, commentRepo, notifier, broadcaster)

	if err := st.Load(context.Background()); err != nil {
		log.Fatalf("Failed to load state: %v", err)
	}
	log.Printf("State loaded: %d events, %d categories, %d reminders",
		len(st.Events()), len(st.Categories()), len(st.Reminders()))

	// Start the reminder dispatch loop
	dispatcher := reminder.NewDispatcher(st, notifier, broadcaster, cfg.Reminder.CheckInterval)
	dispatcher.Start()

	// Initialize HTTP router
	router := api.NewRouter(db, st, settingsRepo, dispatcher, hub, *staticDir)

	server := &http.Server{
		Addr:         *addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server listening on %s", *addr)
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	dispatcher.Stop()
	hub.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}

	log.Println("Server stopped")
}
