package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"ClinicaAdmin/cache"
	"ClinicaAdmin/config"
	"ClinicaAdmin/database"
	"ClinicaAdmin/routes"
)

func main() {
	// Load configuration from environment variables
	config, err := loadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	// Initialize Redis
	redisConfig, err := database.LoadRedisConfig()
	if err != nil {
		log.Fatalf("failed to load Redis configuration: %v", err)
	}
	redisClient, err := database.NewRedisClient(redisConfig)
	if err != nil {
		log.Fatalf("failed to initialize Redis client: %v", err)
	}

	// Initialize the session cache
	cache, err := cache.NewCache(redisClient)
	if err != nil {
		log.Fatalf("failed to initialize cache: %v", err)
	}

	// Log Redis pool statistics periodically until shutdown
	monitorCtx, stopMonitor := context.WithCancel(context.Background())
	go func() {
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-monitorCtx.Done():
				return
			case <-ticker.C:
				database.MonitorRedisPool(redisClient)
			}
		}
	}()

	// Pass the config to SetupRoutes
	handler := routes.SetupRoutes(cache, config)

	// Configure and start the server
	srv := &http.Server{
		Addr:           config.ListenAddress,
		Handler:        handler,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
		MaxHeaderBytes: 1 << 20,
		IdleTimeout:    30 * time.Second,
	}

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()
		log.Printf("Starting server on %s", config.ListenAddress)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listenAndServe(): %v", err)
		}
	}()

	// Graceful shutdown handling
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	// Create a context with a timeout for shutdown
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	log.Println("Shutting down server...")
	stopMonitor()
	database.MonitorRedisPool(redisClient)
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server shutdown failed: %+v", err)
	}

	wg.Wait() // Wait for all goroutines to finish before exiting
	log.Println("Server exited gracefully")
}

// loadConfig loads configuration from environment variables.
func loadConfig() (*config.AppConfig, error) {
	// Get the clinical backend URL
	backendURL := os.Getenv("BACKEND_URL")
	if backendURL == "" {
		return nil, errors.New("missing BACKEND_URL environment variable")
	}

	// Get the Redis URL
	redisAddress := os.Getenv("REDIS_URL")
	if redisAddress == "" {
		return nil, errors.New("missing REDIS_URL environment variable")
	}

	// The symmetric key must be present and well-formed before the first login
	if key := os.Getenv("SYMMETRIC_KEY"); len(key) != 32 {
		return nil, errors.New("SYMMETRIC_KEY must be set and 32 bytes long")
	}

	listenAddress := os.Getenv("LISTEN_ADDR")
	if listenAddress == "" {
		listenAddress = ":8930"
	}

	allowedOrigins := []string{"http://localhost:3000"}
	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		allowedOrigins = strings.Split(origins, ",")
	}

	return &config.AppConfig{
		BackendURL:     backendURL,
		RedisAddress:   redisAddress,
		ListenAddress:  listenAddress,
		AllowedOrigins: allowedOrigins,
	}, nil
}
