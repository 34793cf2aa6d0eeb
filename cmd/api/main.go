package main

import (
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"pet-sitting-service/internal/platform/logger"
	"pet-sitting-service/internal/router"
)

// @title Pet Sitting Service API
// @version 1.0
// @description CRUD de owners, dogs, sitters y bookings con envelope de respuesta uniforme.
// @BasePath /
func main() {
	// .env opcional para dev; en prod las vars vienen del entorno
	_ = godotenv.Load()

	log := logger.NewFromEnv()

	addr := ":8080"
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}

	r := router.NewRouter(router.Options{Log: log})

	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Info("starting server", map[string]any{"addr": addr})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", logger.Err(err))
		os.Exit(1)
	}
}
