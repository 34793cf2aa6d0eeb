package router

import (
	"database/sql"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "pet-sitting-service/docs"
	mem "pet-sitting-service/internal/adapters/storage/memory"
	pg "pet-sitting-service/internal/adapters/storage/postgres"
	"pet-sitting-service/internal/domain/bookings"
	"pet-sitting-service/internal/domain/dogs"
	"pet-sitting-service/internal/domain/owners"
	"pet-sitting-service/internal/domain/sitters"
	"pet-sitting-service/internal/middleware"
	"pet-sitting-service/internal/platform/logger"
	"pet-sitting-service/internal/platform/metrics"
)

type Options struct {
	// Opcional: si viene, usa Postgres. Si no, intenta DB_DSN y cae a in-memory.
	DB *sql.DB

	// Opcional: logger ya configurado; nil => NewFromEnv.
	Log logger.Logger
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	log := opts.Log
	if log == nil {
		log = logger.NewFromEnv()
	}

	metrics.RegisterCollectors(prometheus.DefaultRegisterer)

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestLog(log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// Si no te pasan DB explícita, intenta por env (para dev/handoff)
	db := opts.DB
	if db == nil {
		if dsn := os.Getenv("DB_DSN"); dsn != "" {
			opened, err := pg.Open(dsn)
			if err == nil {
				db = opened
			} else {
				log.Warn("postgres unavailable, falling back to in-memory store", logger.Err(err))
			}
		}
	}

	var (
		ownerRepo   owners.Repository
		dogRepo     dogs.Repository
		sitterRepo  sitters.Repository
		bookingRepo bookings.Repository
	)

	if db != nil {
		ownerRepo = pg.NewOwnersRepo(db)
		dogRepo = pg.NewDogsRepo(db)
		sitterRepo = pg.NewSittersRepo(db)
		bookingRepo = pg.NewBookingsRepo(db)
	} else {
		ownerRepo = mem.NewOwnerRepo()
		dogRepo = mem.NewDogRepo()
		sitterRepo = mem.NewSitterRepo()
		bookingRepo = mem.NewBookingRepo()
	}

	// Services por módulo; dogs y bookings validan referencias contra owners.
	ownersSvc := owners.NewService(ownerRepo)
	dogsSvc := dogs.NewService(dogRepo, ownersSvc)
	sittersSvc := sitters.NewService(sitterRepo)
	bookingsSvc := bookings.NewService(bookingRepo, ownersSvc)

	// Rutas por módulo
	owners.RegisterRoutes(r, ownersSvc)
	dogs.RegisterRoutes(r, dogsSvc)
	sitters.RegisterRoutes(r, sittersSvc)
	bookings.RegisterRoutes(r, bookingsSvc)

	return r
}
