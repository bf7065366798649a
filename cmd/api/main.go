package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"syscall"
	"time"

	"travelplanner/internal/cache"
	"travelplanner/internal/handler"
	"travelplanner/internal/logger"
	"travelplanner/internal/metrics"
	"travelplanner/internal/middleware"
	"travelplanner/internal/repository"
	"travelplanner/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq" // PostgreSQL драйвер
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	env := getEnv("APP_ENV", "production")
	log := logger.New(env)
	defer log.Sync()

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	log.Info("starting_application", zap.String("env", env))

	// Подключение к БД. Пул ограничен десятью физическими соединениями;
	// запросы сверх лимита ждут свободного соединения, а не падают.
	dsn := "host=" + getEnv("DB_HOST", "localhost") +
		" port=" + getEnv("DB_PORT", "5432") +
		" user=" + getEnv("DB_USER", "postgres") +
		" password=" + os.Getenv("DB_PASS") +
		" dbname=" + getEnv("DB_NAME", "smart_travel_db") +
		" sslmode=" + getEnv("DB_SSLMODE", "disable")
	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		log.Fatal("database_connection_failed", zap.Error(err))
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(time.Hour)
	log.Info("database_connected", zap.String("name", getEnv("DB_NAME", "smart_travel_db")))

	runMigrations(db, log)

	// Redis необязателен: без него сводки просто не кэшируются.
	var summaryCache *cache.Cache
	if host := os.Getenv("REDIS_HOST"); host != "" {
		summaryCache, err = cache.New(host, getEnv("REDIS_PORT", "6379"), log)
		if err != nil {
			log.Warn("running_without_cache", zap.Error(err))
			summaryCache = nil
		}
	}

	// Инициализируем репозитории
	userRepo := repository.NewUserRepository(db)
	locationRepo := repository.NewLocationRepository(db)
	weatherRepo := repository.NewWeatherRepository(db)
	flightRepo := repository.NewFlightRepository(db)
	attractionRepo := repository.NewAttractionRepository(db)
	tripRepo := repository.NewTripRepository(db)
	exploreSource := repository.NewExploreSource(db, log)

	// Страховочная сверка денормализованных счетчиков при старте.
	if fixed, err := tripRepo.ReconcileItemCounts(); err != nil {
		log.Warn("item_count_reconcile_failed", zap.Error(err))
	} else if fixed > 0 {
		log.Warn("item_count_reconciled", zap.Int64("trips_fixed", fixed))
	}

	// Инициализируем сервисы
	authService := service.NewAuthService(userRepo)
	summaryService := service.NewSummaryService(locationRepo, weatherRepo, flightRepo, attractionRepo, summaryCache, log)
	tripService := service.NewTripService(tripRepo)
	exploreService := service.NewExploreService(exploreSource)

	// Создаем Handler и регистрируем маршруты
	h := handler.NewHandler(authService, summaryService, tripService, exploreService, log, m, env == "development")

	if env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(middleware.Recovery(log))
	router.Use(middleware.RequestLogger(log, m))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{getEnv("CORS_ORIGIN", "http://localhost:5173")},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := router.Group("/api")
	{
		api.POST("/userLogin", h.Login)
		api.POST("/trip-summary", h.TripSummary)
		api.POST("/trips", h.CreateTrip)
		api.GET("/trips/user/:userId", h.GetUserTrips)
		api.GET("/trips/:tripId", h.GetTripWithItinerary)
		api.DELETE("/trips/:tripId", h.DeleteTrip)
		api.POST("/trips/:tripId/itinerary", h.AddItineraryItem)
		api.PUT("/trips/:tripId/itinerary/:itemId", h.UpdateItineraryItem)
		api.DELETE("/trips/:tripId/itinerary/:itemId", h.RemoveItineraryItem)

		api.GET("/explore/sunny-cities", h.SunnyCities)
		api.GET("/explore/cold-cities", h.ColdCities)
		api.GET("/explore/cheap-flights-good-weather", h.CheapFlightsGoodWeather)
		api.GET("/explore/monthly-route-avg", h.MonthlyRouteAvg)
	}

	// Health-check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "OK",
			"message":   "Smart Travel Planner API is running",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found", "path": c.Request.URL.Path})
	})

	srv := &http.Server{
		Addr:    ":" + getEnv("API_PORT", "3000"),
		Handler: router,
	}

	go func() {
		log.Info("server_listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("server_failed", zap.Error(err))
		}
	}()

	// Плавная остановка: перестаем принимать запросы, дорабатываем текущие,
	// затем закрываем пул БД и Redis.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting_down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("shutdown_failed", zap.Error(err))
	}
	db.Close()
	summaryCache.Close()
	log.Info("stopped")
}

// runMigrations применяет файлы migrations/*.sql в лексическом порядке,
// каждый в своей транзакции. Файлы написаны идемпотентно и безопасны
// для повторного запуска при каждом старте.
func runMigrations(db *sqlx.DB, log *zap.Logger) {
	files, err := filepath.Glob("migrations/*.sql")
	if err != nil || len(files) == 0 {
		return
	}
	sort.Strings(files)
	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			log.Error("migration_read_failed", zap.String("file", file), zap.Error(err))
			continue
		}
		tx, err := db.Beginx()
		if err != nil {
			log.Error("migration_begin_failed", zap.String("file", file), zap.Error(err))
			continue
		}
		if _, err := tx.Exec(string(content)); err != nil {
			tx.Rollback()
			log.Error("migration_failed", zap.String("file", file), zap.Error(err))
			continue
		}
		if err := tx.Commit(); err != nil {
			log.Error("migration_commit_failed", zap.String("file", file), zap.Error(err))
			continue
		}
		log.Info("migration_applied", zap.String("file", file))
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
