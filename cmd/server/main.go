package main // Entry point package

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/batoolzehra/car-rental-system/internal/config"
	"github.com/batoolzehra/car-rental-system/internal/handler"
	"github.com/batoolzehra/car-rental-system/internal/middleware"
	"github.com/batoolzehra/car-rental-system/internal/queue"
	"github.com/batoolzehra/car-rental-system/internal/repository"
	"github.com/batoolzehra/car-rental-system/internal/router"
	"github.com/batoolzehra/car-rental-system/internal/service"
	"github.com/batoolzehra/car-rental-system/internal/storage"
	"github.com/batoolzehra/car-rental-system/internal/validation"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()
	cfg := config.Load()

	store, err := storage.New(cfg.DataDir)
	if err != nil {
		log.Fatalf("open data dir %s: %v", cfg.DataDir, err)
	}

	users := repository.NewUserRepo(store)
	cars := repository.NewCarRepo(store)
	rentals := repository.NewRentalRepo(store)
	feedback := repository.NewFeedbackRepo(store)

	auth := service.NewAuthService(users, service.AdminProfile{
		Username: cfg.AdminUser,
		Password: cfg.AdminPass,
		Balance:  cfg.AdminBalance,
	})
	fleet := service.NewFleetService(cars)
	rentalSvc := service.NewRentalService(store, users, cars, rentals)
	feedbackSvc := service.NewFeedbackService(rentals, feedback)

	e := echo.New()
	e.HideBanner = true
	e.Validator = validation.New()

	// Redis backs the response cache and the rate limiter. When it is
	// unreachable both middlewares degrade to pass-through.
	rdb := config.NewRedisClient()
	cacheMW := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)
	rlMW := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)

	// The consumer drains rental confirmations into the booking log and
	// reconnects on broker failures.
	go queue.StartRentalConsumer()

	router.RegisterRoutes(e)
	router.RegisterAuth(e, handler.NewAuthHandler(cfg, auth), cfg.JWTSecret)
	router.RegisterPublic(e, &handler.PublicHandler{Fleet: fleet}, rlMW, cacheMW)
	router.RegisterCustomer(e, handler.NewCustomerHandler(rentalSvc, feedbackSvc, auth), cfg.JWTSecret, rlMW)
	router.RegisterAdmin(e, handler.NewAdminHandler(fleet, rentalSvc, feedbackSvc, auth), cfg.JWTSecret)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s, data=%s)", addr, cfg.Env, cfg.DataDir)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
