package main

import (
	"log"
	"net/http"

	_ "inmobiliaria/docs" // swagger docs

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"inmobiliaria/internal/auth"
	"inmobiliaria/internal/cache"
	"inmobiliaria/internal/config"
	"inmobiliaria/internal/db"
	"inmobiliaria/internal/handler"
	"inmobiliaria/internal/model"
	"inmobiliaria/internal/repository"
	"inmobiliaria/internal/router"
	"inmobiliaria/internal/service"
)

// @title Inmobiliaria API
// @version 1.0
// @description Real-estate management API with users, properties, reservations, and bearer-token authentication.
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the access token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(echomw.RequestID())

	gormDB, err := db.NewSQLite(cfg.SQLitePath)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Property{},
		&model.Reservation{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	userRepo := repository.NewUserRepository(gormDB)
	propertyRepo := repository.NewPropertyRepository(gormDB)
	reservationRepo := repository.NewReservationRepository(gormDB)

	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)

	authService := service.NewAuthService(userRepo, tokens, cacheClient)
	userService := service.NewUserService(userRepo)
	propertyService := service.NewPropertyService(propertyRepo)
	reservationService := service.NewReservationService(reservationRepo)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	propertyHandler := handler.NewPropertyHandler(propertyService)
	reservationHandler := handler.NewReservationHandler(reservationService)

	router.Register(
		e,
		tokens,
		authService,
		authHandler,
		userHandler,
		propertyHandler,
		reservationHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
