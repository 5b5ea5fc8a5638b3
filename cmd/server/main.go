package main

import (
	"net/http"

	"vyeya-be/internal/auth"
	"vyeya-be/internal/config"
	"vyeya-be/internal/db"
	"vyeya-be/internal/health"
	"vyeya-be/internal/logger"
	"vyeya-be/internal/middleware"
	"vyeya-be/internal/order"
	"vyeya-be/internal/product"
	"vyeya-be/internal/store"
	"vyeya-be/internal/user"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()
	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := db.InitDB(cfg)
	defer database.Close()

	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.JWTExpiry)

	userRepo := user.NewRepository(database)
	userSvc := user.NewService(userRepo, tokens)
	userHandler := user.NewHandler(userSvc)

	orderRepo := order.NewRepository(database)
	orderSvc := order.NewService(orderRepo)
	orderHandler := order.NewHandler(orderSvc)

	productRepo := product.NewRepository(database)
	productSvc := product.NewService(productRepo)
	productHandler := product.NewHandler(productSvc)

	storeRepo := store.NewRepository(database)
	storeSvc := store.NewService(storeRepo)
	storeHandler := store.NewHandler(storeSvc)

	r := newRouter(tokens, userRepo, userHandler, orderHandler, productHandler, storeHandler)

	logger.L().Info("server listening", zap.String("port", cfg.AppPort))
	if err := http.ListenAndServe(":"+cfg.AppPort, r); err != nil {
		logger.L().Fatal("server stopped", zap.Error(err))
	}
}

func newRouter(
	tokens *auth.TokenService,
	userRepo user.Repository,
	userHandler *user.Handler,
	orderHandler *order.Handler,
	productHandler *product.Handler,
	storeHandler *store.Handler,
) chi.Router {
	r := chi.NewRouter()

	r.Use(logger.RequestIDMiddleware)
	r.Use(logger.LoggingMiddleware)
	r.Use(middleware.CORS)
	r.Use(middleware.RateLimitMiddleware)

	requireAuth := middleware.RequireAuth(tokens, userRepo)

	r.Get("/health", health.Handler)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", userHandler.Register)
			r.Post("/login", userHandler.Login)
			r.Get("/grower/{id}", userHandler.Grower)

			r.Group(func(r chi.Router) {
				r.Use(requireAuth)
				r.Get("/me", userHandler.Me)
				r.Put("/profile", userHandler.UpdateProfile)
			})
		})

		r.Route("/orders", func(r chi.Router) {
			r.Use(requireAuth)
			r.Post("/", orderHandler.Create)
			r.Get("/", orderHandler.List)
			r.Get("/{orderID}", orderHandler.Get)
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/", productHandler.List)
			r.Get("/{id}", productHandler.Get)

			r.Group(func(r chi.Router) {
				r.Use(requireAuth)
				r.Post("/", productHandler.Create)
				r.Put("/{id}", productHandler.Update)
				r.Delete("/{id}", productHandler.Delete)
			})
		})

		r.Route("/stores", func(r chi.Router) {
			r.Get("/", storeHandler.List)
			r.Get("/{id}", storeHandler.Get)
			r.With(requireAuth).Post("/", storeHandler.Create)
		})
	})

	return r
}
