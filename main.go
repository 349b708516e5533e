package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"auction-marketplace/internal/config"
	"auction-marketplace/internal/database"
	"auction-marketplace/internal/identity"
	market "auction-marketplace/internal/marketService"
	"auction-marketplace/internal/repository"
	"auction-marketplace/internal/server"
	"auction-marketplace/utils"
)

func main() {
	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		utils.Fatal("failed to load configuration", map[string]any{"error": err.Error()})
	}
	utils.SetLevel(cfg.Log.Level)

	db, err := database.Open(cfg.Database)
	if err != nil {
		utils.Fatal("failed to open database", map[string]any{"error": err.Error()})
	}
	defer func() {
		if err := database.Close(db); err != nil {
			utils.Warn("failed to close database", map[string]any{"error": err.Error()})
		}
	}()

	repo := repository.NewGormRepo(db)

	identitySvc := identity.NewService(repo, cfg.Auth.JWTSecret, cfg.Auth.TokenTTL.Std())
	if err := identitySvc.EnsureAdmin(context.Background(), cfg.Auth.AdminName, cfg.Auth.AdminEmail, cfg.Auth.AdminPassword); err != nil {
		utils.Fatal("failed to bootstrap admin", map[string]any{"error": err.Error()})
	}

	marketSvc := market.NewMarketService(repo, cfg.Payments.DefaultMethod)

	router := server.SetupRouter(marketSvc, identitySvc, cfg.Server.CORSOrigins)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		utils.Info("starting auction marketplace server", map[string]any{"addr": srv.Addr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			utils.Fatal("failed to start server", map[string]any{"error": err.Error()})
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		utils.Error("server shutdown error", map[string]any{"error": err.Error()})
	}
	utils.Info("server stopped", nil)
}
