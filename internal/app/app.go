package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/levushkin/orders-backend/internal/config"
	"github.com/levushkin/orders-backend/internal/logger"
	"github.com/levushkin/orders-backend/internal/network/router"
	"github.com/levushkin/orders-backend/internal/storage"
)

func Run(config config.Config, store storage.SubmissionsStorage) {

	router := router.NewRouter(config, store)

	server := &http.Server{
		Addr:    config.Server.ListenAddr,
		Handler: router.HandleRouter(),
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// фоновая чистка счётчиков лимитера
	limiterStop := make(chan struct{})
	router.Limiter.Start(limiterStop)

	go func() {
		logger.Info(
			"Starting server config:", config.Server,
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("error listen server", err.Error())
		}
	}()

	<-stop
	logger.Info("Shutdown server")
	close(limiterStop)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("error shutdown server", err.Error())
	}
	logger.Info("Server stopped")
}
