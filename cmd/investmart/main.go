package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"go.uber.org/zap"

	"github.com/wearshop/investmart/internal/app"
)

//	@title			InvestMart API
//	@version		1.0
//	@description	Investment marketplace API: project catalog, investments, withdrawals and back-office.

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization

// @host		localhost:8080
// @BasePath	/
func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	application := app.New()
	if err := application.Start(ctx); err != nil {
		// The zap global is not installed yet if logger init itself failed.
		log.Error().Err(err).Msg("can't start application")
		zap.L().Fatal("can't start application", zap.Error(err))
	}

	if err := application.Wait(ctx, cancel); err != nil {
		zap.L().Fatal("shutdown finished with error", zap.Error(err))
	}

	zap.L().Info("shutdown complete")
}
