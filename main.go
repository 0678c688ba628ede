package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/joho/godotenv"

	"maizonmarie_server/api"
	"maizonmarie_server/config"
	"maizonmarie_server/persistence"
	"maizonmarie_server/services"
	"maizonmarie_server/state"
	"maizonmarie_server/structs"
)

var logger *gecho.Logger
var cfg *structs.Config

// init function to load environment variables and initialize the logger
func init() {
	envErr := godotenv.Load()

	cfg = config.GetConfig()
	logger = config.InitializeLogger()

	if envErr != nil {
		logger.Warn("No .env file found or error loading .env file, proceeding with system environment variables")
	}
}

func main() {
	gateway, err := persistence.New(logger, cfg)
	if err != nil {
		logger.Fatal("Failed to initialize the store", gecho.Field("error", err))
	}

	st := state.NewState()
	restoreSnapshot(gateway, st)

	sm := services.NewServiceManager(logger, cfg, st, gateway)

	// Setup graceful shutdown BEFORE starting the server
	setupGracefulShutdown(logger, sm, gateway)

	r := api.App(sm)

	logger.Info(fmt.Sprintf("Starting server (%s) on %s", cfg.Server.AppName, cfg.Server.Port))

	// Start server
	if err := http.ListenAndServe(cfg.Server.Port, r); err != nil {
		logger.Error("Failed to start server", gecho.Field("error", err))
	}
}

// restoreSnapshot loads the persisted storefront state. A missing or corrupt
// payload falls back to the seed catalog so the server always comes up serving.
func restoreSnapshot(gateway persistence.Gateway, st *state.State) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	payload, err := gateway.Load(ctx)
	if err != nil {
		logger.Warn("Failed to load persisted state, starting from seed data", gecho.Field("error", err))
		return
	}
	if payload == nil {
		logger.Info("No persisted state found, starting from seed data")
		return
	}

	snap, err := state.DecodeSnapshot(payload)
	if err != nil {
		logger.Warn("Persisted state is corrupt, starting from seed data", gecho.Field("error", err))
		return
	}

	st.Restore(snap)
	logger.Info("Restored persisted storefront state")
}

// setupGracefulShutdown sets up signal handling for graceful application shutdown
func setupGracefulShutdown(logger *gecho.Logger, sm *services.ServiceManager, gateway persistence.Gateway) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	logger.Info("Graceful shutdown handler initialized")

	go func() {
		sig := <-c
		logger.Info("Received shutdown signal", gecho.Field("signal", sig.String()))

		sm.Close()
		if err := gateway.Close(); err != nil {
			logger.Warn("Failed to close the store", gecho.Field("error", err))
		}

		os.Exit(0)
	}()
}
