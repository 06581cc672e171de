package cmd

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"manifest-sync/core/loader"
	"manifest-sync/core/logger"
	"manifest-sync/core/middleware/auth"
	"manifest-sync/core/middleware/rayid"
	"manifest-sync/feature/integrity"
	"manifest-sync/feature/manifest"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "manifest-sync/docs/swagger"
)

// @title Manifest Sync API
// @version 1.0
// @description API for triggering manifest syncs and reading the extracted weapon artifacts.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the manifest server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := newEnvironment()
		if err != nil {
			return err
		}
		defer env.close()
		logg := env.logger
		zap.ReplaceGlobals(logg)

		svc, err := env.manifestService()
		if err != nil {
			return err
		}

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
		})

		mgr := loader.NewManager()
		mgr.Register(manifest.NewFeature(svc, logg))
		mgr.Register(integrity.NewFeature(env.store, env.cfg.Storage, env.cfg.Manifest, env.db, logg))

		// RayID first so every later log line carries it.
		app.Use(rayid.New())

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// Swagger stays public.
		app.Get("/swagger/*", swagger.HandlerDefault)

		if !env.cfg.Server.AuthEnabled() {
			logg.Warn("SERVER_API_KEY is empty; the API is unauthenticated")
		}
		app.Use(auth.New(auth.Config{ApiKey: env.cfg.Server.ApiKey}))

		loaded, err := mgr.LoadAll(app)
		if err != nil {
			return err
		}
		logg.Info("Features loaded", zap.Strings("features", loaded))

		errCh := make(chan error, 1)
		go func() {
			logg.Info("Starting server", zap.String("address", env.cfg.Server.Address()))
			errCh <- app.Listen(env.cfg.Server.Address())
		}()

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		select {
		case err := <-errCh:
			return err
		case <-quit:
		}

		logg.Info("Shutting down server...")
		timeout := time.Duration(env.cfg.Server.ShutdownTimeoutSeconds) * time.Second
		return app.ShutdownWithTimeout(timeout)
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
